package server

import (
	"bytes"
	"context"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/swdee/go-hardhat"
	"github.com/swdee/go-hardhat/annotate"
	"github.com/swdee/go-hardhat/config"
	"github.com/swdee/go-hardhat/frame"
	"github.com/swdee/go-hardhat/postprocess"
	"go.uber.org/zap/zaptest"
	"image"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// frameJSON holds one worker wearing a hard hat and one without any head
const frameJSON = `{
	"id": "frame-1",
	"predictions": [
		{"label": "worker", "confidence": 0.95, "box": {"bottom_left": {"x": 10, "y": 10}, "top_right": {"x": 40, "y": 90}}},
		{"label": "head_in_hh", "confidence": 0.97, "box": {"bottom_left": {"x": 15, "y": 12}, "top_right": {"x": 30, "y": 27}}},
		{"label": "worker", "confidence": 0.99, "box": {"bottom_left": {"x": 60, "y": 10}, "top_right": {"x": 90, "y": 90}}}
	]
}`

func newTestServer(t *testing.T, bodyLimit int) *Server {

	factory := postprocess.NewWorkerFactory(hardhat.DefaultParams(),
		postprocess.WithLogger(zaptest.NewLogger(t)))

	return New(factory, zaptest.NewLogger(t), config.ServerConfig{
		Addr:      ":0",
		BodyLimit: bodyLimit,
	})
}

func doRequest(t *testing.T, s *Server, req *http.Request) *http.Response {

	resp, err := s.App().Test(req, -1)

	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {

	defer resp.Body.Close()

	if err := jsoniter.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Error decoding response body: %v", err)
	}
}

func TestHealth(t *testing.T) {

	s := newTestServer(t, 1024)
	resp := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)

	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestWorkers(t *testing.T) {

	s := newTestServer(t, 1024*1024)

	req := httptest.NewRequest(http.MethodPost, "/v1/workers", strings.NewReader(frameJSON))
	req.Header.Set("Content-Type", "application/json")

	resp := doRequest(t, s, req)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var res frame.Result
	decodeBody(t, resp, &res)

	if res.FrameID != "frame-1" {
		t.Errorf("Expected frame ID frame-1, got %q", res.FrameID)
	}

	if len(res.Workers) != 2 {
		t.Fatalf("Expected 2 workers, got %d", len(res.Workers))
	}

	first, second := res.Workers[0], res.Workers[1]

	if first.ID != 0 || first.Outcome != "helmet" || first.Head == nil || !first.Head.HasHelmet {
		t.Errorf("Expected worker 0 with a helmet, got %+v", first)
	}

	if second.ID != 2 || second.Outcome != "no_head" || second.Head != nil {
		t.Errorf("Expected worker 2 without a head, got %+v", second)
	}
}

func TestWorkersInvalidFrame(t *testing.T) {

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"predictions": [`},
		{"confidence out of range", `{"predictions": [{"label": "worker", "confidence": 1.5, "box": {"bottom_left": {"x": 0, "y": 0}, "top_right": {"x": 1, "y": 1}}}]}`},
		{"missing label", `{"predictions": [{"confidence": 0.5, "box": {"bottom_left": {"x": 0, "y": 0}, "top_right": {"x": 1, "y": 1}}}]}`},
	}

	s := newTestServer(t, 1024*1024)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			req := httptest.NewRequest(http.MethodPost, "/v1/workers", strings.NewReader(tc.body))
			resp := doRequest(t, s, req)

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", resp.StatusCode)
			}

			var body ErrorResponse
			decodeBody(t, resp, &body)

			if body.Code != CodeInvalidFrame || body.Error == "" {
				t.Errorf("Expected %s error, got %+v", CodeInvalidFrame, body)
			}
		})
	}
}

func TestNotFound(t *testing.T) {

	s := newTestServer(t, 1024)
	resp := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/v1/missing", nil))

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	decodeBody(t, resp, &body)

	if body.Code != CodeNotFound {
		t.Errorf("Expected %s, got %+v", CodeNotFound, body)
	}
}

func TestRequestID(t *testing.T) {

	s := newTestServer(t, 1024)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-42")

	resp := doRequest(t, s, req)

	if got := resp.Header.Get(RequestIDHeader); got != "req-42" {
		t.Errorf("Expected request ID to be echoed, got %q", got)
	}

	resp = doRequest(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("Expected a generated UUID request ID, got %q", resp.Header.Get(RequestIDHeader))
	}
}

// annotateRequest builds a multipart request with the given image bytes and
// frame field, either of which may be omitted when nil or empty
func annotateRequest(t *testing.T, img []byte, frameField string) *http.Request {

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if img != nil {
		fw, err := mw.CreateFormFile("image", "frame.png")

		if err != nil {
			t.Fatalf("Error creating form file: %v", err)
		}

		fw.Write(img)
	}

	if frameField != "" {
		if err := mw.WriteField("frame", frameField); err != nil {
			t.Fatalf("Error writing frame field: %v", err)
		}
	}

	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/annotate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func testPNG(t *testing.T) []byte {

	var buf bytes.Buffer

	if err := annotate.EncodePNG(&buf, image.NewRGBA(image.Rect(0, 0, 100, 100))); err != nil {
		t.Fatalf("Error encoding test image: %v", err)
	}

	return buf.Bytes()
}

func TestAnnotate(t *testing.T) {

	s := newTestServer(t, 1024*1024)
	resp := doRequest(t, s, annotateRequest(t, testPNG(t), frameJSON))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png content type, got %q", ct)
	}

	if id := resp.Header.Get(FrameIDHeader); id != "frame-1" {
		t.Errorf("Expected frame ID header frame-1, got %q", id)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)

	if err != nil {
		t.Fatalf("Error reading body: %v", err)
	}

	img, err := annotate.DecodeImage(bytes.NewReader(data))

	if err != nil {
		t.Fatalf("Response is not an image: %v", err)
	}

	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("Expected 100x100 image, got %v", img.Bounds())
	}
}

func TestAnnotateInvalid(t *testing.T) {

	tests := []struct {
		name  string
		img   []byte
		frame string
		code  string
	}{
		{"missing image", nil, frameJSON, CodeInvalidImage},
		{"corrupt image", []byte("not a png"), frameJSON, CodeInvalidImage},
		{"missing frame", testPNG(t), "", CodeInvalidFrame},
		{"invalid frame", testPNG(t), `{"predictions": 1}`, CodeInvalidFrame},
	}

	s := newTestServer(t, 1024*1024)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			resp := doRequest(t, s, annotateRequest(t, tc.img, tc.frame))

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", resp.StatusCode)
			}

			var body ErrorResponse
			decodeBody(t, resp, &body)

			if body.Code != tc.code {
				t.Errorf("Expected code %s, got %+v", tc.code, body)
			}
		})
	}
}

func TestBodyTooLarge(t *testing.T) {

	s := newTestServer(t, 64)

	// the body limit is enforced while reading the request, so serve on a
	// real listener
	ln, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		t.Fatalf("Error creating listener: %v", err)
	}

	go s.App().Listener(ln)
	defer s.Shutdown(context.Background())

	resp, err := http.Post("http://"+ln.Addr().String()+"/v1/workers",
		"application/json", strings.NewReader(frameJSON))

	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("Expected status 413, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	decodeBody(t, resp, &body)

	if body.Code != CodeTooLarge {
		t.Errorf("Expected %s, got %+v", CodeTooLarge, body)
	}
}

func TestInternalErrorMasked(t *testing.T) {

	s := newTestServer(t, 1024)

	s.App().Get("/v1/fail", func(c *fiber.Ctx) error {
		return errors.New("database password leaked")
	})

	resp := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/v1/fail", nil))

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	decodeBody(t, resp, &body)

	if body.Code != CodeInternal || body.Error != "internal server error" {
		t.Errorf("Expected masked internal error, got %+v", body)
	}
}
