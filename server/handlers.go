package server

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/swdee/go-hardhat/annotate"
	"github.com/swdee/go-hardhat/frame"
	"go.uber.org/zap"
	"strings"
)

// FrameIDHeader is the response header carrying the frame ID of an
// annotated image
const FrameIDHeader = "X-Frame-ID"

// health reports the server is up
func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// workers resolves the frame in the request body into workers
func (s *Server) workers(c *fiber.Ctx) error {

	f, err := frame.Decode(bytes.NewReader(c.Body()))

	if err != nil {
		return badRequest(CodeInvalidFrame, err)
	}

	workers := s.factory.Workers(f.ToPredictions())

	s.log.Debug("frame resolved",
		zap.String("request_id", getRequestID(c)),
		zap.String("frame_id", f.ID),
		zap.Int("predictions", len(f.Predictions)),
		zap.Int("workers", len(workers)),
	)

	return c.JSON(frame.NewResult(f.ID, workers))
}

// annotate resolves the frame form field and returns the image form file
// with the workers drawn on it as a PNG
func (s *Server) annotate(c *fiber.Ctx) error {

	fh, err := c.FormFile("image")

	if err != nil {
		return badRequest(CodeInvalidImage, fmt.Errorf("missing image file: %w", err))
	}

	file, err := fh.Open()

	if err != nil {
		return badRequest(CodeInvalidImage, fmt.Errorf("error opening image file: %w", err))
	}
	defer file.Close()

	img, err := annotate.DecodeImage(file)

	if err != nil {
		return badRequest(CodeInvalidImage, err)
	}

	raw := c.FormValue("frame")

	if raw == "" {
		return badRequest(CodeInvalidFrame, errors.New("missing frame field"))
	}

	f, err := frame.Decode(strings.NewReader(raw))

	if err != nil {
		return badRequest(CodeInvalidFrame, err)
	}

	workers := s.factory.Workers(f.ToPredictions())
	out := annotate.Annotate(img, workers, annotate.DefaultOptions())

	var buf bytes.Buffer

	if err := annotate.EncodePNG(&buf, out); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}

	c.Set(FrameIDHeader, f.ID)
	c.Type("png")

	return c.Send(buf.Bytes())
}
