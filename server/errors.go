package server

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error codes returned in error responses
const (
	CodeInvalidFrame = "INVALID_FRAME"
	CodeInvalidImage = "INVALID_IMAGE"
	CodeNotFound     = "NOT_FOUND"
	CodeTooLarge     = "BODY_TOO_LARGE"
	CodeInternal     = "INTERNAL"
)

// ErrorResponse is the JSON body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// apiError is a handler error carrying its HTTP status and error code
type apiError struct {
	status int
	code   string
	err    error
}

func (e *apiError) Error() string {
	return e.err.Error()
}

func (e *apiError) Unwrap() error {
	return e.err
}

// badRequest returns a 400 error with the given code
func badRequest(code string, err error) error {
	return &apiError{status: fiber.StatusBadRequest, code: code, err: err}
}

// errorHandler writes handler errors as an ErrorResponse
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {

	resp := ErrorResponse{Error: err.Error(), Code: CodeInternal}
	status := fiber.StatusInternalServerError

	var apiErr *apiError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &apiErr):
		status = apiErr.status
		resp.Code = apiErr.code

	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		resp.Error = fiberErr.Message

		switch status {
		case fiber.StatusNotFound:
			resp.Code = CodeNotFound
		case fiber.StatusRequestEntityTooLarge:
			resp.Code = CodeTooLarge
		}
	}

	if status >= fiber.StatusInternalServerError {
		s.log.Error("request failed", zap.String("request_id", getRequestID(c)),
			zap.Error(err))
		resp.Error = "internal server error"
	}

	return c.Status(status).JSON(resp)
}
