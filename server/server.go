// Package server exposes the worker resolution over HTTP using Fiber.
package server

import (
	"context"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/swdee/go-hardhat/config"
	"github.com/swdee/go-hardhat/postprocess"
	"go.uber.org/zap"
)

// Server is the HTTP front end to a WorkerFactory
type Server struct {
	app     *fiber.App
	factory *postprocess.WorkerFactory
	log     *zap.Logger
}

// New returns a Server resolving frames with the given factory.  A nil logger
// disables request logging
func New(factory *postprocess.WorkerFactory, log *zap.Logger,
	cfg config.ServerConfig) *Server {

	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		factory: factory,
		log:     log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "hardhat",
		BodyLimit:             cfg.BodyLimit,
		StrictRouting:         true,
		CaseSensitive:         true,
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.Marshal,
		JSONDecoder:           jsoniter.Unmarshal,
		ErrorHandler:          s.errorHandler,
	})

	s.routes()

	return s
}

// routes registers the middleware and handlers
func (s *Server) routes() {

	s.app.Use(requestID())
	s.app.Use(s.requestLogger())

	s.app.Get("/healthz", s.health)

	v1 := s.app.Group("/v1")
	v1.Post("/workers", s.workers)
	v1.Post("/annotate", s.annotate)
}

// App returns the underlying Fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves HTTP requests on addr until Shutdown is called
func (s *Server) Listen(addr string) error {

	s.log.Info("server listening", zap.String("addr", addr))

	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server, waiting for active requests until
// ctx is done
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
