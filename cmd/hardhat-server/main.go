// Command hardhat-server serves worker resolution over HTTP.
package main

import (
	"context"
	"flag"
	"github.com/swdee/go-hardhat/config"
	"github.com/swdee/go-hardhat/logger"
	"github.com/swdee/go-hardhat/postprocess"
	"github.com/swdee/go-hardhat/server"
	"go.uber.org/zap"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout is how long active requests are given to finish
const shutdownTimeout = 10 * time.Second

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	cfgFile := flag.String("c", "", "Config file, defaults and HARDHAT_ environment variables are used when not set")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)

	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	zlog, err := logger.New(cfg.Log)

	if err != nil {
		log.Fatal("Error creating logger: ", err)
	}

	defer zlog.Sync()

	factory := postprocess.NewWorkerFactory(cfg.Params, postprocess.WithLogger(zlog))
	srv := server.New(factory, zlog, cfg.Server)

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Listen(cfg.Server.Addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}

	case sig := <-sigCh:
		zlog.Info("shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			zlog.Error("error shutting down server", zap.Error(err))
		}
	}
}
