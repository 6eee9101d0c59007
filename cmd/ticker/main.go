package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/sports-ticker/internal/config"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
	"github.com/preston-bernstein/sports-ticker/internal/server"
	"github.com/preston-bernstein/sports-ticker/internal/supervisor"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	out, closeLog, err := logOutput(cfg.Log.File)
	if err != nil {
		slog.Error("cannot open log file, logging to stdout", "path", cfg.Log.File, "error", err)
		out, closeLog = os.Stdout, func() {}
	}
	defer closeLog()

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "sports-ticker",
		Version: appVersion,
		Output:  out,
	})

	if cfg.DotEnvErr != nil {
		logger.Warn("ignoring unreadable .env file", "error", cfg.DotEnvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger, stop)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}
	if err := srv.Run(ctx, stop); err != nil {
		if supervisor.IsFatal(err) {
			logger.Error("ticker loop gave up, exiting for external restart", "error", err)
		} else {
			logger.Error("ticker stopped with error", "error", err)
		}
		return 1
	}
	return 0
}

// logOutput opens path for appending, or returns stdout when path is empty.
func logOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
