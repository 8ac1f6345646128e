package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oorms/cmd"
	"oorms/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := logging.New(os.Stderr, configs.LogLevel, configs.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	loopCtx, stopLoop := context.WithCancel(context.Background())
	go app.Loop().Run(loopCtx)

	var (
		in  io.Reader
		out io.Writer
	)
	if configs.ConsoleEnabled {
		in, out = os.Stdin, os.Stdout
	}
	session, err := app.RegisterViews(ctx, in, out)
	if err != nil {
		log.Fatalf("Failed to register views: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := app.CreateEcho()
	go startWebServer(e, configs.Address(), stop)

	if session != nil {
		// quit or end of input stops the application
		go func() {
			if err := session.Run(ctx); err != nil {
				logger.Error("console session ended", "error", err)
			}
			stop()
		}()
	}
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	app.KitchenFeed().Close()
	jobManager.StopAll()
	stopLoop()
	<-app.Loop().Done()
	logger.Info("bye")
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}
	return config
}

func startWebServer(e *echo.Echo, address string, stop context.CancelFunc) {
	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("HTTP server failed: %v", err)
		stop()
	}
}
