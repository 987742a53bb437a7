package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"restaurant/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the restaurant server",
		RunE: func(command *cobra.Command, _ []string) error {
			return serve(command.Context(), c.config)
		},
	}
}

func serve(ctx context.Context, cfg cmd.Config) error {
	logger, err := cmd.NewLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	var gormDB *gorm.DB
	if cfg.JournalInDatabase() {
		if gormDB, err = cmd.OpenDatabase(cfg); err != nil {
			return err
		}
	}
	// Runs after every early return and after the servers have stopped.
	defer func() {
		if closeErr := cmd.CloseDatabase(gormDB); closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
	}()

	app, err := cmd.NewCompositionRoot(cfg, gormDB, logger)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%s", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen on gRPC port: %w", err)
	}
	grpcServer := app.CreateGRPCServer()

	e := app.CreateHTTPServer()
	e.Logger.SetLevel(log.WARN)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		_ = listener.Close()
		return err
	}

	failed := make(chan error, 2)
	go func() {
		if serveErr := grpcServer.Serve(listener); serveErr != nil {
			failed <- fmt.Errorf("gRPC server: %w", serveErr)
		}
	}()
	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			failed <- fmt.Errorf("HTTP server: %w", startErr)
		}
	}()

	logger.InfoContext(ctx, "Restaurant server started",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
		"queue_capacity", cfg.QueueCapacity,
		"vehicle_capacity", cfg.VehicleCapacity,
		"journal_in_database", cfg.JournalInDatabase(),
	)

	var runErr error
	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "Shutting down")
	case runErr = <-failed:
		logger.ErrorContext(ctx, "Server failed, shutting down", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Closing the coordinator first releases claimers blocked in RPCs, so the
	// graceful stops below do not wait on them.
	closeErr := app.Close(shutdownCtx)
	jobManager.StopAll()
	httpErr := e.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()

	return errors.Join(runErr, closeErr, httpErr)
}
