package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/wvclb/internal/paint"
	"github.com/desertthunder/wvclb/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs the HTTP server until SIGINT or SIGTERM.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeStore, err := r.catalog(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	addr := r.config.Addr()
	if a := cmd.String("addr"); a != "" {
		addr = a
	}

	srv, err := server.New(server.Options{
		Addr:        addr,
		Catalog:     svc,
		UploadsDir:  svc.UploadsDir(),
		MaxUpload:   r.config.MaxUploadBytes(),
		UploadRPS:   r.config.Upload.RequestsPerSecond,
		UploadBurst: r.config.Upload.Burst,
		Paint: paint.Options{
			Width:        r.config.Paint.Width,
			Height:       r.config.Paint.Height,
			PickerWidth:  r.config.Paint.PickerWidth,
			PickerHeight: r.config.Paint.PickerHeight,
		},
		Logger: r.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	r.logger.Info("server stopped")
	return nil
}
