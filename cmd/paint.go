package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/wvclb/internal/paint"
	"github.com/urfave/cli/v3"
)

// PaintRender replays a paint script onto a fresh canvas and exports it.
func (r *Runner) PaintRender(ctx context.Context, cmd *cli.Command) error {
	ctrl := paint.NewController(paint.Options{
		Width:        r.config.Paint.Width,
		Height:       r.config.Paint.Height,
		PickerWidth:  r.config.Paint.PickerWidth,
		PickerHeight: r.config.Paint.PickerHeight,
	})

	if c := cmd.String("color"); c != "" {
		if err := ctrl.SetColor(c); err != nil {
			return fmt.Errorf("invalid --color: %w", err)
		}
	}

	script, closeScript, err := r.openScript(cmd.String("script"))
	if err != nil {
		return err
	}
	defer closeScript()

	if err := paint.RunScript(script, ctrl); err != nil {
		return fmt.Errorf("paint script failed: %w", err)
	}
	r.logger.Debug("replayed paint script", "strokes", ctrl.Strokes(), "color", ctrl.Color(), "tool", ctrl.Tool())

	output := cmd.String("output")
	asPDF := cmd.Bool("pdf") || strings.EqualFold(filepath.Ext(output), ".pdf")

	switch {
	case output == "-" && asPDF:
		return paint.WritePDF(r.output, ctrl.Surface(), paint.Title)
	case output == "-":
		return paint.EncodePNG(r.output, ctrl.Surface())
	case asPDF:
		if err := paint.ExportPDF(output, ctrl.Surface(), paint.Title); err != nil {
			return err
		}
	default:
		if err := writePNGFile(output, ctrl.Surface()); err != nil {
			return err
		}
	}

	r.logger.Info("canvas exported", "path", output, "pdf", asPDF)
	return r.writePlain("✓ wrote %s\n", output)
}

func (r *Runner) openScript(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return r.input, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open script: %w", err)
	}
	return f, f.Close, nil
}

func writePNGFile(path string, s *paint.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := paint.EncodePNG(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
