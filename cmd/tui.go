package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wvclb/internal/shared"
	"github.com/desertthunder/wvclb/internal/ui"
	"github.com/urfave/cli/v3"
)

// TracksBrowse launches the interactive track browser.
func (r *Runner) TracksBrowse(ctx context.Context, cmd *cli.Command) error {
	closeLog, err := r.useFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	svc, closeStore, err := r.catalog(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	model := ui.NewBrowserModel(ctx, svc)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// PaintTUI launches the mouse-driven terminal canvas.
func (r *Runner) PaintTUI(ctx context.Context, cmd *cli.Command) error {
	closeLog, err := r.useFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	model := ui.NewPaintModel(ui.PaintOptions{
		Cols:   int(cmd.Int("cols")),
		Rows:   int(cmd.Int("rows")),
		Output: cmd.String("output"),
		Picker: [2]int{r.config.Paint.PickerWidth, r.config.Paint.PickerHeight},
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	r.logger.Info("paint session ended", "strokes", model.Controller().Strokes())
	return nil
}

// useFileLogger redirects logs to log.file so they don't interfere with TUI rendering.
// The returned func restores the previous logger and closes the file.
func (r *Runner) useFileLogger() (func() error, error) {
	fileLogger, closeLog, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	prev := r.logger
	r.SetLogger(fileLogger)
	return func() error {
		r.logger = prev
		return closeLog()
	}, nil
}
