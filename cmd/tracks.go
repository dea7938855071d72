package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/desertthunder/wvclb/internal/formatter"
	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/services"
	"github.com/urfave/cli/v3"
)

// TracksList prints the filtered catalogue in the requested format.
func (r *Runner) TracksList(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	svc, closeStore, err := r.catalog(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	filter := models.Filter{Search: cmd.String("search"), Genre: cmd.String("genre")}
	tracks, err := svc.List(ctx, filter)
	if err != nil {
		return err
	}
	r.logger.Debug("listed tracks", "count", len(tracks), "search", filter.Search, "genre", filter.Genre)

	output := cmd.String("output")
	if output == "" || output == "-" {
		return formatter.Write(r.output, format, "Tracks", tracks)
	}
	if err := formatter.WriteFile(output, format, "Tracks", tracks); err != nil {
		return err
	}
	return r.writePlain("✓ wrote %d tracks to %s\n", len(tracks), output)
}

// TracksAdd uploads a local audio file through the same validation as the HTTP endpoint.
func (r *Runner) TracksAdd(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("file")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	svc, closeStore, err := r.catalog(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	track, err := svc.Upload(ctx, services.UploadRequest{
		SongName:    cmd.String("song"),
		UserName:    cmd.String("user"),
		Genre:       cmd.String("genre"),
		FileName:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Size:        info.Size(),
		Body:        f,
	})
	if err != nil {
		if msg, ok := services.ClientMessage(err); ok {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, true)
	}
	return r.writePlain("✓ added %q by %s (%s, %s) as %s\n", track.SongName, track.UserName, track.Duration, track.FileSize, track.FileName)
}
