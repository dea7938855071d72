package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wvclb/internal/audio"
	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/shared"
)

var (
	allowedTypes      = []string{"audio/mpeg", "audio/wav", "audio/wave"}
	allowedExtensions = []string{"mp3", "wav"}
	unsafeNameChars   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// TrackService implements [Catalog] on a [models.TrackStore] and an uploads directory.
type TrackService struct {
	store      models.TrackStore
	uploadsDir string
	maxSize    int64
	probe      audio.Prober
	now        func() time.Time
	logger     *log.Logger
}

// TrackServiceOpts configures a [TrackService].
type TrackServiceOpts struct {
	Store      models.TrackStore
	UploadsDir string
	MaxSize    int64 // bytes; defaults to 100 MB
	Probe      audio.Prober
	Now        func() time.Time
	Logger     *log.Logger
}

// NewTrackService creates a TrackService, creating the uploads directory if needed.
func NewTrackService(opts TrackServiceOpts) (*TrackService, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("%w: track store is required", shared.ErrInvalidArgument)
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = 100 * 1024 * 1024
	}
	if opts.Probe == nil {
		opts.Probe = audio.Probe
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.UploadsDir == "" {
		opts.UploadsDir = filepath.Join("public", "uploads")
	}

	if err := os.MkdirAll(opts.UploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &TrackService{
		store:      opts.Store,
		uploadsDir: opts.UploadsDir,
		maxSize:    opts.MaxSize,
		probe:      opts.Probe,
		now:        opts.Now,
		logger:     shared.WithLogger(opts.Logger, "component", "tracks"),
	}, nil
}

// UploadsDir returns the directory uploaded files are written to.
func (s *TrackService) UploadsDir() string { return s.uploadsDir }

// List returns every track matching filter, seeds first.
func (s *TrackService) List(ctx context.Context, filter models.Filter) ([]models.Track, error) {
	tracks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return filter.Apply(tracks), nil
}

// Upload validates req, writes the file, probes it and appends the record.
func (s *TrackService) Upload(ctx context.Context, req UploadRequest) (*models.Track, error) {
	ext, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	timestamp := now.UnixMilli()
	fileName := fmt.Sprintf("%s_%s_%d.%s", SanitizeName(req.UserName), SanitizeName(req.SongName), timestamp, ext)
	dest := filepath.Join(s.uploadsDir, fileName)

	written, err := s.save(ctx, dest, req.Body)
	if err != nil {
		return nil, err
	}

	size := req.Size
	if size <= 0 {
		size = written
	}

	duration, err := audio.DurationOf(s.probe, dest)
	if err != nil {
		s.logger.Warn("could not parse audio duration", "file", fileName, "error", err)
	}

	genre := strings.TrimSpace(req.Genre)
	if genre == "" {
		genre = models.DefaultGenre
	}

	track := models.Track{
		ID:         timestamp,
		SongName:   strings.TrimSpace(req.SongName),
		UserName:   strings.TrimSpace(req.UserName),
		FileName:   fileName,
		FilePath:   "/uploads/" + fileName,
		FileSize:   audio.FormatSize(size),
		Duration:   duration,
		UploadDate: now.UTC().Format(time.DateOnly),
		Genre:      genre,
	}

	if err := s.store.Add(ctx, track); err != nil {
		return nil, fmt.Errorf("failed to save track: %w", err)
	}

	s.logger.Info("track uploaded", "id", track.ID, "file", fileName, "size", track.FileSize, "duration", track.Duration)
	return &track, nil
}

// validate returns the lower-cased file extension of an acceptable request.
func (s *TrackService) validate(req UploadRequest) (string, error) {
	if strings.TrimSpace(req.SongName) == "" || strings.TrimSpace(req.UserName) == "" || req.Body == nil || req.FileName == "" {
		return "", shared.ErrMissingFields
	}

	ext := FileExtension(req.FileName)
	if !slices.Contains(allowedTypes, strings.ToLower(req.ContentType)) && !slices.Contains(allowedExtensions, ext) {
		return "", fmt.Errorf("%w: %s (%s)", shared.ErrInvalidFileType, req.FileName, req.ContentType)
	}

	if req.Size > s.maxSize {
		return "", fmt.Errorf("%w: %d bytes", shared.ErrFileTooLarge, req.Size)
	}

	return ext, nil
}

// save copies body to dest, enforcing the size limit on the bytes actually received.
func (s *TrackService) save(ctx context.Context, dest string, body io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create upload file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(body, s.maxSize+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		err = fmt.Errorf("failed to write upload file: %w", err)
	case n > s.maxSize:
		err = fmt.Errorf("%w: %d bytes", shared.ErrFileTooLarge, n)
	case closeErr != nil:
		err = fmt.Errorf("failed to close upload file: %w", closeErr)
	}

	if err != nil {
		if rmErr := os.Remove(dest); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			s.logger.Warn("failed to remove partial upload", "file", dest, "error", rmErr)
		}
		return 0, err
	}

	return n, nil
}

// SanitizeName replaces every non-alphanumeric ASCII character with an underscore.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// FileExtension returns the lower-cased text after the final dot of name.
func FileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return strings.ToLower(name)
	}
	return strings.ToLower(name[i+1:])
}

// ClientMessage maps an upload or listing error onto the message returned to clients.
// ok is false for errors that should surface as internal server errors.
func ClientMessage(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, shared.ErrMissingFields):
		return "Missing required fields", true
	case errors.Is(err, shared.ErrInvalidFileType):
		return "Invalid file type. Only MP3 and WAV files are allowed.", true
	case errors.Is(err, shared.ErrFileTooLarge):
		return "File too large. Maximum size is 100MB.", true
	default:
		return "Internal server error", false
	}
}
