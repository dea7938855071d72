package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/shared"
)

// JSONStore implements [models.TrackStore] over a flat JSON array on disk.
//
// Only uploaded tracks are written; the seed catalogue is merged in on every read.
// There is no locking: concurrent writers can lose each other's records.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore backed by the file at path, creating its directory.
func NewJSONStore(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &JSONStore{path: path}, nil
}

// Path returns the backing file.
func (s *JSONStore) Path() string { return s.path }

// List returns the seed tracks followed by every stored track in insertion order.
// A missing file is an empty store.
func (s *JSONStore) List(ctx context.Context) ([]models.Track, error) {
	stored, err := s.load()
	if err != nil {
		return nil, err
	}
	return models.MergeSeeds(stored), nil
}

// Add appends track to the file, rewriting it in full.
func (s *JSONStore) Add(ctx context.Context, track models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	stored, err := s.load()
	if err != nil {
		return err
	}

	uploaded := make([]models.Track, 0, len(stored)+1)
	for _, t := range stored {
		if !models.IsSeed(t.ID) {
			uploaded = append(uploaded, t)
		}
	}
	uploaded = append(uploaded, track)

	data, err := json.MarshalIndent(uploaded, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tracks: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tracks file: %w", err)
	}

	return nil
}

func (s *JSONStore) load() ([]models.Track, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreUnreadable, err)
	}

	var tracks []models.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrStoreUnreadable, s.path, err)
	}
	return tracks, nil
}
