// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/wvclb/internal/models"
)

// MockStore is an in-memory [models.TrackStore] with injectable failures.
type MockStore struct {
	mu      sync.Mutex
	tracks  []models.Track
	ListErr error
	AddErr  error
}

// NewMockStore creates a MockStore holding tracks (seeds are merged on List).
func NewMockStore(tracks ...models.Track) *MockStore {
	return &MockStore{tracks: tracks}
}

func (m *MockStore) List(ctx context.Context) ([]models.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return models.MergeSeeds(append([]models.Track(nil), m.tracks...)), nil
}

func (m *MockStore) Add(ctx context.Context, track models.Track) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddErr != nil {
		return m.AddErr
	}
	m.tracks = append(m.tracks, track)
	return nil
}

// Stored returns the tracks added so far, without seeds.
func (m *MockStore) Stored() []models.Track {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Track(nil), m.tracks...)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// FReader simulates a failure part way through reading an upload body
type FReader struct {
	Prefix []byte
	sent   bool
}

func (f *FReader) Read(p []byte) (n int, err error) {
	if !f.sent {
		f.sent = true
		return copy(p, f.Prefix), nil
	}
	return 0, errors.New("read failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func AssertDirEmpty(t *testing.T, path string) {
	t.Helper()
	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", path, err)
	}
	if len(entries) != 0 {
		t.Errorf("Directory %s should be empty, has %d entries", path, len(entries))
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
