package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertthunder/wvclb/internal/shared"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV writes a mono 16-bit silent WAV of the given length.
func writeWAV(t *testing.T, path string, sampleRate int, length time.Duration) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create wav: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, int(length.Seconds()*float64(sampleRate))),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to write samples: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close encoder: %v", err)
	}
}

func TestProbe(t *testing.T) {
	t.Run("wav", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tone.wav")
		writeWAV(t, path, 8000, 3*time.Second)

		d, err := Probe(path)
		if err != nil {
			t.Fatalf("Probe() error = %v", err)
		}
		if got := FormatDuration(d); got != "0:03" {
			t.Errorf("expected 0:03, got %s (%v)", got, d)
		}
	})

	t.Run("uppercase extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "TONE.WAV")
		writeWAV(t, path, 8000, 2*time.Second)

		if _, err := Probe(path); err != nil {
			t.Errorf("Probe() error = %v", err)
		}
	})

	t.Run("garbage wav", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.wav")
		if err := os.WriteFile(path, []byte("definitely not riff"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := Probe(path); err == nil {
			t.Error("expected error for invalid wav")
		}
	})

	t.Run("garbage mp3", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.mp3")
		if err := os.WriteFile(path, []byte{0, 1, 2, 3}, 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := Probe(path); err == nil {
			t.Error("expected error for invalid mp3")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Probe(filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Probe("song.ogg")
		if !errors.Is(err, shared.ErrUnsupportedAudio) {
			t.Errorf("expected ErrUnsupportedAudio, got %v", err)
		}
	})
}

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0:00"},
		{in: 5 * time.Second, want: "0:05"},
		{in: 59600 * time.Millisecond, want: "1:00"},
		{in: 225 * time.Second, want: "3:45"},
		{in: 61*time.Minute + 2*time.Second, want: "61:02"},
		{in: -time.Second, want: "0:00"},
	}

	for _, tt := range tc {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Errorf("FormatDuration(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tc := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0.0 MB"},
		{in: 1024 * 1024, want: "1.0 MB"},
		{in: 8598323, want: "8.2 MB"},
		{in: 100 * 1024 * 1024, want: "100.0 MB"},
	}

	for _, tt := range tc {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSize(tt.in); got != tt.want {
				t.Errorf("FormatSize(%d) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDurationOf(t *testing.T) {
	t.Run("falls back on error", func(t *testing.T) {
		probe := func(string) (time.Duration, error) { return 0, errors.New("boom") }
		got, err := DurationOf(probe, "x.mp3")
		if got != UnknownDuration {
			t.Errorf("expected %s, got %s", UnknownDuration, got)
		}
		if err == nil {
			t.Error("expected probe error to be returned")
		}
	})

	t.Run("formats success", func(t *testing.T) {
		probe := func(string) (time.Duration, error) { return 252 * time.Second, nil }
		got, err := DurationOf(probe, "x.mp3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "4:12" {
			t.Errorf("expected 4:12, got %s", got)
		}
	})
}
