// Package audio probes uploaded MP3 and WAV files for their playing time and formats
// the sizes and durations shown on track records.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertthunder/wvclb/internal/shared"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// UnknownDuration is recorded when probing fails.
const UnknownDuration = "0:00"

// Prober returns the playing time of the audio file at path.
type Prober func(path string) (time.Duration, error)

// Probe dispatches on the file extension. MP3 length comes from decoding the frame
// stream; WAV length from the RIFF header.
func Probe(path string) (time.Duration, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "mp3":
		return probeMP3(path)
	case "wav":
		return probeWAV(path)
	default:
		return 0, fmt.Errorf("%w: %s", shared.ErrUnsupportedAudio, filepath.Ext(path))
	}
}

func probeMP3(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open mp3: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, fmt.Errorf("mp3 decode failed: %w", err)
	}

	// Length is in bytes of 16-bit stereo PCM.
	length := decoder.Length()
	rate := decoder.SampleRate()
	if length <= 0 || rate <= 0 {
		return 0, fmt.Errorf("mp3 length unavailable")
	}

	seconds := float64(length) / 4 / float64(rate)
	return time.Duration(seconds * float64(time.Second)), nil
}

func probeWAV(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open wav: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return 0, fmt.Errorf("%w: not a valid wav file", shared.ErrUnsupportedAudio)
	}

	d, err := decoder.Duration()
	if err != nil {
		return 0, fmt.Errorf("wav duration failed: %w", err)
	}
	return d, nil
}

// FormatDuration renders d as m:ss after rounding to the nearest second.
func FormatDuration(d time.Duration) string {
	total := int(math.Round(d.Seconds()))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatSize renders a byte count in megabytes with one decimal place.
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.1f MB", float64(bytes)/1024/1024)
}

// DurationOf probes path and formats the result, falling back to [UnknownDuration].
// The probe error is returned alongside so callers can log it.
func DurationOf(probe Prober, path string) (string, error) {
	if probe == nil {
		probe = Probe
	}
	d, err := probe(path)
	if err != nil || d <= 0 {
		return UnknownDuration, err
	}
	return FormatDuration(d), nil
}
