// package formatter renders track listings as tables, CSV, Markdown or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/shared"
)

// Format selects an output encoding.
type Format string

const (
	Table    Format = "table"
	CSV      Format = "csv"
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{Table, CSV, Markdown, JSON}

var headers = []string{"ID", "Song", "Artist", "Genre", "Duration", "Size", "Uploaded"}

// ParseFormat accepts a format name, case-insensitively. "md" is an alias for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Table, CSV, Markdown, JSON:
		return f, nil
	case "md":
		return Markdown, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
}

func row(t models.Track) []string {
	return []string{
		strconv.FormatInt(t.ID, 10),
		t.SongName,
		t.UserName,
		t.Genre,
		t.Duration,
		t.FileSize,
		t.UploadDate,
	}
}

// ExportToCSV converts tracks to CSV with a header row.
func ExportToCSV(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		if err := writer.Write(row(track)); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders a titled Markdown table.
func ExportToMarkdown(title string, tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer

	if title != "" {
		fmt.Fprintf(&buf, "# %s\n\n", title)
	}
	fmt.Fprintf(&buf, "**Tracks**: %d\n\n", len(tracks))

	buf.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	buf.WriteString(strings.Repeat("| --- ", len(headers)) + "|\n")
	for _, track := range tracks {
		cells := row(track)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return buf.Bytes(), nil
}

// ExportToTable renders a bordered terminal table.
func ExportToTable(tracks []models.Track) ([]byte, error) {
	rows := make([][]string, len(tracks))
	for i, track := range tracks {
		rows[i] = row(track)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	return []byte(t.String() + "\n"), nil
}

// ExportToJSON encodes the tracks the same way the listing endpoint does.
func ExportToJSON(tracks []models.Track) ([]byte, error) {
	if tracks == nil {
		tracks = []models.Track{}
	}
	data, err := json.MarshalIndent(tracks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Export renders tracks in format f.
func Export(f Format, title string, tracks []models.Track) ([]byte, error) {
	switch f {
	case CSV:
		return ExportToCSV(tracks)
	case Markdown:
		return ExportToMarkdown(title, tracks)
	case JSON:
		return ExportToJSON(tracks)
	case Table, "":
		return ExportToTable(tracks)
	}
	return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
}

// Write renders tracks to w.
func Write(w io.Writer, f Format, title string, tracks []models.Track) error {
	data, err := Export(f, title, tracks)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteFile renders tracks to path, or to stdout when path is "" or "-".
func WriteFile(path string, f Format, title string, tracks []models.Track) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, f, title, tracks)
	}

	data, err := Export(f, title, tracks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
