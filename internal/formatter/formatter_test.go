package formatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/shared"
	th "github.com/desertthunder/wvclb/internal/testing"
)

func sample() []models.Track {
	return []models.Track{
		{ID: 1, SongName: "Midnight Dreams", UserName: "Alex Johnson", Genre: "Electronic", Duration: "3:45", FileSize: "8.2 MB", UploadDate: "2024-01-15"},
		{ID: 2, SongName: "Pipe | Song", UserName: "Sarah, Chen", Genre: "Pop", Duration: "4:12", FileSize: "9.8 MB", UploadDate: "2024-01-14"},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sample())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("CSV does not parse: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if strings.Join(records[0], ",") != "ID,Song,Artist,Genre,Duration,Size,Uploaded" {
			t.Errorf("CSV headers = %v", records[0])
		}
		if records[2][2] != "Sarah, Chen" {
			t.Errorf("quoted field lost: %q", records[2][2])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown("Library", sample())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		output := string(data)

		for _, want := range []string{"# Library", "**Tracks**: 2", "| Midnight Dreams |", `Pipe \| Song`} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("ExportToTable", func(t *testing.T) {
		data, err := ExportToTable(sample())
		if err != nil {
			t.Fatalf("ExportToTable failed: %v", err)
		}
		output := string(data)
		for _, want := range []string{"Song", "Midnight Dreams", "9.8 MB"} {
			if !strings.Contains(output, want) {
				t.Errorf("table missing %q", want)
			}
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(nil)
		if err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("empty JSON = %s", data)
		}

		data, err = ExportToJSON(sample())
		if err != nil {
			t.Fatal(err)
		}
		var back []models.Track
		if err := json.Unmarshal(data, &back); err != nil || len(back) != 2 || back[0].SongName != "Midnight Dreams" {
			t.Errorf("JSON = %s (%v)", data, err)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: Table},
		{in: "CSV", want: CSV},
		{in: "md", want: Markdown},
		{in: " json ", want: JSON},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidFlag) {
					t.Errorf("err = %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	t.Run("WriteFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tracks.csv")
		if err := WriteFile(path, CSV, "", sample()); err != nil {
			t.Fatal(err)
		}
		th.AssertFileExists(t, path)
		if !strings.Contains(th.MustReadFile(t, path), "Midnight Dreams") {
			t.Error("file missing track")
		}
	})

	t.Run("writer failure", func(t *testing.T) {
		if err := Write(&th.FWriter{}, JSON, "", sample()); err == nil {
			t.Error("expected write error")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := Export("yaml", "", sample()); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("err = %v", err)
		}
	})
}
