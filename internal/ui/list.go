package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/wvclb/internal/models"
)

var (
	_ list.Item = trackItem{}
)

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

// FilterValue lets the list's fuzzy filter match on song or artist.
func (i trackItem) FilterValue() string {
	return i.track.SongName + " " + i.track.UserName
}

func (i trackItem) Title() string { return i.track.SongName }
func (i trackItem) Description() string {
	parts := []string{i.track.UserName}
	for _, p := range []string{i.track.Genre, i.track.Duration, i.track.FileSize} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " • ")
}

func (i trackItem) details() string {
	t := i.track
	rows := [][2]string{
		{"Song", t.SongName},
		{"Artist", t.UserName},
		{"Genre", t.Genre},
		{"Duration", t.Duration},
		{"Size", t.FileSize},
		{"Uploaded", t.UploadDate},
		{"File", t.FilePath},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", styles.label.Render(fmt.Sprintf("%-9s", r[0]+":")), r[1])
	}
	return b.String()
}

func trackItems(tracks []models.Track) []list.Item {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	return items
}
