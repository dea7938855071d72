// package models defines the data model for the music sharing service
package models

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// GenreAll disables genre filtering.
const GenreAll = "all"

// DefaultGenre is assigned to uploads, which carry no genre field.
const DefaultGenre = "Unknown"

// Track is a metadata record describing one uploaded audio file.
type Track struct {
	ID         int64  `json:"id"`
	SongName   string `json:"songName"`
	UserName   string `json:"userName"`
	FileName   string `json:"fileName"`
	FilePath   string `json:"filePath"`
	FileSize   string `json:"fileSize"`
	Duration   string `json:"duration"`
	UploadDate string `json:"uploadDate"`
	Genre      string `json:"genre"`
}

// Validate checks the fields a stored record cannot do without.
func (t Track) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("track id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.SongName) == "" {
		return fmt.Errorf("track %d: song name is required", t.ID)
	}
	if strings.TrimSpace(t.UserName) == "" {
		return fmt.Errorf("track %d: user name is required", t.ID)
	}
	if t.FileName == "" {
		return fmt.Errorf("track %d: file name is required", t.ID)
	}
	return nil
}

// TrackStore persists uploaded tracks and lists them merged with [SeedTracks].
type TrackStore interface {
	List(ctx context.Context) ([]Track, error)  // List returns seed tracks followed by stored tracks
	Add(ctx context.Context, track Track) error // Add appends one uploaded track
}

// Filter holds the listing criteria accepted by the tracks endpoint.
type Filter struct {
	Search string // case-insensitive substring over song and user name
	Genre  string // "", "all", or an exact genre
}

// Matches reports whether t satisfies f.
func (f Filter) Matches(t Track) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.SongName), q) && !strings.Contains(strings.ToLower(t.UserName), q) {
			return false
		}
	}
	if f.Genre != "" && f.Genre != GenreAll && t.Genre != f.Genre {
		return false
	}
	return true
}

// Apply returns the tracks matching f, preserving order.
func (f Filter) Apply(tracks []Track) []Track {
	out := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Genres returns the distinct genres present in tracks, sorted.
func Genres(tracks []Track) []string {
	var genres []string
	for _, t := range tracks {
		if t.Genre != "" && !slices.Contains(genres, t.Genre) {
			genres = append(genres, t.Genre)
		}
	}
	slices.Sort(genres)
	return genres
}
