package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/wvclb/internal/models"
)

// SQLiteStore implements [models.TrackStore] on the tracks table created by the embedded migrations.
//
// Seed tracks are merged at read time exactly as the JSON store does, so the two drivers
// list identical catalogues.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore with the given database connection
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// List returns seed tracks followed by stored tracks in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Track, error) {
	stored, err := s.query(ctx)
	if err != nil {
		return nil, err
	}
	return models.MergeSeeds(stored), nil
}

// Add inserts a new [models.Track].
func (s *SQLiteStore) Add(ctx context.Context, track models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO tracks (id, song_name, user_name, file_name, file_path, file_size, duration, upload_date, genre)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		track.ID,
		track.SongName,
		track.UserName,
		track.FileName,
		track.FilePath,
		track.FileSize,
		track.Duration,
		track.UploadDate,
		track.Genre,
	)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	return nil
}

// query returns every stored track in insertion order. Filtering stays in [models.Filter]
// so both drivers match names the same way.
func (s *SQLiteStore) query(ctx context.Context) ([]models.Track, error) {
	query := `
		SELECT id, song_name, user_name, file_name, file_path, file_size, duration, upload_date, genre
		FROM tracks
		ORDER BY created_at ASC, rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.SongName, &t.UserName, &t.FileName, &t.FilePath, &t.FileSize, &t.Duration, &t.UploadDate, &t.Genre); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tracks, nil
}
