// package repositories provides track store implementations and driver selection.
package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/shared"
)

// Opened is a track store along with the function that releases its resources.
type Opened struct {
	Store  models.TrackStore
	Driver string
	Close  func() error
}

// Open builds the track store selected by config.Storage.Driver.
//
// The sqlite driver opens the database, applies pool settings and runs pending migrations.
func Open(ctx context.Context, config *shared.Config) (*Opened, error) {
	switch config.Storage.Driver {
	case "json", "":
		store, err := NewJSONStore(config.TracksPath())
		if err != nil {
			return nil, err
		}
		return &Opened{Store: store, Driver: "json", Close: func() error { return nil }}, nil
	case "sqlite":
		db, err := shared.NewDatabase(config.Database.Path)
		if err != nil {
			return nil, err
		}
		shared.ConfigureDatabase(db, config.Database.Path, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return &Opened{Store: NewSQLiteStore(db), Driver: "sqlite", Close: db.Close}, nil
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownDriver, config.Storage.Driver)
	}
}
