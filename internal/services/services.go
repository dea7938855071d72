// package services defines interface Catalog for listing and uploading tracks
package services

import (
	"context"
	"io"

	"github.com/desertthunder/wvclb/internal/models"
)

// Catalog is the track surface consumed by HTTP handlers and CLI commands.
type Catalog interface {
	// List returns every track matching filter, seeds first.
	List(ctx context.Context, filter models.Filter) ([]models.Track, error)

	// Upload validates and stores an audio file and returns the appended record.
	Upload(ctx context.Context, req UploadRequest) (*models.Track, error)
}

// UploadRequest carries the fields of the multipart upload form.
type UploadRequest struct {
	SongName    string
	UserName    string
	Genre       string    // optional; defaults to [models.DefaultGenre]
	FileName    string    // client-side file name, used for the extension
	ContentType string    // declared MIME type
	Size        int64     // declared size in bytes
	Body        io.Reader // file contents; nil means no file was sent
}

// ListResponse is the JSON body of a successful listing.
type ListResponse struct {
	Success bool           `json:"success"`
	Tracks  []models.Track `json:"tracks"`
	Total   int            `json:"total"`
}

// UploadResponse is the JSON body of a successful upload.
type UploadResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	File    *models.Track `json:"file"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
