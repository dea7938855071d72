package server

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/services"
	"github.com/desertthunder/wvclb/internal/shared"
	"golang.org/x/time/rate"
)

const (
	internalError = "Internal server error"
	uploadMessage = "File uploaded successfully"

	// multipartMemory is how much of a multipart body is buffered before spilling to disk.
	multipartMemory = 32 << 20
	// formOverhead allows for multipart framing and text fields on top of the file itself.
	formOverhead = 1 << 20
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, services.ErrorResponse{Error: msg})
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TracksHandler serves the filtered track listing.
type TracksHandler struct {
	catalog services.Catalog
	logger  *log.Logger
}

func NewTracksHandler(catalog services.Catalog, logger *log.Logger) *TracksHandler {
	return &TracksHandler{catalog: catalog, logger: logger}
}

func (h *TracksHandler) Routes() []string { return []string{"GET /api/tracks"} }

func (h *TracksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.Filter{Search: q.Get("search"), Genre: q.Get("genre")}

	tracks, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("error fetching tracks", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, internalError)
		return
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	writeJSON(w, http.StatusOK, services.ListResponse{Success: true, Tracks: tracks, Total: len(tracks)})
}

// UploadHandler accepts multipart audio uploads.
type UploadHandler struct {
	catalog  services.Catalog
	maxBytes int64
	limit    Middleware
	logger   *log.Logger
}

// NewUploadHandler limits bodies to maxBytes of file plus form overhead. A nil limiter
// disables rate limiting.
func NewUploadHandler(catalog services.Catalog, maxBytes int64, limiter *rate.Limiter, logger *log.Logger) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = 100 * 1024 * 1024
	}
	return &UploadHandler{catalog: catalog, maxBytes: maxBytes, limit: RateLimit(limiter), logger: logger}
}

func (h *UploadHandler) Routes() []string { return []string{"POST /api/upload"} }

func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.limit(http.HandlerFunc(h.upload)).ServeHTTP(w, r)
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+formOverhead)

	req, cleanup, err := h.parse(r)
	if cleanup != nil {
		defer cleanup()
	}
	if err == nil {
		var track *models.Track
		if track, err = h.catalog.Upload(r.Context(), req); err == nil {
			writeJSON(w, http.StatusOK, services.UploadResponse{Success: true, Message: uploadMessage, File: track})
			return
		}
	}

	msg, ok := services.ClientMessage(err)
	if !ok {
		h.logger.Error("upload error", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	h.logger.Warn("upload rejected", "error", err, "request_id", RequestIDFrom(r.Context()))
	writeError(w, http.StatusBadRequest, msg)
}

// parse reads the multipart form into an upload request. A missing file part leaves Body nil.
func (h *UploadHandler) parse(r *http.Request) (services.UploadRequest, func(), error) {
	var req services.UploadRequest

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return req, nil, shared.ErrFileTooLarge
		case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
			return req, nil, shared.ErrMissingFields
		default:
			return req, nil, err
		}
	}
	cleanup := func() { _ = r.MultipartForm.RemoveAll() }

	req.SongName = r.FormValue("songName")
	req.UserName = r.FormValue("userName")
	req.Genre = r.FormValue("genre")

	file, header, err := r.FormFile("audioFile")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, cleanup, nil
	case err != nil:
		return req, cleanup, err
	}

	req.FileName = header.Filename
	req.ContentType = header.Header.Get("Content-Type")
	req.Size = header.Size
	req.Body = file
	return req, func() { closeFile(file); cleanup() }, nil
}

func closeFile(f multipart.File) { _ = f.Close() }

// NewUploadsHandler serves stored audio from dir under /uploads/.
func NewUploadsHandler(dir string) Handler {
	return &uploadsHandler{files: http.StripPrefix("/uploads/", http.FileServer(noListing{http.Dir(dir)}))}
}

type uploadsHandler struct{ files http.Handler }

func (h *uploadsHandler) Routes() []string { return []string{"GET /uploads/"} }

func (h *uploadsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.files.ServeHTTP(w, r)
}

// noListing hides directory indexes.
type noListing struct{ fs http.FileSystem }

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	if info, err := f.Stat(); err == nil && info.IsDir() && !strings.HasSuffix(name, "index.html") {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
