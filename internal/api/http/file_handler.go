package http

import (
	"io"
	"net/http"

	"orghub-backend/internal/storage"
)

// FileHandler serves the local-storage upload and download endpoints that
// back the generated file URLs.
type FileHandler struct {
	files       storage.Storage
	maxFileSize int64 // bytes
}

func NewFileHandler(files storage.Storage, maxFileSizeMB int64) *FileHandler {
	return &FileHandler{
		files:       files,
		maxFileSize: maxFileSizeMB * 1024 * 1024,
	}
}

// Upload handles PUT /files/upload/{token}?key=.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "FILE_001", "Missing key parameter.")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !storage.ValidUploadTypes[contentType] {
		writeJSON(w, http.StatusUnsupportedMediaType, errorEnvelope{
			Error: errorBody{Code: "FILE_002", Message: "Only PNG, JPG, PDF, DOC and DOCX files are allowed."},
		})
		return
	}

	limited := http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := h.files.SaveFile(key, limited); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorEnvelope{
			Error: errorBody{Code: "FILE_003", Message: "Upload failed or exceeded the size limit."},
		})
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Download handles GET /files/download?key=.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "FILE_001", "Missing key parameter.")
		return
	}

	f, err := h.files.ReadFile(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorEnvelope{
			Error: errorBody{Code: "FILE_004", Message: "File not found."},
		})
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	io.Copy(w, f)
}
