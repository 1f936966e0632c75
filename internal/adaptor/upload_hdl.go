package adaptor

import (
	"net/http"
	"path/filepath"
	"strings"

	"voltride-booking/internal/dto/response"
	"voltride-booking/internal/storage"
	"voltride-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// uploads are document scans and inspection photos, so a few MB is plenty
const maxUploadSize = 10 << 20

type UploadHandler struct {
	store storage.ObjectStore
	log   *zap.Logger
}

func NewUploadHandler(store storage.ObjectStore, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		store: store,
		log:   log.With(zap.String("handler", "upload")),
	}
}

// Upload handles POST /api/uploads. Accepts a multipart form with a single
// "file" part and returns the stored object's public URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := "uploads/" + uuid.NewString() + ext

	url, err := h.store.Put(r.Context(), key, contentType, file)
	if err != nil {
		h.log.Error("Failed to upload file",
			zap.Error(err),
			zap.String("filename", header.Filename))
		utils.ResponseInternalError(w, "Failed to store file")
		return
	}

	h.log.Info("File uploaded",
		zap.String("key", key),
		zap.Int64("size", header.Size))

	utils.ResponseCreated(w, "success", response.UploadResponse{URL: url})
}
