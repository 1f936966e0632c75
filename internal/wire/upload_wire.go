package wire

import (
	"voltride-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUpload(r chi.Router, uploadHandler *adaptor.UploadHandler) {
	// POST /api/uploads - Store a document scan or inspection photo
	r.Post("/api/uploads", uploadHandler.Upload)
}
