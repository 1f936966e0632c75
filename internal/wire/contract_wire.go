package wire

import (
	"voltride-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContract(r chi.Router, contractHandler *adaptor.ContractHandler) {
	// POST /api/bookings/{id}/check-out - Activate a rental contract
	r.Post("/api/bookings/{id}/check-out", contractHandler.CheckOut)

	r.Route("/api/contracts", func(r chi.Router) {
		// GET /api/contracts - Paginated contract list
		r.Get("/", contractHandler.ListContracts)

		// GET /api/contracts/{id} - Contract details
		r.Get("/{id}", contractHandler.GetContract)

		// GET /api/contracts/{id}/missing-documents - Document gate status
		r.Get("/{id}/missing-documents", contractHandler.GetMissingDocuments)

		// POST /api/contracts/{id}/documents - Attach a captured document
		r.Post("/{id}/documents", contractHandler.AttachDocument)

		// POST /api/contracts/{id}/finalize - Complete the contract
		r.Post("/{id}/finalize", contractHandler.Finalize)
	})
}
