package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/dto/request"
	"voltride-booking/internal/usecase"
	"voltride-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContractHandler struct {
	service usecase.ContractService
	log     *zap.Logger
}

func NewContractHandler(service usecase.ContractService, log *zap.Logger) *ContractHandler {
	return &ContractHandler{
		service: service,
		log:     log.With(zap.String("handler", "contract")),
	}
}

// CheckOut handles POST /api/bookings/{id}/check-out
func (h *ContractHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	contract, err := h.service.Activate(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "check-out")
		return
	}

	utils.ResponseSuccess(w, "success", contract)
}

// ListContracts handles GET /api/contracts
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 50,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 50)

	contracts, err := h.service.ListContracts(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list contracts")
		return
	}

	utils.ResponseSuccess(w, "success", contracts)
}

// GetContract handles GET /api/contracts/{id}
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "id")
	if contractID == "" {
		utils.ResponseBadRequest(w, "Contract ID is required", nil)
		return
	}

	contract, err := h.service.GetContractByID(r.Context(), contractID)
	if err != nil {
		h.handleServiceError(w, err, "get contract")
		return
	}

	utils.ResponseSuccess(w, "success", contract)
}

// GetMissingDocuments handles GET /api/contracts/{id}/missing-documents
func (h *ContractHandler) GetMissingDocuments(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "id")
	if contractID == "" {
		utils.ResponseBadRequest(w, "Contract ID is required", nil)
		return
	}

	missing, err := h.service.MissingDocuments(r.Context(), contractID)
	if err != nil {
		h.handleServiceError(w, err, "get missing documents")
		return
	}

	utils.ResponseSuccess(w, "success", missing)
}

// AttachDocument handles POST /api/contracts/{id}/documents
func (h *ContractHandler) AttachDocument(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "id")
	if contractID == "" {
		utils.ResponseBadRequest(w, "Contract ID is required", nil)
		return
	}

	var req request.AttachDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	missing, err := h.service.AttachDocument(r.Context(), contractID, &req)
	if err != nil {
		h.handleServiceError(w, err, "attach document")
		return
	}

	utils.ResponseSuccess(w, "success", missing)
}

// Finalize handles POST /api/contracts/{id}/finalize
func (h *ContractHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "id")
	if contractID == "" {
		utils.ResponseBadRequest(w, "Contract ID is required", nil)
		return
	}

	contract, err := h.service.Finalize(r.Context(), contractID)
	if err != nil {
		h.handleServiceError(w, err, "finalize contract")
		return
	}

	utils.ResponseSuccess(w, "success", contract)
}

// handleServiceError maps usecase errors onto HTTP statuses.
func (h *ContractHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var missingErr *usecase.MissingDocumentsError
	var transitionErr *entity.InvalidTransitionError
	var activationErr *usecase.ActivationError

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrContractNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrFleetVehicleNotFound):
		h.log.Warn(operation+" failed - invalid reference",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &missingErr):
		h.log.Warn(operation+" blocked - documents missing",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, "Documents required before finalization", missingErr.Missing)

	case errors.As(err, &transitionErr):
		h.log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.As(err, &activationErr):
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("step", activationErr.Step))
		utils.ResponseInternalError(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
