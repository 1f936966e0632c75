package adaptor

import (
	"errors"
	"net/http"

	"voltride-booking/internal/usecase"
	"voltride-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			h.log.Warn("Booking not found", zap.String("booking_id", bookingID))
			utils.ResponseNotFound(w, err.Error())
			return
		}
		h.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
