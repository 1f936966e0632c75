package wire

import (
	"voltride-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /api/bookings/{id} - Booking details with customer and agency
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
}
