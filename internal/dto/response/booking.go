package response

import (
	"time"

	"voltride-booking/internal/data/entity"
)

type BookingResponse struct {
	ID             string     `json:"id"`
	Reference      string     `json:"reference"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	TotalPrice     float64    `json:"totalPrice"`
	PaidAmount     float64    `json:"paidAmount"`
	Source         string     `json:"source"`
	Status         string     `json:"status"`
	FleetVehicleID *string    `json:"fleetVehicleId,omitempty"`
	AssignedAt     *time.Time `json:"assignedAt,omitempty"`

	Customer *CustomerRef `json:"customer,omitempty"`
	Agency   *AgencyRef   `json:"agency,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func BookingToResponse(b *entity.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:         b.ID.String(),
		Reference:  b.Reference,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		PaidAmount: b.PaidAmount,
		Source:     string(b.Source),
		Status:     string(b.Status),
		AssignedAt: b.AssignedAt,
		CreatedAt:  b.CreatedAt,
	}
	if b.FleetVehicleID != nil {
		id := b.FleetVehicleID.String()
		resp.FleetVehicleID = &id
	}

	return resp
}
