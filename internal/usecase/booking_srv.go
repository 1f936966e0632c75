package usecase

import (
	"context"
	"fmt"

	"voltride-booking/internal/data/repository"
	"voltride-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	resp := response.BookingToResponse(booking)

	customer, _ := s.repo.Customer.FindByID(ctx, booking.CustomerID)
	if customer != nil {
		resp.Customer = response.CustomerToRef(customer)
	}

	agency, _ := s.repo.Agency.FindByID(ctx, booking.AgencyID)
	if agency != nil {
		resp.Agency = response.AgencyToRef(agency)
	}

	return resp, nil
}
