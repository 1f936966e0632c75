package usecase

import (
	"voltride-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking  BookingService
	Contract ContractService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking:  NewBookingService(repo, log),
		Contract: NewContractService(repo, log),
	}
}
