package adaptor

import (
	"voltride-booking/internal/storage"
	"voltride-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking  *BookingHandler
	Contract *ContractHandler
	Upload   *UploadHandler
}

func NewHandler(service *usecase.Service, store storage.ObjectStore, log *zap.Logger) *Handler {
	return &Handler{
		Booking:  NewBookingHandler(service.Booking, log),
		Contract: NewContractHandler(service.Contract, log),
		Upload:   NewUploadHandler(store, log),
	}
}
