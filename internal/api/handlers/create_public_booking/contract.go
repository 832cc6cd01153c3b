package create_public_booking

import (
	"context"

	createPublicBooking "github.com/psiagenda/agenda-service/internal/usecase/create_public_booking"
)

type CreatePublicBookingUseCase interface {
	Execute(ctx context.Context, req *createPublicBooking.Request) (*createPublicBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
