package get_bookable_days

import (
	"context"

	getBookableDays "github.com/psiagenda/agenda-service/internal/usecase/get_bookable_days"
)

type GetBookableDaysUseCase interface {
	Execute(ctx context.Context) (*getBookableDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
