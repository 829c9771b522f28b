package book_slot

import (
	"context"

	"github.com/m04kA/SMC-AppointmentCore/pkg/types"
)

// Ledger контракт реестра бронирований
type Ledger interface {
	Book(ctx context.Context, doctorID int64, dt types.DateTime) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
