package day_slots

import "github.com/m04kA/SMC-AppointmentCore/pkg/types"

// Ledger контракт реестра бронирований, нужен только для проверки занятости
type Ledger interface {
	IsBooked(doctorID int64, dt types.DateTime) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
