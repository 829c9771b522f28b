package available_doctors

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Metrics интерфейс метрик; реализация может быть nil-safe
type Metrics interface {
	ObserveAvailabilityQuery()
}
