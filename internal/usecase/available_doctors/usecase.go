package available_doctors

import (
	"context"

	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
)

// UseCase use case для определения врачей на смене в выбранный момент.
// "Доступен" значит "на смене": реестр бронирований здесь сознательно
// не опрашивается — занятость слота это отдельная аннотация для
// презентационного слоя.
type UseCase struct {
	logger  Logger
	metrics Metrics
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger, metrics Metrics) *UseCase {
	return &UseCase{
		logger:  logger,
		metrics: metrics,
	}
}

// Execute возвращает врачей на смене в момент req.At, сохраняя порядок ростера.
// Пустой момент времени — не ошибка: это состояние "ничего не выбрано",
// ответ с пустым списком.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Нет выбранного времени - нет списка
	if req.At.IsZero() {
		return &Response{Doctors: []domain.Doctor{}}, nil
	}

	uc.metrics.ObserveAvailabilityQuery()

	// 2. Фильтруем ростер через календарь смен
	at := req.At.Time()
	doctors := make([]domain.Doctor, 0)

	for _, doc := range domain.Roster() {
		// Неизвестный тип смены — баг целостности данных, подсвечиваем в логах
		if !doc.Shift.Valid() {
			uc.logger.Warn("AvailableDoctors: doctor id=%d has unknown shift type %q, treated as off duty", doc.ID, doc.Shift)
			continue
		}
		if doc.IsWorkingAt(at) {
			doctors = append(doctors, doc)
		}
	}

	uc.logger.Info("AvailableDoctors: %d of %d doctors on duty at %s", len(doctors), len(domain.Roster()), req.At)

	return &Response{At: req.At, Doctors: doctors}, nil
}
