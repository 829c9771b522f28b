package bookings

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/pkg/types"
)

// Service реестр бронирований — единственный владелец коллекции.
// Держит записи в памяти в порядке вставки и синхронно перезаписывает
// durable-хранилище после каждой успешной мутации.
//
// Мьютекс делает check-then-insert в Book атомарным: инвариант
// "не более одного бронирования на пару (врач, слот)" выполняется
// при любом количестве конкурентных вызовов.
type Service struct {
	repo    LedgerRepository
	logger  Logger
	metrics Metrics

	mu       sync.Mutex
	bookings []domain.Booking
	index    map[bookingKey]struct{}
}

type bookingKey struct {
	doctorID int64
	dateTime string
}

// NewService создает реестр и один раз загружает его из хранилища.
// Нечитаемое или битое состояние не блокирует запуск: реестр стартует
// пустым, проблема уходит в лог.
func NewService(ctx context.Context, repo LedgerRepository, logger Logger, metrics Metrics) *Service {
	s := &Service{
		repo:     repo,
		logger:   logger,
		metrics:  metrics,
		bookings: []domain.Booking{},
		index:    make(map[bookingKey]struct{}),
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		logger.Error("bookings.NewService: failed to load ledger, starting empty: %v", err)
		loaded = []domain.Booking{}
	}

	for _, b := range loaded {
		key := bookingKey{doctorID: b.DoctorID, dateTime: b.DateTime.String()}
		// Дубликаты в хранилище нарушают инвариант — отбрасываем с предупреждением
		if _, exists := s.index[key]; exists {
			logger.Warn("bookings.NewService: duplicate persisted booking doctor=%d at=%s dropped", b.DoctorID, b.DateTime)
			continue
		}
		s.bookings = append(s.bookings, b)
		s.index[key] = struct{}{}
	}

	logger.Info("bookings.NewService: ledger loaded, %d bookings", len(s.bookings))
	metrics.SetLedgerSize(len(s.bookings))

	return s
}

// IsBooked проверяет точное совпадение пары (врач, время)
func (s *Service) IsBooked(doctorID int64, dt types.DateTime) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, booked := s.index[bookingKey{doctorID: doctorID, dateTime: dt.String()}]
	return booked
}

// Book добавляет бронирование, если слот свободен.
// Возвращает ErrSlotAlreadyBooked, если пара (врач, время) уже занята.
// Ошибка записи хранилища логируется и не возвращается: реестр в памяти
// остается авторитетным до конца сессии.
func (s *Service) Book(ctx context.Context, doctorID int64, dt types.DateTime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bookingKey{doctorID: doctorID, dateTime: dt.String()}
	if _, booked := s.index[key]; booked {
		s.logger.Info("bookings.Book: slot conflict doctor=%d at=%s", doctorID, dt)
		s.metrics.ObserveBookingConflict()
		return ErrSlotAlreadyBooked
	}

	s.bookings = append(s.bookings, domain.Booking{DoctorID: doctorID, DateTime: dt})
	s.index[key] = struct{}{}

	s.logger.Info("bookings.Book: booked doctor=%d at=%s, ledger size=%d", doctorID, dt, len(s.bookings))
	s.metrics.ObserveBookingCreated()
	s.metrics.SetLedgerSize(len(s.bookings))

	s.persist(ctx)
	return nil
}

// Cancel удаляет бронирование, если оно есть; отсутствие записи — не ошибка
func (s *Service) Cancel(ctx context.Context, doctorID int64, dt types.DateTime) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bookingKey{doctorID: doctorID, dateTime: dt.String()}
	if _, booked := s.index[key]; !booked {
		return
	}

	delete(s.index, key)
	for i, b := range s.bookings {
		if b.Matches(doctorID, dt) {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			break
		}
	}

	s.logger.Info("bookings.Cancel: cancelled doctor=%d at=%s, ledger size=%d", doctorID, dt, len(s.bookings))
	s.metrics.ObserveBookingCancelled()
	s.metrics.SetLedgerSize(len(s.bookings))

	s.persist(ctx)
}

// ClearAll полностью очищает реестр
func (s *Service) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = []domain.Booking{}
	s.index = make(map[bookingKey]struct{})

	s.logger.Info("bookings.ClearAll: ledger cleared")
	s.metrics.SetLedgerSize(0)

	s.persist(ctx)
}

// ListForDoctor возвращает бронирования врача в порядке вставки
func (s *Service) ListForDoctor(doctorID int64) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.DoctorID == doctorID {
			out = append(out, b)
		}
	}
	return out
}

// Size возвращает количество бронирований в реестре
func (s *Service) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// persist синхронно перезаписывает хранилище; вызывается под мьютексом
func (s *Service) persist(ctx context.Context) {
	snapshot := make([]domain.Booking, len(s.bookings))
	copy(snapshot, s.bookings)

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Error("bookings.persist: failed to save ledger (%d bookings), in-memory state remains authoritative: %v",
			len(snapshot), err)
	}
}
