package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
)

// StorageKey единственный ключ durable-хранилища, под которым лежит
// весь реестр бронирований как JSON массив записей
const StorageKey = "doctor-appointment-bookings"

// Repository кодек реестра бронирований поверх key-value хранилища.
// Формат: JSON массив записей в порядке вставки, без версионирования схемы,
// полная перезапись при каждой мутации.
type Repository struct {
	store KeyValueStore
	log   Logger
}

// NewRepository создает репозиторий реестра над указанным хранилищем
func NewRepository(store KeyValueStore, log Logger) *Repository {
	return &Repository{store: store, log: log}
}

// Load читает весь реестр из хранилища.
// Отсутствующий ключ — пустой реестр. Непарсящееся значение — тоже пустой
// реестр: ошибка логируется и НЕ пробрасывается наверх, чтобы поврежденное
// состояние не блокировало запуск.
func (r *Repository) Load(ctx context.Context) ([]domain.Booking, error) {
	raw, found, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read key %q: %v", ErrExecQuery, StorageKey, err)
	}
	if !found || len(raw) == 0 {
		return []domain.Booking{}, nil
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		r.log.Warn("ledger.Load: malformed persisted state under key %q, falling back to empty ledger: %v", StorageKey, err)
		return []domain.Booking{}, nil
	}

	return bookings, nil
}

// Save полностью перезаписывает реестр в хранилище
func (r *Repository) Save(ctx context.Context, bookings []domain.Booking) error {
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal %d bookings: %v", ErrExecQuery, len(bookings), err)
	}

	if err := r.store.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("%w: Save - write key %q: %v", ErrExecQuery, StorageKey, err)
	}

	return nil
}
