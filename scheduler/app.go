// Package scheduler предоставляет ядро записи к врачу как библиотеку:
// календарь смен, сетку слотов, реестр бронирований с персистентностью
// и выбор момента времени. Презентационный слой (UI) дергает методы App
// в ответ на дискретные действия пользователя.
package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentCore/internal/config"
	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-AppointmentCore/internal/service/bookings"
	"github.com/m04kA/SMC-AppointmentCore/internal/usecase/available_doctors"
	"github.com/m04kA/SMC-AppointmentCore/internal/usecase/book_slot"
	"github.com/m04kA/SMC-AppointmentCore/internal/usecase/day_slots"
	"github.com/m04kA/SMC-AppointmentCore/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentCore/pkg/logger"
	"github.com/m04kA/SMC-AppointmentCore/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentCore/pkg/types"
)

// App собранное ядро: конфиг, логгер, метрики, хранилище, реестр и use cases,
// плюс эфемерное состояние "выбранный момент времени".
type App struct {
	log     *logger.Logger
	metrics *metrics.Metrics

	ledgerSvc   *bookings.Service
	ucAvailable *available_doctors.UseCase
	ucDaySlots  *day_slots.UseCase
	ucBook      *book_slot.UseCase

	stopMetricsCh chan struct{}
	closers       []io.Closer

	mu       sync.Mutex
	selected types.DateTime
}

// New собирает приложение по конфигурации из configPath.
// Реестр загружается из durable-хранилища один раз, здесь;
// нечитаемое или битое состояние дает пустой реестр, а не ошибку.
func New(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	log.Info("Starting SMC-AppointmentCore (storage driver=%s)", cfg.Storage.Driver)

	app := &App{
		log:           log,
		stopMetricsCh: make(chan struct{}),
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled for service %s", cfg.Metrics.ServiceName)
	}

	store, err := app.buildStore(cfg)
	if err != nil {
		app.closeAll()
		return nil, err
	}

	ctx := context.Background()
	repo := ledger.NewRepository(store, log)
	app.ledgerSvc = bookings.NewService(ctx, repo, log, app.metrics)

	app.ucAvailable = available_doctors.NewUseCase(log, app.metrics)
	app.ucDaySlots = day_slots.NewUseCase(app.ledgerSvc, log)
	app.ucBook = book_slot.NewUseCase(app.ledgerSvc, log)

	return app, nil
}

// buildStore создает key-value хранилище по драйверу из конфигурации
func (a *App) buildStore(cfg *config.Config) (ledger.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return ledger.NewFileStore(cfg.Storage.File.Dir), nil

	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("scheduler: failed to open postgres: %w", err)
		}
		a.closers = append(a.closers, db)

		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("scheduler: failed to ping postgres: %w", err)
		}
		a.log.Info("Connected to postgres (host=%s, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.DBName)

		if a.metrics != nil {
			wrapped := dbmetrics.WrapWithDefault(db, a.metrics, cfg.Metrics.ServiceName, a.stopMetricsCh)
			return ledger.NewPostgresStore(wrapped), nil
		}
		return ledger.NewPostgresStore(db), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		a.closers = append(a.closers, client)

		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("scheduler: failed to ping redis: %w", err)
		}
		a.log.Info("Connected to redis (addr=%s)", cfg.Storage.Redis.Addr)

		return ledger.NewRedisStore(client), nil

	default:
		// config.Load уже валидирует драйвер
		return nil, fmt.Errorf("scheduler: unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Close освобождает ресурсы приложения
func (a *App) Close() error {
	close(a.stopMetricsCh)
	a.closeAll()
	a.log.Info("SMC-AppointmentCore stopped")
	return a.log.Close()
}

func (a *App) closeAll() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Error("Close: failed to close resource: %v", err)
		}
	}
	a.closers = nil
}

// Roster возвращает полный ростер врачей в порядке отображения
func (a *App) Roster() []Doctor {
	return fromDomainDoctorList(domain.Roster())
}

// SelectDateTime разбирает сырой ввод пользователя ("2006-01-02T15:04"),
// один раз нормализует его к 30-минутной сетке и запоминает как выбранный
// момент. Возвращает нормализованную строку. Пустой ввод сбрасывает выбор.
func (a *App) SelectDateTime(raw string) (string, error) {
	if raw == "" {
		a.ClearSelection()
		return "", nil
	}

	parsed, err := types.ParseDateTime(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	rounded := parsed.RoundToHalfHour()

	a.mu.Lock()
	a.selected = rounded
	a.mu.Unlock()

	a.log.Debug("SelectDateTime: %q normalized to %s", raw, rounded)
	return rounded.String(), nil
}

// SelectedDateTime возвращает выбранный момент и признак того, что он задан
func (a *App) SelectedDateTime() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.selected.IsZero() {
		return "", false
	}
	return a.selected.String(), true
}

// ShiftDays сдвигает выбранный момент на n календарных дней (n может быть
// отрицательным), сохраняя время. Без выбранного момента — no-op.
func (a *App) ShiftDays(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.selected.IsZero() {
		return
	}
	a.selected = a.selected.AddDays(n)
}

// ClearSelection сбрасывает выбранный момент времени
func (a *App) ClearSelection() {
	a.mu.Lock()
	a.selected = types.DateTime{}
	a.mu.Unlock()
}

// AvailableDoctors возвращает врачей на смене в выбранный момент,
// в порядке ростера. Без выбранного момента список пуст.
// "Доступен" значит "на смене"; занятость слота смотрите через IsBooked.
func (a *App) AvailableDoctors(ctx context.Context) []Doctor {
	a.mu.Lock()
	at := a.selected
	a.mu.Unlock()

	resp, err := a.ucAvailable.Execute(ctx, &available_doctors.Request{At: at})
	if err != nil {
		a.log.Error("AvailableDoctors: %v", err)
		return []Doctor{}
	}
	return fromDomainDoctorList(resp.Doctors)
}

// DaySlots возвращает 26-слотовую сетку дня выбранного момента
// со статусами врача doctorID. Без выбранного момента сетка пуста.
func (a *App) DaySlots(ctx context.Context, doctorID int64) ([]Slot, error) {
	a.mu.Lock()
	day := a.selected
	a.mu.Unlock()

	resp, err := a.ucDaySlots.Execute(ctx, &day_slots.Request{DoctorID: doctorID, Day: day})
	if err != nil {
		if errors.Is(err, day_slots.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return fromUsecaseSlots(resp.Slots), nil
}

// Book бронирует явно указанный слот (путь "клик по сетке").
// Время должно лежать на 30-минутной сетке; слоты из DaySlots
// выровнены по построению.
func (a *App) Book(ctx context.Context, doctorID int64, rawDateTime string) error {
	dt, err := types.ParseDateTime(rawDateTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	return a.book(ctx, doctorID, dt)
}

// BookSelected бронирует текущий выбранный момент (путь "быстрая запись").
// Оба пути идут через один use case и один инвариант уникальности.
func (a *App) BookSelected(ctx context.Context, doctorID int64) error {
	a.mu.Lock()
	dt := a.selected
	a.mu.Unlock()

	if dt.IsZero() {
		return ErrNoSelection
	}
	return a.book(ctx, doctorID, dt)
}

func (a *App) book(ctx context.Context, doctorID int64, dt types.DateTime) error {
	_, err := a.ucBook.Execute(ctx, &book_slot.Request{DoctorID: doctorID, DateTime: dt})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, book_slot.ErrSlotAlreadyBooked):
		return ErrSlotAlreadyBooked
	case errors.Is(err, book_slot.ErrDoctorNotFound):
		return ErrDoctorNotFound
	case errors.Is(err, book_slot.ErrInvalidTimeSlot):
		return ErrInvalidTimeSlot
	default:
		return err
	}
}

// Cancel отменяет бронирование; отсутствие записи — не ошибка
func (a *App) Cancel(ctx context.Context, doctorID int64, rawDateTime string) error {
	dt, err := types.ParseDateTime(rawDateTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	a.ledgerSvc.Cancel(ctx, doctorID, dt)
	return nil
}

// ClearAll очищает весь реестр бронирований
func (a *App) ClearAll(ctx context.Context) {
	a.ledgerSvc.ClearAll(ctx)
}

// IsBooked проверяет занятость пары (врач, время); неразборчивое время — false
func (a *App) IsBooked(doctorID int64, rawDateTime string) bool {
	dt, err := types.ParseDateTime(rawDateTime)
	if err != nil {
		return false
	}
	return a.ledgerSvc.IsBooked(doctorID, dt)
}

// DoctorBookings возвращает бронирования врача в порядке создания
func (a *App) DoctorBookings(doctorID int64) []Booking {
	return fromDomainBookingList(a.ledgerSvc.ListForDoctor(doctorID))
}
