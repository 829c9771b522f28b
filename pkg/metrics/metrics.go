package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes prometheus collectors for the appointment core.
// All observe methods are nil-safe so metrics can stay disabled.
type Metrics struct {
	bookingsTotal       *prometheus.CounterVec
	cancellationsTotal  prometheus.Counter
	availabilityQueries prometheus.Counter
	ledgerSize          prometheus.Gauge
	dbQueryDuration     *prometheus.HistogramVec
	dbPoolOpen          prometheus.Gauge
	dbPoolInUse         prometheus.Gauge
	dbPoolIdle          prometheus.Gauge
}

// New создает и регистрирует метрики в дефолтном регистре
func New(service string) *Metrics {
	return NewWithRegisterer(service, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики с указанным регистром (для тестов)
func NewWithRegisterer(service string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": service}

	m := &Metrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "smc",
			Subsystem:   "appointments",
			Name:        "bookings_total",
			Help:        "Booking attempts by outcome (created, conflict)",
			ConstLabels: labels,
		}, []string{"outcome"}),
		cancellationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "smc",
			Subsystem:   "appointments",
			Name:        "cancellations_total",
			Help:        "Total cancelled bookings",
			ConstLabels: labels,
		}),
		availabilityQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "smc",
			Subsystem:   "appointments",
			Name:        "availability_queries_total",
			Help:        "Total availability queries served",
			ConstLabels: labels,
		}),
		ledgerSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "smc",
			Subsystem:   "appointments",
			Name:        "ledger_size",
			Help:        "Current number of bookings in the ledger",
			ConstLabels: labels,
		}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "smc",
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Duration of storage queries",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"operation"}),
		dbPoolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "smc",
			Subsystem:   "db",
			Name:        "pool_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}),
		dbPoolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "smc",
			Subsystem:   "db",
			Name:        "pool_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
		dbPoolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "smc",
			Subsystem:   "db",
			Name:        "pool_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.bookingsTotal,
		m.cancellationsTotal,
		m.availabilityQueries,
		m.ledgerSize,
		m.dbQueryDuration,
		m.dbPoolOpen,
		m.dbPoolInUse,
		m.dbPoolIdle,
	)

	return m
}

// ObserveBookingCreated учитывает успешное бронирование
func (m *Metrics) ObserveBookingCreated() {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues("created").Inc()
}

// ObserveBookingConflict учитывает попытку забронировать занятый слот
func (m *Metrics) ObserveBookingConflict() {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues("conflict").Inc()
}

// ObserveBookingCancelled учитывает отмену бронирования
func (m *Metrics) ObserveBookingCancelled() {
	if m == nil {
		return
	}
	m.cancellationsTotal.Inc()
}

// ObserveAvailabilityQuery учитывает запрос доступных врачей
func (m *Metrics) ObserveAvailabilityQuery() {
	if m == nil {
		return
	}
	m.availabilityQueries.Inc()
}

// SetLedgerSize выставляет текущий размер реестра бронирований
func (m *Metrics) SetLedgerSize(n int) {
	if m == nil {
		return
	}
	m.ledgerSize.Set(float64(n))
}

// ObserveDBQuery учитывает длительность запроса к хранилищу
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStats выставляет метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbPoolOpen.Set(float64(open))
	m.dbPoolInUse.Set(float64(inUse))
	m.dbPoolIdle.Set(float64(idle))
}
