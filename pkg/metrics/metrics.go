package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	snapshotSavesTotal   *prometheus.CounterVec
	snapshotSaveDuration prometheus.Histogram
	reservationsTotal    *prometheus.CounterVec
	bulkKeysTotal        *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		snapshotSavesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "snapshot_saves_total",
			Help:        "Full-snapshot writes to the key-value store",
			ConstLabels: labels,
		}, []string{"result"}),
		snapshotSaveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "snapshot_save_duration_seconds",
			Help:        "Latency of full-snapshot writes",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		reservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_total",
			Help:        "Reservation attempts by outcome",
			ConstLabels: labels,
		}, []string{"result"}),
		bulkKeysTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "closed_slot_bulk_keys_total",
			Help:        "Closed-slot keys written by bulk operations",
			ConstLabels: labels,
		}, []string{"action"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.snapshotSavesTotal,
		m.snapshotSaveDuration,
		m.reservationsTotal,
		m.bulkKeysTotal,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveSnapshotSave фиксирует запись снапшота
func (m *Metrics) ObserveSnapshotSave(result string, duration time.Duration) {
	m.snapshotSavesTotal.WithLabelValues(result).Inc()
	m.snapshotSaveDuration.Observe(duration.Seconds())
}

// IncReservation фиксирует попытку бронирования с результатом
func (m *Metrics) IncReservation(result string) {
	m.reservationsTotal.WithLabelValues(result).Inc()
}

// AddBulkKeys фиксирует количество ключей, записанных пакетной операцией
func (m *Metrics) AddBulkKeys(action string, n int) {
	m.bulkKeysTotal.WithLabelValues(action).Add(float64(n))
}
