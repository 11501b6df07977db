package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics shared by every variant.
type Metrics struct {
	registry *prometheus.Registry

	UsersCreated prometheus.Counter
	UsersDeleted prometheus.Counter
}

// New creates and registers the metrics against reg. The architecture label
// keeps the four binaries distinguishable when scraped side by side.
func New(reg *prometheus.Registry, architecture string) *Metrics {
	labels := prometheus.Labels{"architecture": architecture}
	return &Metrics{
		registry: reg,
		UsersCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name:        "userarch_users_created_total",
			Help:        "Total number of users created in the system",
			ConstLabels: labels,
		}),
		UsersDeleted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name:        "userarch_users_deleted_total",
			Help:        "Total number of users deleted from the system",
			ConstLabels: labels,
		}),
	}
}

// Handler returns the scrape endpoint for the registry the metrics were
// registered against.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IncrementUsersCreated increments the users created counter by 1.
func (m *Metrics) IncrementUsersCreated() {
	if m != nil {
		m.UsersCreated.Inc()
	}
}

// IncrementUsersDeleted increments the users deleted counter by 1.
func (m *Metrics) IncrementUsersDeleted() {
	if m != nil {
		m.UsersDeleted.Inc()
	}
}
