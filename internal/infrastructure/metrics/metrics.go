package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Order metrics
	OrdersPlaced  prometheus.Counter
	OrderCharge   prometheus.Histogram
	OrderDuration prometheus.Histogram
	OrderErrors   *prometheus.CounterVec

	// Loyalty metrics
	Promotions prometheus.Counter

	// Affiliate metrics
	CommissionsPaid  prometheus.Histogram
	WithdrawalsPaid  prometheus.Counter
	CommissionLevels *prometheus.CounterVec

	// Account metrics
	AccountsCreated prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Event metrics
	EventsPublished *prometheus.CounterVec
	EventsFailed    prometheus.Counter

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Order metrics
		OrdersPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glowpanel_orders_placed_total",
			Help: "Total number of orders placed",
		}),
		OrderCharge: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "glowpanel_order_charge",
			Help:    "Order charge amounts",
			Buckets: []float64{0.1, 1, 10, 100, 1000, 10000, 100000},
		}),
		OrderDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "glowpanel_order_duration_seconds",
			Help:    "Duration of order placement",
			Buckets: prometheus.DefBuckets,
		}),
		OrderErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_order_errors_total",
				Help: "Total number of order errors by type",
			},
			[]string{"error_type"},
		),

		// Loyalty metrics
		Promotions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glowpanel_rank_promotions_total",
			Help: "Total number of rank promotions",
		}),

		// Affiliate metrics
		CommissionsPaid: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "glowpanel_commission_amount",
			Help:    "Commission amounts credited to referrers",
			Buckets: []float64{0.01, 0.1, 1, 10, 100, 1000},
		}),
		WithdrawalsPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glowpanel_withdrawals_total",
			Help: "Total number of affiliate withdrawals",
		}),
		CommissionLevels: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_commissions_by_level_total",
				Help: "Total commissions credited by cascade level",
			},
			[]string{"level"},
		),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glowpanel_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "glowpanel_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "glowpanel_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "glowpanel_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Event metrics
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_events_published_total",
				Help: "Total outbox events published",
			},
			[]string{"event_type"},
		),
		EventsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glowpanel_events_failed_total",
			Help: "Total outbox events that failed to publish",
		}),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glowpanel_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
