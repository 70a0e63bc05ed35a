package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 监控指标
type Metrics struct {
	// HTTP 请求指标
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// 业务指标
	UsersRegistered      prometheus.Counter
	ConversationsCreated prometheus.Counter
	MessagesSent         prometheus.Counter
	EmailsSent           prometheus.Counter
	EmailInboxCopies     prometheus.Counter

	// 错误指标
	ErrorsTotal *prometheus.CounterVec
	PanicsTotal prometheus.Counter
}

// NewMetrics 创建监控指标（注册到默认 registry，进程内只创建一次）。
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatmail_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatmail_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chatmail_users_registered_total",
			Help: "Total number of registered users",
		}),
		ConversationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chatmail_conversations_created_total",
			Help: "Total number of conversations created",
		}),
		MessagesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chatmail_messages_sent_total",
			Help: "Total number of conversation messages sent",
		}),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chatmail_emails_sent_total",
			Help: "Total number of emails sent",
		}),
		EmailInboxCopies: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chatmail_email_inbox_copies_total",
			Help: "Total number of inbox copies written by email fan-out",
		}),
		ErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatmail_errors_total",
				Help: "Total number of errors",
			},
			[]string{"type", "component"},
		),
		PanicsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chatmail_panics_total",
			Help: "Total number of recovered panics",
		}),
	}
}

// RecordHTTPRequest 记录一次 HTTP 请求
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordError 记录一次错误
func (m *Metrics) RecordError(errorType, component string) {
	m.ErrorsTotal.WithLabelValues(errorType, component).Inc()
}

// Handler 返回 prometheus 指标的 HTTP 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
