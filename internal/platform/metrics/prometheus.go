package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsManager holds the service's Prometheus metrics on its own registry.
type MetricsManager struct {
	Registry        *prometheus.Registry
	AdsCreatedTotal prometheus.Counter
	AdUpdatesTotal  prometheus.Counter
	AdDeletesTotal  prometheus.Counter
	HTTPErrorsTotal *prometheus.CounterVec
	HTTPLatency     *prometheus.HistogramVec
}

func NewMetricsManager(serviceName string) *MetricsManager {
	registry := prometheus.NewRegistry()

	adsCreatedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "ads_created_total",
		Help:      "Total number of ads created.",
	})
	adUpdatesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "ad_updates_total",
		Help:      "Total number of ads updated.",
	})
	adDeletesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "ad_deletes_total",
		Help:      "Total number of ads deleted.",
	})
	httpErrorsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "http_errors_total",
		Help:      "Total number of HTTP error responses by route and status.",
	}, []string{"route", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "http_request_latency_seconds",
		Help:      "Latency of HTTP requests by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	registry.MustRegister(
		adsCreatedTotal,
		adUpdatesTotal,
		adDeletesTotal,
		httpErrorsTotal,
		httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:        registry,
		AdsCreatedTotal: adsCreatedTotal,
		AdUpdatesTotal:  adUpdatesTotal,
		AdDeletesTotal:  adDeletesTotal,
		HTTPErrorsTotal: httpErrorsTotal,
		HTTPLatency:     httpLatency,
	}
}

// StartMetricsServer exposes /metrics on its own listener. A blank port
// disables the server.
func StartMetricsServer(port string, logger *zap.Logger, registry *prometheus.Registry) error {
	if port == "" {
		logger.Info("metrics server port not configured, server will not start")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	logger.Info("metrics server starting", zap.String("port", port), zap.String("path", "/metrics"))
	server := &http.Server{Addr: ":" + port, Handler: mux}
	return server.ListenAndServe()
}
