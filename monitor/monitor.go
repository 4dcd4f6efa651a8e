// monitor/monitor.go
package monitor

import (
	"expvar"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	PlayersTracked     prometheus.Gauge
	ScoresRecorded     prometheus.Counter
	ValidationFailures prometheus.Counter
	SaveErrors         prometheus.Counter
	SaveLatency        prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		PlayersTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players_tracked",
			Help:      "Number of players on the leaderboard",
		}),
		ScoresRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_recorded_total",
			Help:      "Total number of scores recorded",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected score submissions",
		}),
		SaveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "save_errors_total",
			Help:      "Total number of failed leaderboard saves",
		}),
		SaveLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "save_latency_seconds",
			Help:      "Leaderboard save latency",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
	}

	prometheus.MustRegister(
		m.PlayersTracked,
		m.ScoresRecorded,
		m.ValidationFailures,
		m.SaveErrors,
		m.SaveLatency,
	)

	return m
}

type Monitor struct {
	metrics     *Metrics
	startTime   time.Time
	scoresCount int64
	mutex       sync.Mutex
}

func NewMonitor(namespace string) *Monitor {
	return &Monitor{
		metrics:   NewMetrics(namespace),
		startTime: time.Now(),
	}
}

func (m *Monitor) StartServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())

	// 添加expvar指标
	expvar.Publish("uptime", expvar.Func(func() interface{} {
		return time.Since(m.startTime).Seconds()
	}))

	expvar.Publish("scores_recorded", expvar.Func(func() interface{} {
		m.mutex.Lock()
		defer m.mutex.Unlock()
		return m.scoresCount
	}))

	go http.ListenAndServe(addr, nil)
}

func (m *Monitor) SetPlayersTracked(count int) {
	m.metrics.PlayersTracked.Set(float64(count))
}

func (m *Monitor) IncScoresRecorded() {
	m.metrics.ScoresRecorded.Inc()
	m.mutex.Lock()
	m.scoresCount++
	m.mutex.Unlock()
}

func (m *Monitor) IncValidationFailures() {
	m.metrics.ValidationFailures.Inc()
}

func (m *Monitor) IncSaveErrors() {
	m.metrics.SaveErrors.Inc()
}

func (m *Monitor) ObserveSaveLatency(duration time.Duration) {
	m.metrics.SaveLatency.Observe(duration.Seconds())
}
