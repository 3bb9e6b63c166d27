package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_allocations_total",
			Help: "Total number of team allocations by policy.",
		},
		[]string{"policy"},
	)
	playersAdded = promauto.NewCounter(
		prometheusCounterOpts("players_added_total", "Total number of players added to the roster"),
	)
	playersRemoved = promauto.NewCounter(
		prometheusCounterOpts("players_removed_total", "Total number of players removed from the roster"),
	)
	skillGap = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "team_skill_gap",
			Help:    "Absolute difference between team skill totals.",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 15, 20, 30},
		},
		[]string{"policy"},
	)
	allocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "team_allocation_duration_seconds",
			Help:    "Duration of team allocation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"policy"},
	)
)

// ObserveAllocation учитывает выполненное распределение: счётчик, разницу навыков и длительность.
func ObserveAllocation(policy string, gap int, took time.Duration) {
	allocations.WithLabelValues(policy).Inc()
	skillGap.WithLabelValues(policy).Observe(float64(gap))
	allocationDuration.WithLabelValues(policy).Observe(took.Seconds())
}

// IncPlayersAdded увеличивает счётчик добавленных игроков.
func IncPlayersAdded() {
	playersAdded.Inc()
}

// AddPlayersRemoved увеличивает счётчик удалённых игроков.
func AddPlayersRemoved(delta int) {
	if delta <= 0 {
		return
	}
	playersRemoved.Add(float64(delta))
}

// WriteTextfile сохраняет все зарегистрированные метрики в формате textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Name: name,
		Help: help,
	}
}
