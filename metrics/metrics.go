package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScoresSubmittedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "demoday_scores_submitted_total",
	Help: "Number of scores upserted, by submission mode",
}, []string{"mode"})

var AssignmentsChangedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "demoday_assignments_changed_total",
	Help: "Number of judge assignments added or removed",
}, []string{"change"})

var LockTransitionsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "demoday_lock_transitions_total",
	Help: "Number of scoring lock transitions, by resulting state",
}, []string{"state"})

var PrizeReconciliationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "demoday_prize_reconciliations_total",
	Help: "Number of prizes added, updated or removed by prize list saves",
}, []string{"change"})

var PrizeSubmissionsSetCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "demoday_prize_submissions_set_total",
	Help: "Number of prize submission sets replaced",
})

var WinnersSetCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "demoday_winners_set_total",
	Help: "Number of winner sets replaced",
})

var PublishErrorCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "demoday_publish_errors_total",
	Help: "Number of failed best-effort notifications, by sink",
}, []string{"sink"})

var DeliberationBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "demoday_deliberation_build_duration_seconds",
	Help: "Duration of deliberation view builds",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2,
	},
})
