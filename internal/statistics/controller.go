package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tpfand/tpfand/internal/status"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	store *status.Store

	transitions        *prometheus.Desc
	writeFailures      *prometheus.Desc
	resyncs            *prometheus.Desc
	skippedTicks       *prometheus.Desc
	remainingHoldTicks *prometheus.Desc
	targetLevel        *prometheus.Desc
}

func NewControllerCollector(store *status.Store) *ControllerCollector {
	return &ControllerCollector{
		store: store,
		transitions: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "transitions_total"),
			"Number of profile transitions, including the initial selection",
			nil, nil,
		),
		writeFailures: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "write_failures_total"),
			"Number of failed fan level writes",
			nil, nil,
		),
		resyncs: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "resyncs_total"),
			"Number of times the fan level was changed by a third party and had to be restored",
			nil, nil,
		),
		skippedTicks: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "skipped_ticks_total"),
			"Number of ticks without a value for the primary zone",
			nil, nil,
		),
		remainingHoldTicks: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "remaining_hold_ticks"),
			"Ticks left before a downward escape of the active profile",
			nil, nil,
		),
		targetLevel: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "target_level"),
			"Fan level of the active profile",
			nil, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.transitions
	ch <- collector.writeFailures
	ch <- collector.resyncs
	ch <- collector.skippedTicks
	ch <- collector.remainingHoldTicks
	ch <- collector.targetLevel
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	snapshot := collector.store.Controller()
	counters := snapshot.Counters

	ch <- prometheus.MustNewConstMetric(collector.transitions, prometheus.CounterValue, float64(counters.Transitions))
	ch <- prometheus.MustNewConstMetric(collector.writeFailures, prometheus.CounterValue, float64(counters.WriteFailures))
	ch <- prometheus.MustNewConstMetric(collector.resyncs, prometheus.CounterValue, float64(counters.Resyncs))
	ch <- prometheus.MustNewConstMetric(collector.skippedTicks, prometheus.CounterValue, float64(counters.SkippedTicks))

	if snapshot.Profile != nil {
		ch <- prometheus.MustNewConstMetric(collector.remainingHoldTicks, prometheus.GaugeValue, float64(snapshot.RemainingHoldTicks))
		ch <- prometheus.MustNewConstMetric(collector.targetLevel, prometheus.GaugeValue, float64(snapshot.Profile.Level))
	}
}
