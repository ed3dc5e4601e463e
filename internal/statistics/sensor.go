package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tpfand/tpfand/internal/status"
)

const subsystemSensor = "sensor"

// SensorCollector exports the zone values of the last reading, absent zones are omitted.
type SensorCollector struct {
	store *status.Store
	value *prometheus.Desc
}

func NewSensorCollector(store *status.Store) *SensorCollector {
	return &SensorCollector{
		store: store,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "value"),
			"Latest value of the thermal zone",
			[]string{"zone"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
}

// Collect implements required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	for name, zone := range collector.store.Zones() {
		if !zone.Present {
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, float64(zone.Value), name)
	}
}
