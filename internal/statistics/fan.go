package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tpfand/tpfand/internal/fans"
)

const fanSubsystem = "fan"

type FanCollector struct {
	fan   fans.Actuator
	level *prometheus.Desc
	rpm   *prometheus.Desc
}

func NewFanCollector(fan fans.Actuator) *FanCollector {
	return &FanCollector{
		fan: fan,
		level: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "level"),
			"Fan level currently reported by the hardware, -1 while under automatic control",
			[]string{"id"}, nil,
		),
		rpm: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "rpm"),
			"Current RPM value of the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.level
	ch <- collector.rpm
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	fanId := collector.fan.GetId()

	level, err := collector.fan.GetLevel()
	if err == nil {
		ch <- prometheus.MustNewConstMetric(collector.level, prometheus.GaugeValue, float64(level), fanId)
	}

	reader, ok := collector.fan.(fans.RpmReader)
	if !ok {
		return
	}
	rpm, err := reader.GetRpm()
	if err == nil {
		ch <- prometheus.MustNewConstMetric(collector.rpm, prometheus.GaugeValue, float64(rpm), fanId)
	}
}
