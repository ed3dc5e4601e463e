package controller

import (
	"github.com/asecurityteam/rolling"
	"github.com/tpfand/tpfand/internal/util"
)

// Counters accumulated over the lifetime of a control loop.
type Counters struct {
	Ticks         uint64 `json:"ticks"`
	SkippedTicks  uint64 `json:"skippedTicks"`
	Transitions   uint64 `json:"transitions"`
	WriteFailures uint64 `json:"writeFailures"`
	Resyncs       uint64 `json:"resyncs"`
}

type statistics struct {
	Counters

	windowSize  int
	window      *rolling.PointPolicy
	initialized bool
}

func newStatistics(windowSize int) *statistics {
	if windowSize <= 0 {
		windowSize = 1
	}
	return &statistics{
		windowSize: windowSize,
		window:     util.CreateRollingWindow(windowSize),
	}
}

func (s *statistics) observe(value int) {
	if !s.initialized {
		// buckets start out as zero
		util.FillWindow(s.window, s.windowSize, float64(value))
		s.initialized = true
		return
	}
	s.window.Append(float64(value))
}

func (s *statistics) windowStats() util.WindowStats {
	if !s.initialized {
		return util.WindowStats{}
	}
	return util.GetWindowStats(s.window)
}
