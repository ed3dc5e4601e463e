package util

import "github.com/asecurityteam/rolling"

func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

// WindowStats holds the minimum, average and maximum of a rolling window.
type WindowStats struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

func GetWindowStats(window *rolling.PointPolicy) WindowStats {
	return WindowStats{
		Min: window.Reduce(rolling.Min),
		Avg: window.Reduce(rolling.Avg),
		Max: window.Reduce(rolling.Max),
	}
}

// FillWindow completely fills the given window with the given value.
func FillWindow(window *rolling.PointPolicy, size int, value float64) {
	for i := 0; i < size; i++ {
		window.Append(value)
	}
}
