package configuration

type ProfileDefaultsConfig struct {
	StickMargin int `json:"stickMargin"`
	HoldDelay   int `json:"holdDelay"`
}

// ProfileConfig describes one temperature band. Bands are listed in ascending
// order, the lower bound of a band is the upper bound of the previous one.
type ProfileConfig struct {
	Level int `json:"level"`
	// Max is the inclusive upper bound, nil (or "inf") for the last band.
	Max         *int `json:"max,omitempty"`
	StickMargin *int `json:"stickMargin,omitempty"`
	HoldDelay   *int `json:"holdDelay,omitempty"`
}

func (p ProfileConfig) GetStickMargin(defaults ProfileDefaultsConfig) int {
	if p.StickMargin != nil {
		return *p.StickMargin
	}
	return defaults.StickMargin
}

func (p ProfileConfig) GetHoldDelay(defaults ProfileDefaultsConfig) int {
	if p.HoldDelay != nil {
		return *p.HoldDelay
	}
	return defaults.HoldDelay
}
