package configuration

import (
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		stringToBoundHookFunc(),
	)
}

// stringToBoundHookFunc allows "inf" and "-inf" as integer values,
// mapping them to the edges of the int domain.
func stringToBoundHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Int {
			return data, nil
		}

		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "inf", "+inf", "max":
			return math.MaxInt, nil
		case "-inf", "min":
			return math.MinInt, nil
		}
		return data, nil
	}
}
