package kahuna

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

func defaultString(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

// Allows for overriding in tests
var now = time.Now

func getUnixMilli() int64 {
	return now().UnixMilli()
}

// toISO8601 renders a timestamp the way the Kahuna attribute API expects
// dates: UTC with millisecond precision.
func toISO8601(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// stringify renders a trait value for the attribute map. Dates become
// ISO-8601; everything else takes its default formatting.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return toISO8601(v)
	default:
		return fmt.Sprint(v)
	}
}

func getNumericValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// toCents truncates a decimal currency amount to integer cents. The epsilon
// keeps amounts that are exact in decimal (19.99) from losing a cent to
// binary float error.
func toCents(revenue float64) int {
	return int(math.Trunc(revenue*100 + 1e-6))
}

func toError(err interface{}) error {
	switch e := err.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("%+v", e)
	}
}
