// Package scoring is the pure scoring and ranking core of the experience.
// It converts raw participant responses plus instrument measurements into
// normalized 0-100 sub-scores, a weighted total, and a dense ranking.
//
// Every function is side-effect free and never fails: missing or malformed
// input degrades to a documented default so partial submissions still yield
// a comparable score.
package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// BrixToSweetness maps a °Brix reading onto the 1-10 perceptual sweetness
// scale using five empirically chosen linear segments. The segments meet
// continuously at 2, 5, 8 and 12 °Bx; output is clamped to [1, 10].
func BrixToSweetness(brix float64) float64 {
	if math.IsNaN(brix) {
		return 0 // "no data" sentinel, see SweetnessFromValue
	}
	switch {
	case brix <= 2:
		s := 1 + brix/2
		if s < 1 {
			s = 1
		}
		return s
	case brix <= 5:
		return 2 + (brix-2)/3*2
	case brix <= 8:
		return 4 + (brix-5)/3*2
	case brix <= 12:
		return 6 + (brix-8)/4*2
	default:
		s := 8 + (brix-12)/8*2
		if s > 10 {
			s = 10
		}
		return s
	}
}

// SweetnessFromValue is the tolerant entry point for values read from stored
// records, where a °Brix reading may appear as a number or a string. A value
// that does not parse yields 0, which is a sentinel for "no data", not a
// valid sweetness: callers must skip it rather than treat it as very low.
func SweetnessFromValue(v interface{}) float64 {
	brix, ok := toFloat(v)
	if !ok {
		return 0
	}
	return BrixToSweetness(brix)
}

var sweetnessLabels = map[string][5]string{
	"it": {"molto basso", "basso", "medio", "alto", "molto alto"},
	"en": {"very low", "low", "medium", "high", "very high"},
}

// SweetnessLabel renders a 1-10 sweetness value as a coarse localized label.
// Any numeric input resolves to one of five buckets; unknown locales fall
// back to English.
func SweetnessLabel(sweetness float64, locale string) string {
	labels, ok := sweetnessLabels[locale]
	if !ok {
		labels = sweetnessLabels["en"]
	}
	switch {
	case sweetness <= 2:
		return labels[0]
	case sweetness <= 4:
		return labels[1]
	case sweetness <= 6:
		return labels[2]
	case sweetness <= 8:
		return labels[3]
	default:
		return labels[4]
	}
}

// toFloat coerces the value shapes that occur in stored participant payloads
// (JSON numbers, bson int types, numeric strings) into a float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
