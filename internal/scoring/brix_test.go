package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrixToSweetness(t *testing.T) {
	tests := []struct {
		name     string
		brix     float64
		expected float64
	}{
		{name: "zero brix clamps to scale floor", brix: 0, expected: 1.0},
		{name: "low segment", brix: 1, expected: 1.5},
		{name: "mid segment", brix: 6.5, expected: 5.0},
		{name: "upper segment", brix: 10, expected: 6.5},
		{name: "high segment", brix: 14, expected: 8.5},
		{name: "clamped at scale ceiling", brix: 20, expected: 10.0},
		{name: "beyond ceiling stays clamped", brix: 35, expected: 10.0},
		{name: "negative reading clamps to floor", brix: -1, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BrixToSweetness(tt.brix), 0.001)
		})
	}
}

func TestBrixToSweetnessContinuousAtBreakpoints(t *testing.T) {
	for _, bp := range []float64{2, 5, 8, 12} {
		below := BrixToSweetness(bp - 1e-9)
		above := BrixToSweetness(bp + 1e-9)
		assert.InDelta(t, below, above, 1e-6, "discontinuity at %v °Bx", bp)
	}
}

func TestBrixToSweetnessMonotonic(t *testing.T) {
	prev := BrixToSweetness(0)
	for brix := 0.1; brix <= 25; brix += 0.1 {
		s := BrixToSweetness(brix)
		assert.GreaterOrEqual(t, s+1e-9, prev, "not monotonic at %v °Bx", brix)
		prev = s
	}
}

func TestSweetnessFromValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
	}{
		{name: "float", value: 10.0, expected: 6.5},
		{name: "int", value: 8, expected: 6.0},
		{name: "numeric string", value: "2", expected: 2.0},
		{name: "json number", value: json.Number("5"), expected: 4.0},
		{name: "garbage string is no-data", value: "n/a", expected: 0},
		{name: "nil is no-data", value: nil, expected: 0},
		{name: "bool is no-data", value: true, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SweetnessFromValue(tt.value), 0.001)
		})
	}
}

func TestSweetnessLabel(t *testing.T) {
	assert.Equal(t, "very low", SweetnessLabel(1.5, "en"))
	assert.Equal(t, "low", SweetnessLabel(3.2, "en"))
	assert.Equal(t, "medium", SweetnessLabel(5.0, "en"))
	assert.Equal(t, "high", SweetnessLabel(7.9, "en"))
	assert.Equal(t, "very high", SweetnessLabel(9.1, "en"))

	assert.Equal(t, "molto alto", SweetnessLabel(9.1, "it"))
	assert.Equal(t, "medio", SweetnessLabel(4.5, "it"))

	// Unknown locale falls back to English
	assert.Equal(t, "medium", SweetnessLabel(5.0, "de"))
}
