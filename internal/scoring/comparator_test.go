package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparePerception(t *testing.T) {
	t.Run("underestimated", func(t *testing.T) {
		cmp := ComparePerception(5, 10)
		assert.InDelta(t, 6.5, cmp.RealSweetness, 0.001)
		assert.InDelta(t, -1.5, cmp.Difference, 0.001)
		assert.Equal(t, StatusUnderestimated, cmp.Status)
	})

	t.Run("accurate within one scale point", func(t *testing.T) {
		cmp := ComparePerception(3, 6.5) // real sweetness 5.0
		assert.InDelta(t, -2.0, cmp.Difference, 0.001)
		assert.Equal(t, StatusUnderestimated, cmp.Status)

		cmp = ComparePerception(5, 6.5)
		assert.InDelta(t, 0, cmp.Difference, 0.001)
		assert.Equal(t, StatusAccurate, cmp.Status)
	})

	t.Run("overestimated", func(t *testing.T) {
		cmp := ComparePerception(5, 2) // real sweetness 2.0
		assert.InDelta(t, 3.0, cmp.Difference, 0.001)
		assert.Equal(t, StatusOverestimated, cmp.Status)
	})

	t.Run("percentage is relative to real sweetness", func(t *testing.T) {
		cmp := ComparePerception(5, 10)
		assert.InDelta(t, 1.5/6.5*100, cmp.Percentage, 0.01)
	})

	t.Run("near-zero reality never yields Inf or NaN", func(t *testing.T) {
		cmp := ComparePerception(4, math.NaN())
		assert.False(t, math.IsInf(cmp.Percentage, 0))
		assert.False(t, math.IsNaN(cmp.Percentage))
	})
}

func TestCompareFoods(t *testing.T) {
	tests := []struct {
		name      string
		brixA     float64
		brixB     float64
		threshold float64
		expected  Outcome
	}{
		{name: "within threshold is equal", brixA: 10, brixB: 10.2, threshold: 0.5, expected: OutcomeEqual},
		{name: "b clearly sweeter", brixA: 10, brixB: 12, threshold: 0.5, expected: OutcomeB},
		{name: "a clearly sweeter", brixA: 12, brixB: 10, threshold: 0.5, expected: OutcomeA},
		{name: "exactly at threshold is not equal", brixA: 10, brixB: 10.5, threshold: 0.5, expected: OutcomeB},
		{name: "zero threshold uses default", brixA: 10, brixB: 10.2, threshold: 0, expected: OutcomeEqual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareFoods(tt.brixA, tt.brixB, tt.threshold))
		})
	}
}

func TestIsPairAnswerCorrect(t *testing.T) {
	assert.True(t, IsPairAnswerCorrect("a_more", OutcomeA))
	assert.True(t, IsPairAnswerCorrect("b_more", OutcomeB))
	assert.True(t, IsPairAnswerCorrect("equal", OutcomeEqual))

	assert.False(t, IsPairAnswerCorrect("equal", OutcomeB))
	assert.False(t, IsPairAnswerCorrect("a_more", OutcomeEqual))

	// Malformed answers are just wrong, never an error
	assert.False(t, IsPairAnswerCorrect("", OutcomeA))
	assert.False(t, IsPairAnswerCorrect("both", OutcomeEqual))
}
