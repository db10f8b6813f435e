package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sugarsense/internal/model"
)

func TestAggregate(t *testing.T) {
	foods := threeFoods()
	pairs := []model.ComparisonPair{
		{FoodAID: "carrot", FoodBID: "apple", OrderPosition: 0}, // b sweeter
	}
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	participants := []model.Participant{
		{
			ID:           "p1",
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"carrot": 2.0, "apple": 5.0, "grape": 5.0},
			Part3:        map[string]string{"pair_0": "b_more"}, // correct
			CreatedAt:    base,
		},
		{
			ID:           "p2",
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"carrot": 5.0}, // overestimated
			Part3:        map[string]string{"pair_0": "equal"},  // wrong
			CreatedAt:    base.Add(time.Minute),
		},
	}

	stats := Aggregate(participants, foods, pairs, 0.5, "en")

	assert.Equal(t, 2, stats.TotalParticipants)
	assert.InDelta(t, 50.0, stats.PairsAccuracy, 0.001)
	require.Len(t, stats.Foods, 3)

	carrot := stats.Foods[0]
	assert.Equal(t, "carrot", carrot.FoodID)
	assert.InDelta(t, 2.0, carrot.RealSweetness, 0.001)
	assert.Equal(t, 1, carrot.Accurate)
	assert.Equal(t, 1, carrot.Overestimated)
	assert.InDelta(t, 3.5, carrot.AvgPerceived, 0.001)

	// Only p1 rated the grape; real sweetness 8.5 vs perceived 5
	grape := stats.Foods[2]
	assert.Equal(t, 1, grape.Underestimate)
	assert.Equal(t, 0, grape.Accurate)

	// Sub-score averages stay within the score range
	for _, v := range []float64{stats.AvgKnowledge, stats.AvgAwareness, stats.AvgPairs, stats.AvgScore} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, nil, nil, 0.5, "it")
	assert.Equal(t, 0, stats.TotalParticipants)
	assert.Equal(t, 0.0, stats.PairsAccuracy)
	assert.Empty(t, stats.Foods)
}
