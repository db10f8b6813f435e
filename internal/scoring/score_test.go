package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sugarsense/internal/model"
)

func fptr(v float64) *float64 { return &v }

func threeFoods() []model.Food {
	return []model.Food{
		{ID: "carrot", Brix: 2},
		{ID: "apple", Brix: 8},
		{ID: "grape", Brix: 14},
	}
}

func measurementsFor(foods []model.Food) map[string]model.Measurement {
	m := make(map[string]model.Measurement, len(foods))
	for _, f := range foods {
		m[f.ID] = model.Measurement{Brix: f.Brix}
	}
	return m
}

func TestKnowledgeScore(t *testing.T) {
	foods := threeFoods()

	t.Run("end to end scenario", func(t *testing.T) {
		// Real sweetness [2.0, 6.0, 8.5], |difference| [0, 1, 3.5],
		// average error 1.5 -> 100 - 1.5*20 = 70
		p := &model.Participant{
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"carrot": 2.0, "apple": 5.0, "grape": 5.0},
		}
		assert.InDelta(t, 70.0, KnowledgeScore(p), 0.01)
	})

	t.Run("no food with both values returns zero", func(t *testing.T) {
		p := &model.Participant{Foods: foods}
		assert.Equal(t, 0.0, KnowledgeScore(p))

		// Ratings without measurements don't count either
		p.Part2 = map[string]interface{}{"carrot": 3.0}
		assert.Equal(t, 0.0, KnowledgeScore(p))
	})

	t.Run("foods missing a rating are skipped not penalized", func(t *testing.T) {
		p := &model.Participant{
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"carrot": 2.0}, // perfect on the only rated food
		}
		assert.InDelta(t, 100.0, KnowledgeScore(p), 0.01)
	})

	t.Run("huge average error floors at zero", func(t *testing.T) {
		p := &model.Participant{
			Foods:        []model.Food{{ID: "syrup", Brix: 40}},
			Measurements: map[string]model.Measurement{"syrup": {Brix: 40}},
			Part2:        map[string]interface{}{"syrup": 1.0}, // real sweetness 10, error 9
		}
		assert.Equal(t, 0.0, KnowledgeScore(p))
	})

	t.Run("legacy nested responses shape", func(t *testing.T) {
		p := &model.Participant{
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2: map[string]interface{}{
				"responses": map[string]interface{}{"carrot": 2.0, "apple": 5.0, "grape": 5.0},
			},
		}
		assert.InDelta(t, 70.0, KnowledgeScore(p), 0.01)
	})

	t.Run("legacy positional index shape", func(t *testing.T) {
		p := &model.Participant{
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"0": 2.0, "1": 5.0, "2": 5.0},
		}
		assert.InDelta(t, 70.0, KnowledgeScore(p), 0.01)
	})

	t.Run("ratings stored as strings still count", func(t *testing.T) {
		p := &model.Participant{
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"carrot": "2", "apple": "5", "grape": "5"},
		}
		assert.InDelta(t, 70.0, KnowledgeScore(p), 0.01)
	})
}

func TestAwarenessScore(t *testing.T) {
	t.Run("missing part4 is a neutral 50", func(t *testing.T) {
		assert.Equal(t, 50.0, AwarenessScore(&model.Participant{}))
	})

	t.Run("empty part4 stays at baseline", func(t *testing.T) {
		p := &model.Participant{Part4: &model.AwarenessResponse{}}
		assert.Equal(t, 50.0, AwarenessScore(p))
	})

	t.Run("all fields contribute independently", func(t *testing.T) {
		p := &model.Participant{Part4: &model.AwarenessResponse{
			Confidence: fptr(8), // +6
			Difficulty: fptr(7), // +6
			Surprise:   fptr(2), // +6
		}}
		assert.InDelta(t, 68.0, AwarenessScore(p), 0.001)
	})

	t.Run("surprise lowers the score", func(t *testing.T) {
		p := &model.Participant{Part4: &model.AwarenessResponse{Surprise: fptr(10)}}
		assert.InDelta(t, 40.0, AwarenessScore(p), 0.001)
	})

	t.Run("clamped to the score range", func(t *testing.T) {
		p := &model.Participant{Part4: &model.AwarenessResponse{Confidence: fptr(40)}}
		assert.Equal(t, 100.0, AwarenessScore(p))

		p = &model.Participant{Part4: &model.AwarenessResponse{Difficulty: fptr(-20)}}
		assert.Equal(t, 0.0, AwarenessScore(p))
	})
}

func TestPairsScore(t *testing.T) {
	foods := threeFoods()
	pairs := []model.ComparisonPair{
		{FoodAID: "carrot", FoodBID: "apple", OrderPosition: 0}, // b sweeter
		{FoodAID: "grape", FoodBID: "apple", OrderPosition: 1},  // a sweeter
		{FoodAID: "apple", FoodBID: "grape", OrderPosition: 2},  // b sweeter
	}

	t.Run("fraction of correct answers", func(t *testing.T) {
		p := &model.Participant{
			Measurements: measurementsFor(foods),
			Part3: map[string]string{
				"pair_0": "b_more", // correct
				"pair_1": "a_more", // correct
				"pair_2": "equal",  // wrong
			},
		}
		assert.InDelta(t, 100.0*2/3, PairsScore(p, pairs, 0.5), 0.01)
	})

	t.Run("unanswered pairs are excluded from the denominator", func(t *testing.T) {
		p := &model.Participant{
			Measurements: measurementsFor(foods),
			Part3:        map[string]string{"pair_0": "b_more"},
		}
		assert.InDelta(t, 100.0, PairsScore(p, pairs, 0.5), 0.01)
	})

	t.Run("pairs with unmeasured foods are excluded", func(t *testing.T) {
		p := &model.Participant{
			Measurements: map[string]model.Measurement{"carrot": {Brix: 2}},
			Part3:        map[string]string{"pair_0": "b_more", "pair_1": "a_more"},
		}
		assert.Equal(t, 0.0, PairsScore(p, pairs, 0.5))
	})

	t.Run("no answered pairs returns zero", func(t *testing.T) {
		p := &model.Participant{Measurements: measurementsFor(foods)}
		assert.Equal(t, 0.0, PairsScore(p, pairs, 0.5))
	})
}

func TestTotalScore(t *testing.T) {
	foods := threeFoods()
	pairs := []model.ComparisonPair{
		{FoodAID: "carrot", FoodBID: "apple", OrderPosition: 0},
	}

	t.Run("weighted combination of sub-scores", func(t *testing.T) {
		// Knowledge 100 (perfect only-rated food), awareness 50 (no part4),
		// pairs 100 -> 0.4*100 + 0.3*50 + 0.3*100 = 85.0
		p := &model.Participant{
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"carrot": 2.0},
			Part3:        map[string]string{"pair_0": "b_more"},
		}
		s := TotalScore(p, pairs, 0.5)
		assert.Equal(t, 100.0, s.Knowledge)
		assert.Equal(t, 50.0, s.Awareness)
		assert.Equal(t, 100.0, s.Pairs)
		assert.Equal(t, 85.0, s.Total)
	})

	t.Run("empty participant still yields a well-defined tuple", func(t *testing.T) {
		s := TotalScore(&model.Participant{}, pairs, 0.5)
		assert.Equal(t, 0.0, s.Knowledge)
		assert.Equal(t, 50.0, s.Awareness)
		assert.Equal(t, 0.0, s.Pairs)
		assert.Equal(t, 15.0, s.Total)
	})

	t.Run("all values are rounded to one decimal", func(t *testing.T) {
		p := &model.Participant{
			Foods:        foods,
			Measurements: measurementsFor(foods),
			Part2:        map[string]interface{}{"carrot": 2.0, "apple": 5.0, "grape": 5.0},
			Part3: map[string]string{
				"pair_0": "b_more",
			},
		}
		s := TotalScore(p, pairs, 0.5)
		assert.Equal(t, 70.0, s.Knowledge)
		assert.InDelta(t, s.Knowledge, round1(s.Knowledge), 1e-9)
		assert.InDelta(t, s.Total, round1(s.Total), 1e-9)
	})

	t.Run("sub-scores always within bounds", func(t *testing.T) {
		candidates := []*model.Participant{
			{},
			{Foods: foods, Measurements: measurementsFor(foods), Part2: map[string]interface{}{"grape": 1.0}},
			{Part4: &model.AwarenessResponse{Confidence: fptr(100), Difficulty: fptr(-50)}},
		}
		for _, p := range candidates {
			s := TotalScore(p, pairs, 0.5)
			for _, v := range []float64{s.Total, s.Knowledge, s.Awareness, s.Pairs} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 100.0)
			}
		}
	})
}
