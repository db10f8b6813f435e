package scoring

import (
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sugarsense/internal/model"
)

// Weights of the three sub-scores in the total. This 0.4/0.3/0.3 split is
// the authoritative weighting; a 70/30 knowledge/awareness variant that once
// appeared in a results narrative is a display bug, not a second formula.
const (
	weightKnowledge = 0.4
	weightAwareness = 0.3
	weightPairs     = 0.3
)

// Score is the derived score tuple of one participant. Never stored
// authoritatively; always recomputed from the record.
type Score struct {
	Total     float64 `json:"totalScore"`
	Knowledge float64 `json:"knowledgeScore"`
	Awareness float64 `json:"awarenessScore"`
	Pairs     float64 `json:"pairsScore"`
}

// KnowledgeScore measures how close the participant's sweetness ratings came
// to the measured reality, averaged over the foods that have both a rating
// and a measurement. An average absolute error of 5 scale points or more
// floors the score at 0. A participant with no usable food returns 0.
func KnowledgeScore(p *model.Participant) float64 {
	totalErr := 0.0
	count := 0

	for i, food := range p.Foods {
		rating, ok := perceptionRating(p.Part2, food.ID, i)
		if !ok {
			continue
		}
		m, ok := p.Measurements[food.ID]
		if !ok {
			continue
		}
		cmp := ComparePerception(rating, m.Brix)
		totalErr += math.Abs(cmp.Difference)
		count++
	}

	if count == 0 {
		return 0
	}
	avgErr := totalErr / float64(count)
	return clamp(100-avgErr*20, 0, 100)
}

// AwarenessScore rewards self-aware reporting: confidence and perceived
// difficulty above the neutral midpoint raise the score, surprise lowers it
// (a surprised participant was unaware of their own performance). Each field
// contributes independently; a missing part 4 means a neutral 50.
func AwarenessScore(p *model.Participant) float64 {
	if p.Part4 == nil {
		return 50
	}
	score := 50.0
	if p.Part4.Confidence != nil {
		score += (*p.Part4.Confidence - 5) * 2
	}
	if p.Part4.Difficulty != nil {
		score += (*p.Part4.Difficulty - 5) * 3
	}
	if p.Part4.Surprise != nil {
		score -= (*p.Part4.Surprise - 5) * 2
	}
	return clamp(score, 0, 100)
}

// PairsScore is the fraction of correctly answered comparison pairs, over
// the pairs the participant actually answered and whose foods were both
// measured. Unanswered or unmeasurable pairs are excluded from numerator and
// denominator alike, not penalized.
func PairsScore(p *model.Participant, pairs []model.ComparisonPair, threshold float64) float64 {
	correct := 0
	answered := 0

	for _, pair := range pairs {
		answer, ok := p.Part3[fmt.Sprintf("pair_%d", pair.OrderPosition)]
		if !ok || answer == "" {
			continue
		}
		ma, okA := p.Measurements[pair.FoodAID]
		mb, okB := p.Measurements[pair.FoodBID]
		if !okA || !okB {
			continue
		}
		answered++
		if IsPairAnswerCorrect(answer, CompareFoods(ma.Brix, mb.Brix, threshold)) {
			correct++
		}
	}

	if answered == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(answered)
}

// TotalScore computes the full score tuple for one participant. Every
// reported value is rounded to one decimal place.
func TotalScore(p *model.Participant, pairs []model.ComparisonPair, threshold float64) Score {
	knowledge := KnowledgeScore(p)
	awareness := AwarenessScore(p)
	pairsScore := PairsScore(p, pairs, threshold)
	total := weightKnowledge*knowledge + weightAwareness*awareness + weightPairs*pairsScore

	return Score{
		Total:     round1(total),
		Knowledge: round1(knowledge),
		Awareness: round1(awareness),
		Pairs:     round1(pairsScore),
	}
}

// perceptionRating probes the key shapes a part-2 rating was stored under
// across app versions, in order: direct food-id key, nested "responses" map,
// positional index. This is a migration-compatibility shim; once historical
// records are migrated to the direct shape the fallbacks can go.
func perceptionRating(part2 map[string]interface{}, foodID string, index int) (float64, bool) {
	if part2 == nil {
		return 0, false
	}
	if v, ok := toFloat(part2[foodID]); ok {
		return v, true
	}
	if nested, ok := asMap(part2["responses"]); ok {
		if v, ok := toFloat(nested[foodID]); ok {
			return v, true
		}
		if v, ok := toFloat(nested[strconv.Itoa(index)]); ok {
			return v, true
		}
	}
	if v, ok := toFloat(part2[strconv.Itoa(index)]); ok {
		return v, true
	}
	return 0, false
}

// asMap handles the document shapes the Mongo driver may hand back for a
// free-form nested field.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case primitive.M:
		return m, true
	case primitive.D:
		out := make(map[string]interface{}, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
