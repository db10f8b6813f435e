package scoring

import (
	"fmt"

	"sugarsense/internal/model"
)

// Aggregate condenses every participant record into the statistics payload
// consumed by the insight generator and the dashboard. Like the rest of the
// package it never fails; foods nobody rated simply show zero counts.
func Aggregate(participants []model.Participant, foods []model.Food, pairs []model.ComparisonPair, threshold float64, locale string) model.AggregateStats {
	ranking := GenerateRanking(participants, pairs, threshold)
	base := RankingStats(ranking)

	stats := model.AggregateStats{
		TotalParticipants: base.TotalParticipants,
		AvgScore:          base.AvgScore,
		TopScore:          base.TopScore,
		BottomScore:       base.BottomScore,
	}

	if len(ranking) > 0 {
		var k, a, p float64
		for _, r := range ranking {
			k += r.Knowledge
			a += r.Awareness
			p += r.Pairs
		}
		n := float64(len(ranking))
		stats.AvgKnowledge = round1(k / n)
		stats.AvgAwareness = round1(a / n)
		stats.AvgPairs = round1(p / n)
	}

	stats.Foods = aggregateFoods(participants, foods, locale)
	stats.PairsAccuracy = aggregatePairsAccuracy(participants, pairs, threshold)
	return stats
}

func aggregateFoods(participants []model.Participant, foods []model.Food, locale string) []model.FoodAccuracy {
	out := make([]model.FoodAccuracy, 0, len(foods))
	for _, food := range foods {
		acc := model.FoodAccuracy{
			FoodID:        food.ID,
			Name:          food.Name(locale),
			Brix:          food.Brix,
			RealSweetness: round1(BrixToSweetness(food.Brix)),
		}

		sum := 0.0
		count := 0
		for i := range participants {
			p := &participants[i]
			rating, ok := perceptionRating(p.Part2, food.ID, snapshotIndex(p, food.ID))
			if !ok {
				continue
			}
			m, ok := p.Measurements[food.ID]
			if !ok {
				continue
			}
			switch ComparePerception(rating, m.Brix).Status {
			case StatusAccurate:
				acc.Accurate++
			case StatusOverestimated:
				acc.Overestimated++
			case StatusUnderestimated:
				acc.Underestimate++
			}
			sum += rating
			count++
		}
		if count > 0 {
			acc.AvgPerceived = round1(sum / float64(count))
		}
		out = append(out, acc)
	}
	return out
}

func aggregatePairsAccuracy(participants []model.Participant, pairs []model.ComparisonPair, threshold float64) float64 {
	correct := 0
	answered := 0
	for i := range participants {
		p := &participants[i]
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
	}
	if answered == 0 {
		return 0
	}
	return round1(100 * float64(correct) / float64(answered))
}

// snapshotIndex finds the food's position inside the participant's own foods
// snapshot, which is what the legacy positional rating keys refer to.
func snapshotIndex(p *model.Participant, foodID string) int {
	for i, f := range p.Foods {
		if f.ID == foodID {
			return i
		}
	}
	return -1
}
