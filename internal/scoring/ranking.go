package scoring

import (
	"sort"

	"sugarsense/internal/model"
)

// RankedParticipant is one leaderboard row: the participant record plus its
// recomputed score tuple and dense 1-based rank.
type RankedParticipant struct {
	Rank int `json:"rank"`
	Score
	Participant model.Participant `json:"participant"`
}

// Stats aggregates total scores over a ranking
type Stats struct {
	TotalParticipants int     `json:"totalParticipants"`
	AvgScore          float64 `json:"avgScore"`
	TopScore          float64 `json:"topScore"`
	BottomScore       float64 `json:"bottomScore"`
}

// GenerateRanking scores every participant and orders them descending by
// total score. Ties are broken deterministically: earlier completion wins,
// then lexicographic id, so the leaderboard does not depend on database
// fetch order. Ranks are dense and 1-based.
func GenerateRanking(participants []model.Participant, pairs []model.ComparisonPair, threshold float64) []RankedParticipant {
	ranked := make([]RankedParticipant, 0, len(participants))
	for i := range participants {
		p := participants[i]
		ranked = append(ranked, RankedParticipant{
			Score:       TotalScore(&p, pairs, threshold),
			Participant: p,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		a, b := ranked[i].Participant, ranked[j].Participant
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// FindParticipantRank looks up a participant's rank by id. The second return
// is false when the participant is not in the ranking.
func FindParticipantRank(participantID string, ranking []RankedParticipant) (int, bool) {
	for _, r := range ranking {
		if r.Participant.ID == participantID {
			return r.Rank, true
		}
	}
	return 0, false
}

// RankingStats aggregates a ranking. An empty ranking yields the zero value,
// not an error.
func RankingStats(ranking []RankedParticipant) Stats {
	if len(ranking) == 0 {
		return Stats{}
	}
	sum := 0.0
	for _, r := range ranking {
		sum += r.Total
	}
	return Stats{
		TotalParticipants: len(ranking),
		AvgScore:          round1(sum / float64(len(ranking))),
		TopScore:          ranking[0].Total,
		BottomScore:       ranking[len(ranking)-1].Total,
	}
}
