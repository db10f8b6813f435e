package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sugarsense/internal/model"
)

// awarenessOnly builds a participant whose total is driven entirely by the
// awareness sub-score, which makes expected ordering easy to reason about.
func awarenessOnly(id string, confidence float64, createdAt time.Time) model.Participant {
	return model.Participant{
		ID:        id,
		Part4:     &model.AwarenessResponse{Confidence: &confidence},
		CreatedAt: createdAt,
	}
}

func TestGenerateRanking(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("descending by total with dense ranks", func(t *testing.T) {
		participants := []model.Participant{
			awarenessOnly("low", 2, base),
			awarenessOnly("high", 9, base),
			awarenessOnly("mid", 5, base),
		}

		ranking := GenerateRanking(participants, nil, 0)
		require.Len(t, ranking, 3)

		assert.Equal(t, "high", ranking[0].Participant.ID)
		assert.Equal(t, "mid", ranking[1].Participant.ID)
		assert.Equal(t, "low", ranking[2].Participant.ID)

		for i, r := range ranking {
			assert.Equal(t, i+1, r.Rank)
			if i > 0 {
				assert.Greater(t, ranking[i-1].Total, r.Total)
			}
		}
	})

	t.Run("ties broken by earlier completion", func(t *testing.T) {
		participants := []model.Participant{
			awarenessOnly("later", 5, base.Add(time.Hour)),
			awarenessOnly("earlier", 5, base),
		}

		ranking := GenerateRanking(participants, nil, 0)
		require.Len(t, ranking, 2)
		assert.Equal(t, "earlier", ranking[0].Participant.ID)
		assert.Equal(t, 1, ranking[0].Rank)
		assert.Equal(t, "later", ranking[1].Participant.ID)
		assert.Equal(t, 2, ranking[1].Rank)
	})

	t.Run("identical timestamps fall back to id order", func(t *testing.T) {
		participants := []model.Participant{
			awarenessOnly("bbb", 5, base),
			awarenessOnly("aaa", 5, base),
		}

		ranking := GenerateRanking(participants, nil, 0)
		assert.Equal(t, "aaa", ranking[0].Participant.ID)
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		assert.Empty(t, GenerateRanking(nil, nil, 0))
	})
}

func TestFindParticipantRank(t *testing.T) {
	base := time.Now()
	ranking := GenerateRanking([]model.Participant{
		awarenessOnly("a", 8, base),
		awarenessOnly("b", 3, base),
	}, nil, 0)

	rank, ok := FindParticipantRank("b", ranking)
	assert.True(t, ok)
	assert.Equal(t, 2, rank)

	rank, ok = FindParticipantRank("ghost", ranking)
	assert.False(t, ok)
	assert.Equal(t, 0, rank)
}

func TestRankingStats(t *testing.T) {
	t.Run("empty ranking yields zero stats", func(t *testing.T) {
		assert.Equal(t, Stats{}, RankingStats(nil))
	})

	t.Run("aggregates over total scores", func(t *testing.T) {
		base := time.Now()
		ranking := GenerateRanking([]model.Participant{
			awarenessOnly("a", 10, base), // awareness 60 -> total 18.0
			awarenessOnly("b", 0, base),  // awareness 40 -> total 12.0
		}, nil, 0)

		stats := RankingStats(ranking)
		assert.Equal(t, 2, stats.TotalParticipants)
		assert.InDelta(t, 18.0, stats.TopScore, 0.001)
		assert.InDelta(t, 12.0, stats.BottomScore, 0.001)
		assert.InDelta(t, 15.0, stats.AvgScore, 0.001)
	})
}
