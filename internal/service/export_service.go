package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// ExportService streams participant records with their recomputed scores as
// CSV for offline analysis.
type ExportService struct {
	rankingSvc *RankingService
}

// NewExportService creates a new export service
func NewExportService(rankingSvc *RankingService) *ExportService {
	return &ExportService{
		rankingSvc: rankingSvc,
	}
}

var exportHeader = []string{
	"rank", "participant_id", "nickname", "created_at",
	"total_score", "knowledge_score", "awareness_score", "pairs_score",
	"age", "gender", "profession", "consumption_habit",
}

// WriteParticipantsCSV writes the full ranking as CSV rows
func (s *ExportService) WriteParticipantsCSV(ctx context.Context, w io.Writer) error {
	ranking, err := s.rankingSvc.GetRanking(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, r := range ranking {
		p := r.Participant
		row := []string{
			fmt.Sprintf("%d", r.Rank),
			p.ID,
			p.Nickname,
			p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			fmt.Sprintf("%.1f", r.Total),
			fmt.Sprintf("%.1f", r.Knowledge),
			fmt.Sprintf("%.1f", r.Awareness),
			fmt.Sprintf("%.1f", r.Pairs),
			p.Profile.Age,
			p.Profile.Gender,
			p.Profile.Profession,
			p.Profile.Consumption,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
