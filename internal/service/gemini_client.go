package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sugarsense/internal/config"
	"sugarsense/internal/model"
)

// GeminiClient generates natural-language insights over aggregated survey
// data via the Gemini API. Without an API key it falls back to a
// deterministic mock so the dashboard never renders empty.
type GeminiClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient() *GeminiClient {
	cfg := config.DefaultAIConfig()
	return &GeminiClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// GenerateInsights turns the aggregated statistics into a structured insight
// report in the requested language.
func (c *GeminiClient) GenerateInsights(ctx context.Context, stats *model.AggregateStats, language string) (*model.InsightReport, error) {
	if !c.config.IsEnabled() {
		return c.mockInsights(stats, language), nil
	}

	prompt := c.buildInsightPrompt(stats, language)
	response, err := c.callGemini(ctx, prompt)
	if err != nil {
		// Fallback to mock on error
		return c.mockInsights(stats, language), nil
	}

	var report model.InsightReport
	if err := json.Unmarshal([]byte(response), &report); err != nil {
		return c.mockInsights(stats, language), nil
	}

	report.Language = language
	report.Status = model.InsightStatusReady
	now := time.Now()
	report.GeneratedAt = &now

	return &report, nil
}

// callGemini makes a request to the Gemini API
func (c *GeminiClient) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", c.config.ModelEndpoint(), c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (c *GeminiClient) buildInsightPrompt(stats *model.AggregateStats, language string) string {
	statsJSON, _ := json.Marshal(stats)

	langName := "English"
	if language == "it" {
		langName = "Italian"
	}

	return fmt.Sprintf(`You are a data storyteller for a food science exhibit about perceived vs measured sugar content. Participants rated sweetness of foods, then measured the real sugar concentration (°Brix) with a refractometer. Return ONLY valid JSON matching this schema:
{
  "curiosities": ["3-5 short surprising facts grounded in the data"],
  "mainTrend": "one paragraph describing the strongest pattern",
  "funFact": "one playful one-liner",
  "methodology": "one short paragraph explaining how scores were computed"
}

Write in %s. Keep it accessible to a general audience; no raw numbers dumps, pick the interesting ones.

Aggregated data:
%s

Scoring background: knowledge score rewards sweetness estimates close to the measured reality, awareness score rewards accurate self-assessment, pairs score rewards correct "which has more sugar" picks. The total is a 40/30/30 weighted blend.`,
		langName, statsJSON)
}

// mockInsights builds a deterministic report from the stats alone
func (c *GeminiClient) mockInsights(stats *model.AggregateStats, language string) *model.InsightReport {
	now := time.Now()
	report := &model.InsightReport{
		Language:    language,
		Status:      model.InsightStatusReady,
		GeneratedAt: &now,
		CreatedAt:   now,
	}

	var mostMissed *model.FoodAccuracy
	for i := range stats.Foods {
		f := &stats.Foods[i]
		missed := f.Overestimated + f.Underestimate
		if mostMissed == nil || missed > mostMissed.Overestimated+mostMissed.Underestimate {
			mostMissed = f
		}
	}

	if language == "it" {
		report.Curiosities = []string{
			fmt.Sprintf("Hanno partecipato %d persone, con un punteggio medio di %.1f su 100.", stats.TotalParticipants, stats.AvgScore),
			fmt.Sprintf("Nei confronti diretti tra due alimenti, le risposte corrette sono state il %.0f%%.", stats.PairsAccuracy),
		}
		if mostMissed != nil {
			report.Curiosities = append(report.Curiosities,
				fmt.Sprintf("L'alimento più difficile da stimare è stato %s (%.1f °Bx misurati).", mostMissed.Name, mostMissed.Brix))
		}
		report.MainTrend = fmt.Sprintf("La percezione media della dolcezza si discosta in modo sistematico dai valori misurati: il punteggio di conoscenza medio è %.1f su 100.", stats.AvgKnowledge)
		report.FunFact = "Il refrattometro non si lascia ingannare dal gusto."
		report.Methodology = "I punteggi combinano accuratezza percettiva (40%), autoconsapevolezza (30%) e confronti a coppie (30%), calcolati sui valori °Brix misurati durante l'esperienza."
	} else {
		report.Curiosities = []string{
			fmt.Sprintf("%d people took part, averaging %.1f out of 100.", stats.TotalParticipants, stats.AvgScore),
			fmt.Sprintf("Head-to-head sugar comparisons were answered correctly %.0f%% of the time.", stats.PairsAccuracy),
		}
		if mostMissed != nil {
			report.Curiosities = append(report.Curiosities,
				fmt.Sprintf("The hardest food to judge was %s (measured at %.1f °Bx).", mostMissed.Name, mostMissed.Brix))
		}
		report.MainTrend = fmt.Sprintf("Perceived sweetness drifts systematically from the measured values: the average knowledge score is %.1f out of 100.", stats.AvgKnowledge)
		report.FunFact = "The refractometer is never fooled by taste."
		report.Methodology = "Scores blend perceptual accuracy (40%), self-awareness (30%) and pairwise comparisons (30%), computed against the °Brix values measured during the experience."
	}

	return report
}
