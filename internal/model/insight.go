package model

import "time"

// Insight report lifecycle
const (
	InsightStatusPending = "pending"
	InsightStatusReady   = "ready"
	InsightStatusFailed  = "failed"
)

// InsightReport is the AI-generated narrative over aggregated results
type InsightReport struct {
	Language    string     `json:"language" bson:"_id"`
	Curiosities []string   `json:"curiosities" bson:"curiosities"`
	MainTrend   string     `json:"mainTrend" bson:"mainTrend"`
	FunFact     string     `json:"funFact" bson:"funFact"`
	Methodology string     `json:"methodology" bson:"methodology"`
	Status      string     `json:"status" bson:"status"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty" bson:"generatedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// FoodAccuracy aggregates perception accuracy for one food across participants
type FoodAccuracy struct {
	FoodID        string  `json:"foodId"`
	Name          string  `json:"name"`
	Brix          float64 `json:"brix"`
	RealSweetness float64 `json:"realSweetness"`
	AvgPerceived  float64 `json:"avgPerceived"`
	Accurate      int     `json:"accurate"`
	Overestimated int     `json:"overestimated"`
	Underestimate int     `json:"underestimated"`
}

// AggregateStats is the payload fed to the insight generator
type AggregateStats struct {
	TotalParticipants int            `json:"totalParticipants"`
	AvgScore          float64        `json:"avgScore"`
	TopScore          float64        `json:"topScore"`
	BottomScore       float64        `json:"bottomScore"`
	AvgKnowledge      float64        `json:"avgKnowledge"`
	AvgAwareness      float64        `json:"avgAwareness"`
	AvgPairs          float64        `json:"avgPairs"`
	PairsAccuracy     float64        `json:"pairsAccuracy"` // 0-100 across all answered pairs
	Foods             []FoodAccuracy `json:"foods"`
}
