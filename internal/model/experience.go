package model

import "time"

// ComparisonPair defines one forced-choice question between two foods
type ComparisonPair struct {
	FoodAID       string `json:"food_a_id" bson:"foodAId"`
	FoodBID       string `json:"food_b_id" bson:"foodBId"`
	OrderPosition int    `json:"order_position" bson:"orderPosition"`
}

// ExperienceConfig is the single active configuration of the experience:
// which pairs are asked and the tolerance band for "equal" ground truth.
// Foods carry their own ordering in the foods collection.
type ExperienceConfig struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	Pairs         []ComparisonPair `json:"pairs" bson:"pairs"`
	PairThreshold float64          `json:"pair_threshold" bson:"pairThreshold"`
	UpdatedAt     time.Time        `json:"updatedAt" bson:"updatedAt"`
}
