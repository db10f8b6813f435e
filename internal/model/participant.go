package model

import "time"

// Profile holds descriptive participant info. Not consumed by scoring.
type Profile struct {
	Age         string `json:"age,omitempty" bson:"age,omitempty"`
	Gender      string `json:"gender,omitempty" bson:"gender,omitempty"`
	Profession  string `json:"profession,omitempty" bson:"profession,omitempty"`
	Consumption string `json:"consumption_habit,omitempty" bson:"consumptionHabit,omitempty"`
}

// Measurement is one instrument reading taken during the experience
type Measurement struct {
	Brix float64 `json:"brix" bson:"brix"`
}

// AwarenessResponse is the participant's self-assessment (part 4).
// All fields are optional; absent fields simply don't contribute.
type AwarenessResponse struct {
	Confidence *float64 `json:"confidence,omitempty" bson:"confidence,omitempty"`
	Difficulty *float64 `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Surprise   *float64 `json:"surprise,omitempty" bson:"surprise,omitempty"`
}

// Pairwise answer values as submitted by the client (part 3)
const (
	AnswerAMore = "a_more"
	AnswerBMore = "b_more"
	AnswerEqual = "equal"
)

// Participant is one completed experience flow. Created once at flow
// completion; only the nickname may change afterwards.
//
// Part2 is kept as a free-form map because perception ratings were stored
// under different key shapes across app versions (direct food-id key,
// nested "responses" map, positional index). The scoring package probes
// these shapes in order.
type Participant struct {
	ID           string                 `json:"id" bson:"_id,omitempty"`
	Nickname     string                 `json:"nickname,omitempty" bson:"nickname,omitempty"`
	Profile      Profile                `json:"profile" bson:"profile"`
	Part2        map[string]interface{} `json:"part2,omitempty" bson:"part2,omitempty"`
	Part3        map[string]string      `json:"part3,omitempty" bson:"part3,omitempty"`
	Part4        *AwarenessResponse     `json:"part4_awareness,omitempty" bson:"part4Awareness,omitempty"`
	Measurements map[string]Measurement `json:"measurements,omitempty" bson:"measurements,omitempty"`
	Foods        []Food                 `json:"foods,omitempty" bson:"foods,omitempty"` // snapshot of the active foods at completion
	CreatedAt    time.Time              `json:"createdAt" bson:"createdAt"`
}
