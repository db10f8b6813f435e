package scoring

import (
	"math"

	"sugarsense/internal/model"
)

// Outcome is the ground-truth ordering of a comparison pair
type Outcome string

const (
	OutcomeA     Outcome = "a"
	OutcomeB     Outcome = "b"
	OutcomeEqual Outcome = "equal"
)

// DefaultPairThreshold absorbs instrument noise between two foods that
// measure nearly the same.
const DefaultPairThreshold = 0.5

// CompareFoods determines which of two measured foods actually has more
// sugar. Readings within threshold °Bx of each other count as equal.
func CompareFoods(brixA, brixB, threshold float64) Outcome {
	if threshold <= 0 {
		threshold = DefaultPairThreshold
	}
	if math.Abs(brixA-brixB) < threshold {
		return OutcomeEqual
	}
	if brixA > brixB {
		return OutcomeA
	}
	return OutcomeB
}

// IsPairAnswerCorrect checks a forced-choice answer against the ground
// truth. Any unrecognized answer value is simply incorrect.
func IsPairAnswerCorrect(answer string, reality Outcome) bool {
	switch answer {
	case model.AnswerAMore:
		return reality == OutcomeA
	case model.AnswerBMore:
		return reality == OutcomeB
	case model.AnswerEqual:
		return reality == OutcomeEqual
	}
	return false
}
