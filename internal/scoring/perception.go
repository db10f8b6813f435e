package scoring

import "math"

// AccuracyStatus classifies one perceived-vs-measured comparison
type AccuracyStatus string

const (
	StatusAccurate       AccuracyStatus = "accurate"
	StatusUnderestimated AccuracyStatus = "underestimated"
	StatusOverestimated  AccuracyStatus = "overestimated"
)

// PerceptionComparison is the result of comparing a participant's rating
// against the sweetness derived from the instrument measurement.
type PerceptionComparison struct {
	Difference    float64        `json:"difference"`
	Percentage    float64        `json:"percentage"`
	Status        AccuracyStatus `json:"status"`
	RealSweetness float64        `json:"realSweetness"`
}

// ComparePerception compares a perceived sweetness rating with the measured
// °Brix of the same food. The difference is signed: negative means the
// participant underestimated. A |difference| within 1 scale point counts as
// accurate.
//
// The participant rates on a 1-5 scale while the derived reality scale is
// 1-10; the raw difference is kept as-is for compatibility with historical
// score data.
func ComparePerception(perceived, measuredBrix float64) PerceptionComparison {
	realSw := BrixToSweetness(measuredBrix)
	diff := perceived - realSw

	// Reference foods can legitimately measure near 0 °Bx; don't let the
	// relative error blow up to Inf/NaN.
	pct := 0.0
	if realSw > 0.01 {
		pct = math.Abs(diff/realSw) * 100
	}

	status := StatusAccurate
	if math.Abs(diff) > 1 {
		if diff < 0 {
			status = StatusUnderestimated
		} else {
			status = StatusOverestimated
		}
	}

	return PerceptionComparison{
		Difference:    diff,
		Percentage:    pct,
		Status:        status,
		RealSweetness: realSw,
	}
}
