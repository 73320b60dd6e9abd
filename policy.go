package coastify

import "math"

// Decision thresholds. A pollution prediction below confidenceThreshold is
// overridden to no_waste, but only when the distribution also shows at least
// cleanEvidenceFloor probability mass on the no_waste category.
const (
	confidenceThreshold = 0.85
	cleanEvidenceFloor  = 0.15
)

// Decide applies the confidence-override rule to a distribution produced by
// the Matcher and returns the final (label, confidence) pair.
//
// The rule is intentionally asymmetric: it suppresses pollution alerts the
// model is not confident about, accepting false negatives to reduce false
// alarms, but only when the distribution carries reasonable evidence of a
// clean scene. A low-confidence prediction without that evidence is kept
// unchanged; that branch is pending product review and must stay as-is
// until there is a decision.
//
// Argmax ties resolve to the first index in Label order. Confidence is
// rounded to 4 decimal places.
func Decide(dist []float64) (Label, float64) {
	idx := argmax(dist)
	label := Labels[idx]
	confidence := dist[idx]

	if label != LabelNoWaste && confidence < confidenceThreshold {
		if p := dist[noWasteIndex]; p > cleanEvidenceFloor {
			label = LabelNoWaste
			confidence = p
		}
	}

	return label, round4(confidence)
}

// argmax returns the index of the largest value; first index wins on ties.
func argmax(dist []float64) int {
	best := 0
	for i, v := range dist {
		if v > dist[best] {
			best = i
		}
	}
	return best
}

// round4 rounds to 4 decimal places, matching the precision stored with
// each report.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
