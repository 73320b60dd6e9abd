package coastify

import (
	"math"
	"testing"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		dist           []float64
		wantLabel      Label
		wantConfidence float64
	}{
		{
			name:           "confident plastic kept",
			dist:           []float64{0.90, 0.02, 0.03, 0.02, 0.03},
			wantLabel:      LabelPlastic,
			wantConfidence: 0.90,
		},
		{
			name:           "low confidence with clean evidence overrides to no_waste",
			dist:           []float64{0.40, 0.05, 0.05, 0.05, 0.45},
			wantLabel:      LabelNoWaste,
			wantConfidence: 0.45,
		},
		{
			name:           "low confidence without clean evidence kept",
			dist:           []float64{0.40, 0.30, 0.10, 0.10, 0.10},
			wantLabel:      LabelPlastic,
			wantConfidence: 0.40,
		},
		{
			name:           "no_waste argmax never overridden",
			dist:           []float64{0.20, 0.20, 0.20, 0.10, 0.30},
			wantLabel:      LabelNoWaste,
			wantConfidence: 0.30,
		},
		{
			name:           "confidence exactly at threshold kept",
			dist:           []float64{0.85, 0.00, 0.00, 0.00, 0.15},
			wantLabel:      LabelPlastic,
			wantConfidence: 0.85,
		},
		{
			name:           "clean evidence exactly at floor does not override",
			dist:           []float64{0.45, 0.20, 0.10, 0.10, 0.15},
			wantLabel:      LabelPlastic,
			wantConfidence: 0.45,
		},
		{
			name:           "clean evidence just above floor overrides",
			dist:           []float64{0.44, 0.20, 0.10, 0.10, 0.16},
			wantLabel:      LabelNoWaste,
			wantConfidence: 0.16,
		},
		{
			name:           "argmax tie resolves to first label",
			dist:           []float64{0.40, 0.40, 0.05, 0.05, 0.10},
			wantLabel:      LabelPlastic,
			wantConfidence: 0.40,
		},
		{
			name:           "oil spill confident",
			dist:           []float64{0.02, 0.92, 0.02, 0.02, 0.02},
			wantLabel:      LabelOilSpill,
			wantConfidence: 0.92,
		},
		{
			name:           "marine debris overridden on weak evidence",
			dist:           []float64{0.10, 0.05, 0.05, 0.50, 0.30},
			wantLabel:      LabelNoWaste,
			wantConfidence: 0.30,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			label, confidence := Decide(tc.dist)
			if label != tc.wantLabel {
				t.Errorf("Decide(%v) label = %s, want %s", tc.dist, label, tc.wantLabel)
			}
			if math.Abs(confidence-tc.wantConfidence) > 1e-9 {
				t.Errorf("Decide(%v) confidence = %v, want %v", tc.dist, confidence, tc.wantConfidence)
			}
		})
	}
}

func TestDecideRoundsConfidence(t *testing.T) {
	t.Parallel()

	dist := []float64{0.8576543, 0.05, 0.03, 0.03, 0.0323457}
	_, confidence := Decide(dist)
	if confidence != 0.8577 {
		t.Errorf("confidence = %v, want 0.8577 (rounded to 4 decimal places)", confidence)
	}
}

func TestArgmaxFirstIndexWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dist []float64
		want int
	}{
		{name: "all equal", dist: []float64{0.2, 0.2, 0.2, 0.2, 0.2}, want: 0},
		{name: "later max", dist: []float64{0.1, 0.1, 0.1, 0.1, 0.6}, want: 4},
		{name: "tie between middle entries", dist: []float64{0.1, 0.35, 0.35, 0.1, 0.1}, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := argmax(tc.dist); got != tc.want {
				t.Errorf("argmax(%v) = %d, want %d", tc.dist, got, tc.want)
			}
		})
	}
}
