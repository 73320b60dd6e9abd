package coastify

import (
	"errors"
	"fmt"
)

// Label identifies a pollution category. The set is closed.
type Label string

// Pollution categories.
const (
	LabelPlastic         Label = "plastic"
	LabelOilSpill        Label = "oil_spill"
	LabelOtherSolidWaste Label = "other_solid_waste"
	LabelMarineDebris    Label = "marine_debris"
	LabelNoWaste         Label = "no_waste"
)

// Labels is the fixed, ordered label set. The order defines the index
// mapping shared with PromptSet and Distribution; it must never be
// reordered independently of DefaultPrompts.
var Labels = []Label{
	LabelPlastic,
	LabelOilSpill,
	LabelOtherSolidWaste,
	LabelMarineDebris,
	LabelNoWaste,
}

// noWasteIndex is the position of LabelNoWaste in Labels.
const noWasteIndex = 4

// PromptSet is an ordered sequence of natural-language category
// descriptions, one per Label, in Label order. Immutable after the
// classifier is constructed.
type PromptSet []string

// DefaultPrompts describes each category so the embedding model only
// matches obvious pollution. Order mirrors Labels.
var DefaultPrompts = PromptSet{
	"plastic bottles and plastic bags littering a beach with visible garbage",
	"oil spill petroleum contamination dark brown black murky polluted water",
	"garbage pile trash heap rubbish dump on sandy beach",
	"fishing nets ropes tangled in water or on beach shore",
	"natural clean ocean water waves sea view without any garbage or pollution",
}

// ErrPromptMismatch indicates a PromptSet whose length does not match the
// label set. This is a configuration error: the classifier refuses to start.
var ErrPromptMismatch = errors.New("prompt set does not match label set")

// validate checks the PromptSet against Labels.
func (p PromptSet) validate() error {
	if len(p) != len(Labels) {
		return fmt.Errorf("%w: %d prompts for %d labels", ErrPromptMismatch, len(p), len(Labels))
	}
	for i, prompt := range p {
		if prompt == "" {
			return fmt.Errorf("%w: empty prompt at index %d (%s)", ErrPromptMismatch, i, Labels[i])
		}
	}
	return nil
}

// ParseLabel maps a label string to a Label. Unrecognized input (e.g. from
// stale persisted data) reports ok=false; callers typically fall back to
// LabelOtherSolidWaste via Lookup.
func ParseLabel(s string) (Label, bool) {
	for _, l := range Labels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}
