package coastify

import "testing"

func TestLookupKnownLabels(t *testing.T) {
	t.Parallel()

	for _, label := range Labels {
		info := Lookup(label)
		if info.Name == "" || info.Icon == "" || info.Color == "" {
			t.Errorf("Lookup(%s) has empty display fields: %+v", label, info)
		}
	}
}

func TestLookupUnknownFallsBack(t *testing.T) {
	t.Parallel()

	want := Lookup(LabelOtherSolidWaste)

	tests := []struct {
		name  string
		label Label
	}{
		{name: "unrecognized label", label: Label("sewage")},
		{name: "empty label", label: Label("")},
		{name: "stale persisted label", label: Label("chemical_spill")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Lookup(tc.label); got != want {
				t.Errorf("Lookup(%q) = %+v, want other_solid_waste entry %+v", tc.label, got, want)
			}
		})
	}
}

func TestLookupString(t *testing.T) {
	t.Parallel()

	if got := LookupString("oil_spill"); got != Lookup(LabelOilSpill) {
		t.Errorf("LookupString(oil_spill) = %+v, want oil spill entry", got)
	}
	if got := LookupString("not-a-label"); got != Lookup(LabelOtherSolidWaste) {
		t.Errorf("LookupString(not-a-label) = %+v, want other_solid_waste entry", got)
	}
}
