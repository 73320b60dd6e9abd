package coastify

// CategoryInfo holds the display metadata for a pollution category.
// The fields are for client rendering only and are never fed back into
// classification.
type CategoryInfo struct {
	Name  string // human-readable category name
	Icon  string // emoji shown on maps and report cards
	Color string // hex color for markers and badges
}

// categories is the static display table, keyed by Label.
var categories = map[Label]CategoryInfo{
	LabelPlastic:         {Name: "Plastic Pollution", Icon: "🥤", Color: "#ef4444"},
	LabelOilSpill:        {Name: "Oil Spill", Icon: "🛢️", Color: "#1f2937"},
	LabelOtherSolidWaste: {Name: "Solid Waste", Icon: "🗑️", Color: "#92400e"},
	LabelMarineDebris:    {Name: "Marine Debris", Icon: "🎣", Color: "#0ea5e9"},
	LabelNoWaste:         {Name: "No Waste Detected", Icon: "✅", Color: "#22c55e"},
}

// Lookup returns the display metadata for label. Unknown labels resolve to
// the other_solid_waste entry as a safe default, so stale persisted label
// strings never break rendering.
func Lookup(label Label) CategoryInfo {
	if info, ok := categories[label]; ok {
		return info
	}
	return categories[LabelOtherSolidWaste]
}

// LookupString is Lookup for raw label strings from persisted data.
func LookupString(s string) CategoryInfo {
	label, ok := ParseLabel(s)
	if !ok {
		return categories[LabelOtherSolidWaste]
	}
	return Lookup(label)
}
