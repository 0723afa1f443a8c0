package inspector

import "fieldlabel/internal/nicename"

// Label is the text and tooltip shown next to a property.
type Label struct {
	Text    string
	Tooltip string
}

// ResolveLabel applies attr to the host's fallback label. Collection elements
// keep the host text; fields and members of elements get the formatted
// display name. The tooltip is only replaced when attr carries one.
func ResolveLabel(attr Attribute, placement Placement, fallback Label) Label {
	label := fallback
	if placement != PlacementElement {
		label.Text = nicename.Format(attr.DisplayName)
	}
	if attr.UseTooltip {
		label.Tooltip = attr.Tooltip
	}
	return label
}
