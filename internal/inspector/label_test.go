package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLabel(t *testing.T) {
	fallback := Label{Text: "Element 3", Tooltip: "host tip"}

	tests := []struct {
		name      string
		attr      Attribute
		placement Placement
		want      Label
	}{
		{
			name:      "field gets formatted name",
			attr:      NewAttribute("_castShadows"),
			placement: PlacementField,
			want:      Label{Text: "Cast Shadows", Tooltip: "host tip"},
		},
		{
			name:      "element keeps host text",
			attr:      NewAttribute("_castShadows"),
			placement: PlacementElement,
			want:      Label{Text: "Element 3", Tooltip: "host tip"},
		},
		{
			name:      "element member gets formatted name",
			attr:      NewAttribute("lodBias"),
			placement: PlacementElementMember,
			want:      Label{Text: "Lod Bias", Tooltip: "host tip"},
		},
		{
			name:      "tooltip replaces host tooltip",
			attr:      NewTooltipAttribute("radius", "Falloff distance", false),
			placement: PlacementField,
			want:      Label{Text: "Radius", Tooltip: "Falloff distance"},
		},
		{
			name:      "tooltip applies to elements too",
			attr:      NewTooltipAttribute("radius", "Falloff distance", false),
			placement: PlacementElement,
			want:      Label{Text: "Element 3", Tooltip: "Falloff distance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLabel(tt.attr, tt.placement, fallback))
		})
	}
}
