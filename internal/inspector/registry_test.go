package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeConstructors(t *testing.T) {
	a := NewAttribute("moveSpeed")
	assert.Equal(t, Attribute{DisplayName: "moveSpeed"}, a)

	ro := NewReadonlyAttribute("uid")
	assert.True(t, ro.Readonly)
	assert.False(t, ro.UseTooltip)

	tip := NewTooltipAttribute("radius", "Falloff distance", false)
	assert.True(t, tip.UseTooltip)
	assert.Equal(t, "Falloff distance", tip.Tooltip)
	assert.False(t, tip.Readonly)

	tipRO := NewTooltipAttribute("radius", "Falloff distance", true)
	assert.True(t, tipRO.Readonly)
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("PointLight", "Intensity", NewAttribute("_intensity")))

	attr, ok := r.Lookup("PointLight", "Intensity")
	require.True(t, ok)
	assert.Equal(t, "_intensity", attr.DisplayName)

	_, ok = r.Lookup("PointLight", "Radius")
	assert.False(t, ok)
	_, ok = r.Lookup("SpotLight", "Intensity")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("Camera", "Fov", NewAttribute("fieldOfView")))

	err := r.Register("Camera", "Fov", NewAttribute("fov"))
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "Camera.Fov")

	attr, _ := r.Lookup("Camera", "Fov")
	assert.Equal(t, "fieldOfView", attr.DisplayName, "first registration wins")
}

func TestRegistryRejectsEmptyNames(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Register("", "Fov", NewAttribute("fov")), ErrEmptyName)
	assert.ErrorIs(t, r.Register("Camera", "", NewAttribute("fov")), ErrEmptyName)
	assert.ErrorIs(t, r.Register("Camera", "Fov", NewAttribute("")), ErrEmptyName)
	assert.Empty(t, r.Types())
}

func TestRegistryMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Camera", "Fov", NewAttribute("fov"))
	assert.Panics(t, func() {
		r.MustRegister("Camera", "Fov", NewAttribute("fov"))
	})
}

func TestRegistryFieldsAndTypesSorted(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Rigidbody", "Mass", NewAttribute("mass"))
	r.MustRegister("Camera", "Near", NewAttribute("nearPlane"))
	r.MustRegister("Camera", "Far", NewAttribute("farPlane"))
	r.MustRegister("Camera", "Fov", NewAttribute("fieldOfView"))

	assert.Equal(t, []string{"Camera", "Rigidbody"}, r.Types())
	assert.Equal(t, []string{"Far", "Fov", "Near"}, r.Fields("Camera"))
	assert.Empty(t, r.Fields("Missing"))
}
