package components

import (
	"fieldlabel/internal/inspector"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	inspector.Register("PointLight", "color", inspector.NewAttribute("lightColor"))
	inspector.Register("PointLight", "intensity", inspector.NewTooltipAttribute("_intensity", "Brightness multiplier applied to the color", false))
	inspector.Register("PointLight", "radius", inspector.NewTooltipAttribute("falloffRadius", "Distance at which the light fades out", false))
	inspector.Register("PointLight", "castShadows", inspector.NewAttribute("castShadows"))
	inspector.Register("PointLight", "uid", inspector.NewReadonlyAttribute("_objectID"))
}

type PointLight struct {
	UID         string
	Color       rl.Color
	Intensity   float32
	Radius      float32 // falloff distance
	CastShadows bool
}

func NewPointLight(uid string) *PointLight {
	return &PointLight{
		UID:       uid,
		Color:     rl.White,
		Intensity: 1.0,
		Radius:    10.0,
	}
}

func (p *PointLight) TypeName() string {
	return "PointLight"
}

// Properties lists the inspector-editable fields in display order.
func (p *PointLight) Properties() []inspector.Property {
	return []inspector.Property{
		inspector.NewProperty("uid", &p.UID),
		inspector.NewProperty("color", &p.Color),
		inspector.NewProperty("intensity", &p.Intensity),
		inspector.NewProperty("radius", &p.Radius),
		inspector.NewProperty("castShadows", &p.CastShadows),
	}
}

// Serialize returns the scene-file representation of the light.
func (p *PointLight) Serialize() map[string]any {
	return map[string]any{
		"type":        "PointLight",
		"uid":         p.UID,
		"color":       [3]uint8{p.Color.R, p.Color.G, p.Color.B},
		"intensity":   p.Intensity,
		"radius":      p.Radius,
		"castShadows": p.CastShadows,
	}
}

// Deserialize reads values decoded from a JSON scene file.
func (p *PointLight) Deserialize(data map[string]any) {
	if uid, ok := data["uid"].(string); ok {
		p.UID = uid
	}
	if c, ok := floats3(data["color"]); ok {
		p.Color = rl.NewColor(uint8(c[0]), uint8(c[1]), uint8(c[2]), 255)
	}
	if i, ok := data["intensity"].(float64); ok {
		p.Intensity = float32(i)
	}
	if r, ok := data["radius"].(float64); ok {
		p.Radius = float32(r)
	}
	if s, ok := data["castShadows"].(bool); ok {
		p.CastShadows = s
	}
}

// GetColorFloat returns the color scaled by intensity, as the shader expects.
func (p *PointLight) GetColorFloat() []float32 {
	return []float32{
		float32(p.Color.R) / 255.0 * p.Intensity,
		float32(p.Color.G) / 255.0 * p.Intensity,
		float32(p.Color.B) / 255.0 * p.Intensity,
	}
}
