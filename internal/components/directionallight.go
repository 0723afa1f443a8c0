package components

import (
	"fieldlabel/internal/inspector"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	inspector.Register("DirectionalLight", "direction", inspector.NewTooltipAttribute("lightDirection", "Normalized direction the light travels", true))
	inspector.Register("DirectionalLight", "color", inspector.NewAttribute("lightColor"))
	inspector.Register("DirectionalLight", "intensity", inspector.NewAttribute("_intensity"))
	inspector.Register("DirectionalLight", "ambientColor", inspector.NewAttribute("ambientColor"))
	inspector.Register("DirectionalLight", "shadowDistance", inspector.NewTooltipAttribute("_shadowDistance", "How far from the origin the shadow camera sits", false))
}

type DirectionalLight struct {
	Direction      rl.Vector3
	Color          rl.Color
	Intensity      float32
	AmbientColor   rl.Color
	ShadowDistance float32
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:      rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}),
		Color:          rl.White,
		Intensity:      1.0,
		AmbientColor:   rl.NewColor(25, 25, 25, 255),
		ShadowDistance: 50.0,
	}
}

func (l *DirectionalLight) TypeName() string {
	return "DirectionalLight"
}

func (l *DirectionalLight) Properties() []inspector.Property {
	return []inspector.Property{
		inspector.NewProperty("direction", &l.Direction),
		inspector.NewProperty("color", &l.Color),
		inspector.NewProperty("intensity", &l.Intensity),
		inspector.NewProperty("ambientColor", &l.AmbientColor),
		inspector.NewProperty("shadowDistance", &l.ShadowDistance),
	}
}

// Serialize returns the scene-file representation of the light.
func (l *DirectionalLight) Serialize() map[string]any {
	return map[string]any{
		"type":           "DirectionalLight",
		"direction":      [3]float32{l.Direction.X, l.Direction.Y, l.Direction.Z},
		"color":          [3]uint8{l.Color.R, l.Color.G, l.Color.B},
		"intensity":      l.Intensity,
		"ambientColor":   [3]uint8{l.AmbientColor.R, l.AmbientColor.G, l.AmbientColor.B},
		"shadowDistance": l.ShadowDistance,
	}
}

// Deserialize reads values decoded from a JSON scene file.
func (l *DirectionalLight) Deserialize(data map[string]any) {
	if dir, ok := floats3(data["direction"]); ok {
		l.Direction = rl.Vector3{X: float32(dir[0]), Y: float32(dir[1]), Z: float32(dir[2])}
	}
	if c, ok := floats3(data["color"]); ok {
		l.Color = rl.NewColor(uint8(c[0]), uint8(c[1]), uint8(c[2]), 255)
	}
	if i, ok := data["intensity"].(float64); ok {
		l.Intensity = float32(i)
	}
	if c, ok := floats3(data["ambientColor"]); ok {
		l.AmbientColor = rl.NewColor(uint8(c[0]), uint8(c[1]), uint8(c[2]), 255)
	}
	if d, ok := data["shadowDistance"].(float64); ok {
		l.ShadowDistance = float32(d)
	}
}

// GetColorFloat returns the color scaled by intensity, as the shader expects.
func (l *DirectionalLight) GetColorFloat() []float32 {
	return []float32{
		float32(l.Color.R) / 255.0 * l.Intensity,
		float32(l.Color.G) / 255.0 * l.Intensity,
		float32(l.Color.B) / 255.0 * l.Intensity,
		1.0,
	}
}

// MoveLightDir nudges the direction and renormalizes it.
func (l *DirectionalLight) MoveLightDir(dx, dy, dz float32) {
	l.Direction.X += dx
	l.Direction.Y += dy
	l.Direction.Z += dz
	l.Direction = rl.Vector3Normalize(l.Direction)
}

func (l *DirectionalLight) GetAmbientFloat() []float32 {
	return []float32{
		float32(l.AmbientColor.R) / 255.0,
		float32(l.AmbientColor.G) / 255.0,
		float32(l.AmbientColor.B) / 255.0,
		1.0,
	}
}
