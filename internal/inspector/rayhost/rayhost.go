// Package rayhost draws inspector properties with raygui controls.
package rayhost

import (
	"fmt"
	"strconv"

	"fieldlabel/internal/inspector"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Range bounds a float slider.
type Range struct {
	Min, Max float32
}

var defaultRange = Range{Min: 0, Max: 10}

// Host implements inspector.Host on top of raygui. The label column is
// LabelWidth pixels wide and the control fills the rest of the row.
type Host struct {
	LabelWidth float32
	// Ranges holds slider bounds keyed by component field name.
	Ranges map[string]Range

	tooltips bool
	pending  *tooltip
}

// NewHost returns a host laid out and decorated according to cfg.
func NewHost(cfg inspector.Config) *Host {
	return &Host{
		LabelWidth: cfg.LabelWidth,
		Ranges:     map[string]Range{},
		tooltips:   cfg.Tooltips,
	}
}

// SetEnabled implements inspector.Host
func (h *Host) SetEnabled(enabled bool) {
	if enabled {
		gui.Enable()
	} else {
		gui.Disable()
	}
}

// DrawProperty implements inspector.Host
func (h *Host) DrawProperty(bounds rl.Rectangle, prop inspector.Property, label inspector.Label) bool {
	labelBounds, controlBounds := h.split(bounds)

	if h.tooltips && label.Tooltip != "" {
		screen := rl.Vector2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())}
		textW := float32(rl.MeasureText(label.Tooltip, tooltipFontSize))
		if rect, ok := tooltipBounds(rl.GetMousePosition(), bounds, label.Tooltip, textW, screen); ok {
			h.pending = &tooltip{text: label.Tooltip, bounds: rect}
		}
	}

	gui.Label(labelBounds, label.Text)

	switch v := prop.Value.(type) {
	case *float32:
		// Slider clamps into its range every frame, so the range has to
		// contain the current value or untouched fields get rewritten.
		r := sliderRange(h.rangeFor(prop.FieldName()), *v)
		text := strconv.FormatFloat(float64(*v), 'f', 2, 32)
		newVal := gui.Slider(controlBounds, "", text, *v, r.Min, r.Max)
		if newVal != *v {
			*v = newVal
			return true
		}
	case *bool:
		checked := gui.CheckBox(rl.Rectangle{X: controlBounds.X, Y: controlBounds.Y + 2, Width: controlBounds.Height - 4, Height: controlBounds.Height - 4}, "", *v)
		if checked != *v {
			*v = checked
			return true
		}
	default:
		gui.Label(controlBounds, ValueText(prop.Value))
	}
	return false
}

func (h *Host) split(bounds rl.Rectangle) (rl.Rectangle, rl.Rectangle) {
	w := h.LabelWidth
	if w > bounds.Width {
		w = bounds.Width
	}
	labelBounds := rl.Rectangle{X: bounds.X, Y: bounds.Y, Width: w, Height: bounds.Height}
	controlBounds := rl.Rectangle{X: bounds.X + w, Y: bounds.Y, Width: bounds.Width - w, Height: bounds.Height}
	return labelBounds, controlBounds
}

func (h *Host) rangeFor(field string) Range {
	if r, ok := h.Ranges[field]; ok && r.Max > r.Min {
		return r
	}
	return defaultRange
}

// sliderRange widens r so that it contains v.
func sliderRange(r Range, v float32) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// ValueText renders values that have no dedicated control.
func ValueText(value any) string {
	switch v := value.(type) {
	case nil:
		return "(none)"
	case *string:
		if *v == "" {
			return "(none)"
		}
		return *v
	case *rl.Color:
		if name := colorName(*v); name != "" {
			return name
		}
		return fmt.Sprintf("#%02X%02X%02X", v.R, v.G, v.B)
	case *rl.Vector3:
		return fmt.Sprintf("%.2f, %.2f, %.2f", v.X, v.Y, v.Z)
	case *int:
		return strconv.Itoa(*v)
	case *int32:
		return strconv.Itoa(int(*v))
	default:
		return fmt.Sprint(value)
	}
}
