package rayhost

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	tooltipFontSize = 14
	tooltipPadding  = 6
)

// Offset of the tooltip from the mouse cursor
var tooltipOffset = rl.Vector2{X: 12, Y: 16}

type tooltip struct {
	text   string
	bounds rl.Rectangle
}

// tooltipBounds decides whether text should show for a row under the mouse
// and where. The box sits below-right of the cursor and is kept on screen,
// flipping above the cursor near the bottom edge.
func tooltipBounds(mouse rl.Vector2, row rl.Rectangle, text string, textW float32, screen rl.Vector2) (rl.Rectangle, bool) {
	hovered := mouse.X >= row.X && mouse.X <= row.X+row.Width &&
		mouse.Y >= row.Y && mouse.Y <= row.Y+row.Height
	if text == "" || !hovered {
		return rl.Rectangle{}, false
	}

	w := textW + 2*tooltipPadding
	h := float32(tooltipFontSize) + 2*tooltipPadding

	x := mouse.X + tooltipOffset.X
	if x+w > screen.X {
		x = screen.X - w
	}
	if x < 0 {
		x = 0
	}

	y := mouse.Y + tooltipOffset.Y
	if y+h > screen.Y {
		y = mouse.Y - h - 4
	}
	if y < 0 {
		y = 0
	}

	return rl.Rectangle{X: x, Y: y, Width: w, Height: h}, true
}

// DrawTooltip draws the tooltip of the row under the mouse, if any, and
// clears it. Call once per frame after every property has been drawn so the
// box stays on top of later rows.
func (h *Host) DrawTooltip() {
	t := h.pending
	h.pending = nil
	if t == nil {
		return
	}

	rl.DrawRectangleRounded(t.bounds, 0.2, 4, ColorBgElement)
	rl.DrawRectangleRoundedLinesEx(t.bounds, 0.2, 4, 1, ColorAccent)
	rl.DrawText(t.text, int32(t.bounds.X+tooltipPadding), int32(t.bounds.Y+tooltipPadding), tooltipFontSize, ColorTextPrimary)
}
