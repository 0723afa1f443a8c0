package rayhost

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Panel colors, indigo dark theme shared with the editor
var (
	ColorBgDark    = rl.NewColor(10, 10, 15, 255)
	ColorBgPanel   = rl.NewColor(18, 18, 24, 245)
	ColorBgElement = rl.NewColor(28, 28, 38, 255)
	ColorBgHover   = rl.NewColor(38, 38, 52, 255)

	ColorAccent = rl.NewColor(108, 99, 255, 255) // #6c63ff

	ColorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	ColorTextSecondary = rl.NewColor(200, 200, 208, 255) // #c8c8d0
	ColorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

// ApplyTheme loads the panel font, if fontPath is set, and styles raygui
// controls. Must be called after the window is created.
func ApplyTheme(fontPath string, lggr *zap.SugaredLogger) {
	if fontPath != "" {
		font := rl.LoadFontEx(fontPath, 48, nil)
		if font.Texture.ID > 0 {
			rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
			gui.SetFont(font)
			lggr.Infow("Loaded panel font", "path", fontPath)
		} else {
			lggr.Warnw("Failed to load panel font, using default", "path", fontPath)
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(ColorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(ColorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(ColorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(ColorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(ColorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_DISABLED, gui.NewColorPropertyValue(ColorTextMuted))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// colorName returns a human-readable name for common colors.
func colorName(c rl.Color) string {
	switch c {
	case rl.Red:
		return "Red"
	case rl.Blue:
		return "Blue"
	case rl.Green:
		return "Green"
	case rl.Orange:
		return "Orange"
	case rl.Yellow:
		return "Yellow"
	case rl.SkyBlue:
		return "SkyBlue"
	case rl.White:
		return "White"
	case rl.LightGray:
		return "LightGray"
	case rl.Gray:
		return "Gray"
	case rl.Black:
		return "Black"
	case rl.Gold:
		return "Gold"
	default:
		return ""
	}
}

// SwatchColor converts shader color floats (0..1, possibly scaled past 1 by
// intensity) to a displayable color.
func SwatchColor(c []float32) rl.Color {
	channel := func(i int) uint8 {
		if i >= len(c) || c[i] <= 0 {
			return 0
		}
		if c[i] >= 1 {
			return 255
		}
		return uint8(c[i]*255 + 0.5)
	}
	return rl.NewColor(channel(0), channel(1), channel(2), 255)
}

// DrawSwatch draws a small preview of shader color floats.
func DrawSwatch(bounds rl.Rectangle, c []float32) {
	rl.DrawRectangleRounded(bounds, 0.3, 4, SwatchColor(c))
	rl.DrawRectangleRoundedLinesEx(bounds, 0.3, 4, 1, rl.NewColor(50, 50, 65, 255))
}
