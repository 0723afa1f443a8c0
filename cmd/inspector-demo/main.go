// Inspector demo: draws a point light's properties with attribute labels.
package main

import (
	"flag"
	"fmt"
	"os"

	"fieldlabel/internal/components"
	"fieldlabel/internal/inspector"
	"fieldlabel/internal/inspector/rayhost"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "inspector.yaml", "inspector config file")
	fontPath := flag.String("font", "", "TTF font for the panel")
	statePath := flag.String("state", ".inspector_state.json", "file the panel values are loaded from and saved to")
	flag.Parse()

	cfg, err := inspector.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	lggr, err := inspector.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = lggr.Sync() }()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(420, 440, "Inspector")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rayhost.ApplyTheme(*fontPath, lggr)

	host := rayhost.NewHost(*cfg)
	host.Ranges["intensity"] = rayhost.Range{Min: 0, Max: 2}
	host.Ranges["radius"] = rayhost.Range{Min: 0, Max: 50}
	host.Ranges["shadowDistance"] = rayhost.Range{Min: 1, Max: 200}

	drawer := inspector.NewDrawer(host,
		inspector.WithConfig(*cfg),
		inspector.WithLogger(lggr),
	)

	point := components.NewPointLight("light-1")
	sun := components.NewDirectionalLight()
	panel := []components.Stateful{point, sun}
	if err := components.LoadState(*statePath, panel); err != nil {
		lggr.Warnw("Ignoring saved panel state", "path", *statePath, "err", err)
	}

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rayhost.ColorBgDark)

		panelW := float32(rl.GetScreenWidth()) - 20
		rl.DrawRectangleRounded(rl.Rectangle{X: 10, Y: 10, Width: panelW, Height: float32(rl.GetScreenHeight()) - 20}, 0.05, 6, rayhost.ColorBgPanel)

		y := float32(20)
		for _, c := range panel {
			rl.DrawText(c.TypeName(), 22, int32(y), 18, rayhost.ColorTextSecondary)
			if lc, ok := c.(lightColor); ok {
				rayhost.DrawSwatch(rl.Rectangle{X: panelW - 14, Y: y + 2, Width: 16, Height: 16}, lc.GetColorFloat())
			}
			if ac, ok := c.(ambientColor); ok {
				rayhost.DrawSwatch(rl.Rectangle{X: panelW - 36, Y: y + 2, Width: 16, Height: 16}, ac.GetAmbientFloat())
			}
			bounds := rl.Rectangle{X: 22, Y: y + 28, Width: panelW - 24}

			var edited []string
			y, edited = drawer.DrawFields(bounds, c.TypeName(), c.Properties())
			for _, path := range edited {
				lggr.Infow("Property edited", "component", c.TypeName(), "path", path)
			}
			y += 12
		}
		if rl.IsKeyDown(rl.KeyLeft) {
			sun.MoveLightDir(-0.01, 0, 0)
		}
		if rl.IsKeyDown(rl.KeyRight) {
			sun.MoveLightDir(0.01, 0, 0)
		}

		host.DrawTooltip()
		rl.EndDrawing()
	}

	if err := components.SaveState(*statePath, panel); err != nil {
		lggr.Errorw("Failed to save panel state", "path", *statePath, "err", err)
	}
}

// lightColor is implemented by components that feed a color to the shader.
type lightColor interface {
	GetColorFloat() []float32
}

type ambientColor interface {
	GetAmbientFloat() []float32
}
