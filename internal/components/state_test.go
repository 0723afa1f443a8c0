package components

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.json")

	point := NewPointLight("light-1")
	point.Radius = 80
	point.CastShadows = true
	sun := NewDirectionalLight()
	sun.Color = rl.NewColor(255, 200, 150, 255)
	sun.ShadowDistance = 120
	sun.MoveLightDir(0.2, 0, 0)

	require.NoError(t, SaveState(path, []Stateful{point, sun}))

	gotPoint := NewPointLight("")
	gotSun := NewDirectionalLight()
	require.NoError(t, LoadState(path, []Stateful{gotPoint, gotSun}))

	assert.Equal(t, point, gotPoint)
	assert.Equal(t, sun, gotSun)
}

func TestLoadStateMissingFileKeepsValues(t *testing.T) {
	point := NewPointLight("light-1")
	require.NoError(t, LoadState(filepath.Join(t.TempDir(), "missing.json"), []Stateful{point}))
	assert.Equal(t, NewPointLight("light-1"), point)
}

func TestLoadStateIgnoresUnknownTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"SpotLight": {"intensity": 4}}`), 0644))

	point := NewPointLight("x")
	require.NoError(t, LoadState(path, []Stateful{point}))
	assert.Equal(t, float32(1), point.Intensity)
}

func TestLoadStateInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	err := LoadState(path, []Stateful{NewPointLight("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse state")
}

func TestDeserializeSkipsMalformedColor(t *testing.T) {
	point := NewPointLight("x")
	point.Deserialize(map[string]any{"color": []any{1.0, "two", 3.0}})
	assert.Equal(t, rl.White, point.Color)
}
