package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopfab/shelfgen/preset"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shelf.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	p := preset.Default()
	require.Equal(t, "retail_shelf", p.Label)
	require.Equal(t, 2.0, p.Width)
	require.Equal(t, 4, p.Brackets)
	require.Equal(t, []string{"obj"}, p.Formats)
	require.Equal(t, "cylinder", p.CrownStyle)
}

func TestLoad(t *testing.T) {
	path := writePreset(t, `
label = "endcap_display"
width = 1.2
brackets = 3
pegboard = true
formats = ["stl", "gltf"]

[materials.shelf]
color = [0.2, 0.2, 0.8, 1.0]
roughness = 0.5
`)
	p, err := preset.Load(path)
	require.NoError(t, err)
	require.Equal(t, "endcap_display", p.Label)
	require.Equal(t, 1.2, p.Width)
	require.Equal(t, 3, p.Brackets)
	require.True(t, p.Pegboard)
	require.Equal(t, []string{"stl", "gltf"}, p.Formats)

	// unset fields keep the defaults
	require.Equal(t, 0.3, p.Height)
	require.Equal(t, 1.5, p.BackingHeight)
	require.Equal(t, "cylinder", p.CrownStyle)

	require.Contains(t, p.Materials, "shelf")
	m := p.Materials["shelf"]
	require.NotNil(t, m.Color)
	require.Equal(t, [4]float64{0.2, 0.2, 0.8, 1.0}, *m.Color)
	require.NotNil(t, m.Roughness)
	require.Equal(t, 0.5, *m.Roughness)
	require.Nil(t, m.Metallic)
}

func TestLoadPartialMaterial(t *testing.T) {
	path := writePreset(t, `
[materials.bracket]
roughness = 0.9
`)
	p, err := preset.Load(path)
	require.NoError(t, err)
	m := p.Materials["bracket"]
	require.Nil(t, m.Color)
	require.Nil(t, m.Metallic)
	require.NotNil(t, m.Roughness)
	require.Equal(t, 0.9, *m.Roughness)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writePreset(t, "widht = 1.2\n")
	_, err := preset.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse preset")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := preset.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestLoadBadTOML(t *testing.T) {
	path := writePreset(t, "label = [unclosed\n")
	_, err := preset.Load(path)
	require.Error(t, err)
}
