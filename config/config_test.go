package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpane/split"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	opts := cfg.ContainerOptions()
	assert.Equal(t, split.Horizontal, opts.Axis)
	assert.Equal(t, split.LTR, opts.Direction)
	assert.Equal(t, 1.0, opts.GutterSize)
	assert.Equal(t, "#585b70", opts.GutterColor)
	assert.True(t, opts.UseTransition)
	assert.False(t, opts.FixedWidth.IsSet())

	specs := cfg.AreaSpecs()
	require.Len(t, specs, 3)
	assert.Equal(t, split.HintOf(0.25), specs[0].SizeHint)
	assert.Equal(t, split.HintOf(0.5), specs[1].SizeHint)
	assert.Equal(t, 0.2, specs[1].MinSize)
	assert.False(t, specs[0].OrderHint.IsSet())
	for _, s := range specs {
		assert.True(t, s.Visible)
	}
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().Axis, cfg.Axis)
	assert.FileExists(t, filepath.Join(home, ".splitpane", ConfigFileName))

	again := LoadConfig()
	require.Len(t, again.Areas, 3)
	assert.Equal(t, "Editor", again.Areas[1].Title)
	assert.Equal(t, split.HintOf(0.5), again.AreaSpecs()[1].SizeHint)
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".splitpane")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644))

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
	backups, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestSaveConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.Axis = "vertical"
	cfg.GutterSize = 3
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, split.Vertical, loaded.ContainerOptions().Axis)
	assert.Equal(t, 3.0, loaded.ContainerOptions().GutterSize)
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
axis = "vertical"
dir = "rtl"
gutter_size = 2
height = 30

[[areas]]
title = "Top"
size = 40
order = 2

[[areas]]
title = "Bottom"
size = "60"
order = 1
visible = "false"
`), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	opts := cfg.ContainerOptions()
	assert.Equal(t, split.Vertical, opts.Axis)
	assert.Equal(t, split.RTL, opts.Direction)
	assert.Equal(t, 2.0, opts.GutterSize)
	assert.Equal(t, split.HintOf(30), opts.FixedHeight)

	specs := cfg.AreaSpecs()
	require.Len(t, specs, 2)
	assert.Equal(t, split.HintOf(0.4), specs[0].SizeHint)
	assert.Equal(t, split.HintOf(0.6), specs[1].SizeHint)
	assert.Equal(t, split.HintOf(2), specs[0].OrderHint)
	assert.True(t, specs[0].Visible)
	assert.False(t, specs[1].Visible)
}

func TestLoadConfigFileJSON(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "layout.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"axis":"horizontal","gutter_size":"0","areas":[{"title":"Only","min_size":150}]}`), 0644))
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, float64(split.DefaultGutterSize), cfg.ContainerOptions().GutterSize)
	require.Len(t, cfg.AreaSpecs(), 1)
	assert.Equal(t, 0.0, cfg.AreaSpecs()[0].MinSize)

	noAreas := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(noAreas, []byte(`{}`), 0644))
	cfg, err = LoadConfigFile(noAreas)
	require.NoError(t, err)
	assert.Len(t, cfg.Areas, 3)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[`), 0644))
	_, err = LoadConfigFile(bad)
	assert.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestApplySizes(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplySizes("30, 70"))
	specs := cfg.AreaSpecs()
	assert.Equal(t, split.HintOf(0.3), specs[0].SizeHint)
	assert.Equal(t, split.HintOf(0.7), specs[1].SizeHint)

	require.NoError(t, cfg.ApplySizes("10,20,30,20,20"))
	require.Len(t, cfg.Areas, 5)
	assert.Equal(t, "Pane 5", cfg.Areas[4].Title)

	assert.Error(t, cfg.ApplySizes("10,wide"))
	assert.NoError(t, cfg.ApplySizes(""))
}
