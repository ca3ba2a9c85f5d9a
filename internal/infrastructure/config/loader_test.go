package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panedrawer/internal/domain/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSetDrawerDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 2.0, mgr.viper.GetFloat64("drawer.gravity_magnitude"))
	assert.Equal(t, 3*time.Second, mgr.viper.GetDuration("drawer.max_step_duration"))
	assert.True(t, mgr.viper.GetBool("drawer.slide_off_animation"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	mgr := NewManagerForFile(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().Drawer.GravityMagnitude, cfg.Drawer.GravityMagnitude)
	assert.Equal(t, entity.DefaultRevealWidthHorizontal, cfg.Drawer.DefaultRevealWidthHorizontal)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[drawer]
gravity_magnitude = 3.5
frame_interval = "10ms"
edge_pan_required = true

[drawer.reveal_width]
Left = 300
vertical = 180

[drawer.tap_to_close]
right = false

[logging]
format = "JSON"
max_backups = 5
compress = false
`)
	mgr := NewManagerForFile(path)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 3.5, cfg.Drawer.GravityMagnitude)
	assert.Equal(t, 10*time.Millisecond, cfg.Drawer.FrameInterval)
	assert.True(t, cfg.Drawer.EdgePanRequired)
	assert.Equal(t, map[string]float64{"left": 300, "vertical": 180}, cfg.Drawer.RevealWidth)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5, cfg.Logging.MaxBackups)
	assert.False(t, cfg.Logging.Compress)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.Equal(t, path, mgr.GetConfigFile())

	opts := cfg.Drawer.Options()
	assert.Equal(t, 300.0, opts.RevealWidths[entity.DirectionLeft])
	assert.Equal(t, 180.0, opts.RevealWidths[entity.DirectionVertical])
	assert.Equal(t, map[entity.Direction]bool{entity.DirectionRight: false}, opts.TapToClose)
	assert.Equal(t, 3.5, opts.GravityMagnitude)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[drawer]\nvelocity_threshold = 8\n")
	t.Setenv("PANEDRAWER_DRAWER_VELOCITY_THRESHOLD", "12")

	mgr := NewManagerForFile(path)
	require.NoError(t, mgr.Load())

	assert.Equal(t, 12.0, mgr.Get().Drawer.VelocityThreshold)
}

func TestLoad_ValidationAggregatesErrors(t *testing.T) {
	path := writeConfig(t, `
[drawer]
gravity_magnitude = -1
elasticity = 2

[drawer.reveal_width]
diagonal = 100
`)
	mgr := NewManagerForFile(path)

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "drawer.gravity_magnitude must be positive")
	assert.Contains(t, err.Error(), "drawer.elasticity must be between 0 and 1")
	assert.Contains(t, err.Error(), "drawer.reveal_width.diagonal is not a direction")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[drawer\n")
	err := NewManagerForFile(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	cfg.Logging.Level = " DEBUG "
	cfg.Drawer.DragReveal = map[string]bool{"Top": false}

	normalizeConfig(cfg)

	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, map[string]bool{"top": false}, cfg.Drawer.DragReveal)
}

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, NewManagerForFile(path).WriteDefault(path))

	mgr := NewManagerForFile(path)
	require.NoError(t, mgr.Load())
	assert.Equal(t, DefaultConfig().Drawer.BounceMagnitude, mgr.Get().Drawer.BounceMagnitude)
	assert.Equal(t, DefaultConfig().Drawer.MaxStepDuration, mgr.Get().Drawer.MaxStepDuration)

	assert.Error(t, NewManagerForFile(path).WriteDefault(path), "existing files are not overwritten")
}

func TestWatchWithoutFile(t *testing.T) {
	mgr := NewManagerForFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, mgr.Load())
	assert.ErrorIs(t, mgr.Watch(context.Background()), ErrNoConfigFile)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "drawer")
	assert.Contains(t, props, "logging")

	dir := t.TempDir()
	file, err := GenerateSchemaFile(dir)
	require.NoError(t, err)
	assert.FileExists(t, file)
}
