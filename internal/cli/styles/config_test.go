package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panedrawer/internal/cli/styles"
	"github.com/bnema/panedrawer/internal/domain/entity"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	found := r.RenderConfigInfo("/tmp/panedrawer/config.toml", true)
	require.Contains(t, found, "config.toml")
	require.Contains(t, found, "loaded")

	missing := r.RenderConfigInfo("/tmp/panedrawer/config.toml", false)
	require.Contains(t, missing, "using defaults")
}

func TestConfigRenderer_RenderSettings(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderSettings([]styles.Setting{
		{Key: "gravity", Value: "2"},
		{Key: "edge_pan_required", Value: "false"},
	})

	assert.Contains(t, out, "gravity")
	assert.Contains(t, out, "edge_pan_required")
	assert.Empty(t, r.RenderSettings(nil))
}

func TestConfigRenderer_RenderCreatedUsesBaseName(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderCreated("/home/user/.config/panedrawer/config.toml")

	assert.Contains(t, out, "config.toml")
	assert.NotContains(t, out, "/home/user")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderError(errors.New("bad gravity")), "bad gravity")
}

func TestConfigRenderer_RenderKeys(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	keys := []entity.ConfigKeyInfo{
		{Key: "drawer.elasticity", Type: "float64", Default: "0", Description: "Rebound", Range: "0-1", Section: "Physics"},
		{Key: "logging.format", Type: "string", Default: "console", Description: "Output", Values: []string{"console", "json"}, Section: "Logging"},
	}

	out := r.RenderKeys(keys, []string{"Reveal", "Physics", "Logging"})

	assert.Contains(t, out, "drawer.elasticity")
	assert.Contains(t, out, "(0-1)")
	assert.Contains(t, out, "[console|json]")
	assert.NotContains(t, out, "Reveal")
	assert.Less(t, strings.Index(out, "Physics"), strings.Index(out, "Logging"))

	assert.Contains(t, r.RenderKeys(nil, nil), "no matching keys")
}
