package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnChange(t *testing.T) {
	path := writeConfig(t, "[drawer]\nbounce_magnitude = 40\n")
	mgr := NewManagerForFile(path)
	require.NoError(t, mgr.Load())

	changes := make(chan *Config, 16)
	mgr.OnConfigChange(func(c *Config) { changes <- c })
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()), "second call is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("[drawer]\nbounce_magnitude = 75\n"), 0o600))

	// A rewrite can surface as several events; wait for the final content.
	deadline := time.After(5 * time.Second)
	for observed := false; !observed; {
		select {
		case c := <-changes:
			observed = c.Drawer.BounceMagnitude == 75
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
	assert.Equal(t, 75.0, mgr.Get().Drawer.BounceMagnitude)
}
