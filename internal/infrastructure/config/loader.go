package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PANEDRAWER_DRAWER_GRAVITY_MAGNITUDE.
const EnvPrefix = "PANEDRAWER"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// configFile is the file actually read, empty when running on defaults.
	configFile string
}

// NewManager creates a manager that looks for config.toml in the XDG config
// directory, then in the working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return &Manager{viper: v}, nil
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(path string) *Manager {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return &Manager{viper: v}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration from defaults, the config file (if any) and
// environment variables. A missing file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()
	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		m.configFile = m.viper.ConfigFileUsed()
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = configFileName
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

// reload unmarshals, normalizes and validates the current viper state.
// Must be called with m.mu held for write.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.Drawer.RevealWidth = lowerKeys(config.Drawer.RevealWidth)
	config.Drawer.DragReveal = lowerKeys(config.Drawer.DragReveal)
	config.Drawer.TapToClose = lowerKeys(config.Drawer.TapToClose)

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

func lowerKeys[V any](src map[string]V) map[string]V {
	out := make(map[string]V, len(src))
	for k, v := range src {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used, or
// an empty string when running on defaults.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configFile
}

// WriteDefault writes the default configuration to path unless a file
// already exists there.
func (m *Manager) WriteDefault(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	m.setDefaults()
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults registers default values in viper so every key is known to
// AutomaticEnv and Unmarshal.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()
	m.setDrawerDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setDrawerDefaults(defaults *Config) {
	d := defaults.Drawer
	m.viper.SetDefault("drawer.reveal_width", d.RevealWidth)
	m.viper.SetDefault("drawer.default_reveal_width_horizontal", d.DefaultRevealWidthHorizontal)
	m.viper.SetDefault("drawer.default_reveal_width_vertical", d.DefaultRevealWidthVertical)
	m.viper.SetDefault("drawer.gravity_magnitude", d.GravityMagnitude)
	m.viper.SetDefault("drawer.elasticity", d.Elasticity)
	m.viper.SetDefault("drawer.bounce_elasticity", d.BounceElasticity)
	m.viper.SetDefault("drawer.bounce_magnitude", d.BounceMagnitude)
	m.viper.SetDefault("drawer.open_wide_edge_offset", d.OpenWideEdgeOffset)
	m.viper.SetDefault("drawer.impulse_velocity_scale", d.ImpulseVelocityScale)
	m.viper.SetDefault("drawer.edge_pan_required", d.EdgePanRequired)
	m.viper.SetDefault("drawer.edge_threshold", d.EdgeThreshold)
	m.viper.SetDefault("drawer.velocity_threshold", d.VelocityThreshold)
	m.viper.SetDefault("drawer.velocity_multiplier", d.VelocityMultiplier)
	m.viper.SetDefault("drawer.position_epsilon", d.PositionEpsilon)
	m.viper.SetDefault("drawer.frame_interval", d.FrameInterval.String())
	m.viper.SetDefault("drawer.max_step_duration", d.MaxStepDuration.String())
	m.viper.SetDefault("drawer.slide_off_animation", d.SlideOffAnimation)
	m.viper.SetDefault("drawer.drag_reveal", d.DragReveal)
	m.viper.SetDefault("drawer.tap_to_close", d.TapToClose)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.time_format", defaults.Logging.TimeFormat)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
