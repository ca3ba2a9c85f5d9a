package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/panedrawer/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateRevealWidths(config)...)
	validationErrors = append(validationErrors, validatePhysics(config)...)
	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validateDirectionFlags("drawer.drag_reveal", config.Drawer.DragReveal)...)
	validationErrors = append(validationErrors, validateDirectionFlags("drawer.tap_to_close", config.Drawer.TapToClose)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateRevealWidths(config *Config) []string {
	var validationErrors []string
	d := config.Drawer
	if d.DefaultRevealWidthHorizontal <= 0 {
		validationErrors = append(validationErrors, "drawer.default_reveal_width_horizontal must be positive")
	}
	if d.DefaultRevealWidthVertical <= 0 {
		validationErrors = append(validationErrors, "drawer.default_reveal_width_vertical must be positive")
	}
	for _, name := range sortedKeys(d.RevealWidth) {
		if _, ok := parseMaskName(name); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("drawer.reveal_width.%s is not a direction", name))
			continue
		}
		if d.RevealWidth[name] <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("drawer.reveal_width.%s must be positive", name))
		}
	}
	return validationErrors
}

func validatePhysics(config *Config) []string {
	var validationErrors []string
	d := config.Drawer
	if d.GravityMagnitude <= 0 {
		validationErrors = append(validationErrors, "drawer.gravity_magnitude must be positive")
	}
	if d.Elasticity < 0 || d.Elasticity > 1 {
		validationErrors = append(validationErrors, "drawer.elasticity must be between 0 and 1")
	}
	if d.BounceElasticity < 0 || d.BounceElasticity > 1 {
		validationErrors = append(validationErrors, "drawer.bounce_elasticity must be between 0 and 1")
	}
	if d.BounceMagnitude <= 0 {
		validationErrors = append(validationErrors, "drawer.bounce_magnitude must be positive")
	}
	if d.OpenWideEdgeOffset < 0 {
		validationErrors = append(validationErrors, "drawer.open_wide_edge_offset must be non-negative")
	}
	if d.ImpulseVelocityScale <= 0 {
		validationErrors = append(validationErrors, "drawer.impulse_velocity_scale must be positive")
	}
	if d.FrameInterval <= 0 {
		validationErrors = append(validationErrors, "drawer.frame_interval must be positive")
	}
	if d.MaxStepDuration < 0 {
		validationErrors = append(validationErrors, "drawer.max_step_duration must be non-negative")
	}
	return validationErrors
}

func validateGesture(config *Config) []string {
	var validationErrors []string
	d := config.Drawer
	if d.EdgeThreshold <= 0 {
		validationErrors = append(validationErrors, "drawer.edge_threshold must be positive")
	}
	if d.VelocityThreshold <= 0 {
		validationErrors = append(validationErrors, "drawer.velocity_threshold must be positive")
	}
	if d.VelocityMultiplier <= 0 {
		validationErrors = append(validationErrors, "drawer.velocity_multiplier must be positive")
	}
	if d.PositionEpsilon <= 0 {
		validationErrors = append(validationErrors, "drawer.position_epsilon must be positive")
	}
	return validationErrors
}

func validateDirectionFlags(key string, flags map[string]bool) []string {
	var validationErrors []string
	for _, name := range sortedKeys(flags) {
		if _, ok := parseMaskName(name); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.%s is not a direction", key, name))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var errs []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		errs = append(errs, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups must be non-negative")
	}
	return errs
}

func parseMaskName(name string) (entity.Direction, bool) {
	d, ok := entity.ParseDirection(name)
	return d, ok && d != entity.DirectionNone
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
