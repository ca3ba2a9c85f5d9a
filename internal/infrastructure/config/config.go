// Package config loads panedrawer settings from TOML, environment and
// defaults, and keeps them current while the file changes.
package config

import (
	"time"

	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/logging"
	"github.com/bnema/panedrawer/internal/ui/controller"
)

// Config represents the complete configuration for panedrawer.
type Config struct {
	Drawer  DrawerConfig  `mapstructure:"drawer" toml:"drawer" json:"drawer"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// DrawerConfig tunes the pane physics and gestures.
type DrawerConfig struct {
	// RevealWidth maps a direction name (top, left, bottom, right, horizontal,
	// vertical, all) to the Open distance.
	RevealWidth                  map[string]float64 `mapstructure:"reveal_width" toml:"reveal_width" json:"reveal_width,omitempty" jsonschema:"description=Open distance per direction name"`
	DefaultRevealWidthHorizontal float64            `mapstructure:"default_reveal_width_horizontal" toml:"default_reveal_width_horizontal" json:"default_reveal_width_horizontal" jsonschema:"minimum=0"`
	DefaultRevealWidthVertical   float64            `mapstructure:"default_reveal_width_vertical" toml:"default_reveal_width_vertical" json:"default_reveal_width_vertical" jsonschema:"minimum=0"`

	GravityMagnitude     float64 `mapstructure:"gravity_magnitude" toml:"gravity_magnitude" json:"gravity_magnitude" jsonschema:"exclusiveMinimum=0"`
	Elasticity           float64 `mapstructure:"elasticity" toml:"elasticity" json:"elasticity" jsonschema:"minimum=0,maximum=1"`
	BounceElasticity     float64 `mapstructure:"bounce_elasticity" toml:"bounce_elasticity" json:"bounce_elasticity" jsonschema:"minimum=0,maximum=1"`
	BounceMagnitude      float64 `mapstructure:"bounce_magnitude" toml:"bounce_magnitude" json:"bounce_magnitude" jsonschema:"exclusiveMinimum=0"`
	OpenWideEdgeOffset   float64 `mapstructure:"open_wide_edge_offset" toml:"open_wide_edge_offset" json:"open_wide_edge_offset" jsonschema:"minimum=0"`
	ImpulseVelocityScale float64 `mapstructure:"impulse_velocity_scale" toml:"impulse_velocity_scale" json:"impulse_velocity_scale" jsonschema:"exclusiveMinimum=0"`

	// EdgePanRequired restricts drags on a closed pane to those starting
	// within EdgeThreshold of an edge that has a drawer.
	EdgePanRequired bool    `mapstructure:"edge_pan_required" toml:"edge_pan_required" json:"edge_pan_required"`
	EdgeThreshold   float64 `mapstructure:"edge_threshold" toml:"edge_threshold" json:"edge_threshold" jsonschema:"exclusiveMinimum=0"`

	VelocityThreshold  float64 `mapstructure:"velocity_threshold" toml:"velocity_threshold" json:"velocity_threshold" jsonschema:"exclusiveMinimum=0"`
	VelocityMultiplier float64 `mapstructure:"velocity_multiplier" toml:"velocity_multiplier" json:"velocity_multiplier" jsonschema:"exclusiveMinimum=0"`
	PositionEpsilon    float64 `mapstructure:"position_epsilon" toml:"position_epsilon" json:"position_epsilon" jsonschema:"exclusiveMinimum=0"`

	FrameInterval   time.Duration `mapstructure:"frame_interval" toml:"frame_interval" json:"frame_interval" jsonschema:"type=string,description=Go duration such as 16ms"`
	MaxStepDuration time.Duration `mapstructure:"max_step_duration" toml:"max_step_duration" json:"max_step_duration" jsonschema:"type=string,description=Go duration; 0s disables the cap"`

	SlideOffAnimation bool `mapstructure:"slide_off_animation" toml:"slide_off_animation" json:"slide_off_animation"`

	// DragReveal and TapToClose disable a direction when set to false.
	DragReveal map[string]bool `mapstructure:"drag_reveal" toml:"drag_reveal" json:"drag_reveal,omitempty"`
	TapToClose map[string]bool `mapstructure:"tap_to_close" toml:"tap_to_close" json:"tap_to_close,omitempty"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format     string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	TimeFormat string `mapstructure:"time_format" toml:"time_format" json:"time_format"`

	// File rotation for commands that log to the state directory.
	MaxSizeMB  int  `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups int  `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	Compress   bool `mapstructure:"compress" toml:"compress" json:"compress"`
}

// Options converts the file form into controller options. Unknown direction
// names are skipped; validation reports them.
func (d DrawerConfig) Options() controller.Options {
	return controller.Options{
		RevealWidths:                 directionMap(d.RevealWidth),
		DefaultRevealWidthHorizontal: d.DefaultRevealWidthHorizontal,
		DefaultRevealWidthVertical:   d.DefaultRevealWidthVertical,
		GravityMagnitude:             d.GravityMagnitude,
		Elasticity:                   d.Elasticity,
		BounceElasticity:             d.BounceElasticity,
		BounceMagnitude:              d.BounceMagnitude,
		OpenWideEdgeOffset:           d.OpenWideEdgeOffset,
		ImpulseVelocityScale:         d.ImpulseVelocityScale,
		EdgePanRequired:              d.EdgePanRequired,
		EdgeThreshold:                d.EdgeThreshold,
		VelocityThreshold:            d.VelocityThreshold,
		VelocityMultiplier:           d.VelocityMultiplier,
		PositionEpsilon:              d.PositionEpsilon,
		FrameInterval:                d.FrameInterval,
		MaxStepDuration:              d.MaxStepDuration,
		SlideOffAnimation:            d.SlideOffAnimation,
		DragReveal:                   directionMap(d.DragReveal),
		TapToClose:                   directionMap(d.TapToClose),
	}
}

// LoggerConfig converts the file form into a logging.Config.
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(l.Level)
	if l.Format != "" {
		cfg.Format = l.Format
	}
	if l.TimeFormat != "" {
		cfg.TimeFormat = l.TimeFormat
	}
	cfg.MaxSizeMB = l.MaxSizeMB
	cfg.MaxBackups = l.MaxBackups
	cfg.Compress = l.Compress
	return cfg
}

func directionMap[V any](src map[string]V) map[entity.Direction]V {
	if len(src) == 0 {
		return nil
	}
	out := make(map[entity.Direction]V, len(src))
	for name, v := range src {
		d, ok := entity.ParseDirection(name)
		if !ok || d == entity.DirectionNone {
			continue
		}
		out[d] = v
	}
	return out
}
