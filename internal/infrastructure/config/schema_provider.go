package config

import (
	"strconv"

	"github.com/bnema/panedrawer/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionReveal  = "Reveal"
	SectionPhysics = "Physics"
	SectionGesture = "Gesture"
	SectionLogging = "Logging"
)

var directionNames = []string{"top", "left", "bottom", "right", "horizontal", "vertical", "all"}

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 32)
	keys = append(keys, p.getRevealKeys(defaults)...)
	keys = append(keys, p.getPhysicsKeys(defaults)...)
	keys = append(keys, p.getGestureKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	return keys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (*SchemaProvider) getRevealKeys(defaults *Config) []entity.ConfigKeyInfo {
	d := defaults.Drawer
	return []entity.ConfigKeyInfo{
		{
			Key:         "drawer.reveal_width.<direction>",
			Type:        "float64",
			Default:     "",
			Description: "Open distance for one direction; masks apply to every direction they cover",
			Values:      directionNames,
			Range:       ">=0",
			Section:     SectionReveal,
		},
		{
			Key:         "drawer.default_reveal_width_horizontal",
			Type:        "float64",
			Default:     formatFloat(d.DefaultRevealWidthHorizontal),
			Description: "Open distance for left and right when no reveal_width entry applies",
			Range:       ">=0",
			Section:     SectionReveal,
		},
		{
			Key:         "drawer.default_reveal_width_vertical",
			Type:        "float64",
			Default:     formatFloat(d.DefaultRevealWidthVertical),
			Description: "Open distance for top and bottom when no reveal_width entry applies",
			Range:       ">=0",
			Section:     SectionReveal,
		},
		{
			Key:         "drawer.open_wide_edge_offset",
			Type:        "float64",
			Default:     formatFloat(d.OpenWideEdgeOffset),
			Description: "Sliver of pane left visible in the open-wide state",
			Range:       ">=0",
			Section:     SectionReveal,
		},
	}
}

func (*SchemaProvider) getPhysicsKeys(defaults *Config) []entity.ConfigKeyInfo {
	d := defaults.Drawer
	return []entity.ConfigKeyInfo{
		{
			Key:         "drawer.gravity_magnitude",
			Type:        "float64",
			Default:     formatFloat(d.GravityMagnitude),
			Description: "Pull toward the target position",
			Range:       ">0",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.elasticity",
			Type:        "float64",
			Default:     formatFloat(d.Elasticity),
			Description: "Rebound at the target boundary after a settle",
			Range:       "0-1",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.bounce_elasticity",
			Type:        "float64",
			Default:     formatFloat(d.BounceElasticity),
			Description: "Rebound at the closed boundary after a bounce",
			Range:       "0-1",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.bounce_magnitude",
			Type:        "float64",
			Default:     formatFloat(d.BounceMagnitude),
			Description: "Impulse applied by a bounce",
			Range:       ">0",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.impulse_velocity_scale",
			Type:        "float64",
			Default:     formatFloat(d.ImpulseVelocityScale),
			Description: "Converts an impulse magnitude into units per second",
			Range:       ">0",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.position_epsilon",
			Type:        "float64",
			Default:     formatFloat(d.PositionEpsilon),
			Description: "Tolerance when comparing the pane origin to a resting position",
			Range:       ">0",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.frame_interval",
			Type:        "duration",
			Default:     d.FrameInterval.String(),
			Description: "Time between physics frames",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.max_step_duration",
			Type:        "duration",
			Default:     d.MaxStepDuration.String(),
			Description: "Cap on a single animated step; 0s disables the cap",
			Section:     SectionPhysics,
		},
		{
			Key:         "drawer.slide_off_animation",
			Type:        "bool",
			Default:     strconv.FormatBool(d.SlideOffAnimation),
			Description: "Slide the pane off screen before replacing its content",
			Section:     SectionPhysics,
		},
	}
}

func (*SchemaProvider) getGestureKeys(defaults *Config) []entity.ConfigKeyInfo {
	d := defaults.Drawer
	return []entity.ConfigKeyInfo{
		{
			Key:         "drawer.edge_pan_required",
			Type:        "bool",
			Default:     strconv.FormatBool(d.EdgePanRequired),
			Description: "Only start a drag on a closed pane near an edge with a drawer",
			Section:     SectionGesture,
		},
		{
			Key:         "drawer.edge_threshold",
			Type:        "float64",
			Default:     formatFloat(d.EdgeThreshold),
			Description: "Width of the edge band used by edge_pan_required",
			Range:       ">0",
			Section:     SectionGesture,
		},
		{
			Key:         "drawer.velocity_threshold",
			Type:        "float64",
			Default:     formatFloat(d.VelocityThreshold),
			Description: "Release speed above which a drag is treated as a flick",
			Range:       ">0",
			Section:     SectionGesture,
		},
		{
			Key:         "drawer.velocity_multiplier",
			Type:        "float64",
			Default:     formatFloat(d.VelocityMultiplier),
			Description: "Scales release velocity into the settle step",
			Range:       ">0",
			Section:     SectionGesture,
		},
		{
			Key:         "drawer.drag_reveal.<direction>",
			Type:        "bool",
			Default:     "true",
			Description: "Set to false to stop dragging from revealing that direction",
			Values:      directionNames,
			Section:     SectionGesture,
		},
		{
			Key:         "drawer.tap_to_close.<direction>",
			Type:        "bool",
			Default:     "true",
			Description: "Set to false to ignore taps on the pane while that drawer is open",
			Values:      directionNames,
			Section:     SectionGesture,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	l := defaults.Logging
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     l.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     l.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.time_format",
			Type:        "string",
			Default:     l.TimeFormat,
			Description: "Go time layout for log timestamps",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     strconv.Itoa(l.MaxSizeMB),
			Description: "Rotate the log file once it reaches this size; 0 disables rotation",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     strconv.Itoa(l.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     strconv.FormatBool(l.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
	}
}
