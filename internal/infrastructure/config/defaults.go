package config

import (
	"time"

	"github.com/bnema/panedrawer/internal/ui/controller"
)

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	opts := controller.DefaultOptions()
	return &Config{
		Drawer: DrawerConfig{
			RevealWidth:                  map[string]float64{},
			DefaultRevealWidthHorizontal: opts.DefaultRevealWidthHorizontal,
			DefaultRevealWidthVertical:   opts.DefaultRevealWidthVertical,
			GravityMagnitude:             opts.GravityMagnitude,
			Elasticity:                   opts.Elasticity,
			BounceElasticity:             opts.BounceElasticity,
			BounceMagnitude:              opts.BounceMagnitude,
			OpenWideEdgeOffset:           opts.OpenWideEdgeOffset,
			ImpulseVelocityScale:         opts.ImpulseVelocityScale,
			EdgePanRequired:              false,
			EdgeThreshold:                opts.EdgeThreshold,
			VelocityThreshold:            opts.VelocityThreshold,
			VelocityMultiplier:           opts.VelocityMultiplier,
			PositionEpsilon:              opts.PositionEpsilon,
			FrameInterval:                opts.FrameInterval,
			MaxStepDuration:              opts.MaxStepDuration,
			SlideOffAnimation:            opts.SlideOffAnimation,
			DragReveal:                   map[string]bool{},
			TapToClose:                   map[string]bool{},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			TimeFormat: time.RFC3339,
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   true,
		},
	}
}
