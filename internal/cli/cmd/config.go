package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/panedrawer/internal/application/usecase"
	"github.com/bnema/panedrawer/internal/cli/styles"
	"github.com/bnema/panedrawer/internal/infrastructure/config"
)

var (
	schemaStdout bool
	keysSection  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective configuration, write a default config file, or generate its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the config file and effective drawer settings",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Long:  `Write config.toml with all default settings. An existing file is never overwritten.`,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for config.toml",
	Long: `Write config.schema.json next to the config file so editors with TOML
schema support can validate and complete settings.`,
	RunE: runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every config key with its default",
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configKeysCmd.Flags().StringVarP(&keysSection, "section", "s", "", "only list keys in this section")
	configSchemaCmd.Flags().BoolVar(&schemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.Manager.GetConfigFile()
	found := path != ""
	if !found {
		var err error
		if path, err = targetConfigFile(); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}

	fmt.Println(renderer.RenderConfigInfo(path, found))
	fmt.Print(renderer.RenderSettings(drawerSettings(app.Config)))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := targetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err := app.Manager.WriteDefault(path); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderCreated(path))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if schemaStdout {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	path, err := targetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	schemaFile, err := config.GenerateSchemaFile(filepath.Dir(path))
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderSchemaWritten(schemaFile))
	return nil
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	out, err := app.GetConfigSchUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: keysSection})
	if err != nil {
		return err
	}
	fmt.Print(renderer.RenderKeys(out.Keys, out.Sections))
	return nil
}

// targetConfigFile is the --config path or the XDG default.
func targetConfigFile() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigFile()
}

func drawerSettings(cfg *config.Config) []styles.Setting {
	d := cfg.Drawer
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	return []styles.Setting{
		{Key: "reveal_width", Value: formatMap(d.RevealWidth, f)},
		{Key: "default_reveal_width_horizontal", Value: f(d.DefaultRevealWidthHorizontal)},
		{Key: "default_reveal_width_vertical", Value: f(d.DefaultRevealWidthVertical)},
		{Key: "gravity_magnitude", Value: f(d.GravityMagnitude)},
		{Key: "elasticity", Value: f(d.Elasticity)},
		{Key: "bounce_elasticity", Value: f(d.BounceElasticity)},
		{Key: "bounce_magnitude", Value: f(d.BounceMagnitude)},
		{Key: "open_wide_edge_offset", Value: f(d.OpenWideEdgeOffset)},
		{Key: "impulse_velocity_scale", Value: f(d.ImpulseVelocityScale)},
		{Key: "edge_pan_required", Value: strconv.FormatBool(d.EdgePanRequired)},
		{Key: "edge_threshold", Value: f(d.EdgeThreshold)},
		{Key: "velocity_threshold", Value: f(d.VelocityThreshold)},
		{Key: "velocity_multiplier", Value: f(d.VelocityMultiplier)},
		{Key: "position_epsilon", Value: f(d.PositionEpsilon)},
		{Key: "frame_interval", Value: d.FrameInterval.String()},
		{Key: "max_step_duration", Value: d.MaxStepDuration.String()},
		{Key: "slide_off_animation", Value: strconv.FormatBool(d.SlideOffAnimation)},
		{Key: "drag_reveal", Value: formatMap(d.DragReveal, strconv.FormatBool)},
		{Key: "tap_to_close", Value: formatMap(d.TapToClose, strconv.FormatBool)},
		{Key: "logging.level", Value: cfg.Logging.Level},
		{Key: "logging.format", Value: cfg.Logging.Format},
		{Key: "logging.max_size_mb", Value: strconv.Itoa(cfg.Logging.MaxSizeMB)},
		{Key: "logging.max_backups", Value: strconv.Itoa(cfg.Logging.MaxBackups)},
		{Key: "logging.compress", Value: strconv.FormatBool(cfg.Logging.Compress)},
	}
}

func formatMap[V any](m map[string]V, format func(V) string) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+format(m[k]))
	}
	return strings.Join(parts, " ")
}
