package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/panedrawer/internal/cli/model"
	"github.com/bnema/panedrawer/internal/infrastructure/config"
	"github.com/bnema/panedrawer/internal/logging"
)

var demoAxis string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive drawer playground",
	Long: `Open a full-screen playground where the terminal is the container and
the pane can be dragged with the mouse or driven from the keyboard.

Edits to the config file are applied live.`,
	Annotations: map[string]string{ownsTerminal: "true"},
	RunE:        runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoAxis, "axis", "horizontal", "drawer axis: horizontal or vertical")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	axis, err := parseAxis(demoAxis)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	m := model.NewDrawerModel(ctx, app.Theme, app.Config.Drawer.Options(), axis)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigReloadedMsg{Options: cfg.Drawer.Options()})
	})
	if err := app.Manager.Watch(ctx); err != nil {
		if !errors.Is(err, config.ErrNoConfigFile) {
			return fmt.Errorf("watch config: %w", err)
		}
		log.Debug().Msg("running on defaults, live reload disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && errors.Is(gctx.Err(), context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			p.Quit()
		case <-done:
		}
		return nil
	})
	return g.Wait()
}
