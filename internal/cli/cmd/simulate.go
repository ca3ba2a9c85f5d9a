package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/panedrawer/internal/application/usecase"
	"github.com/bnema/panedrawer/internal/cli/styles"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/ui/controller"
)

type simulateFlags struct {
	action    string
	axis      string
	size      string
	from      string
	to        string
	steps     int
	velocity  string
	state     string
	direction string
	instant   bool
	maxFrames int
	every     int
}

var simFlags simulateFlags

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the frames of a scripted gesture or request",
	Long: `Run the pane headless and print every frame it goes through.

Examples:
  panedrawer simulate --from 10,400 --to 200,400 --steps 5
  panedrawer simulate --action request --state open_wide --direction right
  panedrawer simulate --action bounce --axis vertical --direction top`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	f := simulateCmd.Flags()
	f.StringVar(&simFlags.action, "action", "gesture", "gesture, request or bounce")
	f.StringVar(&simFlags.axis, "axis", "horizontal", "drawer axis: horizontal or vertical")
	f.StringVar(&simFlags.size, "size", "400,800", "pane size as width,height")
	f.StringVar(&simFlags.from, "from", "10,400", "gesture start as x,y")
	f.StringVar(&simFlags.to, "to", "200,400", "gesture end as x,y")
	f.IntVar(&simFlags.steps, "steps", 5, "gesture move samples")
	f.StringVar(&simFlags.velocity, "velocity", "0,0", "release velocity as x,y; 0,0 derives it from the last sample")
	f.StringVar(&simFlags.state, "state", "open", "requested state: closed, open or open_wide")
	f.StringVar(&simFlags.direction, "direction", "none", "drawer direction for request and bounce")
	f.BoolVar(&simFlags.instant, "instant", false, "request without animation")
	f.IntVar(&simFlags.maxFrames, "max-frames", usecase.DefaultMaxFrames, "settle frame budget")
	f.IntVar(&simFlags.every, "every", 1, "print every n-th settle frame")
}

type drawerLabel struct{ name string }

func (l *drawerLabel) ContentID() string { return l.name }

func runSimulate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input, err := simFlags.input()
	if err != nil {
		return err
	}
	axis, err := parseAxis(simFlags.axis)
	if err != nil {
		return err
	}
	size, err := parsePoint(simFlags.size)
	if err != nil {
		return fmt.Errorf("--size: %w", err)
	}

	driver := controller.NewDriver(app.Ctx(), size, app.Config.Drawer.Options(), controller.Deps{})
	defer driver.Destroy()
	for _, d := range axis.Cardinals() {
		driver.SetDrawer(d, &drawerLabel{name: d.String()})
	}

	out, err := app.SimulateUC.Execute(app.Ctx(), driver, input)
	if out != nil {
		fmt.Print(styles.NewTraceRenderer(app.Theme).RenderTrace(out, simFlags.every))
	}
	if errors.Is(err, usecase.ErrNotSettled) {
		return fmt.Errorf("%w after %d frames", err, len(out.Frames))
	}
	return err
}

func (f simulateFlags) input() (usecase.SimulatePaneInput, error) {
	in := usecase.SimulatePaneInput{
		Steps:     f.steps,
		Animated:  !f.instant,
		MaxFrames: f.maxFrames,
	}

	var ok bool
	if in.Direction, ok = entity.ParseDirection(f.direction); !ok {
		return in, fmt.Errorf("--direction: unknown direction %q", f.direction)
	}

	var err error
	switch f.action {
	case "gesture":
		in.Action = usecase.ActionGesture
		if in.Start, err = parsePoint(f.from); err != nil {
			return in, fmt.Errorf("--from: %w", err)
		}
		if in.End, err = parsePoint(f.to); err != nil {
			return in, fmt.Errorf("--to: %w", err)
		}
		if in.ReleaseVelocity, err = parsePoint(f.velocity); err != nil {
			return in, fmt.Errorf("--velocity: %w", err)
		}
	case "request":
		in.Action = usecase.ActionRequest
		if in.State, ok = entity.ParsePaneState(f.state); !ok {
			return in, fmt.Errorf("--state: unknown state %q", f.state)
		}
	case "bounce":
		in.Action = usecase.ActionBounce
	default:
		return in, fmt.Errorf("--action: unknown action %q", f.action)
	}
	return in, nil
}

func parseAxis(name string) (entity.Direction, error) {
	switch strings.ToLower(name) {
	case "horizontal", "h":
		return entity.DirectionHorizontal, nil
	case "vertical", "v":
		return entity.DirectionVertical, nil
	default:
		return entity.DirectionNone, fmt.Errorf("unknown axis %q", name)
	}
}

func parsePoint(s string) (entity.Point, error) {
	x, y, found := strings.Cut(s, ",")
	if !found {
		return entity.Point{}, fmt.Errorf("expected x,y, got %q", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return entity.Point{}, err
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return entity.Point{}, err
	}
	return entity.Point{X: px, Y: py}, nil
}
