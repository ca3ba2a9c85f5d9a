package usecase

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/logging"
)

// DefaultMaxFrames bounds a simulation that never settles.
const DefaultMaxFrames = 600

// SimulationAction selects what a simulation run does to the pane.
type SimulationAction int

const (
	// ActionGesture drags from Start to End and releases.
	ActionGesture SimulationAction = iota
	// ActionRequest asks for State in Direction.
	ActionRequest
	// ActionBounce bounces the pane open in Direction.
	ActionBounce
)

// Frame phases.
const (
	PhaseDrag   = "drag"
	PhaseSettle = "settle"
)

var (
	ErrInvalidSteps     = errors.New("gesture needs at least one move step")
	ErrUnknownAction    = errors.New("unknown simulation action")
	ErrNotSettled       = errors.New("pane did not settle within the frame budget")
	ErrRequestNotSettle = errors.New("request state must be closed, open or open wide")
)

// SimulatePaneUseCase replays a gesture or request against a pane driver and
// records every frame.
type SimulatePaneUseCase struct{}

// NewSimulatePaneUseCase creates a new SimulatePaneUseCase.
func NewSimulatePaneUseCase() *SimulatePaneUseCase {
	return &SimulatePaneUseCase{}
}

// SimulatePaneInput describes one run.
type SimulatePaneInput struct {
	Action SimulationAction

	// Gesture fields.
	Start           entity.Point
	End             entity.Point
	Steps           int
	ReleaseVelocity entity.Point

	// Request and bounce fields.
	State     entity.PaneState
	Direction entity.Direction
	Animated  bool

	// MaxFrames caps the settle phase. Zero selects DefaultMaxFrames.
	MaxFrames int
}

// SimulationFrame is one recorded step.
type SimulationFrame struct {
	Index    int
	Phase    string
	Snapshot entity.PaneSnapshot
}

// SimulatePaneOutput is the recorded trace.
type SimulatePaneOutput struct {
	// Accepted is false when the driver refused to begin the gesture.
	Accepted bool
	Frames   []SimulationFrame
	Final    entity.PaneSnapshot
	Settled  bool
}

// Execute runs the simulation. A run that exhausts its frame budget returns
// the partial trace together with ErrNotSettled. Precondition panics raised by
// the driver come back as *entity.PreconditionError.
func (uc *SimulatePaneUseCase) Execute(
	ctx context.Context,
	driver port.PaneDriver,
	input SimulatePaneInput,
) (result *SimulatePaneOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			var pe *entity.PreconditionError
			if e, ok := r.(error); ok && errors.As(e, &pe) {
				result, err = nil, pe
				return
			}
			panic(r)
		}
	}()

	log := logging.FromContext(ctx).With().Str("component", "simulate").Logger()

	maxFrames := input.MaxFrames
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}

	out := &SimulatePaneOutput{Accepted: true}
	record := func(phase string) {
		out.Frames = append(out.Frames, SimulationFrame{
			Index:    len(out.Frames),
			Phase:    phase,
			Snapshot: driver.Snapshot(),
		})
	}

	switch input.Action {
	case ActionGesture:
		if input.Steps < 1 {
			return nil, ErrInvalidSteps
		}
		if !driver.BeginPan(input.Start) {
			log.Debug().Msg("gesture refused")
			out.Accepted = false
			out.Final = driver.Snapshot()
			out.Settled = true
			return out, nil
		}
		delta := r2.Sub(input.End, input.Start)
		for i := 1; i <= input.Steps; i++ {
			at := r2.Add(input.Start, r2.Scale(float64(i)/float64(input.Steps), delta))
			driver.MovePan(at)
			record(PhaseDrag)
		}
		driver.EndPan(input.End, input.ReleaseVelocity)
	case ActionRequest:
		if !input.State.Revealed() && input.State != entity.PaneStateClosed {
			return nil, fmt.Errorf("%w: %s", ErrRequestNotSettle, input.State)
		}
		driver.RequestState(input.State, input.Direction, input.Animated)
	case ActionBounce:
		driver.Bounce(input.Direction)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, input.Action)
	}

	for frames := 0; frames < maxFrames; frames++ {
		more := driver.Advance()
		record(PhaseSettle)
		if !more {
			out.Settled = true
			break
		}
	}

	out.Final = driver.Snapshot()
	log.Debug().
		Int("frames", len(out.Frames)).
		Stringer("state", out.Final.State).
		Stringer("direction", out.Final.Direction).
		Bool("settled", out.Settled).
		Msg("simulation finished")

	if !out.Settled {
		return out, ErrNotSettled
	}
	return out, nil
}
