package controller_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/application/port/mocks"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/ui/controller"
	"github.com/bnema/panedrawer/internal/ui/gesture"
	"github.com/bnema/panedrawer/internal/ui/mainloop"
)

const drainLimit = 1000

type content struct{ id string }

func (c *content) ContentID() string { return c.id }

type recordingDelegate struct {
	events []string
	refuse bool
}

func (d *recordingDelegate) MayTransition(s entity.PaneState, dir entity.Direction) {
	d.events = append(d.events, fmt.Sprintf("may %s %s", s, dir))
}

func (d *recordingDelegate) DidTransition(s entity.PaneState, dir entity.Direction) {
	d.events = append(d.events, fmt.Sprintf("did %s %s", s, dir))
}

func (d *recordingDelegate) ShouldBeginGesture() bool { return !d.refuse }

type recordingHost struct {
	events []string
}

func (h *recordingHost) Embed(c entity.DrawerContent, slot port.SlotID) {
	h.events = append(h.events, fmt.Sprintf("embed %s %s", c.ContentID(), slot))
}

func (h *recordingHost) Unembed(c entity.DrawerContent) {
	h.events = append(h.events, "unembed "+c.ContentID())
}

type recordingStyler struct {
	updates []string
}

func (s *recordingStyler) OnAttach(entity.Direction) {}
func (s *recordingStyler) OnDetach(entity.Direction) {}
func (s *recordingStyler) OnUpdate(fraction float64, dir entity.Direction) {
	s.updates = append(s.updates, fmt.Sprintf("%.2f %s", fraction, dir))
}

// taggedStyler writes its updates to a log shared with other stylers.
type taggedStyler struct {
	tag string
	log *[]string
}

func (s *taggedStyler) OnAttach(entity.Direction) {}
func (s *taggedStyler) OnDetach(entity.Direction) {}
func (s *taggedStyler) OnUpdate(fraction float64, dir entity.Direction) {
	*s.log = append(*s.log, fmt.Sprintf("%s %.2f %s", s.tag, fraction, dir))
}

type fixture struct {
	c        *controller.DrawerController
	queue    *mainloop.Queue
	delegate *recordingDelegate
	host     *recordingHost
	left     *content
	right    *content
}

func newFixture(t *testing.T, mutate func(*controller.Options)) *fixture {
	t.Helper()
	opts := controller.DefaultOptions()
	opts.RevealWidths = map[entity.Direction]float64{entity.DirectionLeft: 300}
	if mutate != nil {
		mutate(&opts)
	}

	f := &fixture{
		queue:    &mainloop.Queue{},
		delegate: &recordingDelegate{},
		host:     &recordingHost{},
		left:     &content{id: "left"},
		right:    &content{id: "right"},
	}
	f.c = controller.New(context.Background(), entity.Point{X: 400, Y: 800}, opts, controller.Deps{
		Post:     f.queue.Post,
		Host:     f.host,
		Delegate: f.delegate,
	})
	f.c.SetDrawer(entity.DirectionLeft, f.left)
	t.Cleanup(f.c.Destroy)
	return f
}

func (f *fixture) drain(t *testing.T) {
	t.Helper()
	f.queue.Drain(drainLimit)
	require.Zero(t, f.queue.Len(), "physics step did not settle")
}

func at(x, y float64) gesture.Sample {
	return gesture.Sample{Location: entity.Point{X: x, Y: y}}
}

func recoverPrecondition(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*entity.PreconditionError)
			if !ok {
				panic(r)
			}
			err = pe
		}
	}()
	fn()
	return nil
}

func TestDrawerController_FlingOpen(t *testing.T) {
	f := newFixture(t, nil)

	require.True(t, f.c.BeginPan(entity.Point{X: 10, Y: 200}))
	assert.Equal(t, gesture.Applied, f.c.MovePan(at(250, 200)))
	assert.Equal(t, entity.Point{X: 240}, f.c.Origin())
	assert.Equal(t, entity.DirectionLeft, f.c.Direction())
	assert.Equal(t, entity.PaneStateClosed, f.c.State())

	f.c.EndPan(gesture.Sample{Location: entity.Point{X: 250, Y: 200}, Velocity: entity.Point{X: 40}})

	step, ok := f.c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, entity.PaneStateOpen, step.Target)
	assert.Equal(t, 200.0, step.ImpulseMagnitude)
	assert.Zero(t, step.ImpulseAngle)
	assert.Equal(t, entity.PaneStateOpen, f.c.PotentialState())
	assert.Equal(t, entity.Point{X: 240}, f.c.Origin(), "the step only moves on ticks")

	f.drain(t)

	assert.Equal(t, entity.PaneStateOpen, f.c.State())
	assert.Equal(t, entity.DirectionLeft, f.c.Direction())
	assert.Equal(t, entity.Point{X: 300}, f.c.Origin())
	assert.Equal(t, entity.PaneStateNone, f.c.PotentialState())
	assert.Equal(t, []string{"may open left", "did open left"}, f.delegate.events)
}

func TestDrawerController_PanSampleStopsRequestedStep(t *testing.T) {
	f := newFixture(t, nil)
	opened := false

	require.True(t, f.c.BeginPan(entity.Point{X: 10, Y: 200}))
	require.Equal(t, gesture.Applied, f.c.MovePan(at(250, 200)))

	f.c.RequestState(controller.Request{
		State:         entity.PaneStateOpen,
		Animated:      true,
		Interruptible: true,
		OnComplete:    func() { opened = true },
	})
	_, running := f.c.ActiveStep()
	require.True(t, running)

	assert.Equal(t, gesture.Applied, f.c.MovePan(at(100, 200)))
	_, running = f.c.ActiveStep()
	assert.False(t, running)
	assert.Equal(t, entity.PaneStateNone, f.c.PotentialState())
	assert.Equal(t, entity.Point{X: 90}, f.c.Origin())

	f.drain(t)
	assert.Equal(t, entity.Point{X: 90}, f.c.Origin(), "no tick moves the pane under the finger")
	assert.True(t, f.c.Panning())
	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.False(t, opened)

	f.c.EndPan(at(100, 200))
	f.drain(t)
	assert.False(t, f.c.Panning())
	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.False(t, opened)
}

func TestDrawerController_SlowReleaseSettlesClosed(t *testing.T) {
	f := newFixture(t, nil)

	require.True(t, f.c.BeginPan(entity.Point{X: 10, Y: 200}))
	f.c.MovePan(at(100, 200))
	assert.Equal(t, entity.Point{X: 90}, f.c.Origin())

	f.c.EndPan(gesture.Sample{Location: entity.Point{X: 100, Y: 200}, Velocity: entity.Point{X: 2}})

	step, ok := f.c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, entity.PaneStateClosed, step.Target)
	assert.Zero(t, step.ImpulseMagnitude)

	f.drain(t)

	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.Equal(t, entity.DirectionNone, f.c.Direction())
	assert.Equal(t, entity.Point{}, f.c.Origin())
	assert.Equal(t, []string{"may closed left"}, f.delegate.events, "state never changed")
}

func TestDrawerController_CompositeDirectionPanicsBeforeMutation(t *testing.T) {
	opts := controller.DefaultOptions()
	delegate := mocks.NewMockTransitionDelegate(t)
	queue := &mainloop.Queue{}
	c := controller.New(context.Background(), entity.Point{X: 400, Y: 800}, opts, controller.Deps{
		Post:     queue.Post,
		Delegate: delegate,
	})
	c.SetDrawer(entity.DirectionLeft, &content{id: "left"})
	c.SetDrawer(entity.DirectionRight, &content{id: "right"})

	err := recoverPrecondition(func() {
		c.RequestState(controller.Request{State: entity.PaneStateOpen, Direction: entity.DirectionHorizontal, Animated: true})
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrNotCardinal))
	assert.Equal(t, entity.PaneStateClosed, c.State())
	assert.Equal(t, entity.DirectionNone, c.Direction())
	assert.Zero(t, queue.Len())
}

func TestDrawerController_RequestStatePreconditions(t *testing.T) {
	f := newFixture(t, nil)

	err := recoverPrecondition(func() {
		f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Direction: entity.DirectionRight})
	})
	assert.ErrorIs(t, err, entity.ErrImpossibleDirection)

	err = recoverPrecondition(func() {
		f.c.RequestState(controller.Request{State: entity.PaneStateNone})
	})
	assert.ErrorIs(t, err, entity.ErrNotSettleState)

	f.c.SetDrawer(entity.DirectionRight, f.right)
	err = recoverPrecondition(func() {
		f.c.RequestState(controller.Request{State: entity.PaneStateOpen})
	})
	assert.ErrorIs(t, err, entity.ErrAmbiguousDirection)
}

func TestDrawerController_SingleDrawerResolvesDirection(t *testing.T) {
	f := newFixture(t, nil)

	f.c.SetState(entity.PaneStateOpen)

	assert.Equal(t, entity.PaneStateOpen, f.c.State())
	assert.Equal(t, entity.DirectionLeft, f.c.Direction())
	assert.Equal(t, entity.Point{X: 300}, f.c.Origin())
	assert.Equal(t, []string{"embed left drawer"}, f.host.events)

	f.c.SetState(entity.PaneStateClosed)
	assert.Equal(t, entity.DirectionNone, f.c.Direction())
	assert.Equal(t, []string{"embed left drawer", "unembed left"}, f.host.events)
	assert.Equal(t, []string{"may open left", "did open left", "may closed left", "did closed left"}, f.delegate.events)
}

func TestDrawerController_SwitchDirectionTransitionsOutFirst(t *testing.T) {
	f := newFixture(t, nil)
	f.c.SetDrawer(entity.DirectionRight, f.right)

	var log []string
	left := &taggedStyler{tag: "L", log: &log}
	right := &taggedStyler{tag: "R", log: &log}
	f.c.AddStyler(left, entity.DirectionLeft)
	f.c.AddStyler(right, entity.DirectionRight)

	f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Direction: entity.DirectionLeft})
	log = nil

	f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Direction: entity.DirectionRight})

	require.GreaterOrEqual(t, len(log), 2)
	assert.Equal(t, "L 1.00 none", log[0], "the left styler is released before the right one moves")
	assert.Equal(t, "R", log[1][:1])
	assert.Equal(t, "R 0.00 right", log[len(log)-1])
	for _, entry := range log[1:] {
		assert.NotEqual(t, "L", entry[:1], "left styler updated after the switch: %s", entry)
	}
	assert.Equal(t, entity.Point{X: -entity.DefaultRevealWidthHorizontal}, f.c.Origin())
}

func TestDrawerController_DuplicateRequestSharesStep(t *testing.T) {
	f := newFixture(t, nil)
	calls := make([]int, 3)

	f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Animated: true, OnComplete: func() { calls[0]++ }})
	f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Animated: true, OnComplete: func() { calls[1]++ }})
	assert.Equal(t, []int{0, 0, 0}, calls)

	f.drain(t)
	assert.Equal(t, []int{1, 1, 0}, calls)

	f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Animated: true, OnComplete: func() { calls[2]++ }})
	assert.Equal(t, []int{1, 1, 1}, calls, "already open completes immediately")
	assert.Zero(t, f.queue.Len())
	assert.Equal(t, []string{"may open left", "did open left"}, f.delegate.events)
}

func TestDrawerController_NonInterruptibleLocksInteraction(t *testing.T) {
	f := newFixture(t, nil)

	f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Animated: true})
	assert.False(t, f.c.UserInteractionEnabled())
	assert.False(t, f.c.BeginPan(entity.Point{X: 10, Y: 10}))

	f.drain(t)
	assert.True(t, f.c.UserInteractionEnabled())
}

func TestDrawerController_InterruptedStepDropsCompletion(t *testing.T) {
	f := newFixture(t, nil)
	opened := false

	f.c.RequestState(controller.Request{State: entity.PaneStateOpen, Animated: true, Interruptible: true, OnComplete: func() { opened = true }})
	f.queue.RunOnce()
	f.c.RequestState(controller.Request{State: entity.PaneStateClosed, Animated: true, Interruptible: true})

	f.drain(t)
	assert.False(t, opened)
	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.True(t, f.c.UserInteractionEnabled())
}

func TestDrawerController_Bounce(t *testing.T) {
	f := newFixture(t, nil)
	done := 0

	f.c.BouncePaneOpen(entity.DirectionNone, false, func() { done++ })

	step, ok := f.c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, entity.PaneStateClosed, step.Target)
	assert.Equal(t, 60.0, step.ImpulseMagnitude)

	f.queue.RunOnce()
	assert.Greater(t, f.c.Origin().X, 0.0)

	f.drain(t)
	assert.Equal(t, 1, done)
	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.Equal(t, entity.DirectionNone, f.c.Direction())
	assert.Equal(t, entity.Point{}, f.c.Origin())
	assert.True(t, f.c.UserInteractionEnabled())
}

func TestDrawerController_TapToClose(t *testing.T) {
	f := newFixture(t, nil)
	assert.False(t, f.c.Tap(), "closed pane ignores taps")

	f.c.SetState(entity.PaneStateOpen)
	f.c.SetTapToCloseEnabled(entity.DirectionLeft, false)
	assert.False(t, f.c.Tap())

	f.c.SetTapToCloseEnabled(entity.DirectionAll, true)
	require.True(t, f.c.Tap())
	f.drain(t)
	assert.Equal(t, entity.PaneStateClosed, f.c.State())
}

func TestDrawerController_RevealWidthWhileOpen(t *testing.T) {
	f := newFixture(t, nil)
	f.c.SetRevealWidth(entity.DirectionHorizontal, 200)
	assert.Equal(t, 200.0, f.c.RevealWidth(entity.DirectionLeft))

	f.c.SetState(entity.PaneStateOpen)
	err := recoverPrecondition(func() { f.c.SetRevealWidth(entity.DirectionLeft, 100) })
	assert.ErrorIs(t, err, entity.ErrRevealWidthWhileOpen)
	assert.Equal(t, 200.0, f.c.RevealWidth(entity.DirectionLeft))
}

func TestDrawerController_EdgePanRequired(t *testing.T) {
	f := newFixture(t, func(o *controller.Options) { o.EdgePanRequired = true })

	assert.False(t, f.c.BeginPan(entity.Point{X: 200, Y: 400}))
	assert.False(t, f.c.BeginPan(entity.Point{X: 390, Y: 400}), "right edge has no drawer")
	assert.True(t, f.c.BeginPan(entity.Point{X: 10, Y: 400}))
}

func TestDrawerController_DelegateRefusesGesture(t *testing.T) {
	f := newFixture(t, nil)
	f.delegate.refuse = true
	assert.False(t, f.c.BeginPan(entity.Point{X: 10, Y: 10}))
	assert.False(t, f.c.Panning())
}

func TestDrawerController_DragDisabledRejects(t *testing.T) {
	f := newFixture(t, nil)
	f.c.SetDragRevealEnabled(entity.DirectionLeft, false)

	require.True(t, f.c.BeginPan(entity.Point{X: 10, Y: 10}))
	assert.Equal(t, gesture.Rejected, f.c.MovePan(at(60, 10)))
	assert.False(t, f.c.Panning())
	assert.Equal(t, entity.Point{}, f.c.Origin())
}

func TestDrawerController_SwipeBackClosesAndRelocks(t *testing.T) {
	f := newFixture(t, nil)
	f.c.SetState(entity.PaneStateOpen)
	f.delegate.events = nil

	require.True(t, f.c.BeginPan(entity.Point{X: 320, Y: 10}))
	f.c.MovePan(at(10, 10))

	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.Equal(t, entity.DirectionNone, f.c.Direction())
	assert.Equal(t, []string{"did closed left"}, f.delegate.events)
	assert.True(t, f.c.Panning())

	assert.Equal(t, gesture.Applied, f.c.MovePan(at(120, 10)))
	assert.Equal(t, entity.DirectionLeft, f.c.Direction())
}

func TestDrawerController_CancelPanSettlesToNearest(t *testing.T) {
	f := newFixture(t, nil)

	require.True(t, f.c.BeginPan(entity.Point{X: 10, Y: 10}))
	f.c.MovePan(at(230, 10))
	f.c.CancelPan()

	step, ok := f.c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, entity.PaneStateOpen, step.Target)

	f.drain(t)
	assert.Equal(t, entity.PaneStateOpen, f.c.State())
}

func TestDrawerController_RemoveActiveDrawerCloses(t *testing.T) {
	f := newFixture(t, nil)
	f.c.SetState(entity.PaneStateOpen)

	f.c.SetDrawer(entity.DirectionLeft, nil)

	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.Equal(t, entity.DirectionNone, f.c.PossibleDirections())
	assert.Contains(t, f.delegate.events, "did closed left")
}

func TestDrawerController_ReplaceActiveDrawerReembeds(t *testing.T) {
	f := newFixture(t, nil)
	f.c.SetState(entity.PaneStateOpen)
	f.host.events = nil
	other := &content{id: "other"}

	f.c.SetDrawer(entity.DirectionLeft, other)

	assert.Equal(t, []string{"unembed left", "embed other drawer"}, f.host.events)
	assert.Same(t, other, f.c.Drawer(entity.DirectionLeft))
}

func TestDrawerController_ReplacePaneContentSlidesOff(t *testing.T) {
	f := newFixture(t, nil)
	first := &content{id: "first"}
	second := &content{id: "second"}
	f.c.SetPaneContent(first)
	f.c.SetState(entity.PaneStateOpen)
	f.host.events = nil
	f.delegate.events = nil
	done := 0

	f.c.ReplacePaneContent(second, true, func() { done++ })

	step, ok := f.c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, entity.PaneStateOpenWide, step.Target)
	assert.Same(t, first, f.c.PaneContent())

	f.drain(t)

	assert.Equal(t, 1, done)
	assert.Same(t, second, f.c.PaneContent())
	assert.Equal(t, entity.PaneStateClosed, f.c.State())
	assert.Equal(t, []string{
		"may open_wide left", "did open_wide left",
		"may closed left", "did closed left",
	}, f.delegate.events)
	assert.Equal(t, []string{"unembed first", "embed second pane", "unembed left"}, f.host.events)
}

type valueContent struct{ lines []string }

func (valueContent) ContentID() string { return "value" }

func TestDrawerController_NonComparablePaneContentPanics(t *testing.T) {
	f := newFixture(t, nil)

	err := recoverPrecondition(func() { f.c.SetPaneContent(valueContent{}) })
	assert.ErrorIs(t, err, entity.ErrNotComparable)

	err = recoverPrecondition(func() { f.c.ReplacePaneContent(valueContent{}, true, nil) })
	assert.ErrorIs(t, err, entity.ErrNotComparable)
	assert.Nil(t, f.c.PaneContent())
}

func TestDrawerController_ReplacePaneContentWithoutSlideOff(t *testing.T) {
	f := newFixture(t, func(o *controller.Options) { o.SlideOffAnimation = false })
	f.c.SetState(entity.PaneStateOpen)
	second := &content{id: "second"}

	f.c.ReplacePaneContent(second, true, nil)

	assert.Same(t, second, f.c.PaneContent())
	step, ok := f.c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, entity.PaneStateClosed, step.Target)
	f.drain(t)
	assert.Equal(t, entity.PaneStateClosed, f.c.State())
}

func TestDrawerController_StylerReceivesClosedFraction(t *testing.T) {
	f := newFixture(t, nil)
	s := mocks.NewMockStylerPlugin(t)
	s.EXPECT().OnAttach(entity.DirectionLeft).Once()
	f.c.AddStyler(s, entity.DirectionLeft)

	s.EXPECT().OnUpdate(1.0, entity.DirectionLeft).Once()
	s.EXPECT().OnUpdate(0.5, entity.DirectionLeft).Once()

	require.True(t, f.c.BeginPan(entity.Point{X: 10, Y: 10}))
	f.c.MovePan(at(160, 10))
	assert.InDelta(t, 0.5, f.c.ClosedFraction(), 1e-9)
	assert.Equal(t, 150.0, f.c.CurrentRevealWidth())
}

func TestDrawerController_ReconfigureWhileClosed(t *testing.T) {
	f := newFixture(t, nil)
	opts := controller.DefaultOptions()
	opts.RevealWidths = map[entity.Direction]float64{entity.DirectionLeft: 200}
	opts.TapToClose = map[entity.Direction]bool{entity.DirectionHorizontal: false}

	f.c.Reconfigure(opts)

	assert.Equal(t, 200.0, f.c.RevealWidth(entity.DirectionLeft))
	f.c.SetState(entity.PaneStateOpen)
	assert.InDelta(t, 200, f.c.Origin().X, 0.001)
	assert.False(t, f.c.TapToCloseEnabled(entity.DirectionLeft))
	assert.False(t, f.c.Tap())
	assert.Equal(t, entity.PaneStateOpen, f.c.State())
}

func TestDrawerController_ReconfigureWhileOpenKeepsWidths(t *testing.T) {
	f := newFixture(t, nil)
	f.c.SetState(entity.PaneStateOpen)
	opts := controller.DefaultOptions()
	opts.RevealWidths = map[entity.Direction]float64{entity.DirectionLeft: 200}
	opts.DragReveal = map[entity.Direction]bool{entity.DirectionLeft: false}

	f.c.Reconfigure(opts)

	assert.Equal(t, 300.0, f.c.RevealWidth(entity.DirectionLeft))
	assert.False(t, f.c.DragRevealEnabled(entity.DirectionLeft))
	assert.InDelta(t, 300, f.c.Origin().X, 0.001)
}
