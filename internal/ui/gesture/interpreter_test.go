package gesture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/domain/geometry"
	"github.com/bnema/panedrawer/internal/ui/gesture"
)

func testGeometry() geometry.Geometry {
	reveal := entity.NewRevealWidths(0, 0)
	reveal.Set(entity.DirectionLeft, 300)
	return geometry.New(entity.Point{X: 400, Y: 800}, reveal)
}

func at(x, y float64) gesture.Sample {
	return gesture.Sample{Location: entity.Point{X: x, Y: y}}
}

func TestProject(t *testing.T) {
	v := entity.Point{X: 12, Y: -7}
	assert.Equal(t, 12.0, gesture.Project(v, entity.DirectionLeft))
	assert.Equal(t, 12.0, gesture.Project(v, entity.DirectionHorizontal))
	assert.Equal(t, -7.0, gesture.Project(v, entity.DirectionBottom))
	assert.Zero(t, gesture.Project(v, entity.DirectionNone))
}

func TestInferDirection(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		possible entity.Direction
		want     entity.Direction
	}{
		{"positive horizontal", 5, entity.DirectionHorizontal, entity.DirectionLeft},
		{"negative horizontal", -5, entity.DirectionRight, entity.DirectionRight},
		{"positive vertical", 5, entity.DirectionBottom, entity.DirectionTop},
		{"negative vertical", -5, entity.DirectionVertical, entity.DirectionBottom},
		{"zero", 0, entity.DirectionHorizontal, entity.DirectionNone},
		{"no drawers", 5, entity.DirectionNone, entity.DirectionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gesture.InferDirection(tt.position, tt.possible))
		})
	}
}

func TestTracker_ResolvesAndClamps(t *testing.T) {
	g := testGeometry()
	var tr gesture.Tracker
	tr.Begin(entity.Point{X: 10, Y: 200}, entity.Point{}, entity.DirectionNone)

	u := tr.Sample(at(250, 230), entity.DirectionNone, entity.DirectionLeft, g)
	require.Equal(t, gesture.Applied, u.Outcome)
	assert.Equal(t, entity.DirectionLeft, u.Direction)
	assert.Equal(t, entity.Point{X: 240}, u.Origin, "vertical motion is ignored")
	assert.False(t, u.Bounded)
	assert.Equal(t, 240.0, tr.Velocity())
	assert.Equal(t, entity.DirectionLeft, tr.Lock())

	u = tr.Sample(at(400, 200), entity.DirectionLeft, entity.DirectionLeft, g)
	assert.True(t, u.Bounded)
	assert.Equal(t, entity.Point{X: 300}, u.Origin)
	assert.Equal(t, 240.0, tr.Velocity(), "bounded samples do not update velocity")
}

func TestTracker_SampleVelocityPreferred(t *testing.T) {
	g := testGeometry()
	var tr gesture.Tracker
	tr.Begin(entity.Point{}, entity.Point{}, entity.DirectionNone)

	tr.Sample(gesture.Sample{Location: entity.Point{X: 50}, Velocity: entity.Point{X: 12}}, entity.DirectionNone, entity.DirectionLeft, g)
	assert.Equal(t, 12.0, tr.Velocity())

	assert.Equal(t, 40.0, tr.Release(gesture.Sample{Velocity: entity.Point{X: 40}}, entity.DirectionLeft))
	assert.False(t, tr.Active())
}

func TestTracker_IgnoresUntilDirectionResolves(t *testing.T) {
	g := testGeometry()
	var tr gesture.Tracker
	tr.Begin(entity.Point{X: 100, Y: 100}, entity.Point{}, entity.DirectionNone)

	u := tr.Sample(at(100, 150), entity.DirectionNone, entity.DirectionLeft, g)
	assert.Equal(t, gesture.Ignored, u.Outcome)
}

func TestTracker_RejectsImpossibleDirection(t *testing.T) {
	g := testGeometry()
	var tr gesture.Tracker
	tr.Begin(entity.Point{X: 100}, entity.Point{}, entity.DirectionNone)

	u := tr.Sample(at(50, 0), entity.DirectionNone, entity.DirectionLeft, g)
	assert.Equal(t, gesture.Rejected, u.Outcome)
	assert.Equal(t, entity.DirectionRight, u.Inferred)
}

func TestTracker_RejectsSwipeIntoOtherDrawer(t *testing.T) {
	g := testGeometry()
	var tr gesture.Tracker
	tr.Begin(entity.Point{X: 100}, entity.Point{}, entity.DirectionNone)

	u := tr.Sample(at(150, 0), entity.DirectionNone, entity.DirectionHorizontal, g)
	require.Equal(t, gesture.Applied, u.Outcome)
	require.Equal(t, entity.DirectionLeft, u.Direction)

	u = tr.Sample(at(80, 0), entity.DirectionLeft, entity.DirectionHorizontal, g)
	require.Equal(t, gesture.Applied, u.Outcome)
	assert.True(t, u.Bounded)
	assert.True(t, u.ReachedClosed)
	assert.Equal(t, entity.Point{}, u.Origin)

	// Direction was reset to None by the swipe into closed.
	u = tr.Sample(at(40, 0), entity.DirectionNone, entity.DirectionHorizontal, g)
	assert.Equal(t, gesture.Rejected, u.Outcome)

	u = tr.Sample(at(160, 0), entity.DirectionNone, entity.DirectionHorizontal, g)
	assert.Equal(t, gesture.Applied, u.Outcome, "the locked direction can be revealed again")
}

func TestTracker_DragDisabled(t *testing.T) {
	g := testGeometry()
	tr := gesture.Tracker{DragEnabled: func(d entity.Direction) bool { return d != entity.DirectionLeft }}
	tr.Begin(entity.Point{}, entity.Point{}, entity.DirectionNone)

	u := tr.Sample(at(30, 0), entity.DirectionNone, entity.DirectionLeft, g)
	assert.Equal(t, gesture.Rejected, u.Outcome)
}

func TestTracker_StartsFromOpenPosition(t *testing.T) {
	g := testGeometry()
	var tr gesture.Tracker
	tr.Begin(entity.Point{X: 320, Y: 10}, entity.Point{X: 300}, entity.DirectionLeft)

	u := tr.Sample(at(220, 10), entity.DirectionLeft, entity.DirectionLeft, g)
	require.Equal(t, gesture.Applied, u.Outcome)
	assert.Equal(t, entity.Point{X: 200}, u.Origin)
	assert.Equal(t, -100.0, tr.Velocity())
}

func TestDecide(t *testing.T) {
	params := gesture.DecisionParams{VelocityThreshold: 5, VelocityMultiplier: 5}

	t.Run("fling open left", func(t *testing.T) {
		d := gesture.Decide(40, entity.DirectionLeft, entity.PaneStateClosed, params)
		assert.Equal(t, entity.PaneStateOpen, d.Target)
		assert.Equal(t, 200.0, d.ImpulseMagnitude)
		assert.Equal(t, geometry.GravityAngle(entity.PaneStateOpen, entity.DirectionLeft), d.ImpulseAngle)
	})

	t.Run("fling closed right", func(t *testing.T) {
		d := gesture.Decide(30, entity.DirectionRight, entity.PaneStateOpen, params)
		assert.Equal(t, entity.PaneStateClosed, d.Target)
		assert.Equal(t, 150.0, d.ImpulseMagnitude)
	})

	t.Run("fling open bottom", func(t *testing.T) {
		d := gesture.Decide(-30, entity.DirectionBottom, entity.PaneStateClosed, params)
		assert.Equal(t, entity.PaneStateOpen, d.Target)
	})

	t.Run("slow release settles to nearest", func(t *testing.T) {
		d := gesture.Decide(2, entity.DirectionLeft, entity.PaneStateClosed, params)
		assert.Equal(t, entity.PaneStateClosed, d.Target)
		assert.Zero(t, d.ImpulseMagnitude)
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		d := gesture.Decide(-5, entity.DirectionLeft, entity.PaneStateOpenWide, params)
		assert.Equal(t, entity.PaneStateOpenWide, d.Target)
	})
}

func TestStartEdges(t *testing.T) {
	size := entity.Point{X: 400, Y: 800}

	assert.Equal(t, entity.DirectionLeft, gesture.StartEdges(entity.Point{X: 10, Y: 400}, size, 24))
	assert.Equal(t, entity.DirectionTop|entity.DirectionRight, gesture.StartEdges(entity.Point{X: 390, Y: 5}, size, 24))
	assert.Equal(t, entity.DirectionNone, gesture.StartEdges(entity.Point{X: 200, Y: 400}, size, 24))

	assert.True(t, gesture.EdgeGate(entity.Point{X: 10, Y: 400}, size, 24, entity.DirectionHorizontal))
	assert.False(t, gesture.EdgeGate(entity.Point{X: 10, Y: 400}, size, 24, entity.DirectionRight))
	assert.False(t, gesture.EdgeGate(entity.Point{X: 200, Y: 400}, size, 24, entity.DirectionLeft))
}
