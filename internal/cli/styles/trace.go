package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/panedrawer/internal/application/usecase"
	"github.com/bnema/panedrawer/internal/domain/entity"
)

const fractionBarWidth = 20

// TraceRenderer renders pane snapshots and simulation traces.
type TraceRenderer struct {
	theme *Theme
	bar   progress.Model
}

// NewTraceRenderer creates a new trace renderer with the given theme.
func NewTraceRenderer(theme *Theme) *TraceRenderer {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Accent)),
		progress.WithoutPercentage(),
		progress.WithWidth(fractionBarWidth),
	)
	bar.EmptyColor = string(theme.SurfaceVariant)
	return &TraceRenderer{theme: theme, bar: bar}
}

// RenderSnapshot renders a single status line for s.
func (r *TraceRenderer) RenderSnapshot(s entity.PaneSnapshot) string {
	icon := r.theme.Subtle.Render(IconStop)
	if s.Moving() {
		icon = r.theme.Highlight.Render(IconPlay)
	}

	state := r.theme.Badge.Render(s.State.String())
	if s.Moving() {
		state = r.theme.BadgeMuted.Render(s.State.String() + " → " + s.Potential.String())
	}

	return fmt.Sprintf("%s %s %s %s %s",
		icon,
		state,
		r.theme.Subtle.Render(s.Direction.String()),
		r.bar.ViewAs(1-clampFraction(s.ClosedFraction)),
		r.theme.Subtle.Render(formatPoint(s.Origin)),
	)
}

// RenderTrace renders every frame of a simulation run followed by a summary.
// every > 1 keeps only every n-th settle frame plus the last one.
func (r *TraceRenderer) RenderTrace(out *usecase.SimulatePaneOutput, every int) string {
	if out == nil {
		return ""
	}
	if every < 1 {
		every = 1
	}

	rows := make([][]string, 0, len(out.Frames))
	for i, f := range out.Frames {
		last := i == len(out.Frames)-1
		if f.Phase == usecase.PhaseSettle && f.Index%every != 0 && !last {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(f.Index),
			f.Phase,
			f.Snapshot.State.String(),
			f.Snapshot.Potential.String(),
			f.Snapshot.Direction.String(),
			formatPoint(f.Snapshot.Origin),
			strconv.FormatFloat(f.Snapshot.ClosedFraction, 'f', 3, 64),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Muted).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("#", "Phase", "State", "Potential", "Direction", "Origin", "Closed").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	var sb strings.Builder
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	sb.WriteString(r.renderSummary(out))
	return sb.String()
}

func (r *TraceRenderer) renderSummary(out *usecase.SimulatePaneOutput) string {
	if !out.Accepted {
		return fmt.Sprintf("  %s %s\n", r.theme.WarningStyle.Render(IconWarning), "gesture refused")
	}
	icon := r.theme.SuccessStyle.Render(IconCheck)
	verdict := "settled"
	if !out.Settled {
		icon = r.theme.WarningStyle.Render(IconClock)
		verdict = "still moving"
	}
	return fmt.Sprintf("  %s %s in %d frames: %s\n",
		icon,
		verdict,
		len(out.Frames),
		r.RenderSnapshot(out.Final),
	)
}

func formatPoint(p entity.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

func clampFraction(f float64) float64 {
	return min(max(f, 0), 1)
}
