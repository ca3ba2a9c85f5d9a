package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/panedrawer/internal/domain/entity"
)

// Setting is one key/value line of a config summary.
type Setting struct {
	Key   string
	Value string
}

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it was found.
func (r *ConfigRenderer) RenderConfigInfo(path string, found bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := r.theme.SuccessStyle.Render("loaded")
	if !found {
		status = r.theme.WarningStyle.Render("not found, using defaults")
	}

	return fmt.Sprintf(
		"\n  %s Config %s (%s)\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderSettings renders an aligned key/value listing.
func (r *ConfigRenderer) RenderSettings(settings []Setting) string {
	if len(settings) == 0 {
		return ""
	}

	width := 0
	for _, s := range settings {
		width = max(width, lipgloss.Width(s.Key))
	}
	keyStyle := r.theme.Subtle.Width(width)
	valStyle := r.theme.Highlight

	var sb strings.Builder
	for _, s := range settings {
		sb.WriteString(fmt.Sprintf("    %s  %s\n", keyStyle.Render(s.Key), valStyle.Render(s.Value)))
	}
	return sb.String()
}

// RenderKeys renders documented config keys, one table per section.
func (r *ConfigRenderer) RenderKeys(keys []entity.ConfigKeyInfo, sections []string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("  no matching keys") + "\n"
	}

	bySection := make(map[string][][]string, len(sections))
	for _, k := range keys {
		bySection[k.Section] = append(bySection[k.Section], []string{k.Key, k.Type, k.Default, describeKey(k)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Muted).Bold(true).Padding(0, 1)
	keyStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)

	var sb strings.Builder
	for _, section := range sections {
		rows, ok := bySection[section]
		if !ok {
			continue
		}
		sb.WriteString("\n  " + r.theme.Subtitle.Render(section) + "\n")
		t := table.New().
			Border(lipgloss.HiddenBorder()).
			Headers("Key", "Type", "Default", "Description").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 0:
					return keyStyle
				}
				return cellStyle
			})
		sb.WriteString(t.Render())
		sb.WriteString("\n")
	}
	return sb.String()
}

func describeKey(k entity.ConfigKeyInfo) string {
	desc := k.Description
	if len(k.Values) > 0 {
		desc += " [" + strings.Join(k.Values, "|") + "]"
	}
	if k.Range != "" {
		desc += " (" + k.Range + ")"
	}
	return desc
}

// RenderCreated renders the success message after writing a default config.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote default config to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
	)
}

// RenderSchemaWritten renders the path of a generated JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Schema %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
