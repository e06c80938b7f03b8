package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Width(12)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)
)

// Symbols for visual feedback.
const (
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
	SymbolArrowRight = "→"
	SymbolBullet     = "•"
)

// RenderReport formats a toggle report. With styled=false the output is plain
// text suitable for logs and pipes.
func RenderReport(r *paramflip.Report, styled bool) string {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}
	label := func(text string) string {
		if !styled {
			return fmt.Sprintf("%-12s", text)
		}
		return LabelStyle.Render(text)
	}

	var status string
	switch r.Outcome {
	case paramflip.OutcomeToggled:
		status = render(SuccessStyle, SymbolCheck+" "+r.Previous+" "+SymbolArrowRight+" "+r.New)
	case paramflip.OutcomeNotFound:
		status = render(WarningStyle, SymbolCross+" not found")
	default:
		status = render(WarningStyle, SymbolCross+" unchanged ("+r.Previous+")")
	}

	lines := []string{
		render(TitleStyle, r.Parameter),
		label("group") + r.Group,
		label("status") + status,
	}
	body := strings.Join(lines, "\n")
	if !styled {
		return body
	}
	return BoxStyle.Render(body)
}

// RenderError formats an error line.
func RenderError(err error, styled bool) string {
	text := SymbolCross + " " + err.Error()
	if !styled {
		return text
	}
	return ErrorStyle.Render(text)
}
