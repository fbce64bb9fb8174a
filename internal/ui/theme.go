package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Cursor, Selected                             lipgloss.Style

	BoxUnchecked, BoxChecked string
	ArrowRight, ArrowLeft    string
	SymOK, SymFail           string

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
	FocusColor  lipgloss.TerminalColor
}

var current = classic()

// SetTheme switches the theme by name. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Cursor:       lipgloss.NewStyle().Bold(true).Reverse(true),
			Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			BoxUnchecked: "◻", BoxChecked: "◼",
			ArrowRight: "→", ArrowLeft: "←",
			SymOK: "✔", SymFail: "✖",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("5"),
			FocusColor:  lipgloss.Color("14"),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain.Bold(true), Pending: plain,
			Cursor: plain.Reverse(true), Selected: plain.Bold(true),
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			ArrowRight: "->", ArrowLeft: "<-",
			SymOK: "ok", SymFail: "error:",
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			FocusColor:  lipgloss.NoColor{},
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Cursor:       lipgloss.NewStyle().Bold(true).Reverse(true),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		BoxUnchecked: "☐", BoxChecked: "☑",
		ArrowRight: "→", ArrowLeft: "←",
		SymOK: "✔", SymFail: "✖",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		FocusColor:  lipgloss.Color("12"),
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
