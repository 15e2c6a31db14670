// Package report prints the outcome of a prerequisite check for humans.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/frostyard/prereqs/prereq"
)

// Printer writes check results to Out. Styled turns on colours and marks.
type Printer struct {
	Out    io.Writer
	Styled bool
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	pathStyle = lipgloss.NewStyle().Faint(true)
	hintStyle = lipgloss.NewStyle().Italic(true)
)

func (p *Printer) mark(ok bool) string {
	switch {
	case !p.Styled && ok:
		return "ok"
	case !p.Styled:
		return "missing"
	case ok:
		return okStyle.Render("✓")
	default:
		return failStyle.Render("✗")
	}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.Styled {
		return text
	}
	return s.Render(text)
}

// Found prints one line per name, in the given order, with its resolved path.
// Names without an entry in paths are skipped.
func (p *Printer) Found(names []string, paths map[string]string) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		path, ok := paths[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		fmt.Fprintf(p.Out, "%s %s  %s\n", p.mark(true), name, p.style(pathStyle, path))
	}
}

// Missing prints every diagnostic of err on its own line, each followed by
// the install hint for that command when one is known.
func (p *Printer) Missing(err *prereq.CheckError, hints map[string]string) {
	for i, diag := range err.Errors {
		fmt.Fprintf(p.Out, "%s %s\n", p.mark(false), diag)
		if i >= len(err.Commands) {
			continue
		}
		if hint, ok := hints[err.Commands[i]]; ok {
			fmt.Fprintf(p.Out, "    %s\n", p.style(hintStyle, hint))
		}
	}
}
