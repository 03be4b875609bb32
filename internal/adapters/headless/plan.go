package headless

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/diffdirs/internal/ui/output"
	"go.trai.ch/diffdirs/internal/ui/style"
)

const (
	placementWidth = 18
	modeWidth      = 9
	fixedWidth     = 5
)

// RenderPlan writes the containers, panes and navigation list held by e.
// The focused container is marked with a dot.
func RenderPlan(w io.Writer, e *Editor) error {
	r := output.Renderer(w)
	heading := r.NewStyle().Bold(true).Foreground(style.Accent)
	muted := r.NewStyle().Foreground(style.Muted)
	editable := r.NewStyle().Foreground(style.Green)
	readOnly := r.NewStyle().Foreground(style.Yellow)

	var b strings.Builder
	for _, v := range e.Views() {
		marker := " "
		if v.ID == e.Current() {
			marker = style.Dot
		}
		fmt.Fprintf(&b, "%s %s\n", marker, heading.Render(fmt.Sprintf("view %d", v.ID)))

		for _, p := range v.Panes {
			mode, fixed := muted.Render("unset"), ""
			modeText := "unset"
			if p.Options != nil {
				if p.Options.Modifiable {
					modeText, mode = "editable", editable.Render("editable")
				} else {
					modeText, mode = "read-only", readOnly.Render("read-only")
				}
				if p.Options.FixedBuffer {
					fixed = "fixed"
				}
			}

			fmt.Fprintf(&b, "    pane %d  %s %s %s %s",
				p.Pane.ID,
				pad(p.Placement.String(), p.Placement.String(), placementWidth),
				pad(mode, modeText, modeWidth),
				pad(fixed, fixed, fixedWidth),
				p.Pane.File,
			)
			if len(p.Hooks) > 0 {
				b.WriteString(muted.Render("  hooks: " + strings.Join(p.Hooks, ", ")))
			}
			b.WriteString("\n")
		}
	}

	nav := e.Navigation()
	fmt.Fprintf(&b, "\n%s\n", heading.Render(fmt.Sprintf("quickfix (%d)", len(nav))))
	for i, entry := range nav {
		fmt.Fprintf(&b, "  %d. %s  %s\n", i+1, entry.Text, muted.Render(entry.Filename))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// pad right-pads styled to width, measured on its plain text.
func pad(styled, plain string, width int) string {
	return styled + strings.Repeat(" ", max(0, width-lipgloss.Width(plain)))
}
