package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type kind struct {
	title string
	color lipgloss.Color
}

var (
	kindSuccess = kind{title: "Success", color: lipgloss.Color("10")}
	kindError   = kind{title: "Error", color: lipgloss.Color("9")}
	kindInfo    = kind{title: "Info", color: lipgloss.Color("12")}
)

// Box writes titled message boxes to a terminal.
type Box struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// New creates a Box rendering for w's color profile.
func New(w io.Writer) *Box {
	return &Box{w: w, renderer: lipgloss.NewRenderer(w)}
}

// Success reports a completed action.
func (b *Box) Success(format string, args ...any) {
	b.show(kindSuccess, fmt.Sprintf(format, args...))
}

// Error reports a failed action with the error text.
func (b *Box) Error(err error) {
	b.show(kindError, err.Error())
}

// Info shows a neutral message.
func (b *Box) Info(format string, args ...any) {
	b.show(kindInfo, fmt.Sprintf(format, args...))
}

func (b *Box) show(k kind, msg string) {
	title := b.renderer.NewStyle().Bold(true).Foreground(k.color).Render(k.title)
	box := b.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(k.color).
		Padding(0, 1).
		Render(title + "\n" + msg)
	fmt.Fprintln(b.w, box)
}
