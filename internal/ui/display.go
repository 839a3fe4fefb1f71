package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is the width assumed when w is not a terminal.
const DefaultTermWidth = 100

// DisplayContext describes where output is going.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// DisplayContextFor inspects w. Anything other than an *os.File attached to a
// terminal is treated as a plain pipe of DefaultTermWidth columns.
func DisplayContextFor(w io.Writer) *DisplayContext {
	f, ok := w.(*os.File)
	if !ok {
		return &DisplayContext{TermWidth: DefaultTermWidth}
	}

	fd := f.Fd()
	isTTY := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	width := DefaultTermWidth
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	return &DisplayContext{TermWidth: width, IsTTY: isTTY}
}

// NewDisplayContextWithWidth creates a DisplayContext with a fixed width.
func NewDisplayContextWithWidth(width int, isTTY bool) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: isTTY}
}

// AvailableWidth returns the usable width after a left margin, never below 20.
func (d *DisplayContext) AvailableWidth(leftMargin int) int {
	if w := d.TermWidth - leftMargin; w >= 20 {
		return w
	}
	return 20
}
