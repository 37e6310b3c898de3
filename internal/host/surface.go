package host

import (
	"io"
	"strings"

	"github.com/san-kum/folio/internal/grid"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Terminal writes frames to a stream. With ANSI enabled each frame repaints the
// screen in place; otherwise frames are appended separated by a blank line.
type Terminal struct {
	w      io.Writer
	ansi   bool
	indent string
}

func NewTerminal(w io.Writer, ansi bool) *Terminal {
	return &Terminal{w: w, ansi: ansi, indent: "  "}
}

func (t *Terminal) Open() error {
	if !t.ansi {
		return nil
	}
	_, err := io.WriteString(t.w, hideCursor)
	return err
}

func (t *Terminal) Close() error {
	if !t.ansi {
		return nil
	}
	_, err := io.WriteString(t.w, showCursor)
	return err
}

func (t *Terminal) Commit(frame grid.Frame) error {
	var b strings.Builder
	if t.ansi {
		b.WriteString(clearScreen)
	}
	for _, row := range frame {
		b.WriteString(t.indent)
		b.WriteString(row)
		b.WriteString("\n")
	}
	if !t.ansi {
		b.WriteString("\n")
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// Buffer keeps the most recent frame, for hosts that pull instead of push.
type Buffer struct {
	last grid.Frame
}

func (b *Buffer) Commit(frame grid.Frame) error {
	b.last = frame
	return nil
}

func (b *Buffer) Last() grid.Frame { return b.last }
