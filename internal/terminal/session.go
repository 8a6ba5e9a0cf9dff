package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/juju/errors"
	"golang.org/x/term"
)

const (
	// DefaultColumns is used when the terminal size can't be queried
	DefaultColumns = 80
	// DefaultRows is used when the terminal size can't be queried
	DefaultRows = 24
)

// Session owns the terminal state (cursor visibility, style, screen
// contents) for the lifetime of a mirror. Release restores it exactly once.
type Session struct {
	out io.Writer
	fd  int

	getSize func(fd int) (int, int, error)
	clear   func(w io.Writer) error

	release    sync.Once
	releaseErr error
}

// NewSession binds a session to out, fd is used to query the window size
func NewSession(out io.Writer, fd int) *Session {
	return &Session{
		out:     out,
		fd:      fd,
		getSize: term.GetSize,
		clear:   clearScreen,
	}
}

// NewStdoutSession binds a session to the process stdout
func NewStdoutSession() *Session {
	return NewSession(os.Stdout, int(os.Stdout.Fd()))
}

// Acquire hides the cursor and clears the screen
func (s *Session) Acquire() error {
	if _, err := io.WriteString(s.out, ansi.HideCursor); err != nil {
		return errors.Annotate(err, "could not hide cursor")
	}
	return s.Clear()
}

// Release shows the cursor, resets styling and clears the screen. Only the
// first call has an effect, later calls return the first call's result.
func (s *Session) Release() error {
	s.release.Do(func() {
		if _, err := io.WriteString(s.out, ansi.ShowCursor+ansi.ResetStyle); err != nil {
			s.releaseErr = errors.Annotate(err, "could not restore cursor")
			return
		}
		s.releaseErr = s.Clear()
	})
	return s.releaseErr
}

// Clear erases the screen and homes the cursor
func (s *Session) Clear() error {
	return errors.Annotate(s.clear(s.out), "could not clear screen")
}

// Size returns the terminal dimensions, or 80x24 when the output is not a
// terminal
func (s *Session) Size() (cols int, rows int) {
	w, h, err := s.getSize(s.fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultColumns, DefaultRows
	}
	return w, h
}

// Write writes to the terminal output
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func writeClear(w io.Writer) error {
	_, err := io.WriteString(w, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}
