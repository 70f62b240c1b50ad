// Package rawterm puts a TTY into a raw-ish input mode, scoped so the
// original settings can be restored on every exit path.
//
// Only echo and canonical line buffering are disabled; output processing is
// left alone, so a byte-at-a-time keypress read does not also mangle '\n' on
// the way out.
package rawterm

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Mode holds saved terminal settings for a file descriptor.
type Mode struct {
	fd    int
	saved *termState
}

// Enter disables echo and canonical mode on f if it is a terminal, returning
// a Mode whose Restore puts the original settings back. On a non-TTY (or a
// platform without termios) Enter is a no-op and Restore does nothing.
func Enter(f *os.File) (*Mode, error) {
	fd := int(f.Fd())
	if !isatty.IsTerminal(f.Fd()) {
		return &Mode{fd: fd}, nil
	}
	saved, err := makeNonCanonical(fd)
	if err != nil {
		return &Mode{fd: fd}, err
	}
	return &Mode{fd: fd, saved: saved}, nil
}

// Restore reinstates the settings captured by Enter. It is safe to call more
// than once, and on a Mode that never changed anything.
func (m *Mode) Restore() {
	if m == nil || m.saved == nil {
		return
	}
	restore(m.fd, m.saved)
	m.saved = nil
}
