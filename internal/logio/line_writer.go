package logio

import "bytes"

// Writer adapts a printf-style log function into an io.Writer, emitting one
// log call per completed line. An unterminated remainder is held back until
// the next write or Close.
type Writer struct {
	Logf func(string, ...interface{})

	rest []byte
}

func (w *Writer) Write(p []byte) (int, error) {
	w.rest = append(w.rest, p...)
	for {
		i := bytes.IndexByte(w.rest, '\n')
		if i < 0 {
			break
		}
		w.Logf("%s", w.rest[:i])
		w.rest = w.rest[i+1:]
	}
	return len(p), nil
}

// Close flushes any held-back partial line.
func (w *Writer) Close() error {
	if len(w.rest) > 0 {
		w.Logf("%s", w.rest)
		w.rest = nil
	}
	return nil
}
