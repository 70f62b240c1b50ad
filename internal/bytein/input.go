package bytein

import (
	"bufio"
	"io"
)

// Input implements sequential byte reading through a Queue of one or more
// input streams: when the current stream runs dry the next queued one takes
// over, and io.EOF is only reported once the whole queue is exhausted.
type Input struct {
	br    io.ByteReader
	Queue []io.Reader
}

// ReadByte reads one byte from the current input stream.
func (in *Input) ReadByte() (byte, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return 0, io.EOF
		}
		b, err := in.br.ReadByte()
		if err == nil {
			return b, nil
		}
		if err != io.EOF {
			return 0, err
		}
		if !in.nextIn() {
			return 0, io.EOF
		}
	}
}

func (in *Input) nextIn() bool {
	if in.br != nil {
		if cl, ok := in.br.(io.Closer); ok {
			cl.Close()
		}
		in.br = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.br = newByteReader(r)
	}
	return in.br != nil
}

func newByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
