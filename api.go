package main

import (
	"context"
	"errors"
	"io"

	"github.com/Delfad0r/gopota/internal/flushio"
	"github.com/Delfad0r/gopota/internal/panicerr"
)

// VMOption configures a VM under construction.
type VMOption func(vm *VM)

// New builds a VM from the given options. A zero-option VM has an empty
// grid, an empty input queue, and discarded output; callers almost always
// want at least WithProgram.
func New(opts ...VMOption) *VM {
	vm := &VM{out: flushio.Buffered(io.Discard)}
	for _, opt := range opts {
		if opt != nil {
			opt(vm)
		}
	}
	return vm
}

// Run executes the program until every pointer has died, the context
// expires, or a fatal runtime error occurs.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Catch("pota", func() error {
		return vm.run(ctx)
	})
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	return err
}

// Close releases any closeable input/output streams handed to the VM.
func (vm *VM) Close() (err error) {
	for i := len(vm.closers) - 1; i >= 0; i-- {
		if cerr := vm.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// WithProgram populates the grid from the program lines, top to bottom. A
// leading "#!" line is dropped.
func WithProgram(lines ...string) VMOption {
	return func(vm *VM) { vm.grid = newGrid(lines) }
}

// WithStack seeds pointer 0's bottom stack; the first value is bottom-most.
func WithStack(values ...string) VMOption {
	return func(vm *VM) { vm.seedStack = append(vm.seedStack, values...) }
}

// WithInput appends a stream to the input queue consumed by `i`.
func WithInput(r io.Reader) VMOption {
	return func(vm *VM) {
		vm.in.Queue = append(vm.in.Queue, r)
		vm.trackCloser(r)
	}
}

// WithOutput sets the stream written by `o`.
func WithOutput(w io.Writer) VMOption {
	return func(vm *VM) {
		vm.out = flushio.Buffered(w)
		vm.trackCloser(w)
	}
}

// WithTee duplicates output into the given writer.
func WithTee(w io.Writer) VMOption {
	return func(vm *VM) {
		vm.out = flushio.Tee(vm.out, flushio.Buffered(w))
		vm.trackCloser(w)
	}
}

// WithSeed fixes the random source driving `x`, making scheduling of random
// mirrors reproducible.
func WithSeed(seed int64) VMOption {
	return func(vm *VM) { vm.rng = newSeededRNG(seed) }
}

// WithLogf enables trace logging through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption {
	return func(vm *VM) { vm.logfn = logfn }
}

func (vm *VM) trackCloser(stream interface{}) {
	if cl, ok := stream.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}
