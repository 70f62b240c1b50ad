package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	"github.com/Delfad0r/gopota/internal/bytein"
	"github.com/Delfad0r/gopota/internal/flushio"
)

// VM owns all interpreter state: the grid, the live pointer set, the random
// source, and the byte streams. Everything runs on the caller's goroutine;
// pointers are cooperatively scheduled and nothing is shared across threads.
type VM struct {
	logging

	grid *grid

	ptrs   map[uint32]*pointer
	nextID uint32

	rng *rand.Rand

	in  bytein.Input
	out flushio.WriteFlusher

	closers []io.Closer

	seedStack []string
}

func newSeededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// spawn creates a pointer at (x,y) heading (dx,dy), with seed as its bottom
// stack, assigns it the next free id, and registers it. Ids are never
// reused, even after a pointer dies. The cell under the new pointer is
// preloaded into its instruction queue, so the pointer's first step executes
// its birth cell.
func (vm *VM) spawn(seed stack, dx, dy, x, y int64) *pointer {
	p := &pointer{
		id: vm.nextID,
		x:  x, y: y,
		dx: dx, dy: dy,
		stacks:       []stack{seed},
		instructions: []byte{vm.grid.get(x, y)},
		alive:        true,
	}
	vm.nextID++
	if vm.ptrs == nil {
		vm.ptrs = make(map[uint32]*pointer)
	}
	vm.ptrs[p.id] = p
	vm.logf("&", "spawn ptr %v @(%v,%v) dir (%v,%v) s:%v", p.id, x, y, dx, dy, seed)
	return p
}

// run drives the scheduler: each round snapshots the live ids in ascending
// order and gives every pointer a cooperative turn, running it until it
// yields on an empty Wait or dies. Pointers spawned mid-round are not in the
// snapshot and first run in the following round.
func (vm *VM) run(ctx context.Context) error {
	if vm.grid == nil {
		vm.grid = newGrid(nil)
	}
	if vm.rng == nil {
		vm.rng = newSeededRNG(1)
	}

	seed := make(stack, len(vm.seedStack))
	for i, s := range vm.seedStack {
		seed[i] = strValue(s)
	}
	vm.spawn(seed, 1, 0, 0, 0)

	for len(vm.ptrs) > 0 {
		ids := make([]uint32, 0, len(vm.ptrs))
		for id := range vm.ptrs {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		vm.logf("=", "round %v", ids)
		for _, id := range ids {
			p, ok := vm.ptrs[id]
			if !ok {
				continue
			}
			for p.move(vm) {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if !p.alive {
				vm.logf(";", "ptr %v died", id)
				delete(vm.ptrs, id)
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return vm.out.Flush()
}

// halt aborts the run: flush what we can, then unwind through the scheduler
// as a haltError panic, recovered at the Run boundary.
func (vm *VM) halt(err error) {
	if vm.out != nil {
		if ferr := vm.out.Flush(); err == nil {
			err = ferr
		}
	}
	herr := haltError{err}
	vm.logf("#", "halt error: %v", herr)
	panic(herr)
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
