package main

import (
	"io"
	"strings"
)

// opTable dispatches every executed byte outside string mode. Unrecognized
// bytes halt with a bad-instruction error.
var opTable [256]func(*VM, *pointer)

func init() {
	for i := range opTable {
		c := byte(i)
		opTable[i] = func(vm *VM, p *pointer) {
			vm.halt(badInstructionError(c))
		}
	}

	// NOP
	opTable[' '] = func(vm *VM, p *pointer) {}

	// Arrows
	opTable['<'] = func(vm *VM, p *pointer) { p.dx, p.dy = -1, 0 }
	opTable['>'] = func(vm *VM, p *pointer) { p.dx, p.dy = 1, 0 }
	opTable['^'] = func(vm *VM, p *pointer) { p.dx, p.dy = 0, -1 }
	opTable['v'] = func(vm *VM, p *pointer) { p.dx, p.dy = 0, 1 }

	// Mirrors
	opTable['/'] = func(vm *VM, p *pointer) { p.dx, p.dy = -p.dy, -p.dx }
	opTable['\\'] = func(vm *VM, p *pointer) { p.dx, p.dy = p.dy, p.dx }
	opTable['|'] = func(vm *VM, p *pointer) { p.dx = -p.dx }
	opTable['_'] = func(vm *VM, p *pointer) { p.dy = -p.dy }
	opTable['x'] = func(vm *VM, p *pointer) {
		opTable[`/\|_`[vm.rng.Intn(4)]](vm, p)
	}

	// Skip
	opTable['!'] = func(vm *VM, p *pointer) { p.mustSkip = true }
	opTable['?'] = func(vm *VM, p *pointer) { p.mustSkip = p.popStr(vm) != "0" }

	// Where
	opTable['w'] = func(vm *VM, p *pointer) {
		p.push(intValue(p.x))
		p.push(intValue(p.y))
	}

	// Jump
	opTable['j'] = func(vm *VM, p *pointer) {
		p.y = p.popInt(vm)
		p.x = p.popInt(vm)
		if p.x < 0 || p.y < 0 {
			vm.halt(errJumpNegative)
		}
	}

	// Digits push themselves as one-char strings
	for c := byte('0'); c <= '9'; c++ {
		c := c
		opTable[c] = func(vm *VM, p *pointer) {
			p.push(strValue(string([]byte{c})))
		}
	}

	// Arith
	opTable['+'] = func(vm *VM, p *pointer) {
		b := p.popInt(vm)
		a := p.popInt(vm)
		p.push(intValue(a + b))
	}
	opTable['-'] = func(vm *VM, p *pointer) {
		b := p.popInt(vm)
		a := p.popInt(vm)
		p.push(intValue(a - b))
	}
	opTable['*'] = func(vm *VM, p *pointer) {
		b := p.popInt(vm)
		a := p.popInt(vm)
		p.push(intValue(a * b))
	}
	opTable['%'] = func(vm *VM, p *pointer) {
		b := p.popInt(vm)
		a := p.popInt(vm)
		if b == 0 {
			vm.halt(errDivByZero)
		}
		p.push(intValue(a / b))
		p.push(intValue(a % b))
	}

	// Concat
	opTable['.'] = func(vm *VM, p *pointer) {
		b := p.popStr(vm)
		a := p.popStr(vm)
		p.push(strValue(a + b))
	}

	// Cmp
	opTable['='] = func(vm *VM, p *pointer) {
		b := p.popStr(vm)
		a := p.popStr(vm)
		p.push(boolValue(a == b))
	}
	opTable['('] = func(vm *VM, p *pointer) {
		b := p.popStr(vm)
		a := p.popStr(vm)
		p.push(boolValue(a < b))
	}
	opTable[')'] = func(vm *VM, p *pointer) {
		b := p.popStr(vm)
		a := p.popStr(vm)
		p.push(boolValue(a > b))
	}
	opTable['['] = func(vm *VM, p *pointer) {
		b := p.popInt(vm)
		a := p.popInt(vm)
		p.push(boolValue(a < b))
	}
	opTable[']'] = func(vm *VM, p *pointer) {
		b := p.popInt(vm)
		a := p.popInt(vm)
		p.push(boolValue(a > b))
	}

	// Duplicate
	opTable[','] = func(vm *VM, p *pointer) {
		v := p.pop(vm)
		p.push(v)
		p.push(v)
	}

	// Pop
	opTable['~'] = func(vm *VM, p *pointer) { p.pop(vm) }

	// Swap
	opTable['$'] = func(vm *VM, p *pointer) {
		b := p.pop(vm)
		a := p.pop(vm)
		p.push(b)
		p.push(a)
	}

	// Flatten
	opTable[':'] = func(vm *VM, p *pointer) {
		st := p.cur()
		var acc strings.Builder
		for _, v := range *st {
			acc.WriteString(v.toStr())
		}
		*st = (*st)[:0]
		p.push(strValue(acc.String()))
	}

	// Rotate
	opTable['{'] = func(vm *VM, p *pointer) {
		st := p.cur()
		if len(*st) > 0 {
			v := (*st)[0]
			*st = append((*st)[1:], v)
		}
	}
	opTable['}'] = func(vm *VM, p *pointer) {
		st := p.cur()
		if len(*st) > 0 {
			v := p.pop(vm)
			*st = append(stack{v}, *st...)
		}
	}

	// Reverse
	opTable['r'] = func(vm *VM, p *pointer) {
		st := *p.cur()
		for i, j := 0, len(st)-1; i < j; i, j = i+1, j-1 {
			st[i], st[j] = st[j], st[i]
		}
	}

	// Length
	opTable['l'] = func(vm *VM, p *pointer) {
		p.push(intValue(int64(len(*p.cur()))))
	}

	// Explode
	opTable['e'] = func(vm *VM, p *pointer) {
		s := p.popStr(vm)
		ns := make(stack, 0, len(s))
		for i := 0; i < len(s); i++ {
			ns = append(ns, strValue(s[i:i+1]))
		}
		p.stacks = append(p.stacks, ns)
	}

	// New
	opTable['n'] = func(vm *VM, p *pointer) {
		cnt := p.popInt(vm)
		p.stacks = append(p.stacks, p.take(vm, cnt))
	}

	// Merge
	opTable['m'] = func(vm *VM, p *pointer) {
		old := *p.cur()
		p.stacks = p.stacks[:len(p.stacks)-1]
		if len(p.stacks) > 0 {
			st := p.cur()
			*st = append(*st, old...)
		} else {
			p.stacks = append(p.stacks, stack{})
		}
	}

	// SDuplicate
	opTable['d'] = func(vm *VM, p *pointer) {
		p.stacks = append(p.stacks, append(stack(nil), *p.cur()...))
	}

	// Exec
	opTable['`'] = func(vm *VM, p *pointer) {
		s := p.popStr(vm)
		p.instructions = append([]byte(s), p.instructions...)
	}

	// Get
	opTable['g'] = func(vm *VM, p *pointer) {
		y := p.popInt(vm)
		x := p.popInt(vm)
		p.push(strValue(string([]byte{vm.grid.get(x, y)})))
	}

	// Put
	opTable['p'] = func(vm *VM, p *pointer) {
		y := p.popInt(vm)
		x := p.popInt(vm)
		s := p.popStr(vm)
		// only the first byte lands in the cell; an empty string clears it
		if s == "" {
			vm.grid.set(x, y, ' ')
		} else {
			vm.grid.set(x, y, s[0])
		}
	}

	// Spawn
	opTable['&'] = func(vm *VM, p *pointer) {
		cnt := p.popInt(vm)
		seed := p.take(vm, cnt)
		vm.spawn(seed, p.dx, p.dy, p.x+p.dx, p.y+p.dy)
	}

	// Wait
	opTable['#'] = func(vm *VM, p *pointer) {
		if len(p.messages) == 0 {
			p.instructions = append([]byte{'#'}, p.instructions...)
		} else {
			v := p.messages[0]
			p.messages = p.messages[1:]
			p.push(v)
		}
	}

	// Send
	opTable['@'] = func(vm *VM, p *pointer) {
		at := p.popInt(vm)
		target, ok := vm.ptrs[uint32(at)]
		if !ok || int64(uint32(at)) != at {
			vm.halt(noSuchPointerError(at))
		}
		target.messages = append(target.messages, p.pop(vm))
	}

	// Id
	opTable['y'] = func(vm *VM, p *pointer) {
		p.push(intValue(int64(p.id)))
	}

	// Chr
	opTable['c'] = func(vm *VM, p *pointer) {
		p.push(strValue(string([]byte{byte(p.popInt(vm))})))
	}

	// Ord
	opTable['a'] = func(vm *VM, p *pointer) {
		s := p.popStr(vm)
		if len(s) != 1 {
			vm.halt(badCharError(s))
		}
		p.push(intValue(int64(s[0])))
	}

	// In
	opTable['i'] = func(vm *VM, p *pointer) {
		b, err := vm.in.ReadByte()
		if err == io.EOF {
			p.push(strValue(""))
		} else if err != nil {
			vm.halt(err)
		} else {
			p.push(strValue(string([]byte{b})))
		}
	}

	// Out
	opTable['o'] = func(vm *VM, p *pointer) {
		s := p.popStr(vm)
		if _, err := io.WriteString(vm.out, s); err != nil {
			vm.halt(err)
		}
		if err := vm.out.Flush(); err != nil {
			vm.halt(err)
		}
	}

	// Die
	opTable[';'] = func(vm *VM, p *pointer) { p.alive = false }
}

// take removes the top cnt values from the current stack, returning them in
// their original bottom-to-top order. A non-positive count takes nothing.
func (p *pointer) take(vm *VM, cnt int64) stack {
	if cnt <= 0 {
		return stack{}
	}
	st := p.cur()
	if cnt > int64(len(*st)) {
		vm.halt(errStackUnderflow)
	}
	i := int64(len(*st)) - cnt
	taken := append(stack(nil), (*st)[i:]...)
	*st = (*st)[:i]
	return taken
}
