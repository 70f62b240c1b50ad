// Package panicerr converts panics into ordinary errors, so that a
// deliberate panic deep inside a call tree can serve as a non-local exit
// without leaking past the caller.
package panicerr

import (
	"fmt"
	"runtime/debug"
)

// Catch invokes f and returns its error. If f panics instead, the panic is
// recovered and returned as a *PanicError carrying the panic value and the
// stack at the panic site.
func Catch(name string, f func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Name: name, Value: v, Stack: debug.Stack()}
		}
	}()
	return f()
}

// PanicError is a panic recovered by Catch.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("%v panicked: %v", pe.Name, pe.Value)
}

// Unwrap exposes the panic value when it was itself an error, so that
// errors.Is and errors.As can see through the recovery.
func (pe *PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}
