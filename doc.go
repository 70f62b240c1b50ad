/*
Pota is a two-dimensional, concurrent, stack-based esoteric language.

A program is a grid of single-byte cells. One or more pointers walk the grid
in cardinal directions, each executing the cell under it against its own
stack of stacks. The grid behaves like a ragged torus: walking off an edge
wraps to the far side of the occupied row or column. Cells can be read and
rewritten at runtime with g and p, so programs are free to modify themselves.

Values on a stack are untyped: the same cell is a number to + and a string
to . , converting at the point of use. A pointer carries a whole stack of
stacks; e, n, m and d shuffle entire stacks around, while the usual
duplicate/swap/rotate operators work on the current one.

Pointers multiply: & forks a new pointer that inherits the top of the
current stack and starts one cell ahead. Each pointer has an id and a
message queue; @ sends a value to another pointer by id, and # blocks until
a message arrives. Scheduling is cooperative and deterministic: pointers run
in id order, each until it either dies (;) or parks on an empty #.

The interpreter reads a script, optionally seeds pointer 0's stack from the
command line (-s), and runs until every pointer has died:

	pota script.pota -s 3 4

While running, stdin is switched out of canonical echo mode so that i
returns one byte per keypress; o writes bytes straight to stdout.
*/
package main
