package main

import "testing"

func TestOps_movement(t *testing.T) {
	potaTestCases{
		potaTest("arrows route the pointer").
			withProgram(
				`v    ;`,
				`>"U"o^`,
			).
			expectOutput("U"),

		potaTest("left arrow wraps around the row").
			withProgram(`<;o"Z"`).
			expectOutput("Z"),

		potaTest("up wraps around the column").
			withProgram(`^`, `;`, `o`, `"`, `B`, `"`).
			expectOutput("B"),

		potaTest("backslash mirror swaps direction").
			withProgram(`\`, `"`, `M`, `"`, `o`, `;`).
			expectOutput("M"),

		potaTest("slash mirror bounces upward").
			withProgram(`/`, `;`, `o`, `"`, `S`, `"`).
			expectOutput("S"),

		potaTest("pipe mirror reverses horizontally").
			withProgram(`|;o"P"`).
			expectOutput("P"),

		potaTest("underscore is a no-op going sideways").
			withProgram(`_"N"o;`).
			expectOutput("N"),

		potaTest("where pushes the position").
			withProgram(`w:o;`).
			expectOutput("00"),

		potaTest("where reflects movement").
			withProgram(` w:o;`).
			expectOutput("10"),

		potaTest("jump teleports and keeps direction").
			withProgram(
				`44j`,
				``,
				``,
				``,
				`     "J"o;`,
			).
			expectOutput("J"),

		potaTest("skip hops over one cell").
			withProgram(`1!+2o:o;`).
			expectOutput("21"),

		potaTest("conditional skip on truthy").
			withProgram(`1?23:o;`).
			expectOutput("3"),

		potaTest("conditional skip on falsy zero").
			withProgram(`0?23:o;`).
			expectOutput("23"),

		potaTest("only the string zero is falsy").
			withProgram(`"00"?23:o;`).
			expectOutput("3"),
	}.run(t)
}

func TestOps_arith(t *testing.T) {
	potaTestCases{
		potaTest("add").withProgram(`34+o;`).expectOutput("7"),
		potaTest("sub").withProgram(`39-o;`).expectOutput("-6"),
		potaTest("mul").withProgram(`35*o;`).expectOutput("15"),
		potaTest("divmod").
			withProgram(`%:o;`).
			withStack("-7", "2").
			expectOutput("-3-1"),
		potaTest("add then flatten").
			withProgram(`34+5:o;`).
			expectOutput("75"),
	}.run(t)
}

func TestOps_compare(t *testing.T) {
	potaTestCases{
		potaTest("string less").withProgram(`"a""b"(o;`).expectOutput("1"),
		potaTest("string not less").withProgram(`"b""a"(o;`).expectOutput("0"),
		potaTest("string greater").withProgram(`"b""a")o;`).expectOutput("1"),
		potaTest("int less").withProgram(`29[o;`).expectOutput("1"),
		potaTest("int not less").withProgram(`92[o;`).expectOutput("0"),
		potaTest("int greater").withProgram(`92]o;`).expectOutput("1"),
		potaTest("equality is textual").withProgram(`55=o;`).expectOutput("1"),
		potaTest("int and digit compare equal").withProgram(`23+5=o;`).expectOutput("1"),
		potaTest("inequality").withProgram(`45=o;`).expectOutput("0"),
		potaTest("lexicographic vs numeric order").
			withProgram(`"10""9"(o;`).
			expectOutput("1"),
		potaTest("numeric order disagrees").
			withProgram(`"10""9"[o;`).
			expectOutput("0"),
	}.run(t)
}

func TestOps_stack(t *testing.T) {
	potaTestCases{
		potaTest("duplicate").
			withProgram(`,:o;`).withStack("a", "b", "c").expectOutput("abcc"),
		potaTest("discard").
			withProgram(`~:o;`).withStack("a", "b", "c").expectOutput("ab"),
		potaTest("swap").
			withProgram(`$:o;`).withStack("a", "b", "c").expectOutput("acb"),
		potaTest("rotate left").
			withProgram(`{:o;`).withStack("a", "b", "c").expectOutput("bca"),
		potaTest("rotate right").
			withProgram(`}:o;`).withStack("a", "b", "c").expectOutput("cab"),
		potaTest("rotate on empty stack is a no-op").
			withProgram(`{}l:o;`).expectOutput("0"),
		potaTest("reverse").
			withProgram(`r:o;`).withStack("a", "b", "c").expectOutput("cba"),
		potaTest("reverse twice is identity").
			withProgram(`rr:o;`).withStack("a", "b", "c").expectOutput("abc"),
		potaTest("length").
			withProgram(`l:o;`).withStack("a", "b", "c").expectOutput("abc3"),
	}.run(t)
}

func TestOps_stackOfStacks(t *testing.T) {
	potaTestCases{
		potaTest("explode builds a char stack").
			withProgram(`"xyz"e:o;`).
			expectOutput("xyz"),

		potaTest("explode flatten merge reconstructs").
			withProgram(`"xyz"e:m:o;`).
			expectOutput("xyz"),

		potaTest("new stack takes the top values").
			withProgram(`2n:o;`).
			withStack("a", "b", "c").
			expectOutput("bc"),

		potaTest("new stack of zero is empty").
			withProgram(`0nl:o;`).
			withStack("a").
			expectOutput("0"),

		potaTest("merge on the last stack leaves one empty").
			withProgram(`ml:o;`).
			withStack("a", "b").
			expectOutput("0"),

		potaTest("duplicated stacks are independent").
			withProgram(`d:om:o;`).
			withStack("ab").
			expectOutput("abab"),
	}.run(t)
}

func TestOps_grid(t *testing.T) {
	potaTestCases{
		potaTest("put then get").
			withProgram(`"B"95p95go;`).
			expectOutput("B"),

		potaTest("get of an empty cell is a space").
			withProgram(`55go;`).
			expectOutput(" "),

		potaTest("put keeps only the first byte").
			withProgram(`"XY"55p55go;`).
			expectOutput("X"),
	}.run(t)
}

func TestOps_codec(t *testing.T) {
	potaTestCases{
		potaTest("ord").withProgram(`"A"ao;`).expectOutput("65"),
		potaTest("chr").withProgram(`"65"co;`).expectOutput("A"),
		potaTest("chr masks to a byte").withProgram(`"321"co;`).expectOutput("A"),
	}.run(t)
}

func TestOps_io(t *testing.T) {
	potaTestCases{
		potaTest("read two bytes").
			withProgram(`ii.o;`).
			withInput("AB").
			expectOutput("AB"),

		potaTest("read at EOF pushes the empty string").
			withProgram(`i""=o;`).
			expectOutput("1"),
	}.run(t)
}

func TestOps_exec(t *testing.T) {
	potaTestCases{
		potaTest("exec runs a string as code").
			withProgram("\"12+o\"`;").
			expectOutput("3"),

		potaTest("id of the first pointer").
			withProgram(`y:o;`).
			expectOutput("0"),
	}.run(t)
}

func TestOps_stringMode(t *testing.T) {
	potaTestCases{
		potaTest("single quotes").withProgram(`'ab'o;`).expectOutput("ab"),
		potaTest("double quote inside single").withProgram(`'a"b'o;`).expectOutput(`a"b`),
		potaTest("single quote inside double").withProgram(`"a'b"o;`).expectOutput("a'b"),
	}.run(t)
}
