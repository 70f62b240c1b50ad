package main

import "strconv"

// A value is one stack cell: semantically untyped, it holds either an
// integer or a string and converts at the point of use. Conversions are
// recomputed on demand; values copy freely and copies are independent.
type value struct {
	num   int64
	str   string
	isStr bool
}

func intValue(n int64) value  { return value{num: n} }
func strValue(s string) value { return value{str: s, isStr: true} }

func boolValue(b bool) value {
	if b {
		return intValue(1)
	}
	return intValue(0)
}

// toInt reads the value as a signed 64-bit decimal.
func (v value) toInt() (int64, error) {
	if !v.isStr {
		return v.num, nil
	}
	n, err := strconv.ParseInt(v.str, 10, 64)
	if err != nil {
		return 0, badNumberError(v.str)
	}
	return n, nil
}

func (v value) String() string { return v.toStr() }

// toStr reads the value as a string, rendering integers in canonical
// base-10 form.
func (v value) toStr() string {
	if v.isStr {
		return v.str
	}
	return strconv.FormatInt(v.num, 10)
}
