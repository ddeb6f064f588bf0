package dectree

import "strconv"

// Kind tags the value stored in a Result.
type Kind uint8

const (
	KindText Kind = iota
	KindInt
	KindReal
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Result is the outcome of an evaluation: a closed variant over text,
// integer, real and boolean values. A result never mixes kinds and is
// immutable once produced. Results are comparable, so callers (and tests)
// can just == them.
type Result struct {
	kind Kind
	text string
	num  int
	real float64
	flag bool
}

func Text(s string) Result  { return Result{kind: KindText, text: s} }
func Int(n int) Result      { return Result{kind: KindInt, num: n} }
func Real(f float64) Result { return Result{kind: KindReal, real: f} }
func Bool(b bool) Result    { return Result{kind: KindBool, flag: b} }

func (r Result) Kind() Kind { return r.kind }

// String renders the result for display and for the structural dump:
// text verbatim, numbers in plain decimal, booleans as true/false.
func (r Result) String() string {
	switch r.kind {
	case KindText:
		return r.text
	case KindInt:
		return strconv.Itoa(r.num)
	case KindReal:
		return strconv.FormatFloat(r.real, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(r.flag)
	default:
		return "unknown"
	}
}

// Sentinel results for "the tree did not resolve". These are normal,
// representable outcomes, not errors: a decision with its selected branch
// missing, a multi-branch with no match and no default, and an engine
// without a root each map to one of these.
var (
	NoResult = Text("NO_RESULT")
	NoMatch  = Text("NO_MATCH")
	NoRoot   = Text("NO_ROOT")
)
