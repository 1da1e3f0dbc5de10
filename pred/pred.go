package pred

import (
	"math"
	"regexp"

	"github.com/npillmayer/patmatch/value"
)

// Predicate is a test on a candidate value.
type Predicate func(v any) bool

// TextMatcher is a compiled text test. *regexp.Regexp implements it.
type TextMatcher interface {
	MatchString(s string) bool
}

// OneOf is true if the candidate is SameValue-equal to any of values.
func OneOf(values ...any) Predicate {
	return func(v any) bool {
		for _, x := range values {
			if value.SameValue(v, x) {
				return true
			}
		}
		return false
	}
}

// Range is true for numbers n with lo <= n <= hi. Use math.Inf for an
// open end.
func Range(lo, hi float64) Predicate {
	return func(v any) bool {
		n, ok := value.AsNumber(v)
		return ok && lo <= n && n <= hi
	}
}

// AtLeast is Range(lo, +Inf).
func AtLeast(lo float64) Predicate {
	return Range(lo, math.Inf(1))
}

// AtMost is Range(-Inf, hi).
func AtMost(hi float64) Predicate {
	return Range(math.Inf(-1), hi)
}

// Matching is true for text accepted by m. Non-text never matches.
func Matching(m TextMatcher) Predicate {
	return func(v any) bool {
		s, ok := value.AsText(v)
		return ok && m.MatchString(s)
	}
}

// Regexp compiles expr and returns Matching for it. It panics if expr is
// not a valid regular expression.
func Regexp(expr string) Predicate {
	return Matching(regexp.MustCompile(expr))
}

// --- Kind tests ------------------------------------------------------------

// IsKind is true for values of kind k.
func IsKind(k value.Kind) Predicate {
	return func(v any) bool {
		return value.KindOf(v) == k
	}
}

// Kind tests for the common kinds.
var (
	IsBool     = IsKind(value.KindBool)
	IsNumber   = IsKind(value.KindNumber)
	IsText     = IsKind(value.KindText)
	IsSymbol   = IsKind(value.KindSymbol)
	IsSequence = IsKind(value.KindSequence)
	IsRecord   = IsKind(value.KindRecord)
)

// IsNull is true for both absence markers, nil and value.Undefined.
func IsNull(v any) bool {
	k := value.KindOf(v)
	return k == value.KindNull || k == value.KindUndefined
}

// --- Combinators -----------------------------------------------------------

// Not negates p.
func Not(p Predicate) Predicate {
	return func(v any) bool {
		return !p(v)
	}
}

// And is true if all of ps are. Evaluation stops at the first false.
func And(ps ...Predicate) Predicate {
	return func(v any) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or is true if any of ps is. Evaluation stops at the first true.
func Or(ps ...Predicate) Predicate {
	return func(v any) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}
