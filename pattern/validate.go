package pattern

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// ErrMalformedPattern is returned by Validate for patterns which cannot be
// matched unambiguously.
var ErrMalformedPattern = errors.New("malformed pattern")

// Validate checks p for structural errors:
//
//   - a capture name bound more than once, counting rest captures
//   - more than one rest capture in a sequence
//   - a rest capture outside of a sequence
//   - an empty capture name
//   - a nil pattern, guard predicate or text matcher
//
// Errors wrap ErrMalformedPattern.
func Validate(p Pattern) error {
	v := validator{names: make(map[string]bool)}
	if err := v.check(p, false); err != nil {
		if tracer().GetTraceLevel() >= tracing.LevelDebug {
			tracer().Debugf("invalid pattern %s: %v\n%s", str(p), err, Dump(p))
		}
		return err
	}
	return nil
}

type validator struct {
	names map[string]bool
}

func (v validator) check(p Pattern, inSequence bool) error {
	switch pat := p.(type) {
	case nil:
		return malformed("nil pattern")
	case *sentinel, *literal, *oneOf:
		return nil
	case *capture:
		if pat.name == "" {
			return malformed("empty capture name")
		}
		return v.bind(pat.name)
	case *rest:
		if !inSequence {
			return malformed("rest capture %s outside of sequence", pat)
		}
		if pat.name == "" {
			return nil
		}
		return v.bind(pat.name)
	case *guard:
		if pat.pred == nil {
			return malformed("guard without predicate")
		}
		return nil
	case *text:
		if pat.m == nil {
			return malformed("text pattern without matcher")
		}
		return nil
	case *sequence:
		rests := 0
		for _, item := range pat.items {
			if _, ok := item.(*rest); ok {
				rests++
			}
			if err := v.check(item, true); err != nil {
				return err
			}
		}
		if rests > 1 {
			return malformed("%d rest captures in sequence %s", rests, pat)
		}
		return nil
	case *record:
		for _, f := range pat.fields {
			if err := v.check(f.pat, false); err != nil {
				return err
			}
		}
		return nil
	}
	return malformed("unknown pattern type %T", p)
}

func (v validator) bind(name string) error {
	if v.names[name] {
		return malformed("capture name %q bound twice", name)
	}
	v.names[name] = true
	return nil
}

func malformed(msg string, args ...interface{}) error {
	return fmt.Errorf("%w: "+msg, append([]interface{}{ErrMalformedPattern}, args...)...)
}
