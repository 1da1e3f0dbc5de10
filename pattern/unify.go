package pattern

import (
	"github.com/npillmayer/patmatch/value"
)

// Matches unifies v with p, writing captures into env.
//
// The first applicable rule wins:
//
//	Wildcard, Default  → true, binds nothing
//	Guard              → result of the predicate; panics propagate
//	Literal            → value.SameValue
//	Text               → v is text and the matcher accepts it
//	Sequence           → positional, with optional rest capture
//	Record             → subset match over the pattern's fields
//	OneOf              → value.SameValue to any alternative
//	Capture            → true, binds v
//
// If Matches returns false, env may hold partial bindings. Callers use a
// fresh env for every attempt. p must be valid (see Validate).
func Matches(v any, p Pattern, env Env) bool {
	switch pat := p.(type) {
	case *sentinel:
		return true
	case *guard:
		return pat.pred(v)
	case *literal:
		return value.SameValue(v, pat.value)
	case *text:
		s, ok := value.AsText(v)
		return ok && pat.m.MatchString(s)
	case *sequence:
		return matchSequence(v, pat, env)
	case *record:
		return matchRecord(v, pat, env)
	case *oneOf:
		for _, alt := range pat.alternatives {
			if value.SameValue(v, alt) {
				return true
			}
		}
		return false
	case *capture:
		env.bind(pat.name, v)
		return true
	case *rest:
		assertThat(false, "rest capture %s outside of sequence", pat)
	}
	assertThat(false, "cannot match against pattern %v", p)
	return false
}

func matchSequence(v any, seq *sequence, env Env) bool {
	items, ok := value.AsSequence(v)
	if !ok {
		return false
	}
	if seq.rest < 0 {
		if len(items) != len(seq.items) {
			return false
		}
		return matchAll(items, seq.items, env)
	}
	before, after := seq.items[:seq.rest], seq.items[seq.rest+1:]
	if len(items) < len(before)+len(after) {
		return false
	}
	tail := len(items) - len(after)
	if !matchAll(items[:len(before)], before, env) {
		return false
	}
	if !matchAll(items[tail:], after, env) {
		return false
	}
	if name := seq.items[seq.rest].(*rest).name; name != "" {
		middle := make([]any, tail-len(before))
		copy(middle, items[len(before):tail])
		env.bind(name, middle)
	}
	return true
}

func matchAll(items []any, pats []Pattern, env Env) bool {
	for i, p := range pats {
		if !Matches(items[i], p, env) {
			return false
		}
	}
	return true
}

func matchRecord(v any, rec *record, env Env) bool {
	r, ok := value.AsRecord(v)
	if !ok {
		return false
	}
	for _, f := range rec.fields {
		switch pat := f.pat.(type) {
		case *capture:
			env.bind(pat.name, value.Field(r, f.key))
		case *sentinel:
		default:
			if !Matches(value.Field(r, f.key), pat, env) {
				return false
			}
		}
	}
	return true
}
