package pattern

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/patmatch/pred"
	"github.com/npillmayer/patmatch/value"
)

// Pattern is a structural description a value may or may not satisfy.
//
// The set of patterns is closed; patterns are created by the constructors
// of this package.
type Pattern interface {
	fmt.Stringer
	isPattern()
}

// CaptureSigil marks text as a capture when converting plain values with
// Of, e.g. "$name".
const CaptureSigil = '$'

// --- Sentinels -------------------------------------------------------------

type sentinel struct {
	name string
}

func (s *sentinel) isPattern()     {}
func (s *sentinel) String() string { return s.name }

// Wildcard matches anything and binds nothing.
var Wildcard Pattern = &sentinel{name: "_"}

// Default is interchangeable with Wildcard. Both mark a case as a fallback
// for exhaustiveness.
var Default Pattern = &sentinel{name: "default"}

// IsSentinel is true for Wildcard and Default.
func IsSentinel(p Pattern) bool {
	return p == Wildcard || p == Default
}

// --- Scalars ---------------------------------------------------------------

type literal struct {
	value any
}

// Literal matches values which are value.SameValue-equal to v.
func Literal(v any) Pattern {
	return &literal{value: v}
}

func (l *literal) isPattern() {}
func (l *literal) String() string {
	return formatValue(l.value)
}

type capture struct {
	name string
}

// Capture matches anything and binds the value under name.
func Capture(name string) Pattern {
	return &capture{name: name}
}

func (c *capture) isPattern()     {}
func (c *capture) String() string { return string(CaptureSigil) + c.name }

type rest struct {
	name string
}

// Rest binds the contiguous part of a sequence which is not matched by the
// other items of the sequence pattern. It is valid inside Sequence only.
// An empty name matches without binding.
func Rest(name string) Pattern {
	return &rest{name: name}
}

func (r *rest) isPattern()     {}
func (r *rest) String() string { return "..." + string(CaptureSigil) + r.name }

type guard struct {
	pred pred.Predicate
}

// Guard matches values for which p is true. p receives the candidate value
// only, never the bindings.
func Guard(p pred.Predicate) Pattern {
	return &guard{pred: p}
}

func (g *guard) isPattern()     {}
func (g *guard) String() string { return "guard" }

type text struct {
	m pred.TextMatcher
}

// Text matches text accepted by m, e.g. a *regexp.Regexp.
func Text(m pred.TextMatcher) Pattern {
	return &text{m: m}
}

func (t *text) isPattern() {}
func (t *text) String() string {
	if s, ok := t.m.(fmt.Stringer); ok {
		return "/" + s.String() + "/"
	}
	return "text"
}

type oneOf struct {
	alternatives []any
}

// OneOf matches values which are value.SameValue-equal to any of
// alternatives.
func OneOf(alternatives ...any) Pattern {
	return &oneOf{alternatives: alternatives}
}

func (o *oneOf) isPattern() {}
func (o *oneOf) String() string {
	alts := make([]string, len(o.alternatives))
	for i, a := range o.alternatives {
		alts[i] = formatValue(a)
	}
	return "oneOf(" + strings.Join(alts, ", ") + ")"
}

// --- Structures ------------------------------------------------------------

type sequence struct {
	items []Pattern
	rest  int // index of the first rest item, or -1
}

// Sequence matches sequences positionally. items are converted with Of;
// text items starting with CaptureSigil become captures.
func Sequence(items ...any) Pattern {
	seq := &sequence{items: make([]Pattern, len(items)), rest: -1}
	for i, item := range items {
		seq.items[i] = of(item, true)
		if _, ok := seq.items[i].(*rest); ok && seq.rest < 0 {
			seq.rest = i
		}
	}
	return seq
}

func (s *sequence) isPattern() {}
func (s *sequence) String() string {
	items := make([]string, len(s.items))
	for i, item := range s.items {
		items[i] = str(item)
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// Fields describes the fields of a record pattern. Field values are
// converted with Of; text values starting with CaptureSigil become
// captures.
type Fields map[string]any

type field struct {
	key string
	pat Pattern
}

type record struct {
	fields []field // sorted by key
}

// Record matches records carrying at least the given fields.
func Record(fields Fields) Pattern {
	rec := &record{fields: make([]field, 0, len(fields))}
	for k, f := range fields {
		rec.fields = append(rec.fields, field{key: k, pat: of(f, true)})
	}
	sort.Slice(rec.fields, func(i, j int) bool {
		return rec.fields[i].key < rec.fields[j].key
	})
	return rec
}

func (r *record) isPattern() {}
func (r *record) String() string {
	fields := make([]string, len(r.fields))
	for i, f := range r.fields {
		fields[i] = f.key + ": " + str(f.pat)
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// --- Conversion ------------------------------------------------------------

// Of converts a plain Go value into a pattern:
//
//	Pattern                  → unchanged
//	pred.Predicate           → Guard
//	func(any) bool           → Guard
//	pred.TextMatcher         → Text (e.g. *regexp.Regexp)
//	[]any                    → Sequence, always positional
//	Fields, map[string]any   → Record
//	anything else            → Literal
//
// Inside sequences and records, text of the form "$name" becomes
// Capture("name"). Use Literal to match such text verbatim.
func Of(x any) Pattern {
	return of(x, false)
}

func of(x any, nested bool) Pattern {
	switch p := x.(type) {
	case Pattern:
		return p
	case pred.Predicate:
		return Guard(p)
	case func(any) bool:
		return Guard(p)
	case pred.TextMatcher:
		return Text(p)
	case []any:
		return Sequence(p...)
	case Fields:
		return Record(p)
	case map[string]any:
		return Record(Fields(p))
	case string:
		if nested && len(p) > 1 && p[0] == CaptureSigil {
			return Capture(p[1:])
		}
	}
	return Literal(x)
}

// --- Formatting ------------------------------------------------------------

func str(p Pattern) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}

func formatValue(v any) string {
	switch value.KindOf(v) {
	case value.KindNull:
		return "null"
	case value.KindUndefined:
		return "undefined"
	case value.KindText:
		s, _ := value.AsText(v)
		return strconv.Quote(s)
	case value.KindFunc:
		return "func"
	}
	return fmt.Sprintf("%v", v)
}
