package pattern

import (
	"math"

	"github.com/npillmayer/patmatch/maybe"
	"github.com/npillmayer/patmatch/value"
)

// Env holds the captures of a single match attempt, keyed by capture name.
// Captures of nested sub-patterns share one flat Env.
type Env map[string]any

// NewEnv creates an empty environment.
func NewEnv() Env {
	return make(Env)
}

func (env Env) bind(name string, v any) {
	env[name] = v
}

// Get returns the value bound to name, or value.Undefined.
func (env Env) Get(name string) any {
	if v, ok := env[name]; ok {
		return v
	}
	return value.Undefined
}

// Lookup returns the value bound to name, if any. A capture bound to a
// missing record key is present, holding value.Undefined.
func (env Env) Lookup(name string) maybe.Maybe[any] {
	v, ok := env[name]
	return maybe.From(v, ok)
}

// Has is true if name has been bound.
func (env Env) Has(name string) bool {
	_, ok := env[name]
	return ok
}

// Text returns the text bound to name.
func (env Env) Text(name string) (string, bool) {
	return value.AsText(env.Get(name))
}

// Number returns the number bound to name, as float64.
func (env Env) Number(name string) (float64, bool) {
	return value.AsNumber(env.Get(name))
}

// Int returns the number bound to name, truncated to int. NaN, infinities
// and numbers outside the range of int are not ints.
func (env Env) Int(name string) (int, bool) {
	n, ok := value.AsNumber(env.Get(name))
	if !ok || math.IsNaN(n) || n < math.MinInt || n >= -math.MinInt {
		return 0, false
	}
	return int(n), true
}

// Sequence returns the sequence bound to name, e.g. by a rest capture.
func (env Env) Sequence(name string) ([]any, bool) {
	return value.AsSequence(env.Get(name))
}

// Record returns the record bound to name.
func (env Env) Record(name string) (value.Record, bool) {
	return value.AsRecord(env.Get(name))
}
