/*
Package patmatch implements structural pattern matching as an expression.

A match starts from a subject value and evaluates an ordered list of cases.
Each case pairs a pattern with a handler. The result of the match is the
result of the handler of the first case whose pattern matches the subject;
later cases are not looked at. Patterns may capture parts of the subject,
which are handed to the handler as Bindings.

Two calling conventions exist. The incremental one supplies one case per
call, much like a chain of if-else clauses:

	msg, err := patmatch.Match[string](action).
	    When(pattern.Fields{"type": "ADD_ITEM", "payload": pattern.Fields{"id": "$i"}},
	        func(b patmatch.Bindings, _ any) string {
	            i, _ := b.Int("i")
	            return fmt.Sprintf("added %d", i)
	        }).
	    Else(patmatch.Value("unknown"))

The batch convention hands over all cases at once:

	msg, err := patmatch.Eval(action,
	    patmatch.With(pattern.Fields{"type": "RESET"}, "reset"),
	    patmatch.With(patmatch.Wildcard, "unknown"),
	)

Both produce identical results for identical cases.

Exhaustiveness

A session switched to exhaustive mode (Exhaustive must be called before any
case is supplied) reports an *ExhaustionError if no case matched and no
Wildcard or Default case was registered. Without exhaustive mode, a match
without a matching case yields the zero value of the result type.

Errors

Errors returned by handlers are passed through unmodified. Malformed
patterns (see pattern.Validate) are rejected when the case is registered.
Panics of guard predicates propagate to the caller.

Sessions are private, short-lived and not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmatch'.
func tracer() tracing.Trace {
	return tracing.Select("patmatch")
}
