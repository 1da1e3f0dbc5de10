/*
Package pattern implements structural patterns and the unifier which
matches them against values.

Patterns are structured values, built with the constructors of this
package or converted from plain Go values by Of:

	pattern.Record(pattern.Fields{
	    "type":    "ADD_ITEM",
	    "payload": pattern.Fields{"id": "$i"},
	})

matches any record carrying a key "type" with text "ADD_ITEM" and a
record-valued "payload", binding the payload's "id" under the name "i".

Matches(value, pattern, env) is the unifier. It walks pattern and value
in parallel, comparing scalars with value.SameValue, invoking guards,
and writing captures into env. Sequences match positionally and need
equal lengths, unless a rest capture absorbs the surplus. Records match
as subsets: keys the pattern does not mention are ignored.

Wildcard and Default are interchangeable singletons which match
anything. They are compared by identity, never structurally, so no user
value can be mistaken for them.

Patterns are validated with Validate before use. A pattern is malformed
if a capture name occurs twice, if a sequence holds more than one rest
capture, or if a rest capture appears outside a sequence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmatch.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("patmatch.pattern")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("patmatch.pattern: "+msg, msgargs...)
		panic(msg)
	}
}
