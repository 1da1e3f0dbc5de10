/*
Package pred provides guard predicates for pattern matching.

A predicate inspects a candidate value and answers true or false. Wrapped
into a guard pattern, a predicate takes part in a match like any other
pattern, but is invoked rather than compared structurally.

The helpers in this package cover the common cases: disjunction over a set
of values (OneOf), inclusive numeric ranges (Range), text tests delegated
to a compiled matcher (Matching, Regexp), kind tests and boolean
combinators.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pred
