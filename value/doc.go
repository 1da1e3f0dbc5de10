/*
Package value classifies the Go values a pattern match may inspect.

Subjects of a match are plain Go values. This package sorts them into a
small set of kinds (absence markers, booleans, numbers, text, symbols,
sequences, records and callables) and provides the one equality law the
matcher relies on: SameValue. Numbers of every Go numeric kind compare as
IEEE-754 doubles, NaN equals itself and positive and negative zero are
distinct.

Two absence markers exist: Go's nil, which stands for an explicit null,
and Undefined, which is what a record yields for a key it does not carry.

Besides classification, the package renders values for diagnostics
(Serialize) and decodes JSON and YAML documents into subject trees
(FromJSON, FromYAML), so documents from the outside world can be matched
without further conversion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value
