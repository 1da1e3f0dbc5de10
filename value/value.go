package value

import (
	"reflect"
	"sort"
)

// Kind is the coarse classification of a value.
type Kind int8

// Kinds of values, as seen by the matcher.
const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindText
	KindSymbol
	KindSequence
	KindRecord
	KindFunc
	KindOther
)

var kindNames = [...]string{
	"undefined", "null", "bool", "number", "text", "symbol",
	"sequence", "record", "func", "other",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<invalid kind>"
	}
	return kindNames[k]
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the absence marker for missing record keys. It is distinct
// from nil, which represents an explicit null.
var Undefined any = undefined{}

// IsUndefined is true for the Undefined marker only.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Record is implemented by types which want to be matched like keyed
// records, without being a Go map.
type Record interface {
	Field(key string) (any, bool)
	Keys() []string
}

// KindOf classifies v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case bool:
		return KindBool
	case string:
		return KindText
	case *Symbol:
		return KindSymbol
	case []any:
		return KindSequence
	case map[string]any, Record:
		return KindRecord
	}
	if _, ok := AsNumber(v); ok {
		return KindNumber
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindText
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindRecord
		}
	case reflect.Func:
		return KindFunc
	}
	return KindOther
}

// AsNumber converts any Go numeric value to float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uintptr:
		return float64(n), true
	case nil, bool, string:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// AsText returns the string content of v, if v is text.
func AsText(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// AsBool returns the truth value of v, if v is a boolean.
func AsBool(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

// AsSequence returns the elements of a sequence value. []any is returned
// as is; other slices and arrays are copied into a fresh []any.
func AsSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	s := make([]any, rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}

// AsRecord returns a Record view of v, if v is keyed by strings.
func AsRecord(v any) (Record, bool) {
	switch r := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return mapRecord(r), true
	case Record:
		return r, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return reflectRecord{rv}, true
	}
	return nil, false
}

// Field returns rec[key], or Undefined if rec does not carry key.
func Field(rec Record, key string) any {
	if rec == nil {
		return Undefined
	}
	if x, ok := rec.Field(key); ok {
		return x
	}
	return Undefined
}

// --- Record adapters -------------------------------------------------------

type mapRecord map[string]any

func (m mapRecord) Field(key string) (any, bool) {
	x, ok := m[key]
	return x, ok
}

func (m mapRecord) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type reflectRecord struct {
	m reflect.Value
}

func (r reflectRecord) Field(key string) (any, bool) {
	k := reflect.ValueOf(key).Convert(r.m.Type().Key())
	x := r.m.MapIndex(k)
	if !x.IsValid() {
		return nil, false
	}
	return x.Interface(), true
}

func (r reflectRecord) Keys() []string {
	keys := make([]string, 0, r.m.Len())
	for _, k := range r.m.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}
