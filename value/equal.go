package value

import (
	"math"
	"reflect"
)

// SameValue is the equality law of the matcher.
//
// Numbers of any Go kind are compared as float64, where NaN equals NaN and
// +0 differs from -0. Slices and maps are equal only if they are the very
// same object. Funcs are never equal. Every other value is equal to values
// of the identical dynamic type which compare equal with ==. Slices and
// maps held in interface fields of structs or arrays compare by identity
// as well, so SameValue never panics.
func SameValue(a, b any) bool {
	if x, ok := AsNumber(a); ok {
		y, ok := AsNumber(b)
		return ok && sameNumber(x, y)
	}
	if _, ok := AsNumber(b); ok {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Func:
		return false
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	return sameComparable(reflect.ValueOf(a), reflect.ValueOf(b))
}

// sameComparable is == for values of identical type, walking structs, arrays
// and interfaces instead of letting == panic on uncomparable dynamic values.
// It reads fields through the kind accessors, as Interface() is not allowed
// on unexported fields.
func sameComparable(va, vb reflect.Value) bool {
	switch va.Kind() {
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		ea, eb := va.Elem(), vb.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return sameComparable(ea, eb)
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !sameComparable(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < va.Len(); i++ {
			if !sameComparable(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return false
	case reflect.Bool:
		return va.Bool() == vb.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return va.Int() == vb.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return va.Uint() == vb.Uint()
	case reflect.Float32, reflect.Float64:
		return va.Float() == vb.Float()
	case reflect.Complex64, reflect.Complex128:
		return va.Complex() == vb.Complex()
	case reflect.String:
		return va.String() == vb.String()
	}
	return false
}

func sameNumber(x, y float64) bool {
	if math.IsNaN(x) {
		return math.IsNaN(y)
	}
	if x == 0 && y == 0 {
		return math.Signbit(x) == math.Signbit(y)
	}
	return x == y
}
