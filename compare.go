// Package bst file: compare.go
package bst

import (
	"cmp"
	"reflect"
)

// CompareFunc reports a negative number when a < b, zero when a == b and a
// positive number when a > b.
type CompareFunc[T any] func(a, b T) int

func isOrderedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

// compareDynamic orders two values of the same ordered dynamic type. The
// tree checks the type tag before any comparison, so a and b always share
// a kind here.
func compareDynamic(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		return cmp.Compare(va.String(), vb.String())
	}
	panic("bst: compare on unordered kind " + va.Kind().String())
}
