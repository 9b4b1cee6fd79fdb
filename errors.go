// Package bst file: errors.go
package bst

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrTypeMismatch = errors.New("type mismatch")
var ErrDuplicateKey = errors.New("duplicate key on unique index")

func typeMismatch(want, got reflect.Type) error {
	return fmt.Errorf("%w: tree holds %s, got %s", ErrTypeMismatch, typeName(want), typeName(got))
}

func unorderedType(got reflect.Type) error {
	return fmt.Errorf("%w: %s is not an ordered type", ErrTypeMismatch, typeName(got))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
