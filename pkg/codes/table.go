// Package codes holds the closed tables that map wire codes to domain
// enums. Codes missing from a table are rejected, never defaulted.
package codes

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

type Code interface {
	~int8 | ~uint8 | ~uint16 | ~string
}

// Table is an immutable mapping for one coded field.
type Table[K Code, V any] struct {
	field string
	m     map[K]V
}

func NewTable[K Code, V any](field string, m map[K]V) Table[K, V] {
	return Table[K, V]{field: field, m: maps.Clone(m)}
}

// Sequence builds a table for codes 0..len(values)-1
func Sequence[K ~int8 | ~uint8, V any](field string, values ...V) Table[K, V] {
	m := make(map[K]V, len(values))
	for i, v := range values {
		m[K(i)] = v
	}
	return Table[K, V]{field: field, m: m}
}

func (t Table[K, V]) Decode(code K) (V, error) {
	if v, ok := t.m[code]; ok {
		return v, nil
	}
	var zero V
	return zero, &model.InvalidCodeError{Field: t.field, Code: fmt.Sprint(code)}
}

func (t Table[K, V]) Field() string { return t.field }
func (t Table[K, V]) Len() int      { return len(t.m) }

func (t Table[K, V]) Contains(code K) bool {
	_, ok := t.m[code]
	return ok
}

// Codes returns the known codes in ascending order
func (t Table[K, V]) Codes() []K {
	return slices.SortedFunc(maps.Keys(t.m), cmp.Compare[K])
}

// With returns a copy of the table with additional (or replaced) entries.
func (t Table[K, V]) With(add map[K]V) Table[K, V] {
	return Table[K, V]{field: t.field, m: lo.Assign(t.m, add)}
}

// Without returns a copy of the table without the given codes.
func (t Table[K, V]) Without(codes ...K) Table[K, V] {
	return Table[K, V]{field: t.field, m: lo.OmitByKeys(t.m, codes)}
}
