// Package xslices provides generic slice helpers missing from the standard
// library's slices package, plus a generic comma-separated slice flag.
package xslices

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number represents the number types that can be used by the helpers in this
// package that do arithmetic on their elements.
type Number interface {
	constraints.Integer | constraints.Float
}

// Iota returns a slice of the given length with incremental values, starting with start:
// `{start, start+1, ..., start+len-1}`.
func Iota[T Number](start T, len int) (slice []T) {
	slice = make([]T, len)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// SliceWithValue returns a newly allocated slice of the given length, with all
// elements set to value.
func SliceWithValue[T any](len int, value T) (slice []T) {
	slice = make([]T, len)
	for ii := range slice {
		slice[ii] = value
	}
	return
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// At returns the element of the slice at the given position. Negative positions
// are taken from the end: At(slice, -1) is the last element.
//
// It panics if the position, after handling negatives, is out-of-range.
func At[T any](slice []T, pos int) T {
	if pos < 0 {
		pos = len(slice) + pos
	}
	return slice[pos]
}

// Last returns the last element of the slice.
func Last[T any](slice []T) T {
	return At(slice, -1)
}

// Pop removes the last element of the slice and returns it along with the
// shortened slice.
func Pop[T any](slice []T) (elem T, popped []T) {
	elem = Last(slice)
	popped = slice[:len(slice)-1]
	return
}

// Flag defines a flag with the given name whose value is a comma-separated
// list of elements of type T, each parsed by parserFn. It returns a pointer
// to the parsed slice, initialized with defaultValue.
//
// Elements that implement fmt.Stringer are used to render the default value
// shown in the flag usage, otherwise they are formatted with `%v`.
func Flag[T any](name string, defaultValue []T, usage string, parserFn func(valueStr string) (T, error)) *[]T {
	values := slices.Clone(defaultValue)
	flag.Var(&sliceFlag[T]{values: &values, parserFn: parserFn}, name, usage)
	return &values
}

// sliceFlag implements flag.Value for a comma-separated list of T.
type sliceFlag[T any] struct {
	values   *[]T
	parserFn func(valueStr string) (T, error)
}

func (f *sliceFlag[T]) String() string {
	if f == nil || f.values == nil {
		return ""
	}
	parts := make([]string, 0, len(*f.values))
	for _, value := range *f.values {
		if stringer, ok := any(value).(fmt.Stringer); ok {
			parts = append(parts, stringer.String())
		} else {
			parts = append(parts, fmt.Sprintf("%v", value))
		}
	}
	return strings.Join(parts, ",")
}

func (f *sliceFlag[T]) Set(settings string) error {
	newValues := make([]T, 0, len(*f.values))
	for _, valueStr := range strings.Split(settings, ",") {
		value, err := f.parserFn(valueStr)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %q as element for flag", valueStr)
		}
		newValues = append(newValues, value)
	}
	*f.values = newValues
	return nil
}
