// Package hamlet is a tiny "to be, or not to be" assertion helper for tests.
//
//	must_be, wont_be := hamlet.Specifications(t)
//	must_be.Equal(42, answer)
//	wont_be.Nil(err)
package hamlet

import (
	"reflect"
	"strings"
	"testing"
)

type Hamlet interface {
	Equal(expected, actual interface{})
	True(actual bool)
	Nil(actual interface{})
	Text(expected string, actual interface{})
	Contains(haystack, needle string)
	Length(expected int, actual interface{})
}

type specification struct {
	t      *testing.T
	negate bool
}

func Specifications(t *testing.T) (Hamlet, Hamlet) {
	return &specification{t: t}, &specification{t: t, negate: true}
}

func (it *specification) verdict(outcome bool) bool {
	if it.negate {
		return !outcome
	}
	return outcome
}

func (it *specification) expectation() string {
	if it.negate {
		return "wont be"
	}
	return "must be"
}

func (it *specification) Equal(expected, actual interface{}) {
	it.t.Helper()
	if !it.verdict(reflect.DeepEqual(expected, actual)) {
		it.t.Errorf("%s equal: expected %#v, actual %#v", it.expectation(), expected, actual)
	}
}

func (it *specification) True(actual bool) {
	it.t.Helper()
	if !it.verdict(actual) {
		it.t.Errorf("%s true, but was %v", it.expectation(), actual)
	}
}

func (it *specification) Nil(actual interface{}) {
	it.t.Helper()
	if !it.verdict(isNil(actual)) {
		it.t.Errorf("%s nil, actual %#v", it.expectation(), actual)
	}
}

func (it *specification) Text(expected string, actual interface{}) {
	it.t.Helper()
	text, ok := actual.(string)
	if !ok {
		if stringer, isStringer := actual.(interface{ String() string }); isStringer {
			text, ok = stringer.String(), true
		}
	}
	if !it.verdict(ok && text == expected) {
		it.t.Errorf("%s text %q, actual %#v", it.expectation(), expected, actual)
	}
}

func (it *specification) Contains(haystack, needle string) {
	it.t.Helper()
	if !it.verdict(strings.Contains(haystack, needle)) {
		it.t.Errorf("%s containing %q in %q", it.expectation(), needle, haystack)
	}
}

func (it *specification) Length(expected int, actual interface{}) {
	it.t.Helper()
	value := reflect.ValueOf(actual)
	size := -1
	switch value.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		size = value.Len()
	}
	if !it.verdict(size == expected) {
		it.t.Errorf("%s length %d, actual length %d", it.expectation(), expected, size)
	}
}

func isNil(actual interface{}) bool {
	if actual == nil {
		return true
	}
	value := reflect.ValueOf(actual)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return value.IsNil()
	}
	return false
}
