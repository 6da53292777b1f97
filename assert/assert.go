package assert

import (
	"fmt"
	"reflect"

	testify "github.com/stretchr/testify/assert"
)

// Equals fails the test unless actual and expected are equal. No conversion is done between
// types, so int(1) and int64(1) are different.
func Equals(actual, expected interface{}) {
	raise(testify.ObjectsAreEqual(expected, actual),
		"The objects are different and should be equal, %v is not %v", actual, expected)
}

// NotEquals fails the test if actual and expected are equal.
func NotEquals(actual, expected interface{}) {
	raise(!testify.ObjectsAreEqual(expected, actual),
		"The objects are equal and should be different, %v equals %v", actual, expected)
}

func True(value bool) {
	raise(value, "The input should be true and is false")
}

func False(value bool) {
	raise(!value, "The input should be false and is true")
}

// Null fails the test unless value is nil, or is a nil pointer, map, slice, channel, function
// or interface.
func Null(value interface{}) {
	raise(isNil(value), "The object should be null, but is %v", value)
}

func NotNull(value interface{}) {
	raise(!isNil(value), "The object is null and should not be")
}

// Undefined fails the test unless value carries no type at all, which is only the case for an
// untyped nil. A typed nil pointer is Null but is not Undefined.
func Undefined(value interface{}) {
	raise(value == nil, "The object should be undefined, but is %v", describe(value))
}

// Fail fails the test unconditionally.
func Fail(message string) {
	raise(false, "%s", message)
}

// Failf is like Fail but takes a format string.
func Failf(format string, args ...interface{}) {
	raise(false, format, args...)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func describe(value interface{}) string {
	if value != nil && isNil(value) {
		return fmt.Sprintf("%T(nil)", value)
	}
	return fmt.Sprintf("%v", value)
}
