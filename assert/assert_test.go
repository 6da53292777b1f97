package assert_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/launchdarkly/suite-runner/assert"

	"github.com/launchdarkly/go-test-helpers/v2/testbox"
	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catchFailure(action func()) (f *assert.Failure) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			f, ok = assert.AsFailure(r)
			if !ok {
				panic(r)
			}
		}
	}()
	action()
	return nil
}

func requireFailure(t *testing.T, expectedMessage string, action func()) *assert.Failure {
	f := catchFailure(action)
	require.NotNil(t, f, "expected assertion to fail")
	testify.Equal(t, expectedMessage, f.Message)
	return f
}

func requirePass(t *testing.T, action func()) {
	f := catchFailure(action)
	if f != nil {
		require.Fail(t, "expected assertion to pass", f.Message)
	}
}

func TestEquals(t *testing.T) {
	requirePass(t, func() { assert.Equals(1+1, 2) })
	requirePass(t, func() { assert.Equals("a", "a") })
	requirePass(t, func() { assert.Equals(nil, nil) })
	requireFailure(t, "The objects are different and should be equal, 0 is not 1",
		func() { assert.Equals(2-2, 1) })
}

func TestEqualsDoesNotConvertTypes(t *testing.T) {
	requireFailure(t, "The objects are different and should be equal, 1 is not 1",
		func() { assert.Equals(int64(1), 1) })
	requireFailure(t, "The objects are different and should be equal, 1 is not 1",
		func() { assert.Equals("1", 1) })
}

func TestNotEquals(t *testing.T) {
	requirePass(t, func() { assert.NotEquals(1, 2) })
	requireFailure(t, "The objects are equal and should be different, x equals x",
		func() { assert.NotEquals("x", "x") })
}

func TestTrueAndFalse(t *testing.T) {
	requirePass(t, func() { assert.True(true) })
	requirePass(t, func() { assert.False(false) })
	requireFailure(t, "The input should be true and is false", func() { assert.True(false) })
	requireFailure(t, "The input should be false and is true", func() { assert.False(true) })
}

func TestNullAndNotNull(t *testing.T) {
	var p *int
	var m map[string]int
	requirePass(t, func() { assert.Null(nil) })
	requirePass(t, func() { assert.Null(p) })
	requirePass(t, func() { assert.Null(m) })
	requireFailure(t, "The object should be null, but is 3", func() { assert.Null(3) })

	requirePass(t, func() { assert.NotNull(0) })
	requirePass(t, func() { assert.NotNull("") })
	requireFailure(t, "The object is null and should not be", func() { assert.NotNull(p) })
}

func TestUndefined(t *testing.T) {
	var p *int
	requirePass(t, func() { assert.Undefined(nil) })
	requireFailure(t, "The object should be undefined, but is *int(nil)", func() { assert.Undefined(p) })
	requireFailure(t, "The object should be undefined, but is 0", func() { assert.Undefined(0) })
}

func TestFail(t *testing.T) {
	requireFailure(t, "not implemented", func() { assert.Fail("not implemented") })
	requireFailure(t, "got 3 items", func() { assert.Failf("got %d items", 3) })
}

func TestFailureTraceStartsOutsideAssertPackage(t *testing.T) {
	f := requireFailure(t, "The input should be true and is false", func() { assert.True(false) })
	require.NotEmpty(t, f.Trace)
	testify.Equal(t, "_anonymous_", f.Trace[0].DisplayName())
	testify.True(t, strings.HasPrefix(f.Trace[0].Location, "assert_test.go:"))
	for _, frame := range f.Trace {
		testify.NotContains(t, frame.Function, "suite-runner/assert.")
	}
}

func TestAsFailure(t *testing.T) {
	f := assert.NewFailure("bad")
	got, ok := assert.AsFailure(f)
	testify.True(t, ok)
	testify.Same(t, f, got)

	got, ok = assert.AsFailure(fmt.Errorf("wrapped: %w", f))
	testify.True(t, ok)
	testify.Same(t, f, got)

	_, ok = assert.AsFailure(errors.New("other"))
	testify.False(t, ok)
	_, ok = assert.AsFailure("a string")
	testify.False(t, ok)
}

func TestAsFailureRejectsNilFailure(t *testing.T) {
	var nilFailure *assert.Failure
	got, ok := assert.AsFailure(nilFailure)
	testify.False(t, ok)
	testify.Nil(t, got)

	got, ok = assert.AsFailure(fmt.Errorf("wrapped: %w", nilFailure))
	testify.False(t, ok)
	testify.Nil(t, got)
}

func TestTestingTAdapter(t *testing.T) {
	requirePass(t, func() { require.Equal(assert.T(), 2, 1+1) })

	f := catchFailure(func() { require.Equal(assert.T(), 2, 3) })
	require.NotNil(t, f)
	testify.Contains(t, f.Message, "Not equal")

	f = catchFailure(func() { testify.True(assert.T(), false, "flag was off") })
	require.NotNil(t, f)
	testify.Contains(t, f.Message, "flag was off")
}

func TestTestingTAdapterAgreesWithTestingT(t *testing.T) {
	checks := map[string]func(require.TestingT){
		"equal passes":      func(tt require.TestingT) { require.Equal(tt, "a", "a") },
		"equal fails":       func(tt require.TestingT) { require.Equal(tt, "a", "b") },
		"len fails":         func(tt require.TestingT) { require.Len(tt, []int{1, 2}, 3) },
		"no error passes":   func(tt require.TestingT) { require.NoError(tt, nil) },
		"no error fails":    func(tt require.TestingT) { require.NoError(tt, errors.New("broken")) },
		"contains fails":    func(tt require.TestingT) { testify.Contains(tt, "haystack", "needle") },
		"assert.Nil passes": func(tt require.TestingT) { testify.Nil(tt, nil) },
	}
	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			expected := testbox.SandboxTest(func(st testbox.TestingT) { check(st) })
			f := catchFailure(func() { check(assert.T()) })

			if !expected.Failed {
				testify.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			require.NotEmpty(t, expected.Failures)
			testify.Equal(t, errorSection(expected.Failures[0].Message), errorSection(f.Message))
		})
	}
}

// errorSection drops the caller frames that testify puts before the error itself, since they
// differ between a sandboxed goroutine and the adapter.
func errorSection(message string) string {
	if i := strings.Index(message, "\tError:"); i >= 0 {
		message = message[i:]
	}
	return strings.TrimSpace(message)
}
