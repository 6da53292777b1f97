package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func namedCaller() Trace {
	return Capture(0)
}

func panickingHelper() {
	panic("boom")
}

func TestCaptureStartsAtCaller(t *testing.T) {
	tr := namedCaller()
	require.NotEmpty(t, tr)
	assert.Equal(t, ldvalue.NewOptionalString("trace.namedCaller"), tr[0].Name)
	assert.True(t, strings.HasPrefix(tr[0].Location, "trace_test.go:"))
	assert.Equal(t, "trace.TestCaptureStartsAtCaller", tr[1].DisplayName())
}

func TestFunctionLiteralsAreAnonymous(t *testing.T) {
	var tr Trace
	func() {
		tr = Capture(0)
	}()
	require.NotEmpty(t, tr)
	assert.False(t, tr[0].Name.IsDefined())
	assert.Equal(t, "_anonymous_", tr[0].DisplayName())
}

func TestFromPanicStartsAtPanicSite(t *testing.T) {
	var tr Trace
	func() {
		defer func() {
			tr = FromPanic()
			recover()
		}()
		panickingHelper()
	}()
	require.NotEmpty(t, tr)
	assert.Equal(t, "trace.panickingHelper", tr[0].DisplayName())
}

func TestFromPanicWithRuntimeError(t *testing.T) {
	var tr Trace
	func() {
		defer func() {
			tr = FromPanic()
			recover()
		}()
		var m map[string]int
		m["x"] = 1
	}()
	require.NotEmpty(t, tr)
	assert.False(t, strings.HasPrefix(tr[0].Function, "runtime."))
}

func TestUntil(t *testing.T) {
	tr := Trace{{Function: "a"}, {Function: "b"}, {Function: "c"}}
	assert.Equal(t, Trace{{Function: "a"}}, tr.Until("b"))
	assert.Equal(t, tr, tr.Until("missing"))
}

func TestTrimLeading(t *testing.T) {
	tr := Trace{{Function: "pkg/assert.Equals"}, {Function: "pkg/assert.fail"}, {Function: "main.f"}}
	assert.Equal(t, Trace{{Function: "main.f"}}, tr.TrimLeading("pkg/assert."))
}

func TestString(t *testing.T) {
	tr := Trace{
		{Name: ldvalue.NewOptionalString("math.adds"), Location: "math.go:10"},
		{Location: "math.go:20"},
	}
	assert.Equal(t, " at math.adds (math.go:10)\n at _anonymous_ (math.go:20)", tr.String())
	assert.Equal(t, "No stack trace", Trace(nil).String())
}

func TestFuncName(t *testing.T) {
	assert.True(t, strings.HasSuffix(FuncName(namedCaller), "/trace.namedCaller"))
}
