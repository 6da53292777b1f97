package trace

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	maxDepth      = 64
	anonymousName = "_anonymous_"
	panicFunction = "runtime.gopanic"
)

var anonymousFuncPattern = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

// Frame is one entry of a captured call stack.
//
// Name is undefined for function literals; Location is "<file>:<line>" using only the base
// name of the source file. Function is the fully-qualified runtime name of the function and
// is what Until and TrimLeading match against.
type Frame struct {
	Name     ldvalue.OptionalString
	Location string
	Function string
}

// Trace is a call stack, innermost frame first.
type Trace []Frame

func newFrame(f runtime.Frame) Frame {
	frame := Frame{
		Location: fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line),
		Function: f.Function,
	}
	if f.Function != "" && !anonymousFuncPattern.MatchString(f.Function) {
		frame.Name = ldvalue.NewOptionalString(shortName(f.Function))
	}
	return frame
}

func shortName(function string) string {
	if i := strings.LastIndex(function, "/"); i >= 0 {
		return function[i+1:]
	}
	return function
}

// DisplayName returns the frame's function name, or a placeholder for anonymous frames.
func (f Frame) DisplayName() string {
	return f.Name.OrElse(anonymousName)
}

func (f Frame) String() string {
	return fmt.Sprintf("at %s (%s)", f.DisplayName(), f.Location)
}

// Capture returns the stack of the calling goroutine. A skip of 0 starts at the function that
// called Capture.
func Capture(skip int) Trace {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	return fromPCs(pcs[:n])
}

// FromPanic returns the stack of the code that panicked. It must be called from a deferred
// function while the panic is being handled; the frames of the deferred function and of the
// runtime's panic machinery are left out. If no panic is in progress, it returns the stack of
// the caller.
func FromPanic() Trace {
	all := Capture(1)
	for i, f := range all {
		if f.Function != panicFunction {
			continue
		}
		rest := all[i+1:]
		for len(rest) > 0 && strings.HasPrefix(rest[0].Function, "runtime.") {
			rest = rest[1:]
		}
		return rest
	}
	return all
}

func fromPCs(pcs []uintptr) Trace {
	if len(pcs) == 0 {
		return nil
	}
	var ret Trace
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		ret = append(ret, newFrame(f))
		if !more {
			break
		}
	}
	return ret
}

// Until returns the frames above the first frame whose Function equals function. The whole
// trace is returned if there is no such frame.
func (t Trace) Until(function string) Trace {
	for i, f := range t {
		if f.Function == function {
			return t[:i]
		}
	}
	return t
}

// TrimLeading drops frames from the top of the trace for as long as their Function starts
// with prefix.
func (t Trace) TrimLeading(prefix string) Trace {
	for len(t) > 0 && strings.HasPrefix(t[0].Function, prefix) {
		t = t[1:]
	}
	return t
}

// String renders the trace one frame per line, each line starting with " at ".
func (t Trace) String() string {
	if len(t) == 0 {
		return "No stack trace"
	}
	lines := make([]string, 0, len(t))
	for _, f := range t {
		lines = append(lines, " "+f.String())
	}
	return strings.Join(lines, "\n")
}

// FuncName returns the fully-qualified runtime name of a function value, in the same form
// as Frame.Function.
func FuncName(fn interface{}) string {
	return runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
}
