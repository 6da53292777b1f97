package assert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/launchdarkly/suite-runner/trace"
)

// Failure is the value that assertion functions panic with. The runner recognizes it and
// reports the test as failed, rather than as having an unexpected error.
type Failure struct {
	Message string
	Trace   trace.Trace
}

// packagePrefix is the prefix of the runtime names of every function in this package, so that
// our own frames can be removed from a captured trace. It is set in init because Fail depends
// on it indirectly.
var packagePrefix string

func init() {
	name := trace.FuncName(Fail)
	packagePrefix = name[:strings.LastIndex(name, ".")+1]
}

// NewFailure creates a Failure and captures the stack of the code that is making the
// assertion.
func NewFailure(message string) *Failure {
	return &Failure{
		Message: message,
		Trace:   trace.Capture(0).TrimLeading(packagePrefix),
	}
}

func (f *Failure) Error() string {
	return f.Message
}

// AsFailure returns the Failure carried by a recovered panic value, if any. The value can be
// the Failure itself or an error that wraps one. A nil *Failure is not treated as a Failure.
func AsFailure(value interface{}) (*Failure, bool) {
	switch v := value.(type) {
	case *Failure:
		return v, v != nil
	case error:
		var f *Failure
		if errors.As(v, &f) && f != nil {
			return f, true
		}
	}
	return nil, false
}

func raise(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(NewFailure(fmt.Sprintf(format, args...)))
	}
}
