package assert

import (
	"fmt"
	"strings"
)

// TestingT lets the testify assert and require packages be used inside suite tests:
//
//	require.Len(assert.T(), items, 3)
//
// Unlike Go's *testing.T, every reported error stops the test immediately, since a suite test
// has only one outcome.
type TestingT struct{}

// T returns a TestingT.
func T() TestingT {
	return TestingT{}
}

// Errorf is called by testify assertions to report a failure.
func (TestingT) Errorf(format string, args ...interface{}) {
	panic(NewFailure(strings.TrimSpace(fmt.Sprintf(format, args...))))
}

// FailNow is called by the require package after Errorf. Errorf has already stopped the test,
// so this is only reached if testify reports a failure without a message.
func (TestingT) FailNow() {
	panic(NewFailure("test failed with no failure message"))
}

func (TestingT) Helper() {}
