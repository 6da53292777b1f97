package selfcheck

import (
	"github.com/launchdarkly/suite-runner/assert"
	"github.com/launchdarkly/suite-runner/framework"
)

// Register adds all of the self-check suites to the runner, in the order they should run.
func Register(r *framework.Runner) {
	addAssertionTests(r.NewSuite("assertions"))
	addTestifyTests(r.NewSuite("testify"))
	addSuiteTests(r.NewSuite("suite"))
	addRunnerTests(r.NewSuite("runner"))
}

// expectFailure runs action and fails unless it fails an assertion with the given message.
func expectFailure(message string, action func()) {
	defer func() {
		f, ok := assert.AsFailure(recover())
		if !ok {
			assert.Fail("expected an assertion failure")
		}
		assert.Equals(f.Message, message)
	}()
	action()
}
