package selfcheck

import (
	"github.com/launchdarkly/suite-runner/assert"
	"github.com/launchdarkly/suite-runner/framework"
)

func newQuietRunner() *framework.Runner {
	return framework.NewRunner(framework.WithReporter(framework.NullReporter{}))
}

func addRunnerTests(s *framework.Suite) {
	s.AddTest("no suites", func() {
		assert.Equals(newQuietRunner().Run(), framework.ExitSuccess)
	})

	s.AddTest("classifies outcomes", func() {
		r := newQuietRunner()
		inner := r.NewSuite("inner")
		inner.AddTest("ok", func() {})
		inner.AddTest("fail", func() { assert.Fail("failed") })
		inner.AddTest("error", func() { panic("broken") })

		results := r.Execute()
		assert.Equals(results.ExitCode(), framework.ExitTestFailure)
		tests := results.Suites[0].Tests
		assert.Equals(tests[0].Outcome.Status, framework.StatusOK)
		assert.Equals(tests[1].Outcome.Status, framework.StatusFail)
		assert.Equals(tests[1].Outcome.Message, "failed")
		assert.Equals(tests[2].Outcome.Status, framework.StatusError)
		assert.Equals(tests[2].Outcome.Message, "string: broken")
		assert.Equals(results.Rate(), "33.33")
	})

	s.AddTest("filters", func() {
		r := newQuietRunner()
		r.NewSuite("A").AddTest("x", func() {})
		r.NewSuite("B").AddTest("y", func() { assert.Fail("should be skipped") })
		assert.Null(r.AddFilter(`A\.`, false))

		results := r.Execute()
		assert.Equals(results.ExitCode(), framework.ExitSuccess)
		assert.Equals(results.Run(), 1)
		assert.Equals(results.Skipped(), 1)
	})

	s.AddTest("stop on fail", func() {
		r := newQuietRunner()
		r.StopOnFail = true
		thirdRan := false
		inner := r.NewSuite("inner")
		inner.AddTest("one", func() {})
		inner.AddTest("two", func() { assert.Fail("stop") })
		inner.AddTest("three", func() { thirdRan = true })

		assert.Equals(r.Run(), framework.ExitTestFailure)
		assert.False(thirdRan)
	})

	s.AddTest("teardown after failure", func() {
		r := newQuietRunner()
		teardowns := 0
		inner := r.NewSuite("inner")
		inner.SetTeardown(func() { teardowns++ })
		inner.AddTest("fail", func() { assert.Fail("x") })
		inner.AddTest("error", func() { panic("y") })
		r.Run()
		assert.Equals(teardowns, 2)
	})
}
