package selfcheck

import (
	"errors"

	"github.com/launchdarkly/suite-runner/assert"
	"github.com/launchdarkly/suite-runner/framework"
)

func addSuiteTests(s *framework.Suite) {
	var fixture *framework.Suite
	s.SetSetup(func() {
		fixture = framework.NewSuite("fixture")
		fixture.AddTest("first", func() {})
		fixture.AddTest("second", func() {})
	})
	s.SetTeardown(func() {
		fixture = nil
	})

	s.AddTest("setup runs before each test", func() {
		assert.NotNull(fixture)
		assert.Equals(fixture.NumTests(), 2)
		fixture.AddTest("third", func() {})
		assert.Equals(fixture.NumTests(), 3)
	})

	s.AddTest("fixture is fresh", func() {
		assert.Equals(fixture.NumTests(), 2)
	})

	s.AddTest("descriptions keep order", func() {
		d, err := fixture.TestDescription(1)
		assert.Null(err)
		assert.Equals(d, "second")
	})

	s.AddTest("index out of range", func() {
		for _, i := range []int{-1, 2} {
			_, err := fixture.TestDescription(i)
			assert.True(errors.Is(err, framework.ErrIndexOutOfRange))
			_, err = fixture.Test(i)
			assert.True(errors.Is(err, framework.ErrIndexOutOfRange))
		}
	})

	s.AddTest("title can change", func() {
		fixture.SetTitle("renamed")
		assert.Equals(fixture.Title(), "renamed")
	})
}
