package selfcheck

import (
	"github.com/launchdarkly/suite-runner/assert"
	"github.com/launchdarkly/suite-runner/framework"
)

func addAssertionTests(s *framework.Suite) {
	s.AddTest("equals", func() {
		assert.Equals(1+1, 2)
		assert.Equals("abc", "a"+"bc")
		assert.Equals([]int{1, 2}, []int{1, 2})
		expectFailure("The objects are different and should be equal, 0 is not 1",
			func() { assert.Equals(2-2, 1) })
	})

	s.AddTest("equals does not convert", func() {
		expectFailure("The objects are different and should be equal, 1 is not 1",
			func() { assert.Equals(int8(1), 1) })
	})

	s.AddTest("not equals", func() {
		assert.NotEquals(1, 2)
		assert.NotEquals(1, "1")
		expectFailure("The objects are equal and should be different, a equals a",
			func() { assert.NotEquals("a", "a") })
	})

	s.AddTest("true and false", func() {
		assert.True(1 < 2)
		assert.False(1 > 2)
		expectFailure("The input should be true and is false", func() { assert.True(false) })
		expectFailure("The input should be false and is true", func() { assert.False(true) })
	})

	s.AddTest("null", func() {
		var p *framework.Suite
		var err error
		assert.Null(nil)
		assert.Null(p)
		assert.Null(err)
		assert.NotNull(framework.NewSuite("x"))
		expectFailure("The object should be null, but is 0", func() { assert.Null(0) })
		expectFailure("The object is null and should not be", func() { assert.NotNull(p) })
	})

	s.AddTest("undefined", func() {
		var p *int
		assert.Undefined(nil)
		expectFailure("The object should be undefined, but is *int(nil)", func() { assert.Undefined(p) })
	})

	s.AddTest("fail", func() {
		expectFailure("always", func() { assert.Fail("always") })
		expectFailure("value 42", func() { assert.Failf("value %d", 42) })
	})

	s.AddTest("failure trace", func() {
		defer func() {
			f, _ := assert.AsFailure(recover())
			assert.NotNull(f)
			assert.True(len(f.Trace) > 0)
			assert.Equals(f.Trace[0].DisplayName(), "_anonymous_")
		}()
		assert.True(false)
	})
}
