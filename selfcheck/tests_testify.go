package selfcheck

import (
	"strings"

	"github.com/launchdarkly/suite-runner/assert"
	"github.com/launchdarkly/suite-runner/framework"

	"github.com/stretchr/testify/require"
)

func addTestifyTests(s *framework.Suite) {
	s.AddTest("require passes", func() {
		require.Equal(assert.T(), 4, 2*2)
		require.Len(assert.T(), []string{"a", "b"}, 2)
		require.NoError(assert.T(), nil)
	})

	s.AddTest("require failure becomes assertion failure", func() {
		defer func() {
			f, ok := assert.AsFailure(recover())
			assert.True(ok)
			assert.True(strings.Contains(f.Message, "Should be true"))
		}()
		require.True(assert.T(), false)
	})
}
