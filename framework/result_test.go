package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRate(t *testing.T) {
	for _, p := range []struct {
		passed, run int
		expected    string
	}{
		{8, 10, "80.00"},
		{1, 2, "50.00"},
		{1, 1, "100.0"},
		{1, 3, "33.33"},
		{2, 3, "66.67"},
		{1, 15, "6.667"},
		{1, 1000, "0.1000"},
		{0, 5, "0.000"},
		{24999, 25000, "100.0"},
	} {
		assert.Equal(t, p.expected, FormatRate(p.passed, p.run), "%d/%d", p.passed, p.run)
	}
}

func TestSuiteResultCounts(t *testing.T) {
	r := SuiteResult{Total: 10, Failed: 1, Errors: 1, Skipped: 2}
	assert.Equal(t, 8, r.Run())
	assert.Equal(t, 6, r.Passed())
	assert.Equal(t, "75.00", r.Rate())
}

func TestResultsTotals(t *testing.T) {
	r := Results{
		Suites: []SuiteResult{
			{Total: 3, Failed: 1},
			{Total: 2, Skipped: 2},
			{Total: 5, Errors: 1, Skipped: 1},
		},
		Failed:  []TestID{{"A", "a"}},
		Errored: []TestID{{"C", "c"}},
	}
	assert.Equal(t, 10, r.Total())
	assert.Equal(t, 7, r.Run())
	assert.Equal(t, 5, r.Passed())
	assert.Equal(t, 3, r.Skipped())
	assert.Equal(t, "71.43", r.Rate())
	assert.False(t, r.OK())
	assert.Equal(t, ExitTestFailure, r.ExitCode())
}

func TestResultsExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, Results{}.ExitCode())
	assert.Equal(t, ExitTestFailure, Results{Errored: []TestID{{"A", "a"}}}.ExitCode())
	assert.Equal(t, ExitTestFailure, Results{Aborted: true}.ExitCode())
}

func TestTestIDString(t *testing.T) {
	assert.Equal(t, "Math.adds", TestID{Suite: "Math", Description: "adds"}.String())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "FAIL", StatusFail.String())
	assert.Equal(t, "ERROR", StatusError.String())
	assert.Equal(t, "SKIPPED", StatusSkipped.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
