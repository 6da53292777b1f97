package framework

import (
	"strconv"
	"strings"

	"github.com/launchdarkly/suite-runner/trace"
)

// Exit codes returned by Runner.Run.
const (
	ExitSuccess     = 0
	ExitTestFailure = 1
)

const significantDigits = 4

// Status is the kind of outcome a test had.
type Status int

const (
	StatusOK Status = iota
	StatusFail
	StatusError
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFail:
		return "FAIL"
	case StatusError:
		return "ERROR"
	case StatusSkipped:
		return "SKIPPED"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Outcome is the result of running one test.
//
// For StatusFail, Message is the assertion message and Trace is where the assertion was made.
// For StatusError, Message describes the panic value and Trace is where the panic happened.
// Both are empty for StatusOK and StatusSkipped.
type Outcome struct {
	Status  Status
	Message string
	Trace   trace.Trace
}

func (o Outcome) OK() bool {
	return o.Status == StatusOK
}

// TestID identifies a test by its suite title and description.
type TestID struct {
	Suite       string
	Description string
}

// String returns the qualified name "<suite>.<description>", which is what filters are
// matched against.
func (t TestID) String() string {
	return t.Suite + "." + t.Description
}

type TestResult struct {
	ID      TestID
	Outcome Outcome
}

// SuiteResult holds the counts for one suite. Total includes skipped tests.
type SuiteResult struct {
	Title   string
	Total   int
	Failed  int
	Errors  int
	Skipped int
	Tests   []TestResult
}

// Run returns the number of tests that were not skipped.
func (s SuiteResult) Run() int {
	return s.Total - s.Skipped
}

func (s SuiteResult) Passed() int {
	return s.Total - s.Failed - s.Errors - s.Skipped
}

// Rate returns the percentage of executed tests that passed, to 4 significant digits.
func (s SuiteResult) Rate() string {
	return FormatRate(s.Passed(), s.Run())
}

// Results is everything recorded by one call to Runner.Execute.
type Results struct {
	Suites    []SuiteResult
	NumSuites int
	Failed    []TestID
	Errored   []TestID
	// Aborted is true if the run stopped at the first failure because of StopOnFail.
	Aborted bool
}

func (r Results) totals() SuiteResult {
	var t SuiteResult
	for _, s := range r.Suites {
		t.Total += s.Total
		t.Failed += s.Failed
		t.Errors += s.Errors
		t.Skipped += s.Skipped
	}
	return t
}

func (r Results) Total() int   { return r.totals().Total }
func (r Results) Run() int     { return r.totals().Run() }
func (r Results) Passed() int  { return r.totals().Passed() }
func (r Results) Skipped() int { return r.totals().Skipped }

func (r Results) Rate() string {
	return r.totals().Rate()
}

// OK is true if no test failed or had an error.
func (r Results) OK() bool {
	return !r.Aborted && len(r.Failed) == 0 && len(r.Errored) == 0
}

func (r Results) ExitCode() int {
	if r.OK() {
		return ExitSuccess
	}
	return ExitTestFailure
}

// FormatRate returns passed/run as a percentage with 4 significant digits in fixed notation,
// such as "80.00", "100.0" or "6.667". It returns "0.000" when nothing passed.
func FormatRate(passed, run int) string {
	if run <= 0 || passed <= 0 {
		return strconv.FormatFloat(0, 'f', significantDigits-1, 64)
	}
	rate := float64(passed) / float64(run) * 100
	// The exponential form is already rounded to the right number of digits, so its exponent
	// tells us how many of them go after the decimal point.
	e := strconv.FormatFloat(rate, 'e', significantDigits-1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	decimals := significantDigits - 1 - exp
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(rate, 'f', decimals, 64)
}
