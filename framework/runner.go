package framework

import (
	"fmt"
	"os"

	"github.com/launchdarkly/suite-runner/assert"
	"github.com/launchdarkly/suite-runner/trace"
)

// invokeName is where captured traces are cut off, so that they end at the test code rather
// than running on into the runner.
var invokeName string

func init() {
	invokeName = trace.FuncName(invoke)
}

// Runner runs suites in the order they were added and reports on them.
//
// A Runner is not safe for concurrent use. Suites and filters should be added before Run is
// called.
type Runner struct {
	// StopOnFail causes the run to end immediately after the first test that fails or has an
	// error. No summaries are reported for an aborted run.
	StopOnFail bool

	suites      []*Suite
	filters     RegexFilters
	reporter    Reporter
	debugLogger Logger
}

type RunnerOption func(*Runner)

// WithReporter sets where results are reported. The default is a ConsoleReporter writing
// colored output to standard output.
func WithReporter(reporter Reporter) RunnerOption {
	return func(r *Runner) {
		r.reporter = reporter
	}
}

// WithDebugLogger sets a logger for details of what the runner is doing. The default discards
// them.
func WithDebugLogger(logger Logger) RunnerOption {
	return func(r *Runner) {
		r.debugLogger = logger
	}
}

func WithStopOnFail(stopOnFail bool) RunnerOption {
	return func(r *Runner) {
		r.StopOnFail = stopOnFail
	}
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.reporter == nil {
		r.reporter = NewConsoleReporter(os.Stdout, NewColorFormatter())
	}
	if r.debugLogger == nil {
		r.debugLogger = NullLogger()
	}
	return r
}

func (r *Runner) AddSuite(suite *Suite) {
	r.suites = append(r.suites, suite)
}

// NewSuite creates a suite and adds it to the runner.
func (r *Runner) NewSuite(title string) *Suite {
	s := NewSuite(title)
	r.AddSuite(s)
	return s
}

// AddFilter adds a regular expression that qualified test names are matched against. If
// negative is false, only tests matching at least one such pattern will run; if it is true,
// tests matching the pattern are skipped. An empty pattern is ignored, whether or not negative
// is true, so an empty exclusion does not skip every test.
func (r *Runner) AddFilter(pattern string, negative bool) error {
	if pattern == "" {
		return nil
	}
	if negative {
		return r.filters.MustNotMatch.Set(pattern)
	}
	return r.filters.MustMatch.Set(pattern)
}

// Filters returns the filters added with AddFilter.
func (r *Runner) Filters() *RegexFilters {
	return &r.filters
}

// Run runs all the suites and returns ExitSuccess if every test that ran passed, or
// ExitTestFailure otherwise.
func (r *Runner) Run() int {
	return r.Execute().ExitCode()
}

// Execute runs all the suites and returns the full results.
func (r *Runner) Execute() Results {
	var results Results
	if len(r.suites) == 0 {
		r.reporter.NoSuites()
		return results
	}
	results.NumSuites = len(r.suites)

	for _, s := range r.suites {
		suiteResult, ok := r.runSuite(s, &results)
		results.Suites = append(results.Suites, suiteResult)
		if !ok {
			r.debugLogger.Printf("Stopping after first failure")
			results.Aborted = true
			return results
		}
		if suiteResult.Run() > 0 {
			r.reporter.SuiteFinished(suiteResult)
		}
	}

	if results.Run() == 0 {
		r.reporter.NoTestsRun()
		return results
	}
	r.reporter.RunFinished(results)
	return results
}

// runSuite returns false if the run should stop because of StopOnFail.
func (r *Runner) runSuite(s *Suite, results *Results) (SuiteResult, bool) {
	suiteResult := SuiteResult{Title: s.Title(), Total: s.NumTests()}
	started := false

	for _, tc := range s.tests {
		id := TestID{Suite: s.Title(), Description: tc.description}
		if !r.filters.Match(id) {
			r.debugLogger.Printf("Skipping %s: excluded by filter parameters", id)
			suiteResult.Skipped++
			suiteResult.Tests = append(suiteResult.Tests, TestResult{ID: id, Outcome: Outcome{Status: StatusSkipped}})
			continue
		}
		if !started {
			r.debugLogger.Printf("Starting suite %s", s.Title())
			r.reporter.SuiteStarted(s.Title())
			started = true
		}

		result := TestResult{ID: id, Outcome: r.runTest(s, tc.fn)}
		suiteResult.Tests = append(suiteResult.Tests, result)
		switch result.Outcome.Status {
		case StatusFail:
			suiteResult.Failed++
			results.Failed = append(results.Failed, id)
		case StatusError:
			suiteResult.Errors++
			results.Errored = append(results.Errored, id)
		}
		r.debugLogger.Printf("%s: %s", id, result.Outcome.Status)
		r.reporter.TestFinished(result)

		if r.StopOnFail && !result.Outcome.OK() {
			return suiteResult, false
		}
	}
	return suiteResult, true
}

// runTest runs the setup hook, the test body and the teardown hook. If setup panics, the test
// is reported as an error and teardown is not called. Otherwise teardown is called exactly
// once, and a panic in it only changes the outcome if the body passed.
func (r *Runner) runTest(s *Suite, fn TestFunc) Outcome {
	if outcome := invoke(s.Setup); !outcome.OK() {
		r.debugLogger.Printf("Setup of suite %s failed, not calling teardown", s.Title())
		return outcome
	}
	outcome := invoke(fn)
	if teardownOutcome := invoke(s.Teardown); outcome.OK() {
		outcome = teardownOutcome
	}
	return outcome
}

func invoke(action func()) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = classify(r)
		}
	}()
	action()
	return Outcome{Status: StatusOK}
}

// classify must be called from the deferred function that recovered the panic, so that the
// panicking stack is still available.
func classify(value interface{}) Outcome {
	if f, ok := assert.AsFailure(value); ok {
		return Outcome{Status: StatusFail, Message: f.Message, Trace: f.Trace.Until(invokeName)}
	}
	return Outcome{
		Status:  StatusError,
		Message: fmt.Sprintf("%T: %v", value, value),
		Trace:   trace.FromPanic().Until(invokeName),
	}
}
