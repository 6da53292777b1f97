package framework

// Reporter receives the events of a run, in order. The runner decides what is reported; a
// Reporter only decides how.
type Reporter interface {
	// NoSuites is called instead of everything else if no suites were added.
	NoSuites()
	// SuiteStarted is called before the first test of a suite that is not skipped. It is not
	// called for a suite whose tests are all skipped.
	SuiteStarted(title string)
	// TestFinished is called after every test that was not skipped.
	TestFinished(result TestResult)
	// SuiteFinished is called after each suite that ran at least one test, unless the run was
	// aborted.
	SuiteFinished(result SuiteResult)
	// NoTestsRun is called at the end of a run in which every test was skipped.
	NoTestsRun()
	// RunFinished is called at the end of a run in which at least one test ran, unless the
	// run was aborted.
	RunFinished(results Results)
}

// NullReporter discards everything.
type NullReporter struct{}

func (NullReporter) NoSuites()                 {}
func (NullReporter) SuiteStarted(string)       {}
func (NullReporter) TestFinished(TestResult)   {}
func (NullReporter) SuiteFinished(SuiteResult) {}
func (NullReporter) NoTestsRun()               {}
func (NullReporter) RunFinished(Results)       {}
