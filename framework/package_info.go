// Package framework contains the suite and runner of the unit-testing framework.
//
// The general model is:
//
// 1. Tests are plain functions grouped into a Suite, which can also have setup and teardown
// hooks that run around every test.
//
// 2. Suites are added to a Runner, which runs them one at a time in the order they were
// added. Inclusion and exclusion filters are matched against each test's qualified name
// ("<suite>.<description>") to decide whether it runs.
//
// 3. A test fails when it panics with an *assert.Failure, which is what the functions in the
// assert package do. Any other panic is reported as an error. Either way the panic is
// recovered, and the run continues unless StopOnFail is set.
//
// 4. What happens is passed to a Reporter. ConsoleReporter prints per-test lines and
// per-suite and global summaries, using a Formatter to color them.
package framework
