// Package selfcheck contains suites that check the assertion functions, suites and runner by
// running them through the framework itself. The command-line tool runs these suites.
package selfcheck
