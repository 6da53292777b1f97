package framework

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var statusTags = map[Status]string{
	StatusOK:    "[   OK   ] ",
	StatusFail:  "[  FAIL  ] ",
	StatusError: "[  ERROR ] ",
}

var statusStyles = map[Status]Style{
	StatusOK:    StyleOK,
	StatusFail:  StyleFail,
	StatusError: StyleError,
}

// ConsoleReporter writes a line-oriented, human-readable report.
type ConsoleReporter struct {
	out       io.Writer
	formatter Formatter
}

func NewConsoleReporter(out io.Writer, formatter Formatter) *ConsoleReporter {
	if formatter == nil {
		formatter = PlainFormatter{}
	}
	return &ConsoleReporter{out: out, formatter: formatter}
}

func (c *ConsoleReporter) NoSuites() {
	fmt.Fprintln(c.out, "No test suite to run. End")
}

func (c *ConsoleReporter) SuiteStarted(title string) {
	header := "Running suite " + title
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, separator(header))
}

func (c *ConsoleReporter) TestFinished(result TestResult) {
	o := result.Outcome
	fmt.Fprintln(c.out, c.formatter.Format(statusStyles[o.Status], statusTags[o.Status]+result.ID.Description))
	if !o.OK() {
		fmt.Fprintf(c.out, "\n%s\n%s\n\n", o.Message, o.Trace)
	}
}

func (c *ConsoleReporter) SuiteFinished(r SuiteResult) {
	c.banner(fmt.Sprintf("Suite(%s%%) - Run: %d - OK: %d - Failed: %d - Errors: %d",
		r.Rate(), r.Run(), r.Passed(), r.Failed, r.Errors),
		summaryStyle(r.Failed, r.Errors))
}

func (c *ConsoleReporter) NoTestsRun() {
	fmt.Fprintln(c.out, "No tests run")
}

func (c *ConsoleReporter) RunFinished(r Results) {
	c.banner(fmt.Sprintf("GLOBAL(%s%%) - Suites: %d - Tests: %d - OK: %d - Failed: %d - Errors: %d",
		r.Rate(), r.NumSuites, r.Run(), r.Passed(), len(r.Failed), len(r.Errored)),
		summaryStyle(len(r.Failed), len(r.Errored)))
	c.list("Failed tests: ", r.Failed, StyleFail)
	c.list("Tests with errors: ", r.Errored, StyleError)
}

func (c *ConsoleReporter) banner(line string, style Style) {
	sep := separator(line)
	fmt.Fprintln(c.out, sep)
	fmt.Fprintln(c.out, c.formatter.Format(style, line))
	fmt.Fprintln(c.out, sep)
}

func (c *ConsoleReporter) list(title string, ids []TestID, style Style) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintln(c.out, title)
	fmt.Fprintln(c.out, separator(title))
	for _, id := range ids {
		fmt.Fprintln(c.out, c.formatter.Format(style, id.String()))
	}
	fmt.Fprintln(c.out)
}

// summaryStyle is the error style if there were errors, the failure style if there were only
// failures, and unstyled otherwise.
func summaryStyle(failed, errors int) Style {
	switch {
	case errors > 0:
		return StyleError
	case failed > 0:
		return StyleFail
	default:
		return StylePlain
	}
}

// separator returns a line of dashes with one dash per character of text. It is always given
// text before any styling is applied.
func separator(text string) string {
	return strings.Repeat("-", utf8.RuneCountInString(text))
}
