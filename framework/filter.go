package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// RegexFilters decides which tests run. A test runs if MustMatch is empty or any of its
// patterns matches the qualified test name, and none of the MustNotMatch patterns do.
//
// Patterns are Go regular expressions and are not anchored, so "Math" matches "Math.adds"
// and "MyMath.adds" alike. Use "^Math\." to select a single suite.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) Match(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set compiles value and adds it to the list.
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex %q: %w", value, err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// DescribeFilters writes a short explanation of the active filters, or nothing if there are
// none.
func DescribeFilters(w io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(w)
}
