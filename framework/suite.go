package framework

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a test is looked up by a position the suite doesn't have.
var ErrIndexOutOfRange = errors.New("index is out of range")

// TestFunc is the body of a test. It signals failure by panicking, normally through one of the
// functions in the assert package.
type TestFunc func()

type testCase struct {
	description string
	fn          TestFunc
}

// Suite is an ordered group of tests that share setup and teardown hooks.
//
// Tests run in the order they were added. Descriptions do not have to be unique; tests are
// addressed by position, but filters see only the qualified name, so two tests with the same
// description are always selected or skipped together.
type Suite struct {
	title    string
	tests    []testCase
	setup    func()
	teardown func()
}

// NewSuite creates an empty suite. It must be passed to Runner.AddSuite to be run; use
// Runner.NewSuite to do both at once.
func NewSuite(title string) *Suite {
	return &Suite{title: title}
}

func (s *Suite) Title() string {
	return s.title
}

func (s *Suite) SetTitle(title string) {
	s.title = title
}

// AddTest appends a test to the suite.
func (s *Suite) AddTest(description string, fn TestFunc) {
	s.tests = append(s.tests, testCase{description: description, fn: fn})
}

func (s *Suite) NumTests() int {
	return len(s.tests)
}

func (s *Suite) TestDescription(index int) (string, error) {
	if index < 0 || index >= len(s.tests) {
		return "", fmt.Errorf("suite %q: test description %d: %w", s.title, index, ErrIndexOutOfRange)
	}
	return s.tests[index].description, nil
}

func (s *Suite) Test(index int) (TestFunc, error) {
	if index < 0 || index >= len(s.tests) {
		return nil, fmt.Errorf("suite %q: test %d: %w", s.title, index, ErrIndexOutOfRange)
	}
	return s.tests[index].fn, nil
}

// SetSetup sets a function to be called before every test in the suite.
func (s *Suite) SetSetup(fn func()) {
	s.setup = fn
}

// SetTeardown sets a function to be called after every test in the suite, whether or not the
// test passed.
func (s *Suite) SetTeardown(fn func()) {
	s.teardown = fn
}

func (s *Suite) Setup() {
	if s.setup != nil {
		s.setup()
	}
}

func (s *Suite) Teardown() {
	if s.teardown != nil {
		s.teardown()
	}
}
