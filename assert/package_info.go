// Package assert contains the assertion functions used inside suite tests.
//
// A failed assertion panics with a *Failure, which carries a message and the stack of the
// failing call. The runner in the framework package recovers it and reports the test as
// FAIL; a panic with any other value is reported as ERROR.
package assert
