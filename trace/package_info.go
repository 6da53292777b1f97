// Package trace captures call stacks as structured frames.
//
// It is used both for assertion failures, where the stack is captured at the point the
// failure is created, and for unexpected panics, where the stack is recovered from inside
// the deferred handler that stops the panic.
package trace
