// Package prop implements early-return propagation for Result values:
// the question operation and the boundary that intercepts it.
//
// Highlights:
// - Try: return the Ok value, or transfer control to the nearest
//   enclosing boundary carrying the Err payload
// - Wrap/Wrap1/Wrap2: wrap a Result-returning function with a boundary
//   that converts an intercepted transfer into an Err return
// - Do: run a function under a boundary immediately
//
// A transfer unwinds through any number of plain call frames until it
// reaches a boundary declared for the same error type E. Boundaries for a
// different E let it pass, as do *result.UnwrapError panics and any other
// panic value, so misuse stays visible instead of being absorbed. Using
// Try with no enclosing boundary panics with an error naming the misuse.
//
// The transfer is a stack unwind local to one goroutine. It never crosses
// goroutines; each goroutine that uses Wrap gets its own boundary.
package prop
