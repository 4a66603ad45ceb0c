// Package chain provides a fluent wrapper around Result[T, E] for
// building synchronous success/failure pipelines without branching on the
// variant at each step.
//
// Key operations:
// - Start/From: begin a chain from a Result[T, E] or a value
// - Then/ThenTry: compose result-returning or (value, error) functions
// - Map: transform the successful value
// - OrElse: recover from a failure with another fallible step
// - Ensure: run side effects without changing the result
// - Or/And: pick between two already-evaluated chains
// - Finally: collapse the chain into a final value via handlers
//
// Methods keep the chain's types; the package-level Then, Map, ThenTry
// and Finally change the success type mid-pipeline.
package chain
