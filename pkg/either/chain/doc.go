// Package chain provides a fluent wrapper around either.Either for building
// synchronous railway-style pipelines without branching at each step.
//
// Key operations:
// - Start/FromRight/FromLeft: begin a chain
// - Then: continue with a step that may fail
// - Map/MapLeft: transform one side in place
// - Recover: replace a Left with the outcome of a recovery step
// - Ensure: run side effects without changing the value
// - To/Transform: steps that change the success type
// - Finally: collapse the chain into a single value
package chain
