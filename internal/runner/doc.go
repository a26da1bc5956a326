// Package runner drives a life.Grid through successive generations.
//
// A [Runner] advances the grid, feeds every generation to its metrics and
// observers, watches for repeated states and paces itself with a delay
// between generations. Runs end after a fixed number of generations, when a
// cycle is found (if requested) or when the context is canceled.
package runner
