// Package life implements Conway's Game of Life on a toroidal grid.
//
// The package provides the simulation core:
//
//   - [Grid]: fixed-size, row-major cell storage with wraparound neighbor counting
//   - [Advance]: synchronous generation transition
//   - [CreateGrid]: randomized construction from a [Source] of boolean draws
//   - [Render]: textual snapshot of a grid
//
// # Example
//
//	src := rng.New(seed, 0.2)
//	g, err := life.CreateGrid(20, 100, src)
//	if err != nil {
//		return err
//	}
//	life.Advance(g)
//	fmt.Print(life.Render(g))
//
// # Thread Safety
//
// A Grid has a single owner. Calling [Advance] on the same Grid from
// multiple goroutines is not supported.
package life
