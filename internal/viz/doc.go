// Package viz provides a live terminal view of a running automaton.
//
// The view is a Bubble Tea program that advances the grid once per tick and
// shows it next to generation statistics and a population chart.
//
// # Key Bindings
//
//	T          - Cycle color themes
//	Q/Esc      - Quit
//	Ctrl+C     - Quit
package viz
