// Package viz renders planetary systems in the terminal.
//
// [Canvas] is a Braille pixel canvas; [Viewer] is a Bubble Tea program that
// animates any [Source], such as a simulated trajectory or the TRAPPIST-1
// solution, sampling it at its own frame rate.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	+/-   - Speed up / slow down
//	T     - Toggle orbit trails
//	R     - Restart from t=0
//	Q     - Quit
package viz
