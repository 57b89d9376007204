// Package terminal presents the simulation in a terminal through tcell.
//
// The presenter owns the UI goroutine: it polls keyboard and resize events,
// redraws on every render request from the scheduler and keeps the final frame
// on screen until the user quits with q, Esc or Ctrl-C.
package terminal
