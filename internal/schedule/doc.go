// Package schedule computes when keepalive sessions are allowed to start.
// It models the daily start window, the weekday allow-list and the session
// duration bounds, and picks a uniformly random start instant inside the
// first feasible day within a fixed 14-day horizon.
//
// All types are plain values validated once at startup; nothing in this
// package holds state between calls.
package schedule
