// Package session drives the two phases of the keepalive cycle: running a
// bounded-duration session that emits periodic keepalive pulses, and waiting
// out the idle period until the next scheduled start.
//
// Both phases are single-threaded tick-bounded poll loops. Every wait is a
// short sleep followed by a re-check of the quit/end conditions, so a user
// command or a cancelled context takes effect within one tick.
package session
