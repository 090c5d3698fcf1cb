// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, key registry
// - the mount tree that drives tunnel site lifecycles
// - tab policy and the shared toolbar tunnel
//
// Not allowed here:
// - concrete tab rendering implementations
// - low-level widget rendering primitives
package core
