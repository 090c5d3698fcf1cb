// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, text, popup overlay compositor)
//
// Not allowed here:
// - key handling, app state transitions, tunnel subscriptions or mount policy
package widgets
