// Package app contains the terminal shell: model routing, the key
// registry, and composition of the stage with whatever panel is on top
// of the navigation stack.
//
// Allowed here:
// - message contracts, key scopes, view composition
//
// Not allowed here:
// - concrete panel implementations (panels) or stack policy (nav)
package app
