// Package nav owns the stack of open panels and decides which panel a
// dismiss request reaches.
//
// Allowed here:
// - stack bookkeeping, handle validation, lock refusal policy
//
// Not allowed here:
// - rendering, key handling, or any knowledge of concrete panel types
package nav
