// Package panels contains the concrete panels stacked on top of the
// stage: pause menu, settings editor, save slots, command palette and
// confirm dialog. Each satisfies app.Panel; the navigation controller
// only ever sees the nav.Panel part.
package panels
