// Package ui provides the terminal user interface for bookshelf.
//
// The UI is a Bubble Tea program that never mutates catalog state itself. Key
// presses become catalog actions dispatched to a state.Store from a tea.Cmd,
// so the reducer and effects run off the event loop. The store publishes each
// new state into a one-slot channel that keeps only the newest value; the
// model reads it back through catalog selectors and redraws.
//
// # Views
//
//   - Books: bubbles table of the catalog, with an add/edit form below it
//   - Activity: tail of the action log written by state.LogEffect
//
// The edit form follows the store: StartEditRequested opens it once the new
// state arrives, and it closes when EditRequested or FinishEditRequested
// leave edit mode.
//
// # Key Bindings
//
//   - r: Load books
//   - a: Add a book
//   - e or Enter: Edit the selected book
//   - d: Delete the selected book (asks first when confirm_delete is set)
//   - ESC: Cancel the form or leave the activity view
//   - L: Toggle the activity view
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Exit
package ui
