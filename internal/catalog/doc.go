// Package catalog holds the book catalog's data model and its pure state
// transitions.
//
// # Overview
//
// Everything in this package is a value or a pure function. Book and State
// describe the data, Action values describe requested changes, Reduce maps
// (state, action) to the next state, and Selectors project a state into the
// views the presentation layer renders.
//
// # Data Flow
//
//	presentation ──Dispatch(action)──> state.Store
//	                                     │
//	                                     ├─> Reduce(current, action) ─> next *State
//	                                     ├─> subscribers(next)
//	                                     └─> effects (loader) ──> more actions
//
//	presentation <──Selectors.Books(next)── subscribers
//
// # Immutability
//
// A *State handed out by Reduce is never written to again. Transitions copy
// the struct and, when the book list changes, build a fresh slice. Slices that
// a transition does not touch are shared between the old and the new state, so
// SameBooks can detect "books unchanged" with a pointer comparison.
//
// Reduce returns its input pointer for actions it does not recognise. Callers
// rely on this to skip notifications for no-op dispatches.
//
// # Actions
//
//	LoadRequested         Loading = true
//	LoadSucceeded         Books = payload, Loading = false, Error cleared
//	LoadFailed            Error = payload, Loading = false
//	AddRequested          append (no de-duplication)
//	DeleteRequested       remove by ID (absent ID keeps Books as-is)
//	StartEditRequested    SelectedBook = payload, IsEditing = true
//	EditRequested         replace by ID in place, leave edit mode
//	FinishEditRequested   leave edit mode without committing
package catalog
