// Package browser implements the interactive work log session: a small
// line-oriented menu state machine for adding entries, picking a filter,
// choosing one of the distinct values present in the store, and stepping
// through the matching entries one at a time with the option to delete them.
//
// The session is strictly sequential. Every state handler renders its menu,
// blocks for one line of input and returns the next state.
package browser
