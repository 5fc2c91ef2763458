// Package tasklist implements the mutating operations on a task list.
//
// Every operation takes the current list and returns the updated one; none
// of them persist anything. Tasks are addressed by their stable id. Display
// numbers shown to the user are turned into ids with Resolve, against the
// exact sequence that was displayed, so batch operations never depend on
// index arithmetic.
package tasklist
