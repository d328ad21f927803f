// Package session provides the facade over the editing subsystem.
//
// Editing through the subsystem directly takes three collaborators: a
// buffer to mutate, command values to describe each edit, and a history
// to execute and track them. Session collapses that into single calls:
//
//	s := session.New(session.WithContent("Hello World"))
//	s.Rewrite(0, 5, "Greetings")
//	s.Undo()
//
// Each verb constructs the right command, runs it through the history,
// and leaves the audit trail and undo stack consistent.
package session
