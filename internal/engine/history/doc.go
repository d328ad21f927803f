// Package history provides undoable edit commands and the invoker that
// tracks them.
//
// The package is a small Command pattern. Commands implement the Command
// interface with Execute and Undo methods. Built-in commands:
//   - InsertCommand: insert text at a position (or at the buffer end)
//   - DeleteCommand: delete a range, remembering the removed text
//   - ReplaceCommand: delete-then-insert composite at one position
//   - CompoundCommand: group multiple commands as one undo unit
//
// The History type executes commands and tracks them twice over:
//
//	hist := history.NewHistory()
//	hist.Execute(buf, history.NewInsertCommand("Hello", 0))
//	hist.Undo(buf)
//
// Every executed command lands in a permanent, append-only log (the audit
// trail Entries reports) and on the undo stack. Undo pops the stack and
// reverses the command but never removes it from the log, so the log
// always reflects everything that happened, undone or not.
//
// There is deliberately no redo stack.
package history
