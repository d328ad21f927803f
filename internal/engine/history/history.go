package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"scriv/internal/engine/buffer"
)

// ErrNothingToUndo indicates the undo stack is empty. Callers treat this
// as an informational outcome, not a failure.
var ErrNothingToUndo = errors.New("nothing to undo")

// logEntry records one executed command in the permanent audit log.
type logEntry struct {
	id        uuid.UUID
	command   Command
	timestamp time.Time
}

// EntryInfo provides read-only info about a logged command.
type EntryInfo struct {
	ID          uuid.UUID // Unique identifier for the log entry
	Description string    // Human-readable description
	Timestamp   time.Time // When the command was executed
}

// History is the invoker: it executes commands against a buffer and
// tracks them in two structures with different lifetimes. The log is a
// permanent, append-only audit trail of every command ever executed; the
// undo stack holds the executed, not-yet-undone commands eligible for
// reversal. Undo shrinks only the stack, never the log.
//
// There is no redo: an undone command leaves the stack for good and can
// only be re-applied by executing it again.
type History struct {
	mu        sync.Mutex
	log       []*logEntry
	undoStack []Command
}

// NewHistory creates an empty history manager.
func NewHistory() *History {
	return &History{}
}

// Execute runs a command and records it in the log and the undo stack.
func (h *History) Execute(buf *buffer.Buffer, cmd Command) error {
	if err := cmd.Execute(buf); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.log = append(h.log, &logEntry{
		id:        uuid.New(),
		command:   cmd,
		timestamp: time.Now(),
	})
	h.undoStack = append(h.undoStack, cmd)
	return nil
}

// ExecuteBatch runs commands in order, stopping at the first failure.
// It is plain sequential execution with no atomicity: commands that ran
// before a failure stay executed and recorded. Use CompoundCommand for a
// grouped undo unit.
func (h *History) ExecuteBatch(buf *buffer.Buffer, cmds ...Command) error {
	for _, cmd := range cmds {
		if err := h.Execute(buf, cmd); err != nil {
			return err
		}
	}
	return nil
}

// Undo pops the most recent command off the undo stack and reverses it.
// Returns ErrNothingToUndo when the stack is empty. The log is never
// touched; undone commands remain part of the audit trail.
func (h *History) Undo(buf *buffer.Buffer) error {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToUndo
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.mu.Unlock()

	// Reverse without holding the lock.
	if err := cmd.Undo(buf); err != nil {
		// Restore the entry on failure.
		h.mu.Lock()
		h.undoStack = append(h.undoStack, cmd)
		h.mu.Unlock()
		return err
	}
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// LogCount returns the number of commands ever executed.
func (h *History) LogCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.log)
}

// Entries returns info about every logged command, in execution order.
func (h *History) Entries() []EntryInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]EntryInfo, len(h.log))
	for i, entry := range h.log {
		result[i] = EntryInfo{
			ID:          entry.id,
			Description: entry.command.Description(),
			Timestamp:   entry.timestamp,
		}
	}
	return result
}

// PeekUndo returns info about the next undo candidate without removing it.
func (h *History) PeekUndo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].Description(), true
}
