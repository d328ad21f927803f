package history

import (
	"errors"
	"testing"

	"scriv/internal/engine/buffer"
)

func TestExecuteRecordsLogAndStack(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	if err := h.Execute(buf, NewInsertCommand("Hello", 0)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if h.LogCount() != 1 {
		t.Errorf("LogCount() = %d, want 1", h.LogCount())
	}
	if h.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", h.UndoCount())
	}
	if !h.CanUndo() {
		t.Error("CanUndo() should be true")
	}
}

func TestExecuteFailureRecordsNothing(t *testing.T) {
	buf := buffer.NewFromString("Hi")
	h := NewHistory()

	if err := h.Execute(buf, NewDeleteCommand(0, 99)); err == nil {
		t.Fatal("Execute should have failed")
	}
	if h.LogCount() != 0 || h.UndoCount() != 0 {
		t.Errorf("failed command recorded: log=%d undo=%d", h.LogCount(), h.UndoCount())
	}
}

// The log is a permanent audit trail: undo shrinks only the undo stack.
func TestLogPermanence(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	const n = 5
	for i := 0; i < n; i++ {
		if err := h.Execute(buf, NewAppendCommand("x")); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
	}

	for undos := 1; undos <= n+2; undos++ {
		err := h.Undo(buf)
		if undos <= n && err != nil {
			t.Fatalf("undo %d failed: %v", undos, err)
		}
		if undos > n && !errors.Is(err, ErrNothingToUndo) {
			t.Fatalf("undo %d = %v, want ErrNothingToUndo", undos, err)
		}

		if h.LogCount() != n {
			t.Errorf("after %d undos LogCount() = %d, want %d", undos, h.LogCount(), n)
		}
		wantStack := n - undos
		if wantStack < 0 {
			wantStack = 0
		}
		if h.UndoCount() != wantStack {
			t.Errorf("after %d undos UndoCount() = %d, want %d", undos, h.UndoCount(), wantStack)
		}
	}
}

func TestEmptyUndoIsIdempotent(t *testing.T) {
	buf := buffer.NewFromString("untouched")
	h := NewHistory()

	for i := 0; i < 3; i++ {
		if err := h.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
			t.Errorf("Undo = %v, want ErrNothingToUndo", err)
		}
	}
	if buf.Text() != "untouched" {
		t.Errorf("empty undo mutated buffer: %q", buf.Text())
	}
}

// Scenario from the demo: build up "Hello World", then undo past empty.
func TestUndoScenario(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	if err := h.Execute(buf, NewInsertCommand("Hello", 0)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if buf.Text() != "Hello" {
		t.Fatalf("got %q, want %q", buf.Text(), "Hello")
	}

	if err := h.Execute(buf, NewAppendCommand(" World")); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if buf.Text() != "Hello World" {
		t.Fatalf("got %q, want %q", buf.Text(), "Hello World")
	}

	if err := h.Undo(buf); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if buf.Text() != "Hello" {
		t.Errorf("got %q, want %q", buf.Text(), "Hello")
	}

	if err := h.Undo(buf); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if buf.Text() != "" {
		t.Errorf("got %q, want empty", buf.Text())
	}

	if err := h.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo = %v, want ErrNothingToUndo", err)
	}
	if buf.Text() != "" {
		t.Errorf("no-op undo mutated buffer: %q", buf.Text())
	}
}

func TestReplaceScenario(t *testing.T) {
	buf := buffer.NewFromString("Hello World!")
	h := NewHistory()

	if err := h.Execute(buf, NewReplaceCommand(0, 5, "Greetings")); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if buf.Text() != "Greetings World!" {
		t.Errorf("got %q, want %q", buf.Text(), "Greetings World!")
	}

	if err := h.Undo(buf); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if buf.Text() != "Hello World!" {
		t.Errorf("got %q, want %q", buf.Text(), "Hello World!")
	}
}

func TestExecuteBatch(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	err := h.ExecuteBatch(buf,
		NewAppendCommand("a"),
		NewAppendCommand("b"),
		NewAppendCommand("c"),
	)
	if err != nil {
		t.Fatalf("ExecuteBatch failed: %v", err)
	}

	if buf.Text() != "abc" {
		t.Errorf("got %q, want %q", buf.Text(), "abc")
	}
	if h.LogCount() != 3 {
		t.Errorf("LogCount() = %d, want 3", h.LogCount())
	}
}

// A batch is not atomic: commands before the failure stay executed and
// recorded.
func TestExecuteBatchStopsAtFirstError(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	err := h.ExecuteBatch(buf,
		NewAppendCommand("a"),
		NewDeleteCommand(0, 99), // fails
		NewAppendCommand("c"),
	)
	if err == nil {
		t.Fatal("ExecuteBatch should have failed")
	}

	if buf.Text() != "a" {
		t.Errorf("got %q, want %q", buf.Text(), "a")
	}
	if h.LogCount() != 1 || h.UndoCount() != 1 {
		t.Errorf("log=%d undo=%d, want 1/1", h.LogCount(), h.UndoCount())
	}
}

func TestEntries(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	if err := h.ExecuteBatch(buf,
		NewInsertCommand("Hello", 0),
		NewAppendCommand("!"),
	); err != nil {
		t.Fatalf("ExecuteBatch failed: %v", err)
	}
	// Undone commands stay listed.
	if err := h.Undo(buf); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}

	entries := h.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].Description != `Insert "Hello"` {
		t.Errorf("entry 0 = %q", entries[0].Description)
	}
	if entries[1].Description != `Insert "!"` {
		t.Errorf("entry 1 = %q", entries[1].Description)
	}
	if entries[0].ID == entries[1].ID {
		t.Error("entry ids should be unique")
	}
	if entries[0].Timestamp.IsZero() || entries[1].Timestamp.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestPeekUndo(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	if _, ok := h.PeekUndo(); ok {
		t.Error("PeekUndo on empty history should report false")
	}

	if err := h.Execute(buf, NewAppendCommand("x")); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	desc, ok := h.PeekUndo()
	if !ok || desc != `Insert "x"` {
		t.Errorf("PeekUndo() = %q, %v", desc, ok)
	}
	if h.UndoCount() != 1 {
		t.Error("PeekUndo must not pop")
	}
}

func TestUndoFailureRestoresStack(t *testing.T) {
	buf := buffer.New()
	h := NewHistory()

	if err := h.Execute(buf, NewInsertCommand("Hello", 0)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Shrink the buffer behind the history's back so the undo's delete
	// range no longer exists.
	if _, err := buf.Delete(buffer.Span(0, 5)); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := h.Undo(buf); err == nil {
		t.Fatal("Undo should have failed")
	}
	if h.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1 (entry restored)", h.UndoCount())
	}
	if h.LogCount() != 1 {
		t.Errorf("LogCount() = %d, want 1", h.LogCount())
	}
}
