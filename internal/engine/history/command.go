package history

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"scriv/internal/engine/buffer"
)

// ErrNotExecuted indicates an attempt to undo a command that has never
// been executed. A Delete has no recorded text to restore and an Insert
// has no recorded position, so this is a caller bug surfaced as a
// distinguished error.
var ErrNotExecuted = errors.New("command has not been executed")

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Command represents a reversible edit action over a buffer.
// The variant set is closed: Insert, Delete, Replace, Compound.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	Execute(buf *buffer.Buffer) error

	// Undo reverses the command and returns an error if it fails.
	// Undoing a command that was never executed returns ErrNotExecuted.
	Undo(buf *buffer.Buffer) error

	// Description returns a human-readable description of the command.
	Description() string
}

// InsertCommand inserts text at a fixed position, or at the end of the
// buffer when created with NewAppendCommand.
type InsertCommand struct {
	Text string
	Pos  ByteOffset

	atEnd      bool
	insertedAt ByteOffset
	applied    bool
}

// NewInsertCommand creates a command that inserts text at pos.
func NewInsertCommand(text string, pos ByteOffset) *InsertCommand {
	return &InsertCommand{Text: text, Pos: pos}
}

// NewAppendCommand creates a command that inserts text at the end of the
// buffer, wherever that is when the command executes.
func NewAppendCommand(text string) *InsertCommand {
	return &InsertCommand{Text: text, atEnd: true}
}

// Execute inserts the text and records the position used, so Undo can
// remove exactly what was inserted.
func (c *InsertCommand) Execute(buf *buffer.Buffer) error {
	pos := c.Pos
	if c.atEnd {
		pos = buf.Len()
	}
	if err := buf.Insert(pos, c.Text); err != nil {
		return fmt.Errorf("insert at offset %d: %w", pos, err)
	}
	c.insertedAt = pos
	c.applied = true
	return nil
}

// Undo removes the inserted text.
func (c *InsertCommand) Undo(buf *buffer.Buffer) error {
	if !c.applied {
		return ErrNotExecuted
	}
	r := buffer.Span(c.insertedAt, ByteOffset(len(c.Text)))
	if _, err := buf.Delete(r); err != nil {
		return fmt.Errorf("undo insert: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	if utf8.RuneCountInString(c.Text) <= 20 {
		return fmt.Sprintf("Insert %q", c.Text)
	}
	return fmt.Sprintf("Insert %d characters", utf8.RuneCountInString(c.Text))
}

// DeleteCommand deletes a range of text. The removed text is captured
// during Execute so Undo can restore it.
type DeleteCommand struct {
	Range Range

	deleted string
	applied bool
}

// NewDeleteCommand creates a command that deletes length bytes at pos.
func NewDeleteCommand(pos, length ByteOffset) *DeleteCommand {
	return &DeleteCommand{Range: buffer.Span(pos, length)}
}

// Execute removes the range and records the removed text.
func (c *DeleteCommand) Execute(buf *buffer.Buffer) error {
	removed, err := buf.Delete(c.Range)
	if err != nil {
		return fmt.Errorf("delete at range %s: %w", c.Range, err)
	}
	c.deleted = removed
	c.applied = true
	return nil
}

// Undo re-inserts the previously removed text at the original position.
func (c *DeleteCommand) Undo(buf *buffer.Buffer) error {
	if !c.applied {
		return ErrNotExecuted
	}
	if err := buf.Insert(c.Range.Start, c.deleted); err != nil {
		return fmt.Errorf("undo delete: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	return fmt.Sprintf("Delete %d characters at %d", c.Range.Len(), c.Range.Start)
}

// ReplaceCommand replaces a range with new text. It is a composite of a
// DeleteCommand and an InsertCommand anchored at the same position:
// Execute deletes the old text first so the insert position stays
// correct, and Undo reverses the two sub-commands in the opposite order.
type ReplaceCommand struct {
	del *DeleteCommand
	ins *InsertCommand
}

// NewReplaceCommand creates a command that replaces length bytes at pos
// with newText.
func NewReplaceCommand(pos, length ByteOffset, newText string) *ReplaceCommand {
	return &ReplaceCommand{
		del: NewDeleteCommand(pos, length),
		ins: NewInsertCommand(newText, pos),
	}
}

// Execute deletes the old text, then inserts the new text.
func (c *ReplaceCommand) Execute(buf *buffer.Buffer) error {
	if err := c.del.Execute(buf); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	if err := c.ins.Execute(buf); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	return nil
}

// Undo removes the new text, then restores the old text.
func (c *ReplaceCommand) Undo(buf *buffer.Buffer) error {
	if err := c.ins.Undo(buf); err != nil {
		return fmt.Errorf("undo replace: %w", err)
	}
	if err := c.del.Undo(buf); err != nil {
		return fmt.Errorf("undo replace: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *ReplaceCommand) Description() string {
	return fmt.Sprintf("Replace %d characters at %d with %q",
		c.del.Range.Len(), c.del.Range.Start, c.ins.Text)
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order.
// On failure, commands that already ran are undone.
func (c *CompoundCommand) Execute(buf *buffer.Buffer) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf)
			}
			return fmt.Errorf("compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *buffer.Buffer) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf); err != nil {
			return fmt.Errorf("undo compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
