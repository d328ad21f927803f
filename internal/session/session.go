package session

import (
	"errors"

	"scriv/internal/clipboardx"
	"scriv/internal/engine/buffer"
	"scriv/internal/engine/history"
)

// Clipboard abstracts the clipboard so tests can inject an in-memory one.
type Clipboard interface {
	Write(text string)
	Read() string
}

// systemClipboard is the default Clipboard, backed by clipboardx.
type systemClipboard struct{}

func (systemClipboard) Write(text string) { clipboardx.Write(text) }
func (systemClipboard) Read() string      { return clipboardx.Read() }

// Session is the facade over the editing subsystem. It owns one buffer,
// one history, and a clipboard, and exposes a handful of high-level
// verbs; each verb hides the command construction and history
// bookkeeping the subsystem requires.
type Session struct {
	buf  *buffer.Buffer
	hist *history.History
	clip Clipboard

	initContent string
}

// Option configures a Session during creation.
type Option func(*Session)

// WithContent sets the initial buffer content.
func WithContent(content string) Option {
	return func(s *Session) {
		s.initContent = content
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) {
		s.clip = c
	}
}

// New creates a Session with the given options.
func New(opts ...Option) *Session {
	s := &Session{
		hist: history.NewHistory(),
		clip: systemClipboard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buf = buffer.NewFromString(s.initContent)
	return s
}

// Type appends text at the end of the buffer.
func (s *Session) Type(text string) error {
	return s.hist.Execute(s.buf, history.NewAppendCommand(text))
}

// InsertAt inserts text at a position.
func (s *Session) InsertAt(pos buffer.ByteOffset, text string) error {
	return s.hist.Execute(s.buf, history.NewInsertCommand(text, pos))
}

// Erase deletes n bytes at pos.
func (s *Session) Erase(pos, n buffer.ByteOffset) error {
	return s.hist.Execute(s.buf, history.NewDeleteCommand(pos, n))
}

// Rewrite replaces n bytes at pos with text.
func (s *Session) Rewrite(pos, n buffer.ByteOffset, text string) error {
	return s.hist.Execute(s.buf, history.NewReplaceCommand(pos, n, text))
}

// Cut deletes n bytes at pos and places them on the clipboard.
// Undo restores the buffer; the clipboard keeps the cut text.
func (s *Session) Cut(pos, n buffer.ByteOffset) error {
	text := s.buf.TextRange(buffer.Span(pos, n))
	if err := s.Erase(pos, n); err != nil {
		return err
	}
	s.clip.Write(text)
	return nil
}

// Paste inserts the clipboard content at pos. An empty clipboard is a
// no-op that records nothing.
func (s *Session) Paste(pos buffer.ByteOffset) error {
	text := s.clip.Read()
	if text == "" {
		return nil
	}
	return s.InsertAt(pos, text)
}

// Undo reverses the most recent not-yet-undone command. The boolean is
// false when there was nothing to undo; that outcome is informational,
// not an error.
func (s *Session) Undo() (bool, error) {
	err := s.hist.Undo(s.buf)
	if errors.Is(err, history.ErrNothingToUndo) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Text returns the current buffer content.
func (s *Session) Text() string {
	return s.buf.Text()
}

// Len returns the buffer length in bytes.
func (s *Session) Len() buffer.ByteOffset {
	return s.buf.Len()
}

// CanUndo returns true if an undo is available.
func (s *Session) CanUndo() bool {
	return s.hist.CanUndo()
}

// History returns the audit trail of every command executed in this
// session, in execution order, undone or not.
func (s *Session) History() []history.EntryInfo {
	return s.hist.Entries()
}
