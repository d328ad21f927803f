package buffer

import (
	"errors"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// ByteOffset represents a byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Buffer holds a single mutable string and supports position-addressed
// insertion and deletion. It is the receiver all edit commands act on.
// All methods are thread-safe.
type Buffer struct {
	mu      sync.RWMutex
	content string
}

// New creates a new empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string) *Buffer {
	return &Buffer{content: s}
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.content))
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// TextRange returns the text within r, clamped to the buffer bounds.
// An inverted range yields the empty string.
func (b *Buffer) TextRange(r Range) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > ByteOffset(len(b.content)) {
		end = ByteOffset(len(b.content))
	}
	if start >= end {
		return ""
	}
	return b.content[start:end]
}

// Insert splices text into the buffer at offset.
// The offset must satisfy 0 <= offset <= Len; anything else returns
// ErrOffsetOutOfRange without touching the content.
func (b *Buffer) Insert(offset ByteOffset, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > ByteOffset(len(b.content)) {
		return ErrOffsetOutOfRange
	}
	if text == "" {
		return nil
	}

	var sb strings.Builder
	sb.Grow(len(b.content) + len(text))
	sb.WriteString(b.content[:offset])
	sb.WriteString(text)
	sb.WriteString(b.content[offset:])
	b.content = sb.String()
	return nil
}

// Delete removes the text within r and returns the removed substring.
// Returns ErrRangeInvalid for an inverted range and ErrOffsetOutOfRange
// when r extends past the buffer.
func (b *Buffer) Delete(r Range) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !r.IsValid() {
		return "", ErrRangeInvalid
	}
	if r.Start < 0 || r.End > ByteOffset(len(b.content)) {
		return "", ErrOffsetOutOfRange
	}

	removed := b.content[r.Start:r.End]
	b.content = b.content[:r.Start] + b.content[r.End:]
	return removed, nil
}
