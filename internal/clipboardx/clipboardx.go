// Package clipboardx wraps the system clipboard with an in-process
// fallback, so cut and paste keep working in environments without a
// clipboard service (headless CI, bare containers).
package clipboardx

import (
	"sync"

	"github.com/atotto/clipboard"
)

var (
	mu       sync.Mutex
	internal string
)

// Write stores text on the system clipboard when one is available and
// always on the internal fallback. Returns true if the system clipboard
// accepted the write.
func Write(text string) bool {
	mu.Lock()
	internal = text
	mu.Unlock()

	return clipboard.WriteAll(text) == nil
}

// Read returns the system clipboard content, falling back to the last
// internally written text when the system clipboard is empty or
// unavailable.
func Read() string {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text
	}

	mu.Lock()
	defer mu.Unlock()
	return internal
}
