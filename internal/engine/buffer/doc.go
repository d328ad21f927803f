// Package buffer provides the thread-safe text receiver that edit
// commands operate on. It holds a single mutable string and exposes
// position-addressed insertion and deletion.
//
// Basic usage:
//
//	buf := buffer.NewFromString("Hello, World!")
//	buf.Insert(7, "Beautiful ")                  // "Hello, Beautiful World!"
//	removed, _ := buf.Delete(buffer.Span(0, 7))  // "Beautiful World!"
//
// Positions are byte offsets; ranges are half-open [Start, End). Out of
// range positions fail fast with ErrOffsetOutOfRange rather than being
// clamped, so a misplaced edit never silently corrupts the content.
package buffer
