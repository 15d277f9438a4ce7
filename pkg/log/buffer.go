package log

import (
	"fmt"
	"io"
	"sync"
)

const defaultBufferCapacity = 100

// CircularBuffer is an [io.Writer] that keeps the most recent writes. Each
// call to Write is one entry; once full, the oldest entry is overwritten.
// It is safe for concurrent use.
type CircularBuffer struct {
	entries [][]byte
	next    int
	size    int
	mu      sync.RWMutex
}

// NewCircularBuffer creates a [CircularBuffer] holding up to capacity
// entries. A capacity of zero or less uses a default of 100.
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}

	return &CircularBuffer{
		entries: make([][]byte, capacity),
	}
}

// Write implements [io.Writer]. p is copied.
func (cb *CircularBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.entries[cb.next] = append([]byte(nil), p...)
	cb.next = (cb.next + 1) % len(cb.entries)
	cb.size = min(cb.size+1, len(cb.entries))

	return len(p), nil
}

// Entries returns copies of the stored entries, oldest first.
func (cb *CircularBuffer) Entries() [][]byte {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.size == 0 {
		return nil
	}

	capacity := len(cb.entries)
	start := (cb.next - cb.size + capacity) % capacity

	out := make([][]byte, 0, cb.size)
	for i := range cb.size {
		out = append(out, append([]byte(nil), cb.entries[(start+i)%capacity]...))
	}

	return out
}

// Size returns the number of stored entries.
func (cb *CircularBuffer) Size() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.size
}

// Capacity returns the maximum number of entries.
func (cb *CircularBuffer) Capacity() int {
	return len(cb.entries)
}

// IsFull reports whether the buffer holds [CircularBuffer.Capacity] entries.
func (cb *CircularBuffer) IsFull() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.size == len(cb.entries)
}

// Clear removes all entries.
func (cb *CircularBuffer) Clear() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	clear(cb.entries)
	cb.next = 0
	cb.size = 0
}

// WriteTo implements [io.WriterTo]. Entries are written oldest first.
func (cb *CircularBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, entry := range cb.Entries() {
		n, err := w.Write(entry)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write log entry: %w", err)
		}
	}

	return total, nil
}

// Flush writes all entries to w and clears the buffer.
func (cb *CircularBuffer) Flush(w io.Writer) error {
	_, err := cb.WriteTo(w)
	if err != nil {
		return err
	}

	cb.Clear()

	return nil
}
