package rawmem

import "fmt"

// Buffer owns storage for exactly Cap() slots of T. Ownership is
// exclusive: it changes hands only through Move and Swap, and a Buffer
// value must not be duplicated by plain assignment (two owners of one
// block would both hand out its slots). The zero Buffer is a valid
// empty owner.
type Buffer[T any] struct {
	slots []T
}

// New reserves storage for capacity slots. Capacity 0 performs no
// allocation. Go has no recoverable out-of-memory signal, so a failed
// allocation aborts the process; what callers rely on instead is
// ordering: allocation always happens before any live element is
// touched.
func New[T any](capacity int) Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("rawmem: negative capacity %d", capacity))
	}
	if capacity == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{slots: make([]T, capacity)}
}

// Cap returns the number of slots reserved.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// At returns the address of slot i. The slot may be uninitialized;
// interpreting its contents is the caller's problem.
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("rawmem: slot %d out of capacity %d", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Slice returns the window [i, j) aliasing the buffer. j may equal
// Cap(), the slot-arithmetic equivalent of a one-past-the-end address.
func (b *Buffer[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > len(b.slots) {
		panic(fmt.Sprintf("rawmem: window [%d, %d) out of capacity %d", i, j, len(b.slots)))
	}
	return b.slots[i:j:j]
}

// Swap exchanges ownership of the two blocks in O(1). Never fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Move transfers ownership to the returned Buffer and leaves the
// receiver as an empty owner. The two do not alias afterwards.
func (b *Buffer[T]) Move() Buffer[T] {
	out := Buffer[T]{slots: b.slots}
	b.slots = nil
	return out
}
