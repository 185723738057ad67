package vec

import "iter"

// All ranges over (index, element) pairs, front to back. The sequence
// reads the backing buffer directly: any operation that reallocates or
// shifts elements invalidates it, and mutating the vector mid-range is
// a contract violation. Stopping early is fine.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Backward ranges over (index, element) pairs, back to front, under
// the same invalidation rules as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Values ranges over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// Raw returns the live window [0, Len()) aliasing the backing buffer.
// It is the address-based view of the sequence: valid only until the
// next reallocating or shifting operation, and writes through it
// bypass the element traits.
func (v *Vector[T]) Raw() []T {
	return v.data.Slice(0, v.size)
}
