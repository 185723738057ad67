package vec

// Ops declares how a Vector runs the lifecycle of its element type.
// Every field is optional; the zero Ops describes a plain value type
// whose assignment is a complete copy and which owns no resources.
type Ops[T any] struct {
	// New default-constructs an element when Resize grows the
	// sequence. nil means the zero value, which cannot fail.
	New func() (T, error)

	// Copy produces an independent copy of an element. nil means the
	// type copies correctly by plain assignment.
	Copy func(T) (T, error)

	// Move transfers the value out of src, leaving src empty. nil
	// means plain assignment (the source slot is zeroed). A non-nil
	// Move declares that the type has a dedicated transfer that
	// cannot fail, so relocation prefers it over Copy.
	Move func(src *T) T

	// Drop releases resources owned by an element. nil means no-op.
	// Drop must tolerate empty (moved-from) values.
	Drop func(*T)

	// NoCopy marks the element type move-only: Clone and CopyFrom
	// refuse to run, and relocation always moves.
	NoCopy bool
}

// relocateByMove reports whether grown storage is filled by moving
// live elements rather than copying them. Moving is chosen when the
// type has an infallible transfer, or when it cannot be copied at all.
// Otherwise relocation copies, so that a failure partway leaves the
// original sequence intact.
func (ops *Ops[T]) relocateByMove() bool {
	return ops.Move != nil || ops.NoCopy || ops.Copy == nil
}

func (ops *Ops[T]) construct() (T, error) {
	if ops.New == nil {
		var zero T
		return zero, nil
	}
	return ops.New()
}

func (ops *Ops[T]) copyOf(v T) (T, error) {
	if ops.NoCopy {
		var zero T
		return zero, ErrNotCopyable
	}
	if ops.Copy == nil {
		return v, nil
	}
	return ops.Copy(v)
}

// moveOut empties src and returns what it held.
func (ops *Ops[T]) moveOut(src *T) T {
	if ops.Move != nil {
		return ops.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v
}

// drop runs Drop and re-zeroes the slot, so a vacated slot neither
// pins heap objects nor reads as a live value.
func (ops *Ops[T]) drop(p *T) {
	if ops.Drop != nil {
		ops.Drop(p)
	}
	var zero T
	*p = zero
}
