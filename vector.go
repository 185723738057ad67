package vec

import (
	"fmt"

	"github.com/pkg/errors"

	"vec/rawmem"
)

// ErrOutOfRange is returned by At when the index does not name a live
// element.
var ErrOutOfRange = errors.New("vec: index out of range")

// ErrNotCopyable is returned by copying operations on a vector whose
// element type is marked NoCopy.
var ErrNotCopyable = errors.New("vec: element type is not copyable")

// Vector is a growable sequence of T. Slots [0, Len()) of the backing
// buffer hold live elements; slots [Len(), Cap()) are unconstructed.
// Capacity grows geometrically and never shrinks, except that MoveFrom
// leaves the source with no storage at all.
//
// Mutating operations that reallocate or shift elements invalidate
// every address previously handed out by At, Ref, or Raw.
type Vector[T any] struct {
	data rawmem.Buffer[T]
	size int
	ops  Ops[T]
}

// New returns an empty vector of a plain value type.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWith returns an empty vector whose elements are managed by ops.
func NewWith[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewSize returns a vector holding n default-constructed elements.
func NewSize[T any](n int) (*Vector[T], error) {
	return NewSizeWith(n, Ops[T]{})
}

// NewSizeWith returns a vector of n elements built by ops.New. If a
// construction fails, the already-built prefix is dropped and the
// error returned.
func NewSizeWith[T any](n int, ops Ops[T]) (*Vector[T], error) {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative size %d", n))
	}
	v := &Vector[T]{data: rawmem.New[T](n), ops: ops}
	if err := v.constructTail(0, n); err != nil {
		return nil, err
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots reserved.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// Reserve grows capacity to at least n; smaller n is a no-op. Live
// elements are relocated by move or copy per the element traits. If a
// copy fails, the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	next := rawmem.New[T](n)
	if err := v.relocate(v.live(), next.Slice(0, v.size)); err != nil {
		return err
	}
	v.adopt(&next)
	return nil
}

// Resize sets the length to n. Shrinking drops the trailing elements
// and keeps capacity; growing reserves max(n, 2*Cap()) if needed, then
// default-constructs the new tail. A failing construction drops the
// partially built tail and leaves the length unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative size %d", n))
	}
	switch {
	case n < v.size:
		v.dropRange(v.data.Slice(n, v.size))
	case n > v.size:
		if n > v.data.Cap() {
			if err := v.Reserve(max(n, 2*v.data.Cap())); err != nil {
				return err
			}
		}
		if err := v.constructTail(v.size, n); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// PushBack appends val and returns its address. Amortized O(1).
func (v *Vector[T]) PushBack(val T) (*T, error) {
	return v.Emplace(v.size, func() (T, error) { return val, nil })
}

// EmplaceBack appends an element produced by build and returns its
// address. With spare capacity the element is built straight into its
// slot; when the vector has to grow, it is built into the new block
// before any live element is relocated, so a failing build leaves the
// vector untouched.
func (v *Vector[T]) EmplaceBack(build func() (T, error)) (*T, error) {
	return v.Emplace(v.size, build)
}

// PopBack drops the last element. Calling it on an empty vector is a
// contract violation.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.ops.drop(v.data.At(v.size - 1))
	v.size--
}

// Insert places val at position i, shifting the suffix right by one.
// i == Len() appends. Returns the address of the inserted element.
func (v *Vector[T]) Insert(i int, val T) (*T, error) {
	return v.Emplace(i, func() (T, error) { return val, nil })
}

// Emplace constructs an element at position i from build, shifting the
// suffix right by one. i must be in [0, Len()]; i == Len() appends.
// Shifting is done with the element move, which cannot fail, so the
// only failure points are build itself and copy-based relocation when
// the vector grows. Both leave the sequence unchanged.
func (v *Vector[T]) Emplace(i int, build func() (T, error)) (*T, error) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: insert position %d out of range [0, %d]", i, v.size))
	}
	var err error
	if v.size < v.data.Cap() {
		err = v.emplaceInPlace(i, build)
	} else {
		err = v.emplaceGrow(i, build)
	}
	if err != nil {
		return nil, err
	}
	v.size++
	return v.data.At(i), nil
}

// Erase removes the element at i and shifts the suffix left by one,
// so the element previously at i+1 now lives at i. i must be in
// [0, Len()).
func (v *Vector[T]) Erase(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: erase position %d out of range [0, %d)", i, v.size))
	}
	slots := v.live()
	v.ops.drop(&slots[i])
	for j := i; j+1 < v.size; j++ {
		slots[j] = v.ops.moveOut(&slots[j+1])
	}
	v.size--
}

// At returns the address of element i, or ErrOutOfRange when i does
// not name a live element.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, len %d", i, v.size)
	}
	return v.data.At(i), nil
}

// Ref returns the address of element i. Out-of-range positions are a
// contract violation; callers that want a recoverable error use At.
func (v *Vector[T]) Ref(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return v.data.At(i)
}

// Get returns element i by value.
func (v *Vector[T]) Get(i int) T {
	return *v.Ref(i)
}

// Set drops the current element at i and stores val in its place.
func (v *Vector[T]) Set(i int, val T) {
	p := v.Ref(i)
	v.ops.drop(p)
	*p = val
}

// Swap exchanges contents, capacity, and element traits with other in
// O(1). Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
}

// Clone returns a deep copy with capacity equal to Len(). If an
// element copy fails, the partially built clone is dropped and the
// error returned; the receiver is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{data: rawmem.New[T](v.size), ops: v.ops}
	src := v.live()
	dst := out.data.Slice(0, v.size)
	for i := range src {
		c, err := v.ops.copyOf(src[i])
		if err != nil {
			v.dropRange(dst[:i])
			return nil, errors.Wrapf(err, "vec: clone element %d", i)
		}
		dst[i] = c
	}
	out.size = v.size
	return out, nil
}

// CopyFrom replaces the contents with a deep copy of other. When the
// current capacity cannot hold other's elements, the copy is built
// aside and swapped in, so a failure leaves the vector unchanged.
// Within capacity the copy is element-wise without reallocation; a
// failure partway may leave a prefix already overwritten.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if v.data.Cap() < other.size {
		fresh, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(fresh)
		fresh.Destroy()
		return nil
	}
	src := other.live()
	for i := 0; i < min(v.size, other.size); i++ {
		c, err := v.ops.copyOf(src[i])
		if err != nil {
			return errors.Wrapf(err, "vec: copy element %d", i)
		}
		p := v.data.At(i)
		v.ops.drop(p)
		*p = c
	}
	if other.size < v.size {
		v.dropRange(v.data.Slice(other.size, v.size))
	} else {
		dst := v.data.Slice(v.size, other.size)
		for i := range dst {
			c, err := v.ops.copyOf(src[v.size+i])
			if err != nil {
				v.dropRange(dst[:i])
				return errors.Wrapf(err, "vec: copy element %d", v.size+i)
			}
			dst[i] = c
		}
	}
	v.size = other.size
	return nil
}

// MoveFrom drops the current contents, then steals other's storage
// and length, leaving other empty with no reserved slots. Never fails.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Destroy()
	v.data = other.data.Move()
	v.size = other.size
	v.ops = other.ops
	other.size = 0
}

// Destroy drops every live element and releases the storage; the
// vector stays usable as an empty one. Vectors whose elements own
// resources must be destroyed explicitly: garbage collection alone
// never runs Drop.
func (v *Vector[T]) Destroy() {
	v.dropRange(v.live())
	v.size = 0
	_ = v.data.Move()
}

// live returns the window of constructed slots.
func (v *Vector[T]) live() []T {
	return v.data.Slice(0, v.size)
}

// constructTail default-constructs slots [from, to), unwinding the
// built prefix on failure.
func (v *Vector[T]) constructTail(from, to int) error {
	slots := v.data.Slice(from, to)
	for i := range slots {
		e, err := v.ops.construct()
		if err != nil {
			v.dropRange(slots[:i])
			return errors.Wrapf(err, "vec: construct element %d", from+i)
		}
		slots[i] = e
	}
	return nil
}

// relocate fills dst with the live elements of src, moving or copying
// per the element traits. On a copy failure the constructed prefix of
// dst is dropped and src is left untouched.
func (v *Vector[T]) relocate(src, dst []T) error {
	if v.ops.relocateByMove() {
		for i := range src {
			dst[i] = v.ops.moveOut(&src[i])
		}
		return nil
	}
	for i := range src {
		c, err := v.ops.Copy(src[i])
		if err != nil {
			v.dropRange(dst[:i])
			return errors.Wrapf(err, "vec: relocate element %d", i)
		}
		dst[i] = c
	}
	return nil
}

// adopt installs next as the backing storage and disposes of the
// originals left in the old block.
func (v *Vector[T]) adopt(next *rawmem.Buffer[T]) {
	old := v.live()
	v.data.Swap(next)
	v.discardOld(old)
}

// discardOld disposes of relocation sources. After a move relocation
// the slots are already empty; after a copy relocation the originals
// are still live and get dropped here.
func (v *Vector[T]) discardOld(src []T) {
	if v.ops.relocateByMove() {
		return
	}
	v.dropRange(src)
}

func (v *Vector[T]) dropRange(s []T) {
	for i := range s {
		v.ops.drop(&s[i])
	}
}

// emplaceInPlace builds the new element and opens a gap at i within
// the current block: the last element seeds the new end slot, the
// range [i, len-1) shifts right, and the new value lands in slot i.
func (v *Vector[T]) emplaceInPlace(i int, build func() (T, error)) error {
	if i == v.size {
		e, err := build()
		if err != nil {
			return errors.Wrap(err, "vec: build element")
		}
		*v.data.At(i) = e
		return nil
	}
	tmp, err := build()
	if err != nil {
		return errors.Wrap(err, "vec: build element")
	}
	slots := v.data.Slice(0, v.size+1)
	slots[v.size] = v.ops.moveOut(&slots[v.size-1])
	for j := v.size - 1; j > i; j-- {
		slots[j] = v.ops.moveOut(&slots[j-1])
	}
	slots[i] = v.ops.moveOut(&tmp)
	return nil
}

// emplaceGrow allocates the doubled block, builds the new element in
// its final slot, then relocates the prefix and suffix around it. Any
// failure drops what was built in the new block and leaves the old
// block live and untouched.
func (v *Vector[T]) emplaceGrow(i int, build func() (T, error)) error {
	next := rawmem.New[T](max(1, 2*v.data.Cap()))
	e, err := build()
	if err != nil {
		return errors.Wrap(err, "vec: build element")
	}
	*next.At(i) = e
	if err := v.relocate(v.data.Slice(0, i), next.Slice(0, i)); err != nil {
		v.ops.drop(next.At(i))
		return err
	}
	if err := v.relocate(v.data.Slice(i, v.size), next.Slice(i+1, v.size+1)); err != nil {
		v.ops.drop(next.At(i))
		v.dropRange(next.Slice(0, i))
		return err
	}
	v.adopt(&next)
	return nil
}
