package smallvec

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Vector is a contiguous, random-access sequence with small-buffer
// optimization: elements live directly inside the struct until the inline
// capacity is exceeded, after which they spill to a heap-allocated buffer.
//
// A is the inline backing array and must be [N]T for some constant N >= 0;
// it fixes the inline capacity per instantiation:
//
//	var v smallvec.Vector[int, [8]int]
//
// The zero value is an empty vector in inline mode and is ready to use.
// Use New to additionally assert at runtime that A has the required shape.
//
// Exactly one region holds live elements at any time. Slots of the active
// region at index >= Len() are always the zero value of T; every operation
// that vacates a slot zeroes it so the garbage collector can reclaim
// whatever the element referenced.
//
// Copy with Clone or CopyFrom and move with MoveFrom. Plain struct
// assignment of a spilled Vector aliases the heap buffer and must be
// avoided.
//
// Vector is not safe for concurrent use.
type Vector[T any, A any] struct {
	inline  A
	heap    []T
	n       int
	spilled bool
}

// New returns an empty Vector after verifying that A is an array of T.
// It panics if A has any other shape, since the inline region is
// reinterpreted as element storage and a mismatched A would corrupt memory.
func New[T any, A any]() Vector[T, A] {
	at := reflect.TypeOf((*A)(nil)).Elem()
	et := reflect.TypeOf((*T)(nil)).Elem()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic(fmt.Sprintf("smallvec: backing array %v is not an array of %v", at, et))
	}
	return Vector[T, A]{}
}

// inlineCap is the number of elements the inline region can hold.
// Constant-folds to sizeof(A)/sizeof(T). Zero-size element types report 0
// and live entirely in the heap slice, which never allocates for them.
func (v *Vector[T, A]) inlineCap() int {
	var t T
	ts := unsafe.Sizeof(t)
	if ts == 0 {
		return 0
	}
	return int(unsafe.Sizeof(v.inline) / ts)
}

// inlineAll views the whole inline region as element storage
func (v *Vector[T, A]) inlineAll() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), v.inlineCap())
}

// active returns the full-capacity slice of whichever region currently
// holds the elements.
func (v *Vector[T, A]) active() []T {
	if v.spilled {
		return v.heap
	}
	return v.inlineAll()
}

// Len returns the number of live elements
func (v *Vector[T, A]) Len() int {
	return v.n
}

// Empty reports whether the vector holds no elements
func (v *Vector[T, A]) Empty() bool {
	return v.n == 0
}

// Cap returns the capacity of the active region: the inline capacity while
// inline, the heap buffer's capacity after a spill.
func (v *Vector[T, A]) Cap() int {
	if v.spilled {
		return len(v.heap)
	}
	return v.inlineCap()
}

// Inlined reports whether elements currently live in the inline region
func (v *Vector[T, A]) Inlined() bool {
	return !v.spilled
}

// Slice returns the live elements as a slice view into the active region.
// The view is invalidated by any mutating operation that grows the vector.
func (v *Vector[T, A]) Slice() []T {
	return v.active()[:v.n]
}

// At returns a pointer to the element at index i. It panics if i is out of
// range. The pointer is invalidated by any append that triggers growth.
func (v *Vector[T, A]) At(i int) *T {
	return &v.Slice()[i]
}

// Data returns the base address of the active region. Useful for checking
// whether two vectors share storage; the address is stable until the next
// growth.
func (v *Vector[T, A]) Data() *T {
	if v.spilled {
		return unsafe.SliceData(v.heap)
	}
	return (*T)(unsafe.Pointer(&v.inline))
}

// Push appends a copy of x, growing into (or regrowing) heap storage when
// the active region is full. Amortized O(1).
func (v *Vector[T, A]) Push(x T) {
	v.Reserve(v.n + 1)
	v.active()[v.n] = x
	v.n++
}

// PushMove appends the value at src and zeroes *src, transferring ownership
// of whatever the element referenced into the vector. This is the append to
// use for owned-resource element types where two live copies would be a bug.
func (v *Vector[T, A]) PushMove(src *T) {
	v.Reserve(v.n + 1)
	a := v.active()
	a[v.n] = *src
	var zero T
	*src = zero
	v.n++
}

// Emplace appends a zero element and returns a pointer to it for in-place
// construction. The pointer is invalidated by the next growth.
func (v *Vector[T, A]) Emplace() *T {
	v.Reserve(v.n + 1)
	v.n++
	// slots beyond the old length are zero by invariant
	return &v.active()[v.n-1]
}

// Reserve ensures capacity for at least n elements. Growing always moves
// to heap storage: a fresh buffer of at least double the current capacity
// is allocated, live elements are copied over in order, and a vacated
// inline region is zeroed so moved-out elements do not pin references.
// There is no transition back to inline storage.
func (v *Vector[T, A]) Reserve(n int) {
	c := v.Cap()
	if n <= c {
		return
	}
	newCap := 2 * c
	if newCap < n {
		newCap = n
	}
	buf := make([]T, newCap)
	copy(buf, v.Slice())
	if !v.spilled {
		clear(v.inlineAll()[:v.n])
	}
	v.heap = buf
	v.spilled = true
}

// Clear zeroes all live elements and resets the length to zero. Storage
// mode and capacity are retained: a vector that spilled to the heap keeps
// its buffer, so a clear-and-refill cycle does not reallocate.
func (v *Vector[T, A]) Clear() {
	clear(v.Slice())
	v.n = 0
}

// Clone returns an independent deep copy holding the same elements.
func (v *Vector[T, A]) Clone() Vector[T, A] {
	var out Vector[T, A]
	out.CopyFrom(v)
	return out
}

// CopyFrom replaces the receiver's contents with a copy of src's elements.
// Existing elements are disposed of first; the receiver's buffer is reused
// when it is large enough.
func (v *Vector[T, A]) CopyFrom(src *Vector[T, A]) {
	if v == src {
		return
	}
	v.Clear()
	v.Reserve(src.n)
	copy(v.active(), src.Slice())
	v.n = src.n
}

// MoveFrom transfers src's contents into the receiver and leaves src empty.
// The strategy depends on src's storage mode:
//
//   - spilled src: ownership of the heap buffer moves as a whole, so the
//     receiver's Data() afterward equals src's Data() before the call.
//     O(1), no element is individually relocated.
//   - inline src: elements are relocated one by one into the receiver's own
//     inline region, so the receiver's Data() differs from src's.
//
// The receiver's prior elements are disposed of first. After the call src
// has length zero and is back in inline mode.
func (v *Vector[T, A]) MoveFrom(src *Vector[T, A]) {
	if v == src {
		return
	}
	v.Clear()
	if src.spilled {
		v.heap = src.heap
		v.n = src.n
		v.spilled = true
		src.heap = nil
		src.n = 0
		src.spilled = false
		return
	}
	v.heap = nil
	v.spilled = false
	live := src.Slice()
	copy(v.inlineAll(), live)
	v.n = src.n
	clear(live)
	src.n = 0
}
