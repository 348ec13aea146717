// Package sorted is a generic list kept continuously sorted on insert,
// backed by a growable contiguous buffer.
package sorted

import (
	"fmt"
	"strings"

	"github.com/xgzlucario/sorted/option"
)

// Cmp is the ordering policy over elements: negative if a orders
// before b, zero if equal, positive if a orders after b.
type Cmp[T any] func(a, b T) int

// List is a sorted array list. Elements live in data[0:size] in the
// direction selected at construction; data[size:] is unused slack.
// Not safe for concurrent use.
type List[T any] struct {
	cmp     Cmp[T]
	data    []T
	size    int
	asc     bool
	version uint64
}

// New creates an empty list with the given ordering policy.
func New[T any](cmp Cmp[T], opts ...option.Option) *List[T] {
	opt := option.DefaultOption
	if len(opts) > 0 {
		opt = opts[0]
	}

	return &List[T]{
		cmp:  cmp,
		data: make([]T, opt.InitCapacity),
		asc:  opt.Ascending,
	}
}

// From creates an ascending list holding elems, inserted one by one.
// The input need not be pre-sorted.
func From[T any](cmp Cmp[T], elems ...T) *List[T] {
	return FromWithOption(cmp, option.DefaultOption, elems...)
}

// FromWithOption
func FromWithOption[T any](cmp Cmp[T], opt option.Option, elems ...T) *List[T] {
	if opt.InitCapacity < len(elems) {
		opt.InitCapacity = len(elems)
	}
	l := New(cmp, opt)
	for _, e := range elems {
		l.Insert(e)
	}
	return l
}

// Len returns the count of elements held.
func (l *List[T]) Len() int { return l.size }

// Cap returns the capacity of the backing buffer.
func (l *List[T]) Cap() int { return len(l.data) }

// IsAscending
func (l *List[T]) IsAscending() bool { return l.asc }

// Insert adds v at the index keeping the list sorted and returns that
// index. Duplicates are accepted and land next to their equals.
// O(log n) comparisons plus an O(n) shift.
func (l *List[T]) Insert(v T) int {
	l.version++

	idx := l.PositionOf(v)
	target := l.data

	// On overflow grow to cap*3/2+1 and carry over only the prefix
	// below idx, the suffix is moved by the shift below.
	if l.size+1 > len(l.data) {
		target = make([]T, len(l.data)*3/2+1)
		copy(target, l.data[:idx])
	}

	copy(target[idx+1:], l.data[idx:l.size])
	target[idx] = v

	l.data = target
	l.size++
	return idx
}

// PositionOf returns the index where v belongs to keep the list
// sorted. When an equal element exists, the first one hit by the
// binary search midpoints is returned, which is not necessarily the
// leftmost of a run of duplicates. An empty list always reports 0.
func (l *List[T]) PositionOf(v T) int {
	lo, hi := 0, l.size
	for lo < hi {
		mid := lo + (hi-lo)/2

		c := l.cmp(l.data[mid], v)
		if !l.asc {
			c = -c
		}

		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid
		}
	}
	return lo
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("get %d of %d: %w", i, l.size, ErrOutOfBounds)
	}
	return l.data[i], nil
}

// Remove deletes the element at index i and returns it. Elements
// after i shift down one slot; capacity is kept for reuse.
func (l *List[T]) Remove(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("remove %d of %d: %w", i, l.size, ErrOutOfBounds)
	}
	l.version++

	at := l.data[i]
	copy(l.data[i:], l.data[i+1:l.size])

	// release the vacated slot.
	var zero T
	l.size--
	l.data[l.size] = zero

	return at, nil
}

// RemoveValue deletes the first element equal to v and reports
// whether one was found.
func (l *List[T]) RemoveValue(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.Remove(i)
	return true
}

// IndexOf returns the index of the first element equal to v under the
// ordering policy, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i := 0; i < l.size; i++ {
		if l.cmp(l.data[i], v) == 0 {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v under
// the ordering policy, or -1.
func (l *List[T]) LastIndexOf(v T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.cmp(l.data[i], v) == 0 {
			return i
		}
	}
	return -1
}

// Clear drops every element. The backing buffer is kept.
func (l *List[T]) Clear() {
	l.version++

	var zero T
	for i := 0; i < l.size; i++ {
		l.data[i] = zero
	}
	l.size = 0
}

// ToSlice returns a fresh copy of the logical sequence.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.size)
	copy(out, l.data[:l.size])
	return out
}

// CopyTo copies the logical sequence into dst when it has room,
// zeroing the remainder of dst, and returns dst. A too-small dst is
// replaced by a fresh exact-size slice.
func (l *List[T]) CopyTo(dst []T) []T {
	if len(dst) < l.size {
		return l.ToSlice()
	}

	copy(dst, l.data[:l.size])

	var zero T
	for i := l.size; i < len(dst); i++ {
		dst[i] = zero
	}
	return dst
}

// Equal reports whether both lists run in the same direction and hold
// equal sequences under l's ordering policy. A nil other is never
// equal.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil {
		return false
	}
	if l.asc != other.asc || l.size != other.size {
		return false
	}
	for i := 0; i < l.size; i++ {
		if l.cmp(l.data[i], other.data[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders the sequence comma-joined, bracketed [} when
// ascending and {] when descending.
func (l *List[T]) String() string {
	lb, rb := "[", "}"
	if !l.asc {
		lb, rb = "{", "]"
	}

	var b strings.Builder
	b.WriteString(lb)
	for i := 0; i < l.size; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", l.data[i])
	}
	b.WriteString(rb)
	return b.String()
}
