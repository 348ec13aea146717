package sorted

import (
	"fmt"

	"github.com/xgzlucario/sorted/option"
)

// Clone returns an independent copy of the whole list.
func (l *List[T]) Clone() *List[T] {
	out, _ := l.CloneRange(0, l.size)
	return out
}

// CloneRange returns a new list holding a copy of elements [from, to)
// in original order, running in the same direction.
func (l *List[T]) CloneRange(from, to int) (*List[T], error) {
	if err := l.checkRange(from, to); err != nil {
		return nil, err
	}

	out := New(l.cmp, option.Option{Ascending: l.asc, InitCapacity: to - from})
	out.size = to - from
	copy(out.data, l.data[from:to])

	return out, nil
}

// CloneReverse returns a new list holding elements [from, to) in
// reversed order, tagged with the opposite direction. No re-sort
// happens: the reversed slice of a sorted run is already consistent
// with the flipped order.
func (l *List[T]) CloneReverse(from, to int) (*List[T], error) {
	if err := l.checkRange(from, to); err != nil {
		return nil, err
	}

	out := New(l.cmp, option.Option{Ascending: !l.asc, InitCapacity: to - from})
	out.size = to - from
	for i := 0; i < out.size; i++ {
		out.data[out.size-i-1] = l.data[from+i]
	}

	return out, nil
}

// checkRange validates [from, to) against [0, size].
func (l *List[T]) checkRange(from, to int) error {
	if from < 0 || from > l.size || to < 0 || to > l.size {
		return fmt.Errorf("range [%d,%d) of %d: %w", from, to, l.size, ErrOutOfBounds)
	}
	if from > to {
		return fmt.Errorf("range [%d,%d): %w", from, to, ErrInvalidRange)
	}
	return nil
}
