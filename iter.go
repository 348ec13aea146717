package sorted

// Iterator is a cursor over the list. It snapshots the list's version
// stamp at creation; any structural modification of the list while
// the iterator is in use makes every accessor panic with
// ErrConcurrentModification instead of walking inconsistent state.
type Iterator[T any] struct {
	l   *List[T]
	idx int
	ver uint64
}

// Iter returns an iterator positioned before the first element.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{l: l, idx: -1, ver: l.version}
}

// check
func (it *Iterator[T]) check() {
	if it.ver != it.l.version {
		panic(ErrConcurrentModification)
	}
}

// Valid reports whether the cursor sits on an element.
func (it *Iterator[T]) Valid() bool {
	it.check()
	return it.idx >= 0 && it.idx < it.l.size
}

// SeekToFirst moves the cursor onto the first element.
func (it *Iterator[T]) SeekToFirst() {
	it.check()
	it.idx = 0
}

// SeekToLast moves the cursor onto the last element.
func (it *Iterator[T]) SeekToLast() {
	it.check()
	it.idx = it.l.size - 1
}

// Seek moves the cursor to the position v occupies or would occupy,
// per PositionOf.
func (it *Iterator[T]) Seek(v T) {
	it.check()
	it.idx = it.l.PositionOf(v)
}

// Next
func (it *Iterator[T]) Next() {
	it.check()
	it.idx++
}

// Prev
func (it *Iterator[T]) Prev() {
	it.check()
	it.idx--
}

// Index returns the cursor position.
func (it *Iterator[T]) Index() int {
	it.check()
	return it.idx
}

// Item returns the element under the cursor. Only call when Valid.
func (it *Iterator[T]) Item() T {
	it.check()
	return it.l.data[it.idx]
}

// Range calls f for each element in order until f returns false. The
// list must not be structurally modified from inside f.
func (l *List[T]) Range(f func(i int, v T) bool) {
	ver := l.version
	for i := 0; i < l.size; i++ {
		if l.version != ver {
			panic(ErrConcurrentModification)
		}
		if !f(i, l.data[i]) {
			return
		}
	}
}
