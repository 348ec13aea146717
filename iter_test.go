package sorted

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterator(t *testing.T) {
	assert := assert.New(t)

	l := From(OrderedCmp[int](), 3, 1, 4, 1, 5)

	var got []int
	it := l.Iter()
	for it.SeekToFirst(); it.Valid(); it.Next() {
		got = append(got, it.Item())
	}
	assert.Equal([]int{1, 1, 3, 4, 5}, got)

	got = got[:0]
	for it.SeekToLast(); it.Valid(); it.Prev() {
		got = append(got, it.Item())
	}
	assert.Equal([]int{5, 4, 3, 1, 1}, got)
}

func TestIteratorSeek(t *testing.T) {
	assert := assert.New(t)

	l := From(OrderedCmp[int](), 10, 20, 30)

	it := l.Iter()
	it.Seek(20)
	assert.True(it.Valid())
	assert.Equal(20, it.Item())

	it.Seek(25)
	assert.True(it.Valid())
	assert.Equal(30, it.Item())

	it.Seek(99)
	assert.False(it.Valid())
	assert.Equal(3, it.Index())
}

func TestIteratorFailFast(t *testing.T) {
	assert := assert.New(t)

	l := From(OrderedCmp[int](), 1, 2, 3)

	it := l.Iter()
	it.SeekToFirst()
	l.Insert(4)
	assert.PanicsWithValue(ErrConcurrentModification, func() { it.Next() })

	it = l.Iter()
	l.Remove(0)
	assert.PanicsWithValue(ErrConcurrentModification, func() { it.Valid() })

	it = l.Iter()
	l.Clear()
	assert.PanicsWithValue(ErrConcurrentModification, func() { it.SeekToFirst() })

	// a removal that finds nothing is not a structural modification.
	l.Insert(1)
	it = l.Iter()
	l.RemoveValue(42)
	assert.NotPanics(func() { it.SeekToFirst() })
}

func TestRange(t *testing.T) {
	assert := assert.New(t)

	l := From(OrderedCmp[int](), 2, 1, 3)

	var idxs, vals []int
	l.Range(func(i, v int) bool {
		idxs = append(idxs, i)
		vals = append(vals, v)
		return true
	})
	assert.Equal([]int{0, 1, 2}, idxs)
	assert.Equal([]int{1, 2, 3}, vals)

	// early stop.
	n := 0
	l.Range(func(i, v int) bool {
		n++
		return false
	})
	assert.Equal(1, n)

	// mutating from inside the callback trips the version check.
	assert.PanicsWithValue(ErrConcurrentModification, func() {
		l.Range(func(i, v int) bool {
			l.Insert(9)
			return true
		})
	})
}
