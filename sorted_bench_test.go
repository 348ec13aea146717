package sorted

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/xgzlucario/sorted/bcmp"
)

func BenchmarkInsert(b *testing.B) {
	b.Run("int-seq", func(b *testing.B) {
		l := New(OrderedCmp[int]())
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			l.Insert(i)
		}
	})

	b.Run("int-rand", func(b *testing.B) {
		l := New(OrderedCmp[int]())
		rnd := rand.New(rand.NewSource(1))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			l.Insert(rnd.Int())
		}
	})

	b.Run("bytes-rand", func(b *testing.B) {
		l := New(Cmp[[]byte](bcmp.Compare))
		rnd := rand.New(rand.NewSource(1))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			l.Insert([]byte(strconv.Itoa(rnd.Int())))
		}
	})
}

func BenchmarkPositionOf(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		l := New(OrderedCmp[int]())
		for i := 0; i < n; i++ {
			l.Insert(i)
		}

		b.Run("n-"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				l.PositionOf(i % n)
			}
		})
	}
}
