package sorted

// Interface is the contract of a list kept sorted under an injected
// ordering policy. List is its only array-backed implementation;
// clone operations stay on the concrete type so they can return it.
type Interface[T any] interface {
	Len() int
	Cap() int
	IsAscending() bool

	PositionOf(v T) int
	Get(i int) (T, error)
	IndexOf(v T) int
	LastIndexOf(v T) int

	Insert(v T) int
	Remove(i int) (T, error)
	RemoveValue(v T) bool
	Clear()

	ToSlice() []T
	CopyTo(dst []T) []T
}

var _ Interface[int] = (*List[int])(nil)
