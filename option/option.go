package option

// Option for a sorted list.
type Option struct {
	// Ascending selects the direction the list is maintained in.
	Ascending bool

	// InitCapacity sizes the backing buffer up front. The buffer
	// still grows on demand, this only avoids early reallocations.
	InitCapacity int
}

// DefaultOption
var DefaultOption = Option{Ascending: true}

// Desc is the descending counterpart of DefaultOption.
var Desc = Option{Ascending: false}
