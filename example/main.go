package main

import (
	"log/slog"
	"strconv"

	"github.com/xgzlucario/sorted"
	"github.com/xgzlucario/sorted/bcmp"
	"github.com/xgzlucario/sorted/option"
)

func main() {
	// int list kept descending.
	nums := sorted.FromWithOption(sorted.OrderedCmp[int](), option.Desc, 5, 1, 4, 2, 3)
	slog.Info("nums", "list", nums.String(), "len", nums.Len())

	nums.RemoveValue(3)
	rev, err := nums.CloneReverse(0, nums.Len())
	if err != nil {
		panic(err)
	}
	slog.Info("reversed", "list", rev.String(), "ascending", rev.IsAscending())

	// byte-keyed list ordered by the goleveldb bytewise comparer.
	keys := sorted.New(sorted.Cmp[[]byte](bcmp.Compare))
	for i := 10; i > 0; i-- {
		keys.Insert([]byte("key" + strconv.Itoa(i)))
	}

	it := keys.Iter()
	for it.SeekToFirst(); it.Valid(); it.Next() {
		slog.Info("key", "index", it.Index(), "value", string(it.Item()))
	}
}
