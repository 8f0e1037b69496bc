package ledger

import (
	"fmt"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Ordered is an item of a manually ordered list.
type Ordered interface {
	OrderKey() int
	SetOrderKey(key int)
}

// Move moves items[from] to position to and reassigns order keys. items must be
// sorted by key. Only the sub-range between from and to is touched; the moved item
// takes the key vacated at the destination. When the keys contain duplicates, the
// whole list is first renumbered from zero so the result is a strict total order.
// items is reordered in place and the items whose key changed are returned.
func Move[T Ordered](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidOrderIndex,
			fmt.Sprintf("cannot move %d to %d in a list of %d", from, to, len(items)),
			domainerror.ErrInvalidOrderIndex,
		)
	}

	dirty := make([]bool, len(items))
	if !strictlyIncreasing(items) {
		for i, item := range items {
			if item.OrderKey() != i {
				item.SetOrderKey(i)
				dirty[i] = true
			}
		}
	}
	if from == to {
		return collect(items, dirty), nil
	}

	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	keys := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		keys = append(keys, items[i].OrderKey())
	}

	shift(items, from, to)
	shift(dirty, from, to)

	for i := lo; i <= hi; i++ {
		if items[i].OrderKey() != keys[i-lo] {
			items[i].SetOrderKey(keys[i-lo])
			dirty[i] = true
		}
	}
	return collect(items, dirty), nil
}

// NextOrderKey returns the key for an item appended after the given keys.
func NextOrderKey(keys []int) int {
	next := 0
	for _, k := range keys {
		if k >= next {
			next = k + 1
		}
	}
	return next
}

func strictlyIncreasing[T Ordered](items []T) bool {
	for i := 1; i < len(items); i++ {
		if items[i].OrderKey() <= items[i-1].OrderKey() {
			return false
		}
	}
	return true
}

// shift moves s[from] to index to, sliding the elements in between by one.
func shift[E any](s []E, from, to int) {
	moved := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = moved
}

func collect[T Ordered](items []T, dirty []bool) []T {
	out := make([]T, 0)
	for i, item := range items {
		if dirty[i] {
			out = append(out, item)
		}
	}
	return out
}
