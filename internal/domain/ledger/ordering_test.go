package ledger

import (
	"errors"
	"testing"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

type item struct {
	name string
	key  int
}

func (i *item) OrderKey() int       { return i.key }
func (i *item) SetOrderKey(key int) { i.key = key }

func newItems(keys ...int) []*item {
	items := make([]*item, len(keys))
	for i, k := range keys {
		items[i] = &item{name: string(rune('a' + i)), key: k}
	}
	return items
}

func names(items []*item) string {
	out := ""
	for _, it := range items {
		out += it.name
	}
	return out
}

func TestMove(t *testing.T) {
	tests := []struct {
		name        string
		keys        []int
		from, to    int
		wantOrder   string
		wantKeys    []int
		wantChanged int
	}{
		{name: "move down to the end", keys: []int{0, 1, 2, 3, 4}, from: 1, to: 4, wantOrder: "acdeb", wantKeys: []int{0, 1, 2, 3, 4}, wantChanged: 4},
		{name: "move up to the start", keys: []int{0, 1, 2, 3, 4}, from: 3, to: 0, wantOrder: "dabce", wantKeys: []int{0, 1, 2, 3, 4}, wantChanged: 4},
		{name: "adjacent swap", keys: []int{0, 1, 2}, from: 0, to: 1, wantOrder: "bac", wantKeys: []int{0, 1, 2}, wantChanged: 2},
		{name: "sparse keys are reused", keys: []int{10, 20, 30, 40}, from: 0, to: 2, wantOrder: "bcad", wantKeys: []int{10, 20, 30, 40}, wantChanged: 3},
		{name: "no-op", keys: []int{0, 1, 2}, from: 1, to: 1, wantOrder: "abc", wantKeys: []int{0, 1, 2}, wantChanged: 0},
		{name: "duplicates are renumbered", keys: []int{0, 0, 1}, from: 2, to: 0, wantOrder: "cab", wantKeys: []int{0, 1, 2}, wantChanged: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newItems(tt.keys...)
			changed, err := Move(items, tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := names(items); got != tt.wantOrder {
				t.Errorf("expected order %s, got %s", tt.wantOrder, got)
			}
			for i, want := range tt.wantKeys {
				if items[i].key != want {
					t.Errorf("position %d: expected key %d, got %d", i, want, items[i].key)
				}
			}
			if len(changed) != tt.wantChanged {
				t.Errorf("expected %d changed items, got %d", tt.wantChanged, len(changed))
			}
		})
	}
}

func TestMove_LeavesItemsOutsideRangeUntouched(t *testing.T) {
	items := newItems(0, 1, 2, 3, 4, 5)
	changed, err := Move(items, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, it := range changed {
		if it.name != "c" && it.name != "d" {
			t.Errorf("item %s outside the range was changed", it.name)
		}
	}
}

func TestMove_RejectsOutOfRange(t *testing.T) {
	items := newItems(0, 1, 2)
	for _, idx := range [][2]int{{-1, 0}, {0, 3}, {3, 0}} {
		_, err := Move(items, idx[0], idx[1])
		if !errors.Is(err, domainerror.ErrInvalidOrderIndex) {
			t.Errorf("move %v: expected ErrInvalidOrderIndex, got %v", idx, err)
		}
	}
}

func TestNextOrderKey(t *testing.T) {
	if got := NextOrderKey(nil); got != 0 {
		t.Errorf("expected 0 for empty list, got %d", got)
	}
	if got := NextOrderKey([]int{3, 1, 7}); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}
