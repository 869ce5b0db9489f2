package keyboard

import (
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	t.Parallel()
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		page, size       int
		want             []int
		hasPrev, hasNext bool
	}{
		{0, 2, []int{1, 2}, false, true},
		{2, 2, []int{5}, true, false},
		{-1, 2, []int{1, 2}, false, true},
		{9, 2, []int{}, true, false},
		{0, 0, []int{1, 2, 3, 4, 5}, false, false},
	}
	for _, tt := range tests {
		sub, prev, next := Paginate(items, tt.page, tt.size)
		if !reflect.DeepEqual(sub, tt.want) || prev != tt.hasPrev || next != tt.hasNext {
			t.Errorf("Paginate(page=%d, size=%d) = %v, %v, %v", tt.page, tt.size, sub, prev, next)
		}
	}
}

func TestPager(t *testing.T) {
	t.Parallel()
	base := mustRow(t, New(), NewButton("item"))

	k, err := base.Pager("list", 1, 10, 35)
	if err != nil {
		t.Fatal(err)
	}
	rows := k.ToArray()
	want := []map[string]any{
		{"text": "‹", "callback_data": "action:list;page:0"},
		{"text": "2/4", "callback_data": "action:noop"},
		{"text": "›", "callback_data": "action:list;page:2"},
	}
	if len(rows) != 2 || !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("rows = %v", rows)
	}

	first, err := New().Pager("list", 0, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := labels(first.ToArray()); !reflect.DeepEqual(got, [][]string{{"1/1"}}) {
		t.Fatalf("single page = %v", got)
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()
	want := [][]map[string]any{{
		{"text": "Yes", "callback_data": "action:delete;confirm:1"},
		{"text": "No", "callback_data": "action:delete;confirm:0"},
	}}
	if got := Confirm("Yes", "No", "delete").ToArray(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Confirm = %v", got)
	}
}
