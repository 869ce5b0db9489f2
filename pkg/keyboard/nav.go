package keyboard

import (
	"fmt"
	"strconv"
)

// Paginate returns the items of a 0-based page. A size <= 0 means 10 per page;
// a negative page reads as 0 and a page past the end gives an empty slice.
func Paginate[T any](items []T, page, size int) (sub []T, hasPrev, hasNext bool) {
	if size <= 0 {
		size = 10
	}
	page = max(page, 0)
	start := min(page*size, len(items))
	end := min(start+size, len(items))
	return items[start:end], page > 0, end < len(items)
}

// PageLabel returns a compact label such as "2/5".
func PageLabel(page, size, total int) string {
	if size <= 0 {
		size = 10
	}
	pages := max((total+size-1)/size, 1)
	page = min(max(page, 0), pages-1)
	return fmt.Sprintf("%d/%d", page+1, pages)
}

// Pager appends a navigation row for a 0-based page: a previous button when
// there is one, the page label, and a next button when there is one. The
// arrows carry action:<action>;page:<n>; the label carries action:noop.
func (k Keyboard) Pager(action string, page, size, total int) (Keyboard, error) {
	if size <= 0 {
		size = 10
	}
	pages := max((total+size-1)/size, 1)
	page = min(max(page, 0), pages-1)

	var row []Button
	if page > 0 {
		row = append(row, NewButton("‹").WithAction(action).WithParam("page", strconv.Itoa(page-1)))
	}
	row = append(row, NewButton(PageLabel(page, size, total)).WithAction("noop"))
	if page < pages-1 {
		row = append(row, NewButton("›").WithAction(action).WithParam("page", strconv.Itoa(page+1)))
	}
	return k.Row(row...)
}

// Confirm builds a one-row yes/no keyboard. Both buttons carry
// action:<action> plus confirm:1 or confirm:0.
func Confirm(yes, no, action string) Keyboard {
	k, _ := New().Row(
		NewButton(yes).WithAction(action).WithParam("confirm", 1),
		NewButton(no).WithAction(action).WithParam("confirm", 0),
	)
	return k
}
