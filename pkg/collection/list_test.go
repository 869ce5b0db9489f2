package collection

import (
	"slices"
	"testing"
)

func TestAppendDoesNotAliasParent(t *testing.T) {
	base := Of(1, 2)
	a := base.Append(3)
	b := base.Append(4)

	if got := a.All(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("a = %v, want [1 2 3]", got)
	}
	if got := b.All(); !slices.Equal(got, []int{1, 2, 4}) {
		t.Fatalf("b = %v, want [1 2 4]", got)
	}
	if base.Len() != 2 {
		t.Fatalf("base len = %d, want 2", base.Len())
	}
}

func TestOfCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	l := Of(in...)
	in[0] = "z"
	if l.At(0) != "a" {
		t.Fatalf("At(0) = %q, want %q", l.At(0), "a")
	}
	out := l.All()
	out[1] = "z"
	if l.At(1) != "b" {
		t.Fatalf("All() leaked backing array")
	}
}

func TestMapFilter(t *testing.T) {
	l := Of(1, 2, 3, 4)
	doubled := l.Map(func(v int) int { return v * 2 })
	even := l.Filter(func(v int) bool { return v%2 == 0 })

	if got := doubled.All(); !slices.Equal(got, []int{2, 4, 6, 8}) {
		t.Fatalf("Map = %v", got)
	}
	if got := even.All(); !slices.Equal(got, []int{2, 4}) {
		t.Fatalf("Filter = %v", got)
	}
	if got := l.All(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("source changed: %v", got)
	}
}

func TestZeroValue(t *testing.T) {
	var l List[int]
	if !l.IsEmpty() || l.Len() != 0 || l.All() != nil {
		t.Fatalf("zero list not empty")
	}
	if got := l.Filter(func(int) bool { return true }); !got.IsEmpty() {
		t.Fatalf("Filter on empty list returned %v", got.All())
	}
	n := 0
	for range l.Values() {
		n++
	}
	if n != 0 {
		t.Fatalf("Values yielded %d items", n)
	}
}

func TestValuesStopsEarly(t *testing.T) {
	l := Of("a", "b", "c")
	var seen []string
	for v := range l.Values() {
		seen = append(seen, v)
		if v == "b" {
			break
		}
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Fatalf("seen = %v", seen)
	}
}
