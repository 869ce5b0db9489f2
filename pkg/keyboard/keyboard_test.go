package keyboard

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func mustRow(t *testing.T, k Keyboard, buttons ...Button) Keyboard {
	t.Helper()
	k, err := k.Row(buttons...)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	return k
}

// labels returns the exported rows as labels only.
func labels(rows [][]map[string]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		for _, b := range row {
			out[i] = append(out[i], b["text"].(string))
		}
	}
	return out
}

func TestEmptyKeyboard(t *testing.T) {
	k := New()
	if !k.IsEmpty() || k.IsFilled() {
		t.Fatalf("new keyboard not empty")
	}
	if got := k.ToArray(); len(got) != 0 {
		t.Fatalf("ToArray = %v", got)
	}
}

func TestRowsExport(t *testing.T) {
	k := mustRow(t, New(), NewButton("1"), NewButton("2"), NewButton("3"))
	k = mustRow(t, k, NewButton("4"))

	want := [][]map[string]any{
		{{"text": "1"}, {"text": "2"}, {"text": "3"}},
		{{"text": "4"}},
	}
	if got := k.ToArray(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ToArray = %v, want %v", got, want)
	}
	if !k.IsFilled() || k.Len() != 4 {
		t.Fatalf("IsFilled = %v Len = %d", k.IsFilled(), k.Len())
	}
}

func TestRowOverridesWidths(t *testing.T) {
	k := mustRow(t, New(), NewButton("a").WithWidth(0.9), NewButton("b").WithWidth(0.9))
	if got := labels(k.ToArray()); !reflect.DeepEqual(got, [][]string{{"a", "b"}}) {
		t.Fatalf("rows = %v", got)
	}
}

func TestRowRejectsEmpty(t *testing.T) {
	base := mustRow(t, New(), NewButton("a"))
	k, err := base.Row()
	if !errors.Is(err, ErrEmptyRow) {
		t.Fatalf("err = %v, want ErrEmptyRow", err)
	}
	if k.Len() != 1 {
		t.Fatalf("failed Row changed the keyboard: %d buttons", k.Len())
	}
}

func TestButtonsKeepWidths(t *testing.T) {
	k := New().Buttons(
		NewButton("1").WithWidth(0.5),
		NewButton("2").WithWidth(0.5),
		NewButton("3"),
	)
	want := [][]string{{"1", "2"}, {"3"}}
	if got := labels(k.ToArray()); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestChunk(t *testing.T) {
	k := New().Buttons(NewButton("1"), NewButton("2"), NewButton("3"), NewButton("4"), NewButton("5"))

	two, err := k.Chunk(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := labels(two.ToArray()); !reflect.DeepEqual(got, [][]string{{"1", "2"}, {"3", "4"}, {"5"}}) {
		t.Fatalf("Chunk(2) = %v", got)
	}

	three, err := two.Chunk(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := labels(three.ToArray()); !reflect.DeepEqual(got, [][]string{{"1", "2", "3"}, {"4", "5"}}) {
		t.Fatalf("Chunk(3) = %v", got)
	}

	for _, n := range []int{0, -1} {
		if _, err := k.Chunk(n); !errors.Is(err, ErrInvalidChunk) {
			t.Fatalf("Chunk(%d) err = %v", n, err)
		}
	}
}

func TestChunkAppliesToEarlierRows(t *testing.T) {
	k := mustRow(t, New(), NewButton("a"), NewButton("b"), NewButton("c"))
	k = mustRow(t, k, NewButton("d"))
	k, err := k.Chunk(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := labels(k.ToArray()); !reflect.DeepEqual(got, [][]string{{"a", "b"}, {"c", "d"}}) {
		t.Fatalf("rows = %v", got)
	}
}

func TestReplaceButtonInheritsWidth(t *testing.T) {
	k := mustRow(t, New(), NewButton("Button 1"), NewButton("Button 2"))
	k = mustRow(t, k, NewButton("Button 3"))

	replaced := k.ReplaceButton("Button 1", NewButton("New").WithAction("go"))
	want := [][]map[string]any{
		{{"text": "New", "callback_data": "action:go"}, {"text": "Button 2"}},
		{{"text": "Button 3"}},
	}
	if got := replaced.ToArray(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ToArray = %v, want %v", got, want)
	}
	if got := replaced.All()[0].Width(); got != 0.5 {
		t.Fatalf("inherited width = %v", got)
	}

	wide := k.ReplaceButton("Button 1", NewButton("Wide").WithWidth(1))
	if got := labels(wide.ToArray()); !reflect.DeepEqual(got, [][]string{{"Wide"}, {"Button 2"}, {"Button 3"}}) {
		t.Fatalf("explicit width ignored: %v", got)
	}

	if got := k.ReplaceButton("missing", NewButton("x")).ToArray(); !reflect.DeepEqual(got, k.ToArray()) {
		t.Fatalf("replace of missing label changed keyboard")
	}
}

func TestReplaceAndDeleteMatchEveryDuplicate(t *testing.T) {
	k := mustRow(t, New(), NewButton("dup"), NewButton("x"), NewButton("dup"))

	replaced := k.ReplaceButton("dup", NewButton("y"))
	if got := labels(replaced.ToArray()); !reflect.DeepEqual(got, [][]string{{"y", "x", "y"}}) {
		t.Fatalf("replace = %v", got)
	}

	deleted := k.DeleteButton("dup")
	if got := labels(deleted.ToArray()); !reflect.DeepEqual(got, [][]string{{"x"}}) {
		t.Fatalf("delete = %v", got)
	}
}

func TestDeleteButton(t *testing.T) {
	k := mustRow(t, New(), NewButton("a"), NewButton("b"), NewButton("c"))
	k = mustRow(t, k, NewButton("d"), NewButton("e"))

	got := labels(k.DeleteButton("b").ToArray())
	want := [][]string{{"a", "c"}, {"d", "e"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	for _, row := range got {
		if slices.Contains(row, "b") {
			t.Fatalf("deleted label still exported")
		}
	}
}

func TestFlatten(t *testing.T) {
	k := mustRow(t, New(), NewButton("a"), NewButton("b"))
	if got := labels(k.Flatten().ToArray()); !reflect.DeepEqual(got, [][]string{{"a"}, {"b"}}) {
		t.Fatalf("Flatten = %v", got)
	}
}

func TestRightToLeftReversesWithinRows(t *testing.T) {
	k := mustRow(t, New(), NewButton("1"), NewButton("2"), NewButton("3"))
	k = mustRow(t, k, NewButton("4"), NewButton("5"))
	k = mustRow(t, k, NewButton("6"))

	ltr := k.ToArray()
	rtl := k.RightToLeft(true).ToArray()
	if len(rtl) != len(ltr) {
		t.Fatalf("row count changed: %d vs %d", len(rtl), len(ltr))
	}
	for i := range ltr {
		rev := slices.Clone(ltr[i])
		slices.Reverse(rev)
		if !reflect.DeepEqual(rtl[i], rev) {
			t.Fatalf("row %d = %v, want %v", i, rtl[i], rev)
		}
	}
	if k.RightToLeft(true).RightToLeft(false).IsRightToLeft() {
		t.Fatalf("RightToLeft(false) did not reset")
	}
}

func TestDerivedKeyboardsAreIndependent(t *testing.T) {
	base := mustRow(t, New(), NewButton("a"))
	k1 := mustRow(t, base, NewButton("b"))
	k2 := mustRow(t, base, NewButton("c"))
	k3 := base.RightToLeft(true).Buttons(NewButton("d"))

	if got := labels(base.ToArray()); !reflect.DeepEqual(got, [][]string{{"a"}}) {
		t.Fatalf("base = %v", got)
	}
	if got := labels(k1.ToArray()); !reflect.DeepEqual(got, [][]string{{"a"}, {"b"}}) {
		t.Fatalf("k1 = %v", got)
	}
	if got := labels(k2.ToArray()); !reflect.DeepEqual(got, [][]string{{"a"}, {"c"}}) {
		t.Fatalf("k2 = %v", got)
	}
	if base.IsRightToLeft() || !k3.IsRightToLeft() {
		t.Fatalf("rtl flag leaked between keyboards")
	}

	chunked, err := k1.Chunk(2)
	if err != nil {
		t.Fatal(err)
	}
	_ = k1.DeleteButton("a")
	if got := k1.All()[1].Width(); got != 1 {
		t.Fatalf("k1 width changed to %v", got)
	}
	if got := labels(chunked.ToArray()); !reflect.DeepEqual(got, [][]string{{"a", "b"}}) {
		t.Fatalf("chunked = %v", got)
	}
}

func TestMapButtons(t *testing.T) {
	k := mustRow(t, New(), NewButton("a"), NewButton("b"))
	k = k.MapButtons(func(b Button) Button { return b.WithAction(b.Label()) })
	want := [][]map[string]any{{
		{"text": "a", "callback_data": "action:a"},
		{"text": "b", "callback_data": "action:b"},
	}}
	if got := k.ToArray(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ToArray = %v", got)
	}
}
