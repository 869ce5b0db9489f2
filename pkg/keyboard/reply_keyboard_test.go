package keyboard

import (
	"reflect"
	"testing"
)

func TestReplyKeyboardRows(t *testing.T) {
	k, err := NewReply().Row(NewReplyButton("1"), NewReplyButton("2"))
	if err != nil {
		t.Fatal(err)
	}
	k, err = k.Row(NewReplyButton("3").RequestContact())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]map[string]any{
		{{"text": "1"}, {"text": "2"}},
		{{"text": "3", "request_contact": true}},
	}
	if got := k.ToArray(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ToArray = %v, want %v", got, want)
	}

	rtl := k.RightToLeft(true).ToArray()
	if rtl[0][0]["text"] != "2" || rtl[1][0]["text"] != "3" {
		t.Fatalf("rtl = %v", rtl)
	}

	replaced := k.ReplaceButton("1", NewReplyButton("one"))
	if got := labels(replaced.ToArray()); !reflect.DeepEqual(got, [][]string{{"one", "2"}, {"3"}}) {
		t.Fatalf("replace = %v", got)
	}
	if got := labels(k.DeleteButton("2").Flatten().ToArray()); !reflect.DeepEqual(got, [][]string{{"1"}, {"3"}}) {
		t.Fatalf("delete+flatten = %v", got)
	}

	chunked, err := k.Chunk(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := labels(chunked.ToArray()); !reflect.DeepEqual(got, [][]string{{"1", "2", "3"}}) {
		t.Fatalf("chunk = %v", got)
	}
	if _, err := k.Row(); err == nil {
		t.Fatalf("empty row accepted")
	}
}

func TestReplyKeyboardOptions(t *testing.T) {
	if got := NewReply().Options(); len(got) != 0 {
		t.Fatalf("default options = %v", got)
	}

	k := NewReply().
		Persistent(true).
		Resize(true).
		OneTime(false).
		Selective(true).
		InputPlaceholder("Pick one")
	want := map[string]any{
		"is_persistent":           true,
		"resize_keyboard":         true,
		"selective":               true,
		"input_field_placeholder": "Pick one",
	}
	if got := k.Options(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Options = %v, want %v", got, want)
	}

	cleared := k.InputPlaceholder("").Persistent(false)
	if _, ok := cleared.Options()["input_field_placeholder"]; ok {
		t.Fatalf("empty placeholder exported")
	}
	if _, ok := cleared.Options()["is_persistent"]; ok {
		t.Fatalf("false flag exported")
	}
	if len(k.Options()) != 4 {
		t.Fatalf("option setters mutated the receiver")
	}
}

func TestReplyKeyboardOptionsSurviveButtonOps(t *testing.T) {
	k, err := NewReply().Resize(true).OneTime(true).Row(NewReplyButton("a"))
	if err != nil {
		t.Fatal(err)
	}
	k = k.Buttons(NewReplyButton("b")).DeleteButton("a")
	if got := k.Options(); got["resize_keyboard"] != true || got["one_time_keyboard"] != true {
		t.Fatalf("options lost: %v", got)
	}
}
