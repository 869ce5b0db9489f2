package layout

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tgobjects/pkg/keyboard"
	"tgobjects/pkg/validate"
)

const menuYAML = `
logging:
  level: debug
keyboards:
  menu:
    inline_keyboard:
      - - text: Edit
          callback_data: "action:edit;id:1"
        - text: Docs
          url: https://example.com
      - - text: Back
          callback_data: "action:back"
  contact:
    keyboard:
      - - text: Share phone
          request_contact: true
    resize_keyboard: true
    input_field_placeholder: Tap the button
`

const menuJSON = `{
  "logging": {"level": "debug"},
  "keyboards": {
    "menu": {"inline_keyboard": [
      [{"text": "Edit", "callback_data": "action:edit;id:1"}, {"text": "Docs", "url": "https://example.com"}],
      [{"text": "Back", "callback_data": "action:back"}]
    ]},
    "contact": {
      "keyboard": [[{"text": "Share phone", "request_contact": true}]],
      "resize_keyboard": true,
      "input_field_placeholder": "Tap the button"
    }
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAMLAndJSONAgree(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	fromYAML, err := NewManager(writeFile(t, dir, "layout.yaml", menuYAML)).Load()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromJSON, err := NewManager(writeFile(t, dir, "layout.json", menuJSON)).Load()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if got := fromYAML.Names(); !reflect.DeepEqual(got, []string{"contact", "menu"}) {
		t.Fatalf("Names = %v", got)
	}
	for _, name := range fromYAML.Names() {
		a, _ := fromYAML.Get(name)
		b, _ := fromJSON.Get(name)
		ja, _ := a.MarshalJSON()
		jb, _ := b.MarshalJSON()
		if string(ja) != string(jb) {
			t.Fatalf("%s differs:\n yaml %s\n json %s", name, ja, jb)
		}
	}
	if fromYAML.Logging == nil || fromYAML.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", fromYAML.Logging)
	}
	if hashFile(fromYAML.spec) != hashFile(fromJSON.spec) {
		t.Fatalf("same content hashed differently")
	}
}

func TestBuildKinds(t *testing.T) {
	t.Parallel()
	l, err := NewManager(writeFile(t, t.TempDir(), "layout.json", menuJSON)).Load()
	if err != nil {
		t.Fatal(err)
	}

	menu, err := l.Get("menu")
	if err != nil {
		t.Fatal(err)
	}
	inline, ok := menu.(keyboard.Keyboard)
	if !ok {
		t.Fatalf("menu is %T", menu)
	}
	if got := inline.ToArray(); len(got) != 2 || len(got[0]) != 2 || got[1][0]["callback_data"] != "action:back" {
		t.Fatalf("menu rows = %v", got)
	}

	contact, _ := l.Get("contact")
	reply, ok := contact.(keyboard.ReplyKeyboard)
	if !ok {
		t.Fatalf("contact is %T", contact)
	}
	want := map[string]any{"resize_keyboard": true, "input_field_placeholder": "Tap the button"}
	if got := reply.Options(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Options = %v", got)
	}

	if _, err := l.Get("nope"); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("unknown name: %v", err)
	}
}

func TestKeyboardSpecOptions(t *testing.T) {
	t.Parallel()
	rows := [][]map[string]any{{{"text": "a"}, {"text": "b"}}, {{"text": "c"}}}

	kb, err := KeyboardSpec{InlineKeyboard: rows, Chunk: 3, RightToLeft: true}.Build()
	if err != nil {
		t.Fatal(err)
	}
	got := kb.(keyboard.Keyboard).ToArray()
	if len(got) != 1 || got[0][0]["text"] != "c" || got[0][2]["text"] != "a" {
		t.Fatalf("chunked rtl rows = %v", got)
	}

	tests := []struct {
		name string
		spec KeyboardSpec
		want error
	}{
		{"no rows", KeyboardSpec{}, ErrNoRows},
		{"both kinds", KeyboardSpec{InlineKeyboard: rows, Keyboard: rows}, ErrAmbiguousKind},
		{"reply option on inline", KeyboardSpec{InlineKeyboard: rows, Selective: true}, ErrReplyOption},
		{"bad button", KeyboardSpec{Keyboard: [][]map[string]any{{{"text": "x", "request_contact": "yes"}}}}, validate.ErrTypeMismatch},
		{"empty row", KeyboardSpec{InlineKeyboard: [][]map[string]any{{}}}, keyboard.ErrEmptyRow},
		{"placeholder too long", KeyboardSpec{Keyboard: rows, InputFieldPlaceholder: string(make([]byte, 65))}, keyboard.ErrPlaceholderTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.spec.Build(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeIsStrict(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name, path, body string
	}{
		{"unknown field", "l.json", `{"keyboards": {}, "extra": 1}`},
		{"unknown keyboard field", "l.json", `{"keyboards": {"a": {"inline_keyboard": [], "colour": "red"}}}`},
		{"trailing data", "l.json", `{"keyboards": {}} {}`},
		{"bad yaml", "l.yml", "keyboards: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.path, []byte(tt.body)); err == nil {
				t.Fatalf("Decode accepted %q", tt.body)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()
	rows := [][]map[string]any{{{"text": "a"}}}
	oldL, err := Compile(File{Keyboards: map[string]KeyboardSpec{
		"keep": {InlineKeyboard: rows},
		"edit": {InlineKeyboard: rows},
		"drop": {InlineKeyboard: rows},
	}})
	if err != nil {
		t.Fatal(err)
	}
	newL, err := Compile(File{
		Logging: &LoggingConfig{Level: "debug"},
		Keyboards: map[string]KeyboardSpec{
			"keep": {InlineKeyboard: rows},
			"edit": {InlineKeyboard: rows, RightToLeft: true},
			"new":  {Keyboard: rows},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	c := Diff(oldL, newL)
	want := Change{Added: []string{"new"}, Removed: []string{"drop"}, Changed: []string{"edit"}, Logging: true}
	if !reflect.DeepEqual(c, want) {
		t.Fatalf("Diff = %+v, want %+v", c, want)
	}
	if !Diff(newL, newL).IsEmpty() {
		t.Fatalf("self diff not empty")
	}
}

func TestWatchPublishesChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "layout.json", menuJSON)

	m := NewManager(path)
	if _, err := m.Load(); err != nil {
		t.Fatal(err)
	}
	updates := m.Subscribe(1)
	defer m.Unsubscribe(updates)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Watch(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// Give the watcher time to register the directory.
	time.Sleep(200 * time.Millisecond)

	// A broken write is rejected and the current layout kept.
	writeFile(t, dir, "layout.json", `{"keyboards": {"bad": {}}}`)
	time.Sleep(600 * time.Millisecond)
	select {
	case l := <-updates:
		t.Fatalf("broken layout published: %v", l.Names())
	default:
	}
	if got := m.Get().Names(); !reflect.DeepEqual(got, []string{"contact", "menu"}) {
		t.Fatalf("current layout replaced: %v", got)
	}

	writeFile(t, dir, "layout.json", `{"keyboards": {"only": {"inline_keyboard": [[{"text": "x"}]]}}}`)
	select {
	case l := <-updates:
		if got := l.Names(); !reflect.DeepEqual(got, []string{"only"}) {
			t.Fatalf("published %v", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no update published")
	}
	if got := m.Get().Names(); !reflect.DeepEqual(got, []string{"only"}) {
		t.Fatalf("Get after reload = %v", got)
	}
}
