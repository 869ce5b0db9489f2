package layout

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"tgobjects/pkg/keyboard"
)

var (
	ErrNoRows        = errors.New("layout: keyboard has neither inline_keyboard nor keyboard")
	ErrAmbiguousKind = errors.New("layout: keyboard has both inline_keyboard and keyboard")
	ErrReplyOption   = errors.New("layout: reply keyboard option set on an inline keyboard")
	ErrUnknownName   = errors.New("layout: unknown keyboard")
)

// File is the on-disk layout document (JSON or YAML).
type File struct {
	Logging   *LoggingConfig          `json:"logging,omitempty"`
	Keyboards map[string]KeyboardSpec `json:"keyboards"`
}

// LoggingConfig mirrors logx.Config so a running kbrender --watch can change
// its log level with the layout.
type LoggingConfig struct {
	Level   string `json:"level,omitempty"`
	Console bool   `json:"console,omitempty"`
	File    struct {
		Enabled bool   `json:"enabled,omitempty"`
		Path    string `json:"path,omitempty"`
	} `json:"file,omitempty"`
}

// KeyboardSpec describes one keyboard. Exactly one of InlineKeyboard and
// Keyboard must be set; rows use the Bot API wire format.
//
// Chunk, when > 0, re-packs every button n per row after import.
type KeyboardSpec struct {
	InlineKeyboard [][]map[string]any `json:"inline_keyboard,omitempty"`
	Keyboard       [][]map[string]any `json:"keyboard,omitempty"`

	RightToLeft bool `json:"right_to_left,omitempty"`
	Chunk       int  `json:"chunk,omitempty"`

	IsPersistent          bool   `json:"is_persistent,omitempty"`
	ResizeKeyboard        bool   `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool   `json:"one_time_keyboard,omitempty"`
	Selective             bool   `json:"selective,omitempty"`
	InputFieldPlaceholder string `json:"input_field_placeholder,omitempty"`
}

func (s KeyboardSpec) hasReplyOptions() bool {
	return s.IsPersistent || s.ResizeKeyboard || s.OneTimeKeyboard || s.Selective || s.InputFieldPlaceholder != ""
}

// Build turns the spec into a keyboard and checks it against Telegram limits.
func (s KeyboardSpec) Build() (keyboard.Markup, error) {
	switch {
	case s.InlineKeyboard != nil && s.Keyboard != nil:
		return nil, ErrAmbiguousKind
	case s.InlineKeyboard != nil:
		return s.buildInline()
	case s.Keyboard != nil:
		return s.buildReply()
	default:
		return nil, ErrNoRows
	}
}

func (s KeyboardSpec) buildInline() (keyboard.Markup, error) {
	if s.hasReplyOptions() {
		return nil, ErrReplyOption
	}
	kb, err := keyboard.FromArray(s.InlineKeyboard)
	if err != nil {
		return nil, err
	}
	if s.Chunk > 0 {
		if kb, err = kb.Chunk(s.Chunk); err != nil {
			return nil, err
		}
	}
	kb = kb.RightToLeft(s.RightToLeft)
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return kb, nil
}

func (s KeyboardSpec) buildReply() (keyboard.Markup, error) {
	kb, err := keyboard.FromReplyArray(s.Keyboard)
	if err != nil {
		return nil, err
	}
	if s.Chunk > 0 {
		if kb, err = kb.Chunk(s.Chunk); err != nil {
			return nil, err
		}
	}
	kb = kb.RightToLeft(s.RightToLeft).
		Persistent(s.IsPersistent).
		Resize(s.ResizeKeyboard).
		OneTime(s.OneTimeKeyboard).
		Selective(s.Selective).
		InputPlaceholder(s.InputFieldPlaceholder)
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return kb, nil
}

// Layout is a parsed and built layout file.
type Layout struct {
	Logging   *LoggingConfig
	Keyboards map[string]keyboard.Markup

	spec File
}

// Compile builds every keyboard of f. The first failing keyboard (by name)
// aborts the build.
func Compile(f File) (*Layout, error) {
	l := &Layout{
		Logging:   f.Logging,
		Keyboards: make(map[string]keyboard.Markup, len(f.Keyboards)),
		spec:      f,
	}
	for _, name := range sortedKeys(f.Keyboards) {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("layout: keyboard with empty name")
		}
		kb, err := f.Keyboards[name].Build()
		if err != nil {
			return nil, fmt.Errorf("layout: keyboard %q: %w", name, err)
		}
		l.Keyboards[name] = kb
	}
	return l, nil
}

// Names returns the keyboard names in sorted order.
func (l *Layout) Names() []string {
	return sortedKeys(l.Keyboards)
}

// Get returns the keyboard called name.
func (l *Layout) Get(name string) (keyboard.Markup, error) {
	kb, ok := l.Keyboards[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownName, name)
	}
	return kb, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
