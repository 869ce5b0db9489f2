package keyboard

import (
	"encoding/json"
	"fmt"

	"tgobjects/pkg/validate"

	tele "gopkg.in/telebot.v4"
)

// Markup is implemented by Keyboard and ReplyKeyboard.
type Markup interface {
	json.Marshaler
	IsEmpty() bool
	Validate() error
	Telebot() (*tele.ReplyMarkup, error)
}

var (
	_ Markup = Keyboard{}
	_ Markup = ReplyKeyboard{}
)

// Markup returns the wire object {"inline_keyboard": rows}.
func (k Keyboard) Markup() map[string]any {
	return map[string]any{"inline_keyboard": k.ToArray()}
}

func (k Keyboard) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Markup())
}

func (k *Keyboard) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	kb, err := ParseInlineMarkup(m)
	if err != nil {
		return err
	}
	*k = kb
	return nil
}

// ParseInlineMarkup reads an {"inline_keyboard": [...]} object.
func ParseInlineMarkup(m map[string]any) (Keyboard, error) {
	if err := validate.Require(m, "inline_keyboard", "Inline Keyboard Markup"); err != nil {
		return Keyboard{}, fmt.Errorf("keyboard: %w", err)
	}
	return FromAny(m["inline_keyboard"])
}

// Markup returns the wire object {"keyboard": rows, ...options}.
func (k ReplyKeyboard) Markup() map[string]any {
	m := k.Options()
	m["keyboard"] = k.ToArray()
	return m
}

func (k ReplyKeyboard) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Markup())
}

func (k *ReplyKeyboard) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	kb, err := ParseReplyMarkup(m)
	if err != nil {
		return err
	}
	*k = kb
	return nil
}

// ParseReplyMarkup reads a {"keyboard": [...], ...options} object.
func ParseReplyMarkup(m map[string]any) (ReplyKeyboard, error) {
	const ctx = "Reply Keyboard Markup"
	if err := validate.Require(m, "keyboard", ctx); err != nil {
		return ReplyKeyboard{}, fmt.Errorf("keyboard: %w", err)
	}
	k, err := FromReplyAny(m["keyboard"])
	if err != nil {
		return ReplyKeyboard{}, err
	}

	flags := []struct {
		key string
		set func(ReplyKeyboard, bool) ReplyKeyboard
	}{
		{"is_persistent", ReplyKeyboard.Persistent},
		{"resize_keyboard", ReplyKeyboard.Resize},
		{"one_time_keyboard", ReplyKeyboard.OneTime},
		{"selective", ReplyKeyboard.Selective},
	}
	for _, f := range flags {
		v, err := validate.Bool(m, f.key, ctx)
		if err != nil {
			return ReplyKeyboard{}, fmt.Errorf("keyboard: %w", err)
		}
		k = f.set(k, v)
	}

	placeholder, _, err := validate.OptionalString(m, "input_field_placeholder", ctx)
	if err != nil {
		return ReplyKeyboard{}, fmt.Errorf("keyboard: %w", err)
	}
	return k.InputPlaceholder(placeholder), nil
}
