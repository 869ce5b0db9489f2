package keyboard

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Telegram Bot API limits checked by Validate.
const (
	// MaxCallbackDataLen is the callback_data size limit in bytes.
	MaxCallbackDataLen = 64
	// MaxButtons is the maximum number of buttons in one keyboard.
	MaxButtons = 100
	// MaxPlaceholderLen is the input_field_placeholder limit in characters.
	MaxPlaceholderLen = 64
)

var (
	ErrCallbackDataTooLong = errors.New("keyboard: callback_data too long")
	ErrTooManyButtons      = errors.New("keyboard: too many buttons")
	ErrPlaceholderTooLong  = errors.New("keyboard: input field placeholder too long")
	ErrButtonTextEmpty     = errors.New("keyboard: button text is empty")
)

// Validate reports the first Telegram limit the keyboard violates.
// Export never calls it; use it before sending.
func (k Keyboard) Validate() error {
	if n := k.Len(); n > MaxButtons {
		return fmt.Errorf("%w: %d buttons, maximum is %d", ErrTooManyButtons, n, MaxButtons)
	}
	for b := range k.g.list.Values() {
		if b.label == "" {
			return ErrButtonTextEmpty
		}
		if data := b.CallbackData(); len(data) > MaxCallbackDataLen {
			return fmt.Errorf("%w: button %q has %d bytes, maximum is %d", ErrCallbackDataTooLong, b.label, len(data), MaxCallbackDataLen)
		}
	}
	return nil
}

// Validate reports the first Telegram limit the keyboard violates.
func (k ReplyKeyboard) Validate() error {
	if n := k.Len(); n > MaxButtons {
		return fmt.Errorf("%w: %d buttons, maximum is %d", ErrTooManyButtons, n, MaxButtons)
	}
	for b := range k.g.list.Values() {
		if b.label == "" {
			return ErrButtonTextEmpty
		}
	}
	if n := utf8.RuneCountInString(k.placeholder); n > MaxPlaceholderLen {
		return fmt.Errorf("%w: %d characters, maximum is %d", ErrPlaceholderTooLong, n, MaxPlaceholderLen)
	}
	return nil
}
