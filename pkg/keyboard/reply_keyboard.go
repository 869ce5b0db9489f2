package keyboard

// ReplyKeyboard is a custom keyboard shown in place of the user's keyboard.
// The zero value is an empty keyboard with every option off.
type ReplyKeyboard struct {
	g grid[ReplyButton]

	persistent  bool
	resize      bool
	oneTime     bool
	selective   bool
	placeholder string
}

// NewReply returns an empty reply keyboard.
func NewReply() ReplyKeyboard { return ReplyKeyboard{} }

// Row appends buttons as one row, each with a width of 1/len(buttons).
func (k ReplyKeyboard) Row(buttons ...ReplyButton) (ReplyKeyboard, error) {
	g, err := k.g.row(buttons)
	if err != nil {
		return k, err
	}
	k.g = g
	return k, nil
}

// Chunk gives every button a width of 1/n.
func (k ReplyKeyboard) Chunk(n int) (ReplyKeyboard, error) {
	g, err := k.g.chunk(n)
	if err != nil {
		return k, err
	}
	k.g = g
	return k, nil
}

// Buttons appends buttons keeping their own widths.
func (k ReplyKeyboard) Buttons(buttons ...ReplyButton) ReplyKeyboard {
	k.g = k.g.add(buttons)
	return k
}

// ReplaceButton substitutes every button labelled label, see Keyboard.ReplaceButton.
func (k ReplyKeyboard) ReplaceButton(label string, nb ReplyButton) ReplyKeyboard {
	k.g = k.g.replace(label, nb)
	return k
}

func (k ReplyKeyboard) DeleteButton(label string) ReplyKeyboard {
	k.g = k.g.remove(label)
	return k
}

func (k ReplyKeyboard) Flatten() ReplyKeyboard {
	k.g = k.g.flatten()
	return k
}

func (k ReplyKeyboard) MapButtons(fn func(ReplyButton) ReplyButton) ReplyKeyboard {
	k.g = k.g.mapButtons(fn)
	return k
}

func (k ReplyKeyboard) RightToLeft(rtl bool) ReplyKeyboard {
	k.g.rtl = rtl
	return k
}

// Persistent keeps the keyboard visible when the regular keyboard is hidden.
func (k ReplyKeyboard) Persistent(v bool) ReplyKeyboard {
	k.persistent = v
	return k
}

// Resize asks clients to fit the keyboard height to its rows.
func (k ReplyKeyboard) Resize(v bool) ReplyKeyboard {
	k.resize = v
	return k
}

// OneTime hides the keyboard after a button is pressed.
func (k ReplyKeyboard) OneTime(v bool) ReplyKeyboard {
	k.oneTime = v
	return k
}

// Selective shows the keyboard only to mentioned users or the replied-to user.
func (k ReplyKeyboard) Selective(v bool) ReplyKeyboard {
	k.selective = v
	return k
}

// InputPlaceholder sets the input field hint; "" clears it.
func (k ReplyKeyboard) InputPlaceholder(text string) ReplyKeyboard {
	k.placeholder = text
	return k
}

func (k ReplyKeyboard) IsRightToLeft() bool { return k.g.rtl }
func (k ReplyKeyboard) IsEmpty() bool       { return k.g.list.IsEmpty() }
func (k ReplyKeyboard) IsFilled() bool      { return !k.IsEmpty() }
func (k ReplyKeyboard) Len() int            { return k.g.list.Len() }

func (k ReplyKeyboard) All() []ReplyButton    { return k.g.list.All() }
func (k ReplyKeyboard) Rows() [][]ReplyButton { return k.g.rows() }

// ToArray exports the keyboard as rows of wire objects.
func (k ReplyKeyboard) ToArray() [][]map[string]any { return k.g.export() }

// Options returns the keyboard-level fields that are set. False flags and an
// empty placeholder are left out.
func (k ReplyKeyboard) Options() map[string]any {
	opts := map[string]any{}
	if k.persistent {
		opts["is_persistent"] = true
	}
	if k.resize {
		opts["resize_keyboard"] = true
	}
	if k.oneTime {
		opts["one_time_keyboard"] = true
	}
	if k.selective {
		opts["selective"] = true
	}
	if k.placeholder != "" {
		opts["input_field_placeholder"] = k.placeholder
	}
	return opts
}
