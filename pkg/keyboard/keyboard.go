package keyboard

// Keyboard is an inline keyboard. The zero value is an empty keyboard.
type Keyboard struct {
	g grid[Button]
}

// New returns an empty inline keyboard.
func New() Keyboard { return Keyboard{} }

// Row appends buttons as one row: each gets a width of 1/len(buttons),
// replacing any width it had. An empty row fails with ErrEmptyRow.
func (k Keyboard) Row(buttons ...Button) (Keyboard, error) {
	g, err := k.g.row(buttons)
	if err != nil {
		return k, err
	}
	return Keyboard{g: g}, nil
}

// Chunk gives every button a width of 1/n, so that export lays out n buttons
// per row. n must be positive.
func (k Keyboard) Chunk(n int) (Keyboard, error) {
	g, err := k.g.chunk(n)
	if err != nil {
		return k, err
	}
	return Keyboard{g: g}, nil
}

// Buttons appends buttons keeping their own widths.
func (k Keyboard) Buttons(buttons ...Button) Keyboard {
	return Keyboard{g: k.g.add(buttons)}
}

// ReplaceButton substitutes every button labelled label with nb. When nb has no
// width it takes the width of the button it replaces, keeping the layout.
func (k Keyboard) ReplaceButton(label string, nb Button) Keyboard {
	return Keyboard{g: k.g.replace(label, nb)}
}

// DeleteButton removes every button labelled label.
func (k Keyboard) DeleteButton(label string) Keyboard {
	return Keyboard{g: k.g.remove(label)}
}

// Flatten puts every button on its own row.
func (k Keyboard) Flatten() Keyboard {
	return Keyboard{g: k.g.flatten()}
}

// MapButtons applies fn to every button, order preserved.
func (k Keyboard) MapButtons(fn func(Button) Button) Keyboard {
	return Keyboard{g: k.g.mapButtons(fn)}
}

// RightToLeft reverses the order of buttons inside each exported row.
func (k Keyboard) RightToLeft(rtl bool) Keyboard {
	k.g.rtl = rtl
	return k
}

func (k Keyboard) IsRightToLeft() bool { return k.g.rtl }
func (k Keyboard) IsEmpty() bool       { return k.g.list.IsEmpty() }
func (k Keyboard) IsFilled() bool      { return !k.IsEmpty() }
func (k Keyboard) Len() int            { return k.g.list.Len() }

// All returns the buttons in insertion order.
func (k Keyboard) All() []Button { return k.g.list.All() }

// Rows returns the packed rows of buttons.
func (k Keyboard) Rows() [][]Button { return k.g.rows() }

// ToArray exports the keyboard as rows of wire objects.
func (k Keyboard) ToArray() [][]map[string]any { return k.g.export() }
