package keyboard

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"
)

// ErrTelebotUnsupported is returned when a button cannot be expressed as a
// telebot button.
var ErrTelebotUnsupported = errors.New("keyboard: not supported by telebot")

// Telebot converts the keyboard into a telebot ReplyMarkup with the same rows.
// Copy-text buttons have no telebot counterpart and fail the conversion.
func (k Keyboard) Telebot() (*tele.ReplyMarkup, error) {
	rm := &tele.ReplyMarkup{}
	for _, row := range k.Rows() {
		btns := make([]tele.InlineButton, len(row))
		for i, b := range row {
			tb, err := teleInlineButton(b)
			if err != nil {
				return nil, err
			}
			btns[i] = tb
		}
		rm.InlineKeyboard = append(rm.InlineKeyboard, btns)
	}
	return rm, nil
}

func teleInlineButton(b Button) (tele.InlineButton, error) {
	out := tele.InlineButton{Text: b.label}
	if len(b.params) > 0 {
		out.Data = b.CallbackData()
		return out, nil
	}
	switch t := b.target.(type) {
	case URL:
		out.URL = t.URL
	case WebApp:
		out.WebApp = &tele.WebApp{URL: t.URL}
	case LoginURL:
		out.Login = &tele.Login{URL: t.URL}
	case SwitchInlineQuery:
		out.InlineQuery = t.Query
	case SwitchInlineQueryCurrentChat:
		out.InlineQueryChat = t.Query
	case CopyText:
		return out, fmt.Errorf("%w: copy_text button %q", ErrTelebotUnsupported, b.label)
	}
	return out, nil
}

// FromTelebot imports the inline keyboard of a telebot ReplyMarkup.
// A nil markup or one without inline buttons gives an empty keyboard. Telebot
// cannot tell an empty inline query from an unset one, so empty queries are
// read as unset.
func FromTelebot(rm *tele.ReplyMarkup) (Keyboard, error) {
	k := New()
	if rm == nil {
		return k, nil
	}
	for i, row := range rm.InlineKeyboard {
		buttons := make([]Button, len(row))
		for j, tb := range row {
			b := NewButton(tb.Text)
			for _, p := range ParseCallbackData(tb.Data) {
				b = b.WithParam(p.Key, p.Value)
			}
			switch {
			case tb.URL != "":
				b = b.WithURL(tb.URL)
			case tb.WebApp != nil:
				b = b.WithWebApp(tb.WebApp.URL)
			case tb.Login != nil:
				b = b.WithLoginURL(tb.Login.URL)
			case tb.InlineQuery != "":
				b = b.WithSwitchInlineQuery(tb.InlineQuery)
			case tb.InlineQueryChat != "":
				b = b.WithSwitchInlineQuery(tb.InlineQueryChat).AsCurrentChat()
			}
			buttons[j] = b
		}
		var err error
		if k, err = k.Row(buttons...); err != nil {
			return Keyboard{}, fmt.Errorf("%w (row %d)", err, i)
		}
	}
	return k, nil
}

// Telebot converts the reply keyboard and its options into a telebot ReplyMarkup.
func (k ReplyKeyboard) Telebot() (*tele.ReplyMarkup, error) {
	rm := &tele.ReplyMarkup{
		ResizeKeyboard:  k.resize,
		OneTimeKeyboard: k.oneTime,
		Selective:       k.selective,
		Placeholder:     k.placeholder,
		IsPersistent:    k.persistent,
	}
	for _, row := range k.Rows() {
		btns := make([]tele.ReplyButton, len(row))
		for i, b := range row {
			btns[i] = teleReplyButton(b)
		}
		rm.ReplyKeyboard = append(rm.ReplyKeyboard, btns)
	}
	return rm, nil
}

func teleReplyButton(b ReplyButton) tele.ReplyButton {
	out := tele.ReplyButton{Text: b.label}
	switch b.Type() {
	case TypeRequestContact:
		out.Contact = true
	case TypeRequestLocation:
		out.Location = true
	case TypeRequestPoll:
		out.Poll = tele.PollType(b.poll)
	case TypeWebApp:
		out.WebApp = &tele.WebApp{URL: b.webAppURL}
	}
	return out
}

// FromTelebotReply imports the reply keyboard and options of a telebot
// ReplyMarkup. Rows keep their membership; widths are re-derived per row.
func FromTelebotReply(rm *tele.ReplyMarkup) (ReplyKeyboard, error) {
	k := NewReply()
	if rm == nil {
		return k, nil
	}
	for i, row := range rm.ReplyKeyboard {
		buttons := make([]ReplyButton, len(row))
		for j, tb := range row {
			b := NewReplyButton(tb.Text)
			switch {
			case tb.WebApp != nil:
				b = b.WithWebApp(tb.WebApp.URL)
			case tb.Poll == tele.PollQuiz:
				b = b.RequestQuiz()
			case tb.Poll != "":
				b = b.RequestPoll()
			case tb.Location:
				b = b.RequestLocation()
			case tb.Contact:
				b = b.RequestContact()
			}
			buttons[j] = b
		}
		var err error
		if k, err = k.Row(buttons...); err != nil {
			return ReplyKeyboard{}, fmt.Errorf("%w (row %d)", err, i)
		}
	}
	return k.
		Persistent(rm.IsPersistent).
		Resize(rm.ResizeKeyboard).
		OneTime(rm.OneTimeKeyboard).
		Selective(rm.Selective).
		InputPlaceholder(rm.Placeholder), nil
}
