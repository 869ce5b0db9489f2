package keyboard

import (
	"fmt"

	"tgobjects/pkg/validate"
)

const (
	ctxKeyboard    = "Keyboard"
	ctxButton      = "Button"
	ctxReplyButton = "Reply Button"
	ctxWebApp      = "Web App"
	ctxLoginURL    = "Login Url"
	ctxCopyText    = "Copy Text"
	ctxRequestPoll = "Request Poll"
)

// FromArray rebuilds an inline keyboard from exported rows. Every row goes
// through Row, so buttons get equal widths within their row: row membership
// and content survive a round trip, custom widths do not.
//
// The first invalid button aborts the import.
func FromArray(rows [][]map[string]any) (Keyboard, error) {
	k := New()
	for i, raw := range rows {
		buttons := make([]Button, 0, len(raw))
		for j, obj := range raw {
			b, err := parseButton(obj)
			if err != nil {
				return Keyboard{}, fmt.Errorf("keyboard: row %d button %d: %w", i, j, err)
			}
			buttons = append(buttons, b)
		}
		var err error
		if k, err = k.Row(buttons...); err != nil {
			return Keyboard{}, fmt.Errorf("%w (row %d)", err, i)
		}
	}
	return k, nil
}

// FromAny is FromArray for rows decoded by encoding/json ([]any nesting).
func FromAny(v any) (Keyboard, error) {
	rows, err := validate.Rows(v, ctxKeyboard)
	if err != nil {
		return Keyboard{}, fmt.Errorf("keyboard: %w", err)
	}
	return FromArray(rows)
}

func parseButton(obj map[string]any) (Button, error) {
	text, err := validate.RequiredString(obj, "text", ctxButton)
	if err != nil {
		return Button{}, err
	}
	b := NewButton(text)

	data, ok, err := validate.OptionalString(obj, "callback_data", ctxButton)
	if err != nil {
		return Button{}, err
	}
	if ok {
		for _, p := range ParseCallbackData(data) {
			b = b.WithParam(p.Key, p.Value)
		}
	}

	t, err := parseTarget(obj)
	if err != nil {
		return Button{}, err
	}
	if t != nil {
		b = b.withTarget(t)
	}
	return b, nil
}

// parseTarget validates every target key present and returns the one with the
// highest export priority.
func parseTarget(obj map[string]any) (Target, error) {
	var found Target
	keep := func(t Target) {
		if found == nil {
			found = t
		}
	}

	if s, ok, err := validate.OptionalString(obj, "url", ctxButton); err != nil {
		return nil, err
	} else if ok {
		keep(URL{URL: s})
	}
	if s, ok, err := nestedString(obj, "web_app", "url", ctxWebApp); err != nil {
		return nil, err
	} else if ok {
		keep(WebApp{URL: s})
	}
	if s, ok, err := nestedString(obj, "login_url", "url", ctxLoginURL); err != nil {
		return nil, err
	} else if ok {
		keep(LoginURL{URL: s})
	}
	if q, ok, err := query(obj, "switch_inline_query"); err != nil {
		return nil, err
	} else if ok {
		keep(SwitchInlineQuery{Query: q})
	}
	if q, ok, err := query(obj, "switch_inline_query_current_chat"); err != nil {
		return nil, err
	} else if ok {
		keep(SwitchInlineQueryCurrentChat{Query: q})
	}
	if s, ok, err := nestedString(obj, "copy_text", "text", ctxCopyText); err != nil {
		return nil, err
	} else if ok {
		keep(CopyText{Text: s})
	}
	return found, nil
}

// nestedString reads obj[key][field], requiring field when key is present.
func nestedString(obj map[string]any, key, field, ctx string) (string, bool, error) {
	nested, ok, err := validate.Object(obj, key, ctxButton)
	if err != nil || !ok {
		return "", false, err
	}
	s, err := validate.RequiredString(nested, field, ctx)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// query reads an inline query key. A present null means an empty query.
func query(obj map[string]any, key string) (string, bool, error) {
	v, present := obj[key]
	if !present {
		return "", false, nil
	}
	if v == nil {
		return "", true, nil
	}
	s, _, err := validate.OptionalString(obj, key, ctxButton)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// FromReplyArray rebuilds a reply keyboard from exported rows, see FromArray.
func FromReplyArray(rows [][]map[string]any) (ReplyKeyboard, error) {
	k := NewReply()
	for i, raw := range rows {
		buttons := make([]ReplyButton, 0, len(raw))
		for j, obj := range raw {
			b, err := parseReplyButton(obj)
			if err != nil {
				return ReplyKeyboard{}, fmt.Errorf("keyboard: row %d button %d: %w", i, j, err)
			}
			buttons = append(buttons, b)
		}
		var err error
		if k, err = k.Row(buttons...); err != nil {
			return ReplyKeyboard{}, fmt.Errorf("%w (row %d)", err, i)
		}
	}
	return k, nil
}

// FromReplyAny is FromReplyArray for rows decoded by encoding/json.
func FromReplyAny(v any) (ReplyKeyboard, error) {
	rows, err := validate.Rows(v, ctxKeyboard)
	if err != nil {
		return ReplyKeyboard{}, fmt.Errorf("keyboard: %w", err)
	}
	return FromReplyArray(rows)
}

func parseReplyButton(obj map[string]any) (ReplyButton, error) {
	text, err := validate.RequiredString(obj, "text", ctxReplyButton)
	if err != nil {
		return ReplyButton{}, err
	}
	b := NewReplyButton(text)

	contact, err := validate.Bool(obj, "request_contact", ctxReplyButton)
	if err != nil {
		return ReplyButton{}, err
	}
	if contact {
		b = b.RequestContact()
	}

	location, err := validate.Bool(obj, "request_location", ctxReplyButton)
	if err != nil {
		return ReplyButton{}, err
	}
	if location {
		b = b.RequestLocation()
	}

	if _, present := obj["request_poll"]; present {
		poll, _, err := validate.Object(obj, "request_poll", ctxReplyButton)
		if err != nil {
			return ReplyButton{}, err
		}
		kind, _, err := validate.OptionalString(poll, "type", ctxRequestPoll)
		if err != nil {
			return ReplyButton{}, err
		}
		if PollKind(kind) == PollQuiz {
			b = b.RequestQuiz()
		} else {
			b = b.RequestPoll()
		}
	}

	url, ok, err := nestedString(obj, "web_app", "url", ctxWebApp)
	if err != nil {
		return ReplyButton{}, err
	}
	if ok {
		b = b.WithWebApp(url)
	}
	return b, nil
}
