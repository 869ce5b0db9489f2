package dto

import (
	"time"

	"tgobjects/pkg/keyboard"
	"tgobjects/pkg/validate"
)

// Message is a chat message, reduced to the fields a keyboard flow needs:
// who sent it where, its text, the message it replies to and the inline
// keyboard attached to it.
type Message struct {
	ID                  int64              `json:"message_id"`
	Date                int64              `json:"date"`
	Chat                Chat               `json:"chat"`
	From                *User              `json:"from,omitempty"`
	Text                string             `json:"text,omitempty"`
	Caption             string             `json:"caption,omitempty"`
	MessageThreadID     int64              `json:"message_thread_id,omitempty"`
	EditDate            int64              `json:"edit_date,omitempty"`
	HasProtectedContent bool               `json:"has_protected_content,omitempty"`
	ForwardFrom         *User              `json:"forward_from,omitempty"`
	ReplyToMessage      *Message           `json:"reply_to_message,omitempty"`
	ReplyMarkup         *keyboard.Keyboard `json:"reply_markup,omitempty"`
}

// MessageFromMap builds a Message from decoded update data. message_id, date
// and chat are required; reply_markup must be an inline keyboard markup.
func MessageFromMap(data map[string]any) (Message, error) {
	const ctx = "Message"
	var (
		m   Message
		err error
	)
	if m.ID, err = validate.RequiredInt64(data, "message_id", ctx); err != nil {
		return Message{}, err
	}
	if m.Date, err = validate.RequiredInt64(data, "date", ctx); err != nil {
		return Message{}, err
	}
	chat, err := validate.RequiredObject(data, "chat", ctx)
	if err != nil {
		return Message{}, err
	}
	if m.Chat, err = ChatFromMap(chat); err != nil {
		return Message{}, err
	}

	if m.From, err = optionalUser(data, "from", ctx); err != nil {
		return Message{}, err
	}
	if m.ForwardFrom, err = optionalUser(data, "forward_from", ctx); err != nil {
		return Message{}, err
	}
	if m.Text, _, err = validate.OptionalString(data, "text", ctx); err != nil {
		return Message{}, err
	}
	if m.Caption, _, err = validate.OptionalString(data, "caption", ctx); err != nil {
		return Message{}, err
	}
	if m.MessageThreadID, _, err = validate.OptionalInt64(data, "message_thread_id", ctx); err != nil {
		return Message{}, err
	}
	if m.EditDate, _, err = validate.OptionalInt64(data, "edit_date", ctx); err != nil {
		return Message{}, err
	}
	if m.HasProtectedContent, err = validate.Bool(data, "has_protected_content", ctx); err != nil {
		return Message{}, err
	}

	if reply, ok, err := validate.Object(data, "reply_to_message", ctx); err != nil {
		return Message{}, err
	} else if ok {
		r, err := MessageFromMap(reply)
		if err != nil {
			return Message{}, err
		}
		m.ReplyToMessage = &r
	}

	if markup, ok, err := validate.Object(data, "reply_markup", ctx); err != nil {
		return Message{}, err
	} else if ok {
		kb, err := keyboard.ParseInlineMarkup(markup)
		if err != nil {
			return Message{}, err
		}
		m.ReplyMarkup = &kb
	}
	return m, nil
}

func optionalUser(data map[string]any, key, ctx string) (*User, error) {
	obj, ok, err := validate.Object(data, key, ctx)
	if err != nil || !ok {
		return nil, err
	}
	u, err := UserFromMap(obj)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Time returns the send date.
func (m Message) Time() time.Time { return time.Unix(m.Date, 0) }

// Edited reports whether the message was edited, and when.
func (m Message) Edited() (time.Time, bool) {
	if m.EditDate == 0 {
		return time.Time{}, false
	}
	return time.Unix(m.EditDate, 0), true
}

// HasKeyboard reports whether a non-empty inline keyboard is attached.
func (m Message) HasKeyboard() bool {
	return m.ReplyMarkup != nil && m.ReplyMarkup.IsFilled()
}

func (m Message) ToMap() map[string]any {
	out := map[string]any{
		"message_id": m.ID,
		"date":       m.Date,
		"chat":       m.Chat.ToMap(),
	}
	if m.From != nil {
		out["from"] = m.From.ToMap()
	}
	if m.ForwardFrom != nil {
		out["forward_from"] = m.ForwardFrom.ToMap()
	}
	if m.ReplyToMessage != nil {
		out["reply_to_message"] = m.ReplyToMessage.ToMap()
	}
	if m.ReplyMarkup != nil {
		out["reply_markup"] = m.ReplyMarkup.Markup()
	}
	putString(out, "text", m.Text)
	putString(out, "caption", m.Caption)
	putInt(out, "message_thread_id", m.MessageThreadID)
	putInt(out, "edit_date", m.EditDate)
	putBool(out, "has_protected_content", m.HasProtectedContent)
	return out
}
