package dto

import (
	"strings"

	"tgobjects/pkg/keyboard"
	"tgobjects/pkg/validate"
)

// CallbackQuery is produced when a user presses an inline button that carries
// callback data.
type CallbackQuery struct {
	ID              string   `json:"id"`
	From            User     `json:"from"`
	Message         *Message `json:"message,omitempty"`
	InlineMessageID string   `json:"inline_message_id,omitempty"`
	ChatInstance    string   `json:"chat_instance,omitempty"`
	Data            string   `json:"data,omitempty"`
	GameShortName   string   `json:"game_short_name,omitempty"`
}

func CallbackQueryFromMap(data map[string]any) (CallbackQuery, error) {
	const ctx = "CallbackQuery"
	var (
		q   CallbackQuery
		err error
	)
	if q.ID, err = validate.RequiredString(data, "id", ctx); err != nil {
		return CallbackQuery{}, err
	}
	from, err := validate.RequiredObject(data, "from", ctx)
	if err != nil {
		return CallbackQuery{}, err
	}
	if q.From, err = UserFromMap(from); err != nil {
		return CallbackQuery{}, err
	}

	if msg, ok, err := validate.Object(data, "message", ctx); err != nil {
		return CallbackQuery{}, err
	} else if ok {
		m, err := MessageFromMap(msg)
		if err != nil {
			return CallbackQuery{}, err
		}
		q.Message = &m
	}

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"inline_message_id", &q.InlineMessageID},
		{"chat_instance", &q.ChatInstance},
		{"data", &q.Data},
		{"game_short_name", &q.GameShortName},
	} {
		if *f.dst, _, err = validate.OptionalString(data, f.key, ctx); err != nil {
			return CallbackQuery{}, err
		}
	}
	return q, nil
}

func (q CallbackQuery) HasMessage() bool      { return q.Message != nil }
func (q CallbackQuery) IsInlineMessage() bool { return q.InlineMessageID != "" }
func (q CallbackQuery) IsGame() bool          { return q.GameShortName != "" }

// Params decodes Data the way keyboard.Button encodes it, keeping duplicates
// in order.
func (q CallbackQuery) Params() keyboard.Params {
	ps := keyboard.ParseCallbackData(q.Data)
	for i := range ps {
		ps[i].Key = strings.TrimSpace(ps[i].Key)
		ps[i].Value = strings.TrimSpace(ps[i].Value)
	}
	return ps
}

// ParsedData decodes Data into a map with trimmed keys and values. When a key
// repeats, the last value wins.
func (q CallbackQuery) ParsedData() map[string]string {
	return q.Params().Map()
}

// Action is the value of the "action" parameter, "" when absent.
func (q CallbackQuery) Action() string {
	v, _ := q.Params().Get("action")
	return v
}

func (q CallbackQuery) ToMap() map[string]any {
	m := map[string]any{"id": q.ID, "from": q.From.ToMap()}
	if q.Message != nil {
		m["message"] = q.Message.ToMap()
	}
	putString(m, "inline_message_id", q.InlineMessageID)
	putString(m, "chat_instance", q.ChatInstance)
	putString(m, "data", q.Data)
	putString(m, "game_short_name", q.GameShortName)
	return m
}
