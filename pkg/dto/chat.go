package dto

import (
	"strconv"
	"strings"

	"tgobjects/pkg/validate"
)

// ChatType is the kind of a chat.
type ChatType string

const (
	ChatSender     ChatType = "sender"
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

var chatTypes = []string{
	string(ChatSender), string(ChatPrivate), string(ChatGroup), string(ChatSupergroup), string(ChatChannel),
}

type Chat struct {
	ID               int64    `json:"id"`
	Type             ChatType `json:"type"`
	Title            string   `json:"title,omitempty"`
	Username         string   `json:"username,omitempty"`
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	IsForum          bool     `json:"is_forum,omitempty"`
	IsDirectMessages bool     `json:"is_direct_messages,omitempty"`
}

// ChatFromMap builds a Chat from decoded update data. id may be a number or a
// numeric string; type must be a known ChatType.
func ChatFromMap(data map[string]any) (Chat, error) {
	const ctx = "Chat"
	var (
		c   Chat
		err error
	)
	if c.ID, err = chatID(data, ctx); err != nil {
		return Chat{}, err
	}
	typ, err := validate.RequiredString(data, "type", ctx)
	if err != nil {
		return Chat{}, err
	}
	if err := validate.OneOf(typ, chatTypes, "type", ctx); err != nil {
		return Chat{}, err
	}
	c.Type = ChatType(typ)

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"title", &c.Title},
		{"username", &c.Username},
		{"first_name", &c.FirstName},
		{"last_name", &c.LastName},
	} {
		if *f.dst, _, err = validate.OptionalString(data, f.key, ctx); err != nil {
			return Chat{}, err
		}
	}
	if c.IsForum, err = validate.Bool(data, "is_forum", ctx); err != nil {
		return Chat{}, err
	}
	if c.IsDirectMessages, err = validate.Bool(data, "is_direct_messages", ctx); err != nil {
		return Chat{}, err
	}
	return c, nil
}

func chatID(data map[string]any, ctx string) (int64, error) {
	if s, ok := data["id"].(string); ok {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, &validate.FieldError{Context: ctx, Field: "id", Expected: "int", Got: "string", Err: validate.ErrTypeMismatch}
		}
		return id, nil
	}
	return validate.RequiredInt64(data, "id", ctx)
}

func (c Chat) IsPrivate() bool { return c.Type == ChatPrivate }
func (c Chat) IsGroup() bool   { return c.Type == ChatGroup || c.Type == ChatSupergroup }
func (c Chat) IsChannel() bool { return c.Type == ChatChannel }

// DisplayName picks the title, then the other party's name, then @username,
// then "Chat <id>".
func (c Chat) DisplayName() string {
	switch {
	case c.Title != "":
		return c.Title
	case c.FirstName != "":
		return strings.TrimSpace(c.FirstName + " " + c.LastName)
	case c.Username != "":
		return "@" + c.Username
	default:
		return "Chat " + strconv.FormatInt(c.ID, 10)
	}
}

func (c Chat) ToMap() map[string]any {
	m := map[string]any{"id": c.ID, "type": string(c.Type)}
	putString(m, "title", c.Title)
	putString(m, "username", c.Username)
	putString(m, "first_name", c.FirstName)
	putString(m, "last_name", c.LastName)
	putBool(m, "is_forum", c.IsForum)
	putBool(m, "is_direct_messages", c.IsDirectMessages)
	return m
}
