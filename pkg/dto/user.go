package dto

import (
	"strings"

	"tgobjects/pkg/validate"
)

// User is a Telegram user or bot.
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}

// UserFromMap builds a User from decoded update data. id and first_name are
// required.
func UserFromMap(data map[string]any) (User, error) {
	const ctx = "User"
	var (
		u   User
		err error
	)
	if u.ID, err = validate.RequiredInt64(data, "id", ctx); err != nil {
		return User{}, err
	}
	if u.FirstName, err = validate.RequiredString(data, "first_name", ctx); err != nil {
		return User{}, err
	}
	if u.IsBot, err = validate.Bool(data, "is_bot", ctx); err != nil {
		return User{}, err
	}
	if u.IsPremium, err = validate.Bool(data, "is_premium", ctx); err != nil {
		return User{}, err
	}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"last_name", &u.LastName},
		{"username", &u.Username},
		{"language_code", &u.LanguageCode},
	} {
		if *f.dst, _, err = validate.OptionalString(data, f.key, ctx); err != nil {
			return User{}, err
		}
	}
	return u, nil
}

// FullName joins the first and last name with a space.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ToMap exports the user; empty strings and false flags are left out.
func (u User) ToMap() map[string]any {
	m := map[string]any{"id": u.ID}
	putString(m, "first_name", u.FirstName)
	putString(m, "last_name", u.LastName)
	putString(m, "username", u.Username)
	putString(m, "language_code", u.LanguageCode)
	putBool(m, "is_bot", u.IsBot)
	putBool(m, "is_premium", u.IsPremium)
	return m
}

func putString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func putBool(m map[string]any, key string, v bool) {
	if v {
		m[key] = true
	}
}

func putInt(m map[string]any, key string, v int64) {
	if v != 0 {
		m[key] = v
	}
}
