package keyboard

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Param is one key:value pair of a button's callback payload.
type Param struct {
	Key   string
	Value string
}

func (p Param) String() string { return p.Key + ":" + p.Value }

// Params is an ordered callback payload. Duplicate keys are allowed.
type Params []Param

// Get returns the value of the last pair with the given key.
func (ps Params) Get(key string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Map folds the pairs into a map; later duplicates win.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}
	return m
}

// String encodes the payload as callback data: "key:value;key:value".
func (ps Params) String() string {
	if len(ps) == 0 {
		return ""
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ";")
}

// ParseCallbackData splits callback data into pairs. Each ';'-separated part is
// split on its first ':'; parts without a ':' are ignored. Keys and values are
// returned as-is (Button.WithParam trims them).
func ParseCallbackData(data string) Params {
	if data == "" {
		return nil
	}
	var out Params
	for _, part := range strings.Split(data, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		out = append(out, Param{Key: k, Value: v})
	}
	return out
}

// PackJSON marshals v to JSON then Base64URL encodes it (no padding). The
// result never contains ':' or ';', so it is safe as a parameter value.
func PackJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// MustPackJSON is like PackJSON but returns empty string on error.
func MustPackJSON(v any) string {
	s, _ := PackJSON(v)
	return s
}

// UnpackJSON decodes a PackJSON value into v.
func UnpackJSON(value string, v any) error {
	b, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
