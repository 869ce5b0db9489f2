package keyboard

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Button is an inline keyboard button.
//
// A button carries either a callback payload (built with WithAction and
// WithParam), a single Target, or neither. When both a payload and a target are
// set the payload wins on export.
type Button struct {
	label  string
	width  float64
	params Params
	target Target
}

// NewButton creates a button with the given label. The label may be empty.
func NewButton(label string) Button {
	return Button{label: label}
}

func (b Button) Label() string { return b.label }

// WithWidth sets the share of a row the button occupies. Values above 1 are
// capped at 1; values <= 0 leave the button without a width (read as 1).
func (b Button) WithWidth(fraction float64) Button {
	b.width = clampWidth(fraction)
	return b
}

// Width returns the effective width in (0, 1].
func (b Button) Width() float64 { return effectiveWidth(b.width) }

// HasWidth reports whether a positive width was set.
func (b Button) HasWidth() bool { return b.width > 0 }

// WithAction appends the pair action:name to the callback payload.
func (b Button) WithAction(name string) Button {
	return b.WithParam("action", name)
}

// WithParam appends key:value to the callback payload. Key and the formatted
// value are trimmed; duplicate keys are kept in insertion order.
func (b Button) WithParam(key string, value any) Button {
	p := Param{Key: strings.TrimSpace(key), Value: strings.TrimSpace(fmt.Sprint(value))}
	b.params = append(slices.Clip(b.params), p)
	return b
}

// WithoutParams drops the callback payload, keeping label, width and target.
func (b Button) WithoutParams() Button {
	b.params = nil
	return b
}

func (b Button) WithURL(url string) Button       { return b.withTarget(URL{URL: url}) }
func (b Button) WithWebApp(url string) Button    { return b.withTarget(WebApp{URL: url}) }
func (b Button) WithLoginURL(url string) Button  { return b.withTarget(LoginURL{URL: url}) }
func (b Button) WithCopyText(text string) Button { return b.withTarget(CopyText{Text: text}) }
func (b Button) WithSwitchInlineQuery(q string) Button {
	return b.withTarget(SwitchInlineQuery{Query: q})
}

// AsCurrentChat turns a switch-inline-query target into its current-chat
// variant. Without a prior switch-inline-query the button gets a current-chat
// target with an empty query.
func (b Button) AsCurrentChat() Button {
	switch t := b.target.(type) {
	case SwitchInlineQuery:
		return b.withTarget(SwitchInlineQueryCurrentChat{Query: t.Query})
	case SwitchInlineQueryCurrentChat:
		return b
	default:
		return b.withTarget(SwitchInlineQueryCurrentChat{})
	}
}

func (b Button) withTarget(t Target) Button {
	b.target = t
	return b
}

// Target returns the button's target, or nil for a callback or label-only button.
func (b Button) Target() Target { return b.target }

// Params returns a copy of the callback payload.
func (b Button) Params() Params { return slices.Clone(b.params) }

// CallbackData returns the encoded callback payload, "" when there is none.
func (b Button) CallbackData() string { return b.params.String() }

// ToArray exports the button as a wire object: "text" plus at most one of
// callback_data, url, web_app, login_url, switch_inline_query,
// switch_inline_query_current_chat or copy_text.
func (b Button) ToArray() map[string]any {
	m := map[string]any{"text": b.label}
	if len(b.params) > 0 {
		m["callback_data"] = b.CallbackData()
		return m
	}
	if b.target != nil {
		b.target.put(m)
	}
	return m
}

func clampWidth(f float64) float64 {
	if f > 1 {
		return 1
	}
	return f
}

func effectiveWidth(w float64) float64 {
	if w <= 0 || math.IsNaN(w) {
		return 1
	}
	return w
}
