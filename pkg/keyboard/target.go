package keyboard

// Target is what an inline button does when it has no callback payload.
// A button holds at most one Target; the set of implementations is closed:
// URL, WebApp, LoginURL, SwitchInlineQuery, SwitchInlineQueryCurrentChat and
// CopyText.
type Target interface {
	put(m map[string]any)
}

// URL opens a link.
type URL struct{ URL string }

// WebApp opens a Web App.
type WebApp struct{ URL string }

// LoginURL authorizes the user through a Telegram Login URL.
type LoginURL struct{ URL string }

// SwitchInlineQuery prompts the user to pick a chat and inserts the bot's
// username and Query into the input field.
type SwitchInlineQuery struct{ Query string }

// SwitchInlineQueryCurrentChat inserts the bot's username and Query into the
// input field of the current chat.
type SwitchInlineQueryCurrentChat struct{ Query string }

// CopyText copies Text to the clipboard.
type CopyText struct{ Text string }

func (t URL) put(m map[string]any)      { m["url"] = t.URL }
func (t WebApp) put(m map[string]any)   { m["web_app"] = map[string]any{"url": t.URL} }
func (t LoginURL) put(m map[string]any) { m["login_url"] = map[string]any{"url": t.URL} }
func (t CopyText) put(m map[string]any) { m["copy_text"] = map[string]any{"text": t.Text} }

func (t SwitchInlineQuery) put(m map[string]any) { m["switch_inline_query"] = t.Query }

func (t SwitchInlineQueryCurrentChat) put(m map[string]any) {
	m["switch_inline_query_current_chat"] = t.Query
}
