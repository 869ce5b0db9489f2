package keyboard

// ReplyButtonType is the kind of a reply keyboard button.
type ReplyButtonType string

const (
	TypeText            ReplyButtonType = "text"
	TypeRequestContact  ReplyButtonType = "request_contact"
	TypeRequestLocation ReplyButtonType = "request_location"
	TypeRequestPoll     ReplyButtonType = "request_poll"
	TypeWebApp          ReplyButtonType = "web_app"
)

// AvailableTypes lists every ReplyButtonType.
func AvailableTypes() []ReplyButtonType {
	return []ReplyButtonType{TypeText, TypeRequestContact, TypeRequestLocation, TypeRequestPoll, TypeWebApp}
}

// PollKind restricts which polls a request_poll button may create.
type PollKind string

const (
	PollRegular PollKind = "regular"
	PollQuiz    PollKind = "quiz"
)

// ReplyButton is a button of a reply (custom) keyboard.
type ReplyButton struct {
	label     string
	typ       ReplyButtonType
	webAppURL string
	poll      PollKind
	width     float64
}

// NewReplyButton creates a plain text button.
func NewReplyButton(label string) ReplyButton {
	return ReplyButton{label: label, typ: TypeText}
}

func (b ReplyButton) Label() string { return b.label }

// Type returns the button type; the zero value reads as TypeText.
func (b ReplyButton) Type() ReplyButtonType {
	if b.typ == "" {
		return TypeText
	}
	return b.typ
}

// WebAppURL is set only for TypeWebApp buttons.
func (b ReplyButton) WebAppURL() string { return b.webAppURL }

// PollKind is set only for TypeRequestPoll buttons.
func (b ReplyButton) PollKind() PollKind { return b.poll }

// WithWidth follows the same rules as Button.WithWidth.
func (b ReplyButton) WithWidth(fraction float64) ReplyButton {
	b.width = clampWidth(fraction)
	return b
}

func (b ReplyButton) Width() float64 { return effectiveWidth(b.width) }
func (b ReplyButton) HasWidth() bool { return b.width > 0 }

func (b ReplyButton) WithWebApp(url string) ReplyButton {
	b = b.as(TypeWebApp)
	b.webAppURL = url
	return b
}

func (b ReplyButton) RequestContact() ReplyButton  { return b.as(TypeRequestContact) }
func (b ReplyButton) RequestLocation() ReplyButton { return b.as(TypeRequestLocation) }

// RequestPoll lets the user create a regular poll.
func (b ReplyButton) RequestPoll() ReplyButton {
	b = b.as(TypeRequestPoll)
	b.poll = PollRegular
	return b
}

// RequestQuiz lets the user create a quiz.
func (b ReplyButton) RequestQuiz() ReplyButton {
	b = b.as(TypeRequestPoll)
	b.poll = PollQuiz
	return b
}

func (b ReplyButton) as(t ReplyButtonType) ReplyButton {
	b.typ = t
	b.webAppURL = ""
	b.poll = ""
	return b
}

// ToArray exports the button as a wire object.
func (b ReplyButton) ToArray() map[string]any {
	m := map[string]any{"text": b.label}
	switch b.Type() {
	case TypeWebApp:
		m["web_app"] = map[string]any{"url": b.webAppURL}
	case TypeRequestContact:
		m["request_contact"] = true
	case TypeRequestLocation:
		m["request_location"] = true
	case TypeRequestPoll:
		m["request_poll"] = map[string]any{"type": string(b.poll)}
	}
	return m
}
