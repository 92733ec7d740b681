package corpus

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Kind tags the JSON shape a verse or comment value was written in.
type Kind int

const (
	// KindOther is any value without a text reading (number, bool, null).
	KindOther Kind = iota
	// KindText is a bare JSON string.
	KindText
	// KindObject is a JSON object, normally carrying a "text" field.
	KindObject
	// KindList is a JSON array of values.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "other"
	}
}

// Content is the value of one verse or comment entry. Exactly one of the
// shape-specific fields is meaningful, selected by Kind.
type Content struct {
	Kind Kind

	// Text is the string for KindText, or the "text" field for KindObject.
	Text string
	// HasText reports whether a KindObject value had a "text" field.
	HasText bool
	// Items holds the raw elements of a KindList value.
	Items []json.RawMessage
	// Raw is the undecoded value for KindOther.
	Raw json.RawMessage
}

// TextContent returns a KindText value.
func TextContent(s string) Content {
	return Content{Kind: KindText, Text: s}
}

// UnmarshalJSON classifies the value by its first byte and decodes it.
func (c *Content) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Content{}
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Kind = KindText
		c.Text = s
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		c.Kind = KindObject
		if raw, ok := fields["text"]; ok {
			c.HasText = true
			c.Text = renderText(raw)
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		c.Kind = KindList
		c.Items = items
	default:
		if !json.Valid(data) {
			var v any
			return json.Unmarshal(data, &v)
		}
		c.Kind = KindOther
		c.Raw = append(json.RawMessage(nil), data...)
	}
	return nil
}

// VerseText resolves the stored text of a verse. Verses have no list form:
// anything but a string or an object with "text" yields "".
func (c Content) VerseText() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindObject:
		return c.Text
	default:
		return ""
	}
}

// CommentText resolves the stored text of a comment. A list is flattened
// into one block with a blank line between elements.
func (c Content) CommentText() string {
	switch c.Kind {
	case KindText, KindObject:
		return c.Text
	case KindList:
		parts := make([]string, len(c.Items))
		for i, item := range c.Items {
			parts[i] = renderText(item)
		}
		return strings.Join(parts, CommentSeparator)
	default:
		return ""
	}
}

// CommentSeparator joins the elements of a list-shaped comment.
const CommentSeparator = "\n\n"

// renderText turns a raw JSON value into stored text: strings unquoted,
// null as "", everything else as compact JSON.
func renderText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case 'n':
		if string(raw) == "null" {
			return ""
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
