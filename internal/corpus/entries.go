package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one key/value pair of a JSON object.
type Entry[V any] struct {
	Key   string
	Value V
}

// Entries is a JSON object decoded in source order. Rows are inserted in
// the order the document lists them, which a Go map would lose.
//
// A repeated key keeps the position of its first occurrence and the value
// of its last, matching how most JSON readers build their maps.
type Entries[V any] []Entry[V]

// UnmarshalJSON decodes an object token by token. null decodes to no
// entries; any other non-object value is an error.
func (e *Entries[V]) UnmarshalJSON(data []byte) error {
	*e = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, found %v", describeToken(tok))
	}

	var out Entries[V]
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, found %v", describeToken(tok))
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			out[i].Value = value
			continue
		}
		index[key] = len(out)
		out = append(out, Entry[V]{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*e = out
	return nil
}

// Keys returns the keys in source order.
func (e Entries[V]) Keys() []string {
	keys := make([]string, len(e))
	for i, entry := range e {
		keys[i] = entry.Key
	}
	return keys
}

// Get returns the value stored under key.
func (e Entries[V]) Get(key string) (V, bool) {
	for _, entry := range e {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	var zero V
	return zero, false
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return string(v)
	case string:
		return "string"
	case nil:
		return "null"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
