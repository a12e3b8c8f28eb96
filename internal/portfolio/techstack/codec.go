// Package techstack converts a project's technology list to and from its persisted text form.
package techstack

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for entries that would not survive a round trip:
// JSON encoding replaces invalid UTF-8 with U+FFFD.
var ErrInvalidUTF8 = errors.New("tech stack entry is not valid UTF-8")

// Encode serialises the list as a JSON array. A nil list encodes as "[]".
func Encode(stack []string) (string, error) {
	if stack == nil {
		stack = []string{}
	}
	for i, entry := range stack {
		if !utf8.ValidString(entry) {
			return "", fmt.Errorf("encode tech stack entry %d: %w", i, ErrInvalidUTF8)
		}
	}
	b, err := json.Marshal(stack)
	if err != nil {
		return "", fmt.Errorf("encode tech stack: %w", err)
	}
	return string(b), nil
}

// Decode inverts Encode. An empty value (column was null or never set) yields an empty list.
func Decode(encoded string) ([]string, error) {
	if encoded == "" || encoded == "null" {
		return []string{}, nil
	}
	var stack []string
	if err := json.Unmarshal([]byte(encoded), &stack); err != nil {
		return nil, fmt.Errorf("decode tech stack: %w", err)
	}
	if stack == nil {
		stack = []string{}
	}
	return stack, nil
}
