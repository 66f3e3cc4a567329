package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// MarshalJSON writes the pairs in order. Values are not HTML-escaped.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, field.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, field.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of strings, keeping document order. A
// repeated key keeps its first position and its last value.
func (f *Fields) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*f = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	fields := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		fields.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = fields
	return nil
}

// Constraint returns the parsed version range stored under name.
func (f Fields) Constraint(name string) (*semver.Constraints, error) {
	r, ok := f.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("dependency %q not declared", name)
	}
	c, err := semver.NewConstraint(r)
	if err != nil {
		return nil, fmt.Errorf("parsing range %q for %s: %w", r, name, err)
	}
	return c, nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
