package challenge

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode renders c as chal.json content: keys sorted, four-space indent, no
// HTML escaping and no trailing newline.
func (c Challenge) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding challenge %s: %w", c.Name, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses chal.json content and validates the result.
func Decode(data []byte) (Challenge, error) {
	var c Challenge
	if err := json.Unmarshal(data, &c); err != nil {
		return Challenge{}, fmt.Errorf("decoding challenge: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Challenge{}, err
	}
	return c, nil
}
