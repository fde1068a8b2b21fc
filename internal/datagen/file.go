package datagen

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// File is one generated file. Path is slash-separated and relative to the pack root.
type File struct {
	Path string
	Data []byte
}

// encodeJSON renders v with two-space indentation and a trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}
