package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"netupdate/internal/domain"
)

// DefaultJSONIndent matches the layout of the legacy updated.txt/errors.txt files
const DefaultJSONIndent = "    "

// JSONCodec handles JSON import/export
type JSONCodec struct {
	Indent string
}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: DefaultJSONIndent}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse reads a JSON object of string values, keeping key order
func (c *JSONCodec) Parse(r io.Reader) (*domain.DeviceTable, error) {
	decoder := json.NewDecoder(r)

	tok, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse JSON: expected object, got %v", tok)
	}

	table := domain.NewDeviceTable()
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		key, _ := keyTok.(string)

		var ip string
		if err := decoder.Decode(&ip); err != nil {
			return nil, fmt.Errorf("failed to parse JSON value for %q: %w", key, err)
		}
		table.Set(key, ip)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("failed to parse JSON: trailing data after object")
	}

	return table, nil
}

// ExportTable writes table as an indented JSON object in table order
func (c *JSONCodec) ExportTable(table *domain.DeviceTable, w io.Writer) error {
	var compact bytes.Buffer
	compact.WriteByte('{')
	first := true
	var encErr error
	table.Each(func(name, ip string) {
		if encErr != nil {
			return
		}
		if !first {
			compact.WriteByte(',')
		}
		first = false
		k, err := marshalUnescaped(name)
		if err != nil {
			encErr = err
			return
		}
		v, err := marshalUnescaped(ip)
		if err != nil {
			encErr = err
			return
		}
		compact.Write(k)
		compact.WriteByte(':')
		compact.Write(v)
	})
	if encErr != nil {
		return fmt.Errorf("failed to encode JSON: %w", encErr)
	}
	compact.WriteByte('}')

	return c.writeIndented(compact.Bytes(), w)
}

// ExportList writes items as an indented JSON array; nil is written as []
func (c *JSONCodec) ExportList(items []string, w io.Writer) error {
	if items == nil {
		items = []string{}
	}
	data, err := marshalUnescaped(items)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return c.writeIndented(data, w)
}

// marshalUnescaped is json.Marshal without HTML escaping, so rejected
// literals such as "1<2" are written as typed
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (c *JSONCodec) writeIndented(data []byte, w io.Writer) error {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", c.Indent); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	out.WriteByte('\n')
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
