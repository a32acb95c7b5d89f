package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"netupdate/internal/domain"
)

// Importer parses a device source into an ordered name -> IP table
type Importer interface {
	Parse(r io.Reader) (*domain.DeviceTable, error)
	Format() string
}

// Exporter writes session results
type Exporter interface {
	ExportTable(table *domain.DeviceTable, w io.Writer) error
	ExportList(items []string, w io.Writer) error
	Format() string
}

// Codec is both an Importer and an Exporter
type Codec interface {
	Importer
	Exporter
}

// ForFormat returns the codec registered for format ("json" or "yaml")
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json", "":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// ForPath picks a codec from a file extension. Anything that is not
// .yaml/.yml is treated as JSON, which covers the legacy .txt files.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec()
	}
	return NewJSONCodec()
}
