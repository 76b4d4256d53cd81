package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the output representation of the aggregate structure.
type Format string

const (
	FormatTerraform Format = "terraform"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
)

// Formats lists the supported format names.
var Formats = []Format{FormatTerraform, FormatJSON, FormatYAML}

// IsUnknown reports whether the format is not one of the supported formats.
func (f Format) IsUnknown() bool {
	for _, known := range Formats {
		if f == known {
			return false
		}
	}
	return true
}

// Writer serializes a value tree to an output stream in a given format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter returns a writer targeting out.
func NewWriter(format Format, out io.Writer) *Writer {
	return &Writer{format: format, out: out}
}

// NewFileWriterOrStdout returns a writer targeting the given file path, or
// stdout when the path is empty.
func NewFileWriterOrStdout(format Format, path string) (*Writer, func() error, error) {
	if path == "" {
		return NewWriter(format, os.Stdout), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %q: %w", path, err)
	}
	return NewWriter(format, f), f.Close, nil
}

// Serialize writes the value tree in the writer's format.
func (w *Writer) Serialize(v Value) error {
	switch w.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v.plain(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v.plain())
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w.out, Terraform(v))
		return err
	}
}
