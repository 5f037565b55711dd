// SPDX-License-Identifier: MIT

// Package loader - file entry points dispatching on the extension.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/fluxnet/core"
)

// Format names a document codec.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatOf maps a path's extension to a Format.
//
// Errors: ErrUnsupportedFormat.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ReadDocument reads and decodes the document stored at path.
func ReadDocument(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	if format == FormatHCL {
		return DecodeHCL(src, path)
	}

	return DecodeYAML(bytes.NewReader(src))
}

// Load reads path and builds the model it describes.
func Load(path string, opts ...core.ModelOption) (*core.Model, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	m, err := Build(doc, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return m, nil
}

// Encode writes m in the given format.
func Encode(w io.Writer, m *core.Model, format Format) error {
	doc := FromModel(m)
	switch format {
	case FormatYAML:
		return EncodeYAML(w, doc)
	case FormatHCL:
		return EncodeHCL(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes m to path in the format implied by its extension.
func Save(path string, m *core.Model) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, m, format); err != nil {
		return err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("loader: write %s: %w", path, err)
	}

	return nil
}
