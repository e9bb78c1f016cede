// SPDX-License-Identifier: MIT

// Package matrixio reads and writes SquareMat documents as YAML or TOML.
//
// A document holds a single key, rows, whose value is the matrix in row-major
// order:
//
//	# YAML
//	rows:
//	  - [4.5, 8, 7]
//	  - [2, 0, -12]
//	  - [3.3, 5.6, -2.1]
//
//	# TOML
//	rows = [[4.5, 8.0, 7.0], [2.0, 0.0, -12.0], [3.3, 5.6, -2.1]]
//
// Shape checks are delegated to matrix.NewFromRows, so a ragged or non-square
// document fails with matrix.ErrInvalidSize.
package matrixio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sqmat/matrix"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnknownFormat is returned for a format name or file extension that is not supported.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrEmptyDocument is returned when a document has no rows.
	ErrEmptyDocument = errors.New("matrixio: document has no rows")
)

// document is the on-disk shape shared by both encodings.
type document struct {
	Rows [][]float64 `yaml:"rows" toml:"rows"`
}

// ParseFormat maps "yaml", "yml" or "toml" (any case) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the Format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Decode reads one document from r and builds a SquareMat with opts.
func Decode(r io.Reader, f Format, opts ...matrix.Option) (*matrix.SquareMat, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err = dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("toml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if len(doc.Rows) == 0 {
		return nil, ErrEmptyDocument
	}
	m, err := matrix.NewFromRows(doc.Rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("build matrix: %w", err)
	}

	return m, nil
}

// Encode writes m to w as a single document.
func Encode(w io.Writer, m *matrix.SquareMat, f Format) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	doc := document{Rows: make([][]float64, m.Size())}
	for i := range doc.Rows {
		doc.Rows[i] = append([]float64(nil), m.Row(i)...)
	}

	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
	case FormatTOML:
		data, err = toml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("toml marshal: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	_, err = w.Write(data)

	return err
}

// ReadFile decodes the document at path, choosing the format by extension.
func ReadFile(path string, opts ...matrix.Option) (*matrix.SquareMat, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	m, err := Decode(fh, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteFile encodes m to path, choosing the format by extension.
// The file is created or truncated with mode 0644.
func WriteFile(path string, m *matrix.SquareMat) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = Encode(&buf, m, f); err != nil {
		return err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
