// SPDX-License-Identifier: MIT

// Package modelstore persists KNN models and labeled corpora as JSON,
// YAML or zstd-compressed JSON files.
package modelstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding.
type Format int

const (
	// FormatJSON is plain indented JSON (.json).
	FormatJSON Format = iota
	// FormatYAML is YAML (.yaml, .yml).
	FormatYAML
	// FormatJSONZstd is compact JSON in a zstd frame (.json.zst).
	FormatJSONZstd
)

var (
	// ErrUnknownFormat indicates a path extension or Format value with no codec.
	ErrUnknownFormat = errors.New("modelstore: unknown format")

	// ErrNotFound indicates a missing model or corpus file.
	ErrNotFound = errors.New("modelstore: not found")

	// ErrLocked indicates the store lock could not be taken in time.
	ErrLocked = errors.New("modelstore: store is locked")
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatJSONZstd:
		return "json.zst"
	default:
		return "Format(?)"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	p := strings.ToLower(path)
	switch {
	case strings.HasSuffix(p, ".json.zst"):
		return FormatJSONZstd, nil
	case strings.HasSuffix(p, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(p, ".yaml"), strings.HasSuffix(p, ".yml"):
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("modelstore: %q: %w", path, ErrUnknownFormat)
	}
}

// Encode writes v to w in format f.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSONZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("modelstore: zstd writer: %w", err)
		}
		if err := json.NewEncoder(zw).Encode(v); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	default:
		return fmt.Errorf("modelstore: encode %v: %w", f, ErrUnknownFormat)
	}
}

// Decode reads one value of format f from r into v.
func Decode(r io.Reader, v any, f Format) error {
	switch f {
	case FormatJSON:
		return json.NewDecoder(r).Decode(v)
	case FormatYAML:
		return yaml.NewDecoder(r).Decode(v)
	case FormatJSONZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return fmt.Errorf("modelstore: zstd reader: %w", err)
		}
		defer zr.Close()
		return json.NewDecoder(zr).Decode(v)
	default:
		return fmt.Errorf("modelstore: decode %v: %w", f, ErrUnknownFormat)
	}
}
