// SPDX-License-Identifier: MIT

package modelstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadFile decodes the file at path into v, choosing the codec by extension.
// A missing file is reported as ErrNotFound.
func ReadFile(path string, v any) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("modelstore: %s: %w", path, ErrNotFound)
		}
		return err
	}
	defer fh.Close()

	if err := Decode(fh, v, f); err != nil {
		return fmt.Errorf("modelstore: decode %s: %w", path, err)
	}

	return nil
}

// WriteFile encodes v into path by extension. The data goes to a temporary
// file in the same directory which is renamed over path once complete, so
// readers never see a partial file.
func WriteFile(path string, v any) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, v, f); err != nil {
		return fmt.Errorf("modelstore: encode %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
