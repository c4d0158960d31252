// Package export hands a generated name to the user as a text file or via the
// system clipboard. Failed results are never exported.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/dmccarthy619/file-name-generator/internal/naming"
)

// DefaultFileName is the name of the exported text file.
const DefaultFileName = "generated_filename.txt"

// ErrNotExportable is returned for results that carry a validation error.
var ErrNotExportable = errors.New("result is an error message and cannot be exported")

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// Text returns the exported payload for res.
func Text(res naming.Result) (string, error) {
	if !res.OK() || naming.IsError(res.Name) || res.Name == "" {
		return "", ErrNotExportable
	}
	return res.Name, nil
}

// WriteFile writes the name into dir/DefaultFileName and returns the path.
func WriteFile(dir string, res naming.Result) (string, error) {
	return WriteFileAs(filepath.Join(dir, DefaultFileName), res)
}

// WriteFileAs writes the name into path, replacing an existing file.
func WriteFileAs(path string, res naming.Result) (string, error) {
	text, err := Text(res)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Copy puts the name on the system clipboard.
func Copy(res naming.Result) error {
	text, err := Text(res)
	if err != nil {
		return err
	}
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
