// Package writer persists recognized text to disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteText writes UTF-8 text to outputPath, overwriting any existing
// file and creating parent directories as needed.
//
// The file is created, written, and closed within the call; on error the
// file may be absent or partial, and the caller should treat the write as
// failed either way.
func WriteText(outputPath, text string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
