package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peter88213/aeon3md/internal/errors"
)

// Extension is the file extension of rendered documents.
const Extension = ".md"

// BackupSuffix is appended to an existing destination before it is replaced.
const BackupSuffix = ".bak"

// Path returns the destination for rendering source with suffix: the source
// directory, the source base name without its extension, the suffix and
// Extension.
func Path(source, suffix string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(source), base+suffix+Extension)
}

// WriteFile writes text to path. An existing file is first renamed to
// path+BackupSuffix; if writing fails, the backup is moved back.
func WriteFile(path, text string) error {
	backup := path + BackupSuffix
	backedUp := false

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		if err := os.Rename(path, backup); err != nil {
			return errors.Newf("cannot overwrite %q: %w", filepath.Clean(path), err).
				Component(component).
				Category(errors.CategoryFileIO).
				Context("path", path).
				Build()
		}
		backedUp = true
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		if backedUp {
			// best effort; the write error is what the caller needs
			_ = os.Rename(backup, path)
		}
		return errors.Newf("cannot write %q: %w", filepath.Clean(path), err).
			Component(component).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	return nil
}
