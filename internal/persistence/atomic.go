// Package persistence reconciles an in-memory loadorder.LoadOrder with the
// on-disk state mechanisms a game uses: file modification timestamps for
// the Timestamp method, and a pair of text files for the Textfile method.
package persistence

import (
	"os"
	"path/filepath"

	"github.com/NeilSeligmann/libloadorder/internal/domain"

	"github.com/google/uuid"
)

// writeFileAtomic writes data to path by first writing to a uuid-suffixed
// temporary sibling and renaming it into place, so a save interrupted by
// an I/O error never leaves a partially-written file at path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domain.Wrap(domain.ErrKindIO, "creating directory for "+path, err)
	}

	tempPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return domain.Wrap(domain.ErrKindIO, "writing temporary file for "+path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return domain.Wrap(domain.ErrKindIO, "replacing "+path, err)
	}
	return nil
}
