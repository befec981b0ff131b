// Package storage persists uploaded file blobs on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Disk writes blobs into a single directory, keyed by a generated id plus
// the original filename's extension. Keying by id means two uploads with
// the same name never collide; the original name lives in the metadata
// row, not on disk.
type Disk struct {
	base string
}

// NewDisk creates the base directory if needed and returns a store
// rooted there.
func NewDisk(base string) (*Disk, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{base: base}, nil
}

// Save streams r into a new blob and returns its path and size. If the
// copy fails partway the partial blob is removed before returning.
func (d *Disk) Save(filename string, r io.Reader) (string, int64, error) {
	ext := filepath.Ext(filepath.Base(filename))
	path := filepath.Join(d.base, uuid.NewString()+ext)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create blob: %w", err)
	}
	size, err := io.Copy(dst, r)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write blob: %w", err)
	}
	return path, size, nil
}

// Remove deletes the blob at path. A blob that is already gone is not an
// error.
func (d *Disk) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
