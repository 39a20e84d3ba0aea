package imagestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tradehub/utils"
)

// ImageStore persists image payloads and returns stable references. The
// catalog stores only the references.
type ImageStore interface {
	Save(filename string, content io.Reader) (string, error)
}

// DiskStore writes images under a local directory
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("imagestore: create dir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the payload to disk under a unique sanitized name and returns
// the reference the caller should persist.
func (s *DiskStore) Save(filename string, content io.Reader) (string, error) {
	ref := utils.GenerateID() + "_" + sanitize(filename)
	path := filepath.Join(s.dir, ref)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("imagestore: create %s: %w", ref, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("imagestore: write %s: %w", ref, err)
	}
	return ref, nil
}

// sanitize strips path components and characters unsafe in a filename
func sanitize(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		out = "upload"
	}
	return out
}
