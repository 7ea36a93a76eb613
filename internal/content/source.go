package content

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrUnavailable marks every content-unavailable condition: missing
// bundle, missing path, missing file. Callers degrade to an empty state
// instead of treating it as fatal.
var ErrUnavailable = errors.New("content unavailable")

// The resolver works against any fs.FS, so the question bank can live in
// a plain directory, a zip archive, or a test fixture.

// NewDirSource opens a question bank rooted at a directory on disk.
func NewDirSource(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrUnavailable, dir)
	}
	return os.DirFS(dir), nil
}

// NewZipSource opens a question bank packaged as a zip archive, the shape
// content updates ship in. The returned closer releases the archive.
func NewZipSource(path string) (fs.FS, io.Closer, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
	}
	return rc, rc, nil
}
