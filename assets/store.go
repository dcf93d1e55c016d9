// Package assets loads named resources (textures) from the bundled resource
// store or from a directory on disk.
package assets

import (
	"io/fs"
	"os"
	"path"

	"github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("asset not found")
	ErrMalformed = errors.New("malformed asset")
)

// Store maps asset names to bytes. A missing asset returns an error matching ErrNotFound.
type Store interface {
	Load(name string) ([]byte, error)
}

// DefaultExtensions are tried in order when a name is given without an extension
var DefaultExtensions = []string{".png", ".jpg", ".jpeg"}

// FSStore serves assets from a directory of a file system
type FSStore struct {
	FS   fs.FS
	Root string
	// Extensions tried when the name has none. Defaults to DefaultExtensions
	Extensions []string
}

func NewFSStore(fsys fs.FS, root string) *FSStore {
	return &FSStore{FS: fsys, Root: root, Extensions: DefaultExtensions}
}

func NewDirStore(dir string) *FSStore {
	return NewFSStore(os.DirFS(dir), ".")
}

func (s *FSStore) Load(name string) ([]byte, error) {

	if !fs.ValidPath(name) || name == "." {
		return nil, errors.Wrapf(ErrNotFound, "invalid asset name '%s'", name)
	}

	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range s.Extensions {
			candidates = append(candidates, name+ext)
		}
	}

	for _, c := range candidates {

		data, err := fs.ReadFile(s.FS, path.Join(s.Root, c))
		if err == nil {
			return data, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to read asset '%s'", c)
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "asset '%s' under '%s'", name, s.Root)
}

// LayeredStore tries each store in order and returns the first asset found
type LayeredStore []Store

func (l LayeredStore) Load(name string) ([]byte, error) {

	for _, s := range l {

		data, err := s.Load(name)
		if err == nil {
			return data, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "asset '%s'", name)
}
