package headermap

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ResourceSet locates mapping resources for a translation run. A resource
// name is tried as a direct path first, then joined against each
// configured root in order; the first location that exists wins.
type ResourceSet struct {
	fsys  afero.Fs
	roots []string
}

// NewResourceSet returns a ResourceSet reading through fsys.
// A nil fsys falls back to the host filesystem.
func NewResourceSet(fsys afero.Fs, roots ...string) *ResourceSet {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &ResourceSet{fsys: fsys, roots: roots}
}

// ReadResource returns the contents of the first location that resolves
// name. Absence at every location surfaces as fs.ErrNotExist so callers
// can tell a missing resource from an unreadable one.
func (r *ResourceSet) ReadResource(name string) ([]byte, error) {
	candidates := make([]string, 0, len(r.roots)+1)
	candidates = append(candidates, name)

	for _, root := range r.roots {
		candidates = append(candidates, filepath.Join(root, name))
	}

	for _, path := range candidates {
		data, err := afero.ReadFile(r.fsys, path)
		switch {
		case err == nil:
			return data, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return nil, fmt.Errorf("reading mapping resource %s: %w", path, err)
		}
	}

	return nil, fmt.Errorf("mapping resource %s: %w", name, fs.ErrNotExist)
}
