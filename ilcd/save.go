package ilcd

import (
	"fmt"
	"io"
	"os"

	"github.com/lcatools/go-ilcd/xmltree"
)

// Encode writes a dataset document to w. With fillDefaults set, the
// library's static and dynamic defaults are first filled into
// attributes that are absent from the tree; attributes already present
// are left alone.
func (lib *Library) Encode(w io.Writer, ds DataSet, fillDefaults bool) error {
	if fillDefaults {
		if err := lib.defaults.fill(ds.Kind(), ds.Elem()); err != nil {
			return err
		}
	}
	return xmltree.Encode(w, ds.Elem())
}

// Save writes a dataset document to path.
func (lib *Library) Save(path string, ds DataSet, fillDefaults bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := lib.Encode(f, ds, fillDefaults); err != nil {
		f.Close()
		return fmt.Errorf("ilcd: save %s: %w", path, err)
	}
	return f.Close()
}
