package testutil

import (
	"github.com/corky-dev/corky/pkg/filesystem"
	"github.com/corky-dev/corky/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	fs, _ := NewTestFSWithBacking()
	return fs
}

// NewTestFSWithBacking returns the in-memory FS together with the afero
// backing store, for tests that need to set modification times.
func NewTestFSWithBacking() (types.FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}
