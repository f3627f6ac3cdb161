package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/corky-dev/corky/pkg/filesystem"
	"github.com/corky-dev/corky/pkg/paths"
	"github.com/corky-dev/corky/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a project root with a scripted executor, for tests
// that drive the engine without touching git or GitHub.
type TestEnvironment struct {
	Root  string
	FS    types.FS
	Paths paths.Paths
	Exec  *ScriptedExecutor

	// Backing is the afero store behind FS, used to set modification times.
	Backing afero.Fs

	Type EnvType
	t    *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType, Exec: NewScriptedExecutor()}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/project"
		env.Backing = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.Backing)
	case EnvIsolated:
		env.Root = filepath.Join(t.TempDir(), "project")
		env.Backing = afero.NewOsFs()
		env.FS = filesystem.NewOS()
	}

	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("Failed to create project root: %v", err)
	}

	p, err := paths.New(env.Root, paths.Layout{})
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// WithFileTree creates a file tree under the project root.
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.Root, tree)
}

// WithRegistry writes content as the registry file.
func (env *TestEnvironment) WithRegistry(content string) {
	env.t.Helper()
	if err := env.FS.WriteFile(env.Paths.RegistryPath(), []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write registry: %v", err)
	}
}

// Registry returns the raw registry file, or "" when it does not exist.
func (env *TestEnvironment) Registry() string {
	data, err := env.FS.ReadFile(env.Paths.RegistryPath())
	if err != nil {
		return ""
	}
	return string(data)
}

// WithWorkingCopy creates the working copy directory for id in the
// current layout and returns its path.
func (env *TestEnvironment) WithWorkingCopy(id string) string {
	env.t.Helper()
	path := env.Paths.LinkPath(id)
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create working copy %s: %v", path, err)
	}
	return path
}

// Touch sets the modification time of path, relative to the root unless absolute.
func (env *TestEnvironment) Touch(path string, mtime time.Time) {
	env.t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(env.Root, path)
	}
	if err := env.Backing.Chtimes(path, mtime, mtime); err != nil {
		env.t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}
}

// Exists reports whether path exists, relative to the root unless absolute.
func (env *TestEnvironment) Exists(path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(env.Root, path)
	}
	return types.Exists(env.FS, path)
}

// FileTree represents a directory structure for testing
type FileTree map[string]interface{}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", filepath.Dir(fullPath), err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
