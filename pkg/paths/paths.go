package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/executor"
)

// Environment variable names
const (
	// EnvRoot overrides project root discovery
	EnvRoot = "CORKY_ROOT"

	// EnvConfigDir overrides the XDG config directory for corky
	EnvConfigDir = "CORKY_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default layout. The directory and file names can be changed through
// configuration; these are the values used when nothing is set.
const (
	DirName             = "corky"
	DefaultMailboxesDir = "mailboxes"
	DefaultRegistryFile = "mailboxes.toml"
	DefaultVoiceFile    = "voice.md"
	ProjectConfigFile   = ".corky.toml"
	UserConfigFile      = "config.toml"
)

// legacyLayouts are older places a link's working copy was checked out,
// relative to the root, with %s standing for the lower-cased id. They are
// only consulted when locating an existing working copy.
var legacyLayouts = []string{
	"collabs/%s/to",
	"collabs/%s/from",
	"for/%s",
	"shared/%s",
}

// Layout customizes the names used inside the project root.
type Layout struct {
	MailboxesDir string
	RegistryFile string
	VoiceFile    string
}

// Paths provides centralized path management for corky
type Paths interface {
	Root() string
	RegistryPath() string
	ProjectConfigPath() string
	VoicePath() string
	MailboxesDir() string
	LinkPath(id string) string
	LinkRelPath(id string) string
	LocateLink(id string, exists func(string) bool) (string, bool)
	RenamedLinkPath(path, oldID, newID string) string
	ModulesPath(relPath string) string
	RelPath(path string) (string, error)
}

type paths struct {
	root   string
	layout Layout
}

// New creates a Paths instance rooted at root. Empty layout fields fall
// back to the defaults.
func New(root string, layout Layout) (Paths, error) {
	if root == "" {
		return nil, errors.New(errors.ErrEnvironment, "project root is empty")
	}
	abs, err := filepath.Abs(expandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	if layout.MailboxesDir == "" {
		layout.MailboxesDir = DefaultMailboxesDir
	}
	if layout.RegistryFile == "" {
		layout.RegistryFile = DefaultRegistryFile
	}
	if layout.VoiceFile == "" {
		layout.VoiceFile = DefaultVoiceFile
	}
	return &paths{root: filepath.Clean(abs), layout: layout}, nil
}

// FindRoot resolves the project root from explicit, CORKY_ROOT, or the
// enclosing git repository, in that order.
func FindRoot(explicit string, run executor.Executor) (string, error) {
	if explicit != "" {
		return expandHome(explicit), nil
	}
	if root := os.Getenv(EnvRoot); root != "" {
		return expandHome(root), nil
	}

	result, err := run.Run("git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	root := strings.TrimSpace(result.Stdout)
	if result.Failed() || root == "" {
		return "", errors.New(errors.ErrEnvironment, "not inside a git repository; run from your corky project or set "+EnvRoot).
			WithDetail("stderr", strings.TrimSpace(result.Stderr))
	}
	return root, nil
}

func (p *paths) Root() string {
	return p.root
}

func (p *paths) RegistryPath() string {
	return filepath.Join(p.root, p.layout.RegistryFile)
}

func (p *paths) ProjectConfigPath() string {
	return filepath.Join(p.root, ProjectConfigFile)
}

// UserConfigPath returns the per-user config file under the XDG config home.
func UserConfigPath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(expandHome(dir), UserConfigFile)
	}
	return filepath.Join(xdg.ConfigHome, DirName, UserConfigFile)
}

func (p *paths) VoicePath() string {
	return filepath.Join(p.root, p.layout.VoiceFile)
}

func (p *paths) MailboxesDir() string {
	return filepath.Join(p.root, p.layout.MailboxesDir)
}

// LinkPath returns the working copy path for id in the current layout.
func (p *paths) LinkPath(id string) string {
	return filepath.Join(p.root, p.LinkRelPath(id))
}

// LinkRelPath returns LinkPath relative to the root, as git expects for
// submodule paths.
func (p *paths) LinkRelPath(id string) string {
	return filepath.Join(p.layout.MailboxesDir, strings.ToLower(id))
}

// LocateLink finds an existing working copy for id. The current layout is
// tried first, then each legacy layout; the first candidate for which
// exists returns true wins.
func (p *paths) LocateLink(id string, exists func(string) bool) (string, bool) {
	for _, candidate := range p.candidates(id) {
		if exists(candidate) {
			return candidate, true
		}
	}
	return p.LinkPath(id), false
}

// RenamedLinkPath returns where the working copy at path belongs once oldID
// is renamed to newID, keeping whichever layout path is in. Paths in no
// known layout move to the current one.
func (p *paths) RenamedLinkPath(path, oldID, newID string) string {
	olds, news := p.candidates(oldID), p.candidates(newID)
	for i, candidate := range olds {
		if candidate == filepath.Clean(path) {
			return news[i]
		}
	}
	return p.LinkPath(newID)
}

// candidates lists the possible working copy paths for id, current layout
// first.
func (p *paths) candidates(id string) []string {
	name := strings.ToLower(id)
	out := []string{p.LinkPath(id)}
	for _, layout := range legacyLayouts {
		out = append(out, filepath.Join(p.root, filepath.FromSlash(strings.Replace(layout, "%s", name, 1))))
	}
	return out
}

// ModulesPath returns git's internal directory for the submodule at relPath.
func (p *paths) ModulesPath(relPath string) string {
	return filepath.Join(p.root, ".git", "modules", relPath)
}

// RelPath returns path relative to the root.
func (p *paths) RelPath(path string) (string, error) {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "%s is not inside %s", path, p.root)
	}
	return rel, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
