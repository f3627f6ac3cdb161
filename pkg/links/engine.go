package links

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/corky-dev/corky/pkg/config"
	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/executor"
	"github.com/corky-dev/corky/pkg/git"
	"github.com/corky-dev/corky/pkg/github"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/paths"
	"github.com/corky-dev/corky/pkg/registry"
	"github.com/corky-dev/corky/pkg/templates"
	"github.com/corky-dev/corky/pkg/types"
	"github.com/rs/zerolog"
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// Options wires an Engine to its collaborators. Paths, Executor and
// FileSystem are required.
type Options struct {
	Paths      paths.Paths
	Executor   executor.Executor
	FileSystem types.FS
	Config     *config.Config
	// Out receives progress messages. Defaults to io.Discard.
	Out     io.Writer
	Confirm ConfirmFunc
	Logger  zerolog.Logger
}

// Engine runs mailbox lifecycle operations against one project.
type Engine struct {
	paths   paths.Paths
	exec    executor.Executor
	fs      types.FS
	cfg     *config.Config
	out     io.Writer
	confirm ConfirmFunc
	logger  zerolog.Logger

	store *registry.Store
	gh    *github.Client
	root  *git.Repository
	regen *templates.Regenerator
}

// New creates an Engine.
func New(opts Options) (*Engine, error) {
	if opts.Paths == nil || opts.Executor == nil || opts.FileSystem == nil {
		return nil, errors.New(errors.ErrInternal, "links engine requires paths, executor and filesystem")
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(config.Sources{})
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	confirm := opts.Confirm
	if confirm == nil {
		confirm = func(string) bool { return false }
	}

	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("links")
	}

	regen := templates.New(templates.Options{
		FileSystem: opts.FileSystem,
		VoicePath:  opts.Paths.VoicePath(),
		Gitignore:  cfg.Templates.Gitignore,
	})

	e := &Engine{
		paths:   opts.Paths,
		exec:    opts.Executor,
		fs:      opts.FileSystem,
		cfg:     cfg,
		out:     out,
		confirm: confirm,
		logger:  logger,
		gh:      github.New(opts.Executor),
		root:    git.NewRepository(opts.Executor, opts.Paths.Root()),
		regen:   regen,
	}
	e.store = registry.NewStore(opts.FileSystem, opts.Paths.RegistryPath(), e.ownerIdentity)
	return e, nil
}

// Store returns the registry store the engine reads and writes.
func (e *Engine) Store() *registry.Store {
	return e.store
}

func (e *Engine) ownerIdentity() string {
	return e.cfg.Owner.GithubUser
}

func (e *Engine) ownerName() string {
	return e.cfg.Owner.DisplayName()
}

func (e *Engine) registryName() string {
	return filepath.Base(e.store.Path())
}

func (e *Engine) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}

// lookup loads the registry and returns the link registered as id.
func (e *Engine) lookup(id string) (map[string]types.Link, types.Link, error) {
	links, err := e.store.Load()
	if err != nil {
		return nil, types.Link{}, err
	}
	link, ok := links[id]
	if !ok {
		return links, types.Link{}, e.notFound(id)
	}
	return links, link, nil
}

func (e *Engine) notFound(id string) error {
	return errors.MailboxNotFound(id, e.registryName())
}

// locate finds the working copy of link, checking legacy layouts too.
func (e *Engine) locate(link types.Link) (string, bool) {
	return e.paths.LocateLink(link.ID, func(p string) bool {
		return types.Exists(e.fs, p)
	})
}

func (e *Engine) rel(path string) string {
	rel, err := e.paths.RelPath(path)
	if err != nil {
		return path
	}
	return rel
}

// isolated reports whether a per-link failure may be skipped over in a
// batch. Environment failures mean every later link would fail the same way.
func isolated(err error) bool {
	return !errors.IsErrorCode(err, errors.ErrEnvironment)
}
