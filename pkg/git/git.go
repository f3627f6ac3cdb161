// Package git provides typed access to the git operations corky performs.
// Every command targets a specific directory through "git -C <dir>" and
// runs through an executor.Executor, so tests can script git entirely.
package git

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/executor"
)

// Revision ranges relative to the upstream tracking branch.
const (
	RangeIncoming = "HEAD..@{u}"
	RangeOutgoing = "@{u}..HEAD"
)

// Repository is a git working tree at a specific directory.
type Repository struct {
	exec executor.Executor
	dir  string
}

// NewRepository returns a Repository targeting dir.
func NewRepository(exec executor.Executor, dir string) *Repository {
	return &Repository{exec: exec, dir: dir}
}

// Dir returns the repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Run executes git with args inside the repository. A non-zero exit is
// returned as an EXTERNAL_COMMAND error naming step.
func (r *Repository) Run(step string, args ...string) (executor.Result, error) {
	argv := append([]string{"git", "-C", r.dir}, args...)
	return executor.Checked(r.exec, step, argv...)
}

// PullRebase pulls the upstream branch, rebasing local commits on top. It
// reports whether anything new arrived.
func (r *Repository) PullRebase() (bool, error) {
	result, err := r.Run("pull", "pull", "--rebase")
	if err != nil {
		return false, err
	}
	return !strings.Contains(result.Stdout, "Already up to date"), nil
}

// Fetch updates remote tracking refs.
func (r *Repository) Fetch() error {
	_, err := r.Run("fetch", "fetch")
	return err
}

// AddAll stages every change in the working tree.
func (r *Repository) AddAll() error {
	_, err := r.Run("stage", "add", "-A")
	return err
}

// Add stages path, relative to the repository.
func (r *Repository) Add(path string) error {
	_, err := r.Run("stage "+path, "add", path)
	return err
}

// HasChanges reports whether the index or working tree differ from HEAD.
func (r *Repository) HasChanges() (bool, error) {
	result, err := r.Run("status", "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(result.Stdout) != "", nil
}

// Commit records the staged changes with message.
func (r *Repository) Commit(message string) error {
	_, err := r.Run("commit", "commit", "-m", message)
	return err
}

// Push pushes the current branch to its upstream.
func (r *Repository) Push() error {
	_, err := r.Run("push", "push")
	return err
}

// CountCommits returns the number of commits in revRange.
func (r *Repository) CountCommits(revRange string) (int, error) {
	result, err := r.Run("rev-list "+revRange, "rev-list", "--count", revRange)
	if err != nil {
		return 0, err
	}
	out := strings.TrimSpace(result.Stdout)
	n, convErr := strconv.Atoi(out)
	if convErr != nil {
		return 0, errors.Wrapf(convErr, errors.ErrExternalCommand, "unexpected rev-list output %q", out).
			WithDetail("step", "rev-list "+revRange)
	}
	return n, nil
}

// SubmoduleAdd links url as a submodule at relPath.
func (r *Repository) SubmoduleAdd(url, relPath string) error {
	_, err := r.Run("submodule add", "submodule", "add", url, relPath)
	return err
}

// SubmoduleDeinit unregisters the submodule at relPath, discarding local changes.
func (r *Repository) SubmoduleDeinit(relPath string) error {
	_, err := r.Run("submodule deinit", "submodule", "deinit", "-f", relPath)
	return err
}

// Remove deletes relPath from the index and the working tree.
func (r *Repository) Remove(relPath string) error {
	_, err := r.Run("rm", "rm", "-f", relPath)
	return err
}

// Move renames a tracked path, submodules included.
func (r *Repository) Move(from, to string) error {
	_, err := r.Run("mv", "mv", from, to)
	return err
}

// SSHURL returns the ssh clone URL for ref on host.
func SSHURL(host, ref string) string {
	return fmt.Sprintf("git@%s:%s.git", host, ref)
}
