// Package github wraps the hosting operations corky needs from the gh CLI:
// creating, cloning, renaming and deleting repositories, and inviting a
// collaborator.
package github

import (
	"fmt"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/executor"
)

// Visibility of a created repository.
type Visibility string

const (
	Private Visibility = "private"
	Public  Visibility = "public"
)

// ParseVisibility accepts "private" and "public". Empty means private.
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(s) {
	case "", Private:
		return Private, nil
	case Public:
		return Public, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown visibility %q", s)
}

// Client issues gh commands through an executor.
type Client struct {
	exec executor.Executor
}

// New returns a Client running gh through exec.
func New(exec executor.Executor) *Client {
	return &Client{exec: exec}
}

func (c *Client) run(step string, args ...string) error {
	argv := append([]string{"gh"}, args...)
	_, err := executor.Checked(c.exec, step, argv...)
	return err
}

// CreateRepo creates the repository ref ("owner/name").
func (c *Client) CreateRepo(ref string, visibility Visibility) error {
	return c.run("create repository", "repo", "create", ref, "--"+string(visibility), "--confirm")
}

// AddCollaborator grants user push access to ref.
func (c *Client) AddCollaborator(ref, user string) error {
	endpoint := fmt.Sprintf("repos/%s/collaborators/%s", ref, user)
	return c.run("add collaborator", "api", endpoint, "-X", "PUT", "--silent")
}

// Clone checks ref out into dir.
func (c *Client) Clone(ref, dir string) error {
	return c.run("clone repository", "repo", "clone", ref, dir)
}

// RenameRepo renames ref to newName, keeping its owner.
func (c *Client) RenameRepo(ref, newName string) error {
	return c.run("rename repository", "repo", "rename", newName, "-R", ref, "--yes")
}

// DeleteRepo permanently deletes ref.
func (c *Client) DeleteRepo(ref string) error {
	return c.run("delete repository", "repo", "delete", ref, "--yes")
}
