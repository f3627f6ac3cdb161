package links

import (
	"path/filepath"
	"strings"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/git"
	"github.com/corky-dev/corky/pkg/github"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/types"
)

// Grant selects how the counterpart gets write access to the new remote.
type Grant int

const (
	// GrantInvite adds the counterpart as a collaborator through the API.
	GrantInvite Grant = iota
	// GrantToken prints instructions for a fine-grained access token instead.
	GrantToken
)

// AddOptions describes a new mailbox.
type AddOptions struct {
	// ID is the counterpart's GitHub user name.
	ID          string
	Labels      []string
	DisplayName string
	Account     string
	// Org owns the remote. Defaults to the owner's GitHub identity.
	Org        string
	Grant      Grant
	Visibility github.Visibility
}

// Add provisions a mailbox: it creates and seeds the remote repository,
// links it into the project as a submodule and registers it.
func (e *Engine) Add(opts AddOptions) (types.Link, error) {
	done := logging.LogOperationStart(e.logger, "add")
	defer done()

	id := strings.TrimSpace(opts.ID)
	if id == "" {
		return types.Link{}, errors.New(errors.ErrInvalidInput, "mailbox id is required")
	}

	links, err := e.store.Load()
	if err != nil {
		return types.Link{}, err
	}
	if _, ok := links[id]; ok {
		return types.Link{}, errors.MailboxExists(id, e.registryName())
	}

	path := e.paths.LinkPath(id)
	if types.Exists(e.fs, path) {
		return types.Link{}, errors.PathExists(path, e.rel(path))
	}

	org := opts.Org
	if org == "" {
		org = e.ownerIdentity()
	}
	if org == "" {
		return types.Link{}, errors.New(errors.ErrEnvironment,
			"owner GitHub identity is unknown; set owner.github_user in your config or pass --org")
	}

	visibility := opts.Visibility
	if visibility == "" {
		configured, err := github.ParseVisibility(e.cfg.Mailboxes.Visibility)
		if err != nil {
			return types.Link{}, err
		}
		visibility = configured
	}

	link := types.Link{
		ID:          id,
		Labels:      opts.Labels,
		DisplayName: opts.DisplayName,
		Account:     opts.Account,
	}
	link.SetRepoRef(types.RepoRefFor(org, id))
	ref := link.RepoRef
	host := e.cfg.Mailboxes.GitHost

	e.printf(msgCreatingRepo, ref, visibility)
	if err := e.gh.CreateRepo(ref, visibility); err != nil {
		return link, err
	}

	switch opts.Grant {
	case GrantToken:
		e.printf(msgTokenInstructions, host, ref)
	default:
		e.printf(msgAddingCollab, id, ref)
		if err := e.gh.AddCollaborator(ref, id); err != nil {
			return link, err
		}
	}

	e.printf(msgInitializing)
	if err := e.seed(link); err != nil {
		return link, err
	}

	rel := e.paths.LinkRelPath(id)
	url := git.SSHURL(host, ref)
	e.printf(msgAddingLink, rel, url)
	if err := e.root.SubmoduleAdd(url, rel); err != nil {
		return link, err
	}

	links[id] = link
	if err := e.store.Save(links); err != nil {
		return link, err
	}
	e.printf(msgRegistryUpdate, e.registryName())

	e.printf(msgNextSteps)
	for _, label := range link.Labels {
		e.printf(msgNextLabel, label)
	}
	e.printf(msgNextSync, id)

	e.logger.Info().Str("id", id).Str("repo", ref).Msg("Mailbox added")
	return link, nil
}

// seed clones the empty remote into a scratch directory, writes the
// initial content and pushes it. The scratch directory is always removed.
func (e *Engine) seed(link types.Link) error {
	tmp, err := e.fs.MkdirTemp("", "corky-seed-")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot create scratch directory")
	}
	defer func() {
		if err := e.fs.RemoveAll(tmp); err != nil {
			e.logger.Warn().Err(err).Str("dir", tmp).Msg("Failed to remove scratch directory")
		}
	}()

	if err := e.gh.Clone(link.RepoRef, tmp); err != nil {
		return err
	}

	display := link.DisplayOrID()
	if _, err := e.regen.Regenerate(tmp, display, e.ownerName()); err != nil {
		return err
	}
	for _, dir := range []string{"conversations", "drafts"} {
		if err := e.fs.MkdirAll(filepath.Join(tmp, dir), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", dir)
		}
		if err := e.fs.WriteFile(filepath.Join(tmp, dir, ".gitkeep"), nil, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s/.gitkeep", dir)
		}
	}

	repo := git.NewRepository(e.exec, tmp)
	if err := repo.AddAll(); err != nil {
		return err
	}
	if err := repo.Commit(e.cfg.Sync.SeedMessageFor(display)); err != nil {
		return err
	}
	return repo.Push()
}
