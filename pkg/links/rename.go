package links

import (
	"path/filepath"
	"strings"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/types"
)

// Rename re-keys a mailbox from oldID to newID, moving its working copy
// and, when renameRemote is set, renaming the remote repository too.
func (e *Engine) Rename(oldID, newID string, renameRemote bool) (types.Link, error) {
	done := logging.LogOperationStart(e.logger, "rename")
	defer done()

	newID = strings.TrimSpace(newID)
	if newID == "" {
		return types.Link{}, errors.New(errors.ErrInvalidInput, "new mailbox id is required")
	}

	links, link, err := e.lookup(oldID)
	if err != nil {
		return types.Link{}, err
	}
	if _, ok := links[newID]; ok {
		return link, errors.MailboxExists(newID, e.registryName())
	}

	oldDir, found := e.locate(link)
	newDir := e.paths.RenamedLinkPath(oldDir, oldID, newID)
	if found && oldDir != newDir && types.Exists(e.fs, newDir) {
		return link, errors.PathExists(newDir, e.rel(newDir))
	}

	if found && oldDir != newDir {
		e.printf(msgMoving, e.rel(oldDir), e.rel(newDir))
		// git mv does not create missing parents, e.g. collabs/<new> for
		// the collabs/<id>/to layout.
		if err := e.fs.MkdirAll(filepath.Dir(newDir), 0755); err != nil {
			return link, errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", e.rel(filepath.Dir(newDir)))
		}
		if err := e.root.Move(e.rel(oldDir), e.rel(newDir)); err != nil {
			return link, err
		}
	} else if !found {
		e.printf(msgNoDirToMove, oldID)
	}

	renamed := link
	renamed.ID = newID
	if renameRemote && link.RepoRef != "" {
		owner, _ := types.SplitRepoRef(link.RepoRef)
		newName := types.RemoteName(newID)
		e.printf(msgRenamingRepo, link.RepoRef, newName)
		if err := e.gh.RenameRepo(link.RepoRef, newName); err != nil {
			return link, err
		}
		if owner == "" {
			owner = e.ownerIdentity()
		}
		if owner != "" {
			renamed.SetRepoRef(owner + "/" + newName)
		} else {
			renamed.SetRepoRef(newName)
		}
	} else {
		// The remote keeps its name, so the reference must not be
		// re-derived from the new id on the next load.
		renamed.SetRepoRef(link.RepoRef)
	}

	delete(links, oldID)
	links[newID] = renamed
	if err := e.store.Save(links); err != nil {
		return renamed, err
	}
	e.printf(msgRenamedEntry, oldID, newID, e.registryName())

	e.logger.Info().Str("from", oldID).Str("to", newID).Str("repo", renamed.RepoRef).Msg("Mailbox renamed")
	return renamed, nil
}
