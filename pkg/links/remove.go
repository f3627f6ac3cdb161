package links

import (
	"fmt"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/types"
)

// RemoveResult describes what Remove did.
type RemoveResult struct {
	Link         types.Link
	Unlinked     bool
	RepoDeleted  bool
	DeleteDenied bool
}

// Remove unlinks a mailbox's working copy, drops it from the registry and,
// when deleteRemote is set and confirm agrees, deletes the remote
// repository. Declining is not an error. A nil confirm uses the engine's.
func (e *Engine) Remove(id string, deleteRemote bool, confirm ConfirmFunc) (RemoveResult, error) {
	done := logging.LogOperationStart(e.logger, "remove")
	defer done()

	links, link, err := e.lookup(id)
	if err != nil {
		return RemoveResult{}, err
	}
	result := RemoveResult{Link: link}

	path, found := e.locate(link)
	rel := e.rel(path)
	if found {
		e.printf(msgRemovingLink, rel)
		if err := e.root.SubmoduleDeinit(rel); err != nil {
			return result, err
		}
		if err := e.root.Remove(rel); err != nil {
			return result, err
		}
		result.Unlinked = true
	} else {
		e.printf(msgNoDirToRemove, rel)
	}

	modules := e.paths.ModulesPath(rel)
	if types.Exists(e.fs, modules) {
		if err := e.fs.RemoveAll(modules); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot remove %s", modules)
		}
		e.printf(msgCleanedModules, e.rel(modules))
	}

	delete(links, id)
	if err := e.store.Save(links); err != nil {
		return result, err
	}
	e.printf(msgRemovedEntry, id, e.registryName())

	if deleteRemote && link.RepoRef != "" {
		if confirm == nil {
			confirm = e.confirm
		}
		if !confirm(fmt.Sprintf(promptDeleteRepo, link.RepoRef)) {
			result.DeleteDenied = true
			e.printf(msgSkippedDelete)
			return result, nil
		}
		if err := e.gh.DeleteRepo(link.RepoRef); err != nil {
			return result, err
		}
		result.RepoDeleted = true
		e.printf(msgDeletedRepo, link.RepoRef)
	}

	e.logger.Info().Str("id", id).Bool("repo_deleted", result.RepoDeleted).Msg("Mailbox removed")
	return result, nil
}
