package links

import (
	"path/filepath"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/git"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/registry"
	"github.com/corky-dev/corky/pkg/templates"
	"github.com/corky-dev/corky/pkg/types"
)

// reconcilePlan selects the steps of one reconcile pass.
type reconcilePlan struct {
	pull       bool
	voice      bool
	regenerate bool
	publish    bool
	message    string
	// unchanged is printed when there is nothing to commit.
	unchanged string
}

// SyncOne reconciles the working copy of id with its remote: pull, refresh
// the voice guide, commit and push local changes, and record the new
// commit in the parent project.
func (e *Engine) SyncOne(id string) (types.SyncReport, error) {
	done := logging.LogOperationStart(e.logger, "sync")
	defer done()

	_, link, err := e.lookup(id)
	if err != nil {
		return types.SyncReport{ID: id, Outcome: types.SyncFailed, Err: err}, err
	}
	return e.sync(link)
}

// SyncAll reconciles every registered link in id order. A failing link is
// reported and skipped; only environment failures stop the batch.
func (e *Engine) SyncAll() ([]types.SyncReport, error) {
	done := logging.LogOperationStart(e.logger, "sync-all")
	defer done()

	links, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		e.printf(msgNoLinks, e.registryName())
		return nil, nil
	}

	reports := make([]types.SyncReport, 0, len(links))
	for _, id := range registry.SortedIDs(links) {
		report, err := e.sync(links[id])
		reports = append(reports, report)
		if err == nil {
			continue
		}
		if !isolated(err) {
			return reports, err
		}
		e.printf(msgLinkFailed, id, err)
		e.logger.Warn().Err(err).Str("id", id).Msg("Sync failed, continuing with next mailbox")
	}
	return reports, nil
}

func (e *Engine) sync(link types.Link) (types.SyncReport, error) {
	path, found := e.locate(link)
	if !found {
		e.printf(msgMissing, link.ID, e.rel(path))
		return types.SyncReport{ID: link.ID, Outcome: types.SyncSkipped}, nil
	}

	e.printf(msgSyncing, link.ID)
	return e.reconcile(link, path, reconcilePlan{
		pull:      true,
		voice:     true,
		publish:   true,
		message:   e.cfg.Sync.CommitMessage,
		unchanged: msgNoChanges,
	})
}

// reconcile runs the selected steps against the working copy at path.
// Pull and push failures are reported in the result; any other failing
// step is returned as an error.
func (e *Engine) reconcile(link types.Link, path string, plan reconcilePlan) (types.SyncReport, error) {
	report := types.SyncReport{ID: link.ID}
	repo := git.NewRepository(e.exec, path)

	fail := func(err error) (types.SyncReport, error) {
		report.Outcome = types.SyncFailed
		report.Err = err
		return report, err
	}

	if plan.pull {
		pulled, err := repo.PullRebase()
		switch {
		case err != nil && !isolated(err):
			return fail(err)
		case err != nil:
			e.printf(msgPullFailed, err)
			e.logger.Warn().Err(err).Str("id", link.ID).Msg("Pull failed")
		case pulled:
			report.Pulled = true
			e.printf(msgPulled)
		}
	}

	if plan.voice {
		if err := e.refreshVoice(path); err != nil {
			return fail(err)
		}
	}

	if plan.regenerate {
		written, err := e.regen.Regenerate(path, link.DisplayOrID(), e.ownerName())
		if err != nil {
			return fail(err)
		}
		for _, name := range written {
			if name == templates.ClaudeFile {
				e.printf(msgUpdatedFile, name+" -> "+templates.AgentsFile)
				continue
			}
			e.printf(msgUpdatedFile, name)
		}
	}

	if !plan.publish {
		report.Outcome = types.SyncRegenerated
		return report, nil
	}

	if err := repo.AddAll(); err != nil {
		return fail(err)
	}
	changed, err := repo.HasChanges()
	if err != nil {
		return fail(err)
	}

	if !changed {
		report.Outcome = types.SyncUpToDate
		e.printf("%s", plan.unchanged)
	} else {
		if err := repo.Commit(plan.message); err != nil {
			return fail(err)
		}
		if err := repo.Push(); err != nil {
			if !isolated(err) {
				return fail(err)
			}
			report.Outcome = types.SyncPushFailed
			report.Err = err
			e.printf(msgPushFailed, err)
			e.logger.Warn().Err(err).Str("id", link.ID).Msg("Push failed")
		} else {
			report.Outcome = types.SyncPushed
			e.printf(msgPushed)
		}
	}

	if err := e.root.Add(e.rel(path)); err != nil {
		return fail(err)
	}
	return report, nil
}

// refreshVoice copies the project's voice guide into dir when the link
// copy is missing or strictly older.
func (e *Engine) refreshVoice(dir string) error {
	src := e.paths.VoicePath()
	srcInfo, err := e.fs.Stat(src)
	if err != nil {
		return nil
	}

	dst := filepath.Join(dir, templates.VoiceFile)
	if dstInfo, err := e.fs.Stat(dst); err == nil && !srcInfo.ModTime().After(dstInfo.ModTime()) {
		return nil
	}

	data, err := e.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}
	if err := e.fs.WriteFile(dst, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}
	e.printf(msgUpdatedFile, templates.VoiceFile)
	return nil
}
