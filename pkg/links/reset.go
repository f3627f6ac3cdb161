package links

import (
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/registry"
	"github.com/corky-dev/corky/pkg/types"
)

// Reset rewrites the managed template files of one mailbox, or all of them
// when id is empty. With doSync the working copy is pulled first and the
// regenerated files are committed, pushed and recorded in the parent.
func (e *Engine) Reset(id string, doSync bool) ([]types.SyncReport, error) {
	done := logging.LogOperationStart(e.logger, "reset")
	defer done()

	var ids []string
	links, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	if id != "" {
		if _, ok := links[id]; !ok {
			return nil, e.notFound(id)
		}
		ids = []string{id}
	} else {
		if len(links) == 0 {
			e.printf(msgNoLinks, e.registryName())
			return nil, nil
		}
		ids = registry.SortedIDs(links)
	}

	plan := reconcilePlan{
		pull:       doSync,
		regenerate: true,
		publish:    doSync,
		message:    e.cfg.Sync.ResetMessage,
		unchanged:  msgTemplatesFresh,
	}

	reports := make([]types.SyncReport, 0, len(ids))
	for _, linkID := range ids {
		link := links[linkID]
		path, found := e.locate(link)
		if !found {
			e.printf(msgMissing, linkID, e.rel(path))
			reports = append(reports, types.SyncReport{ID: linkID, Outcome: types.SyncSkipped})
			continue
		}

		e.printf(msgResetting, linkID)
		report, err := e.reconcile(link, path, plan)
		reports = append(reports, report)
		if err == nil {
			continue
		}
		if id != "" || !isolated(err) {
			return reports, err
		}
		e.printf(msgLinkFailed, linkID, err)
		e.logger.Warn().Err(err).Str("id", linkID).Msg("Reset failed, continuing with next mailbox")
	}

	if !doSync {
		e.printf(msgResetDone)
	}
	return reports, nil
}
