package links

import (
	"sync"

	"github.com/corky-dev/corky/pkg/git"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/registry"
	"github.com/corky-dev/corky/pkg/types"
)

// StatusOptions tunes Status.
type StatusOptions struct {
	// Parallel bounds how many links are queried at once. Values below 1
	// mean one at a time.
	Parallel int
}

// Status reports how far each working copy has drifted from its remote.
// It only fetches and counts; nothing is modified. Results are in id
// order whatever the parallelism.
func (e *Engine) Status(opts StatusOptions) ([]types.LinkStatus, error) {
	done := logging.LogOperationStart(e.logger, "status")
	defer done()

	links, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	ids := registry.SortedIDs(links)
	statuses := make([]types.LinkStatus, len(ids))
	errs := make([]error, len(ids))

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}
	sem := make(chan struct{}, parallel)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, link types.Link) {
			defer wg.Done()
			defer func() { <-sem }()
			statuses[i], errs[i] = e.status(link)
		}(i, links[id])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return statuses, err
		}
	}
	return statuses, nil
}

func (e *Engine) status(link types.Link) (types.LinkStatus, error) {
	path, found := e.locate(link)
	st := types.LinkStatus{ID: link.ID, Path: e.rel(path), Found: found}
	if !found {
		st.Summary = types.Summarize(false, 0, 0)
		return st, nil
	}

	repo := git.NewRepository(e.exec, path)
	if err := repo.Fetch(); err != nil {
		if !isolated(err) {
			return st, err
		}
		e.logger.Warn().Err(err).Str("id", link.ID).Msg("Fetch failed, counts may be stale")
	}

	count := func(revRange string) (int, error) {
		n, err := repo.CountCommits(revRange)
		if err == nil {
			return n, nil
		}
		if !isolated(err) {
			return 0, err
		}
		e.logger.Debug().Err(err).Str("id", link.ID).Str("range", revRange).Msg("Cannot count commits")
		return types.UnknownCount, nil
	}

	var err error
	if st.Incoming, err = count(git.RangeIncoming); err != nil {
		return st, err
	}
	if st.Outgoing, err = count(git.RangeOutgoing); err != nil {
		return st, err
	}
	st.Summary = types.Summarize(true, st.Incoming, st.Outgoing)
	return st, nil
}
