package links

import (
	"github.com/corky-dev/corky/pkg/registry"
	"github.com/corky-dev/corky/pkg/types"
)

// List returns the registered mailboxes in id order, each with the path of
// its working copy and whether that copy exists.
func (e *Engine) List() ([]types.LinkEntry, error) {
	links, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	entries := make([]types.LinkEntry, 0, len(links))
	for _, id := range registry.SortedIDs(links) {
		path, found := e.locate(links[id])
		entries = append(entries, types.LinkEntry{Link: links[id], Path: e.rel(path), Present: found})
	}
	return entries, nil
}
