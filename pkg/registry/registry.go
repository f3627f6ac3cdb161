package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// OwnerFunc returns the owner's GitHub identity, or "" when it is unknown.
type OwnerFunc func() string

// entry is the on-disk shape of one [id] table.
type entry struct {
	Labels  []string `toml:"labels"`
	Name    string   `toml:"name,omitempty"`
	Repo    string   `toml:"repo,omitempty"`
	Account string   `toml:"account,omitempty"`
}

// Store reads and writes the registry file.
type Store struct {
	fs    types.FS
	path  string
	owner OwnerFunc
}

// NewStore returns a Store for the registry at path. owner may be nil.
func NewStore(fs types.FS, path string, owner OwnerFunc) *Store {
	if owner == nil {
		owner = func() string { return "" }
	}
	return &Store{fs: fs, path: path, owner: owner}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry. A missing or blank file is an empty registry.
func (s *Store) Load() (map[string]types.Link, error) {
	logger := logging.GetLogger("registry")

	links := make(map[string]types.Link)

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", s.path).Msg("Registry file not found, starting empty")
			return links, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", s.path).
			WithDetail("path", s.path)
	}
	if strings.TrimSpace(string(data)) == "" {
		return links, nil
	}

	var entries map[string]entry
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "malformed registry %s", s.path).
			WithDetail("path", s.path)
	}

	owner := s.owner()
	for id, e := range entries {
		link := types.Link{
			ID:          id,
			Labels:      e.Labels,
			DisplayName: e.Name,
			Account:     e.Account,
		}
		if len(link.Labels) == 0 {
			link.Labels = nil
		}
		if e.Repo != "" {
			link.SetRepoRef(e.Repo)
		} else {
			link.DeriveRepoRef(owner)
		}
		links[id] = link
	}

	logger.Debug().Str("path", s.path).Int("count", len(links)).Msg("Loaded registry")
	return links, nil
}

// Save overwrites the registry with links. Tables are written in id order
// and derived remote references are left out.
func (s *Store) Save(links map[string]types.Link) error {
	entries := make(map[string]entry, len(links))
	for id, link := range links {
		e := entry{
			Labels:  link.Labels,
			Name:    link.DisplayName,
			Account: link.Account,
		}
		if e.Labels == nil {
			e.Labels = []string{}
		}
		if !link.RepoDerived() {
			e.Repo = link.RepoRef
		}
		entries[id] = e
	}

	data, err := toml.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode registry")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", filepath.Dir(s.path))
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", s.path).
			WithDetail("path", s.path)
	}

	logger := logging.GetLogger("registry")
	logger.Debug().Str("path", s.path).Int("count", len(links)).Msg("Saved registry")
	return nil
}

// SortedIDs returns the ids of links in canonical (lexicographic) order.
func SortedIDs(links map[string]types.Link) []string {
	ids := make([]string, 0, len(links))
	for id := range links {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
