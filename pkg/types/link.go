package types

import (
	"fmt"
	"strings"
)

// RemotePrefix is prepended to a link id to name its remote repository.
const RemotePrefix = "to-"

// Link is a registered mailbox: a remote repository shared with one
// counterpart and checked out as a submodule of the owner's tree.
type Link struct {
	ID          string
	Labels      []string
	RepoRef     string
	DisplayName string
	Account     string

	// repoDerived is set when RepoRef was computed at load time rather
	// than read from the registry. Derived values are never written back.
	repoDerived bool
}

// DisplayOrID returns the display name, falling back to the id.
func (l Link) DisplayOrID() string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	return l.ID
}

// DirName is the case-normalized name used for the working copy directory.
func (l Link) DirName() string {
	return strings.ToLower(l.ID)
}

// RepoDerived reports whether RepoRef came from derivation.
func (l Link) RepoDerived() bool {
	return l.repoDerived
}

// SetRepoRef pins ref as the explicit remote reference.
func (l *Link) SetRepoRef(ref string) {
	l.RepoRef = ref
	l.repoDerived = false
}

// DeriveRepoRef fills RepoRef from owner when it is unset. An explicit value
// always wins, and an empty owner leaves the link untouched.
func (l *Link) DeriveRepoRef(owner string) {
	if l.RepoRef != "" || owner == "" {
		return
	}
	l.RepoRef = RepoRefFor(owner, l.ID)
	l.repoDerived = true
}

// RemoteName returns the remote repository name for id: to-<id>, lower-cased.
func RemoteName(id string) string {
	return RemotePrefix + strings.ToLower(id)
}

// RepoRefFor returns the full owner/name reference for id under owner.
func RepoRefFor(owner, id string) string {
	return fmt.Sprintf("%s/%s", owner, RemoteName(id))
}

// SplitRepoRef splits owner/name. A reference without an owner part
// returns an empty owner.
func SplitRepoRef(ref string) (owner, name string) {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}
