package types

import (
	"fmt"
	"strings"
)

// UnknownCount is shown in place of a commit count git could not compute.
const UnknownCount = -1

// LinkStatus is the drift of one link against its remote tracking branch.
type LinkStatus struct {
	ID       string `json:"id" yaml:"id"`
	Path     string `json:"path" yaml:"path"`
	Found    bool   `json:"found" yaml:"found"`
	Incoming int    `json:"incoming" yaml:"incoming"`
	Outgoing int    `json:"outgoing" yaml:"outgoing"`
	Summary  string `json:"summary" yaml:"summary"`
}

// UpToDate reports whether the link has no drift in either direction.
func (s LinkStatus) UpToDate() bool {
	return s.Found && s.Incoming == 0 && s.Outgoing == 0
}

// Summarize renders the counts the way status reports them: "up to date",
// "N incoming", "N outgoing" or both joined by a comma.
func Summarize(found bool, incoming, outgoing int) string {
	if !found {
		return "not found"
	}
	if incoming == 0 && outgoing == 0 {
		return "up to date"
	}
	var parts []string
	if incoming != 0 {
		parts = append(parts, countLabel(incoming)+" incoming")
	}
	if outgoing != 0 {
		parts = append(parts, countLabel(outgoing)+" outgoing")
	}
	return strings.Join(parts, ", ")
}

func countLabel(n int) string {
	if n == UnknownCount {
		return "?"
	}
	return fmt.Sprintf("%d", n)
}

// SyncOutcome classifies what reconciling one link did.
type SyncOutcome string

const (
	SyncPushed   SyncOutcome = "pushed"
	SyncUpToDate SyncOutcome = "up-to-date"
	SyncSkipped  SyncOutcome = "skipped"
	SyncFailed   SyncOutcome = "failed"
	// SyncPushFailed means changes were committed locally but the push was rejected.
	SyncPushFailed SyncOutcome = "push-failed"
	// SyncRegenerated is used by reset without sync: files rewritten, nothing committed.
	SyncRegenerated SyncOutcome = "regenerated"
)

// SyncReport is the result of reconciling one link.
type SyncReport struct {
	ID      string
	Outcome SyncOutcome
	Pulled  bool
	Err     error
}

// LinkEntry is a registry entry paired with working copy presence.
type LinkEntry struct {
	Link    Link
	Path    string
	Present bool
}
