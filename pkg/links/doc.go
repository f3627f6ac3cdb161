// Package links implements the mailbox lifecycle: provisioning a shared
// repository and linking it into the project (Add), reconciling working
// copies with their remotes (SyncOne, SyncAll, Reset), reporting drift
// (Status) and renaming or removing links.
//
// Every operation reloads the registry, runs its steps strictly in order
// and stops at the first failing step. There is no rollback: effects of
// completed steps stay in place and the returned error names the step
// that failed.
package links
