// Package registry persists the mailbox registry, mailboxes.toml.
//
// The file is the single source of truth for registered links. Every
// operation loads it fresh through a Store and writes the full set back;
// nothing is cached between calls. Remote references omitted from the file
// are derived from the owner's GitHub identity at load time and are never
// written back.
package registry
