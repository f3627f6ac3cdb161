// Package paths provides centralized path handling for corky.
//
// A corky project is a git repository (the owner's tree). Mailboxes are
// git submodules nested under a configurable directory of that tree, and
// the registry of mailboxes lives at the project root.
//
// # Project root
//
// The root is resolved, in order, from:
//
//   - an explicit path (the --root flag)
//   - the CORKY_ROOT environment variable
//   - the top level of the enclosing git repository
//
// There is no working-directory fallback: operating outside a repository
// is an environment failure because every link is a submodule of it.
//
// # Layout
//
//	<root>/mailboxes.toml          registry
//	<root>/.corky.toml             project configuration
//	<root>/voice.md                shared style guide copied into links
//	<root>/mailboxes/<id>          working copy of a link (id lower-cased)
//	<root>/.git/modules/<rel>      git's bookkeeping for a submodule
//
// User-level configuration lives under the XDG config home
// ($XDG_CONFIG_HOME/corky/config.toml), overridable with CORKY_CONFIG_DIR.
package paths
