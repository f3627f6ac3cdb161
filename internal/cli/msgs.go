package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Shared mailboxes over git"
	MsgVersionShort = "Print version information"
	MsgMailboxShort = "Manage shared mailboxes"
	MsgAddShort     = "Create a shared mailbox for a collaborator"
	MsgSyncShort    = "Pull, refresh and push shared mailboxes"
	MsgStatusShort  = "Show incoming and outgoing changes per mailbox"
	MsgRenameShort  = "Rename a mailbox"
	MsgRemoveShort  = "Remove a mailbox from the project"
	MsgResetShort   = "Rewrite mailbox template files to the current version"
	MsgListShort    = "List registered mailboxes"

	MsgConfigShort         = "Inspect corky configuration"
	MsgConfigDefaultsShort = "Print the built-in default configuration"
	MsgConfigDefaultsLong  = "Print the built-in defaults as TOML. Copy the keys you want to change into\nthe user config file (see 'corky config path') or the project's .corky.toml."
	MsgConfigPathShort     = "Print the user config file location"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Project root (defaults to $CORKY_ROOT or the enclosing git repository)"
	MsgFlagLabel       = "Label routed to this mailbox (repeatable)"
	MsgFlagDisplayName = "Collaborator's display name"
	MsgFlagAccount     = "Bind the mailbox to one of your mail accounts"
	MsgFlagOrg         = "GitHub owner for the repository (defaults to your GitHub user)"
	MsgFlagPAT         = "Print fine-grained token instructions instead of inviting a collaborator"
	MsgFlagPublic      = "Create a public repository"
	MsgFlagOutput      = "Output format: text, json or yaml"
	MsgFlagParallel    = "Number of mailboxes to query at once"
	MsgFlagRenameRepo  = "Also rename the GitHub repository"
	MsgFlagDeleteRepo  = "Also delete the GitHub repository"
	MsgFlagYes         = "Do not ask for confirmation"
	MsgFlagNoSync      = "Rewrite files without pulling, committing or pushing"

	// Output
	MsgVersionFormat = "corky version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgDateFormat    = "Built: %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/rename-long.txt
	msgRenameLongRaw string
	MsgRenameLong    = strings.TrimSpace(msgRenameLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/reset-long.txt
	msgResetLongRaw string
	MsgResetLong    = strings.TrimSpace(msgResetLongRaw)
)
