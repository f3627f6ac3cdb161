package links

// User-facing progress messages. Indented lines belong to the link named
// in the preceding header line.
const (
	msgNoLinks = "No mailboxes registered in %s\n"

	msgCreatingRepo   = "Creating GitHub repo: %s (%s)\n"
	msgAddingCollab   = "Adding %s as collaborator on %s\n"
	msgInitializing   = "Initializing shared repo contents...\n"
	msgAddingLink     = "Adding submodule: %s -> %s\n"
	msgRegistryUpdate = "Updated %s\n"
	msgNextSteps      = "\nDone! Next steps:\n"
	msgNextLabel      = "  - Ensure '%s' is routed to this mailbox in your account labels\n"
	msgNextSync       = "  - Run: corky mailbox sync %s\n"

	msgTokenInstructions = `
Token access mode selected. The collaborator should:
  1. Go to https://%[1]s/settings/personal-access-tokens/new
  2. Create a fine-grained token scoped to: %[2]s
  3. Grant 'Contents' read/write permission
  4. Use the token to clone: https://%[1]s/%[2]s.git

`

	msgSyncing        = "Syncing %s...\n"
	msgResetting      = "Resetting %s...\n"
	msgMissing        = "  %s: working copy not found at %s -- skipping\n"
	msgPulled         = "  Pulled changes\n"
	msgPullFailed     = "  Pull failed -- continuing: %v\n"
	msgUpdatedFile    = "  Updated %s\n"
	msgPushed         = "  Pushed changes\n"
	msgPushFailed     = "  Push failed: %v\n"
	msgNoChanges      = "  No local changes to push\n"
	msgTemplatesFresh = "  Templates already up to date\n"
	msgLinkFailed     = "  %s: %v\n"
	msgResetDone      = "\nDone. Run 'corky mailbox sync' to push changes to remote.\n"

	msgMoving         = "Moving %s -> %s\n"
	msgNoDirToMove    = "Directory for '%s' not found on disk -- skipping git mv\n"
	msgRenamingRepo   = "Renaming GitHub repo %s -> %s\n"
	msgRenamedEntry   = "Renamed '%s' -> '%s' in %s\n"
	msgRemovingLink   = "Removing submodule: %s\n"
	msgNoDirToRemove  = "Submodule %s not found on disk -- skipping git cleanup\n"
	msgCleanedModules = "  Cleaned up %s\n"
	msgRemovedEntry   = "Removed '%s' from %s\n"
	msgDeletedRepo    = "Deleted GitHub repo: %s\n"
	msgSkippedDelete  = "Skipped repo deletion\n"

	promptDeleteRepo = "Delete GitHub repo %s? This cannot be undone."
)
