package links

import (
	"testing"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_DeclinedConfirmation(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	h.WithWorkingCopy("alex")
	h.answer = false

	result, err := h.engine.Remove("alex", true, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		h.rootGit() + " submodule deinit -f mailboxes/alex",
		h.rootGit() + " rm -f mailboxes/alex",
	}, h.Exec.Calls())
	assert.NotContains(t, h.load(t), "alex")
	assert.True(t, result.Unlinked)
	assert.True(t, result.DeleteDenied)
	assert.False(t, result.RepoDeleted)
	assert.Contains(t, h.out.String(), "Skipped repo deletion")
	require.Len(t, h.prompts, 1)
	assert.Contains(t, h.prompts[0], "own/to-alex")
}

func TestRemove_ConfirmedDeletesRemote(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	h.WithWorkingCopy("alex")

	result, err := h.engine.Remove("alex", true, func(string) bool { return true })
	require.NoError(t, err)
	assert.True(t, result.RepoDeleted)
	assert.True(t, h.Exec.Ran("gh repo delete own/to-alex --yes"))
	assert.Less(t, h.Exec.IndexOf("rm -f"), h.Exec.IndexOf("gh repo delete"))
	assert.Empty(t, h.prompts, "explicit confirm overrides the engine's")
}

func TestRemove_KeepRemote(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	h.WithWorkingCopy("alex")

	_, err := h.engine.Remove("alex", false, nil)
	require.NoError(t, err)
	assert.Empty(t, h.prompts)
	assert.False(t, h.Exec.Ran("gh"))
}

func TestRemove_MissingWorkingCopy(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)

	result, err := h.engine.Remove("blair", false, nil)
	require.NoError(t, err)
	assert.False(t, result.Unlinked)
	assert.Empty(t, h.Exec.Calls())
	assert.NotContains(t, h.load(t), "blair")
	assert.Contains(t, h.load(t), "alex")
	assert.Contains(t, h.out.String(), "not found on disk -- skipping git cleanup")
}

func TestRemove_PurgesModulesDirectory(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	h.WithFileTree(testutil.FileTree{".git/modules/mailboxes/alex/HEAD": "ref: refs/heads/main"})

	_, err := h.engine.Remove("alex", false, nil)
	require.NoError(t, err)
	assert.False(t, h.Exists(".git/modules/mailboxes/alex"))
	assert.Contains(t, h.out.String(), "Cleaned up .git/modules/mailboxes/alex")
}

func TestRemove_UnknownID(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)

	_, err := h.engine.Remove("nobody", true, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Empty(t, h.Exec.Calls())
}

func TestRemove_DeinitFailureKeepsEntry(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	h.WithWorkingCopy("alex")
	h.Exec.Fail(1, "error: pathspec did not match", "submodule deinit")
	before := h.Registry()

	_, err := h.engine.Remove("alex", true, nil)
	require.Error(t, err)
	assert.Equal(t, "submodule deinit", errors.StepOf(err))
	assert.Equal(t, before, h.Registry())
	assert.Empty(t, h.prompts)
}
