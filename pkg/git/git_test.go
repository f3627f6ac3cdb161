package git

import (
	"testing"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_InjectsDir(t *testing.T) {
	exec := testutil.NewScriptedExecutor()
	repo := NewRepository(exec, "/work/mailboxes/alex")

	_, err := repo.PullRebase()
	require.NoError(t, err)
	require.NoError(t, repo.AddAll())
	require.NoError(t, repo.Commit("Sync shared conversations"))
	require.NoError(t, repo.Push())

	assert.Equal(t, []string{
		"git -C /work/mailboxes/alex pull --rebase",
		"git -C /work/mailboxes/alex add -A",
		"git -C /work/mailboxes/alex commit -m Sync shared conversations",
		"git -C /work/mailboxes/alex push",
	}, exec.Calls())
}

func TestRepository_PullRebaseReportsChanges(t *testing.T) {
	exec := testutil.NewScriptedExecutor()
	repo := NewRepository(exec, "/r")

	exec.Stdout("Already up to date.\n", "pull --rebase")
	pulled, err := repo.PullRebase()
	require.NoError(t, err)
	assert.False(t, pulled)

	exec.Stdout("Fast-forward\n conversations/a.md | 2 +\n", "pull --rebase")
	pulled, err = repo.PullRebase()
	require.NoError(t, err)
	assert.True(t, pulled)
}

func TestRepository_HasChanges(t *testing.T) {
	exec := testutil.NewScriptedExecutor()
	repo := NewRepository(exec, "/r")

	changed, err := repo.HasChanges()
	require.NoError(t, err)
	assert.False(t, changed)

	exec.Stdout(" M conversations/a.md\n", "status --porcelain")
	changed, err = repo.HasChanges()
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestRepository_CountCommits(t *testing.T) {
	exec := testutil.NewScriptedExecutor()
	exec.Stdout("3\n", "rev-list --count", RangeIncoming)
	exec.Stdout("garbage", "rev-list --count", RangeOutgoing)
	repo := NewRepository(exec, "/r")

	n, err := repo.CountCommits(RangeIncoming)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = repo.CountCommits(RangeOutgoing)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalCommand))
}

func TestRepository_FailureNamesStep(t *testing.T) {
	exec := testutil.NewScriptedExecutor()
	exec.Fail(1, "rejected", "push")
	repo := NewRepository(exec, "/r")

	err := repo.Push()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalCommand))
	assert.Equal(t, "push", errors.StepOf(err))
	assert.Equal(t, "rejected", errors.DetailsOf(err)["stderr"])
}

func TestRepository_SubmoduleCommands(t *testing.T) {
	exec := testutil.NewScriptedExecutor()
	repo := NewRepository(exec, "/root")

	require.NoError(t, repo.SubmoduleAdd(SSHURL("github.com", "own/to-alex"), "mailboxes/alex"))
	require.NoError(t, repo.Move("mailboxes/alex", "mailboxes/sam"))
	require.NoError(t, repo.SubmoduleDeinit("mailboxes/sam"))
	require.NoError(t, repo.Remove("mailboxes/sam"))

	assert.Equal(t, []string{
		"git -C /root submodule add git@github.com:own/to-alex.git mailboxes/alex",
		"git -C /root mv mailboxes/alex mailboxes/sam",
		"git -C /root submodule deinit -f mailboxes/sam",
		"git -C /root rm -f mailboxes/sam",
	}, exec.Calls())
}
