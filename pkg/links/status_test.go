package links

import (
	"testing"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/git"
	"github.com/corky-dev/corky/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Outgoing(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	h.WithWorkingCopy("alex")
	h.Exec.Stdout("0\n", "rev-list --count", git.RangeIncoming)
	h.Exec.Stdout("2\n", "rev-list --count", git.RangeOutgoing)

	statuses, err := h.engine.Status(StatusOptions{})
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	alex := statuses[0]
	assert.Equal(t, "alex", alex.ID)
	assert.True(t, alex.Found)
	assert.Equal(t, 0, alex.Incoming)
	assert.Equal(t, 2, alex.Outgoing)
	assert.Equal(t, "2 outgoing", alex.Summary)

	assert.Equal(t, []string{
		h.git("alex") + " fetch",
		h.git("alex") + " rev-list --count HEAD..@{u}",
		h.git("alex") + " rev-list --count @{u}..HEAD",
	}, h.Exec.Calls())
}

func TestStatus_UpToDateAndNotFound(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	h.WithWorkingCopy("alex")
	h.Exec.Stdout("0\n", "rev-list --count")

	statuses, err := h.engine.Status(StatusOptions{})
	require.NoError(t, err)

	assert.Equal(t, "up to date", statuses[0].Summary)
	assert.True(t, statuses[0].UpToDate())
	assert.Equal(t, "not found", statuses[1].Summary)
	assert.False(t, statuses[1].Found)
	assert.Equal(t, "mailboxes/blair", statuses[1].Path)
	assert.False(t, h.Exec.Ran("mailboxes/blair"))
}

func TestStatus_BothDirections(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry("[alex]\nlabels = [\"a\"]\n")
	h.WithWorkingCopy("alex")
	h.Exec.Stdout("3\n", "rev-list --count", git.RangeIncoming)
	h.Exec.Stdout("1\n", "rev-list --count", git.RangeOutgoing)

	statuses, err := h.engine.Status(StatusOptions{})
	require.NoError(t, err)
	assert.Equal(t, "3 incoming, 1 outgoing", statuses[0].Summary)
}

func TestStatus_FailedCountsShowUnknown(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry("[alex]\nlabels = [\"a\"]\n")
	h.WithWorkingCopy("alex")
	h.Exec.Fail(128, "fatal: could not read from remote", "fetch")
	h.Exec.Fail(128, "fatal: no upstream configured", "rev-list --count")

	statuses, err := h.engine.Status(StatusOptions{})
	require.NoError(t, err)
	assert.Equal(t, types.UnknownCount, statuses[0].Incoming)
	assert.Equal(t, "? incoming, ? outgoing", statuses[0].Summary)
}

func TestStatus_ParallelKeepsOrderAndIsReadOnly(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry(threeLinks)
	for _, id := range []string{"alex", "blair", "casey"} {
		h.WithWorkingCopy(id)
	}
	h.Exec.Stdout("0\n", "rev-list --count")
	h.Exec.Stdout("5\n", h.git("casey"), "rev-list --count", git.RangeIncoming)
	before := h.Registry()

	statuses, err := h.engine.Status(StatusOptions{Parallel: 4})
	require.NoError(t, err)

	require.Len(t, statuses, 3)
	assert.Equal(t, []string{"alex", "blair", "casey"}, []string{statuses[0].ID, statuses[1].ID, statuses[2].ID})
	assert.Equal(t, "5 incoming", statuses[2].Summary)

	assert.Equal(t, before, h.Registry())
	for _, verb := range []string{"pull", "add", "commit", "push"} {
		assert.False(t, h.Exec.Ran(verb), verb)
	}
}

func TestStatus_EnvironmentFailure(t *testing.T) {
	h := newHarness(t)
	h.WithRegistry("[alex]\nlabels = [\"a\"]\n")
	h.WithWorkingCopy("alex")
	h.Exec.Error(errors.New(errors.ErrEnvironment, "cannot run git"), "fetch")

	_, err := h.engine.Status(StatusOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvironment))
}

func TestStatus_EmptyRegistry(t *testing.T) {
	h := newHarness(t)

	statuses, err := h.engine.Status(StatusOptions{})
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
