package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedExecutor(t *testing.T) {
	s := NewScriptedExecutor().
		Stdout("0\n", "rev-list", "--count").
		Stdout("2\n", "rev-list", "--count", "@{u}..HEAD").
		Fail(1, "rejected", "push")

	res, err := s.Run("git", "-C", "/p", "rev-list", "--count", "HEAD..@{u}")
	require.NoError(t, err)
	assert.Equal(t, "0\n", res.Stdout)

	res, err = s.Run("git", "-C", "/p", "rev-list", "--count", "@{u}..HEAD")
	require.NoError(t, err)
	assert.Equal(t, "2\n", res.Stdout, "later rule overrides the broader one")

	res, err = s.Run("git", "-C", "/p", "push")
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "rejected", res.Stderr)

	res, err = s.Run("git", "status")
	require.NoError(t, err)
	assert.False(t, res.Failed(), "unmatched calls succeed")

	assert.Equal(t, 2, s.Count("rev-list"))
	assert.True(t, s.Ran("git", "status"))
	assert.Equal(t, 2, s.IndexOf("push"))
	assert.Equal(t, -1, s.IndexOf("fetch"))
}

func TestScriptedExecutorErrorAndEffect(t *testing.T) {
	boom := errors.New("exec: \"gh\": executable file not found in $PATH")
	var seen []string
	s := NewScriptedExecutor().
		Error(boom, "gh").
		Effect(func(argv []string) { seen = argv }, "gh", "repo", "clone")

	_, err := s.Run("gh", "repo", "clone", "own/to-alex", "/tmp/x")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"gh", "repo", "clone", "own/to-alex", "/tmp/x"}, seen)

	s.Reset()
	assert.Empty(t, s.Calls())
}
