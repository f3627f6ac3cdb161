package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMailboxNotFound(t *testing.T) {
	err := errors.MailboxNotFound("alex", "mailboxes.toml")

	assert.Equal(t, "mailbox 'alex' not found in mailboxes.toml", err.Error())
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "alex", errors.DetailsOf(err)[errors.DetailID])
}

func TestAlreadyExists(t *testing.T) {
	dup := errors.MailboxExists("sam", "mailboxes.toml")
	assert.Equal(t, "mailbox 'sam' already exists in mailboxes.toml", dup.Error())
	assert.True(t, errors.IsErrorCode(dup, errors.ErrAlreadyExists))

	taken := errors.PathExists("/p/mailboxes/sam", "mailboxes/sam")
	assert.Equal(t, "directory mailboxes/sam already exists", taken.Error())
	assert.True(t, errors.IsErrorCode(taken, errors.ErrAlreadyExists))
	assert.Equal(t, "/p/mailboxes/sam", errors.DetailsOf(taken)[errors.DetailPath])
}

func TestExternal(t *testing.T) {
	argv := []string{"git", "-C", "mailboxes/alex", "push"}
	err := errors.External(errors.Command{
		Step:     "push",
		Argv:     argv,
		ExitCode: 1,
		Stderr:   "  ! [rejected] main -> main (fetch first)\n",
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalCommand))
	assert.Equal(t, "push failed (exit 1): ! [rejected] main -> main (fetch first)", err.Error())
	assert.Equal(t, "push", errors.StepOf(err))

	details := errors.DetailsOf(err)
	assert.Equal(t, argv, details[errors.DetailArgv])
	assert.Equal(t, 1, details[errors.DetailExitCode])
}

func TestExternal_FallsBackToStdout(t *testing.T) {
	err := errors.External(errors.Command{Step: "fetch", ExitCode: 128, Stdout: "fatal: no upstream\n"})
	assert.Equal(t, "fetch failed (exit 128): fatal: no upstream", err.Error())
}

func TestUnavailable(t *testing.T) {
	cause := stderrors.New(`exec: "gh": executable file not found in $PATH`)
	err := errors.Unavailable([]string{"gh", "repo", "create"}, cause)

	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvironment))
	assert.Contains(t, err.Error(), "cannot run gh")
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "", errors.StepOf(err))
}
