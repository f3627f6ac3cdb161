package errors

import (
	"strings"
)

// MailboxNotFound reports an id missing from the registry file.
func MailboxNotFound(id, registry string) *CorkyError {
	return Newf(ErrNotFound, "mailbox '%s' not found in %s", id, registry).
		WithDetail(DetailID, id)
}

// MailboxExists reports an id that is already registered.
func MailboxExists(id, registry string) *CorkyError {
	return Newf(ErrAlreadyExists, "mailbox '%s' already exists in %s", id, registry).
		WithDetail(DetailID, id)
}

// PathExists reports a working copy destination that is already taken.
// display is the path as shown to the user, usually relative to the root.
func PathExists(path, display string) *CorkyError {
	return Newf(ErrAlreadyExists, "directory %s already exists", display).
		WithDetail(DetailPath, path)
}

// Command describes one finished git or gh invocation.
type Command struct {
	// Step names what the command was for, e.g. "create repository".
	Step     string
	Argv     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

// External reports a command that exited non-zero. The message quotes
// stderr, or stdout when stderr is empty, since git prints some fatal
// errors there.
func External(c Command) *CorkyError {
	output := strings.TrimSpace(c.Stderr)
	if output == "" {
		output = strings.TrimSpace(c.Stdout)
	}
	return Newf(ErrExternalCommand, "%s failed (exit %d): %s", c.Step, c.ExitCode, output).
		WithDetail(DetailStep, c.Step).
		WithDetail(DetailArgv, c.Argv).
		WithDetail(DetailExitCode, c.ExitCode).
		WithDetail(DetailStderr, c.Stderr)
}

// Unavailable reports a tool that could not be started at all.
func Unavailable(argv []string, cause error) *CorkyError {
	tool := ""
	if len(argv) > 0 {
		tool = argv[0]
	}
	return build(ErrEnvironment, cause, "cannot run "+tool).
		WithDetail(DetailArgv, argv)
}

// StepOf returns the step recorded by External, or "".
func StepOf(err error) string {
	step, _ := DetailsOf(err)[DetailStep].(string)
	return step
}
