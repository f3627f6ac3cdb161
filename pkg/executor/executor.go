package executor

import (
	"bytes"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/rs/zerolog"
)

// Result is the captured outcome of one external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether the command exited non-zero.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Err converts a failed result into an EXTERNAL_COMMAND error naming
// step. It returns nil for a successful result.
func (r Result) Err(step string, argv []string) error {
	if !r.Failed() {
		return nil
	}
	return errors.External(errors.Command{
		Step:     step,
		Argv:     argv,
		ExitCode: r.ExitCode,
		Stdout:   r.Stdout,
		Stderr:   r.Stderr,
	})
}

// Executor runs external commands.
//
// Run never returns an error for a non-zero exit. The error return is
// reserved for commands that could not be started at all, reported as
// ENVIRONMENT errors.
type Executor interface {
	Run(argv ...string) (Result, error)
}

// Options contains configuration for the OS executor
type Options struct {
	Logger zerolog.Logger
	// Env is appended to the inherited environment of every command.
	Env []string
}

// OS runs commands as real subprocesses.
type OS struct {
	logger zerolog.Logger
	env    []string
}

// NewOS creates a new OS executor instance
func NewOS(opts Options) *OS {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}
	return &OS{logger: logger, env: opts.Env}
}

// Run executes argv and captures its output.
func (o *OS) Run(argv ...string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, errors.New(errors.ErrInvalidInput, "empty command")
	}
	logging.LogCommand(o.logger, argv[0], argv[1:])

	//nolint:gosec // argv is assembled by the engine, never from a shell string
	cmd := exec.Command(argv[0], argv[1:]...)
	if len(o.env) > 0 {
		cmd.Env = append(cmd.Environ(), o.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			o.logger.Debug().
				Str("command", argv[0]).
				Int("exit_code", result.ExitCode).
				Str("stderr", strings.TrimSpace(result.Stderr)).
				Msg("Command exited non-zero")
			return result, nil
		}
		return result, errors.Unavailable(argv, err)
	}

	return result, nil
}

// Checked runs argv and turns a non-zero exit into an EXTERNAL_COMMAND
// error naming step.
func Checked(e Executor, step string, argv ...string) (Result, error) {
	result, err := e.Run(argv...)
	if err != nil {
		return result, err
	}
	if err := result.Err(step, argv); err != nil {
		return result, err
	}
	return result, nil
}
