package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogCommand(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand(logger, "git", []string{"-C", "mailboxes/alex", "pull", "--rebase"})

	output := buf.String()
	assert.Contains(t, output, `"command":"git"`)
	assert.Contains(t, output, "mailboxes/alex")
	assert.Contains(t, output, "--rebase")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "sync")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	output := buf.String()
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, `"operation":"sync"`)
	assert.Contains(t, output, "duration")
}
