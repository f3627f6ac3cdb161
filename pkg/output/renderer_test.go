package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newRenderer(t *testing.T) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, true)
	require.NoError(t, err)
	return r, &buf
}

var statuses = []types.LinkStatus{
	{ID: "alex", Path: "mailboxes/alex", Found: true, Outgoing: 2, Summary: "2 outgoing"},
	{ID: "blair", Path: "mailboxes/blair", Summary: "not found"},
	{ID: "casey", Path: "mailboxes/casey", Found: true, Summary: "up to date"},
}

func TestRenderStatus_Text(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.RenderStatus(statuses, FormatText))
	assert.Equal(t, "Mailbox status:\n  alex: 2 outgoing\n  blair: not found\n  casey: up to date\n", buf.String())
}

func TestRenderStatus_Empty(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.RenderStatus(nil, FormatText))
	assert.Equal(t, "No mailboxes registered\n", buf.String())
}

func TestRenderStatus_JSON(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.RenderStatus(statuses, FormatJSON))
	var decoded []types.LinkStatus
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, statuses, decoded)
}

func TestRenderStatus_YAML(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.RenderStatus(statuses[:1], FormatYAML))
	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "2 outgoing", decoded[0]["summary"])
	assert.Equal(t, 2, decoded[0]["outgoing"])
}

func TestRenderList(t *testing.T) {
	derived := types.Link{ID: "alex", Labels: []string{"for-alex", "team"}, DisplayName: "Alex"}
	derived.DeriveRepoRef("own")
	entries := []types.LinkEntry{{Link: derived, Path: "mailboxes/alex", Present: false}}

	r, buf := newRenderer(t)
	require.NoError(t, r.RenderList(entries, FormatText))
	out := buf.String()
	assert.Contains(t, out, "alex (Alex)")
	assert.Contains(t, out, "own/to-alex (derived)")
	assert.Contains(t, out, "labels: for-alex, team")
	assert.Contains(t, out, "mailboxes/alex (missing)")

	buf.Reset()
	require.NoError(t, r.RenderList(entries, FormatJSON))
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Equal(t, true, rows[0]["repo_derived"])
	assert.Equal(t, false, rows[0]["present"])
}

func TestRenderSyncSummary(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.RenderSyncSummary([]types.SyncReport{{ID: "alex", Outcome: types.SyncPushed}}))
	assert.Empty(t, buf.String(), "single reports need no summary")

	require.NoError(t, r.RenderSyncSummary([]types.SyncReport{
		{ID: "alex", Outcome: types.SyncPushed},
		{ID: "blair", Outcome: types.SyncFailed, Err: fmt.Errorf("boom")},
	}))
	assert.Equal(t, "Summary:\n  alex: pushed\n  blair: failed: boom\n", buf.String())
}

func TestRenderError(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.RenderError(errors.MailboxNotFound("x", "mailboxes.toml")))
	assert.Equal(t, "Error: mailbox 'x' not found in mailboxes.toml\n", buf.String())
}

func TestNewRenderer_LogsColorDecision(t *testing.T) {
	var logs bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&logs).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = saved })

	_, err := NewRenderer(&bytes.Buffer{}, true)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"component":"output"`)
	assert.Contains(t, logs.String(), `"color":false`)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "text": FormatText, "json": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
