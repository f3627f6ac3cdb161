package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Sources{})
	require.NoError(t, err)

	assert.Equal(t, "mailboxes", cfg.Mailboxes.Dir)
	assert.Equal(t, "mailboxes.toml", cfg.Mailboxes.RegistryFile)
	assert.Equal(t, "github.com", cfg.Mailboxes.GitHost)
	assert.Equal(t, "private", cfg.Mailboxes.Visibility)
	assert.Equal(t, "Sync shared conversations", cfg.Sync.CommitMessage)
	assert.Equal(t, "Reset template files to current version", cfg.Sync.ResetMessage)
	assert.Equal(t, "voice.md", cfg.Templates.VoiceFile)
	assert.Equal(t, []string{"AGENTS.local.md", "CLAUDE.local.md", "__pycache__/"}, cfg.Templates.Gitignore)
	assert.Empty(t, cfg.Owner.GithubUser)
}

func TestLoad_MissingFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(Sources{
		UserFile:    filepath.Join(dir, "nope.toml"),
		ProjectFile: filepath.Join(dir, "missing.toml"),
	})
	require.NoError(t, err)
	assert.Equal(t, "mailboxes", cfg.Mailboxes.Dir)
}

func TestLoad_ProjectOverridesUser(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.toml", `
[owner]
github_user = "alice"
name = "Alice"

[mailboxes]
dir = "shared"
`)
	project := writeFile(t, dir, "project.toml", `
[mailboxes]
dir = "boxes"
`)

	cfg, err := Load(Sources{UserFile: user, ProjectFile: project})
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Owner.GithubUser)
	assert.Equal(t, "Alice", cfg.Owner.Name)
	assert.Equal(t, "boxes", cfg.Mailboxes.Dir)
	// untouched keys keep their defaults
	assert.Equal(t, "mailboxes.toml", cfg.Mailboxes.RegistryFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.toml", `
[owner]
github_user = "alice"
`)
	t.Setenv("CORKY_GITHUB_USER", "bob")
	t.Setenv("CORKY_SYNC__COMMIT_MESSAGE", "custom sync")

	cfg, err := Load(Sources{UserFile: user})
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.Owner.GithubUser)
	assert.Equal(t, "custom sync", cfg.Sync.CommitMessage)
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.toml", "[owner\nname = ")

	_, err := Load(Sources{ProjectFile: bad})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, bad, errors.DetailsOf(err)["path"])
}

func TestOwner_DisplayName(t *testing.T) {
	assert.Equal(t, "Alice", Owner{GithubUser: "alice", Name: "Alice"}.DisplayName())
	assert.Equal(t, "alice", Owner{GithubUser: "alice"}.DisplayName())
	assert.Empty(t, Owner{}.DisplayName())
}

func TestSync_SeedMessageFor(t *testing.T) {
	cfg, err := Load(Sources{})
	require.NoError(t, err)
	assert.Equal(t, "Initialize shared mailbox for Alex", cfg.Sync.SeedMessageFor("Alex"))
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), "[mailboxes]")
}
