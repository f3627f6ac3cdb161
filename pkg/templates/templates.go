// Package templates writes the managed files of a mailbox working copy:
// agent instructions, the CLAUDE.md alias, the README, .gitignore and the
// owner's voice guide.
package templates

import (
	"bytes"
	"embed"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/types"
)

// Managed file names.
const (
	AgentsFile    = "AGENTS.md"
	ClaudeFile    = "CLAUDE.md"
	ReadmeFile    = "README.md"
	GitignoreFile = ".gitignore"
	VoiceFile     = "voice.md"
)

//go:embed files/*.tmpl
var filesFS embed.FS

var parsed = template.Must(template.ParseFS(filesFS, "files/*.tmpl"))

// DefaultGitignore lists the patterns written to .gitignore.
var DefaultGitignore = []string{"AGENTS.local.md", "CLAUDE.local.md", "__pycache__/"}

type data struct {
	Display string
	Owner   string
}

// Options configures a Regenerator.
type Options struct {
	FileSystem types.FS
	// VoicePath is the owner's style guide; it is copied when it exists.
	VoicePath string
	Gitignore []string
}

// Regenerator renders the managed files into a directory.
type Regenerator struct {
	fs        types.FS
	voicePath string
	gitignore []string
}

// New creates a Regenerator.
func New(opts Options) *Regenerator {
	gitignore := opts.Gitignore
	if len(gitignore) == 0 {
		gitignore = DefaultGitignore
	}
	return &Regenerator{fs: opts.FileSystem, voicePath: opts.VoicePath, gitignore: gitignore}
}

// Regenerate overwrites the managed files in dir and returns the names
// written, relative to dir. Output depends only on the arguments and the
// voice file, so running it twice leaves the tree unchanged.
func (r *Regenerator) Regenerate(dir, displayName, ownerName string) ([]string, error) {
	logger := logging.GetLogger("templates")
	d := data{Display: displayName, Owner: ownerName}
	if d.Owner == "" {
		d.Owner = "the owner"
	}

	var written []string

	agents, err := render("AGENTS.md.tmpl", d)
	if err != nil {
		return written, err
	}
	if err := r.write(dir, AgentsFile, agents); err != nil {
		return written, err
	}
	written = append(written, AgentsFile)

	claude := filepath.Join(dir, ClaudeFile)
	if types.Exists(r.fs, claude) {
		if err := r.fs.Remove(claude); err != nil {
			return written, errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", claude)
		}
	}
	if err := r.fs.Symlink(AgentsFile, claude); err != nil {
		return written, errors.Wrapf(err, errors.ErrFileWrite, "cannot link %s", claude)
	}
	written = append(written, ClaudeFile)

	readme, err := render("README.md.tmpl", d)
	if err != nil {
		return written, err
	}
	if err := r.write(dir, ReadmeFile, readme); err != nil {
		return written, err
	}
	written = append(written, ReadmeFile)

	ignore := []byte(strings.Join(r.gitignore, "\n") + "\n")
	if err := r.write(dir, GitignoreFile, ignore); err != nil {
		return written, err
	}
	written = append(written, GitignoreFile)

	if r.voicePath != "" {
		voice, err := r.fs.ReadFile(r.voicePath)
		if err == nil {
			if err := r.write(dir, VoiceFile, voice); err != nil {
				return written, err
			}
			written = append(written, VoiceFile)
		}
	}

	logger.Debug().Str("dir", dir).Strs("files", written).Msg("Regenerated templates")
	return written, nil
}

func (r *Regenerator) write(dir, name string, content []byte) error {
	path := filepath.Join(dir, name)
	if err := r.fs.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("path", path)
	}
	return nil
}

func render(name string, d data) ([]byte, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, d); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot render %s", name)
	}
	return buf.Bytes(), nil
}
