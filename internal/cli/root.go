package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/corky-dev/corky/internal/version"
	"github.com/corky-dev/corky/pkg/config"
	"github.com/corky-dev/corky/pkg/executor"
	"github.com/corky-dev/corky/pkg/filesystem"
	"github.com/corky-dev/corky/pkg/links"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/paths"
	"github.com/corky-dev/corky/pkg/types"
	"github.com/corky-dev/corky/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps are the collaborators commands run against. Zero values select the
// real implementations.
type Deps struct {
	Executor   executor.Executor
	FileSystem types.FS
	// UserConfig is the per-user config file. Empty selects the XDG path.
	UserConfig string
	// Confirm answers prompts when --yes is not given.
	Confirm confirmations.Func
	// Color enables styled output on terminals.
	Color bool
}

// app carries the global flags and dependencies shared by all commands.
type app struct {
	deps      Deps
	verbosity int
	root      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Deps{Color: true})
}

// NewRootCmdWith creates the root command over deps.
func NewRootCmdWith(deps Deps) *cobra.Command {
	if deps.Executor == nil {
		deps.Executor = executor.NewOS(executor.Options{})
	}
	if deps.FileSystem == nil {
		deps.FileSystem = filesystem.NewOS()
	}
	if deps.UserConfig == "" {
		deps.UserConfig = paths.UserConfigPath()
	}
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "corky",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.root, "root", "", MsgFlagRoot)

	initTemplateFormatting(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(a.newMailboxCmd())
	rootCmd.AddCommand(a.newConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(out, MsgDateFormat, version.Date)
			}
		},
	}
}

// engine resolves the project root, loads its configuration and builds the
// links engine writing progress to out.
func (a *app) engine(out io.Writer) (*links.Engine, error) {
	logger := logging.GetLogger("cli")

	root, err := paths.FindRoot(a.root, a.deps.Executor)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("root", root).Msg("Resolved project root")

	cfg, err := config.Load(config.Sources{
		UserFile:    a.deps.UserConfig,
		ProjectFile: filepath.Join(root, paths.ProjectConfigFile),
	})
	if err != nil {
		return nil, err
	}

	p, err := paths.New(root, paths.Layout{
		MailboxesDir: cfg.Mailboxes.Dir,
		RegistryFile: cfg.Mailboxes.RegistryFile,
		VoiceFile:    cfg.Templates.VoiceFile,
	})
	if err != nil {
		return nil, err
	}

	return links.New(links.Options{
		Paths:      p,
		Executor:   a.deps.Executor,
		FileSystem: a.deps.FileSystem,
		Config:     cfg,
		Out:        out,
		Confirm:    links.ConfirmFunc(a.confirm()),
		Logger:     logging.GetLogger("links"),
	})
}

func (a *app) confirm() confirmations.Func {
	if a.deps.Confirm != nil {
		return a.deps.Confirm
	}
	return confirmations.Interactive()
}

// color reports whether styled output should be attempted on w.
func (a *app) color(w io.Writer) bool {
	return a.deps.Color && w == io.Writer(os.Stdout)
}
