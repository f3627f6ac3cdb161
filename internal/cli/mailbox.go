package cli

import (
	"github.com/corky-dev/corky/pkg/github"
	"github.com/corky-dev/corky/pkg/links"
	"github.com/corky-dev/corky/pkg/output"
	"github.com/corky-dev/corky/pkg/ui/confirmations"
	"github.com/spf13/cobra"
)

func (a *app) newMailboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mailbox",
		Aliases: []string{"mb"},
		Short:   MsgMailboxShort,
	}

	cmd.AddCommand(a.newAddCmd())
	cmd.AddCommand(a.newSyncCmd())
	cmd.AddCommand(a.newStatusCmd())
	cmd.AddCommand(a.newRenameCmd())
	cmd.AddCommand(a.newRemoveCmd())
	cmd.AddCommand(a.newResetCmd())
	cmd.AddCommand(a.newListCmd())

	return cmd
}

func (a *app) newAddCmd() *cobra.Command {
	var (
		opts   links.AddOptions
		pat    bool
		public bool
	)

	cmd := &cobra.Command{
		Use:     "add ID",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts.ID = args[0]
			if pat {
				opts.Grant = links.GrantToken
			}
			if public {
				opts.Visibility = github.Public
			}
			_, err = engine.Add(opts)
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Labels, "label", "l", nil, MsgFlagLabel)
	cmd.Flags().StringVar(&opts.DisplayName, "display-name", "", MsgFlagDisplayName)
	cmd.Flags().StringVar(&opts.Account, "account", "", MsgFlagAccount)
	cmd.Flags().StringVar(&opts.Org, "org", "", MsgFlagOrg)
	cmd.Flags().BoolVar(&pat, "pat", false, MsgFlagPAT)
	cmd.Flags().BoolVar(&public, "public", false, MsgFlagPublic)
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func (a *app) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [ID]",
		Short: MsgSyncShort,
		Long:  MsgSyncLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			engine, err := a.engine(out)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				_, err := engine.SyncOne(args[0])
				return err
			}

			reports, err := engine.SyncAll()
			if err != nil {
				return err
			}
			renderer, err := output.NewRenderer(out, a.color(out))
			if err != nil {
				return err
			}
			return renderer.RenderSyncSummary(reports)
		},
	}
}

func (a *app) newStatusCmd() *cobra.Command {
	var (
		format   string
		parallel int
	)

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			engine, err := a.engine(out)
			if err != nil {
				return err
			}
			statuses, err := engine.Status(links.StatusOptions{Parallel: parallel})
			if err != nil {
				return err
			}

			renderer, err := output.NewRenderer(out, a.color(out))
			if err != nil {
				return err
			}
			return renderer.RenderStatus(statuses, f)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", string(output.FormatText), MsgFlagOutput)
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, MsgFlagParallel)

	return cmd
}

func (a *app) newRenameCmd() *cobra.Command {
	var renameRepo bool

	cmd := &cobra.Command{
		Use:   "rename OLD NEW",
		Short: MsgRenameShort,
		Long:  MsgRenameLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = engine.Rename(args[0], args[1], renameRepo)
			return err
		},
	}

	cmd.Flags().BoolVar(&renameRepo, "rename-repo", false, MsgFlagRenameRepo)

	return cmd
}

func (a *app) newRemoveCmd() *cobra.Command {
	var (
		deleteRepo bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var confirm links.ConfirmFunc
			if yes {
				confirm = links.ConfirmFunc(confirmations.Fixed(true))
			}
			_, err = engine.Remove(args[0], deleteRepo, confirm)
			return err
		},
	}

	cmd.Flags().BoolVar(&deleteRepo, "delete-repo", false, MsgFlagDeleteRepo)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)

	return cmd
}

func (a *app) newResetCmd() *cobra.Command {
	var noSync bool

	cmd := &cobra.Command{
		Use:   "reset [ID]",
		Short: MsgResetShort,
		Long:  MsgResetLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			engine, err := a.engine(out)
			if err != nil {
				return err
			}

			var id string
			if len(args) == 1 {
				id = args[0]
			}
			reports, err := engine.Reset(id, !noSync)
			if err != nil {
				return err
			}
			renderer, err := output.NewRenderer(out, a.color(out))
			if err != nil {
				return err
			}
			return renderer.RenderSyncSummary(reports)
		},
	}

	cmd.Flags().BoolVar(&noSync, "no-sync", false, MsgFlagNoSync)

	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			engine, err := a.engine(out)
			if err != nil {
				return err
			}
			entries, err := engine.List()
			if err != nil {
				return err
			}

			renderer, err := output.NewRenderer(out, a.color(out))
			if err != nil {
				return err
			}
			return renderer.RenderList(entries, f)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", string(output.FormatText), MsgFlagOutput)

	return cmd
}
