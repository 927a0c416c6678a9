// Package cli implements the tgage command line
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"tgage/internal/core/estimate"
	"tgage/internal/core/version"
	"tgage/internal/platform/config"
)

// Env is what commands read from the outside world; tests swap pieces of it
type Env struct {
	Out io.Writer
	Err io.Writer
	Cfg config.Conf
	Now func() time.Time
}

type rootFlags struct {
	anchorsFile string
	asJSON      bool
}

// New builds the root command with every subcommand attached
func New(env Env) *cobra.Command {
	if env.Now == nil {
		env.Now = func() time.Time { return time.Now().UTC() }
	}
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "tgage",
		Short: "Estimate when a Telegram account was created",
		Long: `tgage estimates the creation date of a Telegram account from its numeric
user id and the shape of its username.

Estimates run locally against the built-in anchor table unless --anchors
points at an override file. The lookup command asks the Bot API and needs
TELEGRAM_BOT_TOKEN.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(env.Out)
	root.SetErr(env.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&f.anchorsFile, "anchors", env.Cfg.Prefix("ESTIMATOR_").MayString("ANCHORS_FILE", ""), "anchor table override (yaml)")
	pf.BoolVar(&f.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(
		newEstimateCmd(env, f),
		newAnchorsCmd(env, f),
		newLookupCmd(env, f),
		newVersionCmd(env),
	)
	return root
}

// Execute runs the CLI with args against env
func Execute(ctx context.Context, env Env, args []string) error {
	root := New(env)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// engine builds the estimator, honouring --anchors
func (f *rootFlags) engine() (*estimate.Estimator, error) {
	if f.anchorsFile == "" {
		return estimate.Default(), nil
	}
	t, err := estimate.LoadAnchorsFile(f.anchorsFile)
	if err != nil {
		return nil, err
	}
	return estimate.New(estimate.WithAnchors(t)), nil
}

func newVersionCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), version.For("tgage").String()+"\n")
			return err
		},
	}
}
