package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"tgage/internal/adapters/telegram"
	lookupsvc "tgage/internal/services/api/lookup/service"
)

// ErrNoToken is returned by lookup when TELEGRAM_BOT_TOKEN is unset
var ErrNoToken = errors.New("lookup needs TELEGRAM_BOT_TOKEN")

func newLookupCmd(env Env, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <username>",
		Short: "Resolve a username through the Bot API and estimate its age",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.Cfg.Prefix("TELEGRAM_").MayString("BOT_TOKEN", "") == "" {
				return ErrNoToken
			}
			est, err := f.engine()
			if err != nil {
				return err
			}
			client := telegram.NewClient(telegram.OptionsFromEnv(env.Cfg))

			opts := lookupsvc.OptionsFromEnv(env.Cfg)
			opts.Now = env.Now
			p, err := lookupsvc.New(client, est, opts).Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p)
		},
	}
}
