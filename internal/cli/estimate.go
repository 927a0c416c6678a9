package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	estdomain "tgage/internal/services/api/estimate/domain"
	estsvc "tgage/internal/services/api/estimate/service"
)

func newEstimateCmd(env Env, f *rootFlags) *cobra.Command {
	var userID, username string

	cmd := &cobra.Command{
		Use:   "estimate [username]",
		Short: "Estimate offline from a user id and/or username",
		Example: `  tgage estimate --user-id 1500000
  tgage estimate @durov
  tgage estimate --user-id 1500000 --username durov --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if username != "" {
					return fmt.Errorf("username given twice")
				}
				username = args[0]
			}
			est, err := f.engine()
			if err != nil {
				return err
			}
			svc := estsvc.New(est, env.Now, nil)
			v, err := svc.Estimate(cmd.Context(), estdomain.Query{
				UserID:   strings.TrimSpace(userID),
				Username: username,
			})
			if err != nil {
				return err
			}
			if f.asJSON {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			return writeView(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "numeric Telegram user id")
	cmd.Flags().StringVar(&username, "username", "", "username, leading @ optional")
	return cmd
}
