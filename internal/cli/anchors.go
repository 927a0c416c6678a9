package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	estsvc "tgage/internal/services/api/estimate/service"
)

func newAnchorsCmd(env Env, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "List the anchor table and username rules in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			est, err := f.engine()
			if err != nil {
				return err
			}
			t := estsvc.New(est, env.Now, nil).Tables(cmd.Context())
			if f.asJSON {
				return writeJSON(cmd.OutOrStdout(), t)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "cutoff %s, ceiling %d\n\n", t.Cutoff, t.Ceiling)
			fmt.Fprintln(tw, "ID\tDATE\tNOTE")
			for _, a := range t.Anchors {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", a.ID, a.Date, a.Note)
			}
			fmt.Fprintln(tw, "\nRULE\tPATTERN\tERA")
			for _, r := range t.Rules {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Pattern, r.Era)
			}
			return tw.Flush()
		},
	}
}
