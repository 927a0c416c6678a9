package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	estdomain "tgage/internal/services/api/estimate/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeView(w io.Writer, v estdomain.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if v.UserID != "" {
		fmt.Fprintf(tw, "user id:\t%s\n", v.UserID)
	}
	if v.Username != "" {
		fmt.Fprintf(tw, "username:\t@%s\n", v.Username)
	}
	fmt.Fprintf(tw, "created:\t%s\n", v.EstimatedDate)
	fmt.Fprintf(tw, "range:\t%s .. %s\n", v.DateRange.Start, v.DateRange.End)
	fmt.Fprintf(tw, "age:\t%s\n", v.AccountAge)
	fmt.Fprintf(tw, "confidence:\t%s (%s)\n", v.Confidence, v.Accuracy)
	fmt.Fprintf(tw, "method:\t%s\n", v.Method)
	return tw.Flush()
}
