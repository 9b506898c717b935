package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tinoworks/tinomacro/expansion"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "list the expansion rules",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRules(cmd.OutOrStdout())
	},
}

func listRules(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSITE\tROLE")
	for _, b := range expansion.Bindings() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Kind, b.Role)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
