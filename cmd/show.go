package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fromenv/core/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// showCmd prints the merged values.
var showCmd = &cobra.Command{
	Use:   "show [-- flags...]",
	Short: "Print the merged values and where each one came from",
	Long: `Merges the file with the flags given after "--" and prints every key,
its value and the source that supplied it.

  fromenv show -- --server_url localhost:9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := config.Resolve(
			config.WithFile(envFile),
			config.WithArgs(args...),
			config.WithLogger(log),
		)
		if err != nil {
			return err
		}

		log.Debug("Resolved configuration",
			zap.Int("file_keys", len(res.FileValues)),
			zap.Int("cli_keys", len(res.CLIValues)),
		)

		return writeResolution(cmd.OutOrStdout(), res)
	},
}

func writeResolution(w io.Writer, res *config.Resolution) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, k := range res.Merged.Keys() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, res.Merged[k], res.Origins[k])
	}
	return tw.Flush()
}

func init() {
	RootCmd.AddCommand(showCmd)
}
