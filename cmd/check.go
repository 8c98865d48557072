package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"fromenv/core/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkStrict bool

// checkCmd validates the key = value file.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the key = value file",
	Long: `Parses the file and reports every line that is not a key = value assignment.
Malformed lines are skipped when a program loads its configuration; use --strict
to make them fail this check.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
			log.Info("File not found, treated as empty", zap.String("file", envFile))
		}

		values, malformed, err := source.ReadFile(envFile)
		if err != nil {
			return err
		}

		for _, m := range malformed {
			log.Warn("Malformed line",
				zap.String("file", m.Path),
				zap.Int("line", m.Line),
				zap.String("text", m.Text),
			)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d keys, %d malformed lines\n", envFile, len(values), len(malformed))

		if checkStrict && len(malformed) > 0 {
			return fmt.Errorf("%s has %d malformed lines", envFile, len(malformed))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail when any line is malformed")
	RootCmd.AddCommand(checkCmd)
}
