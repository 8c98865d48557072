package cmd

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"fromenv/core/config"
	"fromenv/core/source"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const formatEnv = "env"

var exportFormats = []string{"json", "yaml", "toml", formatEnv}

var (
	exportFormat string
	exportOutput string
)

// exportCmd writes the merged values in another format.
var exportCmd = &cobra.Command{
	Use:   "export [-- flags...]",
	Short: "Write the merged values as json, yaml, toml or env",
	Long: `Merges the file with the flags given after "--" and writes the result.
Without --output the result is printed. Keys are lowercased and dotted keys are
nested for json, yaml and toml; the env format keeps keys as they are.

  fromenv export --format yaml --output config.yaml -- --server_url localhost:9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(exportFormats, exportFormat) {
			return fmt.Errorf("unsupported format %q, expected one of %v", exportFormat, exportFormats)
		}

		res, err := config.Resolve(
			config.WithFile(envFile),
			config.WithArgs(args...),
			config.WithLogger(log),
		)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := writeExport(exportFormat, exportOutput, res.Merged); err != nil {
				return err
			}
			log.Info("Exported configuration",
				zap.String("format", exportFormat),
				zap.String("output", exportOutput),
				zap.Int("keys", len(res.Merged)),
			)
			return nil
		}

		out, err := renderExport(exportFormat, res.Merged)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

// writeExport writes values to path in the given format.
func writeExport(format, path string, values source.Map) error {
	if format == formatEnv {
		out, err := marshalEnv(values)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}

	return writeViper(afero.NewOsFs(), format, path, values)
}

// renderExport returns values encoded in the given format.
func renderExport(format string, values source.Map) ([]byte, error) {
	if format == formatEnv {
		out, err := marshalEnv(values)
		if err != nil {
			return nil, err
		}
		return []byte(out + "\n"), nil
	}

	fs := afero.NewMemMapFs()
	path := "/export." + format
	if err := writeViper(fs, format, path, values); err != nil {
		return nil, err
	}
	return afero.ReadFile(fs, path)
}

// marshalEnv encodes values with godotenv, one sorted line per key.
// godotenv writes integers unquoted through %d, which would turn "007" into 7,
// so such values are quoted instead.
func marshalEnv(values source.Map) (string, error) {
	lines := make([]string, 0, len(values))
	for _, k := range values.Keys() {
		v := values[k]
		if d, err := strconv.Atoi(v); err == nil && strconv.Itoa(d) != v {
			lines = append(lines, fmt.Sprintf("%s=%q", k, v))
			continue
		}

		line, err := godotenv.Marshal(map[string]string{k: v})
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", k, err)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func writeViper(fs afero.Fs, format, path string, values source.Map) error {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType(format)
	v.SetConfigPermissions(os.FileMode(0o644))

	for _, k := range values.Keys() {
		v.Set(k, values[k])
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "output format (json, yaml, toml, env)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write instead of printing")
	RootCmd.AddCommand(exportCmd)
}
