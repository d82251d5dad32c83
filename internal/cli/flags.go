package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nullable-generator/internal/common"
	"nullable-generator/internal/config"
)

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"container":       "container",
	"optional-import": "optional_import",
	"suffix":          "suffix",
	"comments":        "comments",
	"log-level":       "log.level",
	"log-json":        "log.json",
	"log-source":      "log.source",
}

// flagOverrides collects the configuration keys of flags set on the command
// line. Flags left at their defaults do not override file or env values.
func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)

	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	return overrides
}

// addGenerationFlags registers the flags shared by gen and check.
func addGenerationFlags(cmd *cobra.Command) {
	defaults := config.Default()

	cmd.Flags().StringP("type", "t", "", "Comma-separated type names to generate (defaults to marked types)")
	cmd.Flags().StringP("output", "o", "", "Output file, only valid with a single type")
	cmd.Flags().String("container", defaults.Container, "Field container: optional or pointer")
	cmd.Flags().String("suffix", defaults.Suffix, "Output file name suffix")
	cmd.Flags().Bool("comments", defaults.Comments, "Emit doc comments on generated declarations")
	cmd.Flags().String("optional-import", defaults.OptionalImport, "Import path of the optional package")
}

// typeNames returns the --type list.
func typeNames(cmd *cobra.Command) ([]string, error) {
	raw, err := cmd.Flags().GetString("type")
	if err != nil {
		return nil, err
	}

	return common.SplitList(raw), nil
}
