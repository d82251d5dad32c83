package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nullable-generator/internal/analyze"
	"nullable-generator/internal/common"
	"nullable-generator/internal/gen"
	"nullable-generator/internal/logger"
)

func (a *app) genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate nullable types",
		Long: `Generate a Nullable<Name> companion for every marked struct in the given
packages (default "."). Nothing is written when any target is rejected.`,
		RunE: a.runGen,
	}

	addGenerationFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Print generated code instead of writing files")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, args []string) error {
	files, err := a.generate(cmd, args)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	if dryRun {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "// === %s ===\n%s\n", f.Path(), f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(a.fs, files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("generated", "type", f.TypeName, "file", f.Path())
	}

	return nil
}

// generate loads packages, selects targets and renders them in memory.
func (a *app) generate(cmd *cobra.Command, patterns []string) ([]gen.GeneratedFile, error) {
	names, err := typeNames(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get type flag: %w", err)
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, fmt.Errorf("failed to get output flag: %w", err)
	}

	container, err := gen.ParseContainer(a.cfg.Container)
	if err != nil {
		return nil, err
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = a.cwd
	analyzer.BuildTags = []string{gen.BuildTag}

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	targets, diags := graph.Select(names)
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, "code", w.Code)
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	if common.IsEmpty(targets) {
		return nil, nil
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		Container:        container,
		OptionalImport:   a.cfg.OptionalImport,
		Suffix:           a.cfg.Suffix,
		Output:           output,
		GenerateComments: a.cfg.Comments,
		DebugFs:          a.fs,
	})

	files, err := generator.Generate(targets)
	if err != nil {
		return nil, err
	}

	logger.Debug("rendered", "files", len(files))

	return files, nil
}
