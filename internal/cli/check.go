package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nullable-generator/internal/gen"
	"nullable-generator/internal/logger"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Verify generated files are up to date",
		Long: `Regenerate in memory and compare with the files on disk. Fails when a
generated file is missing or differs, which makes it usable as a CI guard.`,
		RunE: a.runCheck,
	}

	addGenerationFlags(cmd)

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	files, err := a.generate(cmd, args)
	if err != nil {
		return err
	}

	diags := gen.Check(a.fs, files)
	for _, d := range diags.All() {
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d generated file(s) out of date, run nullable-generator gen", len(diags.Errors))
	}

	logger.Info("generated files are up to date", "files", len(files))

	return nil
}
