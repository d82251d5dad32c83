package cli

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"nullable-generator/internal/analyze"
	"nullable-generator/internal/gen"
)

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [packages]",
		Short: "List marked structs and their fields",
		Long: `Load packages and print every struct marked for generation (or every
declaration with --all), including the problems that would make gen fail.`,
		RunE: a.runAnalyze,
	}

	cmd.Flags().Bool("all", false, "List every declaration, not only marked ones")
	cmd.Flags().Bool("dump", false, "Dump the loaded model instead of a summary")

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = a.cwd
	analyzer.BuildTags = []string{gen.BuildTag}

	graph, err := analyzer.LoadPackages(args...)
	if err != nil {
		return err
	}

	var targets []*analyze.TypeInfo
	if all {
		targets = graph.All()
	} else {
		targets, _ = graph.Select(nil)
	}

	out := cmd.OutOrStdout()

	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true, MaxDepth: 4}
		for _, t := range targets {
			cfg.Fdump(out, t)
		}

		return nil
	}

	if len(targets) == 0 {
		fmt.Fprintln(out, "no declarations marked with "+analyze.Directive)
		return nil
	}

	for _, t := range targets {
		printType(out, t)
	}

	return nil
}

func printType(out io.Writer, t *analyze.TypeInfo) {
	stringer := analyze.NewTypeStringer()

	marker := ""
	if t.Annotated {
		marker = " (marked)"
	}

	fmt.Fprintf(out, "%s.%s %s%s\n", t.PkgName, stringer.Signature(t), t.Kind, marker)

	for _, f := range t.Fields {
		line := fmt.Sprintf("  %s %s", f.Name, stringer.TypeString(f.Type, t.ID.PkgPath))
		if f.Tag != "" {
			line += " `" + string(f.Tag) + "`"
		}

		fmt.Fprintln(out, line)
	}

	diags := gen.Validate(t)
	for _, d := range diags.Errors {
		fmt.Fprintf(out, "  ! %s\n", d.String())
	}
}
