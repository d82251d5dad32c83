// Package cli wires the nullable-generator commands.
package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"nullable-generator/internal/config"
	"nullable-generator/internal/logger"
)

// app is the state shared by every command of one invocation.
type app struct {
	fs  afero.Fs
	cwd string
	cfg *config.Config
}

// RootCmd returns the root command operating on the OS filesystem.
func RootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	a := &app{fs: fsys}

	root := &cobra.Command{
		Use:   "nullable-generator",
		Short: "Generate presence-tracking companions for Go structs",
		Long: `nullable-generator emits a Nullable<Name> type for each struct marked with
` + "`//nullablegen:generate`" + ` (or named with --type). Every field of the companion
can be absent, and each gets Get, Lookup and Set accessors.

Typical use is a go:generate line next to the struct:

	//go:generate nullable-generator gen`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().String("cwd", "", "Directory to run in (defaults to the current directory)")
	root.PersistentFlags().String("config", "", "Path to the config file, relative to --cwd (defaults to "+config.DefaultFile+")")
	root.PersistentFlags().String("log-level", string(logger.InfoLevel), "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "Include source locations in logs")

	root.AddCommand(
		a.genCmd(),
		a.checkCmd(),
		a.analyzeCmd(),
		versionCmd(),
	)

	return root
}

// setup configures logging and loads the merged configuration.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}

	logger.SetupLogger(logLevel, logJSON, logSource)

	a.cwd, err = cmd.Flags().GetString("cwd")
	if err != nil {
		return fmt.Errorf("failed to get cwd flag: %w", err)
	}

	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.NewLoader(a.fs).WithDir(a.cwd).Load(cfgPath, flagOverrides(cmd.Flags()))
	if err != nil {
		return err
	}

	a.cfg = cfg
	logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON, cfg.Log.Source)
	logger.Debug("configuration loaded",
		"container", cfg.Container,
		"suffix", cfg.Suffix,
		"optional_import", cfg.OptionalImport)

	return nil
}
