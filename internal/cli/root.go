// Package cli holds the jointsim cobra commands that run without a window.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"joint-engine/internal/engineconfig"
	"joint-engine/internal/env"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Config  string // prefs file; empty means engineconfig.Path()
	EnvFile string
}

// Prefs loads the environment file and then the prefs file. A broken prefs file is an
// error; a missing one yields defaults.
func (o *RootOptions) Prefs() (engineconfig.Prefs, error) {
	if err := env.Load(o.EnvFile); err != nil {
		return engineconfig.Default(), fmt.Errorf("load %s: %w", o.EnvFile, err)
	}
	path := o.Config
	if path == "" {
		path = engineconfig.Path()
	}
	p, err := engineconfig.Load(path)
	if err != nil {
		return p, fmt.Errorf("load prefs %s: %w", path, err)
	}
	return p, nil
}

// NewRootCommand creates the jointsim root command. extra builds further subcommands
// (such as the windowed viewer) against the shared options.
func NewRootCommand(extra ...func(*RootOptions) *cobra.Command) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "jointsim",
		Short: "Joint simulation sandbox",
		Long: `Build parts, features and joints from line oriented scene scripts and
watch the joint kernel track them as the tree changes.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print the engine log")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "prefs file (default $"+engineconfig.PathEnv+" or "+engineconfig.DefaultPath+")")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env", ".env", "environment file loaded before the prefs")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewFeatureCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))
	for _, build := range extra {
		cmd.AddCommand(build(opts))
	}
	return cmd
}
