package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"joint-engine/internal/logger"
	"joint-engine/internal/mapgen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Folder string
	Run    bool
	mapgen.TerraceOptions
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts, TerraceOptions: mapgen.DefaultTerraceOptions()}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a terrace scene script",
		Long: `Print a scene script for a noise generated terrace of welded and glued
stacks. With --run the script is executed instead and the world stats printed.

Example:
  jointsim gen --width 8 --depth 8 --seed 3 > terrace.jsim
  jointsim gen --run --levels 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Folder, "folder", "Terrace", "folder under Workspace")
	cmd.Flags().BoolVar(&opts.Run, "run", false, "run the script and print stats")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "columns along X")
	cmd.Flags().IntVar(&opts.Depth, "depth", opts.Depth, "columns along Z")
	cmd.Flags().IntVar(&opts.MaxLevels, "levels", opts.MaxLevels, "maximum parts per column")
	cmd.Flags().Float32Var(&opts.TileSize, "tile", opts.TileSize, "column width")
	cmd.Flags().Float32Var(&opts.LevelHeight, "height", opts.LevelHeight, "part height")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "noise seed (0 = time based)")

	return cmd
}

func generate(opts *GenOptions, cmd *cobra.Command) error {
	lines := mapgen.Terrace(opts.Folder, opts.TerraceOptions)
	if !opts.Run {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
		return err
	}
	p, err := opts.Prefs()
	if err != nil {
		return err
	}
	r := NewSession(p, logger.New(""))
	r.SetOutput(cmd.OutOrStdout())
	if err := r.Run(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		return err
	}
	return r.Exec("stats")
}
