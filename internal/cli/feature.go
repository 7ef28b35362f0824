package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"joint-engine/internal/geom"
	"joint-engine/internal/joints"
	"joint-engine/internal/props"
	"joint-engine/internal/scene"
)

// FeatureOptions holds flags for the feature command.
type FeatureOptions struct {
	*RootOptions
	Size      string
	Face      string
	TopBottom string
	LeftRight string
	InOut     string
	ZIn       bool
}

// NewFeatureCommand creates the feature command.
func NewFeatureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FeatureOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Print the frame a feature gets on a box",
		Long: `Print the local coordinate frame of a feature placed on a box of the given
size, in the box's space.

Example:
  jointsim feature --size 4,2,2 --face Top --io Inset`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := featureFrame(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), scene.FormatFrame(f))
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Size, "size", "2,2,2", "box size x,y,z")
	cmd.Flags().StringVar(&opts.Face, "face", joints.DefaultSelectors.Face.String(), "face (Right, Top, ... or X, -X, ...)")
	cmd.Flags().StringVar(&opts.TopBottom, "tb", joints.DefaultSelectors.TopBottom.String(), "row: Top, Center or Bottom")
	cmd.Flags().StringVar(&opts.LeftRight, "lr", joints.DefaultSelectors.LeftRight.String(), "column: Left, Center or Right")
	cmd.Flags().StringVar(&opts.InOut, "io", joints.DefaultSelectors.InOut.String(), "depth: Edge, Inset or Center")
	cmd.Flags().BoolVar(&opts.ZIn, "zin", false, "point Z into the part (holes)")

	return cmd
}

func featureFrame(opts *FeatureOptions) (geom.Frame, error) {
	size, err := props.ParseVec3(opts.Size)
	if err != nil {
		return geom.Frame{}, fmt.Errorf("--size: %w", err)
	}
	var s joints.Selectors
	if s.Face, err = geom.ParseNormalID(opts.Face); err != nil {
		return geom.Frame{}, err
	}
	if s.TopBottom, err = joints.ParseTopBottom(opts.TopBottom); err != nil {
		return geom.Frame{}, err
	}
	if s.LeftRight, err = joints.ParseLeftRight(opts.LeftRight); err != nil {
		return geom.Frame{}, err
	}
	if s.InOut, err = joints.ParseInOut(opts.InOut); err != nil {
		return geom.Frame{}, err
	}
	o := joints.ZOut
	if opts.ZIn {
		o = joints.ZIn
	}
	return joints.LocalFrame(geom.FromSize(size), s, o), nil
}
