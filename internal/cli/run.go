package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"joint-engine/internal/adorn"
	"joint-engine/internal/engineconfig"
	"joint-engine/internal/logger"
	"joint-engine/internal/physics"
	"joint-engine/internal/script"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	LogFile string
	Steps   int
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a scene script headless",
		Long: `Run a scene script without a window and print what it reports.

Use "-" to read the script from stdin. After the script, --steps extra world steps
are taken at the prefs tick rate.

Example:
  jointsim run examples/weld.jsim
  jointsim run --steps 120 -v examples/motor.jsim`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log", "", "also append the engine log to this file")
	cmd.Flags().IntVar(&opts.Steps, "steps", 0, "world steps to take after the script")

	return cmd
}

// NewSession builds a runner backed by a world configured from prefs.
func NewSession(p engineconfig.Prefs, log *logger.Logger) *script.Runner {
	w := physics.NewWorld()
	w.SetGravity(p.GravityVec())
	r := script.New(log, w)
	r.SetDefaultDt(p.Dt())
	r.SetAdornOptions(adorn.Options{SpanningTree: p.ShowSpanningTree, Features: p.ShowFeatures})
	return r
}

// Open returns the script reader for path, or stdin for "-".
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func runScript(opts *RunOptions, path string, cmd *cobra.Command) error {
	p, err := opts.Prefs()
	if err != nil {
		return err
	}
	log := logger.New(opts.LogFile)
	r := NewSession(p, log)
	r.SetOutput(cmd.OutOrStdout())

	f, err := Open(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer f.Close()

	runErr := r.Run(f)
	if runErr == nil && opts.Steps > 0 {
		r.Step(p.Dt(), opts.Steps)
	}
	if opts.Verbose {
		for _, line := range log.Lines() {
			fmt.Fprintln(cmd.ErrOrStderr(), line)
		}
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", path, runErr)
	}
	return nil
}
