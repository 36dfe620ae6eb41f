// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rerapony/Nuke-KeenTools-sub003/host/memhost"
	"github.com/rerapony/Nuke-KeenTools-sub003/meshio"
	"github.com/rerapony/Nuke-KeenTools-sub003/pca"
	"github.com/rerapony/Nuke-KeenTools-sub003/pcageo"
)

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// nodeFlags are the knob and solver flags shared by blend and inspect.
type nodeFlags struct {
	config    string
	minComp   int
	threshold float64
	pretty    bool
	deltaX    float64
	solver    string
	epsilon   float64
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "pcageo",
		Short:         "PCA blend of same-topology OBJ meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(blendCmd(), inspectCmd())

	return root
}

func (f *nodeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "yaml knob preset (n_pca, variance_threshold, pretty_show, delta_x)")
	fs.IntVar(&f.minComp, "n-pca", pcageo.DefaultMinComponents, "minimum extremes to emit")
	fs.Float64Var(&f.threshold, "variance-threshold", pcageo.DefaultVarianceThreshold, "per-component variance proportion threshold")
	fs.BoolVar(&f.pretty, "pretty-show", false, "spread outputs along X")
	fs.Float64Var(&f.deltaX, "delta-x", pcageo.DefaultDeltaX, "spacing used by --pretty-show")
	fs.StringVar(&f.solver, "solver", "gonum", "eigensolver: gonum or jacobi")
	fs.Float64Var(&f.epsilon, "rank-epsilon", pca.DefaultEpsilon, "relative rank cut-off")
}

// knobs resolves defaults, then the preset, then explicitly set flags.
func (f *nodeFlags) knobs(cmd *cobra.Command) (pcageo.Knobs, error) {
	k := pcageo.DefaultKnobs()
	if f.config != "" {
		file, err := os.Open(f.config)
		if err != nil {
			return k, err
		}
		defer file.Close()
		if k, err = pcageo.LoadKnobs(file); err != nil {
			return k, fmt.Errorf("%s: %w", f.config, err)
		}
	}
	fs := cmd.Flags()
	if fs.Changed("n-pca") {
		k.MinComponents = f.minComp
	}
	if fs.Changed("variance-threshold") {
		k.VarianceThreshold = f.threshold
	}
	if fs.Changed("pretty-show") {
		k.PrettyShow = f.pretty
	}
	if fs.Changed("delta-x") {
		k.DeltaX = f.deltaX
	}

	return k.Clamp(), nil
}

// newNode reads the OBJ inputs into slots and builds a node over them.
func (f *nodeFlags) newNode(cmd *cobra.Command, paths []string, sink *memhost.ErrorSink) (*pcageo.Node, error) {
	if len(paths) > pcageo.MaxInputs {
		return nil, fmt.Errorf("at most %d inputs, got %d", pcageo.MaxInputs, len(paths))
	}
	k, err := f.knobs(cmd)
	if err != nil {
		return nil, err
	}
	if f.epsilon < 0 || f.epsilon >= 1 {
		return nil, fmt.Errorf("--rank-epsilon must be in [0, 1), got %g", f.epsilon)
	}
	var solver pca.Solver
	switch strings.ToLower(f.solver) {
	case "gonum":
		solver = pca.GonumSolver{}
	case "jacobi":
		solver = pca.JacobiSolver{}
	default:
		return nil, fmt.Errorf("unsupported solver: %s", f.solver)
	}

	srcs := make([]*memhost.Source, len(paths))
	for i, p := range paths {
		m, err := meshio.ReadFile(p)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", p).Int("points", len(m.Points)).Int("faces", len(m.Faces)).Msg("read input")
		srcs[i] = memhost.NewSource(m)
	}

	return pcageo.New(memhost.SlotsOf(srcs...), sink,
		pcageo.WithKnobs(k),
		pcageo.WithLogger(log.Logger),
		pcageo.WithSolver(solver),
		pcageo.WithRankEpsilon(f.epsilon),
	), nil
}
