// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rerapony/Nuke-KeenTools-sub003/host/memhost"
)

func inspectCmd() *cobra.Command {
	var f nodeFlags
	cmd := &cobra.Command{
		Use:   "inspect in1.obj in2.obj [...]",
		Short: "Print the fitted spectrum and the component count the knobs select",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sink memhost.ErrorSink
			node, err := f.newNode(cmd, args, &sink)
			if err != nil {
				return err
			}
			a, err := node.Analyze(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "samples: %d\npoints:  %d\nrank:    %d\nK:       %d (n_pca=%d, variance_threshold=%g)\n",
				len(a.Slots), a.Points, a.Model.Rank(), a.K, a.Knobs.MinComponents, a.Knobs.VarianceThreshold)

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tlambda\tsigma\tproportion\temitted")
			p := a.Model.Proportions()
			for j, c := range a.Model.Components {
				fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.4f\t%t\n", j+1, c.Value, math.Sqrt(c.Value), p[j], j < a.K)
			}

			return tw.Flush()
		},
	}
	f.register(cmd)

	return cmd
}
