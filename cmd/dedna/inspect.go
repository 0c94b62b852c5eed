/*
 * inspect.go, part of DeDNA.
 *
 * Copyright 2026 The DeDNA Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/Eldergenix/DeDNA/helixgraph"
	v3 "github.com/Eldergenix/DeDNA/v3"
	"github.com/spf13/cobra"
)

var inspectFrom string

// inspectCmd describes the scene
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the steps, connectivity and hydrogen bonds of the helix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sceneOrSnapshot(inspectFrom)
		if err != nil {
			return err
		}
		return inspect(os.Stdout, s)
	},
}

func inspect(out io.Writer, s *dna.Scene) error {
	hb := helixgraph.HBondStats(s)
	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintln(w, "step\tposition\tpair\th-bonds\tnote")
	for i, st := range s.Steps {
		note := ""
		switch {
		case st.Indel:
			note = "indel site"
		case st.MutationSite:
			note = "mutation site"
		}
		fmt.Fprintf(w, "%d\t%d\t%c-%c\t%d\t%s\n", st.Offset, st.Position, st.Base1, st.Base2, hb.PerStep[i], note)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if v := s.Variant; v != nil {
		fmt.Fprintf(out, "\nvariant %s>%s %s\n", v.Ref, v.Alt, v.Gene)
	}
	fmt.Fprintf(out, "\n%d atoms, %d bonds, %d connected components\n", s.Len(), len(s.Bonds), len(helixgraph.New(s).Components()))
	if !s.Empty() {
		c := v3.Centroid(s.Coords()).RawRowView(0)
		fmt.Fprintf(out, "geometric center: %.2f %.2f %.2f\n", c[0], c[1], c[2])
	}
	fmt.Fprintf(out, "backbone continuous: %t\n", helixgraph.BackboneContinuous(s))
	fmt.Fprintf(out, "hydrogen bonds: %d, planar distance %.2f +- %.2f (%.2f-%.2f)\n", hb.Count, hb.Mean, hb.StdDev, hb.Min, hb.Max)
	for i, c := range hb.Histogram {
		if c > 0 {
			fmt.Fprintf(out, "  %.1f-%.1f\t%s %d\n", hb.Dividers[i], hb.Dividers[i+1], strings.Repeat("#", int(c)), int(c))
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectFrom, "from", "", "inspect a scene snapshot written by export instead of building one")
}
