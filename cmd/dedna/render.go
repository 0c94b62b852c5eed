/*
 * render.go, part of DeDNA.
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
	"os"
	"path/filepath"
	"strings"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/Eldergenix/DeDNA/render"
	"github.com/Eldergenix/DeDNA/surface"
	"github.com/spf13/cobra"
)

var (
	renderOut  string
	renderFrom string
	rotX       float64
	rotY       float64
	zoom       float64
	phase      float64
)

// renderCmd draws one frame of the helix
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw one frame of the helix to an SVG or PNG file",
	Example: `  dedna render -p 43045712 --ref G --alt A --gene BRCA1 -o brca1.svg
  dedna render --from helix.json.zst --roty 1.2 -o helix.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sceneOrSnapshot(renderFrom)
		if err != nil {
			return err
		}
		return renderFrame(s, renderOut)
	},
}

func renderFrame(s *dna.Scene, out string) error {
	ext := strings.ToLower(filepath.Ext(out))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("unknown image format %q, use .svg or .png", filepath.Ext(out))
	}
	opts := cfg.RenderOptions()
	opts.Phase = phase
	vp := cfg.Viewport()
	z := zoom
	if z <= 0 {
		z = clampZoom(render.FitZoom(s, vp, opts))
	}
	view := render.View{RotationX: rotX, RotationY: rotY, Zoom: z}
	prims := render.Render(s, view, vp, opts)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if ext == ".svg" {
		c := surface.NewSVG(cfg.Width, cfg.Height, nil)
		c.Draw(prims, vp)
		err = c.WriteSVG(f)
	} else {
		c := surface.NewImage(cfg.Width, cfg.Height, nil)
		c.Draw(prims, vp)
		err = c.WritePNG(f)
	}
	if err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	fmt.Printf("%s: %d primitives, zoom %.2f\n", out, len(prims), z)
	return nil
}

func clampZoom(z float64) float64 {
	if z < cfg.View.MinZoom {
		return cfg.View.MinZoom
	}
	if z > cfg.View.MaxZoom {
		return cfg.View.MaxZoom
	}
	return z
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "helix.svg", "output file, .svg or .png")
	renderCmd.Flags().StringVar(&renderFrom, "from", "", "draw a scene snapshot written by export instead of building one")
	renderCmd.Flags().Float64Var(&rotX, "rotx", 0.35, "rotation around the horizontal axis, radians")
	renderCmd.Flags().Float64Var(&rotY, "roty", 0, "rotation around the helix axis, radians")
	renderCmd.Flags().Float64Var(&zoom, "zoom", 0, "zoom; 0 fits the helix in the image")
	renderCmd.Flags().Float64Var(&phase, "phase", 1.57, "phase of the mutation-site pulse, radians")
}
