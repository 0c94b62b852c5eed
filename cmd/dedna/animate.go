/*
 * animate.go, part of DeDNA.
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
	"context"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/Eldergenix/DeDNA/render"
	"github.com/Eldergenix/DeDNA/surface"
	"github.com/Eldergenix/DeDNA/viewer"
	"github.com/spf13/cobra"
)

var (
	animateOut string
	frames     int
	delay      int
)

// animateCmd records a full turn of the helix as it spins in the viewer
var animateCmd = &cobra.Command{
	Use:     "animate",
	Short:   "Record a full turn of the rotating helix as an animated GIF",
	Example: `  dedna animate -p 7676154 --ref C --alt T --gene TP53 -o tp53.gif --frames 90`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if frames <= 0 {
			return fmt.Errorf("need at least one frame, got %d", frames)
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		grab := &grabber{canvas: surface.NewImage(cfg.Width, cfg.Height, nil), want: frames, stop: cancel}

		opts := cfg.ViewerOptions()
		opts.AutoRotate = 2 * math.Pi / float64(frames)
		if verbose {
			opts.Progress = func(p viewer.Phase) { log.Printf("generation: %s", p) }
		}
		loop := viewer.NewLoop(grab, cfg.Viewport(), opts)
		loop.Request(viewer.Request{Position: position, Variant: variant(), WindowSteps: cfg.Window})
		if err := loop.Run(ctx); err != context.Canceled {
			return err
		}
		f, err := os.Create(animateOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := surface.WriteGIF(f, grab.canvas.Frames(), delay); err != nil {
			return err
		}
		log.Printf("%s: %d frames", animateOut, len(grab.canvas.Frames()))
		return f.Close()
	},
}

// grabber records the frames drawn by a viewer once there is something to see,
// and stops the viewer when it has enough of them.
type grabber struct {
	canvas *surface.Canvas
	want   int
	got    int
	stop   context.CancelFunc
}

func (G *grabber) Draw(prims []render.Primitive, vp render.Viewport) error {
	if len(prims) == 0 || G.got >= G.want {
		return nil
	}
	G.canvas.Record = true
	err := G.canvas.Draw(prims, vp)
	G.got++
	if G.got == G.want {
		G.stop()
	}
	return err
}

func init() {
	rootCmd.AddCommand(animateCmd)

	animateCmd.Flags().StringVarP(&animateOut, "out", "o", "helix.gif", "output GIF file")
	animateCmd.Flags().IntVar(&frames, "frames", 60, "frames per turn")
	animateCmd.Flags().IntVar(&delay, "delay", 4, "delay between frames, hundredths of a second")
}
