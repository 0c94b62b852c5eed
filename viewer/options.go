/*
 * options.go, part of DeDNA.
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

package viewer

import (
	"log"
	"time"

	"github.com/Eldergenix/DeDNA/render"
)

//Options tune a Controller and a Loop.
type Options struct {
	Sensitivity  float64       //radians per pixel of pointer drag
	AutoRotate   float64       //radians added to the Y rotation on each tick
	ZoomStep     float64       //zoom change per unit of wheel delta
	MinZoom      float64
	MaxZoom      float64
	InitialZoom  float64
	TickInterval time.Duration //period of the auto-rotation timer
	PulseSpeed   float64       //radians added to the mutation-site pulse on each tick
	PhaseDelay   time.Duration //pause after each of the Locate and Extract phases

	//AutoFit sets the zoom that fits each new scene in the viewport when it is committed.
	AutoFit bool

	//BlankWhilePending hides the current scene as soon as a new one is requested,
	//instead of keeping it until the new one is ready.
	BlankWhilePending bool

	//Progress, if not nil, is called from the loop goroutine when the latest
	//request enters a phase. It must not block.
	Progress func(Phase)

	Logger *log.Logger //log.Default() if nil
	Render render.Options
}

//DefaultOptions returns the options used when nothing else is given.
func DefaultOptions() Options {
	return Options{
		Sensitivity:  0.01,
		AutoRotate:   0.01,
		ZoomStep:     0.001,
		MinZoom:      0.3,
		MaxZoom:      4,
		InitialZoom:  1,
		TickInterval: 16 * time.Millisecond,
		PulseSpeed:   0.1,
		PhaseDelay:   150 * time.Millisecond,
		Render:       render.DefaultOptions(),
	}
}

func (O Options) logger() *log.Logger {
	if O.Logger == nil {
		return log.Default()
	}
	return O.Logger
}
