/*
 * loop.go, part of DeDNA.
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
	"context"
	"log"
	"time"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/Eldergenix/DeDNA/render"
)

//Surface receives the primitives of each rendered frame, sorted back to front.
//prims is nil when the viewport has no area.
type Surface interface {
	Draw(prims []render.Primitive, vp render.Viewport) error
}

//Loop is the event loop of a viewer. All its methods can be called from any goroutine;
//they hand their event to the goroutine running Run and return without waiting for it
//to be processed. Events sent after Run returned are dropped.
type Loop struct {
	ctrl    *Controller
	scene   *dna.Scene
	vp      render.Viewport
	surface Surface
	opts    Options
	logger  *log.Logger

	phase  float64 //of the mutation-site pulse
	blank  bool
	seq    uint64
	cancel context.CancelFunc
	ticker *time.Ticker

	events  chan func(context.Context)
	results chan result
	done    chan struct{}
}

//NewLoop returns a Loop that draws on surface, for a viewport of size vp.
func NewLoop(surface Surface, vp render.Viewport, opts Options) *Loop {
	return &Loop{
		ctrl:    NewController(opts),
		vp:      vp,
		surface: surface,
		opts:    opts,
		logger:  opts.logger(),
		events:  make(chan func(context.Context), 64),
		results: make(chan result, 8),
		done:    make(chan struct{}),
	}
}

//Run processes events until ctx is done, and returns ctx's error. It must be called once.
func (L *Loop) Run(ctx context.Context) error {
	defer close(L.done)
	defer L.stopTicker()
	L.syncTicker()
	L.draw()
	for {
		var tick <-chan time.Time
		if L.ticker != nil {
			tick = L.ticker.C
		}
		select {
		case <-ctx.Done():
			if L.cancel != nil {
				L.cancel()
			}
			return ctx.Err()
		case ev := <-L.events:
			ev(ctx)
		case r := <-L.results:
			L.receive(r)
		case <-tick:
			if L.ctrl.Tick() {
				L.phase += L.opts.PulseSpeed
				L.draw()
			}
		}
		L.syncTicker()
	}
}

//send queues ev for the loop goroutine. It returns false if the loop is gone.
func (L *Loop) send(ev func(context.Context)) bool {
	select {
	case L.events <- ev:
		return true
	case <-L.done:
		return false
	}
}

//PointerDown starts a drag.
func (L *Loop) PointerDown(x, y float64) {
	L.send(func(context.Context) { L.ctrl.PointerDown(x, y) })
}

//PointerMove rotates the scene if a drag is in progress.
func (L *Loop) PointerMove(x, y float64) {
	L.send(func(context.Context) {
		if L.ctrl.PointerMove(x, y) {
			L.draw()
		}
	})
}

//PointerUp ends a drag.
func (L *Loop) PointerUp() {
	L.send(func(context.Context) { L.ctrl.PointerUp() })
}

//PointerLeave ends a drag.
func (L *Loop) PointerLeave() {
	L.send(func(context.Context) { L.ctrl.PointerLeave() })
}

//Wheel zooms by delta wheel units, see Controller.Zoom.
func (L *Loop) Wheel(delta float64) {
	L.send(func(context.Context) {
		L.ctrl.Zoom(delta)
		L.draw()
	})
}

//Resize changes the viewport.
func (L *Loop) Resize(vp render.Viewport) {
	L.send(func(context.Context) {
		L.vp = vp
		L.draw()
	})
}

//Request asks for a new scene. It supersedes any request still in progress.
func (L *Loop) Request(req Request) {
	L.send(func(ctx context.Context) { L.request(ctx, req) })
}

//Snapshot returns the view state and scene currently held by the loop, waiting for the
//loop to answer. ok is false if the loop is not running anymore.
func (L *Loop) Snapshot() (view ViewState, scene *dna.Scene, ok bool) {
	type snap struct {
		view  ViewState
		scene *dna.Scene
	}
	reply := make(chan snap, 1)
	if !L.send(func(context.Context) { reply <- snap{L.ctrl.View(), L.scene} }) {
		return ViewState{}, nil, false
	}
	select {
	case s := <-reply:
		return s.view, s.scene, true
	case <-L.done:
		return ViewState{}, nil, false
	}
}

//syncTicker keeps the ticker running exactly while the controller auto-rotates.
func (L *Loop) syncTicker() {
	if L.ctrl.AutoRotating() {
		if L.ticker == nil && L.opts.TickInterval > 0 {
			L.ticker = time.NewTicker(L.opts.TickInterval)
		}
		return
	}
	L.stopTicker()
}

func (L *Loop) stopTicker() {
	if L.ticker != nil {
		L.ticker.Stop()
		L.ticker = nil
	}
}

//draw renders the current state and hands it to the surface.
func (L *Loop) draw() {
	scene := L.scene
	if L.blank {
		scene = nil
	}
	opts := L.opts.Render
	opts.Phase = L.phase
	prims := render.Render(scene, L.ctrl.RenderView(), L.vp, opts)
	if err := L.surface.Draw(prims, L.vp); err != nil {
		L.logger.Printf("viewer: draw: %v", err)
	}
}
