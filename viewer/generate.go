/*
 * generate.go, part of DeDNA.
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
	"time"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/Eldergenix/DeDNA/render"
)

//Phase is a stage of the generation of a scene.
type Phase int

const (
	Locate Phase = iota
	Extract
	Compute
	Done
)

var phaseNames = [...]string{"locate", "extract", "compute", "done"}

func (P Phase) String() string {
	if P < 0 || int(P) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[P]
}

//Request describes the scene to generate.
type Request struct {
	Position    int64
	Variant     *dna.Variant //nil for none
	WindowSteps int
}

//result is what a generation goroutine sends back to the loop: either the
//announcement of a phase or, with phase Done, the finished scene.
type result struct {
	seq   uint64
	phase Phase
	scene *dna.Scene
}

//request starts the generation of a new scene, cancelling the one in progress.
func (L *Loop) request(ctx context.Context, req Request) {
	if L.cancel != nil {
		L.cancel()
		L.logger.Printf("viewer: request %d superseded", L.seq)
	}
	L.seq++
	gctx, cancel := context.WithCancel(ctx)
	L.cancel = cancel
	L.ctrl.SetPending(true)
	if L.opts.BlankWhilePending {
		L.blank = true
	}
	go generate(gctx, L.seq, req, L.opts.PhaseDelay, L.results)
	L.draw()
}

//receive handles a message from a generation goroutine. Messages from
//superseded requests are dropped.
func (L *Loop) receive(r result) {
	if r.seq != L.seq {
		L.logger.Printf("viewer: dropping %s from superseded request %d", r.phase, r.seq)
		return
	}
	if r.phase != Done {
		L.progress(r.phase)
		return
	}
	L.cancel()
	L.cancel = nil
	L.scene = r.scene
	L.blank = false
	L.ctrl.SetPending(false)
	if L.opts.AutoFit {
		L.ctrl.SetZoom(render.FitZoom(L.scene, L.vp, L.opts.Render))
	}
	L.progress(Done)
	L.draw()
}

func (L *Loop) progress(p Phase) {
	if L.opts.Progress != nil {
		L.opts.Progress(p)
	}
}

//generate runs the phases of one request. Each phase only starts once the previous
//one has finished, and nothing is sent once ctx is done.
func generate(ctx context.Context, seq uint64, req Request, delay time.Duration, out chan<- result) {
	for _, ph := range []Phase{Locate, Extract} {
		if !report(ctx, out, result{seq: seq, phase: ph}) || !sleep(ctx, delay) {
			return
		}
	}
	if !report(ctx, out, result{seq: seq, phase: Compute}) {
		return
	}
	scene := dna.Generate(req.Position, req.Variant, req.WindowSteps)
	report(ctx, out, result{seq: seq, phase: Done, scene: scene})
}

func report(ctx context.Context, out chan<- result, r result) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
