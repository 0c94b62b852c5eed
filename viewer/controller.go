/*
 * controller.go, part of DeDNA.
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
	"math"

	"github.com/Eldergenix/DeDNA/render"
)

//State is the interaction state of a Controller.
type State int

const (
	Autorotating State = iota
	Dragging
)

func (S State) String() string {
	if S == Dragging {
		return "dragging"
	}
	return "autorotating"
}

//ViewState is the orientation and zoom of the scene. Angles in radians.
type ViewState struct {
	RotationX float64
	RotationY float64
	Zoom      float64
}

//Controller turns pointer, wheel and timer input into a ViewState.
//It is not safe for concurrent use; a Loop serializes access to it.
type Controller struct {
	view    ViewState
	state   State
	pending bool
	lastX   float64
	lastY   float64
	opts    Options
}

//NewController returns an autorotating Controller with no rotation and the
//initial zoom of opts.
func NewController(opts Options) *Controller {
	C := &Controller{opts: opts}
	C.view.Zoom = C.clamp(opts.InitialZoom)
	return C
}

//View returns the current view state.
func (C *Controller) View() ViewState {
	return C.view
}

//RenderView returns the view state in the form the renderer takes.
func (C *Controller) RenderView() render.View {
	return render.View{RotationX: C.view.RotationX, RotationY: C.view.RotationY, Zoom: C.view.Zoom}
}

//State returns the interaction state.
func (C *Controller) State() State {
	return C.state
}

//PointerDown starts a drag at x, y.
func (C *Controller) PointerDown(x, y float64) {
	C.state = Dragging
	C.lastX, C.lastY = x, y
}

//PointerMove rotates the view by the displacement since the last pointer position,
//if a drag is in progress. It returns true if the view changed.
func (C *Controller) PointerMove(x, y float64) bool {
	if C.state != Dragging {
		return false
	}
	dx, dy := x-C.lastX, y-C.lastY
	C.lastX, C.lastY = x, y
	if dx == 0 && dy == 0 {
		return false
	}
	C.view.RotationY += dx * C.opts.Sensitivity
	C.view.RotationX += dy * C.opts.Sensitivity
	return true
}

//PointerUp ends a drag.
func (C *Controller) PointerUp() {
	C.state = Autorotating
}

//PointerLeave ends a drag, as the pointer will not come back with the button state we know.
func (C *Controller) PointerLeave() {
	C.state = Autorotating
}

//SetPending tells the controller whether a generation is in progress.
//No auto-rotation happens while one is.
func (C *Controller) SetPending(pending bool) {
	C.pending = pending
}

//Pending returns true if a generation is in progress.
func (C *Controller) Pending() bool {
	return C.pending
}

//AutoRotating returns true if ticks currently rotate the view.
func (C *Controller) AutoRotating() bool {
	return C.state == Autorotating && !C.pending
}

//Tick advances the auto-rotation by one step and returns true if it did.
func (C *Controller) Tick() bool {
	if !C.AutoRotating() {
		return false
	}
	C.view.RotationY = math.Mod(C.view.RotationY+C.opts.AutoRotate, 2*math.Pi)
	return true
}

//Zoom changes the zoom by -delta times the zoom step, so positive
//deltas (wheel down) zoom out. The result is clamped.
func (C *Controller) Zoom(delta float64) {
	C.view.Zoom = C.clamp(C.view.Zoom - delta*C.opts.ZoomStep)
}

//SetZoom sets the zoom, clamped to the allowed range.
func (C *Controller) SetZoom(z float64) {
	C.view.Zoom = C.clamp(z)
}

func (C *Controller) clamp(z float64) float64 {
	return math.Max(C.opts.MinZoom, math.Min(C.opts.MaxZoom, z))
}
