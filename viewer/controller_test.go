/*
 * controller_test.go, part of DeDNA.
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
	"testing"
)

func TestControllerDrag(Te *testing.T) {
	opts := DefaultOptions()
	C := NewController(opts)
	if C.State() != Autorotating || !C.AutoRotating() {
		Te.Fatal("a new controller should autorotate")
	}
	if C.PointerMove(10, 10) {
		Te.Error("moving without a drag should not rotate")
	}
	C.PointerDown(100, 100)
	if C.State() != Dragging || C.AutoRotating() {
		Te.Error("PointerDown should start a drag")
	}
	if C.Tick() {
		Te.Error("ticks should not rotate while dragging")
	}
	C.PointerMove(130, 90)
	v := C.View()
	if math.Abs(v.RotationY-30*opts.Sensitivity) > 1e-12 || math.Abs(v.RotationX+10*opts.Sensitivity) > 1e-12 {
		Te.Errorf("unexpected rotation after drag: %+v", v)
	}
	C.PointerMove(140, 90)
	if math.Abs(C.View().RotationY-40*opts.Sensitivity) > 1e-12 {
		Te.Errorf("moves should accumulate: %+v", C.View())
	}
	C.PointerLeave()
	if C.State() != Autorotating {
		Te.Error("PointerLeave should end the drag")
	}
	C.PointerDown(0, 0)
	C.PointerUp()
	if C.State() != Autorotating {
		Te.Error("PointerUp should end the drag")
	}
}

func TestControllerTick(Te *testing.T) {
	opts := DefaultOptions()
	C := NewController(opts)
	for i := 0; i < 5; i++ {
		if !C.Tick() {
			Te.Fatal("an idle controller should rotate on tick")
		}
	}
	if math.Abs(C.View().RotationY-5*opts.AutoRotate) > 1e-12 {
		Te.Errorf("unexpected rotation %f", C.View().RotationY)
	}
	C.SetPending(true)
	if C.AutoRotating() || C.Tick() {
		Te.Error("no rotation while a generation is pending")
	}
	C.SetPending(false)
	if !C.Tick() {
		Te.Error("rotation should resume when the generation is done")
	}
	if C.View().RotationX != 0 {
		Te.Error("ticks should not change the X rotation")
	}
}

func TestControllerZoom(Te *testing.T) {
	opts := DefaultOptions()
	C := NewController(opts)
	if C.View().Zoom != opts.InitialZoom {
		Te.Errorf("initial zoom %f", C.View().Zoom)
	}
	C.Zoom(-100)
	if math.Abs(C.View().Zoom-(opts.InitialZoom+100*opts.ZoomStep)) > 1e-12 {
		Te.Errorf("wheel up should zoom in, got %f", C.View().Zoom)
	}
	C.PointerDown(0, 0)
	C.Zoom(1e9)
	if C.View().Zoom != opts.MinZoom {
		Te.Errorf("zoom should be clamped to %f, got %f", opts.MinZoom, C.View().Zoom)
	}
	C.SetZoom(100)
	if C.View().Zoom != opts.MaxZoom {
		Te.Errorf("zoom should be clamped to %f, got %f", opts.MaxZoom, C.View().Zoom)
	}
	if rv := C.RenderView(); rv.Zoom != opts.MaxZoom {
		Te.Errorf("render view out of sync: %+v", rv)
	}
}

func TestControllerZoomIdempotent(Te *testing.T) {
	opts := DefaultOptions()
	for _, z := range []float64{opts.MinZoom, opts.MaxZoom, opts.MinZoom - 1, opts.MaxZoom + 1, 1.7} {
		C := NewController(opts)
		C.SetZoom(z)
		once := C.View()
		C.SetZoom(z)
		if C.View() != once {
			Te.Errorf("SetZoom(%f) twice gave %+v, once %+v", z, C.View(), once)
		}
	}
	C := NewController(opts)
	C.SetZoom(opts.MaxZoom)
	C.Zoom(-10)
	once := C.View()
	C.Zoom(-10)
	if C.View() != once || once.Zoom != opts.MaxZoom {
		Te.Errorf("zooming in at the limit should not change the view: %+v %+v", once, C.View())
	}
	C.SetZoom(opts.MinZoom)
	C.Zoom(10)
	once = C.View()
	C.Zoom(10)
	if C.View() != once || once.Zoom != opts.MinZoom {
		Te.Errorf("zooming out at the limit should not change the view: %+v %+v", once, C.View())
	}
}
