/*
 * doc.go, part of DeDNA.
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

//Package viewer keeps a helix scene on screen and reacts to the user.
//
//A Controller holds the view state (rotation and zoom) and the small state machine
//that decides whether the helix rotates by itself or follows the pointer. A Loop owns
//a Controller, the current scene and the viewport, and is the only goroutine that
//touches them. Pointer, wheel, resize and generation requests reach it as events;
//generation runs in its own goroutine, in three phases, and a newer request supersedes
//(and cancels) an older one. Every change is rendered and handed to a Surface.
package viewer
