/*
 * errors.go, part of DeDNA.
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

package scenejson

import (
	"fmt"

	dna "github.com/Eldergenix/DeDNA"
)

//Error is the error type of the package. It implements dna.Error.
type Error struct {
	message  string
	filename string //the file with problems, or empty string if none.
	deco     []string
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("scene snapshot error: %s", err.message)
	}
	return fmt.Sprintf("scene snapshot %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated with the error, if any.
func (err *Error) FileName() string { return err.filename }

//errDecorate decorates err with the caller's name if it implements dna.Error.
//Otherwise it puts the error in a new Error.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(dna.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return &Error{err.Error(), "", []string{caller}}
}

//withFile sets the file name of err, if it is an Error without one.
func withFile(err error, name string) error {
	if e, ok := err.(*Error); ok && e.filename == "" {
		e.filename = name
	}
	return err
}
