/*
 * files.go, part of DeDNA.
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

package dna

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

//WriteXYZ writes the atoms of mol to out in XYZ format. The comment line
//carries the given title.
func WriteXYZ(out io.Writer, mol Atomer, title string) error {
	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(w, "%-4d\n%s\n", mol.Len(), title); err != nil {
		return errDecorate(err, "WriteXYZ")
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		_, err := fmt.Fprintf(w, "%-2s  %8.3f%8.3f%8.3f \n", at.Element.Symbol(), at.X, at.Y, at.Z)
		if err != nil {
			return errDecorate(err, "WriteXYZ")
		}
	}
	if err := w.Flush(); err != nil {
		return errDecorate(err, "WriteXYZ")
	}
	return nil
}

//XYZWrite writes the scene in an XYZ file with name xyzname which will
//be created for that. If the file exists it will be overwritten.
func XYZWrite(xyzname string, scene *Scene) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return errDecorate(err, "XYZWrite")
	}
	defer out.Close()
	err = WriteXYZ(out, scene, sceneTitle(scene))
	if err != nil {
		return errDecorate(err, "XYZWrite")
	}
	return out.Close()
}

//sceneTitle describes the window and variant of a scene in one line.
func sceneTitle(scene *Scene) string {
	title := fmt.Sprintf("DeDNA helix at %d, %d steps", scene.Center, len(scene.Steps))
	if v := scene.Variant; v != nil {
		title += fmt.Sprintf(", variant %s>%s", v.Ref, v.Alt)
		if v.Gene != "" {
			title += " (" + v.Gene + ")"
		}
	}
	return title
}
