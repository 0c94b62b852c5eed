/*
 * json.go, part of DeDNA.
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
	"encoding/json"
	"fmt"
	"image/color"
	"io"

	dna "github.com/Eldergenix/DeDNA"
)

//A ready-to-serialize container for an atom.
type Atom struct {
	ID           string
	Name         string
	Element      string
	Coords       []float64
	Size         float64
	Color        [4]uint8
	Charge       float64 `json:",omitempty"`
	MutationSite bool    `json:",omitempty"`
	Strand       int
	Step         int
}

//A ready-to-serialize container for a bond. Start and End are atom IDs.
type Bond struct {
	ID    string
	Start string
	End   string
	Kind  string
}

//A ready-to-serialize container for a helix step.
type Step struct {
	Index        int
	Offset       int
	Position     int64
	Base1        string
	Base2        string
	MutationSite bool `json:",omitempty"`
	Indel        bool `json:",omitempty"`
}

//Scene is the serialized form of a dna.Scene.
type Scene struct {
	Center  int64
	Variant *dna.Variant `json:",omitempty"`
	Steps   []Step
	Atoms   []Atom
	Bonds   []Bond
}

//FromScene puts s in a ready-to-serialize container.
func FromScene(s *dna.Scene) *Scene {
	J := &Scene{
		Center:  s.Center,
		Variant: s.Variant,
		Steps:   make([]Step, 0, len(s.Steps)),
		Atoms:   make([]Atom, 0, s.Len()),
		Bonds:   make([]Bond, 0, len(s.Bonds)),
	}
	for _, st := range s.Steps {
		J.Steps = append(J.Steps, Step{
			Index:        st.Index,
			Offset:       st.Offset,
			Position:     st.Position,
			Base1:        string(st.Base1),
			Base2:        string(st.Base2),
			MutationSite: st.MutationSite,
			Indel:        st.Indel,
		})
	}
	for _, a := range s.Atoms {
		J.Atoms = append(J.Atoms, Atom{
			ID:           a.ID,
			Name:         a.Name,
			Element:      a.Element.String(),
			Coords:       []float64{a.X, a.Y, a.Z},
			Size:         a.Size,
			Color:        [4]uint8{a.Color.R, a.Color.G, a.Color.B, a.Color.A},
			Charge:       a.Charge,
			MutationSite: a.IsMutationSite,
			Strand:       a.Strand,
			Step:         a.Step,
		})
	}
	for _, b := range s.Bonds {
		J.Bonds = append(J.Bonds, Bond{ID: b.ID, Start: b.Start.ID, End: b.End.ID, Kind: b.Kind.String()})
	}
	return J
}

//ToScene rebuilds the scene in J. It returns an error if an atom or bond is malformed or a
//bond refers to an atom that is not in the snapshot.
func (J *Scene) ToScene() (*dna.Scene, error) {
	s := &dna.Scene{
		Center:  J.Center,
		Variant: J.Variant,
		Steps:   make([]dna.Step, 0, len(J.Steps)),
		Atoms:   make([]*dna.Atom, 0, len(J.Atoms)),
		Bonds:   make([]*dna.Bond, 0, len(J.Bonds)),
	}
	for _, st := range J.Steps {
		if len(st.Base1) != 1 || len(st.Base2) != 1 {
			return nil, &Error{fmt.Sprintf("step %d: bases must be one letter", st.Index), "", []string{"ToScene"}}
		}
		s.Steps = append(s.Steps, dna.Step{
			Index:        st.Index,
			Offset:       st.Offset,
			Position:     st.Position,
			Base1:        st.Base1[0],
			Base2:        st.Base2[0],
			MutationSite: st.MutationSite,
			Indel:        st.Indel,
		})
	}
	byid := make(map[string]*dna.Atom, len(J.Atoms))
	for _, a := range J.Atoms {
		el, err := dna.ParseElement(a.Element)
		if err != nil {
			return nil, errDecorate(err, "ToScene")
		}
		if _, dup := byid[a.ID]; dup {
			return nil, &Error{fmt.Sprintf("atom ID %s is repeated", a.ID), "", []string{"ToScene"}}
		}
		if len(a.Coords) != 3 {
			return nil, &Error{fmt.Sprintf("atom %s: %d coordinates", a.ID, len(a.Coords)), "", []string{"ToScene"}}
		}
		at := &dna.Atom{
			Point3D:        dna.Point3D{X: a.Coords[0], Y: a.Coords[1], Z: a.Coords[2]},
			ID:             a.ID,
			Name:           a.Name,
			Element:        el,
			Size:           a.Size,
			Color:          color.RGBA{a.Color[0], a.Color[1], a.Color[2], a.Color[3]},
			Charge:         a.Charge,
			IsMutationSite: a.MutationSite,
			Strand:         a.Strand,
			Step:           a.Step,
		}
		byid[a.ID] = at
		s.Atoms = append(s.Atoms, at)
	}
	for _, b := range J.Bonds {
		kind, err := dna.ParseBondKind(b.Kind)
		if err != nil {
			return nil, errDecorate(err, "ToScene")
		}
		start, ok1 := byid[b.Start]
		end, ok2 := byid[b.End]
		if !ok1 || !ok2 {
			return nil, &Error{fmt.Sprintf("bond %s refers to a missing atom", b.ID), "", []string{"ToScene"}}
		}
		s.Bonds = append(s.Bonds, &dna.Bond{ID: b.ID, Start: start, End: end, Kind: kind})
	}
	return s, nil
}

//Write serializes s as JSON to out.
func Write(out io.Writer, s *dna.Scene) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(FromScene(s)); err != nil {
		return errDecorate(err, "Write")
	}
	return nil
}

//Read reads a JSON snapshot from in and rebuilds the scene.
func Read(in io.Reader) (*dna.Scene, error) {
	J := new(Scene)
	dec := json.NewDecoder(in)
	if err := dec.Decode(J); err != nil {
		return nil, errDecorate(err, "Read")
	}
	s, err := J.ToScene()
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return s, nil
}
