/*
 * graph.go, part of DeDNA.
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

//Package helixgraph looks at a helix scene as a graph, atoms being nodes and bonds
//edges, to check its connectivity and to measure its hydrogen bonds.
package helixgraph

import (
	"math"

	dna "github.com/Eldergenix/DeDNA"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Node is an atom in a Graph. Its ID is the index of the atom in the scene.
type Node struct {
	*dna.Atom
	id int64
}

func (N *Node) ID() int64 {
	return N.id
}

//Edge is a bond in a Graph. Its weight is the bond length.
type Edge struct {
	F, T *Node
	Bond *dna.Bond
}

func (E Edge) From() graph.Node {
	return E.F
}

func (E Edge) To() graph.Node {
	return E.T
}

//ReversedEdge returns the edge with its ends switched. Bonds are not directional.
func (E Edge) ReversedEdge() graph.Edge {
	E.F, E.T = E.T, E.F
	return E
}

func (E Edge) Weight() float64 {
	return E.Bond.Length()
}

//Graph is an undirected weighted graph built from a scene.
type Graph struct {
	*simple.WeightedUndirectedGraph
	nodes []*Node
	index map[*dna.Atom]*Node
}

//New builds the graph of scene with the bonds of the given kinds, or with all the
//bonds if no kind is given. Every atom is a node, bonded or not.
func New(scene *dna.Scene, kinds ...dna.BondKind) *Graph {
	G := &Graph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		nodes:                   make([]*Node, scene.Len()),
		index:                   make(map[*dna.Atom]*Node, scene.Len()),
	}
	for i := 0; i < scene.Len(); i++ {
		n := &Node{Atom: scene.Atom(i), id: int64(i)}
		G.nodes[i] = n
		G.index[n.Atom] = n
		G.AddNode(n)
	}
	for _, b := range scene.Bonds {
		if len(kinds) > 0 && !isIn(kinds, b.Kind) {
			continue
		}
		f, ok1 := G.index[b.Start]
		t, ok2 := G.index[b.End]
		if !ok1 || !ok2 || f == t {
			continue
		}
		G.SetWeightedEdge(Edge{F: f, T: t, Bond: b})
	}
	return G
}

func isIn(kinds []dna.BondKind, k dna.BondKind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

//NodeOf returns the node of atom a, or nil if a is not in the graph.
func (G *Graph) NodeOf(a *dna.Atom) *Node {
	return G.index[a]
}

//Components returns the atoms of each connected component of the graph.
func (G *Graph) Components() [][]*dna.Atom {
	comps := topo.ConnectedComponents(G)
	ret := make([][]*dna.Atom, 0, len(comps))
	for _, c := range comps {
		atoms := make([]*dna.Atom, 0, len(c))
		for _, n := range c {
			atoms = append(atoms, n.(*Node).Atom)
		}
		ret = append(ret, atoms)
	}
	return ret
}

//Path returns the atoms along the shortest bonded path from a to b, both included,
//and its length. It returns nil if there is no such path.
func (G *Graph) Path(a, b *dna.Atom) ([]*dna.Atom, float64) {
	na, nb := G.NodeOf(a), G.NodeOf(b)
	if na == nil || nb == nil {
		return nil, 0
	}
	shortest := path.DijkstraFrom(na, G)
	nodes, length := shortest.To(nb.ID())
	if len(nodes) == 0 {
		return nil, 0
	}
	ret := make([]*dna.Atom, len(nodes))
	for i, n := range nodes {
		ret[i] = n.(*Node).Atom
	}
	return ret, length
}

//sugars returns the sugar of each step of strand, in step order.
func sugars(scene *dna.Scene, strand int) []*dna.Atom {
	ret := make([]*dna.Atom, len(scene.Steps))
	for _, a := range scene.Atoms {
		if a.Name == "S" && a.Strand == strand && a.Step >= 0 && a.Step < len(ret) {
			ret[a.Step] = a
		}
	}
	return ret
}

//StrandPath returns the sugars of strand (1 or 2) from the first to the last step,
//following only backbone links. It returns nil if the backbone is broken or the scene is empty.
func StrandPath(scene *dna.Scene, strand int) []*dna.Atom {
	s := sugars(scene, strand)
	if len(s) == 0 || s[0] == nil || s[len(s)-1] == nil {
		return nil
	}
	G := New(scene, dna.BackboneLink)
	p, _ := G.Path(s[0], s[len(s)-1])
	return p
}

//BackboneContinuous returns true if, on both strands, the backbone links join
//the sugars of consecutive steps and nothing else.
func BackboneContinuous(scene *dna.Scene) bool {
	if len(scene.Steps) == 0 {
		return true
	}
	G := New(scene, dna.BackboneLink)
	for strand := 1; strand <= 2; strand++ {
		s := sugars(scene, strand)
		for i, a := range s {
			if a == nil {
				return false
			}
			//a chain: the ends have one neighbor, the rest two.
			want := 2
			if i == 0 || i == len(s)-1 {
				want = 1
			}
			if len(s) == 1 {
				want = 0
			}
			if G.From(G.NodeOf(a).ID()).Len() != want {
				return false
			}
			if i > 0 && !G.HasEdgeBetween(G.NodeOf(a).ID(), G.NodeOf(s[i-1]).ID()) {
				return false
			}
		}
	}
	return G.Edges().Len() == 2*(len(scene.Steps)-1)
}
