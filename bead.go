/*
 * bead.go, part of gobd.
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package bd

import (
	"fmt"

	v3 "github.com/rmera/gobd/v3"
)

/*As in the rest of the library, the "fundamental" accessors here panic on
 * out-of-bounds indexes instead of returning errors. A wrong index at this
 * level means the calling program is wrong and should crash.*/

//Bead is a coarse-grained spherical particle representing several consecutive
//residues of a protein chain. The coordinates are not stored here but in the
//Model, at the row given by the bead's index.
type Bead struct {
	Name   string
	Index  int     //row of the bead in the model coordinate matrix
	Radius float64 //A
	chain  *Chain
}

//Chain returns the chain owning the bead. Every bead belongs to exactly one
//chain, as beads are only created through a ChainFactory.
func (B *Bead) Chain() *Chain {
	return B.chain
}

//Model owns the beads of a system and their coordinates. Following the
//convention of the library, coordinates are kept in a single Nx3 matrix, apart
//from the rest of the per-bead information. The model is built by adding
//beads, and frozen on the first call to Coords, after which no more beads can
//be added (restraints and integrators hold on to the returned matrix).
type Model struct {
	beads  []*Bead
	data   []float64
	coords *v3.Matrix
}

//NewModel returns an empty model.
func NewModel() *Model {
	return new(Model)
}

//AddBead registers the bead b at position x,y,z and returns its index in the
//model. It panics if the model has already been frozen by a call to Coords.
func (M *Model) AddBead(b *Bead, x, y, z float64) int {
	if M.coords != nil {
		panic("goBD: Attempted to add a bead to a frozen model")
	}
	b.Index = len(M.beads)
	M.beads = append(M.beads, b)
	M.data = append(M.data, x, y, z)
	return b.Index
}

//Coords returns the coordinate matrix of the model, one row per bead. The
//first call freezes the model; the same matrix is returned on every
//subsequent call.
func (M *Model) Coords() *v3.Matrix {
	if M.coords == nil {
		if len(M.beads) == 0 {
			panic("goBD: Requested coordinates of an empty model")
		}
		m, err := v3.NewMatrix(M.data)
		if err != nil {
			panic(err.Error()) //can't happen, data grows 3 floats at a time
		}
		M.coords = m
	}
	return M.coords
}

//Len returns the number of beads in the model.
func (M *Model) Len() int {
	return len(M.beads)
}

//Bead returns the bead with index i. Panics if out of range.
func (M *Model) Bead(i int) *Bead {
	if i >= len(M.beads) {
		panic("goBD: Requested bead out of bounds")
	}
	return M.beads[i]
}

//Beads returns all beads in the model, in index order.
func (M *Model) Beads() []*Bead {
	return M.beads
}

//Chain is an ordered string of beads built from a protein sequence, together
//with the connectivity (spring) restraint holding consecutive beads at their
//rest distance.
type Chain struct {
	name  string
	beads []*Bead
	bond  *HarmonicBond
}

//Name returns the label of the chain.
func (C *Chain) Name() string {
	return C.name
}

//Len returns the number of beads in the chain.
func (C *Chain) Len() int {
	return len(C.beads)
}

//Bead returns the ith bead of the chain. Panics if out of range.
func (C *Chain) Bead(i int) *Bead {
	if i >= len(C.beads) {
		panic("goBD: Requested chain bead out of bounds")
	}
	return C.beads[i]
}

//First returns the first bead of the chain.
func (C *Chain) First() *Bead {
	return C.beads[0]
}

//Last returns the last bead of the chain.
func (C *Chain) Last() *Bead {
	return C.beads[len(C.beads)-1]
}

//Restraint returns the connectivity restraint of the chain.
func (C *Chain) Restraint() Restraint {
	return C.bond
}

//Indexes returns the model indexes of the beads of the chain, in chain order.
func (C *Chain) Indexes() []int {
	ret := make([]int, len(C.beads))
	for i, b := range C.beads {
		ret[i] = b.Index
	}
	return ret
}

//EndToEnd returns the distance between the centers of the first and last
//beads of the chain, given the model coordinates.
func (C *Chain) EndToEnd(coord *v3.Matrix) float64 {
	first := coord.VecView(C.First().Index)
	last := coord.VecView(C.Last().Index)
	return v3.Dist(first, last)
}

//Centroid returns the geometric center of the beads of the chain, given the
//model coordinates.
func (C *Chain) Centroid(coord *v3.Matrix) *v3.Matrix {
	cen := v3.Zeros(1)
	for _, b := range C.beads {
		cen.Add(cen.Dense, coord.VecView(b.Index))
	}
	cen.Scale(1/float64(len(C.beads)), cen.Dense)
	return cen
}

//CenterAt translates the chain so its geometric center lies at the given
//point. Only the rows of coord belonging to the chain are touched.
func (C *Chain) CenterAt(coord, center *v3.Matrix) {
	cen := C.Centroid(coord)
	delta := v3.Zeros(1)
	delta.Sub(center, cen)
	for _, b := range C.beads {
		row := coord.VecView(b.Index)
		row.Add(row.Dense, delta)
	}
}

//String returns a short description of the chain.
func (C *Chain) String() string {
	return fmt.Sprintf("chain %s: %d beads", C.name, len(C.beads))
}

//AllBeads returns the beads of all the given chains, in chain order, with
//duplicates removed.
func AllBeads(chains []*Chain) []*Bead {
	seen := make(map[int]bool)
	var ret []*Bead
	for _, c := range chains {
		for _, b := range c.beads {
			if seen[b.Index] {
				continue
			}
			seen[b.Index] = true
			ret = append(ret, b)
		}
	}
	return ret
}
