/*
 * factory.go, part of gobd.
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
	"strings"

	v3 "github.com/rmera/gobd/v3"
)

//ChainFactory builds strings of beads from protein sequences, registering the
//beads in a model and wiring the spring restraint that holds consecutive
//beads of a chain together.
type ChainFactory struct {
	model       *Model
	radius      float64 //default bead radius, A
	k           float64 //spring force coefficient, kcal/mol/A^2
	relRest     float64 //rest distance between bead centers, relative to the bead radius
	nresPerBead int
}

//NewChainFactory returns a factory creating beads of the given radius (A),
//one per nresPerBead residues, held by springs of stiffness k (kcal/mol/A^2)
//with a rest distance of relRest bead radii between consecutive bead centers.
func NewChainFactory(model *Model, radius, k, relRest float64, nresPerBead int) (*ChainFactory, error) {
	if model == nil {
		return nil, NewError("NewChainFactory", "Supplied a nil model")
	}
	if radius <= 0 || k <= 0 || relRest <= 0 || nresPerBead <= 0 {
		return nil, errorf("NewChainFactory", "All chain parameters must be positive: radius %4.2f, k %4.2f, relative rest distance %4.2f, residues per bead %d", radius, k, relRest, nresPerBead)
	}
	return &ChainFactory{model: model, radius: radius, k: k, relRest: relRest, nresPerBead: nresPerBead}, nil
}

//RestDistance returns the rest distance, in A, between the centers of
//consecutive beads of the chains made by the factory.
func (F *ChainFactory) RestDistance() float64 {
	return F.relRest * F.radius
}

//Create builds a chain named name from the protein sequence seq, with one
//bead every nresPerBead residues (the last bead takes whatever residues are
//left). The beads are laid out along the X axis at the rest distance,
//starting at the origin. The chain's connectivity restraint links each pair
//of consecutive beads.
func (F *ChainFactory) Create(seq, name string) (*Chain, error) {
	seq = strings.TrimSpace(seq)
	if len(seq) == 0 {
		return nil, NewError("ChainFactory.Create", "Empty sequence")
	}
	nbeads := (len(seq) + F.nresPerBead - 1) / F.nresPerBead
	chain := &Chain{name: name}
	rest := F.RestDistance()
	for i := 0; i < nbeads; i++ {
		b := &Bead{Name: fmt.Sprintf("%s_%d", name, i), Radius: F.radius, chain: chain}
		F.model.AddBead(b, float64(i)*rest, 0, 0)
		chain.beads = append(chain.beads, b)
	}
	bond := NewHarmonicBond(fmt.Sprintf("Connectivity-%s", name), F.k, rest)
	for i := 0; i < nbeads-1; i++ {
		bond.AddPair(chain.beads[i].Index, chain.beads[i+1].Index)
	}
	chain.bond = bond
	return chain, nil
}

//CreateCentered builds a chain as Create does, and then translates it so its
//geometric center lies at the given point.
func (F *ChainFactory) CreateCentered(seq, name string, center *v3.Matrix) (*Chain, error) {
	chain, err := F.Create(seq, name)
	if err != nil {
		return nil, errDecorate(err, "CreateCentered")
	}
	//Coords freezes the model, so CreateCentered must come after all the
	//plain Create calls for the same model.
	chain.CenterAt(F.model.Coords(), center)
	return chain, nil
}
