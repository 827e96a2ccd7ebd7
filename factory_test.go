/*
 * factory_test.go, part of gobd.
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
	"math"
	"testing"

	v3 "github.com/rmera/gobd/v3"
)

func TestChainFactory(Te *testing.T) {
	model := NewModel()
	fac, err := NewChainFactory(model, 10.0, 5.0, 3.0, 20)
	if err != nil {
		Te.Fatal(err)
	}
	seq := "MSDQSQEPTMEEILASIRRIISEDDAPAEPAAEAAPPPPPEPEPEPVSFDDEVLELTDPI" //60 residues
	chain, err := fac.Create(seq, "test_0")
	if err != nil {
		Te.Fatal(err)
	}
	if chain.Len() != 3 {
		Te.Errorf("60 residues at 20 per bead should give 3 beads, got %d", chain.Len())
	}
	//61 residues: the leftover residue gets its own bead
	chain2, err := fac.Create(seq+"A", "test_1")
	if err != nil {
		Te.Fatal(err)
	}
	if chain2.Len() != 4 {
		Te.Errorf("61 residues at 20 per bead should give 4 beads, got %d", chain2.Len())
	}
	if model.Len() != 7 {
		Te.Errorf("Model should own the beads of both chains (7), got %d", model.Len())
	}
	for i := 0; i < chain.Len(); i++ {
		if chain.Bead(i).Chain() != chain {
			Te.Error("Every bead should know the one chain owning it")
		}
	}
	coord := model.Coords()
	rest := fac.RestDistance()
	if rest != 30.0 {
		Te.Errorf("Rest distance should be 3 radii (30 A), got %4.2f", rest)
	}
	for i := 0; i < chain.Len()-1; i++ {
		d := v3.Dist(coord.VecView(chain.Bead(i).Index), coord.VecView(chain.Bead(i+1).Index))
		if math.Abs(d-rest) > 1e-12 {
			Te.Errorf("Consecutive beads should start at the rest distance, got %4.2f", d)
		}
	}
	if chain.EndToEnd(coord) != 2*rest {
		Te.Errorf("A straight 3-bead chain should have an end-to-end distance of 2 rest distances, got %4.2f", chain.EndToEnd(coord))
	}
	if chain.First() != chain.Bead(0) || chain.Last() != chain.Bead(chain.Len()-1) {
		Te.Error("First and Last should return the terminal beads of the chain")
	}
	if d := v3.Dist(coord.VecView(chain.First().Index), coord.VecView(chain.Last().Index)); d != chain.EndToEnd(coord) {
		Te.Errorf("End-to-end distance should span First to Last, got %4.2f", d)
	}
}

func TestChainCentering(Te *testing.T) {
	model := NewModel()
	fac, err := NewChainFactory(model, 10.0, 5.0, 3.0, 20)
	if err != nil {
		Te.Fatal(err)
	}
	chain, err := fac.Create("MSDQSQEPTMEEILASIRRIISEDDAPAEPAAEAAPPPPPEPEPEPVSFDDEVLELTDPI", "cen_0")
	if err != nil {
		Te.Fatal(err)
	}
	coord := model.Coords()
	target, _ := v3.NewMatrix([]float64{5, -3, 12})
	chain.CenterAt(coord, target)
	cen := chain.Centroid(coord)
	if v3.Dist(cen, target) > 1e-9 {
		Te.Errorf("Chain centroid should be at the target after CenterAt, got %v", cen)
	}
	//relative geometry must be untouched
	d := v3.Dist(coord.VecView(chain.Bead(0).Index), coord.VecView(chain.Bead(1).Index))
	if math.Abs(d-30.0) > 1e-9 {
		Te.Errorf("CenterAt should not deform the chain, bead distance now %4.2f", d)
	}
}

func TestAllBeads(Te *testing.T) {
	model := NewModel()
	fac, err := NewChainFactory(model, 10.0, 5.0, 3.0, 20)
	if err != nil {
		Te.Fatal(err)
	}
	var chains []*Chain
	for _, name := range []string{"a", "b"} {
		c, err := fac.Create("MSDQSQEPTMEEILASIRRIISEDDAPAEPAAEAAPPPPPEPEPEPVSFDDEVLELTDPI", name)
		if err != nil {
			Te.Fatal(err)
		}
		chains = append(chains, c)
	}
	all := AllBeads(chains)
	if len(all) != 6 {
		Te.Errorf("Expected 6 beads from 2 chains, got %d", len(all))
	}
	all2 := AllBeads([]*Chain{chains[0], chains[0], chains[1]})
	if len(all2) != 6 {
		Te.Errorf("Repeated chains should not duplicate beads, got %d", len(all2))
	}
}

func TestFrozenModel(Te *testing.T) {
	model := NewModel()
	fac, _ := NewChainFactory(model, 10.0, 5.0, 3.0, 20)
	_, err := fac.Create("MSDQSQEPTMEEILASIRRIISEDD", "f_0")
	if err != nil {
		Te.Fatal(err)
	}
	_ = model.Coords()
	defer func() {
		if recover() == nil {
			Te.Error("Adding a bead to a frozen model should panic")
		}
	}()
	fac.Create("MSDQSQEPTMEEILASIRRIISEDD", "f_1")
}
