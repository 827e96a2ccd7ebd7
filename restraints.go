/*
 * restraints.go, part of gobd.
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
	v3 "github.com/rmera/gobd/v3"
)

//HarmonicBond is a set of springs between pairs of beads, with energy
//0.5*k*(d-rest)^2 per pair. It is the connectivity restraint of a chain, but
//nothing here assumes the pairs belong to the same chain.
type HarmonicBond struct {
	name  string
	k     float64 //kcal/mol/A^2
	rest  float64 //A
	pairs [][2]int
}

//NewHarmonicBond returns a spring restraint with the given stiffness
//(kcal/mol/A^2) and rest distance (A), with no pairs yet.
func NewHarmonicBond(name string, k, rest float64) *HarmonicBond {
	return &HarmonicBond{name: name, k: k, rest: rest}
}

//AddPair adds a spring between the beads with model indexes i and j.
func (H *HarmonicBond) AddPair(i, j int) {
	H.pairs = append(H.pairs, [2]int{i, j})
}

//Name returns the string identifier of the restraint.
func (H *HarmonicBond) Name() string { return H.name }

//Evaluate implements the Restraint interface.
func (H *HarmonicBond) Evaluate(coord, force *v3.Matrix, deriv bool) float64 {
	var energy float64
	for _, p := range H.pairs {
		vi := coord.VecView(p[0])
		vj := coord.VecView(p[1])
		d := v3.Dist(vi, vj)
		delta := d - H.rest
		energy += 0.5 * H.k * delta * delta
		if !deriv || d == 0 {
			continue
		}
		//force on i is -k*(d-rest)*(xi-xj)/d, and minus that on j
		g := H.k * delta / d
		addPairForce(force, coord, p[0], p[1], g)
	}
	return energy
}

//addPairForce adds -g*(xi-xj) to the force row of bead i and the opposite to
//the row of bead j.
func addPairForce(force, coord *v3.Matrix, i, j int, g float64) {
	for k := 0; k < 3; k++ {
		diff := coord.At(i, k) - coord.At(j, k)
		force.Set(i, k, force.At(i, k)-g*diff)
		force.Set(j, k, force.At(j, k)+g*diff)
	}
}

//ExcludedVolume penalizes overlap between any two beads with a lower-bound
//harmonic on the center distance: 0.5*k*(ri+rj-d)^2 whenever d < ri+rj. Close
//pairs are kept in a list including every pair closer than ri+rj+slack, which
//is only rebuilt when some bead has moved more than slack/2 since the last
//build, so no overlap can be missed in between. The slack only affects speed,
//not the energies.
type ExcludedVolume struct {
	name   string
	k      float64
	slack  float64
	beads  []*Bead
	radius map[int]float64 //by model index
	pairs  [][2]int
	ref    *v3.Matrix //bead positions at the last list build
}

//NewExcludedVolume returns an excluded-volume restraint over the given beads
//with force constant k (kcal/mol/A^2) and pair-list slack (A).
func NewExcludedVolume(name string, k, slack float64, beads []*Bead) *ExcludedVolume {
	radius := make(map[int]float64, len(beads))
	for _, b := range beads {
		radius[b.Index] = b.Radius
	}
	return &ExcludedVolume{name: name, k: k, slack: slack, beads: beads, radius: radius}
}

//Name returns the string identifier of the restraint.
func (E *ExcludedVolume) Name() string { return E.name }

//stale returns true if the pair list needs rebuilding.
func (E *ExcludedVolume) stale(coord *v3.Matrix) bool {
	if E.ref == nil {
		return true
	}
	half := E.slack / 2
	for _, b := range E.beads {
		if v3.Dist(coord.VecView(b.Index), E.ref.VecView(b.Index)) > half {
			return true
		}
	}
	return false
}

func (E *ExcludedVolume) rebuild(coord *v3.Matrix) {
	E.pairs = E.pairs[:0]
	for i := 0; i < len(E.beads); i++ {
		bi := E.beads[i]
		for j := i + 1; j < len(E.beads); j++ {
			bj := E.beads[j]
			cut := bi.Radius + bj.Radius + E.slack
			if v3.Dist(coord.VecView(bi.Index), coord.VecView(bj.Index)) < cut {
				E.pairs = append(E.pairs, [2]int{bi.Index, bj.Index})
			}
		}
	}
	if E.ref == nil {
		E.ref = v3.Zeros(coord.NVecs())
	}
	E.ref.Copy(coord)
}

//Evaluate implements the Restraint interface.
func (E *ExcludedVolume) Evaluate(coord, force *v3.Matrix, deriv bool) float64 {
	if E.stale(coord) {
		E.rebuild(coord)
	}
	var energy float64
	for _, p := range E.pairs {
		vi := coord.VecView(p[0])
		vj := coord.VecView(p[1])
		d := v3.Dist(vi, vj)
		over := E.radius[p[0]] + E.radius[p[1]] - d
		if over <= 0 {
			continue
		}
		energy += 0.5 * E.k * over * over
		if !deriv {
			continue
		}
		if d == 0 {
			//coincident centers give no gradient direction. Push along X so
			//the beads can still separate.
			force.Set(p[0], 0, force.At(p[0], 0)+E.k*over)
			force.Set(p[1], 0, force.At(p[1], 0)-E.k*over)
			continue
		}
		g := -E.k * over / d
		addPairForce(force, coord, p[0], p[1], g)
	}
	return energy
}

//BoundingSphere keeps every bead surface inside a sphere of the given radius
//centered at the origin, with an upper-bound harmonic on the distance from
//the center: 0.5*k*(|x|+r-R)^2 whenever |x|+r > R.
type BoundingSphere struct {
	name   string
	k      float64
	radius float64
	beads  []*Bead
}

//NewBoundingSphere returns a bounding-sphere restraint of radius R (A) and
//force constant k (kcal/mol/A^2) over the given beads.
func NewBoundingSphere(name string, k, R float64, beads []*Bead) *BoundingSphere {
	return &BoundingSphere{name: name, k: k, radius: R, beads: beads}
}

//Name returns the string identifier of the restraint.
func (B *BoundingSphere) Name() string { return B.name }

//Evaluate implements the Restraint interface.
func (B *BoundingSphere) Evaluate(coord, force *v3.Matrix, deriv bool) float64 {
	var energy float64
	for _, b := range B.beads {
		v := coord.VecView(b.Index)
		r := v.Norm()
		over := r + b.Radius - B.radius
		if over <= 0 {
			continue
		}
		energy += 0.5 * B.k * over * over
		if !deriv || r == 0 {
			continue
		}
		g := B.k * over / r
		for k := 0; k < 3; k++ {
			force.Set(b.Index, k, force.At(b.Index, k)-g*coord.At(b.Index, k))
		}
	}
	return energy
}

//InterChain is a weak harmonic attraction between the centroids of every
//pair of chains, 0.5*k*d^2 per pair, used to keep chains from diffusing away
//from each other when no bounding sphere is present.
type InterChain struct {
	name   string
	k      float64
	chains []*Chain
}

//NewInterChain returns an inter-chain attraction of strength k
//(kcal/mol/A^2) over the given chains.
func NewInterChain(name string, k float64, chains []*Chain) *InterChain {
	return &InterChain{name: name, k: k, chains: chains}
}

//Name returns the string identifier of the restraint.
func (I *InterChain) Name() string { return I.name }

//Evaluate implements the Restraint interface.
func (I *InterChain) Evaluate(coord, force *v3.Matrix, deriv bool) float64 {
	var energy float64
	cents := make([]*v3.Matrix, len(I.chains))
	for i, c := range I.chains {
		cents[i] = c.Centroid(coord)
	}
	for i := 0; i < len(I.chains); i++ {
		for j := i + 1; j < len(I.chains); j++ {
			d := v3.Dist(cents[i], cents[j])
			energy += 0.5 * I.k * d * d
			if !deriv {
				continue
			}
			//each bead carries an equal share of its chain's centroid
			//gradient: dE/dx_b = k*(ci-cj)/n for beads of chain i.
			for k := 0; k < 3; k++ {
				diff := cents[i].At(0, k) - cents[j].At(0, k)
				gi := I.k * diff / float64(I.chains[i].Len())
				gj := I.k * diff / float64(I.chains[j].Len())
				for _, b := range I.chains[i].beads {
					force.Set(b.Index, k, force.At(b.Index, k)-gi)
				}
				for _, b := range I.chains[j].beads {
					force.Set(b.Index, k, force.At(b.Index, k)+gj)
				}
			}
		}
	}
	return energy
}

//ScoringFunction is the named sum of a set of restraints. The total energy of
//a model is, by definition, the value of its scoring function. It implements
//Restraint itself, so scoring functions can be nested.
type ScoringFunction struct {
	name       string
	restraints []Restraint
}

//NewScoringFunction returns a scoring function adding up the given
//restraints.
func NewScoringFunction(name string, restraints ...Restraint) *ScoringFunction {
	return &ScoringFunction{name: name, restraints: restraints}
}

//Name returns the string identifier of the scoring function.
func (S *ScoringFunction) Name() string { return S.name }

//Restraints returns the terms of the scoring function.
func (S *ScoringFunction) Restraints() []Restraint {
	return S.restraints
}

//Evaluate returns the sum of the energies of all the terms and, if deriv,
//accumulates their forces. As any Restraint, it does not zero the force
//matrix first.
func (S *ScoringFunction) Evaluate(coord, force *v3.Matrix, deriv bool) float64 {
	var energy float64
	for _, r := range S.restraints {
		energy += r.Evaluate(coord, force, deriv)
	}
	return energy
}

//EvaluateByTerm returns the energy of each term of the scoring function, in
//order, without derivatives. Handy when deciding which restraint dominates a
//score.
func (S *ScoringFunction) EvaluateByTerm(coord *v3.Matrix) []float64 {
	ret := make([]float64, len(S.restraints))
	for i, r := range S.restraints {
		ret[i] = r.Evaluate(coord, nil, false)
	}
	return ret
}

//ensure the interface is actually satisfied by all terms
var _ Restraint = &HarmonicBond{}
var _ Restraint = &ExcludedVolume{}
var _ Restraint = &BoundingSphere{}
var _ Restraint = &InterChain{}
var _ Restraint = &ScoringFunction{}
