/*
 * brownian_test.go, part of gobd.
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
	"math"
	"testing"

	v3 "github.com/rmera/gobd/v3"
)

func TestEinsteinDiffusion(Te *testing.T) {
	//a 10 A bead in water at 300 K diffuses at a couple of 1e-5 A^2/fs
	d := EinsteinDiffusion(10, 300)
	if d < 1e-5 || d > 1e-4 {
		Te.Errorf("Implausible diffusion coefficient for a 10 A bead: %g A^2/fs", d)
	}
	if EinsteinDiffusion(20, 300) >= d {
		Te.Error("Bigger beads should diffuse more slowly")
	}
	if EinsteinDiffusion(10, 150) >= d {
		Te.Error("Colder beads should diffuse more slowly")
	}
}

//Free diffusion: with no forces, the mean square displacement should follow
//6*D*t. Averaged over enough independent beads, the estimate is tight.
func TestFreeDiffusion(Te *testing.T) {
	const nbeads = 200
	const nsteps = 100
	model := NewModel()
	chain := &Chain{name: "free"}
	for i := 0; i < nbeads; i++ {
		b := &Bead{Radius: 10, chain: chain}
		model.AddBead(b, 0, 0, 0)
		chain.beads = append(chain.beads, b)
	}
	start := v3.Zeros(nbeads)
	start.Copy(model.Coords())
	dyn := NewBrownianDynamics(model, 42)
	dyn.SetScoringFunction(NewScoringFunction("empty"))
	if _, err := dyn.Optimize(nsteps); err != nil {
		Te.Fatal(err)
	}
	coord := model.Coords()
	var msd float64
	for i := 0; i < nbeads; i++ {
		d := v3.Dist(coord.VecView(i), start.VecView(i))
		msd += d * d
	}
	msd /= nbeads
	want := 6 * EinsteinDiffusion(10, 300) * dyn.CurrentTime()
	fmt.Printf("MSD %5.1f A^2, theory %5.1f A^2\n", msd, want)
	if msd < 0.7*want || msd > 1.3*want {
		Te.Errorf("MSD %f too far from the 6Dt prediction %f", msd, want)
	}
}

//A stretched spring in the overdamped regime relaxes to its rest distance.
//Run nearly noiseless (1 K) so the convergence is clean.
func TestSpringRelaxation(Te *testing.T) {
	model, coord := twoBeads(50)
	bond := NewHarmonicBond("bond", 5.0, 30.0)
	bond.AddPair(0, 1)
	dyn := NewBrownianDynamics(model, 7)
	dyn.SetTemperature(1)
	dyn.SetScoringFunction(NewScoringFunction("springs", bond))
	e0 := bond.Evaluate(coord, nil, false)
	last, err := dyn.Optimize(200)
	if err != nil {
		Te.Fatal(err)
	}
	d := v3.Dist(coord.VecView(0), coord.VecView(1))
	if math.Abs(d-30) > 1 {
		Te.Errorf("Spring did not relax: distance %4.2f, rest 30", d)
	}
	if last >= e0 {
		Te.Errorf("Energy should decrease on relaxation: %f -> %f", e0, last)
	}
}

func TestOptimizeBookkeeping(Te *testing.T) {
	model, _ := twoBeads(30)
	dyn := NewBrownianDynamics(model)
	if _, err := dyn.Optimize(10); err == nil {
		Te.Error("Optimize without a scoring function should fail")
	}
	dyn.SetScoringFunction(NewScoringFunction("empty"))
	dyn.SetMaximumTimeStep(500)
	if _, err := dyn.Optimize(10); err != nil {
		Te.Fatal(err)
	}
	if dyn.Steps() != 10 {
		Te.Errorf("Expected 10 steps, got %d", dyn.Steps())
	}
	if dyn.CurrentTime() != 5000 {
		Te.Errorf("Expected 5000 fs of simulated time, got %f", dyn.CurrentTime())
	}
}

//counterState counts how often it is invoked. Checks the every-step contract
//of optimizer states.
type counterState struct {
	calls int
	last  int
}

func (c *counterState) Update(step int) error {
	c.calls++
	c.last = step
	return nil
}

func TestOptimizerStates(Te *testing.T) {
	model, _ := twoBeads(30)
	dyn := NewBrownianDynamics(model)
	dyn.SetScoringFunction(NewScoringFunction("empty"))
	c := new(counterState)
	dyn.AddOptimizerState(c)
	if _, err := dyn.Optimize(25); err != nil {
		Te.Fatal(err)
	}
	if c.calls != 25 || c.last != 25 {
		Te.Errorf("State should be invoked every step: %d calls, last step %d", c.calls, c.last)
	}
}
