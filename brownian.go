/*
 * brownian.go, part of gobd.
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

	v3 "github.com/rmera/gobd/v3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	//KB is the Boltzmann constant in kcal/mol/K.
	KB = 0.0019872041
	//FsPerNs is the number of femtoseconds in a nanosecond.
	FsPerNs = 1e6

	boltzmannJ     = 1.380649e-23 //J/K
	waterViscosity = 8.5e-4       //Pa*s, water at ~300 K
)

//EinsteinDiffusion returns the Stokes-Einstein translational diffusion
//coefficient, in A^2/fs, of a sphere of the given radius (A) in water at
//temperature T (K).
func EinsteinDiffusion(radius, T float64) float64 {
	d := boltzmannJ * T / (6 * math.Pi * waterViscosity * radius * 1e-10) //m^2/s
	return d * 1e5 //1e20 A^2 per m^2, 1e15 fs per s
}

//BrownianDynamics integrates the overdamped Langevin equation of motion for
//the beads of a model: on each step of length dt, a bead with diffusion
//coefficient D moves by (D*dt/kBT)*F plus a Gaussian kick of standard
//deviation sqrt(2*D*dt) on each coordinate.
type BrownianDynamics struct {
	model   *Model
	scoring Restraint
	dt      float64 //fs
	temp    float64 //K
	time    float64 //fs
	last    float64 //kcal/mol
	steps   int
	normal  distuv.Normal
	states  []OptimizerState
	forces  *v3.Matrix
	diff    []float64 //per-bead D, A^2/fs. Rebuilt when the temperature changes.
}

//NewBrownianDynamics returns an integrator for the given model, with a 1000
//fs maximum time step and a temperature of 300 K. A seed for the random
//source can be given; otherwise a fixed default is used, so two simulations
//with the same parameters produce the same trajectory unless seeded apart.
func NewBrownianDynamics(model *Model, seed ...uint64) *BrownianDynamics {
	var s uint64 = 1
	if len(seed) > 0 {
		s = seed[0]
	}
	B := &BrownianDynamics{
		model:  model,
		dt:     1000.0,
		temp:   300.0,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(s)},
	}
	return B
}

//SetScoringFunction tells the integrator which energy function to use.
func (B *BrownianDynamics) SetScoringFunction(r Restraint) {
	B.scoring = r
}

//SetMaximumTimeStep sets the time step, in fs.
func (B *BrownianDynamics) SetMaximumTimeStep(dt float64) {
	if dt <= 0 {
		panic("goBD: Time step must be positive")
	}
	B.dt = dt
}

//SetTemperature sets the simulation temperature, in K.
func (B *BrownianDynamics) SetTemperature(T float64) {
	if T <= 0 {
		panic("goBD: Temperature must be positive")
	}
	B.temp = T
	B.diff = nil
}

//Temperature returns the simulation temperature, in K.
func (B *BrownianDynamics) Temperature() float64 { return B.temp }

//CurrentTime returns the simulated time so far, in fs.
func (B *BrownianDynamics) CurrentTime() float64 { return B.time }

//LastScore returns the energy, in kcal/mol, from the last evaluation of the
//scoring function.
func (B *BrownianDynamics) LastScore() float64 { return B.last }

//Steps returns the number of steps taken so far.
func (B *BrownianDynamics) Steps() int { return B.steps }

//AddOptimizerState registers a state to be invoked after every step.
func (B *BrownianDynamics) AddOptimizerState(st OptimizerState) {
	B.states = append(B.states, st)
}

func (B *BrownianDynamics) setup() {
	if B.forces == nil {
		B.forces = v3.Zeros(B.model.Len())
	}
	if B.diff == nil {
		B.diff = make([]float64, B.model.Len())
		for i, b := range B.model.Beads() {
			B.diff[i] = EinsteinDiffusion(b.Radius, B.temp)
		}
	}
}

//Optimize advances the simulation by n steps and returns the score after the
//last step taken. It returns an error if no scoring function has been set,
//or if an optimizer state fails.
func (B *BrownianDynamics) Optimize(n int) (float64, error) {
	if B.scoring == nil {
		return 0, NewError("Optimize", "No scoring function set")
	}
	B.setup()
	coord := B.model.Coords()
	kT := KB * B.temp
	for i := 0; i < n; i++ {
		B.forces.Zero()
		B.last = B.scoring.Evaluate(coord, B.forces, true)
		for j := 0; j < B.model.Len(); j++ {
			mob := B.diff[j] * B.dt / kT
			sigma := math.Sqrt(2 * B.diff[j] * B.dt)
			for k := 0; k < 3; k++ {
				x := coord.At(j, k) + mob*B.forces.At(j, k) + sigma*B.normal.Rand()
				coord.Set(j, k, x)
			}
		}
		B.time += B.dt
		B.steps++
		for _, st := range B.states {
			if err := st.Update(B.steps); err != nil {
				if e, ok := err.(Error); ok {
					e.Decorate("Optimize")
				}
				return B.last, err
			}
		}
	}
	//the score reported corresponds to the conformation before the last
	//stochastic kick, as the function is not re-evaluated after it.
	return B.last, nil
}
