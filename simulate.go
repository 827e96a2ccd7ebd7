/*
 * simulate.go, part of gobd.
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
	"log"
	"path/filepath"

	"github.com/rmera/gobd/bdstat"
	"github.com/rmera/gobd/traj/btf"
	v3 "github.com/rmera/gobd/v3"
)

//Config holds every parameter of a chain simulation. The zero value of most
//fields is replaced by a sensible default on assembly; only Seq, Label and
//NChains have no default.
type Config struct {
	Seq                  string
	Label                string
	NChains              int
	Radius               float64 //bead radius, A (default 10)
	SpringK              float64 //connectivity spring, kcal/mol/A^2 (default 5)
	RelativeRestDistance float64 //in bead radii (default 3)
	NResPerBead          int     //residues per bead (default 20)
	EVK                  float64 //excluded volume force constant (default 1)
	EVSlack              float64 //excluded volume pair-list slack, A (default 10)
	BoundingRadius       float64 //bounding sphere radius, A. <=0 disables it
	BoundingK            float64 //bounding sphere force constant (default 1 if enabled)
	InterChainK          float64 //inter-chain attraction. <=0 disables it
	TimeStepFs           float64 //default 1000
	Temperature          float64 //K (default 300)
	NOuter               int     //outer loop iterations (default 50000)
	NInner               int     //integrator steps per outer iteration (default 250)
	TrajPeriod           int     //steps between trajectory checkpoints (default 10000)
	KeepSnapshots        bool    //keep a full coordinate snapshot per sample
	OutDir               string  //where the trajectory and series files go (default ".")
}

func (C *Config) setDefaults() {
	def := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	defi := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
	}
	def(&C.Radius, 10.0)
	def(&C.SpringK, 5.0)
	def(&C.RelativeRestDistance, 3.0)
	defi(&C.NResPerBead, 20)
	def(&C.EVK, 1.0)
	def(&C.EVSlack, 10.0)
	if C.BoundingRadius > 0 {
		def(&C.BoundingK, 1.0)
	}
	def(&C.TimeStepFs, 1000.0)
	def(&C.Temperature, 300.0)
	defi(&C.NOuter, 50000)
	defi(&C.NInner, 250)
	defi(&C.TrajPeriod, 10000)
	if C.OutDir == "" {
		C.OutDir = "."
	}
}

func (C *Config) validate() error {
	if C.Seq == "" {
		return NewError("Config", "Empty sequence")
	}
	if C.Label == "" {
		return NewError("Config", "Empty label")
	}
	if C.NChains < 1 {
		return errorf("Config", "Need at least one chain, got %d", C.NChains)
	}
	return nil
}

//TrajFileName returns the parameter-derived name of the trajectory file of a
//run with this configuration, without the directory.
func (C *Config) TrajFileName() string {
	return fmt.Sprintf("%s_%dchains.btf", C.Label, C.NChains)
}

//Simulation owns an assembled system: the model with its chains, the scoring
//function over them, the integrator, and the trajectory checkpoint state.
type Simulation struct {
	conf    Config
	model   *Model
	chains  []*Chain
	scoring *ScoringFunction
	dyn     *BrownianDynamics
	traj    *btf.Writer
	save    *btf.SaveState
}

//NewSimulation assembles a simulation from the given configuration: it
//builds the chains, wires the restraints and the integrator, opens the
//trajectory file and saves the initial conformation to it. A seed for the
//integrator's random source can be given.
func NewSimulation(conf Config, seed ...uint64) (*Simulation, error) {
	conf.setDefaults()
	if err := conf.validate(); err != nil {
		return nil, errDecorate(err, "NewSimulation")
	}
	model := NewModel()
	factory, err := NewChainFactory(model, conf.Radius, conf.SpringK, conf.RelativeRestDistance, conf.NResPerBead)
	if err != nil {
		return nil, errDecorate(err, "NewSimulation")
	}
	chains := make([]*Chain, 0, conf.NChains)
	for i := 0; i < conf.NChains; i++ {
		chain, err := factory.Create(conf.Seq, fmt.Sprintf("%s_%d", conf.Label, i))
		if err != nil {
			return nil, errDecorate(err, "NewSimulation")
		}
		chains = append(chains, chain)
	}
	coord := model.Coords()
	//The factory lays every chain along the same axis, so with more than one
	//chain all of them start on top of each other. Spread them out before
	//the excluded volume has to deal with coincident centers.
	if conf.NChains > 1 {
		center := v3.Zeros(1)
		for i, chain := range chains {
			center.Set(0, 1, 2*conf.Radius*float64(i))
			chain.CenterAt(coord, center)
		}
	}
	restraints := make([]Restraint, 0, len(chains)+3)
	for _, chain := range chains {
		restraints = append(restraints, chain.Restraint())
	}
	restraints = append(restraints, NewExcludedVolume("Excluded-Volume", conf.EVK, conf.EVSlack, AllBeads(chains)))
	if conf.BoundingRadius > 0 {
		restraints = append(restraints, NewBoundingSphere("Bounding-Sphere", conf.BoundingK, conf.BoundingRadius, AllBeads(chains)))
	}
	if conf.InterChainK > 0 && conf.NChains > 1 {
		restraints = append(restraints, NewInterChain("Inter-Chain", conf.InterChainK, chains))
	}
	scoring := NewScoringFunction("Scoring function", restraints...)

	dyn := NewBrownianDynamics(model, seed...)
	dyn.SetMaximumTimeStep(conf.TimeStepFs)
	dyn.SetTemperature(conf.Temperature)
	dyn.SetScoringFunction(scoring)

	header := map[string]string{
		"description": fmt.Sprintf("Brownian dynamics trajectory with %.0ffs timestep", conf.TimeStepFs),
		"label":       conf.Label,
		"timestep":    fmt.Sprintf("%.0f", conf.TimeStepFs),
		"radius":      fmt.Sprintf("%.2f", conf.Radius),
		"nchains":     fmt.Sprintf("%d", conf.NChains),
	}
	w, err := btf.NewWriter(filepath.Join(conf.OutDir, conf.TrajFileName()), model.Len(), header)
	if err != nil {
		return nil, errDecorate(err, "NewSimulation")
	}
	save := btf.NewSaveState(w, coord, conf.TrajPeriod, dyn.CurrentTime)
	dyn.AddOptimizerState(save)
	//keep the initial conformation in the trajectory
	if err := save.UpdateAlways(); err != nil {
		w.Close()
		return nil, errDecorate(err, "NewSimulation")
	}
	return &Simulation{conf: conf, model: model, chains: chains, scoring: scoring, dyn: dyn, traj: w, save: save}, nil
}

//Model returns the model of the simulation.
func (S *Simulation) Model() *Model { return S.model }

//Chains returns the chains of the simulation, in creation order.
func (S *Simulation) Chains() []*Chain { return S.chains }

//Scoring returns the scoring function of the simulation.
func (S *Simulation) Scoring() *ScoringFunction { return S.scoring }

//Dynamics returns the integrator of the simulation.
func (S *Simulation) Dynamics() *BrownianDynamics { return S.dyn }

//Run drives the integrator for NOuter iterations of NInner steps each,
//recording one sample per iteration: the simulation time (ns) at the start
//of the iteration, the energy after it, and the end-to-end distance of each
//chain. When done it closes the trajectory and writes the series, under its
//parameter-derived name, to the output directory. Run can only be called
//once per Simulation, as it leaves the trajectory closed.
func (S *Simulation) Run() (*bdstat.Series, error) {
	series := bdstat.NewSeries(S.conf.Label, len(S.chains), S.conf.KeepSnapshots)
	series.TimeStepFs = S.conf.TimeStepFs
	coord := S.model.Coords()
	every := S.conf.NOuter / 10
	if every == 0 {
		every = 1
	}
	dists := make([]float64, len(S.chains))
	for i := 0; i < S.conf.NOuter; i++ {
		timeNs := S.dyn.CurrentTime() / FsPerNs
		if i%every == 0 {
			log.Printf("Simulated for %.1f nanoseconds so far", timeNs)
		}
		if _, err := S.dyn.Optimize(S.conf.NInner); err != nil {
			S.traj.Close()
			return series, decorateAny(err, "Run")
		}
		for j, chain := range S.chains {
			dists[j] = chain.EndToEnd(coord)
		}
		if err := series.Append(timeNs, S.dyn.LastScore(), dists, coord); err != nil {
			S.traj.Close()
			return series, decorateAny(err, "Run")
		}
	}
	log.Printf("FINISHED. Simulated for %.1f nanoseconds in total", S.dyn.CurrentTime()/FsPerNs)
	S.traj.Close()
	name := filepath.Join(S.conf.OutDir, bdstat.FileName(S.conf.Label, len(S.chains), S.dyn.Temperature()))
	if err := series.Write(name); err != nil {
		return series, decorateAny(err, "Run")
	}
	return series, nil
}

//decorateAny decorates err if it implements the package Error interface, and
//returns it unchanged otherwise.
func decorateAny(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
