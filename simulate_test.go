/*
 * simulate_test.go, part of gobd.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gobd/bdstat"
	"github.com/rmera/gobd/traj/btf"
	v3 "github.com/rmera/gobd/v3"
)

func testConfig() Config {
	return Config{
		Seq:            "MSDQSQEPTMEEILASIRRIISEDDAPAEPAAEAAPPPPPEPEPEPVSFDDEVLELTDPI",
		Label:          "toy",
		NChains:        2,
		BoundingRadius: 200,
		InterChainK:    0.01,
		NOuter:         20,
		NInner:         5,
		TrajPeriod:     25,
		KeepSnapshots:  true,
		OutDir:         "test",
	}
}

func TestSimulationAssembly(Te *testing.T) {
	os.MkdirAll("test", 0755)
	sim, err := NewSimulation(testConfig(), 1)
	if err != nil {
		Te.Fatal(err)
	}
	if len(sim.Chains()) != 2 {
		Te.Fatalf("Expected 2 chains, got %d", len(sim.Chains()))
	}
	if sim.Model().Len() != 6 {
		Te.Errorf("Expected 6 beads in the model, got %d", sim.Model().Len())
	}
	//chain springs x2, excluded volume, bounding sphere, inter-chain
	if n := len(sim.Scoring().Restraints()); n != 5 {
		Te.Errorf("Expected 5 restraints, got %d", n)
	}
	//chains must not start on top of each other
	c0 := sim.Chains()[0].Centroid(sim.Model().Coords())
	c1 := sim.Chains()[1].Centroid(sim.Model().Coords())
	if v3.Dist(c0, c1) < 1 {
		Te.Error("Chains should be spread out on assembly")
	}
}

func TestSimulationRun(Te *testing.T) {
	os.MkdirAll("test", 0755)
	conf := testConfig()
	sim, err := NewSimulation(conf, 2)
	if err != nil {
		Te.Fatal(err)
	}
	series, err := sim.Run()
	if err != nil {
		Te.Fatal(err)
	}
	if series.Len() != conf.NOuter {
		Te.Errorf("One sample per outer iteration: want %d, got %d", conf.NOuter, series.Len())
	}
	for i := 1; i < series.Len(); i++ {
		if series.Times[i] <= series.Times[i-1] {
			Te.Error("Sampled times should increase monotonically")
			break
		}
	}
	if series.NChains() != 2 {
		Te.Errorf("Expected distances for 2 chains, got %d", series.NChains())
	}
	if len(series.Snapshots) != conf.NOuter {
		Te.Errorf("Snapshots were requested: want %d, got %d", conf.NOuter, len(series.Snapshots))
	}
	//the series must be on disk under its parameter-derived name
	sname := filepath.Join(conf.OutDir, bdstat.FileName(conf.Label, conf.NChains, 300))
	back, err := bdstat.Read(sname)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Len() != series.Len() || back.Label != conf.Label {
		Te.Error("The series read back does not match the one recorded")
	}
	//the trajectory holds the initial conformation plus one frame per
	//TrajPeriod steps: 20*5=100 steps at period 25 -> 5 frames
	traj, _, err := btf.New(filepath.Join(conf.OutDir, conf.TrajFileName()))
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	frames := 0
	frame := v3.Zeros(traj.Len())
	for {
		err := traj.Next(frame)
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		frames++
	}
	if frames != 5 {
		Te.Errorf("Expected 5 trajectory frames, got %d", frames)
	}
}

func TestConfigValidation(Te *testing.T) {
	conf := testConfig()
	conf.Seq = ""
	if _, err := NewSimulation(conf); err == nil {
		Te.Error("An empty sequence should not assemble")
	}
	conf = testConfig()
	conf.NChains = 0
	if _, err := NewSimulation(conf); err == nil {
		Te.Error("Zero chains should not assemble")
	}
}
