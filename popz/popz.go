/*
 * popz.go, part of gobd.
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

//Package popz holds the reference system of the library: two coarse-grained
//chains of the intrinsically disordered C. crescentus protein PopZ, free in
//solution. It is both a usage example and the system the defaults of the
//library were tuned on.
package popz

import (
	"github.com/rmera/gobd"
	"github.com/rmera/gobd/bdstat"
)

//Seq is the amino-acid sequence of PopZ.
const Seq = "MSDQSQEPTMEEILASIRRIISEDDAPAEPAAEAAPPPPPEPEPEPVSFDDEVLELTDPI" +
	"APEPELPPLETVGDIDVYSPPEPESEPAYTPPPAAPVFDRDEVAEQLVGVSAASAAASAF" +
	"GSLSSALLMPKDGRTLEDVVRELLRPLLKEWLDQNLPRIVETKVEEEVQRISRGRGA"

//DefaultConfig returns the configuration of the reference run: two PopZ
//chains, beads of 10 A holding 20 residues each, springs of 5 kcal/mol/A^2
//at 3 radii of rest distance, a 1000 fs time step at 300 K, and 50000 outer
//iterations of 250 steps each.
func DefaultConfig() bd.Config {
	return bd.Config{
		Seq:                  Seq,
		Label:                "popZ",
		NChains:              2,
		Radius:               10.0,
		SpringK:              5.0,
		RelativeRestDistance: 3.0,
		NResPerBead:          20,
		EVK:                  1.0,
		EVSlack:              10.0,
		TimeStepFs:           1000.0,
		Temperature:          300.0,
		NOuter:               50000,
		NInner:               250,
		TrajPeriod:           10000,
	}
}

//Run assembles and runs the reference system, writing its trajectory and
//statistics to outdir, and returns the recorded series.
func Run(outdir string, seed ...uint64) (*bdstat.Series, error) {
	conf := DefaultConfig()
	conf.OutDir = outdir
	sim, err := bd.NewSimulation(conf, seed...)
	if err != nil {
		return nil, err
	}
	return sim.Run()
}
