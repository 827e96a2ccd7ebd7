/*
 * doc.go, part of gobd.
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

/*
Package bd implements coarse-grained Brownian dynamics of bead-spring protein
chains, optionally confined to a bounding sphere.

A system is built in three parts, following the usual structure of this kind
of model: parts (beads grouped into chains, owned by a Model), interactions
(Restraint terms aggregated into a ScoringFunction) and dynamics (the
BrownianDynamics integrator). The ChainFactory builds a string of beads from a
protein sequence, one bead every n residues, and wires the spring restraint
holding consecutive beads together. The Simulation type assembles all of the
above from a Config and drives the integrator in chunks, recording simulation
time, energy and per-chain end-to-end distances every outer iteration into a
bdstat.Series, and checkpointing the trajectory to a btf file.

Units are Angstroms, femtoseconds, Kelvin and kcal/mol throughout.
*/
package bd
