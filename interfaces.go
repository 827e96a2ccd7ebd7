/*
 * interfaces.go, part of gobd.
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

// Restraint is a named energy term over one or more beads of a model. It is
// the only thing the integrator knows about the energetics of a system: a
// scoring function aggregating several terms is itself a Restraint.
type Restraint interface {

	//Name returns the string identifier of the term.
	Name() string

	//Evaluate returns the energy of the term, in kcal/mol, for the given
	//coordinates. If deriv is true it also accumulates the forces (the
	//negative gradient, in kcal/mol/A) into force, which must have the same
	//shape as coord. Implementations must not zero force: several terms
	//accumulate into the same matrix.
	Evaluate(coord, force *v3.Matrix, deriv bool) float64
}

// OptimizerState is invoked by the integrator after every step it takes.
// States that should only act every n steps (e.g. trajectory checkpoints)
// keep their own period and decide on the step number they are given.
type OptimizerState interface {
	Update(step int) error
}

//Errors

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// If passed an empty string, Decorate should just return the current
// decoration slice, not add the empty string to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless
// end-of-trajectory errors, so they can be filtered in a typeswitch that
// looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination()
}
