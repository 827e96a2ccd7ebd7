/*
 * state.go, part of gobd.
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

package btf

import (
	v3 "github.com/rmera/gobd/v3"
)

//SaveState periodically saves the given coordinates to a btf trajectory. It
//implements the bd.OptimizerState interface, so it can be handed to an
//integrator to checkpoint a simulation every period steps. The clock
//function, if not nil, supplies the simulation time (fs) stored with each
//frame.
type SaveState struct {
	w      *Writer
	coord  *v3.Matrix
	period int
	clock  func() float64
}

//NewSaveState returns a SaveState writing coord to w every period steps.
func NewSaveState(w *Writer, coord *v3.Matrix, period int, clock func() float64) *SaveState {
	if period <= 0 {
		period = 1
	}
	return &SaveState{w: w, coord: coord, period: period, clock: clock}
}

//SetPeriod changes the saving period.
func (S *SaveState) SetPeriod(n int) {
	if n <= 0 {
		n = 1
	}
	S.period = n
}

//Update saves a frame if step is a multiple of the period.
func (S *SaveState) Update(step int) error {
	if step%S.period != 0 {
		return nil
	}
	return S.UpdateAlways()
}

//UpdateAlways saves a frame unconditionally. It is normally called once
//before a simulation starts, so the trajectory keeps the initial
//conformation.
func (S *SaveState) UpdateAlways() error {
	if S.clock != nil {
		return S.w.WNext(S.coord, S.clock())
	}
	return S.w.WNext(S.coord)
}
