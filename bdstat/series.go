/*
 * series.go, part of gobd.
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

//Package bdstat keeps and persists the summary statistics of a Brownian
//dynamics run: the simulation time, total energy and per-chain end-to-end
//distance series sampled every outer iteration, plus, optionally, a full
//per-bead coordinate snapshot per sample.
package bdstat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gobd/v3"
)

//Series collects one sample per outer iteration of a simulation. The fields
//are exported for serialization; use Append to grow the series so the
//invariant len(Times)==len(Energies)==len(Dists[i]) is kept.
type Series struct {
	Label      string
	TimeStepFs float64
	Times      []float64   //ns
	Energies   []float64   //kcal/mol
	Dists      [][]float64 //end-to-end distance per chain, A
	Snapshots  [][]float64 //flattened 3N coordinates per sample, or nil
	keep       bool
}

//NewSeries returns an empty series for nchains chains. If snapshots is true,
//Append also keeps a copy of the full coordinate matrix of every sample.
func NewSeries(label string, nchains int, snapshots bool) *Series {
	S := &Series{Label: label, keep: snapshots}
	S.Dists = make([][]float64, nchains)
	return S
}

//NChains returns the number of chains the series tracks.
func (S *Series) NChains() int {
	return len(S.Dists)
}

//Len returns the number of samples in the series.
func (S *Series) Len() int {
	return len(S.Times)
}

//Append adds a sample to the series. It returns an error if the number of
//distances does not match the number of chains.
func (S *Series) Append(timeNs, energy float64, dists []float64, coord *v3.Matrix) error {
	if len(dists) != len(S.Dists) {
		return Error{fmt.Sprintf("Got %d distances for %d chains", len(dists), len(S.Dists)), []string{"Append"}}
	}
	S.Times = append(S.Times, timeNs)
	S.Energies = append(S.Energies, energy)
	for i, d := range dists {
		S.Dists[i] = append(S.Dists[i], d)
	}
	if S.keep && coord != nil {
		raw := coord.RawMatrix()
		snap := make([]float64, len(raw.Data))
		copy(snap, raw.Data)
		S.Snapshots = append(S.Snapshots, snap)
	}
	return nil
}

//EndToEnd returns the end-to-end distance series of the given chain. Panics
//if out of range.
func (S *Series) EndToEnd(chain int) []float64 {
	if chain >= len(S.Dists) {
		panic("goBD/bdstat: Requested chain out of bounds")
	}
	return S.Dists[chain]
}

//Snapshot rebuilds the coordinate matrix of the ith sample. It returns an
//error if the series was built without snapshots.
func (S *Series) Snapshot(i int) (*v3.Matrix, error) {
	if i >= len(S.Snapshots) {
		return nil, Error{fmt.Sprintf("No snapshot for sample %d (have %d)", i, len(S.Snapshots)), []string{"Snapshot"}}
	}
	data := make([]float64, len(S.Snapshots[i]))
	copy(data, S.Snapshots[i])
	m, err := v3.NewMatrix(data)
	if err != nil {
		return nil, Error{err.Error(), []string{"Snapshot"}}
	}
	return m, nil
}

//FileName returns the parameter-derived name under which the series of a
//simulation is saved.
func FileName(label string, nchains int, tempK float64) string {
	return fmt.Sprintf("%s_%dchains_%.0fK_series.json.zst", label, nchains, tempK)
}

//Write serializes the series as zstd-compressed JSON to the named file.
func (S *Series) Write(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), []string{"Write"}}
	}
	defer f.Close()
	w, err := zstd.NewWriter(f)
	if err != nil {
		return Error{err.Error(), []string{"Write"}}
	}
	if err := json.NewEncoder(w).Encode(S); err != nil {
		w.Close()
		return Error{err.Error(), []string{"Write"}}
	}
	if err := w.Close(); err != nil {
		return Error{err.Error(), []string{"Write"}}
	}
	return nil
}

//Read deserializes a series written by Write.
func Read(name string) (*Series, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), []string{"Read"}}
	}
	defer f.Close()
	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, Error{err.Error(), []string{"Read"}}
	}
	defer r.Close()
	S := new(Series)
	if err := json.NewDecoder(r).Decode(S); err != nil {
		return nil, Error{err.Error(), []string{"Read"}}
	}
	S.keep = S.Snapshots != nil
	return S, nil
}

//Error is the error type of the package. It fulfills the bd.Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return "goBD/bdstat: " + err.message }

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
