/*
 * analysis.go, part of gobd.
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

package bdstat

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

//EnergyStats returns the mean and standard deviation of the energy series.
func (S *Series) EnergyStats() (float64, float64) {
	m, std := stat.MeanStdDev(S.Energies, nil)
	return m, std
}

//DistStats returns the mean and standard deviation of the end-to-end
//distance series of the given chain.
func (S *Series) DistStats(chain int) (float64, float64) {
	m, std := stat.MeanStdDev(S.EndToEnd(chain), nil)
	return m, std
}

//Autocorrelation returns the normalized autocorrelation function of x for
//lags 0..maxlag, computed in the Fourier domain. The series is centered
//first, so the function decays from 1 at lag 0 towards 0 for an equilibrated
//observable. maxlag must be smaller than len(x).
func Autocorrelation(x []float64, maxlag int) ([]float64, error) {
	n := len(x)
	if n < 2 {
		return nil, Error{"Need at least 2 points", []string{"Autocorrelation"}}
	}
	if maxlag >= n {
		return nil, Error{fmt.Sprintf("maxlag (%d) must be smaller than the series length (%d)", maxlag, n), []string{"Autocorrelation"}}
	}
	mean := stat.Mean(x, nil)
	//zero padding to twice the length makes the circular correlation linear
	pad := make([]float64, 2*n)
	for i, v := range x {
		pad[i] = v - mean
	}
	fft := fourier.NewFFT(len(pad))
	coeff := fft.Coefficients(nil, pad)
	for i, c := range coeff {
		re := real(c)
		im := imag(c)
		coeff[i] = complex(re*re+im*im, 0)
	}
	seq := fft.Sequence(nil, coeff)
	ret := make([]float64, maxlag+1)
	//the transform pair is unnormalized, but the constant cancels out when
	//dividing by the lag-0 value. Only the 1/(n-k) sample-count correction
	//is needed before that.
	for k := 0; k <= maxlag; k++ {
		ret[k] = seq[k] / float64(n-k)
	}
	if ret[0] == 0 {
		return nil, Error{"Zero-variance series has no autocorrelation", []string{"Autocorrelation"}}
	}
	for k := maxlag; k >= 0; k-- {
		ret[k] /= ret[0]
	}
	return ret, nil
}

//BlockAverages splits x into nblocks contiguous blocks (discarding the
//remainder, if any) and returns the mean of each block. A common way of
//estimating the statistical error of correlated time series.
func BlockAverages(x []float64, nblocks int) ([]float64, error) {
	if nblocks <= 0 || nblocks > len(x) {
		return nil, Error{fmt.Sprintf("Can't split %d samples in %d blocks", len(x), nblocks), []string{"BlockAverages"}}
	}
	size := len(x) / nblocks
	ret := make([]float64, nblocks)
	for i := 0; i < nblocks; i++ {
		ret[i] = stat.Mean(x[i*size:(i+1)*size], nil)
	}
	return ret, nil
}
