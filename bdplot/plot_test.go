/*
 * plot_test.go, part of gobd.
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

package bdplot

import (
	"math"
	"os"
	"testing"

	"github.com/rmera/gobd/bdstat"
)

func testSeries(Te *testing.T) *bdstat.Series {
	S := bdstat.NewSeries("t", 2, false)
	for i := 0; i < 50; i++ {
		t := float64(i) * 0.25
		err := S.Append(t, 90+10*math.Exp(-t), []float64{60 - t, 60 + math.Sin(t)}, nil)
		if err != nil {
			Te.Fatal(err)
		}
	}
	return S
}

func TestEnergy(Te *testing.T) {
	os.MkdirAll("test", 0755)
	S := testSeries(Te)
	if err := Energy(S, "Energy", "test/energy"); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat("test/energy.png"); err != nil {
		Te.Error("Energy plot was not written")
	}
}

func TestDistances(Te *testing.T) {
	os.MkdirAll("test", 0755)
	S := testSeries(Te)
	if err := Distances(S, "End-to-end distances", "test/dists"); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat("test/dists.png"); err != nil {
		Te.Error("Distances plot was not written")
	}
}

func TestEmptySeries(Te *testing.T) {
	S := bdstat.NewSeries("empty", 1, false)
	if err := Energy(S, "", "test/nope"); err == nil {
		Te.Error("Plotting an empty series should fail")
	}
	if err := Distances(S, "", "test/nope"); err == nil {
		Te.Error("Plotting an empty series should fail")
	}
}
