/*
 * plot.go, part of gobd.
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

//Package bdplot produces plots, in png format, of the statistics recorded
//from a Brownian dynamics run: energy and per-chain end-to-end distances
//against simulation time.
package bdplot

import (
	"fmt"

	"github.com/rmera/gobd/bdstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func xys(times, vals []float64) plotter.XYs {
	pts := make(plotter.XYs, len(vals))
	for i := range vals {
		pts[i].X = times[i]
		pts[i].Y = vals[i]
	}
	return pts
}

//Energy plots the total energy of the series against simulation time and
//saves it as plotname (the .png extension is added here).
func Energy(s *bdstat.Series, title, plotname string) error {
	if s.Len() == 0 {
		return Error{"Empty series", []string{"Energy"}}
	}
	p := basicPlot(title, "time (ns)", "energy (kcal/mol)")
	l, err := plotter.NewLine(xys(s.Times, s.Energies))
	if err != nil {
		return Error{err.Error(), []string{"Energy"}}
	}
	l.Color = plotutil.Color(0)
	p.Add(l)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname)); err != nil {
		return Error{err.Error(), []string{"Energy"}}
	}
	return nil
}

//Distances plots the end-to-end distance of every chain in the series
//against simulation time, one line per chain, and saves it as plotname (the
//.png extension is added here).
func Distances(s *bdstat.Series, title, plotname string) error {
	if s.Len() == 0 {
		return Error{"Empty series", []string{"Distances"}}
	}
	p := basicPlot(title, "time (ns)", "end-to-end distance (A)")
	for i := 0; i < s.NChains(); i++ {
		l, err := plotter.NewLine(xys(s.Times, s.EndToEnd(i)))
		if err != nil {
			return Error{err.Error(), []string{"Distances"}}
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("%s_%d", s.Label, i), l)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname)); err != nil {
		return Error{err.Error(), []string{"Distances"}}
	}
	return nil
}

//Error is the error type of the package. It fulfills the bd.Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return "goBD/bdplot: " + err.message }

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
