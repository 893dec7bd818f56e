/*
 * forces.go, part of coulforce
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package chemplot draws the results of coulomb analyses using gonum/plot.
package chemplot

import (
	"fmt"

	"github.com/rmera/coulforce/coulomb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicBarPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Group"
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// groupNames returns the names of the groups in the first result.
// All the results must have the same groups, in the same order.
func groupNames(results []*coulomb.Result) ([]string, error) {
	names := make([]string, 0, len(results[0].Contributions))
	for _, c := range results[0].Contributions {
		names = append(names, c.Group.Name)
	}
	for _, r := range results[1:] {
		if len(r.Contributions) != len(names) {
			return nil, fmt.Errorf("groupNames: focus %s has %d groups, %s has %d", r.Focus.Name, len(r.Contributions), results[0].Focus.Name, len(names))
		}
		for i, c := range r.Contributions {
			if c.Group.Name != names[i] {
				return nil, fmt.Errorf("groupNames: group %d is %s for focus %s but %s for %s", i, c.Group.Name, r.Focus.Name, names[i], results[0].Focus.Name)
			}
		}
	}
	return names, nil
}

func barPlot(results []*coulomb.Result, value func(*coulomb.Contribution) float64, title, ylabel, filename string) error {
	if len(results) == 0 {
		return fmt.Errorf("barPlot: no results to plot")
	}
	names, err := groupNames(results)
	if err != nil {
		return err
	}
	p := basicBarPlot(title, ylabel)
	w := vg.Points(14)
	n := len(results)
	for key, r := range results {
		vals := make(plotter.Values, len(r.Contributions))
		for i, c := range r.Contributions {
			vals[i] = value(c)
		}
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return fmt.Errorf("barPlot: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = colors(key, n)
		//bar sets side by side, centered on each group.
		bars.Offset = vg.Length(float64(key)-float64(n-1)/2) * w
		p.Add(bars)
		p.Legend.Add(r.Focus.Name, bars)
	}
	p.NominalX(names...)
	width := vg.Length(len(names)*n)*w + 2*vg.Inch
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	if err := p.Save(width, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("barPlot: %w", err)
	}
	return nil
}

// ForceBars saves to filename a bar plot with the magnitude of the force exerted by
// each group on each focus atom. The format is taken from the file extension (png, svg, pdf...).
func ForceBars(results []*coulomb.Result, title, filename string) error {
	f := func(c *coulomb.Contribution) float64 { return c.Force.Norm(0) }
	return barPlot(results, f, title, "|F|", filename)
}

// EnergyBars is like ForceBars, but plots the interaction energy of each group
// with each focus atom.
func EnergyBars(results []*coulomb.Result, title, filename string) error {
	f := func(c *coulomb.Contribution) float64 { return c.Energy }
	return barPlot(results, f, title, "E", filename)
}
