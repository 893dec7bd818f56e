/*
 * calc.go, part of coulforce.
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

package coulomb

import (
	"fmt"
	"io"
	"log/slog"

	chem "github.com/rmera/coulforce"
	v3 "github.com/rmera/coulforce/v3"
	"gonum.org/v1/gonum/floats"
)

// Contribution is the force and energy a group exerts on a focus atom.
type Contribution struct {
	Group  *Group
	Count  int //number of group atoms that contributed
	Force  *v3.Matrix
	Energy float64
}

// Result contains the per-group contributions and the total force and
// energy on a focus atom.
type Result struct {
	Focus         *Focus
	Contributions []*Contribution
	Total         *v3.Matrix
	Energy        float64
}

// Magnitude returns the norm of the total force.
func (R *Result) Magnitude() float64 {
	return R.Total.Norm(0)
}

// Calculator sums the Coulomb forces of sets of groups on focus atoms.
// The zero value uses a Coulomb constant of 1 and doesn't log.
type Calculator struct {
	K      float64
	Logger *slog.Logger
}

func (C *Calculator) k() float64 {
	if C.K == 0 {
		return 1
	}
	return C.K
}

func (C *Calculator) logger() *slog.Logger {
	if C.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return C.Logger
}

// Analyze obtains, for each focus atom, the force and energy contributions of each group, and
// their sums. A focus atom that is also a member of a group doesn't interact with itself.
// Empty groups contribute zero, and are reported with a warning.
func (C *Calculator) Analyze(foci []*Focus, groups []*Group) ([]*Result, error) {
	log := C.logger()
	k := C.k()
	for _, g := range groups {
		if g.Len() == 0 {
			log.Warn("empty group, it will not contribute", "group", g.Name, "selection", g.Selection.String())
		}
	}
	results := make([]*Result, 0, len(foci))
	for _, f := range foci {
		res := &Result{Focus: f, Total: v3.Zeros(1), Contributions: make([]*Contribution, 0, len(groups))}
		for _, g := range groups {
			g = g.without(f.Atom)
			force, err := TotalForce(f.Charge, f.Coord, g)
			if err != nil {
				return nil, fmt.Errorf("Analyze: focus %s: %w", f.Name, err)
			}
			e, err := GroupEnergy(f.Charge, f.Coord, g)
			if err != nil {
				return nil, fmt.Errorf("Analyze: focus %s: %w", f.Name, err)
			}
			floats.Scale(k, force.RawRowView(0))
			e *= k
			floats.Add(res.Total.RawRowView(0), force.RawRowView(0))
			res.Energy += e
			res.Contributions = append(res.Contributions, &Contribution{Group: g, Count: g.Len(), Force: force, Energy: e})
			log.Debug("group contribution", "focus", f.Name, "group", g.Name, "atoms", g.Len(), "force", force.RawRowView(0), "energy", e)
		}
		log.Debug("total force", "focus", f.Name, "force", res.Total.RawRowView(0), "magnitude", res.Magnitude())
		results = append(results, res)
	}
	return results, nil
}

// without returns the group G minus the atom at. If at is not in the
// group, G itself is returned.
func (G *Group) without(at *chem.Atom) *Group {
	if at == nil {
		return G
	}
	keep := make([]int, 0, G.Len())
	for i, a := range G.Atoms {
		if a != at {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(G.Atoms) {
		return G
	}
	ret := &Group{Name: G.Name, Charge: G.Charge, Selection: G.Selection, Atoms: make([]*chem.Atom, 0, len(keep))}
	for _, i := range keep {
		ret.Atoms = append(ret.Atoms, G.Atoms[i])
	}
	if len(keep) > 0 {
		ret.Coords = v3.Zeros(len(keep))
		ret.Coords.SomeVecs(G.Coords, keep)
	}
	return ret
}
