/*
 * force.go, part of coulforce.
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
	"errors"
	"fmt"

	chem "github.com/rmera/coulforce"
	v3 "github.com/rmera/coulforce/v3"
	"gonum.org/v1/gonum/floats"
)

// KcalMolAngstrom is the Coulomb constant in kcal*A/(mol*e^2). With it, and
// charges in elementary charge units and distances in Angstrom, forces come out in
// kcal/(mol*A) and energies in kcal/mol. The default constant is 1.
const KcalMolAngstrom = 332.0637

// ErrCoincident is returned (wrapped) when two charges are at the same position.
var ErrCoincident = errors.New("coincident charges")

// Group is a set of atoms which share one nominal charge.
type Group struct {
	Name      string
	Charge    float64
	Selection chem.Selection
	Atoms     []*chem.Atom
	Coords    *v3.Matrix //nil for an empty group
}

// Len returns the number of atoms in the group.
func (G *Group) Len() int {
	if G.Coords == nil {
		return 0
	}
	return G.Coords.NVecs()
}

// Focus is a single atom for which the total force is calculated.
type Focus struct {
	Name   string
	Charge float64
	Atom   *chem.Atom
	Coord  *v3.Matrix //1x3
}

// Force returns the force that a charge q2 at r2 exerts on a charge q1 at r1,
// with a Coulomb constant of 1, i.e. q1*q2/|r1-r2|^2 along the r2->r1 direction.
// Like charges repel. Only the first vector of r1 and r2 is considered.
func Force(q1, q2 float64, r1, r2 *v3.Matrix) (*v3.Matrix, error) {
	f := v3.Zeros(1)
	err := ForceMem(q1, q2, r1, r2, f)
	return f, err
}

// ForceMem is Force, but puts the result in f instead of allocating a new matrix.
func ForceMem(q1, q2 float64, r1, r2, f *v3.Matrix) error {
	fv := f.RawRowView(0)
	floats.SubTo(fv, r1.RawRowView(0), r2.RawRowView(0))
	r := floats.Norm(fv, 2)
	if r == 0 {
		return fmt.Errorf("ForceMem: %w at %v", ErrCoincident, r1.RawRowView(0))
	}
	//q1q2/r^2 times the unit vector r12/r.
	floats.Scale(q1*q2/(r*r*r), fv)
	return nil
}

// Energy returns the electrostatic potential energy between the charges q1 at r1 and
// q2 at r2, with a Coulomb constant of 1.
func Energy(q1, q2 float64, r1, r2 *v3.Matrix) (float64, error) {
	r := floats.Distance(r1.RawRowView(0), r2.RawRowView(0), 2)
	if r == 0 {
		return 0, fmt.Errorf("Energy: %w at %v", ErrCoincident, r1.RawRowView(0))
	}
	return q1 * q2 / r, nil
}

// TotalForce returns the sum of the forces exerted by every atom in the group g on a
// charge q at r, with a Coulomb constant of 1. An empty group gives a zero force.
func TotalForce(q float64, r *v3.Matrix, g *Group) (*v3.Matrix, error) {
	total := v3.Zeros(1)
	tmp := v3.Zeros(1)
	for i := 0; i < g.Len(); i++ {
		if err := ForceMem(q, g.Charge, r, g.Coords.VecView(i), tmp); err != nil {
			return nil, fmt.Errorf("TotalForce: group %s, atom %d: %w", g.Name, i, err)
		}
		floats.Add(total.RawRowView(0), tmp.RawRowView(0))
	}
	return total, nil
}

// GroupEnergy returns the sum of the pair energies between the charge q at r and
// every atom in the group g, with a Coulomb constant of 1.
func GroupEnergy(q float64, r *v3.Matrix, g *Group) (float64, error) {
	var e float64
	for i := 0; i < g.Len(); i++ {
		ei, err := Energy(q, g.Charge, r, g.Coords.VecView(i))
		if err != nil {
			return 0, fmt.Errorf("GroupEnergy: group %s, atom %d: %w", g.Name, i, err)
		}
		e += ei
	}
	return e, nil
}
