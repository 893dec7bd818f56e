/*
 * doc.go, part of coulforce.
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

/*
Package coulomb calculates point-charge electrostatic forces and energies on a few
focus atoms, exerted by groups of charged atoms selected from a structure.

Each group has one nominal charge, shared by all its atoms. The force on a focus
atom with charge q1 at r1 from a charge q2 at r2 is

	F = K * q1*q2/|r1-r2|^2 * (r1-r2)/|r1-r2|

with K = 1 unless a Calculator is given another constant (see KcalMolAngstrom).
*/
package coulomb
