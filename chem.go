/*
 * chem.go, part of coulforce.
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

package chem

import (
	"fmt"

	v3 "github.com/rmera/coulforce/v3"
)

/**Note: Some functions here panic instead of returning errors. They are "fundamental"
 * functions: if something goes wrong here, the program is most likely wrong and should
 * crash. Those panics are related to using the function on a nil object or trying to
 * access out-of-bounds fields**/

// Atom contains the atoms read except for the coordinates, which will be in a matrix,
// and the b-factors, which are in a separate slice of float64.
type Atom struct {
	Name      string  //PDB name of the atom
	ID        int     //The PDB serial number
	MolName   string  //PDB name of the residue or molecule (3-letter code for residues)
	MolName1  byte    //the one letter name for residues and nucleotids
	MolID     int     //PDB index of the corresponding residue or molecule
	Chain     string  //One-character PDB name for a chain.
	Mass      float64 //hopefully all these float64 are not too much memory
	Occupancy float64
	Charge    float64 //formal charge, if present in the file.
	Symbol    string
	Het       bool // is the atom a HETATM in the pdb file?
}

// String returns a short description of the atom, in the usual
// RESNUM:CHAIN/NAME format.
func (N *Atom) String() string {
	return fmt.Sprintf("%s%d:%s/%s(%d)", N.MolName, N.MolID, N.Chain, N.Name, N.ID)
}

/*****Topology type***/

// Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates and b-factors)
type Topology struct {
	Atoms []*Atom
}

// NewTopology returns a topology with the given atoms.
func NewTopology(ats []*Atom) *Topology {
	if ats == nil {
		ats = make([]*Atom, 0)
	}
	return &Topology{Atoms: ats}
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic(ErrAtomOutOfRange)
	}
	return T.Atoms[i]
}

// AppendAtom appends an atom at the end of the reference
func (T *Topology) AppendAtom(at *Atom) {
	T.Atoms = append(T.Atoms, at)
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

/**Type Molecule**/

// Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
// Coordinates and b-factors are stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords   []*v3.Matrix
	Bfactors [][]float64
}

// NewMolecule makes a molecule with ats atoms, coords coordinates and bfactors b-factors,
// and returns it. It returns error if any of the coordinate frames doesn't have as many
// vectors as there are atoms.
func NewMolecule(coords []*v3.Matrix, ats Atomer, bfactors [][]float64) (*Molecule, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil Topology", []string{"NewMolecule"}, true}
	}
	if len(coords) == 0 {
		return nil, CError{"Supplied no coordinates", []string{"NewMolecule"}, true}
	}
	for i, c := range coords {
		if c.NVecs() != ats.Len() {
			return nil, CError{fmt.Sprintf("Frame %d has %d coordinates for %d atoms", i, c.NVecs(), ats.Len()), []string{"NewMolecule"}, true}
		}
	}
	mol := new(Molecule)
	if top, ok := ats.(*Topology); ok {
		mol.Topology = top
	} else {
		mol.Topology = NewTopology(make([]*Atom, 0, ats.Len()))
		for i := 0; i < ats.Len(); i++ {
			mol.AppendAtom(ats.Atom(i))
		}
	}
	mol.Coords = coords
	mol.Bfactors = bfactors
	return mol, nil
}

// Frame returns the coordinates of the given frame of the molecule,
// or an error if the frame doesn't exist.
func (M *Molecule) Frame(frame int) (*v3.Matrix, error) {
	if frame < 0 || frame >= len(M.Coords) {
		return nil, CError{fmt.Sprintf("Frame %d requested, but the molecule has %d frames", frame, len(M.Coords)), []string{"Frame"}, true}
	}
	return M.Coords[frame], nil
}

// Coord returns a view of the coordinates of atom i in the given frame.
// Panics if out of range.
func (M *Molecule) Coord(i, frame int) *v3.Matrix {
	return M.Coords[frame].VecView(i)
}
