/*
 * setup.go, part of coulforce.
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
	"encoding/json"
	"fmt"
	"io"
	"os"

	chem "github.com/rmera/coulforce"
	v3 "github.com/rmera/coulforce/v3"
)

// FocusSpec identifies a focus atom by its PDB serial number.
type FocusSpec struct {
	Name   string  `json:"name"`
	ID     int     `json:"id"`
	Charge float64 `json:"charge"`
}

// GroupSpec describes a group of charged atoms. Empty lists match anything.
type GroupSpec struct {
	Name     string      `json:"name"`
	Chains   []string    `json:"chains,omitempty"`
	MolNames []string    `json:"molnames,omitempty"`
	Names    []string    `json:"names,omitempty"`
	Record   chem.Record `json:"record"`
	Charge   float64     `json:"charge"`
}

// Selection returns the atom selection described by G.
func (G GroupSpec) Selection() chem.Selection {
	return chem.Selection{Chains: G.Chains, MolNames: G.MolNames, Names: G.Names, Records: G.Record}
}

// Setup is the full description of an analysis: which atoms are the foci,
// which groups act on them, and the Coulomb constant to use (1 if zero).
type Setup struct {
	K      float64     `json:"k,omitempty"`
	Focus  []FocusSpec `json:"focus"`
	Groups []GroupSpec `json:"groups"`
}

// DefaultSetup returns the setup for the complex I analysis: the forces on
// TYR87 and ASP139 from the charged residues of chain 6 and from the N2 iron-sulfur
// cluster.
func DefaultSetup() *Setup {
	chain := []string{"6"}
	return &Setup{
		K: 1,
		Focus: []FocusSpec{
			{Name: "TYR87", ID: 11221, Charge: -1},
			{Name: "ASP139", ID: 11618, Charge: -1},
		},
		Groups: []GroupSpec{
			{Name: "GLU", Chains: chain, MolNames: []string{"GLU"}, Names: []string{"OE2"}, Record: chem.AtomRecord, Charge: -1},
			{Name: "ASP", Chains: chain, MolNames: []string{"ASP"}, Names: []string{"OD2"}, Record: chem.AtomRecord, Charge: -1},
			{Name: "ARG", Chains: chain, MolNames: []string{"ARG"}, Names: []string{"NH1"}, Record: chem.AtomRecord, Charge: 1},
			{Name: "LYS", Chains: chain, MolNames: []string{"LYS"}, Names: []string{"NZ"}, Record: chem.AtomRecord, Charge: 1},
			{Name: "N2", Chains: chain, MolNames: []string{"SF4"}, Names: []string{"S2"}, Record: chem.HetRecord, Charge: -2},
		},
	}
}

// ReadSetup decodes a JSON setup from r and validates it.
func ReadSetup(r io.Reader) (*Setup, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	s := new(Setup)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("ReadSetup: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("ReadSetup: %w", err)
	}
	return s, nil
}

// SetupFileRead reads a JSON setup from the file name.
func SetupFileRead(name string) (*Setup, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("SetupFileRead: %w", err)
	}
	defer f.Close()
	return ReadSetup(f)
}

// Validate checks that the setup has at least one focus atom, and that
// names are present and unique.
func (S *Setup) Validate() error {
	if len(S.Focus) == 0 {
		return fmt.Errorf("Validate: no focus atoms given")
	}
	seen := make(map[string]bool)
	for i, f := range S.Focus {
		if f.Name == "" {
			return fmt.Errorf("Validate: focus %d has no name", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("Validate: duplicated focus name %s", f.Name)
		}
		seen[f.Name] = true
	}
	seen = make(map[string]bool)
	for i, g := range S.Groups {
		if g.Name == "" {
			return fmt.Errorf("Validate: group %d has no name", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("Validate: duplicated group name %s", g.Name)
		}
		seen[g.Name] = true
	}
	return nil
}

// Build selects the focus atoms and the groups described by the setup from the
// given frame of mol. A focus atom which is not in mol is an error, while a
// group can be empty.
func (S *Setup) Build(mol *chem.Molecule, frame int) ([]*Focus, []*Group, error) {
	coords, err := mol.Frame(frame)
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}
	foci := make([]*Focus, 0, len(S.Focus))
	for _, fs := range S.Focus {
		i, err := chem.IndexByID(mol, fs.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("Build: focus %s: %w", fs.Name, err)
		}
		c := v3.Zeros(1)
		c.Copy(coords.VecView(i))
		foci = append(foci, &Focus{Name: fs.Name, Charge: fs.Charge, Atom: mol.Atom(i), Coord: c})
	}
	groups := make([]*Group, 0, len(S.Groups))
	for _, gs := range S.Groups {
		sel := gs.Selection()
		indexes := sel.Indexes(mol)
		c, err := chem.SelectCoords(coords, indexes)
		if err != nil {
			return nil, nil, fmt.Errorf("Build: group %s: %w", gs.Name, err)
		}
		g := &Group{Name: gs.Name, Charge: gs.Charge, Selection: sel, Coords: c, Atoms: make([]*chem.Atom, 0, len(indexes))}
		for _, i := range indexes {
			g.Atoms = append(g.Atoms, mol.Atom(i))
		}
		groups = append(groups, g)
	}
	return foci, groups, nil
}
