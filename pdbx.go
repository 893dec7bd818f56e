/*
 * pdbx.go, part of coulforce.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/coulforce/v3"
)

// The _atom_site columns we use. The auth_ ones are preferred, since they
// are the ones in the equivalent PDB files, but we fall back to the label_ ones.
var pdbxColumns = []string{
	"_atom_site.group_pdb",
	"_atom_site.id",
	"_atom_site.type_symbol",
	"_atom_site.label_atom_id",
	"_atom_site.label_comp_id",
	"_atom_site.label_asym_id",
	"_atom_site.label_seq_id",
	"_atom_site.cartn_x",
	"_atom_site.cartn_y",
	"_atom_site.cartn_z",
	"_atom_site.occupancy",
	"_atom_site.b_iso_or_equiv",
	"_atom_site.pdbx_formal_charge",
	"_atom_site.auth_seq_id",
	"_atom_site.auth_comp_id",
	"_atom_site.auth_asym_id",
	"_atom_site.auth_atom_id",
	"_atom_site.pdbx_pdb_model_num",
}

// pdbxmap maps the (lowercase) _atom_site column names to their position in a row.
type pdbxmap map[string]int

func newPdbxmap() pdbxmap {
	m := make(pdbxmap, len(pdbxColumns))
	for _, v := range pdbxColumns {
		m[v] = -1
	}
	return m
}

// adds i to the map[string] entry, if it exists. If not,
// does nothing.
func (m pdbxmap) add(s string, i int) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := m[s]; ok {
		m[s] = i
	}
}

// value returns the content of the first of the given columns that is present
// in data and not empty, and whether such a column was found.
func (m pdbxmap) value(data []string, cols ...string) (string, bool) {
	for _, c := range cols {
		k, ok := m[c]
		if !ok || k < 0 || k >= len(data) {
			continue
		}
		if s := data[k]; s != "?" && s != "." {
			return s, true
		}
	}
	return "", false
}

// pdbxFields splits an mmCIF data line into its values, honoring
// single and double quotes.
func pdbxFields(line string) []string {
	fields := make([]string, 0, 20)
	for i := 0; i < len(line); {
		c := line[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}
		if c == '\'' || c == '"' {
			//A quote only closes a value if followed by a blank or the end of the line.
			j := i + 1
			for j < len(line) && !(line[j] == c && (j+1 == len(line) || line[j+1] == ' ' || line[j+1] == '\t')) {
				j++
			}
			fields = append(fields, line[i+1:min(j, len(line))])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		fields = append(fields, line[i:j])
		i = j
	}
	return fields
}

func pdbxFillAtom(data []string, m pdbxmap) (*Atom, error) {
	at := new(Atom)
	var err error
	id, _ := m.value(data, "_atom_site.id")
	if at.ID, err = strconv.Atoi(id); err != nil {
		return nil, fmt.Errorf("pdbxFillAtom: Couldn't parse ID from %q: %w", id, err)
	}
	at.Name, _ = m.value(data, "_atom_site.auth_atom_id", "_atom_site.label_atom_id")
	at.MolName, _ = m.value(data, "_atom_site.auth_comp_id", "_atom_site.label_comp_id")
	at.MolName1 = three2OneLetter[at.MolName]
	at.Chain, _ = m.value(data, "_atom_site.auth_asym_id", "_atom_site.label_asym_id")
	if s, ok := m.value(data, "_atom_site.auth_seq_id", "_atom_site.label_seq_id"); ok {
		if at.MolID, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("pdbxFillAtom: Couldn't parse MolID from %q: %w", s, err)
		}
	}
	at.Occupancy = 1.0
	if s, ok := m.value(data, "_atom_site.occupancy"); ok {
		if at.Occupancy, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("pdbxFillAtom: Couldn't parse Occupancy from %q: %w", s, err)
		}
	}
	//Charge, but we won't do anything if we somehow can't read it.
	if s, ok := m.value(data, "_atom_site.pdbx_formal_charge"); ok {
		at.Charge, _ = strconv.ParseFloat(s, 64)
	}
	if s, ok := m.value(data, "_atom_site.type_symbol"); ok {
		at.Symbol = s
		if len(s) == 2 {
			at.Symbol = s[:1] + strings.ToLower(s[1:])
		}
	} else {
		at.Symbol, _ = symbolFromName(at.Name)
	}
	at.Mass = symbolMass[at.Symbol]
	g, _ := m.value(data, "_atom_site.group_pdb")
	at.Het = g == "HETATM"
	return at, nil
}

func pdbxFillCoords(data []string, coord []float64, m pdbxmap) ([]float64, error) {
	c := []string{"_atom_site.cartn_x", "_atom_site.cartn_y", "_atom_site.cartn_z"}
	for j, v := range c {
		s, ok := m.value(data, v)
		if !ok {
			return coord, fmt.Errorf("pdbxFillCoords: Field %s not present in data %v", v, data)
		}
		fl, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return coord, fmt.Errorf("pdbxFillCoords: Couldn't parse %d cartesian coordinate from %s: %w", j, s, err)
		}
		coord = append(coord, fl)
	}
	return coord, nil
}

// PDBxRead reads the _atom_site loop of an mmCIF (PDBx) file from an io.Reader and returns a Molecule.
// As with PDBRead, the atoms are read from the first model and each model is one frame of coordinates.
// Missing b-factors are read as zero.
func PDBxRead(r io.Reader) (*Molecule, error) {
	pdb := bufio.NewReader(r)
	m := newPdbxmap()
	top := NewTopology(nil)
	coords := [][]float64{make([]float64, 0, 3)}
	bfactors := [][]float64{make([]float64, 0)}
	currentmodel := 0
	var inloop, reading, done bool
	field := 0
	hp := strings.HasPrefix
	lineno := 0
	for !done {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errDecorate(err, "PDBxRead")
		}
		if err == io.EOF {
			done = true
		}
		lineno++
		line = strings.TrimSpace(line)
		switch {
		case line == "" || hp(line, ";"):
			continue
		case hp(line, "#"):
			//end of a category. We read only one _atom_site loop.
			if reading && top.Len() > 0 {
				done = true
			}
			inloop, reading = false, false
			continue
		case strings.EqualFold(line, "loop_"):
			if reading && top.Len() > 0 {
				done = true
			}
			inloop, reading, field = true, false, 0
			continue
		case hp(line, "_"):
			if inloop && hp(strings.ToLower(line), "_atom_site.") {
				reading = true
				m.add(strings.Fields(line)[0], field)
				field++
			} else {
				reading = false
			}
			continue
		}
		if !reading {
			continue
		}
		data := pdbxFields(line)
		model := 1
		if s, ok := m.value(data, "_atom_site.pdbx_pdb_model_num"); ok {
			if model, err = strconv.Atoi(s); err != nil {
				return nil, CError{fmt.Sprintf("Couldn't parse model number from %q in line %d", s, lineno), []string{"PDBxRead"}, true}
			}
		}
		if currentmodel == 0 {
			currentmodel = model
		}
		firstModel := len(coords) == 1
		if model != currentmodel {
			coords = append(coords, make([]float64, 0, top.Len()*3))
			bfactors = append(bfactors, make([]float64, 0, top.Len()))
			currentmodel = model
			firstModel = false
		}
		//we don't read the atoms again for the next models.
		if firstModel {
			at, err := pdbxFillAtom(data, m)
			if err != nil {
				return nil, CError{fmt.Sprintf("line %d: %s", lineno, err.Error()), []string{"pdbxFillAtom", "PDBxRead"}, true}
			}
			top.AppendAtom(at)
		}
		c := len(coords) - 1
		coords[c], err = pdbxFillCoords(data, coords[c], m)
		if err != nil {
			return nil, CError{fmt.Sprintf("line %d: %s", lineno, err.Error()), []string{"pdbxFillCoords", "PDBxRead"}, true}
		}
		var bfac float64
		if s, ok := m.value(data, "_atom_site.b_iso_or_equiv"); ok {
			bfac, _ = strconv.ParseFloat(s, 64)
		}
		bfactors[c] = append(bfactors[c], bfac)
	}
	if top.Len() == 0 {
		return nil, CError{"No _atom_site records found in PDBx input", []string{"PDBxRead"}, true}
	}
	frames := make([]*v3.Matrix, len(coords))
	for i, c := range coords {
		if len(c) != top.Len()*3 {
			return nil, CError{fmt.Sprintf("Model %d has %d atoms, the first one has %d", i+1, len(c)/3, top.Len()), []string{"PDBxRead"}, true}
		}
		var err error
		if frames[i], err = v3.NewMatrix(c); err != nil {
			return nil, errDecorate(err, "PDBxRead")
		}
	}
	mol, err := NewMolecule(frames, top, bfactors)
	return mol, errDecorate(err, "PDBxRead")
}

// PDBxFileRead reads an mmCIF file, decompressing it if its name ends in .gz or .zst.
func PDBxFileRead(name string) (*Molecule, error) {
	r, closer, err := openStructure(name)
	if err != nil {
		return nil, errDecorate(err, "PDBxFileRead")
	}
	defer closer()
	mol, err := PDBxRead(r)
	return mol, errDecorate(err, "PDBxFileRead")
}
