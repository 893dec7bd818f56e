/*
 * pdb.go, part of coulforce.
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
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/coulforce/v3"
)

//PDBRead family

// The shortest ATOM/HETATM line we accept must reach the end of the z coordinate.
const pdbMinLine = 54

// Parses a valid ATOM or HETATM line of a PDB file, returns an Atom
// object with the info except for the coordinates and b-factors, which  are returned
// separately as an array of 3 float64 and a float64, respectively
func pdbFullLine(line string, lineno int) (*Atom, []float64, float64, error) {
	atom := new(Atom)
	var err error
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return nil, nil, 0, pdbLineError(lineno, "serial number", err)
	}
	atom.Name = strings.TrimSpace(line[12:16])
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.MolName1 = three2OneLetter[atom.MolName]
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, nil, 0, pdbLineError(lineno, "residue number", err)
	}
	coords, bfactor, err := pdbCoordsLine(line, lineno)
	if err != nil {
		return nil, nil, 0, err
	}
	atom.Occupancy = 1.0
	if len(line) >= 60 {
		if f := strings.TrimSpace(line[54:60]); f != "" {
			atom.Occupancy, err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, 0, pdbLineError(lineno, "occupancy", err)
			}
		}
	}
	//The element and charge columns are optional, we just
	//ignore them if they are missing or ill-formed.
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
		if len(atom.Symbol) == 2 {
			atom.Symbol = atom.Symbol[:1] + strings.ToLower(atom.Symbol[1:])
		}
	}
	if len(line) >= 80 {
		atom.Charge = pdbCharge(line[78:80])
	}
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	atom.Mass = symbolMass[atom.Symbol]
	return atom, coords, bfactor, nil
}

// pdbCoordsLine parses only the coordinates and b-factor from an ATOM or HETATM line.
// A missing b-factor column is read as zero.
func pdbCoordsLine(line string, lineno int) ([]float64, float64, error) {
	coords := make([]float64, 3)
	var err error
	for i := 0; i < 3; i++ {
		start := 30 + 8*i
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(line[start:start+8]), 64)
		if err != nil {
			return nil, 0, pdbLineError(lineno, fmt.Sprintf("coordinate %d", i), err)
		}
	}
	var bfactor float64
	if len(line) >= 66 {
		if f := strings.TrimSpace(line[60:66]); f != "" {
			bfactor, err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, 0, pdbLineError(lineno, "b-factor", err)
			}
		}
	}
	return coords, bfactor, nil
}

// pdbCharge reads the 2-column charge field ("2-", "1+"). Anything else is 0.
func pdbCharge(field string) float64 {
	field = strings.TrimSpace(field)
	if len(field) != 2 {
		return 0
	}
	n, err := strconv.Atoi(field[:1])
	if err != nil {
		return 0
	}
	switch field[1] {
	case '-':
		return float64(-n)
	case '+':
		return float64(n)
	}
	return 0
}

func pdbLineError(lineno int, field string, err error) error {
	return CError{fmt.Sprintf("Couldn't read %s in line %d: %s", field, lineno, err.Error()), []string{"pdbFullLine"}, true}
}

// PDBRead reads the ATOM and HETATM records of a PDB file from an io.Reader and returns a Molecule.
// The atom information is taken from the first model only; every model adds one frame of coordinates
// and b-factors. If there is one model in the PDB, the coordinates slice will be of length 1.
func PDBRead(r io.Reader) (*Molecule, error) {
	pdb := bufio.NewReader(r)
	top := NewTopology(nil)
	coords := [][]float64{make([]float64, 0, 3)}
	bfactors := [][]float64{make([]float64, 0)}
	firstModel := true //are we reading the first model? if not we only save coordinates
	lineno := 0
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errDecorate(err, "PDBRead")
		}
		lineno++
		line = strings.TrimRight(line, "\r\n")
		hp := strings.HasPrefix
		switch {
		case hp(line, "ATOM") || hp(line, "HETATM"):
			if len(line) < pdbMinLine {
				return nil, CError{fmt.Sprintf("Line %d too short for an atom record: %d characters", lineno, len(line)), []string{"PDBRead"}, true}
			}
			var c []float64
			var bfac float64
			var err2 error
			if firstModel {
				var at *Atom
				at, c, bfac, err2 = pdbFullLine(line, lineno)
				if err2 == nil {
					top.AppendAtom(at)
				}
			} else {
				c, bfac, err2 = pdbCoordsLine(line, lineno)
			}
			if err2 != nil {
				return nil, errDecorate(err2, "PDBRead")
			}
			last := len(coords) - 1
			coords[last] = append(coords[last], c...)
			bfactors[last] = append(bfactors[last], bfac)
		case hp(line, "MODEL"):
			//A new frame starts only if we already have atoms in the current one.
			if len(coords[len(coords)-1]) > 0 {
				firstModel = false
				coords = append(coords, make([]float64, 0, top.Len()*3))
				bfactors = append(bfactors, make([]float64, 0, top.Len()))
			}
		}
		if err == io.EOF {
			break
		}
	}
	if top.Len() == 0 {
		return nil, CError{"No atoms found in PDB input", []string{"PDBRead"}, true}
	}
	//A trailing MODEL record with no atoms doesn't make a frame.
	if len(coords[len(coords)-1]) == 0 {
		coords = coords[:len(coords)-1]
		bfactors = bfactors[:len(bfactors)-1]
	}
	frames := make([]*v3.Matrix, len(coords))
	for i, c := range coords {
		if len(c) != top.Len()*3 {
			return nil, CError{fmt.Sprintf("Model %d has %d atoms, the first one has %d", i+1, len(c)/3, top.Len()), []string{"PDBRead"}, true}
		}
		var err error
		frames[i], err = v3.NewMatrix(c)
		if err != nil {
			return nil, errDecorate(err, "PDBRead")
		}
	}
	mol, err := NewMolecule(frames, top, bfactors)
	return mol, errDecorate(err, "PDBRead")
}

// PDBFileRead reads a PDB file and returns a Molecule. Files with the .gz extension
// are decompressed with gzip, and files with the .zst extension with zstandard.
func PDBFileRead(pdbname string) (*Molecule, error) {
	r, closer, err := openStructure(pdbname)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	defer closer()
	mol, err := PDBRead(r)
	return mol, errDecorate(err, "PDBFileRead")
}

// StructureFileRead reads a PDB or mmCIF file, choosing the reader from the file
// extension (.cif and .mmcif are read as mmCIF, anything else as PDB), after
// removing any .gz or .zst compression extension.
func StructureFileRead(name string) (*Molecule, error) {
	var mol *Molecule
	var err error
	switch strings.ToLower(filepath.Ext(trimCompressionExt(name))) {
	case ".cif", ".mmcif":
		mol, err = PDBxFileRead(name)
	default:
		mol, err = PDBFileRead(name)
	}
	return mol, errDecorate(err, "StructureFileRead")
}

func trimCompressionExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".zst", ".zstd":
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// openStructure opens the file name, and wraps it in a decompressor if
// the extension is .gz or .zst. The returned function closes everything.
func openStructure(name string) (io.Reader, func(), error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return gz, func() { gz.Close(); f.Close() }, nil
	case ".zst", ".zstd":
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zs, func() { zs.Close(); f.Close() }, nil
	}
	return f, func() { f.Close() }, nil
}

//End PDBRead family
