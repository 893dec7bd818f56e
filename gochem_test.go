/*
 * gochem_test.go, part of coulforce.
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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDBIO(Te *testing.T) {
	mol, err := PDBFileRead("testdata/foci.pdb")
	require.NoError(Te, err)
	assert.Equal(Te, 14, mol.Len())
	require.Len(Te, mol.Coords, 1)
	assert.Equal(Te, 14, mol.Coords[0].NVecs())
	require.Len(Te, mol.Bfactors, 1)
	assert.Equal(Te, 20.0, mol.Bfactors[0][3])

	at := mol.Atom(3)
	assert.Equal(Te, 11618, at.ID)
	assert.Equal(Te, "OD2", at.Name)
	assert.Equal(Te, "ASP", at.MolName)
	assert.Equal(Te, byte('D'), at.MolName1)
	assert.Equal(Te, 139, at.MolID)
	assert.Equal(Te, "4", at.Chain)
	assert.Equal(Te, "O", at.Symbol)
	assert.Equal(Te, -1.0, at.Charge)
	assert.Equal(Te, 1.0, at.Occupancy)
	assert.False(Te, at.Het)
	assert.Equal(Te, 10.0, mol.Coord(3, 0).At(0, 0))

	fe := mol.Atom(11)
	assert.True(Te, fe.Het)
	assert.Equal(Te, "Fe", fe.Symbol)
	assert.Equal(Te, 55.84, fe.Mass)
	assert.Equal(Te, 1.0, mol.Atom(7).Charge)
}

func TestCompressedPDB(Te *testing.T) {
	plain, err := PDBFileRead("testdata/foci.pdb")
	require.NoError(Te, err)
	for _, name := range []string{"testdata/foci.pdb.gz", "testdata/foci.pdb.zst"} {
		mol, err := PDBFileRead(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, plain.Len(), mol.Len(), name)
		assert.Equal(Te, plain.Coords[0].RawMatrix().Data, mol.Coords[0].RawMatrix().Data, name)
	}
}

func TestMultiModel(Te *testing.T) {
	mol, err := PDBFileRead("testdata/models.pdb")
	require.NoError(Te, err)
	assert.Equal(Te, 2, mol.Len())
	require.Len(Te, mol.Coords, 2)
	assert.Equal(Te, 0.0, mol.Coords[0].At(0, 2))
	assert.Equal(Te, 1.0, mol.Coords[1].At(0, 2))
	_, err = mol.Frame(2)
	assert.Error(Te, err)
	f, err := mol.Frame(1)
	require.NoError(Te, err)
	assert.Equal(Te, 1.5, f.At(1, 0))
}

func TestPDBErrors(Te *testing.T) {
	_, err := PDBFileRead("testdata/bad.pdb")
	require.Error(Te, err)
	var cerr CError
	require.ErrorAs(Te, err, &cerr)
	assert.True(Te, cerr.Critical())
	assert.Contains(Te, err.Error(), "line 2")
	assert.Equal(Te, []string{"pdbFullLine", "PDBRead", "PDBFileRead"}, Trace(err))

	_, err = PDBFileRead("testdata/does-not-exist.pdb")
	require.Error(Te, err)
	assert.Equal(Te, []string{"PDBFileRead"}, Trace(err))

	_, err = PDBRead(strings.NewReader("REMARK nothing here\n"))
	assert.Error(Te, err)

	short := "ATOM      1  N   GLY A   1       0.000   0.000\n"
	_, err = PDBRead(strings.NewReader(short))
	assert.Error(Te, err)
}

func TestPDBMinimalColumns(Te *testing.T) {
	//No occupancy, b-factor, element or charge columns.
	line := "ATOM      7  NZ  LYS B  10       1.000   2.000   3.000\n"
	mol, err := PDBRead(strings.NewReader(line))
	require.NoError(Te, err)
	at := mol.Atom(0)
	assert.Equal(Te, "N", at.Symbol)
	assert.Equal(Te, 1.0, at.Occupancy)
	assert.Equal(Te, 0.0, mol.Bfactors[0][0])
	assert.Equal(Te, 3.0, mol.Coord(0, 0).At(0, 2))
}

func TestSelection(Te *testing.T) {
	mol, err := PDBFileRead("testdata/foci.pdb")
	require.NoError(Te, err)

	glu := Selection{Chains: []string{"6"}, MolNames: []string{"GLU"}, Names: []string{"OE2"}, Records: AtomRecord}
	assert.Equal(Te, []int{5}, glu.Indexes(mol))

	//same atom name, any chain
	glu.Chains = nil
	assert.Equal(Te, []int{5, 10}, glu.Indexes(mol))

	n2 := Selection{Chains: []string{"6"}, MolNames: []string{"SF4"}, Names: []string{"S2"}, Records: HetRecord}
	assert.Equal(Te, []int{12}, n2.Indexes(mol))
	n2.Records = AtomRecord
	assert.Empty(Te, n2.Indexes(mol))

	all := Selection{}
	assert.Len(Te, all.Indexes(mol), mol.Len())
	assert.Equal(Te, "any */*/*", all.String())

	i, err := IndexByID(mol, 11221)
	require.NoError(Te, err)
	assert.Equal(Te, 1, i)
	i, err = IndexByID(mol, 20101)
	require.NoError(Te, err)
	assert.Equal(Te, 12, i)
	assert.True(Te, mol.Atom(i).Het)
	_, err = IndexByID(mol, 42)
	assert.True(Te, errors.Is(err, ErrNotFound))

	c, err := SelectCoords(mol.Coords[0], []int{1, 3})
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0, 0, 10, 0, 0}, c.RawMatrix().Data)
	c, err = SelectCoords(mol.Coords[0], nil)
	assert.NoError(Te, err)
	assert.Nil(Te, c)
	_, err = SelectCoords(mol.Coords[0], []int{100})
	assert.Error(Te, err)
}

func TestRecordJSON(Te *testing.T) {
	var r Record
	require.NoError(Te, r.UnmarshalJSON([]byte(`"hetatm"`)))
	assert.Equal(Te, HetRecord, r)
	require.NoError(Te, r.UnmarshalJSON([]byte(`""`)))
	assert.Equal(Te, AnyRecord, r)
	assert.Error(Te, r.UnmarshalJSON([]byte(`"ANISOU"`)))
	b, err := AtomRecord.MarshalJSON()
	require.NoError(Te, err)
	assert.Equal(Te, `"ATOM"`, string(b))
}

func TestSymbolFromName(Te *testing.T) {
	cases := map[string]string{"CA": "C", "OE2": "O", "NZ": "N", "FE1": "Fe", "S2": "S", "HD21": "H", "ZN": "Zn"}
	for name, sym := range cases {
		s, err := symbolFromName(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, sym, s, name)
	}
	_, err := symbolFromName("XX")
	assert.Error(Te, err)
}
