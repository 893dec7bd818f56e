/*
 * pdbx_test.go, part of coulforce.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mmCIF test file is the same structure as foci.pdb.
func TestPDBxRead(Te *testing.T) {
	pdb, err := PDBFileRead("testdata/foci.pdb")
	require.NoError(Te, err)
	for _, name := range []string{"testdata/foci.cif", "testdata/foci.cif.gz"} {
		cif, err := PDBxFileRead(name)
		require.NoError(Te, err, name)
		require.Equal(Te, pdb.Len(), cif.Len(), name)
		for i := 0; i < pdb.Len(); i++ {
			assert.Equal(Te, pdb.Atom(i), cif.Atom(i), "%s atom %d", name, i)
		}
		require.Len(Te, cif.Coords, 1)
		assert.Equal(Te, pdb.Coords[0].RawMatrix().Data, cif.Coords[0].RawMatrix().Data, name)
		assert.Equal(Te, pdb.Bfactors, cif.Bfactors, name)
	}
}

func TestPDBxMultiModel(Te *testing.T) {
	mol, err := PDBxFileRead("testdata/models.cif")
	require.NoError(Te, err)
	assert.Equal(Te, 2, mol.Len())
	require.Len(Te, mol.Coords, 2)
	assert.Equal(Te, 1.0, mol.Coords[0].At(0, 0))
	assert.Equal(Te, 1.5, mol.Coords[1].At(0, 0))
	//no auth_ columns in this one, so the label_ ones are used.
	assert.Equal(Te, "A", mol.Atom(1).Chain)
	assert.Equal(Te, "CA", mol.Atom(1).Name)
	assert.Equal(Te, "C", mol.Atom(1).Symbol)
	assert.Equal(Te, 0.0, mol.Bfactors[1][1])
}

func TestPDBxErrors(Te *testing.T) {
	_, err := PDBxRead(strings.NewReader("data_EMPTY\n#\n_entry.id EMPTY\n"))
	assert.Error(Te, err)

	bad := "data_BAD\nloop_\n_atom_site.id\n_atom_site.label_atom_id\n_atom_site.Cartn_x\n_atom_site.Cartn_y\n_atom_site.Cartn_z\n1 N 1.0 xx 3.0\n#\n"
	_, err = PDBxRead(strings.NewReader(bad))
	require.Error(Te, err)
	assert.Equal(Te, []string{"pdbxFillCoords", "PDBxRead"}, Trace(err))

	uneven := "data_BAD\nloop_\n_atom_site.id\n_atom_site.Cartn_x\n_atom_site.Cartn_y\n_atom_site.Cartn_z\n_atom_site.pdbx_PDB_model_num\n1 1 2 3 1\n2 1 2 3 1\n1 1 2 3 2\n#\n"
	_, err = PDBxRead(strings.NewReader(uneven))
	assert.Error(Te, err)

	_, err = PDBxFileRead("testdata/nothere.cif")
	require.Error(Te, err)
	assert.Equal(Te, []string{"PDBxFileRead"}, Trace(err))
}

func TestPDBxFields(Te *testing.T) {
	assert.Equal(Te, []string{"ATOM", "1", "O5'", "C 1", "?"}, pdbxFields(`ATOM 1 "O5'" 'C 1' ?`))
	assert.Equal(Te, []string{"a", "b"}, pdbxFields("  a\tb  "))
	assert.Equal(Te, []string{"it's", "x"}, pdbxFields(`'it's' x`))
}

func TestStructureFileRead(Te *testing.T) {
	for _, name := range []string{"testdata/foci.pdb", "testdata/foci.pdb.zst", "testdata/foci.cif", "testdata/foci.cif.gz"} {
		mol, err := StructureFileRead(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, 14, mol.Len(), name)
	}
	_, err := StructureFileRead("testdata/bad.pdb")
	require.Error(Te, err)
	assert.Equal(Te, []string{"pdbFullLine", "PDBRead", "PDBFileRead", "StructureFileRead"}, Trace(err))
	assert.Equal(Te, "x.cif", trimCompressionExt("x.cif.gz"))
	assert.Equal(Te, "x.pdb", trimCompressionExt("x.pdb"))
}
