/*
 * calc_test.go, part of coulforce.
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
	"bytes"
	"log/slog"
	"testing"

	chem "github.com/rmera/coulforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFoci(Te *testing.T) *chem.Molecule {
	mol, err := chem.PDBFileRead("../testdata/foci.pdb")
	require.NoError(Te, err)
	return mol
}

// TestDefaultAnalysis runs the default setup on a small structure with
// hand-placed charges and checks the totals against values computed by hand.
func TestDefaultAnalysis(Te *testing.T) {
	mol := readFoci(Te)
	foci, groups, err := DefaultSetup().Build(mol, 0)
	require.NoError(Te, err)
	require.Len(Te, foci, 2)
	require.Len(Te, groups, 5)
	for _, g := range groups {
		assert.Equal(Te, 1, g.Len(), g.Name)
	}

	var buf bytes.Buffer
	C := &Calculator{K: 1, Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	results, err := C.Analyze(foci, groups)
	require.NoError(Te, err)
	require.Len(Te, results, 2)

	tyr := results[0]
	assert.Equal(Te, "TYR87", tyr.Focus.Name)
	assert.InDelta(Te, 0.0625, tyr.Total.At(0, 0), delta)
	assert.InDelta(Te, 0.5-1.0/9, tyr.Total.At(0, 1), delta)
	assert.InDelta(Te, -0.29, tyr.Total.At(0, 2), delta)
	assert.InDelta(Te, 0.5+1.0/3-0.25-0.2+1, tyr.Energy, delta)
	require.Len(Te, tyr.Contributions, 5)
	n2 := tyr.Contributions[4]
	assert.Equal(Te, "N2", n2.Group.Name)
	assert.InDelta(Te, 0.5, n2.Force.At(0, 1), delta)
	assert.InDelta(Te, 0.5, n2.Force.Norm(0), delta)

	asp := results[1]
	assert.InDelta(Te, 0.0021401828358893343, asp.Total.At(0, 0), delta)
	assert.InDelta(Te, 0.0011352450036365746, asp.Total.At(0, 1), delta)
	assert.InDelta(Te, -0.005463440832636049, asp.Total.At(0, 2), delta)
	assert.InDelta(Te, 0.13384744546273297, asp.Energy, delta)

	assert.Contains(Te, buf.String(), "total force")
}

func TestConstant(Te *testing.T) {
	mol := readFoci(Te)
	foci, groups, err := DefaultSetup().Build(mol, 0)
	require.NoError(Te, err)
	plain, err := (&Calculator{}).Analyze(foci, groups)
	require.NoError(Te, err)
	scaled, err := (&Calculator{K: KcalMolAngstrom}).Analyze(foci, groups)
	require.NoError(Te, err)
	for i := range plain {
		assert.InDelta(Te, plain[i].Magnitude()*KcalMolAngstrom, scaled[i].Magnitude(), 1e-9)
		assert.InDelta(Te, plain[i].Energy*KcalMolAngstrom, scaled[i].Energy, 1e-9)
	}
}

func TestSelfInteraction(Te *testing.T) {
	mol := readFoci(Te)
	s := &Setup{
		Focus: []FocusSpec{{Name: "NH1", ID: 20004, Charge: 1}},
		Groups: []GroupSpec{
			{Name: "ARG", MolNames: []string{"ARG"}, Record: chem.AtomRecord, Charge: 1},
		},
	}
	foci, groups, err := s.Build(mol, 0)
	require.NoError(Te, err)
	require.Equal(Te, 2, groups[0].Len())
	results, err := (&Calculator{}).Analyze(foci, groups)
	require.NoError(Te, err)
	c := results[0].Contributions[0]
	assert.Equal(Te, 1, c.Count)
	//NH2 is 1 A away along +y, so NH1 is pushed along -y.
	assert.InDelta(Te, -1.0, c.Force.At(0, 1), delta)
	//the original group is untouched
	assert.Equal(Te, 2, groups[0].Len())
}

func TestEmptyGroup(Te *testing.T) {
	mol := readFoci(Te)
	s := DefaultSetup()
	s.Groups = append(s.Groups, GroupSpec{Name: "HIS", MolNames: []string{"HIS"}, Charge: 1})
	foci, groups, err := s.Build(mol, 0)
	require.NoError(Te, err)
	var buf bytes.Buffer
	C := &Calculator{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	results, err := C.Analyze(foci, groups)
	require.NoError(Te, err)
	his := results[0].Contributions[5]
	assert.Equal(Te, 0, his.Count)
	assert.Equal(Te, 0.0, his.Force.Norm(0))
	assert.Contains(Te, buf.String(), "empty group")
}
