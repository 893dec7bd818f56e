/*
 * handy.go, part of coulforce.
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
	"encoding/json"
	"fmt"
	"strings"

	v3 "github.com/rmera/coulforce/v3"
)

// Record says which PDB record types a Selection accepts.
type Record int

const (
	AnyRecord  Record = iota
	AtomRecord        //ATOM lines only
	HetRecord         //HETATM lines only
)

func (r Record) String() string {
	switch r {
	case AtomRecord:
		return "ATOM"
	case HetRecord:
		return "HETATM"
	}
	return "any"
}

// MarshalJSON writes the record as "ATOM", "HETATM" or "any".
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON reads "ATOM", "HETATM", "any" or an empty string.
func (r *Record) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch strings.ToUpper(s) {
	case "ATOM":
		*r = AtomRecord
	case "HETATM":
		*r = HetRecord
	case "", "ANY":
		*r = AnyRecord
	default:
		return fmt.Errorf("Record: unknown record type %q", s)
	}
	return nil
}

// Selection filters atoms by chain, residue name and atom name. An empty list
// matches anything for that field.
type Selection struct {
	Chains   []string
	MolNames []string
	Names    []string
	Records  Record
}

// Match returns true if the atom satisfies all the criteria of the selection.
func (S Selection) Match(at *Atom) bool {
	switch S.Records {
	case AtomRecord:
		if at.Het {
			return false
		}
	case HetRecord:
		if !at.Het {
			return false
		}
	}
	return matchOrEmpty(S.Chains, at.Chain) && matchOrEmpty(S.MolNames, at.MolName) && matchOrEmpty(S.Names, at.Name)
}

// Indexes returns the indexes of all the atoms in mol matched by the selection,
// in the order they appear in mol.
func (S Selection) Indexes(mol Atomer) []int {
	ret := make([]int, 0, 8)
	for i := 0; i < mol.Len(); i++ {
		if S.Match(mol.Atom(i)) {
			ret = append(ret, i)
		}
	}
	return ret
}

// String returns the selection in a compact chain/resname/atomname form.
func (S Selection) String() string {
	f := func(s []string) string {
		if len(s) == 0 {
			return "*"
		}
		return strings.Join(s, ",")
	}
	return fmt.Sprintf("%s %s/%s/%s", S.Records, f(S.Chains), f(S.MolNames), f(S.Names))
}

// IndexByID returns the index of the atom with the PDB serial number id.
// Both ATOM and HETATM records are searched. Serial numbers are unique
// in a valid file, so restricting by record type never changes the result.
func IndexByID(mol Atomer, id int) (int, error) {
	for i := 0; i < mol.Len(); i++ {
		if mol.Atom(i).ID == id {
			return i, nil
		}
	}
	return -1, errDecorate(notFound("no atom with serial number %d", id), "IndexByID")
}

// SelectCoords returns a new matrix with the coordinates of the atoms in indexes,
// taken from coords. It returns nil for an empty list.
func SelectCoords(coords *v3.Matrix, indexes []int) (*v3.Matrix, error) {
	if len(indexes) == 0 {
		return nil, nil
	}
	ret := v3.Zeros(len(indexes))
	if err := ret.SomeVecsSafe(coords, indexes); err != nil {
		return nil, errDecorate(err, "SelectCoords")
	}
	return ret, nil
}

//Some internal convenience functions.

// matchOrEmpty returns true if container is empty or test is in it.
func matchOrEmpty(container []string, test string) bool {
	if len(container) == 0 {
		return true
	}
	return isInString(container, test)
}

// isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
