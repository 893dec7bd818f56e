/*
 * atomicdata.go, part of coulforce.
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
	"strings"
)

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Ni": 58.69,
	"Mo": 95.95,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"HID": 'H',
	"HIE": 'H',
	"HIP": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

// symbolFromName tries to guess a chemical element symbol from a PDB atom name.
// Mostly based on AMBER names. It only deals with some common bio-elements
// and the metals of the usual iron-sulfur and zinc sites.
func symbolFromName(name string) (string, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return "", fmt.Errorf("symbolFromName: empty atom name")
	}
	two := name
	if len(two) > 2 {
		two = two[:2]
	}
	switch two {
	case "FE":
		return "Fe", nil
	case "ZN":
		return "Zn", nil
	case "MG":
		return "Mg", nil
	case "MN":
		return "Mn", nil
	case "NI":
		return "Ni", nil
	case "MO":
		return "Mo", nil
	case "CU":
		return "Cu", nil
	case "CL":
		return "Cl", nil
	case "SE":
		return "Se", nil
	}
	//Only Hs can have 4-char names in amber.
	if len(name) == 4 || name[0] == 'H' {
		return "H", nil
	}
	switch name[0] {
	case 'C', 'N', 'O', 'P', 'S':
		return name[:1], nil
	}
	return "", fmt.Errorf("symbolFromName: Couldn't guess symbol from PDB name %s", name)
}
