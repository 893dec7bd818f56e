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
Package chem provides atom and molecule structures for coulforce, and the
facilities to read them from PDB and mmCIF files and to select atoms from them.

	Reads ATOM and HETATM records from PDB files, and the _atom_site loop from
	mmCIF files, including multi-model files.
	gzip (.gz) and zstandard (.zst) compressed files are decompressed on the fly.

	Selects atoms by chain, residue name, atom name and record type, or by
	PDB serial number.

Coordinates are kept in v3.Matrix objects (github.com/rmera/coulforce/v3), one
per model, where each row is the position of one atom.
*/
package chem
