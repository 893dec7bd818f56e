/*
 * gocoords.go, part of coulforce.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// SomeVecs puts in the receiver the ith vectors of matrix A,
// where i are the numbers in clist. The vectors are in the same order
// as the clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar := A.NVecs()
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val < 0 || val >= ar {
			panic(ErrIndexOutOfRange)
		}
		copy(F.RawRowView(key), A.RawRowView(val))
	}
}

// SomeVecsSafe is SomeVecs, but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			case mat.Error:
				err = Error{fmt.Sprintf("v3: Error in a gonum function: %s", e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return err
}

// AddVec adds the vector vec to each vector of the matrix A, putting the result
// on the receiver. Panics if matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || A.NVecs() != F.NVecs() {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < A.NVecs(); i++ {
		floats.AddTo(F.RawRowView(i), A.RawRowView(i), v)
	}
}

// SubVec subtracts the vector vec from each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || A.NVecs() != F.NVecs() {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < A.NVecs(); i++ {
		floats.SubTo(F.RawRowView(i), A.RawRowView(i), v)
	}
}

// Norm returns the euclidean norm of the ith vector of F.
func (F *Matrix) Norm(i int) float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return floats.Norm(F.RawRowView(i), 2)
}

// Unit puts in the receiver the unit vector with the direction of the
// first vector of A. Panics if that vector has zero length.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		copy(F.RawRowView(0), A.RawRowView(0))
	}
	n := F.Norm(0)
	if n == 0 {
		panic(ErrZeroNorm)
	}
	floats.Scale(1/n, F.RawRowView(0))
}

// Dot returns the dot product between the first vectors of F and A.
func (F *Matrix) Dot(A *Matrix) float64 {
	return floats.Dot(F.RawRowView(0), A.RawRowView(0))
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v[i] = fmt.Sprintf("%8.3f %8.3f %8.3f", row[0], row[1], row[2])
	}
	return "[" + strings.Join(v, "\n ") + "]"
}
