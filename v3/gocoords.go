/*
 * gocoords.go, part of gozmat.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r

}

//Dot returns the dot product between the first vector of F and
//the first vector of A.
func (F *Matrix) Dot(A *Matrix) float64 {
	if F.NVecs() < 1 || A.NVecs() < 1 {
		panic(ErrShape)
	}
	return mat.Dot(F.RowView(0), A.RowView(0))
}

//VecNorm returns the euclidean norm of the ith vector of F.
func (F *Matrix) VecNorm(i int) float64 {
	return mat.Norm(F.RowView(i), 2)
}

//Cross puts the cross product of the first vecs of a and b in the first vec of F. Panics if error.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	//I ask for Matrix instead of Matrix, even though  I only need the At method.
	//This is so I dont need to ensure that the rows are taken.
	x := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	y := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	z := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, x)
	F.Set(0, 1, y)
	F.Set(0, 2, z)
}

//Sub puts A-B in the receiver. The three matrices must have the same
//number of vectors. F can be A or B.
func (F *Matrix) Sub(A, B *Matrix) {
	if A.NVecs() != B.NVecs() || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	F.Dense.Sub(A.Dense, B.Dense)
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense) //now row has a slice witht he row i
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}
