/*
 * gonum.go, part of gozmat.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//gonum.go contains what is needed for handling the gonum/mat types and facilities.

//All the *Vec functions operate on and produce row vectors, as the
//underlying Dense is row-major.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. The underlying implementation is gonum's Dense.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some funcitions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//data is used as backing slice, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l == 0 {
		return nil, Error{"Can't create a Matrix from an empty slice", []string{"NewMatrix"}}
	}
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//VecView returns view of the given vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Errors

//Error is the error type for the v3 package. It mirrors zmat.Error
//without importing it, to avoid a circular import.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("goZmat/v3: A v3.Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("goZmat/v3: Invalid matrix for cross product")
	ErrShape           = PanicMsg("goZmat/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goZmat/v3: index out of range")
)
