/*
 * bonds.go, part of gozmat.
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

package zmat

import (
	"gonum.org/v1/gonum/mat"
)

//BondLengths returns a symmetric matrix with the distances between all pairs of
//atoms in mol. Element i,j of the matrix is the distance between atoms i and j.
//The diagonal is zero. "Bond" here only means a distance, no chemical
//bond is implied. It returns an error of kind ErrInsufficientAtoms if mol has
//less than 2 atoms.
func BondLengths(mol Atomer) (*mat.SymDense, error) {
	n := mol.Len()
	if n <= 1 {
		return nil, newError(ErrInsufficientAtoms, "BondLengths", "no bonds possible in a system of %d atoms", n)
	}
	lengths := mat.NewSymDense(n, nil)
	//SymDense keeps only one triangle, so setting i,j also sets j,i.
	for i := 0; i < n; i++ {
		ati := mol.Atom(i)
		for j := 0; j < i; j++ {
			lengths.SetSym(i, j, Distance(ati, mol.Atom(j)))
		}
	}
	return lengths, nil
}

//BondLength returns the distance between the atoms i and j of mol.
func BondLength(mol Atomer, i, j int) (float64, error) {
	if err := checkIndexes(mol, "BondLength", i, j); err != nil {
		return 0, err
	}
	return Distance(mol.Atom(i), mol.Atom(j)), nil
}
