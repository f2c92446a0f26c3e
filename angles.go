/*
 * angles.go, part of gozmat.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

//BondAngle is the angle at the atom J between the atoms K and I,
//in radians. Always K < J < I.
type BondAngle struct {
	K     int
	J     int
	I     int
	Angle float64
}

//NumTriples returns the number of different sets of 3 atoms that can be
//taken from n atoms, i.e. the (n-2)th trigonal pyramidal number.
func NumTriples(n int) int {
	if n < 3 {
		return 0
	}
	m := n - 2
	return (m*m*m + 3*m*m + 2*m) / 6
}

//tripleIndex returns the position of the triple k<j<i in the
//order produced by BondAngles.
func tripleIndex(i, j, k int) int {
	return i*(i-1)*(i-2)/6 + j*(j-1)/2 + k
}

//BondAngles returns one angle for each set of 3 different atoms in mol.
//The triples are visited with i going over all atoms, j over the atoms
//before i, and k over the atoms before j, and the angle returned for each
//is the one at j, between k and i. Notice that j is the middle atom in
//index order, not necessarily the geometric middle atom.
//It returns an error of kind ErrInsufficientAtoms if mol has less than 3 atoms,
//and of kind ErrDegenerateGeometry if two atoms in mol coincide.
func BondAngles(mol Atomer) ([]BondAngle, error) {
	n := mol.Len()
	if n <= 2 {
		return nil, newError(ErrInsufficientAtoms, "BondAngles", "too few atoms (%d) for any angle", n)
	}
	angles := make([]BondAngle, 0, NumTriples(n))
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			for k := 0; k < j; k++ {
				a, err := angleAt(mol.Atom(i), mol.Atom(j), mol.Atom(k))
				if err != nil {
					return nil, degenerateTriple(k, j, i)
				}
				angles = append(angles, BondAngle{K: k, J: j, I: i, Angle: a})
			}
		}
	}
	return angles, nil
}

//BondAnglesConc is like BondAngles, but the angles are obtained by
//workers goroutines. If workers <= 0, GOMAXPROCS goroutines are used.
//The result is in the same order as that of BondAngles. If several triples
//are degenerate, which one is reported in the error is not determined.
func BondAnglesConc(ctx context.Context, mol Atomer, workers int) ([]BondAngle, error) {
	n := mol.Len()
	if n <= 2 {
		return nil, newError(ErrInsufficientAtoms, "BondAnglesConc", "too few atoms (%d) for any angle", n)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	angles := make([]BondAngle, NumTriples(n))
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			//each worker takes every workers-th value of i. The
			//position of each triple in angles doesn't depend on who computes it.
			for i := w; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				ati := mol.Atom(i)
				for j := 0; j < i; j++ {
					atj := mol.Atom(j)
					for k := 0; k < j; k++ {
						a, err := angleAt(ati, atj, mol.Atom(k))
						if err != nil {
							return degenerateTriple(k, j, i)
						}
						angles[tripleIndex(i, j, k)] = BondAngle{K: k, J: j, I: i, Angle: a}
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "BondAnglesConc")
	}
	return angles, nil
}

func degenerateTriple(k, j, i int) error {
	return newError(ErrDegenerateGeometry, "BondAngles", "angle %d-%d-%d is undefined, two of the atoms coincide", k, j, i)
}
