/*
 * geometric.go, part of gozmat.
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
	"math"

	v3 "github.com/rmera/gozmat/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Three atoms are taken as colinear when the sine of their angle is
//equal or less than this.
const colinear float64 = 1e-9

//Distance returns the euclidean distance between the atoms a and b.
func Distance(a, b *Atom) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

//Displacement returns the vector from a to b, i.e. b-a, as a 1x3 matrix.
func Displacement(a, b *Atom) *v3.Matrix {
	d := v3.Zeros(1)
	d.Sub(b.Vec(), a.Vec())
	return d
}

//Angle takes 2 vectors and calculate the angle in radians between them.
//It returns an error of kind ErrDegenerateGeometry if one of the vectors
//has zero length.
func Angle(v1, v2 *v3.Matrix) (float64, error) {
	n1 := v1.VecNorm(0)
	n2 := v2.VecNorm(0)
	if n1 <= appzero || n2 <= appzero {
		return 0, newError(ErrDegenerateGeometry, "Angle", "zero-length vector")
	}
	argument := v1.Dot(v2) / (n1 * n2)
	//Take care of floating point math errors
	argument = clamp(argument)
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00, nil
	}
	return angle, nil
}

//AngleAt returns the angle, in radians, at the atom j between the
//atoms i and k of mol.
func AngleAt(mol Atomer, i, j, k int) (float64, error) {
	if err := checkIndexes(mol, "AngleAt", i, j, k); err != nil {
		return 0, err
	}
	angle, err := angleAt(mol.Atom(i), mol.Atom(j), mol.Atom(k))
	if err != nil {
		e := newError(ErrDegenerateGeometry, "AngleAt", "atoms %d-%d-%d", i, j, k)
		e.Decorate("Angle")
		return 0, e
	}
	return angle, nil
}

//the angle at vertex between the arms to ai and ak.
func angleAt(ai, vertex, ak *Atom) (float64, error) {
	return Angle(Displacement(vertex, ai), Displacement(vertex, ak))
}

//OutOfPlane returns the sine of the angle between the vector from atom k to atom i
//and the plane defined by the atoms j, k and l of mol, i.e.
// r_ki . (r_kj x r_kl) / (|r_kj| |r_kl| |r_ki| sin(phi))
//where phi is the angle j-k-l. The sign follows the handness of the j, k, l
//vectors. The angle itself is obtained with math.Asin.
//It returns an error of kind ErrDegenerateGeometry if two of the atoms coincide
//or if j, k and l are colinear.
func OutOfPlane(mol Atomer, i, j, k, l int) (float64, error) {
	if err := checkIndexes(mol, "OutOfPlane", i, j, k, l); err != nil {
		return 0, err
	}
	//AngleAt catches coinciding atoms.
	if _, err := AngleAt(mol, j, k, l); err != nil {
		return 0, errDecorate(err, "OutOfPlane")
	}
	ak := mol.Atom(k)
	rkj := Displacement(ak, mol.Atom(j))
	rkl := Displacement(ak, mol.Atom(l))
	rki := Displacement(ak, mol.Atom(i))
	nki := rki.VecNorm(0)
	if nki <= appzero {
		return 0, newError(ErrDegenerateGeometry, "OutOfPlane", "atoms %d and %d coincide", i, k)
	}
	normal := v3.Zeros(1)
	normal.Cross(rkj, rkl)
	//|r_kj x r_kl| = |r_kj||r_kl|sin(phi)
	ncross := normal.VecNorm(0)
	sinphi := ncross / (rkj.VecNorm(0) * rkl.VecNorm(0))
	if sinphi <= colinear {
		return 0, newError(ErrDegenerateGeometry, "OutOfPlane", "atoms %d-%d-%d are colinear", j, k, l)
	}
	triple := rki.Dot(normal)
	return clamp(triple / (ncross * nki)), nil
}

//Dihedral calculate the dihedral between the atoms i, j, k, l of mol, where the first plane
//is defined by ijk and the second by jkl. The result is in radians, in [-pi, pi].
func Dihedral(mol Atomer, i, j, k, l int) (float64, error) {
	if err := checkIndexes(mol, "Dihedral", i, j, k, l); err != nil {
		return 0, err
	}
	//bma=b minus a
	bma := Displacement(mol.Atom(i), mol.Atom(j))
	cmb := Displacement(mol.Atom(j), mol.Atom(k))
	dmc := Displacement(mol.Atom(k), mol.Atom(l))
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Cross(bma, cmb)
	v2.Cross(cmb, dmc)
	if v1.VecNorm(0) <= appzero || v2.VecNorm(0) <= appzero {
		return 0, newError(ErrDegenerateGeometry, "Dihedral", "atoms %d-%d-%d-%d don't define two planes", i, j, k, l)
	}
	bmascaled := v3.Zeros(1)
	bmascaled.Scale(cmb.VecNorm(0), bma)
	first := bmascaled.Dot(v2)
	second := v1.Dot(v2)
	return math.Atan2(first, second), nil
}

//clamp puts a cosine or sine that went slightly out of [-1,1]
//because of floating point errors back in range.
func clamp(a float64) float64 {
	if a > 1 {
		return 1
	}
	if a < -1 {
		return -1
	}
	return a
}
