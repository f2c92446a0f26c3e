/*
 * atom.go, part of gozmat.
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
	v3 "github.com/rmera/gozmat/v3"
)

//InvalidTag marks an uninitialized or invalid atom record.
const InvalidTag = -1

//Atom is an atom record: a tag, normally the atomic number, and a position
//in cartesian coordinates. Atoms are not meant to be modified after
//creation.
type Atom struct {
	Tag    int
	Symbol string //element symbol, if known. Purely informative.
	X      float64
	Y      float64
	Z      float64
}

//NewAtom returns an atom with the given tag and coordinates, or
//an error if the tag is negative. If the tag is a known atomic number
//the Symbol of the atom is set accordingly.
func NewAtom(tag int, x, y, z float64) (*Atom, error) {
	if tag < 0 {
		return nil, newError(ErrInvalidTag, "NewAtom", "negative tag %d", tag)
	}
	return &Atom{Tag: tag, Symbol: Symbol(tag), X: x, Y: y, Z: z}, nil
}

//Valid returns true if the atom has been initialized from a
//valid record.
func (A *Atom) Valid() bool {
	return A != nil && A.Tag >= 0
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

//Vec returns the position of the atom as a 1x3 matrix.
func (A *Atom) Vec() *v3.Matrix {
	v, _ := v3.NewMatrix([]float64{A.X, A.Y, A.Z}) //can't fail, the slice has 3 elements.
	return v
}

/*****Molecule type***/

//Molecule is an ordered list of atoms. The index of an atom in the
//list is its identity for all the geometric functions.
type Molecule struct {
	Atoms []*Atom
	Name  string //the comment line of XYZ files, or the file name.
}

//NewMolecule returns a molecule with the given atoms.
func NewMolecule(name string, atoms ...*Atom) *Molecule {
	return &Molecule{Atoms: atoms, Name: name}
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	if M == nil {
		return 0
	}
	return len(M.Atoms)
}

//Coords returns a Nx3 matrix with the coordinates of the
//atoms in the molecule, in order. Returns nil for an empty molecule.
func (M *Molecule) Coords() *v3.Matrix {
	if M.Len() == 0 {
		return nil
	}
	data := make([]float64, 0, 3*M.Len())
	for _, a := range M.Atoms {
		data = append(data, a.X, a.Y, a.Z)
	}
	ret, _ := v3.NewMatrix(data)
	return ret
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	ret := &Molecule{Name: M.Name, Atoms: make([]*Atom, len(M.Atoms))}
	for i, a := range M.Atoms {
		ret.Atoms[i] = a.Copy()
	}
	return ret
}
