/*
 * handy.go, part of gozmat.
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
	"strconv"
	"strings"
)

//checkIndexes returns an ErrIndexOutOfRange error, decorated with
//caller, if any of the given indexes is not a valid atom index in mol.
func checkIndexes(mol Atomer, caller string, indexes ...int) error {
	l := mol.Len()
	for _, v := range indexes {
		if v < 0 || v >= l {
			return newError(ErrIndexOutOfRange, caller, "index %d for a list of %d atoms", v, l)
		}
	}
	return nil
}

//ParseQuadruple parses a string of 4 comma- or space-separated atom indexes,
//as used to request out-of-plane angles, i.e. "0,1,2,3".
func ParseQuadruple(s string) ([4]int, error) {
	var ret [4]int
	f := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(f) != 4 {
		return ret, newError(ErrMalformedRecord, "ParseQuadruple", "%q doesn't contain 4 atom indexes", s)
	}
	for i, v := range f {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ret, newError(ErrMalformedRecord, "ParseQuadruple", "%q is not an atom index", v)
		}
		ret[i] = n
	}
	return ret, nil
}
