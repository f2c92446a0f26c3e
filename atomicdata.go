/*
 * atomicdata.go, part of gozmat.
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

import "strings"

//element symbols, indexed by atomic number. Element 0 is a dummy atom.
var symbols = []string{"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
}

//A map for assigning atomic numbers to element symbols.
var symbolZ = func() map[string]int {
	ret := make(map[string]int, len(symbols))
	for i, v := range symbols {
		ret[v] = i
	}
	return ret
}()

//Symbol returns the element symbol for the atomic number z, or an
//empty string if z is not a known atomic number.
func Symbol(z int) string {
	if z < 0 || z >= len(symbols) {
		return ""
	}
	return symbols[z]
}

//AtomicNumber returns the atomic number for the element symbol sym.
//The case of sym doesn't matter. The second return value is false if
//the symbol is unknown.
func AtomicNumber(sym string) (int, bool) {
	if sym == "" {
		return 0, false
	}
	sym = strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
	z, ok := symbolZ[sym]
	return z, ok
}
