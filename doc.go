/*
 * doc.go, part of gozmat.
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

/*Package zmat is the main package of the goZmat library. It obtains the internal geometry
of a molecule (the distances, angles and out-of-plane angles used to build Z-matrices)
from the cartesian coordinates of its atoms.



	**goZmat Capabilities**


    Reads and writes lists of atoms, either in a plain format (an atom count followed by
	one line per atom with an integer tag and 3 coordinates) or as XYZ files. Files
	can be gzip- or zstd-compressed.

    Builds the matrix of distances between all pairs of atoms ("bond lengths",
	no chemical bond is implied).

    Obtains the angle for each set of 3 atoms in a list. The vertex of each angle
	is the middle atom in index order.

    Obtains out-of-plane angles and dihedrals for any 4 atoms.

	All errors returned by the package can be checked with errors.Is against the
	Err* values of the package, i.e. ErrDegenerateGeometry is returned when an angle is not defined
	for the given atoms, instead of a NaN.

	The subpackages histo, zjson and zplot build histograms, JSON reports and
	plots from the results.

*/
package zmat
