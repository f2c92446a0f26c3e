/*
 * json.go, part of gozmat.
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

package zjson

import (
	"bufio"
	"encoding/json"
	"io"
	"math"

	"github.com/pkg/errors"
	zmat "github.com/rmera/gozmat"
	"github.com/rmera/gozmat/histo"
	"gonum.org/v1/gonum/mat"
)

//A ready-to-serialize container for an atom.
type Atom struct {
	Tag    int
	Symbol string `json:",omitempty"`
	Coords []float64
}

//Angle is a bond angle at the atom J, between K and I.
type Angle struct {
	K, J, I int
	Angle   float64
}

//OutOfPlane is the out-of-plane angle of atom I with respect to the plane
//J, K, L. Sin is the value obtained by zmat.OutOfPlane, Angle its arcsine.
type OutOfPlane struct {
	I, J, K, L int
	Sin        float64
	Angle      float64
}

//An easily JSON-serializable error type,
type Error struct {
	InRead       bool //If error, was it while reading the file?
	InLengths    bool
	InAngles     bool
	InOutOfPlane bool
	Kind         string //which kind of zmat error, if any.
	Message      string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Takes an error and the stage where it happened, to create a json-marshal-ble error.
//where can be "read", "lengths", "angles" or "outofplane".
func NewError(where string, err error) *Error {
	jerr := new(Error)
	switch where {
	case "read":
		jerr.InRead = true
	case "lengths":
		jerr.InLengths = true
	case "angles":
		jerr.InAngles = true
	default:
		jerr.InOutOfPlane = true
	}
	jerr.Kind = Kind(err)
	jerr.Message = err.Error()
	return jerr
}

//Kind returns the name of the kind of zmat error err is, or
//an empty string if it is not a zmat error.
func Kind(err error) string {
	kinds := []struct {
		name string
		err  error
	}{
		{"RecordCountMismatch", zmat.ErrRecordCountMismatch},
		{"InsufficientAtoms", zmat.ErrInsufficientAtoms},
		{"DegenerateGeometry", zmat.ErrDegenerateGeometry},
		{"MalformedRecord", zmat.ErrMalformedRecord},
		{"InvalidTag", zmat.ErrInvalidTag},
		{"IndexOutOfRange", zmat.ErrIndexOutOfRange},
	}
	for _, v := range kinds {
		if errors.Is(err, v.err) {
			return v.name
		}
	}
	return ""
}

//Report contains all the information obtained for one molecule.
type Report struct {
	File        string
	Name        string
	Natoms      int
	Degrees     bool //are angles in degrees? (radians otherwise)
	Atoms       []*Atom
	BondLengths [][]float64   `json:",omitempty"`
	BondAngles  []*Angle      `json:",omitempty"`
	OutOfPlane  []*OutOfPlane `json:",omitempty"`
	AngleHisto  *histo.Data   `json:",omitempty"`
	LengthHisto *histo.Data   `json:",omitempty"`
	Errors      []*Error      `json:",omitempty"`
}

//NewReport returns a report for the file file, containing the atoms of mol.
//mol can be nil, i.e. if the file couldn't be read.
func NewReport(file string, mol *zmat.Molecule, degrees bool) *Report {
	R := &Report{File: file, Degrees: degrees}
	if mol == nil {
		return R
	}
	R.Name = mol.Name
	R.Natoms = mol.Len()
	R.Atoms = make([]*Atom, 0, mol.Len())
	coords := mol.Coords()
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		R.Atoms = append(R.Atoms, &Atom{Tag: at.Tag, Symbol: at.Symbol, Coords: coords.VecView(i).RawRowView(0)})
	}
	return R
}

//SetBondLengths puts the bond-length matrix lengths in the report.
func (R *Report) SetBondLengths(lengths mat.Symmetric) {
	n := lengths.SymmetricDim()
	R.BondLengths = make([][]float64, n)
	for i := range R.BondLengths {
		R.BondLengths[i] = make([]float64, n)
		for j := range R.BondLengths[i] {
			R.BondLengths[i][j] = lengths.At(i, j)
		}
	}
}

//SetBondAngles puts the given angles, which must be in radians, in the report.
func (R *Report) SetBondAngles(angles []zmat.BondAngle) {
	R.BondAngles = make([]*Angle, len(angles))
	for i, v := range angles {
		R.BondAngles[i] = &Angle{K: v.K, J: v.J, I: v.I, Angle: R.convert(v.Angle)}
	}
}

//AddOutOfPlane adds an out-of-plane angle to the report. sin is the value returned
//by zmat.OutOfPlane.
func (R *Report) AddOutOfPlane(i, j, k, l int, sin float64) {
	R.OutOfPlane = append(R.OutOfPlane, &OutOfPlane{I: i, J: j, K: k, L: l, Sin: sin, Angle: R.convert(math.Asin(sin))})
}

//AddError adds the error err, which happened at the stage where (see NewError)
//to the report.
func (R *Report) AddError(where string, err error) {
	R.Errors = append(R.Errors, NewError(where, err))
}

func (R *Report) convert(rad float64) float64 {
	if R.Degrees {
		return rad * zmat.Rad2Deg
	}
	return rad
}

//Send Marshals the report and writes it to out, followed by a newline.
func (R *Report) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return errors.Wrap(err, "zjson: encoding report")
	}
	return nil
}

//DecodeReport decodes one report, as written by Send, from stream.
func DecodeReport(stream *bufio.Reader) (*Report, error) {
	line, err := stream.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, err
	}
	R := new(Report)
	if err := json.Unmarshal(line, R); err != nil {
		return nil, errors.Wrap(err, "zjson: decoding report")
	}
	return R, nil
}
