/*
 * errors.go, part of gozmat.
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
	"fmt"

	"github.com/pkg/errors"
)

//The kinds of error returned by goZmat. They are meant to be
//checked with errors.Is, as the actual errors returned are of
//type *Error and carry more information.
var (
	//ErrRecordCountMismatch: the atom count declared in a file header
	//doesn't match the number of atom records.
	ErrRecordCountMismatch = errors.New("atom count in header doesn't match the number of records")

	//ErrInsufficientAtoms: too few atoms for the requested operation.
	ErrInsufficientAtoms = errors.New("not enough atoms")

	//ErrDegenerateGeometry: the requested angle is not defined for the given
	//atoms, i.e. two atoms coincide, or reference atoms are colinear.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidTag      = errors.New("invalid atom tag")
	ErrIndexOutOfRange = errors.New("atom index out of range")
)

//Error is the error type for goZmat. It has a kind, which is one of the
//Err* values of this package, a message and a "decoration" slice
//with the names of the functions it passed through.
type Error struct {
	kind error
	msg  string
	deco []string
}

func newError(kind error, caller string, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), deco: []string{caller}}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if err.msg == "" {
		return fmt.Sprintf("goZmat: %s", err.kind)
	}
	return fmt.Sprintf("goZmat: %s: %s", err.kind, err.msg)
}

//Unwrap returns the kind of the error, so errors.Is works on it.
func (err *Error) Unwrap() error {
	return err.kind
}

//Kind returns the kind of error.
func (err *Error) Kind() error {
	return err.kind
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. If passed an empty string, it just returns the
//current decorations.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Decorator is implemented by errors that can carry a calling stack.
type Decorator interface {
	error
	Decorate(string) []string
}

//errDecorate decorates err with the caller's name if err implements
//Decorator. Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Decorator); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
