/*
 * files.go, part of gozmat.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

//Format is a format for atom list files.
type Format int

const (
	//FormatPlain files have a line with the number of atoms, followed by one
	//line per atom: an integer tag and the x, y, z coordinates.
	FormatPlain Format = iota
	//FormatXYZ are the usual XYZ files: a line with the number of atoms, a comment line,
	//and one line per atom with an element symbol (or atomic number) and the coordinates.
	FormatXYZ
)

//maxRecordHint limits the room reserved for atom records before
//they are actually read.
const maxRecordHint = 1024

func (f Format) String() string {
	if f == FormatXYZ {
		return "xyz"
	}
	return "plain"
}

//FormatFromName deduces the format and compression of a file from its name.
//Files with a .gz extension are gzip-compressed, files with a .zst extension
//are zstd-compressed. After removing those, files with a .xyz extension are
//XYZ files, and everything else is considered plain. The compression is returned
//as "gz", "zst" or an empty string.
func FormatFromName(name string) (Format, string) {
	var comp string
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".gz" || ext == ".zst" {
		comp = ext[1:]
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(filepath.Ext(name))
	}
	if ext == ".xyz" {
		return FormatXYZ, comp
	}
	return FormatPlain, comp
}

//ReadFile reads an atom list file. The format and compression are
//deduced from the file name (see FormatFromName).
func ReadFile(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "goZmat: can't open %s", name)
	}
	defer f.Close()
	format, comp := FormatFromName(name)
	var in io.Reader = f
	switch comp {
	case "gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "goZmat: can't decompress %s", name)
		}
		defer gz.Close()
		in = gz
	case "zst":
		zs, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "goZmat: can't decompress %s", name)
		}
		defer zs.Close()
		in = zs
	}
	mol, err := Read(in, format, filepath.Base(name))
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return mol, nil
}

//a non-blank line and its number in the file, starting from 1.
type record struct {
	n    int
	text string
}

//Read reads an atom list in the given format from in. name is
//only used in error messages, and as the name of the molecule if the
//file has no comment line.
//The number of atom records must match the one declared in the first line
//of the file, otherwise an error of kind ErrRecordCountMismatch is returned.
//Malformed lines produce errors of kind ErrMalformedRecord. Blank lines are ignored.
func Read(in io.Reader, format Format, name string) (*Molecule, error) {
	scanner := bufio.NewScanner(in)
	lineno := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineno++
		return scanner.Text(), true
	}
	var header string
	for {
		line, ok := next()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "goZmat: reading %s", name)
			}
			return nil, newError(ErrMalformedRecord, "Read", "%s: no atom count found", name)
		}
		if strings.TrimSpace(line) != "" {
			header = strings.TrimSpace(line)
			break
		}
	}
	natoms, err := strconv.Atoi(header)
	if err != nil || natoms < 0 {
		return nil, newError(ErrMalformedRecord, "Read", "%s line %d: %q is not an atom count", name, lineno, header)
	}
	mol := &Molecule{Name: name}
	if format == FormatXYZ {
		//The comment line can be empty, so it is read regardless.
		comment, _ := next()
		if c := strings.TrimSpace(comment); c != "" {
			mol.Name = c
		}
	}
	//natoms is only a hint here, a file can claim any number of atoms.
	records := make([]record, 0, min(natoms, maxRecordHint))
	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, record{n: lineno, text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "goZmat: reading %s", name)
	}
	if len(records) != natoms {
		return nil, newError(ErrRecordCountMismatch, "Read", "%s: %d atoms declared, %d records found", name, natoms, len(records))
	}
	mol.Atoms = make([]*Atom, natoms)
	for i, r := range records {
		mol.Atoms[i], err = parseRecord(r, format, name)
		if err != nil {
			return nil, errDecorate(err, "Read")
		}
	}
	return mol, nil
}

//parseRecord parses one line with a tag and 3 coordinates. Any
//field after the fourth is ignored.
func parseRecord(r record, format Format, name string) (*Atom, error) {
	fields := strings.Fields(r.text)
	if len(fields) < 4 {
		return nil, newError(ErrMalformedRecord, "parseRecord", "%s line %d: expected a tag and 3 coordinates, got %d fields", name, r.n, len(fields))
	}
	var symbol string
	tag, err := strconv.Atoi(fields[0])
	if err != nil {
		if format != FormatXYZ {
			return nil, newError(ErrMalformedRecord, "parseRecord", "%s line %d: tag %q is not an integer", name, r.n, fields[0])
		}
		var ok bool
		tag, ok = AtomicNumber(fields[0])
		if !ok {
			return nil, newError(ErrMalformedRecord, "parseRecord", "%s line %d: unknown element %q", name, r.n, fields[0])
		}
		symbol = Symbol(tag)
	}
	var coords [3]float64
	for i := range coords {
		coords[i], err = strconv.ParseFloat(fields[i+1], 64)
		if err != nil || math.IsNaN(coords[i]) || math.IsInf(coords[i], 0) {
			return nil, newError(ErrMalformedRecord, "parseRecord", "%s line %d: coordinate %q is not a finite number", name, r.n, fields[i+1])
		}
	}
	at, err := NewAtom(tag, coords[0], coords[1], coords[2])
	if err != nil {
		return nil, newError(ErrInvalidTag, "parseRecord", "%s line %d: negative tag %d", name, r.n, tag)
	}
	if symbol != "" {
		at.Symbol = symbol
	}
	return at, nil
}

//WriteFile writes mol to a file called name, which will be created or truncated.
//The compression is deduced from the name (see FormatFromName), the format
//is given, so the file can be written in a format other than the one its name suggests.
func WriteFile(name string, mol *Molecule, format Format) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "goZmat: can't create %s", name)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "goZmat: closing %s", name)
		}
	}()
	_, comp := FormatFromName(name)
	var w io.WriteCloser
	switch comp {
	case "gz":
		w = gzip.NewWriter(out)
	case "zst":
		w, err = zstd.NewWriter(out)
		if err != nil {
			return errors.Wrapf(err, "goZmat: can't compress %s", name)
		}
	}
	if w == nil {
		return Write(out, mol, format)
	}
	if err = Write(w, mol, format); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return errors.Wrapf(err, "goZmat: can't compress %s", name)
	}
	return nil
}

//formatCoord returns the shortest representation of v that
//reads back to the same float64.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

//Write writes the atoms in mol to out in the given format.
//XYZ files get the name of the molecule as comment, and the element
//symbol of each atom instead of its tag, when known.
func Write(out io.Writer, mol *Molecule, format Format) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "%d\n", mol.Len())
	if format == FormatXYZ {
		fmt.Fprintf(bw, "%s\n", strings.ReplaceAll(mol.Name, "\n", " "))
	}
	for _, a := range mol.Atoms {
		tag := strconv.Itoa(a.Tag)
		if format == FormatXYZ && a.Symbol != "" {
			tag = a.Symbol
		}
		fmt.Fprintf(bw, "%-3s %18s %18s %18s\n", tag, formatCoord(a.X), formatCoord(a.Y), formatCoord(a.Z))
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "goZmat: writing atoms")
	}
	return nil
}
