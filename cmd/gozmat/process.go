/*
 * process.go, part of gozmat.
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

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	zmat "github.com/rmera/gozmat"
	"github.com/rmera/gozmat/histo"
	"github.com/rmera/gozmat/zjson"
	"github.com/rmera/gozmat/zplot"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//result holds everything obtained for one input file.
type result struct {
	report  *zjson.Report
	lengths *mat.SymDense
}

func (r *result) failed() bool {
	return len(r.report.Errors) > 0
}

//run processes the given files, up to c.Workers at the time, and
//prints the results to out in the order the files were given. A file
//that fails doesn't stop the others. The returned error tells
//how many files failed, if any.
func run(ctx context.Context, c Config, files []string, logger *logrus.Logger, out io.Writer) error {
	results := make([]*result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			results[i] = process(gctx, c, logger, f)
			return nil
		})
	}
	g.Wait()
	failed := 0
	for _, r := range results {
		if r.failed() {
			failed++
		}
		var err error
		if c.Format == "json" {
			err = r.report.Send(out)
		} else {
			err = printText(out, r)
		}
		if err != nil {
			return errors.Wrap(err, "writing results")
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

//process reads the file name and obtains its internal geometry.
func process(ctx context.Context, c Config, logger *logrus.Logger, name string) *result {
	log := logger.WithField("file", name)
	mol, err := zmat.ReadFile(name)
	if err != nil {
		log.WithError(err).Error("could not read file")
		r := &result{report: zjson.NewReport(name, nil, c.Degrees)}
		r.report.AddError("read", err)
		return r
	}
	log = log.WithField("atoms", mol.Len())
	log.Debug("file read")
	r := &result{report: zjson.NewReport(name, mol, c.Degrees)}
	R := r.report

	r.lengths, err = zmat.BondLengths(mol)
	if err != nil {
		log.WithError(err).Warn("bond lengths")
		R.AddError("lengths", err)
	} else {
		R.SetBondLengths(r.lengths)
	}

	var angles []zmat.BondAngle
	if c.AngleWorkers > 0 {
		angles, err = zmat.BondAnglesConc(ctx, mol, c.AngleWorkers)
	} else {
		angles, err = zmat.BondAngles(mol)
	}
	if err != nil {
		log.WithError(err).Warn("bond angles")
		R.AddError("angles", err)
	} else {
		R.SetBondAngles(angles)
	}

	for _, q := range c.quadruples {
		sin, err := zmat.OutOfPlane(mol, q[0], q[1], q[2], q[3])
		if err != nil {
			log.WithError(err).WithField("indexes", q).Warn("out-of-plane angle")
			R.AddError("outofplane", err)
			continue
		}
		R.AddOutOfPlane(q[0], q[1], q[2], q[3], sin)
	}

	if c.Bins > 0 {
		histograms(c, log, r, angles)
	}

	if c.Write != "" {
		out := filepath.Join(c.Write, baseName(name)+".xyz")
		if err := zmat.WriteFile(out, mol, zmat.FormatXYZ); err != nil {
			log.WithError(err).Error("could not write molecule")
		} else {
			log.WithField("output", out).Debug("molecule written")
		}
	}
	log.WithFields(logrus.Fields{
		"angles": len(R.BondAngles),
		"errors": len(R.Errors),
	}).Info("processed")
	return r
}

//histograms fills the histograms of the report, and plots them if requested.
//Plotting failures are only logged.
func histograms(c Config, log *logrus.Entry, r *result, angles []zmat.BondAngle) {
	R := r.report
	if R.BondLengths != nil {
		R.LengthHisto = histo.FromLengths(r.lengths, c.Bins)
	}
	if R.BondAngles != nil {
		R.AngleHisto = histo.FromAngles(angles, c.Bins, c.Degrees)
	}
	if c.Plot == "" {
		return
	}
	prefix := c.Plot + baseName(R.File)
	if R.LengthHisto != nil {
		if err := zplot.LengthHistoPlot(R.LengthHisto, R.Name, prefix+"_lengths.png"); err != nil {
			log.WithError(err).Error("plotting bond lengths")
		}
	}
	if R.AngleHisto != nil {
		if err := zplot.AngleHistoPlot(R.AngleHisto, R.Name, c.Degrees, prefix+"_angles.png"); err != nil {
			log.WithError(err).Error("plotting bond angles")
		}
	}
}

//baseName returns the name of the file, without directory, compression
//suffix or extension.
func baseName(name string) string {
	base := filepath.Base(name)
	for _, ext := range []string{".gz", ".zst"} {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

//printText prints the results for one file in a human-readable form.
func printText(out io.Writer, r *result) error {
	R := r.report
	unit := "rad"
	if R.Degrees {
		unit = "deg"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "file: %s\n", R.File)
	if R.Atoms != nil {
		fmt.Fprintf(&b, "number of atoms:\n    %d\n", R.Natoms)
		fmt.Fprintf(&b, "atom data:\n")
		for i, at := range R.Atoms {
			fmt.Fprintf(&b, "    %4d %-3s %4d %14.8f %14.8f %14.8f\n", i, at.Symbol, at.Tag, at.Coords[0], at.Coords[1], at.Coords[2])
		}
	}
	if R.BondLengths != nil {
		fmt.Fprintf(&b, "all bond lengths:\n    %.6f\n", mat.Formatted(r.lengths, mat.Prefix("    ")))
	}
	if R.BondAngles != nil {
		fmt.Fprintf(&b, "all bond angles (%s):\n", unit)
		for _, a := range R.BondAngles {
			fmt.Fprintf(&b, "    %4d %4d %4d %14.8f\n", a.K, a.J, a.I, a.Angle)
		}
	}
	if R.OutOfPlane != nil {
		fmt.Fprintf(&b, "out-of-plane angles (%s):\n", unit)
		for _, o := range R.OutOfPlane {
			fmt.Fprintf(&b, "    %4d %4d %4d %4d %14.8f %14.8f\n", o.I, o.J, o.K, o.L, o.Sin, o.Angle)
		}
	}
	if R.AngleHisto != nil {
		fmt.Fprintf(&b, "bond angle histogram (%s):\n    %v\n", unit, R.AngleHisto.View())
	}
	if R.LengthHisto != nil {
		fmt.Fprintf(&b, "bond length histogram:\n    %v\n", R.LengthHisto.View())
	}
	for _, e := range R.Errors {
		fmt.Fprintf(&b, "error: %s\n", e.Message)
	}
	b.WriteString("\n")
	_, err := io.WriteString(out, b.String())
	return err
}
