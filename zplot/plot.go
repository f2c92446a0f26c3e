/*
 * plot.go, part of gozmat.
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

//Package zplot produces PNG plots of the bond-length and bond-angle
//histograms obtained with the histo package.
package zplot

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rmera/gozmat/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the plots, in inches.
const (
	Width  = 5
	Height = 4
)

//basicHistoPlot returns a plot with the bars for the histogram h, with
//title title and xlabel for the X axis.
func basicHistoPlot(h *histo.Data, title, xlabel string) (*plot.Plot, error) {
	if h == nil || len(h.View()) == 0 {
		return nil, errors.New("zplot: given nil or empty histogram")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	if h.Normalized() {
		p.Y.Label.Text = "Frequency"
	} else {
		p.Y.Label.Text = "Count"
	}
	vals := plotter.Values(h.View())
	bars, err := plotter.NewBarChart(vals, vg.Points(barWidth(len(vals))))
	if err != nil {
		return nil, errors.Wrap(err, "zplot: creating bar chart")
	}
	bars.Color = color.RGBA{R: 70, G: 110, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(plotter.NewGrid())
	p.Add(bars)
	p.NominalX(labels(h.CopyDividers())...)
	return p, nil
}

//the bars of a plot fill about 250 points in total.
func barWidth(bins int) float64 {
	w := 250.0 / float64(bins)
	if w < 1 {
		w = 1
	}
	return w
}

//labels returns a label for each bin, with its center. If there are many bins,
//only some get labels.
func labels(dividers []float64) []string {
	n := len(dividers) - 1
	ret := make([]string, n)
	every := n/10 + 1
	for i := 0; i < n; i++ {
		if i%every != 0 {
			continue
		}
		ret[i] = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", (dividers[i]+dividers[i+1])/2), "0"), ".")
	}
	return ret
}

//HistoPlot writes a PNG plot of the histogram h to the file filename.
//if filename doesn't end in ".png", the extension is added.
func HistoPlot(h *histo.Data, title, xlabel, filename string) error {
	p, err := basicHistoPlot(h, title, xlabel)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(filename, ".png") {
		filename = filename + ".png"
	}
	if err := p.Save(Width*vg.Inch, Height*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "zplot: saving %s", filename)
	}
	return nil
}

//WriteHistoPlot writes a PNG plot of the histogram h to out.
func WriteHistoPlot(out io.Writer, h *histo.Data, title, xlabel string) error {
	p, err := basicHistoPlot(h, title, xlabel)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width*vg.Inch, Height*vg.Inch, "png")
	if err != nil {
		return errors.Wrap(err, "zplot: rendering plot")
	}
	_, err = wt.WriteTo(out)
	return errors.Wrap(err, "zplot: writing plot")
}

//AngleHistoPlot writes the PNG plot of a bond-angle histogram to filename. degrees
//only changes the axis label.
func AngleHistoPlot(h *histo.Data, name string, degrees bool, filename string) error {
	unit := "rad"
	if degrees {
		unit = "deg"
	}
	return HistoPlot(h, "Bond angles "+name, "Angle ("+unit+")", filename)
}

//LengthHistoPlot writes the PNG plot of a bond-length histogram to filename.
func LengthHistoPlot(h *histo.Data, name string, filename string) error {
	return HistoPlot(h, "Bond lengths "+name, "Length", filename)
}
