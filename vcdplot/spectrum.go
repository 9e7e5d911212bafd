/*
 * spectrum.go, part of govcd.
 *
 * Copyright 2024 Rodrigo Sierra <rsierra{at}protonmailDOTcom>
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

/*Package vcdplot draws VCD spectra from vibrational frequencies and
rotational strengths. The plotting uses the gonum plot library.*/
package vcdplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Options holds the parameters for spectrum rendering.
type Options struct {
	Gamma   float64 //Lorentzian half-width at half-maximum, in cm-1
	Points  int     //points in the broadened curve
	Sticks  bool    //also draw the stick spectrum
	Padding float64 //x-axis padding on each side, in cm-1
}

//DefaultOptions returns reasonable options for mid-IR VCD spectra.
func DefaultOptions() *Options {
	o := new(Options)
	o.Gamma = 4.0
	o.Points = 2000
	o.Sticks = true
	o.Padding = 100
	return o
}

func basicSpectrumPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Wavenumber (cm-1)"
	p.Y.Label.Text = "Rotational strength"
	p.Add(plotter.NewGrid())
	return p
}

//Lorentzian returns the broadened intensity at x for sticks at freqs with
//areas rots.
func Lorentzian(x, gamma float64, freqs, rots []float64) float64 {
	var y float64
	for i, f := range freqs {
		d := x - f
		y += rots[i] * gamma * gamma / (d*d + gamma*gamma)
	}
	return y
}

//SpectrumPlot draws a Lorentzian-broadened VCD spectrum from vibrational
//frequencies (cm-1) and the corresponding rotational strengths, saving it
//as plotname.png. VCD bands carry signs, so the curve crosses zero; the
//zero line is drawn too.
func SpectrumPlot(freqs, rots []float64, O *Options, title, plotname string) error {
	if freqs == nil || rots == nil || len(freqs) != len(rots) {
		return Error{"frequencies and rotational strengths must come in matching non-nil slices", []string{"SpectrumPlot"}, true}
	}
	if O == nil {
		O = DefaultOptions()
	}
	p := basicSpectrumPlot(title)
	xmin := floats.Min(freqs) - O.Padding
	xmax := floats.Max(freqs) + O.Padding
	curve := make(plotter.XYs, O.Points)
	for i := 0; i < O.Points; i++ {
		x := xmin + (xmax-xmin)*float64(i)/float64(O.Points-1)
		curve[i].X = x
		curve[i].Y = Lorentzian(x, O.Gamma, freqs, rots)
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 170, A: 255}
	p.Add(line)
	zero := plotter.XYs{{X: xmin, Y: 0}, {X: xmax, Y: 0}}
	zline, err := plotter.NewLine(zero)
	if err != nil {
		return err
	}
	p.Add(zline)
	if O.Sticks {
		for i, f := range freqs {
			stick := plotter.XYs{{X: f, Y: 0}, {X: f, Y: rots[i]}}
			sline, err := plotter.NewLine(stick)
			if err != nil {
				return err
			}
			sline.Color = color.RGBA{B: 170, A: 255}
			p.Add(sline)
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}

//Errors

//Error is the error type for the package, it implements govcd.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of
//the error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }
