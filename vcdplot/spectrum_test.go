/*
 * spectrum_test.go, part of govcd.
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

package vcdplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

//TestLorentzian checks the peak and half-maximum values of a single band,
//and the sign of a negative band.
func TestLorentzian(Te *testing.T) {
	freqs := []float64{1200}
	rots := []float64{2.0}
	if y := Lorentzian(1200, 4.0, freqs, rots); math.Abs(y-2.0) > 1e-12 {
		Te.Error("peak value is", y, "instead of 2")
	}
	if y := Lorentzian(1204, 4.0, freqs, rots); math.Abs(y-1.0) > 1e-12 {
		Te.Error("half-maximum value is", y, "instead of 1")
	}
	if y := Lorentzian(950, 4.0, []float64{950}, []float64{-1.5}); y >= 0 {
		Te.Error("negative band lost its sign:", y)
	}
}

//TestSpectrumPlot renders a small signed spectrum and checks the file
//appears.
func TestSpectrumPlot(Te *testing.T) {
	freqs := []float64{1050, 1230, 1410}
	rots := []float64{12.5, -8.0, 3.2}
	name := filepath.Join(Te.TempDir(), "vcdtest")
	err := SpectrumPlot(freqs, rots, nil, "Test VCD spectrum", name)
	if err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("empty plot file")
	}
}

//TestSpectrumPlotBadInput checks the slice validation.
func TestSpectrumPlotBadInput(Te *testing.T) {
	if err := SpectrumPlot([]float64{1000}, []float64{1, 2}, nil, "", "x"); err == nil {
		Te.Error("mismatched slices accepted")
	}
	if err := SpectrumPlot(nil, nil, nil, "", "x"); err == nil {
		Te.Error("nil slices accepted")
	}
}
