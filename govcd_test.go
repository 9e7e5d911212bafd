/*
 * govcd_test.go, part of govcd.
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

package vcd

import (
	"fmt"
	"strings"
	"testing"
)

//TestGeometry checks construction, the symbol lookups and the displaced
//copies.
func TestGeometry(Te *testing.T) {
	atoms := []*Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}}
	coords := []float64{
		0, 0, 0.127,
		0, 1.432, -1.004,
		0, -1.432, -1.004,
	}
	g, err := NewGeometry(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 3 {
		Te.Error("wrong atom count:", g.Len())
	}
	if g.Atom(0).Z != 8 || g.Atom(1).Z != 1 {
		Te.Error("atomic numbers not filled in:", g.Atom(0).Z, g.Atom(1).Z)
	}
	masses, err := g.Masses()
	if err != nil {
		Te.Error(err)
	}
	fmt.Println("water masses:", masses)
	if masses[0] != 15.999 || masses[1] != 1.008 {
		Te.Error("wrong masses:", masses)
	}
	d := g.Displaced(4, 0.01) //atom 1, axis y
	if d.Coord(1, 1) != coords[4]+0.01 {
		Te.Error("displacement missed:", d.Coord(1, 1))
	}
	if g.Coord(1, 1) != coords[4] {
		Te.Error("displacement mutated the original geometry")
	}
	//deuterium carries its own mass, and explicit masses win over lookups
	iso, err := NewGeometry([]*Atom{{Symbol: "D"}, {Symbol: "H", Mass: 3.016}}, make([]float64, 6))
	if err != nil {
		Te.Fatal(err)
	}
	m2, _ := iso.Masses()
	if m2[0] != 2.014 || m2[1] != 3.016 {
		Te.Error("isotope masses mishandled:", m2)
	}
}

//TestGeometryBadInput checks mismatched slices are rejected.
func TestGeometryBadInput(Te *testing.T) {
	if _, err := NewGeometry([]*Atom{{Symbol: "H"}}, []float64{0, 0}); err == nil {
		Te.Error("short coordinate slice accepted")
	}
	if _, err := NewGeometry(nil, []float64{}); err == nil {
		Te.Error("nil atoms accepted")
	}
}

//TestXYZString pins the layout the external program drivers rely on.
func TestXYZString(Te *testing.T) {
	g, err := NewGeometry([]*Atom{{Symbol: "H"}}, []float64{0, 0, 0.5})
	if err != nil {
		Te.Fatal(err)
	}
	s := g.XYZString()
	if !strings.HasPrefix(s, "H ") || !strings.Contains(s, "0.5000000000") {
		Te.Error("unexpected xyz line:", s)
	}
}

//TestCalc covers the method check and the derived field shifts.
func TestCalc(Te *testing.T) {
	for _, m := range []string{"HF", "MP2", "CID"} {
		Q := Calc{Method: m}
		if err := Q.CheckMethod(); err != nil {
			Te.Error("supported method rejected:", m, err)
		}
	}
	Q := Calc{Method: "B3LYP"}
	if err := Q.CheckMethod(); err == nil {
		Te.Error("unsupported method accepted")
	}
	base := Calc{Method: "MP2"}
	if !base.Correlated() {
		Te.Error("MP2 not flagged as correlated")
	}
	shifted := base.withElectric(1, 0.001)
	if shifted.ElectricField[1] != 0.001 {
		Te.Error("electric shift missed:", shifted.ElectricField)
	}
	if base.ElectricField != [3]float64{} {
		Te.Error("field shift mutated the base configuration")
	}
	shifted = base.withMagnetic(2, -0.0005)
	if shifted.MagneticField[2] != -0.0005 || base.MagneticField != [3]float64{} {
		Te.Error("magnetic shift wrong or leaked:", shifted.MagneticField, base.MagneticField)
	}
}

//TestErrors checks decoration and classification of the package errors.
func TestErrors(Te *testing.T) {
	err := newError(ZeroStep, "TestErrors")
	deco := err.Decorate("caller2")
	if len(deco) != 2 || deco[0] != "TestErrors" {
		Te.Error("decoration went wrong:", deco)
	}
	if !err.Critical() {
		Te.Error("package errors must be critical")
	}
	if !IsNonConvergence(NonConvergenceError("20 iterations, dE=1e-3")) {
		Te.Error("convergence failure not classified")
	}
	if IsNonConvergence(err) || IsDegenerateOverlap(err) {
		Te.Error("unrelated error misclassified")
	}
}

//TestDisplacementSetCheck exercises the direction bookkeeping.
func TestDisplacementSetCheck(Te *testing.T) {
	D := &DisplacementSet{Kind: Electric, Step: 0.001,
		Pos: []*Sample{testRef(2)}, Neg: []*Sample{testRef(2)}}
	if err := D.check(0); err != nil {
		Te.Error(err)
	}
	if err := D.check(1); err == nil {
		Te.Error("out-of-range direction accepted")
	}
	D.Neg = nil
	if err := D.check(0); err == nil {
		Te.Error("uneven set accepted")
	}
}
