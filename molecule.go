/*
 * molecule.go, part of govcd.
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

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

//Atom contains the static information for one nucleus. Coordinates live in
//the Geometry matrix, not here.
type Atom struct {
	Symbol string
	Z      int
	Mass   float64 //in amu. Zero means "look it up from the symbol".
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Z = A.Z
	Newat.Mass = A.Mass
	return Newat
}

//A map for assigning mass to elements.
//Note that just the elements common in VCD benchmark molecules are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"D":  2.014,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Br": 79.904,
}

var symbolZ = []string{"", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar"}

//Geometry is an immutable molecular geometry: a set of atoms plus an
//natom x 3 matrix of Cartesian coordinates, in Bohr. The finite-difference
//driver never mutates a Geometry; displaced geometries are fresh copies, so
//there is no "restore" step anywhere and a Geometry can be shared freely.
type Geometry struct {
	atoms  []*Atom
	coords *mat.Dense
}

//NewGeometry builds a Geometry from atoms and a flat, row-major
//(x1,y1,z1,x2...) coordinate slice, in Bohr.
func NewGeometry(atoms []*Atom, coords []float64) (*Geometry, error) {
	if atoms == nil || coords == nil {
		return nil, newError(NilWavefunction, "NewGeometry")
	}
	if len(coords) != 3*len(atoms) {
		return nil, newError(fmt.Sprintf("%d coordinates given for %d atoms", len(coords), len(atoms)), "NewGeometry")
	}
	g := new(Geometry)
	for _, a := range atoms {
		na := a.Copy()
		if na.Mass == 0 {
			na.Mass = symbolMass[na.Symbol]
		}
		if na.Z == 0 {
			if z := slices.Index(symbolZ, na.Symbol); z > 0 {
				na.Z = z
			}
		}
		g.atoms = append(g.atoms, na)
	}
	g.coords = mat.NewDense(len(atoms), 3, slices.Clone(coords))
	return g, nil
}

//Len returns the number of atoms.
func (G *Geometry) Len() int {
	return len(G.atoms)
}

//Atom returns the i-th atom. It panics if out of range, as the topology
//methods in this family of libraries do.
func (G *Geometry) Atom(i int) *Atom {
	return G.atoms[i]
}

//Coord returns the coordinate of atom i along the Cartesian axis ax.
func (G *Geometry) Coord(i, ax int) float64 {
	return G.coords.At(i, ax)
}

//Masses returns a slice with the mass of each atom.
func (G *Geometry) Masses() ([]float64, error) {
	ret := make([]float64, len(G.atoms))
	for i, a := range G.atoms {
		if a.Mass <= 0 {
			return nil, newError(fmt.Sprintf("no mass for atom %d (%s)", i, a.Symbol), "Masses")
		}
		ret[i] = a.Mass
	}
	return ret, nil
}

//Displaced returns a new Geometry with the coordinate of direction
//alpha (atom alpha/3, axis alpha%3) shifted by step. The receiver is not
//modified.
func (G *Geometry) Displaced(alpha int, step float64) *Geometry {
	n := new(Geometry)
	n.atoms = G.atoms //atoms are never written to, sharing is fine
	n.coords = mat.DenseCopyOf(G.coords)
	n.coords.Set(alpha/3, alpha%3, n.coords.At(alpha/3, alpha%3)+step)
	return n
}

//Copy returns a deep copy of the Geometry.
func (G *Geometry) Copy() *Geometry {
	n := new(Geometry)
	for _, a := range G.atoms {
		n.atoms = append(n.atoms, a.Copy())
	}
	n.coords = mat.DenseCopyOf(G.coords)
	return n
}

//XYZString returns the geometry as symbol x y z lines, the format the
//external program drivers feed to their input builders.
func (G *Geometry) XYZString() string {
	ret := ""
	for i, a := range G.atoms {
		ret += fmt.Sprintf("%-2s %16.10f %16.10f %16.10f\n", a.Symbol, G.coords.At(i, 0), G.coords.At(i, 1), G.coords.At(i, 2))
	}
	return ret
}
