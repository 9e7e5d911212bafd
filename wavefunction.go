/*
 * wavefunction.go, part of govcd.
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

	"github.com/rsierra/govcd/cmat"
)

//Basis is an opaque identity handle for a basis set built by the external
//Hamiltonian builder. Two Basis values with the same Key refer to the very
//same AO basis (same functions on the same centers); the Name alone does
//not identify a basis, since displacing a nucleus moves its functions.
type Basis struct {
	Name string
	Key  uint64
}

//Same returns whether b and o are the same basis instance.
func (b *Basis) Same(o *Basis) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Key == o.Key
}

func (b *Basis) String() string {
	return fmt.Sprintf("%s#%d", b.Name, b.Key)
}

//Amplitudes holds the double-excitation amplitudes t2[ijab] from an MP2 or
//CID solve, with i,j running over occupied and a,b over virtual orbitals.
type Amplitudes struct {
	Nocc, Nvirt int
	data        []complex128
}

//NewAmplitudes returns a zeroed amplitude tensor for nocc occupied and
//nvirt virtual orbitals.
func NewAmplitudes(nocc, nvirt int) *Amplitudes {
	return &Amplitudes{nocc, nvirt, make([]complex128, nocc*nocc*nvirt*nvirt)}
}

//At returns t2[i,j,a,b]. Indexes are not checked beyond what the flat
//slice itself enforces.
func (t *Amplitudes) At(i, j, a, b int) complex128 {
	return t.data[((i*t.Nocc+j)*t.Nvirt+a)*t.Nvirt+b]
}

//Set sets t2[i,j,a,b] to v.
func (t *Amplitudes) Set(i, j, a, b int, v complex128) {
	t.data[((i*t.Nocc+j)*t.Nvirt+a)*t.Nvirt+b] = v
}

//Sample is one converged wavefunction: the output of a single solver
//invocation at one displaced configuration. It is immutable after the
//solver hands it over; the phase-correction machinery always allocates a
//new coefficient matrix rather than touching C.
type Sample struct {
	E     float64      //total energy
	C     *cmat.Matrix //orbital coefficients, nbf x nbf, MOs in columns
	Basis *Basis
	T2    *Amplitudes //nil for HF
}

//PerturbKind tells which knob a displacement set turned.
type PerturbKind byte

const (
	Nuclear  PerturbKind = 'N'
	Electric PerturbKind = 'E'
	Magnetic PerturbKind = 'M'
)

func (k PerturbKind) String() string {
	switch k {
	case Nuclear:
		return "nuclear"
	case Electric:
		return "electric"
	case Magnetic:
		return "magnetic"
	}
	return "unknown"
}

//DisplacementSet collects the positive and negative samples of one
//perturbation sweep, indexed by direction: 3N directions for nuclear
//displacements, 3 for either field.
type DisplacementSet struct {
	Kind PerturbKind
	Step float64
	Pos  []*Sample
	Neg  []*Sample
}

//Directions returns the number of directions in the set.
func (D *DisplacementSet) Directions() int {
	return len(D.Pos)
}

//check verifies the pos/neg length invariant and that dir is in range.
func (D *DisplacementSet) check(dir int) error {
	if len(D.Pos) != len(D.Neg) {
		return newError(UnevenDisplacement, "DisplacementSet.check")
	}
	if dir < 0 || dir >= len(D.Pos) {
		return newError(fmt.Sprintf("direction %d out of the %d available", dir, len(D.Pos)), "DisplacementSet.check")
	}
	return nil
}
