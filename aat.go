/*
 * aat.go, part of govcd.
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

	matrix "github.com/skelterjohn/go.matrix"

	"github.com/rsierra/govcd/cmat"
)

//AAT assembles atomic axial tensor elements from one nuclear and one
//magnetic displacement set, both phase-referenced to the same unperturbed
//wavefunction. Each element is a four-point central-difference stencil for
//the second mixed derivative of the determinant overlap with respect to a
//nuclear displacement and a magnetic field component.
type AAT struct {
	ndocc int
	ref   *Sample
	nuc   *DisplacementSet
	mag   *DisplacementSet
	mints Mints
	perms *PermTable //built on first use, read-only after
}

//NewAAT builds an assembler. The sets must come from sweeps of the right
//kind, with equal positive and negative lengths, and non-zero steps.
func NewAAT(ndocc int, ref *Sample, nuc, mag *DisplacementSet, m Mints) (*AAT, error) {
	if ref == nil || ref.C == nil || ref.Basis == nil || m == nil {
		return nil, newError(NilWavefunction, "NewAAT")
	}
	if nuc == nil || mag == nil || nuc.Kind != Nuclear || mag.Kind != Magnetic {
		return nil, newError("need one nuclear and one magnetic displacement set", "NewAAT")
	}
	if len(nuc.Pos) != len(nuc.Neg) || len(mag.Pos) != len(mag.Neg) {
		return nil, newError(UnevenDisplacement, "NewAAT")
	}
	if nuc.Step == 0 || mag.Step == 0 {
		return nil, newError(ZeroStep, "NewAAT")
	}
	nbf, _ := ref.C.Dims()
	if ndocc < 0 || ndocc > nbf {
		return nil, newError(fmt.Sprintf("%d occupied orbitals in a %d-function basis", ndocc, nbf), "NewAAT")
	}
	return &AAT{ndocc: ndocc, ref: ref, nuc: nuc, mag: mag, mints: m}, nil
}

//table returns the cached permutation table, building it on first need.
func (A *AAT) table() *PermTable {
	if A.perms == nil {
		A.perms = Permutations(A.ndocc)
	}
	return A.perms
}

//Element returns the AAT element I(alpha,beta) for nuclear direction alpha
//and magnetic field direction beta:
//
//	I = [S(n+,m+) - S(n-,m+) - S(n+,m-) + S(n-,m-)] / (2*dR*dB)
//
//where each S is the determinant overlap between the two phase-corrected
//perturbed wavefunctions. The result is complex; its imaginary part is the
//physically significant one.
func (A *AAT) Element(alpha, beta int) (complex128, error) {
	if err := A.nuc.check(alpha); err != nil {
		return 0, errDecorate(err, "Element")
	}
	if err := A.mag.check(beta); err != nil {
		return 0, errDecorate(err, "Element")
	}
	np, err := A.rephased(A.nuc.Pos[alpha])
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	nn, err := A.rephased(A.nuc.Neg[alpha])
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	mp, err := A.rephased(A.mag.Pos[beta])
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	mn, err := A.rephased(A.mag.Neg[beta])
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	spp, err := A.detOverlap(np, mp)
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	snp, err := A.detOverlap(nn, mp)
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	spn, err := A.detOverlap(np, mn)
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	snn, err := A.detOverlap(nn, mn)
	if err != nil {
		return 0, errDecorate(err, "Element")
	}
	return aatStencil(spp, snp, spn, snn, A.nuc.Step, A.mag.Step), nil
}

//aatStencil is the bare four-point second-mixed-partial stencil.
func aatStencil(pp, np, pn, nn complex128, nucStep, magStep float64) complex128 {
	return (pp - np - pn + nn) / complex(2*nucStep*magStep, 0)
}

//rephased phase-corrects one perturbed sample against the shared
//unperturbed reference. Samples from the FD driver arrive already
//corrected; the operation is idempotent, so correcting again here keeps
//the assembler usable with raw solver output too.
func (A *AAT) rephased(s *Sample) (*Sample, error) {
	S, err := aoMetric(A.mints, A.ref, s)
	if err != nil {
		return nil, err
	}
	pc, err := PhaseCorrect(A.ref.C, s.C, S)
	if err != nil {
		return nil, err
	}
	return &Sample{E: s.E, C: pc, Basis: s.Basis, T2: s.T2}, nil
}

//detOverlap computes the Slater determinant overlap between two
//phase-corrected samples through the cross-basis AO metric.
func (A *AAT) detOverlap(bra, ket *Sample) (complex128, error) {
	S, err := aoMetric(A.mints, bra, ket)
	if err != nil {
		return 0, err
	}
	M, err := MOOverlap(bra.C, ket.C, S)
	if err != nil {
		return 0, err
	}
	det, err := DetOverlap(M, A.table())
	if err != nil {
		return 0, err
	}
	return det, nil
}

//Tensor computes every element: a (3*natom) x 3 complex matrix with
//nuclear directions as rows and magnetic field directions as columns.
func (A *AAT) Tensor() (*cmat.Matrix, error) {
	rows := len(A.nuc.Pos)
	cols := len(A.mag.Pos)
	T := cmat.Zeros(rows, cols)
	for alpha := 0; alpha < rows; alpha++ {
		for beta := 0; beta < cols; beta++ {
			I, err := A.Element(alpha, beta)
			if err != nil {
				return nil, errDecorate(err, "Tensor")
			}
			T.Set(alpha, beta, I)
		}
	}
	return T, nil
}

//AtomBlocks slices the imaginary part of a full tensor into one 3x3 block
//per atom, the form the per-atom AATs are tabulated in.
func AtomBlocks(T *cmat.Matrix) []*matrix.DenseMatrix {
	rows, _ := T.Dims()
	blocks := make([]*matrix.DenseMatrix, 0, rows/3)
	for at := 0; at+2 < rows; at += 3 {
		b := matrix.Zeros(3, 3)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				b.Set(i, j, imag(T.At(at+i, j)))
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}
