/*
 * phase.go, part of govcd.
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
	"math/cmplx"

	"github.com/rsierra/govcd/cmat"
)

//degenTol is the modulus below which a diagonal self-overlap counts as
//vanished. Well-behaved perturbations give diagonals near unity.
const degenTol = 1e-12

//PhaseCorrect returns a copy of the target coefficients with every orbital
//column rephased against the reference orbitals: column m is divided by
//the unit-modulus factor overlap[m,m]/|overlap[m,m]|, where overlap is the
//MO overlap between reference and target through the AO metric S. Each
//independently converged solve may attach an arbitrary complex phase (a
//sign, for real orbitals) to each orbital; removing it is what makes
//wavefunctions from different solves comparable.
//
//A vanishing diagonal means the perturbed orbital has no overlap left with
//its reference partner, so there is no phase to fix: the perturbation is
//too large or the solve broke. That returns a DegenerateOverlap error,
//never a silent NaN. The operation is idempotent: phase-correcting an
//already corrected matrix against the same reference reproduces it.
func PhaseCorrect(ref, target, S *cmat.Matrix) (*cmat.Matrix, error) {
	overlap1, err := MOOverlap(ref, target, S)
	if err != nil {
		return nil, errDecorate(err, "PhaseCorrect")
	}
	_, ncols := target.Dims()
	ret := target.Copy()
	for m := 0; m < ncols; m++ {
		o := overlap1.At(m, m)
		//N = sqrt(o * conj(o)) = |o|, a real non-negative normalization.
		N := cmplx.Abs(o)
		if N < degenTol {
			return nil, newError(fmt.Sprintf("%s (orbital %d)", DegenerateOverlap, m), "PhaseCorrect")
		}
		phase := o / complex(N, 0)
		ret.ScaleCol(m, 1/phase)
	}
	return ret, nil
}
