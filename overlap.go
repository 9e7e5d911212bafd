/*
 * overlap.go, part of govcd.
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

import "github.com/rsierra/govcd/cmat"

//MOOverlap returns the molecular-orbital overlap matrix between the bra
//and ket orbital sets through the atomic-orbital metric S:
//
//	M[m,n] = sum_uv conj(bra[u,m]) S[u,v] ket[v,n]
//
//computed as braH * S * ket, which is algebraically the same quadruple sum.
//S is the bra basis self-overlap when both sets share a basis, or the
//cross-basis AO overlap otherwise; it comes from the external Mints engine.
func MOOverlap(bra, ket, S *cmat.Matrix) (*cmat.Matrix, error) {
	brar, brac := bra.Dims()
	ketr, ketc := ket.Dims()
	sr, sc := S.Dims()
	if brac != ketc || sr != brar || sc != ketr {
		return nil, newError(DimensionMismatch, "MOOverlap")
	}
	braH := cmat.Zeros(brac, brar)
	braH.Dagger(bra)
	tmp := cmat.Zeros(brac, ketr)
	tmp.Mul(braH, S)
	M := cmat.Zeros(brac, ketc)
	M.Mul(tmp, ket)
	return M, nil
}

//DetOverlap returns the overlap between two ndocc-orbital Slater
//determinants given their MO overlap matrix and the permutation table for
//ndocc. It expands the determinant against a fixed reference row (the last
//permutation in table order):
//
//	S_det = parity(ref) * sum_t parity(t) * prod_i M[ref(i), t(i)]
//
//No 1/ndocc! normalization applies in this form; with the parity(ref)
//factor included the sum is exactly det(M) restricted to the occupied
//block, which the property tests pin against the analytic 2x2 determinant.
//ndocc of 0 gives 1 by convention.
func DetOverlap(M *cmat.Matrix, p *PermTable) (complex128, error) {
	nperms := len(p.Perms)
	if nperms == 0 {
		return 0, newError("empty permutation table", "DetOverlap")
	}
	ndocc := len(p.Perms[0])
	r, c := M.Dims()
	if r < ndocc || c < ndocc {
		return 0, newError(DimensionMismatch, "DetOverlap")
	}
	ref := p.Perms[nperms-1]
	refsign := complex(float64(p.Parity[nperms-1]), 0)
	var det complex128
	for n := 0; n < nperms; n++ {
		prod := complex(1, 0)
		for i := 0; i < ndocc; i++ {
			prod *= M.At(ref[i], p.Perms[n][i])
		}
		det += complex(float64(p.Parity[n]), 0) * prod
	}
	return refsign * det, nil
}
