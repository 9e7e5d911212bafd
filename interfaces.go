/*
 * interfaces.go, part of govcd.
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

/*The electronic-structure solvers and the integrals engine are external
 * collaborators. This library only ever talks to them through the two
 * interfaces below, so any SCF/MP2/CID code can be plugged in. The method
 * (HF, MP2 or CID) is chosen once, by picking the Solver implementation;
 * no method-name branching happens inside the finite-difference loops.*/

//Solver is the interface for a black-box electronic-structure solver. Solve
//builds the AO Hamiltonian for the given configuration and geometry, runs
//the SCF procedure (plus the correlated amplitude solve, for MP2/CID
//implementations) and returns the resulting wavefunction sample.
type Solver interface {

	//Solve returns the converged wavefunction for the configuration Q at
	//geometry g. A non-convergent solve must return an error for which
	//IsNonConvergence holds; the sample is then meaningless. Solve must not
	//retain or mutate g.
	Solve(Q *Calc, g *Geometry) (*Sample, error)
}

//Mints is the interface for an external one-electron integrals engine. It
//supplies the atomic-orbital metric through which molecular orbitals from
//two (possibly different) basis sets are compared.
type Mints interface {

	//AOOverlap returns the atomic-orbital overlap matrix between the two
	//basis sets. When bra and ket are the same basis this is the basis
	//self-overlap (symmetric, real, positive-definite); otherwise it is the
	//rectangular cross-basis overlap, which need not be symmetric.
	AOOverlap(bra, ket *Basis) (*cmat.Matrix, error)
}
