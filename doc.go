/*
 * doc.go, part of govcd.
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

/*Package vcd computes atomic axial tensors (AATs) for vibrational circular
dichroism by numerical differentiation of the electronic wavefunction, at the
HF, MP2 and CID levels of theory.


	**govcd Capabilities**

    Generates perturbed electronic wavefunctions by displacing nuclei and by
	applying electric and magnetic field perturbations, through any external
	SCF/correlated solver satisfying the Solver interface.

    Removes the arbitrary per-orbital complex phase between independently
	converged wavefunctions (phase correction against a fixed unperturbed
	reference).

    Computes complex molecular-orbital overlap matrices between two orbital
	sets through an atomic-orbital metric supplied by an external integrals
	engine (the Mints interface).

    Computes overlaps between Slater determinants by explicit permutation
	expansion, with signed parities generated by Heap's algorithm.

    Assembles the finite-difference AAT tensor from nuclear and
	magnetic-field displacement sets via a four-point central-difference
	stencil.

    Checkpoints displacement sets to compressed files (package dsf), builds
	input for and parses energies from the Psi4 program for cross-validation
	(package qm), and renders VCD spectra (package vcdplot).

The reference semantics are deliberately plain: explicit permutation
enumeration and explicit stencils. Nothing here is tuned for performance;
correctness against the analytic determinant and the stencil algebra is the
contract.

Complex orbital coefficients use the cmat subpackage, which wraps
gonum.org/v1/gonum/mat's CDense the same way real coordinates wrap Dense
elsewhere in this family of libraries.*/
package vcd
