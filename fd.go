/*
 * fd.go, part of govcd.
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

//FD drives the finite-difference perturbation sweeps. It owns an immutable
//base configuration and geometry; every displaced calculation gets a fresh
//derived Calc/Geometry value, so nothing is ever mutated in place and
//nothing needs restoring afterwards. Each perturbed solve is independent
//of every other one.
//
//Solver failures are fatal for the whole sweep: the error propagates to
//the caller, with no retry at a smaller step and no partial result. A
//caller that wants to keep already-computed directions across failures can
//checkpoint sets with the dsf package.
type FD struct {
	base  Calc
	geo   *Geometry
	sol   Solver
	mints Mints
	ref   *Sample //unperturbed reference, for phase correction
}

//NewFD builds a driver from an immutable base configuration, the
//unperturbed geometry, the solver and integrals engines, and the
//unperturbed reference wavefunction.
func NewFD(Q Calc, g *Geometry, sol Solver, mints Mints, ref *Sample) (*FD, error) {
	if err := Q.CheckMethod(); err != nil {
		return nil, errDecorate(err, "NewFD")
	}
	if g == nil || sol == nil || mints == nil || ref == nil || ref.C == nil || ref.Basis == nil {
		return nil, newError(NilWavefunction, "NewFD")
	}
	return &FD{base: Q, geo: g, sol: sol, mints: mints, ref: ref}, nil
}

//Ref returns the unperturbed reference sample the driver phase-corrects
//against.
func (F *FD) Ref() *Sample {
	return F.ref
}

//Geometry returns the unperturbed base geometry.
func (F *FD) Geometry() *Geometry {
	return F.geo
}

//NuclearDisplacements computes phase-corrected wavefunction samples for
//positive and negative displacements of each of the 3N nuclear Cartesian
//directions, with the given non-zero step in Bohr.
func (F *FD) NuclearDisplacements(step float64) (*DisplacementSet, error) {
	D, err := F.sweep(Nuclear, step, 3*F.geo.Len(), func(alpha int, signed float64) (Calc, *Geometry) {
		return F.base, F.geo.Displaced(alpha, signed)
	})
	if err != nil {
		return nil, errDecorate(err, "NuclearDisplacements")
	}
	return D, nil
}

//ElectricFieldPerturbations computes phase-corrected samples for positive
//and negative shifts of each Cartesian component of the external electric
//field.
func (F *FD) ElectricFieldPerturbations(step float64) (*DisplacementSet, error) {
	D, err := F.sweep(Electric, step, 3, func(alpha int, signed float64) (Calc, *Geometry) {
		return F.base.withElectric(alpha, signed), F.geo
	})
	if err != nil {
		return nil, errDecorate(err, "ElectricFieldPerturbations")
	}
	return D, nil
}

//MagneticFieldPerturbations computes phase-corrected samples for positive
//and negative shifts of each Cartesian component of the external magnetic
//field. Orbitals from these solves are genuinely complex.
func (F *FD) MagneticFieldPerturbations(step float64) (*DisplacementSet, error) {
	D, err := F.sweep(Magnetic, step, 3, func(alpha int, signed float64) (Calc, *Geometry) {
		return F.base.withMagnetic(alpha, signed), F.geo
	})
	if err != nil {
		return nil, errDecorate(err, "MagneticFieldPerturbations")
	}
	return D, nil
}

//sweep runs one +step and one -step solve per direction, phase-correcting
//every sample against the unperturbed reference. derive builds the
//configuration and geometry for one signed displacement from the immutable
//base; it must not touch shared state.
func (F *FD) sweep(kind PerturbKind, step float64, ndir int, derive func(alpha int, signed float64) (Calc, *Geometry)) (*DisplacementSet, error) {
	if step == 0 {
		return nil, newError(ZeroStep, "sweep")
	}
	D := &DisplacementSet{Kind: kind, Step: step}
	for _, sign := range []float64{1, -1} {
		for alpha := 0; alpha < ndir; alpha++ {
			Q, g := derive(alpha, sign*step)
			s, err := F.sol.Solve(&Q, g)
			if err != nil {
				return nil, errDecorate(wrapExternal(err), "sweep")
			}
			pc, err := F.phase(s)
			if err != nil {
				return nil, errDecorate(err, "sweep")
			}
			if sign > 0 {
				D.Pos = append(D.Pos, pc)
			} else {
				D.Neg = append(D.Neg, pc)
			}
		}
	}
	return D, nil
}

//phase returns s with its coefficients rephased against the driver's
//unperturbed reference. The incoming sample is not modified.
func (F *FD) phase(s *Sample) (*Sample, error) {
	if s == nil || s.C == nil || s.Basis == nil {
		return nil, newError(NilWavefunction, "phase")
	}
	S, err := F.mints.AOOverlap(F.ref.Basis, s.Basis)
	if err != nil {
		return nil, errDecorate(wrapExternal(err), "phase")
	}
	pc, err := PhaseCorrect(F.ref.C, s.C, S)
	if err != nil {
		return nil, errDecorate(err, "phase")
	}
	return &Sample{E: s.E, C: pc, Basis: s.Basis, T2: s.T2}, nil
}

//wrapExternal turns an error from an external collaborator into a package
//Error, so errDecorate can be used on it. Errors that already implement
//the interface pass through untouched.
func wrapExternal(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(Error); ok {
		return err
	}
	return CError{err.Error(), nil}
}

//aoMetric is a convenience used by the AAT assembler as well: the AO
//overlap between the bases of two samples.
func aoMetric(m Mints, bra, ket *Sample) (*cmat.Matrix, error) {
	S, err := m.AOOverlap(bra.Basis, ket.Basis)
	if err != nil {
		return nil, errDecorate(wrapExternal(err), "aoMetric")
	}
	return S, nil
}
