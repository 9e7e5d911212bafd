/*
 * calc.go, part of govcd.
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

import "fmt"

//Calc holds the configuration for a wavefunction calculation. It is a plain
//value: the finite-difference driver keeps one immutable base Calc and
//derives a shifted copy per field displacement, so no field ever needs to
//be "reset" after a perturbation.
type Calc struct {
	Method        string //one of HF, MP2, CID
	Basis         string //basis set name, e.g. STO-3G
	Charge        int
	ElectricField [3]float64 //external electric field, a.u.
	MagneticField [3]float64 //external magnetic field, a.u.
	NucStep       float64    //nuclear displacement step, Bohr
	MagStep       float64    //magnetic field perturbation step, a.u.
	ElStep        float64    //electric field perturbation step, a.u.
}

var methods = []string{"HF", "MP2", "CID"}

//CheckMethod returns an error unless Q.Method names a supported level of
//theory. This is the only place method names are inspected; everywhere
//else the method is embodied by the Solver implementation in use.
func (Q *Calc) CheckMethod() error {
	for _, m := range methods {
		if Q.Method == m {
			return nil
		}
	}
	return newError(fmt.Sprintf("%s: %q", UnsupportedMethod, Q.Method), "Calc.CheckMethod")
}

//Correlated returns whether the configured method carries a
//double-excitation amplitude tensor.
func (Q *Calc) Correlated() bool {
	return Q.Method == "MP2" || Q.Method == "CID"
}

//withElectric returns a copy of Q with the alpha component of the electric
//field shifted by step.
func (Q Calc) withElectric(alpha int, step float64) Calc {
	Q.ElectricField[alpha] += step
	return Q
}

//withMagnetic returns a copy of Q with the alpha component of the magnetic
//field shifted by step.
func (Q Calc) withMagnetic(alpha int, step float64) Calc {
	Q.MagneticField[alpha] += step
	return Q
}
