/*
 * errors.go, part of govcd.
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
)

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows adding and retrieving information
//from the error without changing its type or wrapping it.
type Error interface {
	error
	Decorate(string) []string
	Critical() bool
}

//Failure messages. Everything here is fatal: the whole computation is meant
//to be re-run with adjusted parameters (most likely a smaller step) by the
//operator, never recovered automatically.
const (
	NonConvergence     = "Solver failed to converge"
	DegenerateOverlap  = "Vanishing diagonal self-overlap with the reference; the perturbation is too large or a solve is broken"
	DimensionMismatch  = "bra and ket dimensions disagree"
	UnsupportedMethod  = "Method must be one of HF, MP2 or CID"
	ZeroStep           = "Perturbation step must be non-zero"
	NilWavefunction    = "Given a nil wavefunction or basis"
	UnevenDisplacement = "Positive and negative displacement sets differ in length"
)

//CError is the concrete error for the root package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true always: no error in this package can be ignored.
func (err CError) Critical() bool { return true }

func newError(msg string, caller string) CError {
	return CError{msg, []string{caller}}
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Calling it on any other error panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//IsDegenerateOverlap returns whether err reports a vanishing diagonal
//self-overlap in the phase correction.
func IsDegenerateOverlap(err error) bool {
	return err != nil && strings.Contains(err.Error(), DegenerateOverlap)
}

//IsNonConvergence returns whether err reports a solver convergence failure.
func IsNonConvergence(err error) bool {
	return err != nil && strings.Contains(err.Error(), NonConvergence)
}

//NonConvergenceError builds the error a Solver implementation should return
//when the SCF (or post-SCF) procedure does not converge. The detail string
//usually carries the iteration count and the last energy change.
func NonConvergenceError(detail string) error {
	return CError{fmt.Sprintf("%s: %s", NonConvergence, detail), []string{"Solver"}}
}
