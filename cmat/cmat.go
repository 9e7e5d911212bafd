/*
 * cmat.go, part of govcd.
 *
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
 *
 */

//Package cmat wraps the gonum complex dense matrix with the operations
//needed for molecular-orbital coefficient and overlap algebra. Orbital
//coefficients may carry a complex phase (magnetic-field perturbed
//wavefunctions do), so everything here is complex128 throughout.
package cmat

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a complex matrix, almost always nbf x nbf. It must be able
//to implement any gonum CMatrix interface.
type Matrix struct {
	*mat.CDense
}

//Matrix2CDense returns the underlying gonum matrix of A.
func Matrix2CDense(A *Matrix) *mat.CDense {
	return A.CDense
}

//CDense2Matrix wraps the gonum matrix A.
func CDense2Matrix(A *mat.CDense) *Matrix {
	return &Matrix{A}
}

//New generates a rows x cols Matrix from data, which must be in
//row-major order. A nil data slice gives a zero matrix.
func New(rows, cols int, data []complex128) (*Matrix, error) {
	if data != nil && len(data) != rows*cols {
		return nil, Error{fmt.Sprintf("Input slice length %d does not match %dx%d", len(data), rows, cols), []string{"New"}, true}
	}
	r := mat.NewCDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a rows x cols Matrix full of zeros.
func Zeros(rows, cols int) *Matrix {
	return &Matrix{mat.NewCDense(rows, cols, nil)}
}

//Eye returns the n x n identity.
func Eye(n int) *Matrix {
	A := Zeros(n, n)
	for i := 0; i < n; i++ {
		A.Set(i, i, 1)
	}
	return A
}

//Copy returns an independent copy of F.
func (F *Matrix) Copy() *Matrix {
	r, c := F.Dims()
	A := Zeros(r, c)
	A.CDense.Copy(F.CDense)
	return A
}

//Dagger puts the conjugate transpose of A in the receiver. The receiver
//must not be A itself.
func (F *Matrix) Dagger(A *Matrix) {
	r, c := A.Dims()
	fr, fc := F.Dims()
	if fr != c || fc != r {
		panic(ErrShape)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			F.Set(j, i, cmplx.Conj(A.At(i, j)))
		}
	}
}

//Mul puts the product A*B in the receiver.
func (F *Matrix) Mul(A, B *Matrix) {
	if F == A || F == B {
		//CDense.Mul does not admit aliasing between receiver and arguments.
		tmp := Zeros(F.Dims())
		tmp.CDense.Mul(A.CDense, B.CDense)
		F.CDense.Copy(tmp.CDense)
		return
	}
	F.CDense.Mul(A.CDense, B.CDense)
}

//ScaleCol multiplies every element of the col-th column of F by f.
func (F *Matrix) ScaleCol(col int, f complex128) {
	r, c := F.Dims()
	if col < 0 || col >= c {
		panic(ErrIndex)
	}
	for i := 0; i < r; i++ {
		F.Set(i, col, F.At(i, col)*f)
	}
}

//Col returns a copy of the col-th column of F.
func (F *Matrix) Col(col int) []complex128 {
	r, c := F.Dims()
	if col < 0 || col >= c {
		panic(ErrIndex)
	}
	ret := make([]complex128, r)
	for i := 0; i < r; i++ {
		ret[i] = F.At(i, col)
	}
	return ret
}

//EqualsApprox returns true if F and A have the same shape and every
//element differs by less than epsilon in modulus.
func (F *Matrix) EqualsApprox(A *Matrix, epsilon float64) bool {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fr != ar || fc != ac {
		return false
	}
	for i := 0; i < fr; i++ {
		for j := 0; j < fc; j++ {
			if cmplx.Abs(F.At(i, j)-A.At(i, j)) >= epsilon {
				return false
			}
		}
	}
	return true
}

//String returns a human-readable representation, mostly for debugging.
func (F *Matrix) String() string {
	r, c := F.Dims()
	ret := ""
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			ret += fmt.Sprintf("%v ", F.At(i, j))
		}
		ret += "\n"
	}
	return ret
}

//Errors

const (
	ErrShape = PanicMsg("cmat: Dimension mismatch")
	ErrIndex = PanicMsg("cmat: Index out of range")
)

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Error is the error type for the package, it implements govcd.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }
