/*
 * perm.go, part of govcd.
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

import "golang.org/x/exp/slices"

//PermTable holds every permutation of {0..n-1} together with its signed
//parity, aligned by index: Parity[i] belongs to Perms[i]. The generation
//order is deterministic. A table is built once per ndocc and is read-only
//afterwards, so it can be shared between concurrent overlap evaluations.
type PermTable struct {
	Perms  [][]int
	Parity []int
}

//Permutations builds the table for n elements via Heap's algorithm.
//n of 0 or 1 gives a single permutation with parity +1.
func Permutations(n int) *PermTable {
	p := new(PermTable)
	det := make([]int, n)
	for i := range det {
		det[i] = i
	}
	heapPerm(det, n, p)
	return p
}

//heapPerm is the recursive swap-based generator. It appends each complete
//permutation, with its parity, to the table.
func heapPerm(a []int, size int, p *PermTable) {
	if size <= 1 {
		p.Perms = append(p.Perms, slices.Clone(a))
		p.Parity = append(p.Parity, permParity(slices.Clone(a)))
		return
	}
	for i := 0; i < size; i++ {
		heapPerm(a, size-1, p)
		if size&1 == 1 {
			a[0], a[size-1] = a[size-1], a[0]
		} else {
			a[i], a[size-1] = a[size-1], a[i]
		}
	}
}

//permParity returns +1 or -1 according to the number of transpositions
//that sort a back to the identity. It consumes (sorts) its argument.
func permParity(a []int) int {
	parity := 1
	for i := 0; i < len(a)-1; i++ {
		if a[i] != i {
			parity *= -1
			j := i
			for k := i + 1; k < len(a); k++ {
				if a[k] < a[j] {
					j = k
				}
			}
			a[i], a[j] = a[j], a[i]
		}
	}
	return parity
}
