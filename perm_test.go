/*
 * perm_test.go, part of govcd.
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
	"testing"
)

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

//TestPermCount checks that the table for n elements has n! entries with
//parities that sum to zero for n >= 2 (even and odd permutations come in
//equal numbers).
func TestPermCount(Te *testing.T) {
	for n := 0; n <= 6; n++ {
		p := Permutations(n)
		if len(p.Perms) != factorial(n) {
			Te.Error("wrong number of permutations for", n, ":", len(p.Perms))
		}
		if len(p.Parity) != len(p.Perms) {
			Te.Error("parities misaligned for", n)
		}
		sum := 0
		for _, s := range p.Parity {
			if s != 1 && s != -1 {
				Te.Error("parity outside +-1 for", n)
			}
			sum += s
		}
		if n >= 2 && sum != 0 {
			Te.Error("parities do not cancel for", n, ":", sum)
		}
	}
}

//TestPermSmall pins the degenerate and the smallest non-trivial tables.
func TestPermSmall(Te *testing.T) {
	for _, n := range []int{0, 1} {
		p := Permutations(n)
		if len(p.Perms) != 1 || p.Parity[0] != 1 {
			Te.Error("n of", n, "must give exactly one permutation with parity +1")
		}
	}
	p := Permutations(1)
	if len(p.Perms[0]) != 1 || p.Perms[0][0] != 0 {
		Te.Error("wrong permutation for n=1:", p.Perms)
	}
	p = Permutations(2)
	if len(p.Perms) != 2 {
		Te.Fatal("wrong table for n=2")
	}
	fmt.Println("permutations for 2:", p.Perms, p.Parity)
	seen := map[string]int{}
	for i, perm := range p.Perms {
		seen[fmt.Sprint(perm)] = p.Parity[i]
	}
	if seen["[0 1]"] != 1 || seen["[1 0]"] != -1 {
		Te.Error("wrong parities for n=2:", seen)
	}
}

//TestPermParityMatchesTranspositions verifies each parity independently by
//counting inversions.
func TestPermParityMatchesTranspositions(Te *testing.T) {
	p := Permutations(5)
	for i, perm := range p.Perms {
		inv := 0
		for a := 0; a < len(perm); a++ {
			for b := a + 1; b < len(perm); b++ {
				if perm[a] > perm[b] {
					inv++
				}
			}
		}
		want := 1
		if inv%2 == 1 {
			want = -1
		}
		if p.Parity[i] != want {
			Te.Error("parity disagrees with inversion count for", perm)
		}
	}
}
