/*
 * dsf_test.go, part of govcd.
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

package dsf

import (
	"path/filepath"
	"testing"

	vcd "github.com/rsierra/govcd"
	"github.com/rsierra/govcd/cmat"
)

func testSample(Te *testing.T, seed complex128, withT2 bool) *vcd.Sample {
	C, err := cmat.New(2, 2, []complex128{seed, 0.25 - 0.5i, -0.125i, seed * 1i})
	if err != nil {
		Te.Fatal(err)
	}
	var t2 *vcd.Amplitudes
	if withT2 {
		t2 = vcd.NewAmplitudes(1, 1)
		t2.Set(0, 0, 0, 0, -0.031+0.007i)
	}
	return &vcd.Sample{E: -74.9420798, C: C, Basis: &vcd.Basis{Name: "STO-3G", Key: 7}, T2: t2}
}

func testSets(Te *testing.T) []*vcd.DisplacementSet {
	nuc := &vcd.DisplacementSet{Kind: vcd.Nuclear, Step: 0.005,
		Pos: []*vcd.Sample{testSample(Te, 1+0.1i, false), testSample(Te, 0.9, true)},
		Neg: []*vcd.Sample{testSample(Te, 1-0.1i, false), testSample(Te, 1.1, true)},
	}
	mag := &vcd.DisplacementSet{Kind: vcd.Magnetic, Step: 0.001,
		Pos: []*vcd.Sample{testSample(Te, 0.5i, false)},
		Neg: []*vcd.Sample{testSample(Te, -0.5i, false)},
	}
	return []*vcd.DisplacementSet{nuc, mag}
}

func sameSample(a, b *vcd.Sample) bool {
	if a.E != b.E || !a.Basis.Same(b.Basis) || a.Basis.Name != b.Basis.Name {
		return false
	}
	if !a.C.EqualsApprox(b.C, 1e-15) {
		return false
	}
	if (a.T2 == nil) != (b.T2 == nil) {
		return false
	}
	if a.T2 != nil {
		if a.T2.Nocc != b.T2.Nocc || a.T2.Nvirt != b.T2.Nvirt {
			return false
		}
		if a.T2.At(0, 0, 0, 0) != b.T2.At(0, 0, 0, 0) {
			return false
		}
	}
	return true
}

//TestRoundTrip writes two displacement sets to a checkpoint and reads them
//back, once per supported compression (chosen from the filename, as for
//the trajectory formats).
func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"chk.dst", "chk.dsz", "chk.dsg", "chk.dsf"} {
		path := filepath.Join(dir, name)
		W, err := NewWriter(path)
		if err != nil {
			Te.Fatal(err)
		}
		sets := testSets(Te)
		for _, D := range sets {
			if err := W.WNext(D); err != nil {
				Te.Fatal(name, err)
			}
		}
		W.Close()
		R, err := NewReader(path)
		if err != nil {
			Te.Fatal(err)
		}
		for _, want := range sets {
			got, err := R.Next()
			if err != nil {
				Te.Fatal(name, err)
			}
			if got.Kind != want.Kind || got.Step != want.Step {
				Te.Error(name, "wrong set header:", got.Kind, got.Step)
			}
			if len(got.Pos) != len(want.Pos) || len(got.Neg) != len(want.Neg) {
				Te.Fatal(name, "wrong set lengths")
			}
			for i := range want.Pos {
				if !sameSample(got.Pos[i], want.Pos[i]) {
					Te.Error(name, "positive sample", i, "did not survive the roundtrip")
				}
			}
			for i := range want.Neg {
				if !sameSample(got.Neg[i], want.Neg[i]) {
					Te.Error(name, "negative sample", i, "did not survive the roundtrip")
				}
			}
		}
		_, err = R.Next()
		if !IsEOF(err) {
			Te.Error(name, "expected a clean EOF, got:", err)
		}
		R.Close()
	}
}

//TestWriterGuards checks the uninitialized and broken-set errors.
func TestWriterGuards(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "chk.dst")
	W, err := NewWriter(path)
	if err != nil {
		Te.Fatal(err)
	}
	uneven := &vcd.DisplacementSet{Kind: vcd.Nuclear, Step: 0.01,
		Pos: []*vcd.Sample{testSample(Te, 1, false)}}
	if err := W.WNext(uneven); err == nil {
		Te.Error("uneven set written without complaint")
	}
	W.Close()
	if err := W.WNext(testSets(Te)[0]); err == nil {
		Te.Error("write after Close accepted")
	}
}

//TestReaderGuards checks missing files and garbage content.
func TestReaderGuards(Te *testing.T) {
	if _, err := NewReader(filepath.Join(Te.TempDir(), "nope.dst")); err == nil {
		Te.Error("missing file opened without complaint")
	}
	path := filepath.Join(Te.TempDir(), "garbage.dst")
	W, err := NewWriter(path)
	if err != nil {
		Te.Fatal(err)
	}
	W.h.Write([]byte("this is not a checkpoint\n"))
	W.Close()
	R, err := NewReader(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	if _, err := R.Next(); err == nil || IsEOF(err) {
		Te.Error("garbage content not reported as a format error:", err)
	}
}
