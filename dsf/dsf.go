/*
 * dsf.go, part of govcd.
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

/*Package dsf implements the displacement-set format: a compressed,
text-based checkpoint file for finite-difference displacement sets. A
failed sweep loses its computed directions; a caller that writes each
completed set to a dsf file can restart without redoing the solves.

The compression is chosen from the last letter of the filename, in the
manner of the trajectory formats this package descends from: "z" (.dsz)
for zstd, "g" (.dsg) for gzip, "f" (.dsf) for flate, anything else for
plain text.*/
package dsf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	vcd "github.com/rsierra/govcd"
	"github.com/rsierra/govcd/cmat"
)

//Write!

//DsfW writes displacement sets to one checkpoint file.
type DsfW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

//NewWriter creates a checkpoint file. The compression is selected from
//the filename as described in the package documentation.
func NewWriter(name string) (*DsfW, error) {
	W := new(DsfW)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.h, err = anyNewWriter(name, W.f)
	if err != nil {
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.filename = name
	W.writeable = true
	return W, nil
}

func anyNewWriter(name string, f io.Writer) (io.WriteCloser, error) {
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'z':
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case 'g':
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case 'f':
		return flate.NewWriter(f, flate.BestCompression)
	default:
		return nopWriteCloser{f}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

//Close closes the writer. The object can not be used after this call.
func (W *DsfW) Close() {
	if W == nil {
		return
	}
	if W.writeable {
		W.h.Close()
		W.f.Close()
	}
	W.writeable = false
}

//WNext writes one displacement set. Several sets (say, the nuclear and
//the magnetic sweeps of one calculation) can share a file; they are read
//back in writing order.
func (W *DsfW) WNext(D *vcd.DisplacementSet) error {
	if !W.writeable {
		return Error{UnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if D == nil || len(D.Pos) != len(D.Neg) {
		return Error{BrokenSet, W.filename, []string{"WNext"}, true}
	}
	fmt.Fprintf(W.h, "** %c %.17g %d\n", byte(D.Kind), D.Step, len(D.Pos))
	for _, block := range [][]*vcd.Sample{D.Pos, D.Neg} {
		for _, s := range block {
			if err := W.writeSample(s); err != nil {
				return errDecorate(err, "WNext")
			}
		}
	}
	return nil
}

func (W *DsfW) writeSample(s *vcd.Sample) error {
	if s == nil || s.C == nil || s.Basis == nil {
		return Error{BrokenSet, W.filename, []string{"writeSample"}, true}
	}
	r, c := s.C.Dims()
	fmt.Fprintf(W.h, "# %.17g %s %d %d %d\n", s.E, s.Basis.Name, s.Basis.Key, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := s.C.At(i, j)
			if j > 0 {
				fmt.Fprint(W.h, " ")
			}
			fmt.Fprintf(W.h, "%.17g %.17g", real(v), imag(v))
		}
		fmt.Fprint(W.h, "\n")
	}
	if s.T2 != nil {
		fmt.Fprintf(W.h, "t2 %d %d\n", s.T2.Nocc, s.T2.Nvirt)
		no, nv := s.T2.Nocc, s.T2.Nvirt
		for i := 0; i < no; i++ {
			for j := 0; j < no; j++ {
				for a := 0; a < nv; a++ {
					for b := 0; b < nv; b++ {
						v := s.T2.At(i, j, a, b)
						fmt.Fprintf(W.h, "%.17g %.17g\n", real(v), imag(v))
					}
				}
			}
		}
	} else {
		fmt.Fprint(W.h, "t2 0 0\n")
	}
	return nil
}

//Read!

//DsfR reads displacement sets back from a checkpoint file.
type DsfR struct {
	f        *os.File
	z        io.Closer //non-nil when a compressor needs closing
	h        *bufio.Scanner
	filename string
	readable bool
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func()
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//NewReader opens a checkpoint file for reading. The compression is
//selected from the filename, as for NewWriter.
func NewReader(name string) (*DsfR, error) {
	R := new(DsfR)
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
	}
	var reader io.Reader
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'z':
		zr, err := zstd.NewReader(R.f)
		if err != nil {
			return nil, Error{"Can't set up decompression: " + err.Error(), name, []string{"NewReader"}, true}
		}
		reader = zr
		R.z = zstdql{zr.Close}
	case 'g':
		zr, err := gzip.NewReader(R.f)
		if err != nil {
			return nil, Error{"Can't set up decompression: " + err.Error(), name, []string{"NewReader"}, true}
		}
		reader = zr
		R.z = zr
	case 'f':
		zr := flate.NewReader(R.f)
		reader = zr
		R.z = zr
	default:
		reader = R.f
	}
	R.h = bufio.NewScanner(reader)
	R.h.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024) //coefficient rows can be long
	R.filename = name
	R.readable = true
	return R, nil
}

//Close closes the reader.
func (R *DsfR) Close() {
	if R == nil {
		return
	}
	if R.readable {
		if R.z != nil {
			R.z.Close()
		}
		R.f.Close()
	}
	R.readable = false
}

//Next reads the next displacement set from the file. At the end of the
//file it returns an error for which IsEOF holds.
func (R *DsfR) Next() (*vcd.DisplacementSet, error) {
	if !R.readable {
		return nil, Error{UnIniRead, R.filename, []string{"Next"}, true}
	}
	line, err := R.line()
	if err != nil {
		return nil, err //may be EOF, the caller distinguishes
	}
	var kind string
	var step float64
	var ndir int
	if n, err1 := fmt.Sscanf(line, "** %s %g %d", &kind, &step, &ndir); n != 3 || err1 != nil || len(kind) != 1 {
		return nil, Error{WrongFormat + ": bad set header", R.filename, []string{"Next"}, true}
	}
	D := &vcd.DisplacementSet{Kind: vcd.PerturbKind(kind[0]), Step: step}
	for block := 0; block < 2; block++ {
		for i := 0; i < ndir; i++ {
			s, err := R.readSample()
			if err != nil {
				return nil, errDecorate(err, "Next")
			}
			if block == 0 {
				D.Pos = append(D.Pos, s)
			} else {
				D.Neg = append(D.Neg, s)
			}
		}
	}
	return D, nil
}

func (R *DsfR) readSample() (*vcd.Sample, error) {
	line, err := R.line()
	if err != nil {
		return nil, err
	}
	var e float64
	var bname string
	var bkey uint64
	var r, c int
	if n, err1 := fmt.Sscanf(line, "# %g %s %d %d %d", &e, &bname, &bkey, &r, &c); n != 5 || err1 != nil {
		return nil, Error{WrongFormat + ": bad sample header", R.filename, []string{"readSample"}, true}
	}
	C := cmat.Zeros(r, c)
	for i := 0; i < r; i++ {
		line, err = R.line()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2*c {
			return nil, Error{WrongFormat + ": bad coefficient row", R.filename, []string{"readSample"}, true}
		}
		for j := 0; j < c; j++ {
			var re, im float64
			if _, err1 := fmt.Sscan(fields[2*j], &re); err1 != nil {
				return nil, Error{WrongFormat + ": " + err1.Error(), R.filename, []string{"readSample"}, true}
			}
			if _, err1 := fmt.Sscan(fields[2*j+1], &im); err1 != nil {
				return nil, Error{WrongFormat + ": " + err1.Error(), R.filename, []string{"readSample"}, true}
			}
			C.Set(i, j, complex(re, im))
		}
	}
	line, err = R.line()
	if err != nil {
		return nil, err
	}
	var no, nv int
	if n, err1 := fmt.Sscanf(line, "t2 %d %d", &no, &nv); n != 2 || err1 != nil {
		return nil, Error{WrongFormat + ": bad amplitude header", R.filename, []string{"readSample"}, true}
	}
	var t2 *vcd.Amplitudes
	if no > 0 && nv > 0 {
		t2 = vcd.NewAmplitudes(no, nv)
		for i := 0; i < no; i++ {
			for j := 0; j < no; j++ {
				for a := 0; a < nv; a++ {
					for b := 0; b < nv; b++ {
						line, err = R.line()
						if err != nil {
							return nil, err
						}
						var re, im float64
						if n, err1 := fmt.Sscanf(line, "%g %g", &re, &im); n != 2 || err1 != nil {
							return nil, Error{WrongFormat + ": bad amplitude", R.filename, []string{"readSample"}, true}
						}
						t2.Set(i, j, a, b, complex(re, im))
					}
				}
			}
		}
	}
	return &vcd.Sample{E: e, C: C, Basis: &vcd.Basis{Name: bname, Key: bkey}, T2: t2}, nil
}

//line returns the next non-empty line, or an EOF error.
func (R *DsfR) line() (string, error) {
	for R.h.Scan() {
		l := strings.TrimSpace(R.h.Text())
		if l != "" {
			return l, nil
		}
	}
	if err := R.h.Err(); err != nil {
		return "", Error{ReadError + ": " + err.Error(), R.filename, []string{"line"}, true}
	}
	return "", lastSetError{nil, R.filename}
}

//Errors

//errDecorate is a helper that asserts that the error implements
//govcd.Error and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(vcd.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for dsf checkpoint errors. It fulfills
//govcd.Error.
type Error struct {
	message  string
	filename string //the checkpoint file that has problems
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("dsf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing checkpoint was associated.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	UnIniRead    = "Checkpoint object uninitialized to read"
	UnIniWrite   = "Checkpoint object uninitialized to write"
	ReadError    = "Error reading set"
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in the DSF file or set"
	BrokenSet    = "Given an incomplete displacement set"
	EOF          = "EOF"
)

//lastSetError signals a normal end of file. It is harmless and can be
//filtered with IsEOF.
type lastSetError struct {
	deco     []string
	filename string
}

func (err lastSetError) Error() string { return EOF }

func (err lastSetError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err lastSetError) FileName() string { return err.filename }

func (err lastSetError) Critical() bool { return false }

//IsEOF returns whether err just signals a normal end of checkpoint file.
func IsEOF(err error) bool {
	_, ok := err.(lastSetError)
	return ok
}
