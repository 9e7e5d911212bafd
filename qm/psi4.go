/*
 * psi4.go, part of govcd.
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

package qm

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	vcd "github.com/rsierra/govcd"
)

//Psi4Handle drives the Psi4 program as a reference oracle: it builds an
//input for the same configuration the internal solvers run, executes it
//and recovers the total energy, so every finite-difference solve can be
//cross-validated against an independent code. The oracle energy never
//enters the AAT formula.
//
//Note that the default method and basis are NOT considered part of the
//API, so they can always change.
type Psi4Handle struct {
	defmethod string
	defbasis  string
	command   string
	inputname string
	memory    int //MB
	nCPU      int
}

//NewPsi4Handle returns a handle with the defaults set.
func NewPsi4Handle() *Psi4Handle {
	P := new(Psi4Handle)
	P.SetDefaults()
	return P
}

//Psi4Handle methods

//SetName sets the name for the job, used for input and output files.
func (P *Psi4Handle) SetName(name string) {
	P.inputname = name
}

//SetCommand sets the path of the psi4 executable.
func (P *Psi4Handle) SetCommand(name string) {
	P.command = name
}

//SetnCPU sets the number of threads passed to psi4.
func (P *Psi4Handle) SetnCPU(cpu int) {
	P.nCPU = cpu
}

//SetMemory sets the memory limit, in MB.
func (P *Psi4Handle) SetMemory(mb int) {
	P.memory = mb
}

//SetDefaults sets a single-point HF/STO-3G with tight convergence, the
//psi4 command taken from PSI4_PATH or the PATH, and one thread. Tight
//convergence matters here: the oracle must agree with the internal solver
//to more figures than the finite-difference step resolves.
func (P *Psi4Handle) SetDefaults() {
	P.defmethod = "scf"
	P.defbasis = "STO-3G"
	P.command = os.ExpandEnv("${PSI4_PATH}/psi4")
	if P.command == "/psi4" { //if PSI4_PATH was not defined
		P.command = "psi4"
	}
	P.memory = 500
	P.nCPU = 1
}

//The psi4 names of the supported levels of theory.
var psi4Method = map[string]string{
	"HF":  "scf",
	"MP2": "mp2",
	"CID": "cid",
}

//BuildInput writes a psi4 input file for the configuration Q at geometry
//g. Geometries displaced by the finite-difference driver go in verbatim,
//in Bohr, with reorientation and COM translation disabled so the perturbed
//frame is preserved. A non-zero magnetic field is an error: psi4 does not
//run our magnetic-field-perturbed Hamiltonian, so those solves have no
//oracle.
func (P *Psi4Handle) BuildInput(g *vcd.Geometry, Q *vcd.Calc) error {
	if g == nil || Q == nil {
		return fmt.Errorf("Missing geometry or configuration")
	}
	if err := Q.CheckMethod(); err != nil {
		return err
	}
	if Q.MagneticField != [3]float64{} {
		return fmt.Errorf("psi4 oracle cannot validate magnetic-field-perturbed calculations")
	}
	method := psi4Method[Q.Method]
	basis := Q.Basis
	if basis == "" {
		fmt.Fprintf(os.Stderr, "no basis set assigned for psi4 calculation, will use the default %s\n", P.defbasis)
		basis = P.defbasis
	}
	if P.inputname == "" {
		P.inputname = "govcd"
	}
	file, err := os.Create(fmt.Sprintf("%s.dat", P.inputname))
	if err != nil {
		return err
	}
	defer file.Close()
	fmt.Fprintf(file, "memory %d mb\n\n", P.memory)
	fmt.Fprintf(file, "molecule {\n")
	fmt.Fprintf(file, "units bohr\n")
	fmt.Fprintf(file, "%d 1\n", Q.Charge)
	fmt.Fprint(file, g.XYZString())
	fmt.Fprintf(file, "no_reorient\nno_com\nsymmetry c1\n}\n\n")
	fmt.Fprintf(file, "set basis %s\n", basis)
	fmt.Fprintf(file, "set scf_type pk\n")
	fmt.Fprintf(file, "set e_convergence 1e-12\n")
	fmt.Fprintf(file, "set d_convergence 1e-12\n")
	if Q.ElectricField != [3]float64{} {
		f := Q.ElectricField
		fmt.Fprintf(file, "set perturb_h true\n")
		fmt.Fprintf(file, "set perturb_with dipole\n")
		fmt.Fprintf(file, "set perturb_dipole [%g, %g, %g]\n", f[0], f[1], f[2])
	}
	fmt.Fprintf(file, "\nenergy('%s')\n", method)
	return nil
}

//Run runs the psi4 calculation previously set. It waits or not for the
//result depending on wait. Not waiting works only on unix-compatible
//systems, as it uses sh and nohup.
func (P *Psi4Handle) Run(wait bool) (err error) {
	inp := fmt.Sprintf("%s.dat", P.inputname)
	out := fmt.Sprintf("%s.out", P.inputname)
	if wait {
		command := exec.Command(P.command, "-n", strconv.Itoa(P.nCPU), inp, out)
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+P.command+fmt.Sprintf(" -n %d %s %s &", P.nCPU, inp, out))
		err = command.Start()
	}
	return err
}

//Energy returns the total energy from the last run, parsing the psi4
//output file. If there is an energy but the calculation did not terminate
//properly, it returns the energy together with an error reading "Probable
//problem in calculation".
func (P *Psi4Handle) Energy() (float64, error) {
	f, err := os.Open(fmt.Sprintf("%s.out", P.inputname))
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var energy float64
	var found, normal bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "Psi4 exiting successfully") {
			normal = true
		}
		if strings.Contains(line, "Total Energy =") {
			fields := strings.Fields(line)
			e, err1 := strconv.ParseFloat(fields[len(fields)-1], 64)
			if err1 != nil {
				return 0, err1
			}
			energy = e //keep the last one: post-SCF totals come after the SCF total
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("Output does not contain energy")
	}
	if !normal {
		return energy, fmt.Errorf("Probable problem in calculation")
	}
	return energy, nil
}
