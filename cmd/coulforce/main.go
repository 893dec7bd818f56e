/*
 * main.go, part of coulforce.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

// Command coulforce computes the electrostatic forces exerted on a few focus atoms
// by groups of charged atoms in a PDB or mmCIF structure.
//
//	coulforce [flags] structure.{pdb,cif}[.gz|.zst]
//
// Without a -setup file, it analyzes the forces on TYR87 and ASP139 of chain 4 from
// the charged residues of chain 6 and the N2 cluster.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	chem "github.com/rmera/coulforce"
	"github.com/rmera/coulforce/chemplot"
	"github.com/rmera/coulforce/coulomb"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("coulforce", flag.ContinueOnError)
	flags.SetOutput(stderr)
	setupFile := flags.String("setup", "", "JSON file with the focus atoms and charged groups. The built-in complex I setup is used if not given")
	k := flags.Float64("k", 0, fmt.Sprintf("Coulomb constant. Overrides the one in the setup. Use %g for kcal/mol and Angstrom", coulomb.KcalMolAngstrom))
	frame := flags.Int("frame", 0, "Model of the structure to analyze, starting from 0")
	plotFile := flags.String("plot", "", "If given, save a bar plot of the force magnitudes per group to this file")
	eplotFile := flags.String("eplot", "", "If given, save a bar plot of the interaction energies per group to this file")
	jsonOut := flags.Bool("json", false, "Print the results as JSON instead of text")
	verbose := flags.Bool("v", false, "Print debug information")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: coulforce [flags] structure.{pdb,cif}[.gz|.zst]\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	kset := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "k" {
			kset = true
		}
	})
	if kset && *k == 0 {
		fmt.Fprintf(stderr, "The Coulomb constant given with -k can't be zero\n")
		return 2
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := analyze(flags.Arg(0), *setupFile, *k, *frame, *plotFile, *eplotFile, *jsonOut, stdout, logger); err != nil {
		logger.Error("analysis failed", "error", err, "trace", chem.Trace(err))
		return 1
	}
	return 0
}

func analyze(pdbname, setupFile string, k float64, frame int, plotFile, eplotFile string, jsonOut bool, out io.Writer, logger *slog.Logger) error {
	setup := coulomb.DefaultSetup()
	if setupFile != "" {
		var err error
		setup, err = coulomb.SetupFileRead(setupFile)
		if err != nil {
			return err
		}
	}
	if k != 0 {
		setup.K = k
	}
	mol, err := chem.StructureFileRead(pdbname)
	if err != nil {
		return err
	}
	logger.Debug("structure read", "file", pdbname, "atoms", mol.Len(), "frames", len(mol.Coords))
	foci, groups, err := setup.Build(mol, frame)
	if err != nil {
		return err
	}
	C := &coulomb.Calculator{K: setup.K, Logger: logger}
	results, err := C.Analyze(foci, groups)
	if err != nil {
		return err
	}
	if jsonOut {
		if err := coulomb.WriteJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, f := range foci {
			fmt.Fprintf(out, "%s:\n%s\n", f.Name, f.Coord)
		}
		for _, r := range results {
			printResult(out, r)
		}
	}
	if plotFile != "" {
		if err := chemplot.ForceBars(results, "Electrostatic forces", plotFile); err != nil {
			return err
		}
		logger.Info("plot saved", "file", plotFile)
	}
	if eplotFile != "" {
		if err := chemplot.EnergyBars(results, "Electrostatic energies", eplotFile); err != nil {
			return err
		}
		logger.Info("plot saved", "file", eplotFile)
	}
	return nil
}

func printResult(out io.Writer, r *coulomb.Result) {
	fmt.Fprintf(out, "\nContributions on %s (charge %g):\n", r.Focus.Name, r.Focus.Charge)
	for _, c := range r.Contributions {
		f := c.Force.RawRowView(0)
		fmt.Fprintf(out, "  %-8s %3d atoms  F = [%10.6f %10.6f %10.6f] |F| = %10.6f  E = %10.6f\n", c.Group.Name, c.Count, f[0], f[1], f[2], c.Force.Norm(0), c.Energy)
	}
	t := r.Total.RawRowView(0)
	fmt.Fprintf(out, "Total force on %s is: [%.6f %.6f %.6f] (|F| = %.6f, E = %.6f)\n", r.Focus.Name, t[0], t[1], t[2], r.Magnitude(), r.Energy)
}
