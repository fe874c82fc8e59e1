// Command saturday reads a CNF problem in the DIMACS format and reports
// whether it is satisfiable.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/samber/lo"

	"github.com/cespare/cdcl"
)

func help() {
	fmt.Fprintln(os.Stderr, "Usage: saturday <input.cnf> [output-file]")
}

func main() {
	log.SetFlags(0)
	args := os.Args[1:]
	if len(args) != 1 && len(args) != 2 {
		help()
		os.Exit(1)
	}

	f, err := os.Open(args[0])
	if err != nil {
		help()
		log.Fatalln("Error reading input file:", err)
	}
	defer f.Close()

	cnf, err := cdcl.ParseDIMACS(f)
	if err != nil {
		log.Fatalln("Error reading input file as DIMACS CNF:", err)
	}

	s := cdcl.NewSolver(0)
	for _, clause := range cnf {
		if err := s.AddClause(clause); err != nil {
			log.Fatalln("Error loading clause:", err)
		}
	}
	status := s.Solve()

	if len(args) == 2 {
		out, err := os.Create(args[1])
		if err != nil {
			log.Fatalln("Error creating output file:", err)
		}
		defer out.Close()
		writeResult(out, status, s, false)
	} else {
		writeResult(os.Stdout, status, s, true)
	}
}

// writeResult writes the result line, prefixed with "s " when writing to
// stdout and bare when writing to a file, followed on Sat by a ` 0`-
// terminated line of signed, 1-indexed literals giving the assignment.
func writeResult(w io.Writer, status cdcl.Status, s *cdcl.Solver, toStdout bool) {
	if toStdout {
		fmt.Fprintln(w, "s", status)
	} else {
		fmt.Fprintln(w, status)
	}
	if status != cdcl.StatusSat {
		return
	}
	model := s.Model()
	lits := lo.Map(model, func(v bool, i int) int {
		if v {
			return i + 1
		}
		return -(i + 1)
	})
	lits = append(lits, 0)
	for i, v := range lits {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, v)
	}
	fmt.Fprintln(w)
}
