// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package dimacs reads back the artefacts around a DIMACS CNF exchange
// with a SAT solver: the "cv" name-map comment block our generator emits,
// and the "v" value lines a solver prints. Joining the two attaches solved
// bit values to symbolic variable names.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Var is one entry of the name-map block: a symbolic variable name and the
// positive integer standing for it in the clauses.
type Var struct {
	Name string
	ID   int
}

// ReadVarMap extracts the name map from a generated CNF file. Entries are
// returned in file order, which the generator guarantees to be id order.
func ReadVarMap(r io.Reader) ([]Var, error) {
	var (
		vars    []Var
		scanner = newScanner(r)
	)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 || fields[0] != "cv" {
			continue
		}

		id, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("malformed cv line %q: %w", scanner.Text(), err)
		}

		vars = append(vars, Var{Name: fields[1], ID: id})
	}

	return vars, scanner.Err()
}

// ReadAssignment extracts a variable assignment from solver output. Every
// line starting with "v" contributes its literals; a positive literal sets
// the variable true, a negative one false, and the terminating zero is
// skipped. Lines of any other shape (the "s" status line, comments) are
// ignored.
func ReadAssignment(r io.Reader) (map[int]bool, error) {
	var (
		values  = make(map[int]bool)
		scanner = newScanner(r)
	)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != "v" {
			continue
		}

		for _, field := range fields[1:] {
			lit, err := strconv.Atoi(field)
			//
			switch {
			case err != nil:
				return nil, fmt.Errorf("malformed value line %q: %w", scanner.Text(), err)
			case lit > 0:
				values[lit] = true
			case lit < 0:
				values[-lit] = false
			}
		}
	}

	return values, scanner.Err()
}

// Merge joins the name map of a generated CNF file with a solver's
// assignment, writing one "cv <name> <id> <bit>" line per map entry in map
// order. Variables absent from the assignment are reported as 0.
func Merge(cnf io.Reader, result io.Reader, w io.Writer) error {
	vars, err := ReadVarMap(cnf)
	if err != nil {
		return err
	}

	values, err := ReadAssignment(result)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)

	for _, v := range vars {
		bit := 0
		if values[v.ID] {
			bit = 1
		}

		fmt.Fprintf(out, "cv %s %d %d\n", v.Name, v.ID, bit)
	}

	return out.Flush()
}

// newScanner wraps a reader with a line scanner sized for CNF files, whose
// clause and comment lines can exceed the default token limit.
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return scanner
}
