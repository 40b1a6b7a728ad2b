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
package cnf

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/consensys/go-primecnf/pkg/dimacs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleItems is a small but representative compilation input: arithmetic,
// user-named variables, an auxiliary-minting constructor and raw clauses.
func sampleItems() []Item {
	const width = 4

	return []Item{
		Sub(MulNBit{A: "factor1", B: "factor2", Result: "target", Overflow: "overflow", Width: width}),
		Sub(InputEqualsNumber{Input: "target", Value: 9, Width: width}),
		Sub(LessThanNBit{A: "factor1", B: "factor2", Width: width}),
		Raw(Clause(Neg("overflow"))),
	}
}

func generateSample(t *testing.T) []string {
	t.Helper()
	//
	var buf bytes.Buffer

	require.NoError(t, Write(sampleItems(), &buf))

	var lines []string

	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	require.NoError(t, scanner.Err())

	return lines
}

// splitFile separates a generated file into its comment prologue, problem
// line and clause lines.
func splitFile(t *testing.T, lines []string) (comments []string, problem string, clauses []string) {
	t.Helper()
	//
	for i, line := range lines {
		if strings.HasPrefix(line, "p cnf ") {
			return lines[:i], line, lines[i+1:]
		}
	}

	t.Fatal("no problem line in generated file")

	return nil, "", nil
}

func TestGeneratedFileShape(t *testing.T) {
	lines := generateSample(t)
	comments, problem, clauses := splitFile(t, lines)

	// Three bare comment lines open the file.
	require.GreaterOrEqual(t, len(comments), 3)
	assert.Equal(t, []string{"c", "c", "c"}, comments[:3])

	// Every remaining prologue line is a cv entry.
	for _, line := range comments[3:] {
		assert.True(t, strings.HasPrefix(line, "cv "), "unexpected prologue line %q", line)
	}

	// Header counts match the body.
	fields := strings.Fields(problem)
	require.Len(t, fields, 4)

	numVars, err := strconv.Atoi(fields[2])
	require.NoError(t, err)
	numClauses, err := strconv.Atoi(fields[3])
	require.NoError(t, err)

	assert.Equal(t, len(comments)-3, numVars, "one cv line per variable")
	assert.Equal(t, len(clauses), numClauses)

	// Clauses hold integer literals within range, zero-terminated, with no
	// stray zero and no unsubstituted symbol.
	for _, clause := range clauses {
		assert.NotContains(t, clause, "<")

		toks := strings.Fields(clause)
		require.NotEmpty(t, toks)
		assert.Equal(t, "0", toks[len(toks)-1])

		for _, tok := range toks[:len(toks)-1] {
			lit, err := strconv.Atoi(tok)
			require.NoError(t, err)
			assert.NotZero(t, lit, "zero mid-clause in %q", clause)
			assert.LessOrEqual(t, abs(lit), numVars)
		}
	}
}

func TestVarMapBijection(t *testing.T) {
	lines := generateSample(t)
	//
	vars, err := dimacs.ReadVarMap(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)

	seenIds := make(map[int]bool)
	seenNames := make(map[string]bool)

	for i, v := range vars {
		assert.Equal(t, i+1, v.ID, "cv lines are in id order and contiguous from 1")
		assert.False(t, seenIds[v.ID])
		assert.False(t, seenNames[v.Name])

		seenIds[v.ID] = true
		seenNames[v.Name] = true
	}
}

func TestVarMapTwoClassOrder(t *testing.T) {
	lines := generateSample(t)
	//
	vars, err := dimacs.ReadVarMap(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.NotEmpty(t, vars)

	// All lowercase-first names precede all uppercase-first names, and each
	// class is sorted.
	boundary := len(vars)
	for i, v := range vars {
		if unicode.IsUpper(rune(v.Name[0])) {
			boundary = i
			break
		}
	}

	for i, v := range vars {
		if i < boundary {
			assert.False(t, unicode.IsUpper(rune(v.Name[0])), "lowercase class ends at %d, found %q", boundary, v.Name)
		} else {
			assert.True(t, unicode.IsUpper(rune(v.Name[0])), "uppercase class starts at %d, found %q", boundary, v.Name)
		}

		if i > 0 && i != boundary {
			assert.Less(t, vars[i-1].Name, v.Name, "classes are sorted internally")
		}
	}

	// The sample has user-named variables; they must hold the low ids.
	assert.True(t, boundary > 0)
	assert.Equal(t, "factor1_"+Z(0), vars[0].Name)
}

func TestGenerateDeterministic(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, Write(sampleItems(), &first))
	require.NoError(t, Write(sampleItems(), &second))
	assert.Equal(t, first.String(), second.String())
}

func TestFlattenPreservesOrder(t *testing.T) {
	items := []Item{
		Raw(Clause(Pos("a"))),
		Sub(AndBit{"a", "b", "r"}),
		Raw(Clause(Neg("b"))),
	}

	clauses := Flatten(NewMint(), items)
	require.Len(t, clauses, 6)
	assert.Equal(t, Clause(Pos("a")), clauses[0])
	assert.Equal(t, Clause(Neg("b")), clauses[5])
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
