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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// signedLitRegex locates signed literal occurrences in a clause string.
var signedLitRegex = regexp.MustCompile(`-?<[A-Za-z0-9_]+>`)

// evalClause evaluates one clause under an assignment; unassigned
// variables read false.
func evalClause(clause string, values map[string]bool) bool {
	for _, occ := range signedLitRegex.FindAllString(clause, -1) {
		negated := occ[0] == '-'
		//
		start := 1
		if negated {
			start = 2
		}

		name := occ[start : len(occ)-1]

		if values[name] != negated {
			return true
		}
	}

	return false
}

// evalClauses evaluates a conjunction of clauses under an assignment.
func evalClauses(clauses []string, values map[string]bool) bool {
	for _, clause := range clauses {
		if !evalClause(clause, values) {
			return false
		}
	}

	return true
}

// expandClauses fully expands a single constraint with a fresh mint.
func expandClauses(c Constraint) []string {
	return Flatten(NewMint(), Subs(c))
}

// setBits assigns the bits of a multi-bit variable to a constant.
func setBits(values map[string]bool, prefix string, value int, width int) {
	for i := 0; i < width; i++ {
		values[Bit(prefix, i)] = (value>>i)&1 == 1
	}
}

func bools() []bool { return []bool{false, true} }

func TestAndBitTruthTable(t *testing.T) {
	clauses := expandClauses(AndBit{"a", "b", "r"})
	assert.Len(t, clauses, 4)

	for _, a := range bools() {
		for _, b := range bools() {
			for _, r := range bools() {
				sat := evalClauses(clauses, map[string]bool{"a": a, "b": b, "r": r})
				assert.Equal(t, r == (a && b), sat, "a=%v b=%v r=%v", a, b, r)
			}
		}
	}
}

func TestOrBitTruthTable(t *testing.T) {
	clauses := expandClauses(OrBit{"a", "b", "r"})
	assert.Len(t, clauses, 4)

	for _, a := range bools() {
		for _, b := range bools() {
			for _, r := range bools() {
				sat := evalClauses(clauses, map[string]bool{"a": a, "b": b, "r": r})
				assert.Equal(t, r == (a || b), sat, "a=%v b=%v r=%v", a, b, r)
			}
		}
	}
}

func TestEqualsBitTruthTable(t *testing.T) {
	clauses := expandClauses(EqualsBit{"a", "b", "r"})

	for _, a := range bools() {
		for _, b := range bools() {
			for _, r := range bools() {
				sat := evalClauses(clauses, map[string]bool{"a": a, "b": b, "r": r})
				assert.Equal(t, r == (a == b), sat, "a=%v b=%v r=%v", a, b, r)
			}
		}
	}
}

func TestLessThanBitTruthTable(t *testing.T) {
	clauses := expandClauses(LessThanBit{"a", "b", "r"})

	for _, a := range bools() {
		for _, b := range bools() {
			for _, r := range bools() {
				sat := evalClauses(clauses, map[string]bool{"a": a, "b": b, "r": r})
				assert.Equal(t, r == (!a && b), sat, "a=%v b=%v r=%v", a, b, r)
			}
		}
	}
}

func TestMuxBitTruthTable(t *testing.T) {
	clauses := expandClauses(MuxBit{A: "a", B: "b", Cond: "c", Result: "r"})

	for _, a := range bools() {
		for _, b := range bools() {
			for _, c := range bools() {
				for _, r := range bools() {
					expected := b
					if c {
						expected = a
					}

					sat := evalClauses(clauses, map[string]bool{"a": a, "b": b, "c": c, "r": r})
					assert.Equal(t, r == expected, sat, "a=%v b=%v c=%v r=%v", a, b, c, r)
				}
			}
		}
	}
}

func TestAdderCarryTruthTable(t *testing.T) {
	clauses := expandClauses(AdderCarry{A: "a", B: "b", CarryIn: "c", CarryOut: "r"})
	assert.Len(t, clauses, 8)

	for _, a := range bools() {
		for _, b := range bools() {
			for _, c := range bools() {
				for _, r := range bools() {
					ones := 0
					for _, bit := range []bool{a, b, c} {
						if bit {
							ones++
						}
					}

					sat := evalClauses(clauses, map[string]bool{"a": a, "b": b, "c": c, "r": r})
					assert.Equal(t, r == (ones >= 2), sat, "a=%v b=%v c=%v r=%v", a, b, c, r)
				}
			}
		}
	}
}

func TestAdderSumTruthTable(t *testing.T) {
	clauses := expandClauses(AdderSum{A: "a", B: "b", CarryIn: "c", Result: "r"})
	assert.Len(t, clauses, 8)

	for _, a := range bools() {
		for _, b := range bools() {
			for _, c := range bools() {
				for _, r := range bools() {
					sat := evalClauses(clauses, map[string]bool{"a": a, "b": b, "c": c, "r": r})
					assert.Equal(t, r == (a != b != c), sat, "a=%v b=%v c=%v r=%v", a, b, c, r)
				}
			}
		}
	}
}

func TestInputEqualsNumber(t *testing.T) {
	const width = 4

	clauses := expandClauses(InputEqualsNumber{Input: "x", Value: 11, Width: width})
	assert.Len(t, clauses, width)

	for v := 0; v < 1<<width; v++ {
		values := make(map[string]bool)
		setBits(values, "x", v, width)
		assert.Equal(t, v == 11, evalClauses(clauses, values), "v=%d", v)
	}
}

func TestInputNotEqualsNumber(t *testing.T) {
	const width = 4

	clauses := expandClauses(InputNotEqualsNumber{Input: "x", Value: 6, Width: width})
	assert.Len(t, clauses, 1)

	for v := 0; v < 1<<width; v++ {
		values := make(map[string]bool)
		setBits(values, "x", v, width)
		assert.Equal(t, v != 6, evalClauses(clauses, values), "v=%d", v)
	}
}

func TestMulBitSelectsOrZeroes(t *testing.T) {
	const width = 3

	clauses := expandClauses(MulBit{A: "x", B: "b", Result: "r", Width: width})

	for v := 0; v < 1<<width; v++ {
		for _, b := range bools() {
			for r := 0; r < 1<<width; r++ {
				values := map[string]bool{"b": b}
				setBits(values, "x", v, width)
				setBits(values, "r", r, width)

				expected := 0
				if b {
					expected = v
				}

				sat := evalClauses(clauses, values)
				assert.Equal(t, r == expected, sat, "v=%d b=%v r=%d", v, b, r)
			}
		}
	}
}
