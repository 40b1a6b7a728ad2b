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
	"fmt"
	"strings"
)

// Z formats a non-negative integer as a (minimum) 10-digit zero-padded
// decimal string. Every variable suffix in the system is formed this way, so
// instances of the same constructor sort textually in numeric order.
func Z(i int) string {
	return fmt.Sprintf("%010d", i)
}

// Bit composes the name of bit i of the multi-bit variable with the given
// name prefix. Bit 0 is the least significant.
func Bit(prefix string, i int) string {
	return prefix + "_" + Z(i)
}

// OneNBit is the name of the pre-defined multi-bit variable holding the
// constant 1 at the given width. Top-level programs must pin its value.
func OneNBit(width int) string {
	return "One_NBit_" + Z(width)
}

// ZeroBit is the name of the pre-defined single-bit variable holding the
// constant 0. Top-level programs must pin its value.
func ZeroBit() string {
	return "Zero_1Bit_" + Z(1)
}

// Pos renders a positive literal occurrence of the named variable.
func Pos(name string) string {
	return "<" + name + ">"
}

// Neg renders a negative literal occurrence of the named variable.
func Neg(name string) string {
	return "-<" + name + ">"
}

// Clause joins literal occurrences into a single DIMACS-style clause,
// terminated by a standalone zero.
func Clause(lits ...string) string {
	return strings.Join(lits, " ") + " 0 "
}
