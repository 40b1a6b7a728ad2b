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

// OrReduce constrains Result to the disjunction of the Width bits of
// Input: one long clause for the forward direction and one binary clause
// per bit for the backward direction.
type OrReduce struct {
	Input  string
	Result string
	Width  int
}

// Expand implementation for the Constraint interface.
func (p OrReduce) Expand(mint *Mint) []Item {
	lits := []string{Neg(p.Result)}
	for i := 0; i < p.Width; i++ {
		lits = append(lits, Pos(Bit(p.Input, i)))
	}

	items := []Item{Raw(Clause(lits...))}

	for i := 0; i < p.Width; i++ {
		items = append(items, Raw(Clause(Pos(p.Result), Neg(Bit(p.Input, i)))))
	}

	return items
}

// SumNBit constrains Output to the sum of Count inputs of the given width,
// where input i is the multi-bit variable Input_Z(i). Overflow is the
// disjunction of the per-stage adder overflows.
type SumNBit struct {
	Input    string
	Output   string
	Overflow string
	Count    int
	Width    int
}

// Expand implementation for the Constraint interface.
func (p SumNBit) Expand(mint *Mint) []Item {
	var (
		k   = mint.Next("SumNBit")
		acc = "Sum_NBit_Accum_" + Z(k)
		ovf = "Sum_NBit_Overflow_" + Z(k)
	)
	//
	items := []Item{Sub(InputEqualsNumber{Input: Bit(acc, 0), Value: 0, Width: p.Width})}

	for i := 0; i < p.Count; i++ {
		items = append(items, Sub(AddNBit{
			A:        Bit(p.Input, i),
			B:        Bit(acc, i),
			Result:   Bit(acc, i+1),
			Overflow: Bit(ovf, i),
			Width:    p.Width,
		}))
	}

	items = append(items,
		Sub(EqualsNBit{A: p.Output, B: Bit(acc, p.Count), Width: p.Width}),
		Sub(OrReduce{Input: ovf, Result: p.Overflow, Width: p.Count}))

	return items
}

// ProductNBit constrains Output to the product of Count inputs of the given
// width, where input i is the multi-bit variable Input_Z(i). Overflow is
// the disjunction of the per-stage multiplier overflows.
type ProductNBit struct {
	Input    string
	Output   string
	Overflow string
	Count    int
	Width    int
}

// Expand implementation for the Constraint interface.
func (p ProductNBit) Expand(mint *Mint) []Item {
	var (
		k   = mint.Next("ProductNBit")
		acc = "Product_NBit_Accum_" + Z(k)
		ovf = "Product_NBit_Overflow_" + Z(k)
	)
	//
	items := []Item{Sub(InputEqualsNumber{Input: Bit(acc, 0), Value: 1, Width: p.Width})}

	for i := 0; i < p.Count; i++ {
		items = append(items, Sub(MulNBit{
			A:        Bit(p.Input, i),
			B:        Bit(acc, i),
			Result:   Bit(acc, i+1),
			Overflow: Bit(ovf, i),
			Width:    p.Width,
		}))
	}

	items = append(items,
		Sub(EqualsNBit{A: p.Output, B: Bit(acc, p.Count), Width: p.Width}),
		Sub(OrReduce{Input: ovf, Result: p.Overflow, Width: p.Count}))

	return items
}
