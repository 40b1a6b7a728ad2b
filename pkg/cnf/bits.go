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

// InputEqualsNumber pins the multi-bit variable Input to the constant
// Value, one unit clause per bit.
type InputEqualsNumber struct {
	Input string
	Value int
	Width int
}

// Expand implementation for the Constraint interface.
func (p InputEqualsNumber) Expand(mint *Mint) []Item {
	items := make([]Item, p.Width)

	for i := 0; i < p.Width; i++ {
		if (p.Value>>i)&1 == 1 {
			items[i] = Raw(Clause(Pos(Bit(p.Input, i))))
		} else {
			items[i] = Raw(Clause(Neg(Bit(p.Input, i))))
		}
	}

	return items
}

// InputNotEqualsNumber excludes the constant Value from the multi-bit
// variable Input. A single clause holding, for each bit, the literal
// falsified by the constant; it is satisfied exactly when the variable
// differs from the constant in at least one bit.
type InputNotEqualsNumber struct {
	Input string
	Value int
	Width int
}

// Expand implementation for the Constraint interface.
func (p InputNotEqualsNumber) Expand(mint *Mint) []Item {
	lits := make([]string, p.Width)

	for i := 0; i < p.Width; i++ {
		if (p.Value>>i)&1 == 1 {
			lits[i] = Neg(Bit(p.Input, i))
		} else {
			lits[i] = Pos(Bit(p.Input, i))
		}
	}

	return []Item{Raw(Clause(lits...))}
}

// AdderCarry constrains CarryOut to hold exactly when at least two of A, B
// and CarryIn hold (the majority function, i.e. the carry of a full adder).
type AdderCarry struct {
	A        string
	B        string
	CarryIn  string
	CarryOut string
}

// Expand implementation for the Constraint interface.
func (p AdderCarry) Expand(mint *Mint) []Item {
	a, b, c, r := p.A, p.B, p.CarryIn, p.CarryOut
	//
	return []Item{
		Raw(Clause(Neg(a), Neg(b), Neg(c), Pos(r))),
		Raw(Clause(Neg(a), Neg(b), Pos(c), Pos(r))),
		Raw(Clause(Neg(a), Pos(b), Neg(c), Pos(r))),
		Raw(Clause(Neg(a), Pos(b), Pos(c), Neg(r))),
		Raw(Clause(Pos(a), Neg(b), Neg(c), Pos(r))),
		Raw(Clause(Pos(a), Neg(b), Pos(c), Neg(r))),
		Raw(Clause(Pos(a), Pos(b), Neg(c), Neg(r))),
		Raw(Clause(Pos(a), Pos(b), Pos(c), Neg(r))),
	}
}

// AdderSum constrains Result to A xor B xor CarryIn (the sum of a full
// adder).
type AdderSum struct {
	A       string
	B       string
	CarryIn string
	Result  string
}

// Expand implementation for the Constraint interface.
func (p AdderSum) Expand(mint *Mint) []Item {
	a, b, c, r := p.A, p.B, p.CarryIn, p.Result
	//
	return []Item{
		Raw(Clause(Neg(a), Neg(b), Neg(c), Pos(r))),
		Raw(Clause(Neg(a), Neg(b), Pos(c), Neg(r))),
		Raw(Clause(Neg(a), Pos(b), Neg(c), Neg(r))),
		Raw(Clause(Neg(a), Pos(b), Pos(c), Pos(r))),
		Raw(Clause(Pos(a), Neg(b), Neg(c), Neg(r))),
		Raw(Clause(Pos(a), Neg(b), Pos(c), Pos(r))),
		Raw(Clause(Pos(a), Pos(b), Neg(c), Pos(r))),
		Raw(Clause(Pos(a), Pos(b), Pos(c), Neg(r))),
	}
}

// AddBit is a full adder bit slice: A + B + CarryIn == (Result, CarryOut).
type AddBit struct {
	A        string
	B        string
	CarryIn  string
	Result   string
	CarryOut string
}

// Expand implementation for the Constraint interface.
func (p AddBit) Expand(mint *Mint) []Item {
	return Subs(
		AdderCarry{p.A, p.B, p.CarryIn, p.CarryOut},
		AdderSum{p.A, p.B, p.CarryIn, p.Result},
	)
}

// AndBit constrains Result to A and B.
type AndBit struct {
	A      string
	B      string
	Result string
}

// Expand implementation for the Constraint interface.
func (p AndBit) Expand(mint *Mint) []Item {
	a, b, r := p.A, p.B, p.Result
	//
	return []Item{
		Raw(Clause(Pos(a), Pos(b), Neg(r))),
		Raw(Clause(Pos(a), Neg(b), Neg(r))),
		Raw(Clause(Neg(a), Pos(b), Neg(r))),
		Raw(Clause(Neg(a), Neg(b), Pos(r))),
	}
}

// OrBit constrains Result to A or B.
type OrBit struct {
	A      string
	B      string
	Result string
}

// Expand implementation for the Constraint interface.
func (p OrBit) Expand(mint *Mint) []Item {
	a, b, r := p.A, p.B, p.Result
	//
	return []Item{
		Raw(Clause(Neg(a), Neg(b), Pos(r))),
		Raw(Clause(Neg(a), Pos(b), Pos(r))),
		Raw(Clause(Pos(a), Neg(b), Pos(r))),
		Raw(Clause(Pos(a), Pos(b), Neg(r))),
	}
}

// EqualsBit constrains Result to hold exactly when A and B agree.
type EqualsBit struct {
	A      string
	B      string
	Result string
}

// Expand implementation for the Constraint interface.
func (p EqualsBit) Expand(mint *Mint) []Item {
	a, b, r := p.A, p.B, p.Result
	//
	return []Item{
		Raw(Clause(Pos(a), Pos(b), Pos(r))),
		Raw(Clause(Pos(a), Neg(b), Neg(r))),
		Raw(Clause(Neg(a), Pos(b), Neg(r))),
		Raw(Clause(Neg(a), Neg(b), Pos(r))),
	}
}

// LessThanBit constrains Result to hold exactly when A is 0 and B is 1.
type LessThanBit struct {
	A      string
	B      string
	Result string
}

// Expand implementation for the Constraint interface.
func (p LessThanBit) Expand(mint *Mint) []Item {
	a, b, r := p.A, p.B, p.Result
	//
	return []Item{
		Raw(Clause(Pos(a), Pos(b), Neg(r))),
		Raw(Clause(Pos(a), Neg(b), Pos(r))),
		Raw(Clause(Neg(a), Pos(b), Neg(r))),
		Raw(Clause(Neg(a), Neg(b), Neg(r))),
	}
}

// MuxBit constrains Result to A when Cond holds, and to B otherwise.
type MuxBit struct {
	A      string
	B      string
	Cond   string
	Result string
}

// Expand implementation for the Constraint interface.
func (p MuxBit) Expand(mint *Mint) []Item {
	a, b, c, r := p.A, p.B, p.Cond, p.Result
	//
	return []Item{
		Raw(Clause(Neg(c), Neg(a), Pos(r))),
		Raw(Clause(Neg(c), Pos(a), Neg(r))),
		Raw(Clause(Pos(c), Neg(b), Pos(r))),
		Raw(Clause(Pos(c), Pos(b), Neg(r))),
	}
}
