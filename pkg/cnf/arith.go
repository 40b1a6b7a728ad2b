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

// AddNBit is a ripple-carry adder: A + B == Result at the given width, with
// Overflow equated to the final carry-out. The carry chain lives on
// auxiliary variables drawn from the mint, so adders never interfere.
type AddNBit struct {
	A        string
	B        string
	Result   string
	Overflow string
	Width    int
}

// Expand implementation for the Constraint interface.
func (p AddNBit) Expand(mint *Mint) []Item {
	var (
		k     = mint.Next("AddNBit")
		carry = "AddNBit_" + Z(k) + "_carry_out"
		items []Item
	)
	// First carry-in is zero.
	items = append(items, Raw(Clause(Neg(Bit(carry, 0)))))
	// Chain one full adder per bit position.
	for i := 0; i < p.Width; i++ {
		items = append(items, Sub(AddBit{
			A:        Bit(p.A, i),
			B:        Bit(p.B, i),
			CarryIn:  Bit(carry, i),
			Result:   Bit(p.Result, i),
			CarryOut: Bit(carry, i+1),
		}))
	}
	// Overflow is the final carry-out.
	items = append(items,
		Raw(Clause(Neg(p.Overflow), Pos(Bit(carry, p.Width)))),
		Raw(Clause(Pos(p.Overflow), Neg(Bit(carry, p.Width)))))

	return items
}

// MulShift encodes Result = (A * B) << Shift as a 2*Width-bit value, where
// B is a single bit. Bits below the shift and beyond Shift+Width are forced
// to zero; each bit in between is the conjunction of the corresponding bit
// of A with B. This is the partial-product step of MulNBit.
type MulShift struct {
	A      string
	B      string
	Result string
	Shift  int
	Width  int
}

// Expand implementation for the Constraint interface.
func (p MulShift) Expand(mint *Mint) []Item {
	var items []Item
	//
	for i := 0; i < p.Shift; i++ {
		items = append(items, Raw(Clause(Neg(Bit(p.Result, i)))))
	}
	// result[i+shift] == a[i] and b
	for i := 0; i < p.Width; i++ {
		r, a := Bit(p.Result, i+p.Shift), Bit(p.A, i)
		items = append(items,
			Raw(Clause(Pos(r), Neg(a), Neg(p.B))),
			Raw(Clause(Neg(r), Neg(a), Pos(p.B))),
			Raw(Clause(Neg(r), Pos(a), Neg(p.B))),
			Raw(Clause(Neg(r), Pos(a), Pos(p.B))))
	}
	//
	for i := p.Shift + p.Width; i < p.Width*2; i++ {
		items = append(items, Raw(Clause(Neg(Bit(p.Result, i)))))
	}

	return items
}

// MulBit encodes Result = A * B where B is a single bit: every bit of
// Result is the conjunction of the corresponding bit of A with B.
type MulBit struct {
	A      string
	B      string
	Result string
	Width  int
}

// Expand implementation for the Constraint interface.
func (p MulBit) Expand(mint *Mint) []Item {
	var items []Item
	//
	for i := 0; i < p.Width; i++ {
		r, a := Bit(p.Result, i), Bit(p.A, i)
		items = append(items,
			Raw(Clause(Pos(r), Neg(a), Neg(p.B))),
			Raw(Clause(Neg(r), Neg(a), Pos(p.B))),
			Raw(Clause(Neg(r), Pos(a), Neg(p.B))),
			Raw(Clause(Neg(r), Pos(a), Pos(p.B))))
	}

	return items
}

// MulNBit is a shift-and-add multiplier: A * B == Result at the given
// width. The partial products are accumulated on a 2*Width-bit lane;
// Overflow holds exactly when any of the high Width bits of the final
// accumulator is set.
type MulNBit struct {
	A        string
	B        string
	Result   string
	Overflow string
	Width    int
}

// Expand implementation for the Constraint interface.
func (p MulNBit) Expand(mint *Mint) []Item {
	var (
		k     = mint.Next("MulNBit")
		pp    = "Mul_NBit_Accum1_" + Z(k)
		acc   = "Mul_NBit_Accum2_" + Z(k)
		carry = "Mul_NBit_CarryOut_" + Z(k)
		items []Item
	)
	// One shifted partial product per bit of B.
	for i := 0; i < p.Width; i++ {
		items = append(items, Sub(MulShift{
			A:      p.A,
			B:      Bit(p.B, i),
			Result: Bit(pp, i),
			Shift:  i,
			Width:  p.Width,
		}))
	}
	// Zero-initialise the double-width accumulator.
	for i := 0; i < p.Width*2; i++ {
		items = append(items, Raw(Clause(Neg(Bit(Bit(acc, 0), i)))))
	}
	// Ripple the partial products into the accumulator. The per-stage
	// carry-outs are unconstrained; overflow is judged on the high half of
	// the final accumulator instead.
	for i := 0; i < p.Width; i++ {
		items = append(items, Sub(AddNBit{
			A:        Bit(pp, i),
			B:        Bit(acc, i),
			Result:   Bit(acc, i+1),
			Overflow: Bit(carry, i),
			Width:    p.Width * 2,
		}))
	}
	// Result is the low half of the final accumulator.
	final := Bit(acc, p.Width)
	for i := 0; i < p.Width; i++ {
		items = append(items,
			Raw(Clause(Neg(Bit(p.Result, i)), Pos(Bit(final, i)))),
			Raw(Clause(Pos(Bit(p.Result, i)), Neg(Bit(final, i)))))
	}
	// Overflow holds iff any high bit of the final accumulator is set.
	lits := []string{Neg(p.Overflow)}
	for i := 0; i < p.Width; i++ {
		lits = append(lits, Pos(Bit(final, i+p.Width)))
	}

	items = append(items, Raw(Clause(lits...)))

	for i := 0; i < p.Width; i++ {
		items = append(items, Raw(Clause(Pos(p.Overflow), Neg(Bit(final, i+p.Width)))))
	}

	return items
}

// EqualsNBit forces A == B bitwise at the given width.
type EqualsNBit struct {
	A     string
	B     string
	Width int
}

// Expand implementation for the Constraint interface.
func (p EqualsNBit) Expand(mint *Mint) []Item {
	var items []Item
	//
	for i := 0; i < p.Width; i++ {
		items = append(items,
			Raw(Clause(Neg(Bit(p.A, i)), Pos(Bit(p.B, i)))),
			Raw(Clause(Pos(Bit(p.A, i)), Neg(Bit(p.B, i)))))
	}

	return items
}

// LessThanNBit forces A < B as unsigned integers at the given width. For
// each bit it derives an equality flag and a strictly-less flag, accumulates
// prefix equality downwards from the most significant bit, and asserts that
// some bit is strictly less while all higher bits agree.
type LessThanNBit struct {
	A     string
	B     string
	Width int
}

// Expand implementation for the Constraint interface.
func (p LessThanNBit) Expand(mint *Mint) []Item {
	var (
		k     = mint.Next("LessThanNBit")
		eq    = "LessThan_NBit_Equals_" + Z(k)
		lt    = "LessThan_NBit_Less_" + Z(k)
		ea    = "LessThan_NBit_EqualAccum_" + Z(k)
		res   = "LessThan_NBit_Result_" + Z(k)
		items []Item
	)
	//
	for i := 0; i < p.Width; i++ {
		items = append(items, Sub(EqualsBit{Bit(p.A, i), Bit(p.B, i), Bit(eq, i)}))
	}

	for i := 0; i < p.Width; i++ {
		items = append(items, Sub(LessThanBit{Bit(p.A, i), Bit(p.B, i), Bit(lt, i)}))
	}
	// Above the top bit everything is (vacuously) equal.
	items = append(items, Raw(Clause(Pos(Bit(ea, p.Width)))))

	for i := 0; i < p.Width; i++ {
		items = append(items, Sub(AndBit{Bit(ea, i+1), Bit(eq, i), Bit(ea, i)}))
	}

	for i := 0; i < p.Width; i++ {
		items = append(items, Sub(AndBit{Bit(ea, i+1), Bit(lt, i), Bit(res, i)}))
	}
	// Strictly less at the highest disagreeing bit.
	lits := make([]string, p.Width)
	for i := 0; i < p.Width; i++ {
		lits[i] = Pos(Bit(res, i))
	}

	items = append(items, Raw(Clause(lits...)))

	return items
}

// DivModNBit encodes the defining identity of Euclidean division: A == B *
// Div + Mod with Mod < B, both intermediate operations overflow-free. A
// zero divisor is not excluded here; the Mod < B clause makes it
// unsatisfiable, and callers wanting a defined quotient must pin B != 0
// themselves.
type DivModNBit struct {
	A     string
	B     string
	Div   string
	Mod   string
	Width int
}

// Expand implementation for the Constraint interface.
func (p DivModNBit) Expand(mint *Mint) []Item {
	var (
		k   = mint.Next("DivModNBit")
		acc = "DivMod_NBit_Accum_" + Z(k)
		// NOTE: "DivMode" spelling is part of the established name scheme.
		mulOvf = "DivMode_NBit_MulOverflow_" + Z(k)
		addOvf = "DivMode_NBit_AddOverflow_" + Z(k)
	)
	//
	return []Item{
		Sub(MulNBit{A: p.B, B: p.Div, Result: acc, Overflow: mulOvf, Width: p.Width}),
		Sub(AddNBit{A: acc, B: p.Mod, Result: p.A, Overflow: addOvf, Width: p.Width}),
		Raw(Clause(Neg(mulOvf))),
		Raw(Clause(Neg(addOvf))),
		Sub(LessThanNBit{A: p.Mod, B: p.B, Width: p.Width}),
	}
}

// ZeroExtend equates the low Width bits of Result with A and forces the
// high Width bits of Result to zero, widening A onto a 2*Width-bit lane.
type ZeroExtend struct {
	A      string
	Result string
	Width  int
}

// Expand implementation for the Constraint interface.
func (p ZeroExtend) Expand(mint *Mint) []Item {
	items := []Item{Sub(EqualsNBit{A: p.A, B: p.Result, Width: p.Width})}
	//
	for i := p.Width; i < p.Width*2; i++ {
		items = append(items, Raw(Clause(Neg(Bit(p.Result, i)))))
	}

	return items
}

// MuxNBit selects Result := A when Cond holds and Result := B otherwise,
// bit by bit with the shared condition.
type MuxNBit struct {
	A      string
	B      string
	Cond   string
	Result string
	Width  int
}

// Expand implementation for the Constraint interface.
func (p MuxNBit) Expand(mint *Mint) []Item {
	items := make([]Item, p.Width)
	//
	for i := 0; i < p.Width; i++ {
		items[i] = Sub(MuxBit{
			A:      Bit(p.A, i),
			B:      Bit(p.B, i),
			Cond:   p.Cond,
			Result: Bit(p.Result, i),
		})
	}

	return items
}
