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

// PowNBit encodes Result = Base ** Exp at the given width by repeated
// squaring: stage i holds Base^(2^i), and the accumulator multiplies in the
// stages selected by the exponent bits. Overflow holds when an accumulator
// multiplication overflowed, or when a squaring overflowed whose value some
// higher exponent bit still selects. Requires the pinned constants
// One_NBit (at Width) and Zero_1Bit.
type PowNBit struct {
	Base     string
	Exp      string
	Result   string
	Overflow string
	Width    int
}

// Expand implementation for the Constraint interface.
func (p PowNBit) Expand(mint *Mint) []Item {
	var (
		k      = mint.Next("PowNBit")
		square = "Pow_NBit_Temp1_" + Z(k)
		sqOvf  = "Pow_NBit_Temp1Overflow_" + Z(k)
		factor = "Pow_NBit_Temp2_" + Z(k)
		acc    = "Pow_NBit_PowAccum_" + Z(k)
		accOvf = "Pow_NBit_PowAccumOverflow_" + Z(k)
		runOvf = "Pow_NBit_PowAccumOverflowAccum_" + Z(k)
		guard  = "Pow_NBit_OverflowTemp_" + Z(k)
		accOr  = "Pow_NBit_PowAccumOverflow_OR_" + Z(k)
		grdOr  = "Pow_NBit_OverflowTemp_OR_" + Z(k)
		n      = p.Width
		items  []Item
	)
	// square_0 = base; square_{i+1} = square_i * square_i
	items = append(items, Sub(EqualsNBit{A: Bit(square, 0), B: p.Base, Width: n}))

	for i := 0; i < n; i++ {
		items = append(items, Sub(MulNBit{
			A:        Bit(square, i),
			B:        Bit(square, i),
			Result:   Bit(square, i+1),
			Overflow: Bit(sqOvf, i),
			Width:    n,
		}))
	}
	// factor_i = exp_i ? square_i : 1
	for i := 0; i < n; i++ {
		items = append(items, Sub(MuxNBit{
			A:      Bit(square, i),
			B:      OneNBit(n),
			Cond:   Bit(p.Exp, i),
			Result: Bit(factor, i),
			Width:  n,
		}))
	}
	// acc_0 = 1; acc_{i+1} = factor_i * acc_i
	items = append(items, Sub(InputEqualsNumber{Input: Bit(acc, 0), Value: 1, Width: n}))

	for i := 0; i < n; i++ {
		items = append(items, Sub(MulNBit{
			A:        Bit(factor, i),
			B:        Bit(acc, i),
			Result:   Bit(acc, i+1),
			Overflow: Bit(accOvf, i),
			Width:    n,
		}))
	}

	items = append(items, Sub(EqualsNBit{A: p.Result, B: Bit(acc, n), Width: n}))

	// Running disjunction of the squaring overflows.
	items = append(items, Raw(Clause(Neg(Bit(runOvf, 0)))))

	for i := 0; i < n; i++ {
		items = append(items, Sub(OrBit{Bit(runOvf, i), Bit(sqOvf, i), Bit(runOvf, i+1)}))
	}
	// A squaring overflow only matters while some higher exponent bit still
	// selects a later square: guard_i = exp_{i+1} ? runOvf_{i+1} : 0. The
	// exponent bit above the top is an implicit zero, so the last guard
	// collapses to a constant.
	for i := 0; i < n-1; i++ {
		items = append(items, Sub(MuxBit{
			A:      Bit(runOvf, i+1),
			B:      ZeroBit(),
			Cond:   Bit(p.Exp, i+1),
			Result: Bit(guard, i),
		}))
	}

	items = append(items, Raw(Clause(Neg(Bit(guard, n-1)))))

	items = append(items,
		Sub(OrReduce{Input: accOvf, Result: accOr, Width: n}),
		Sub(OrReduce{Input: guard, Result: grdOr, Width: n}),
		Sub(OrBit{accOr, grdOr, p.Overflow}))

	return items
}

// PowModNBit encodes Result = (Base ** Exp) mod Mod at the given width.
// The square-and-multiply loop runs on a doubled lane so that no
// intermediate product can leave range: every step multiplies two values
// below 2^Width (the unreduced base, or residues below Mod) and immediately
// reduces. Requires the pinned constant One_NBit at twice the width.
type PowModNBit struct {
	Base   string
	Exp    string
	Mod    string
	Result string
	Width  int
}

// Expand implementation for the Constraint interface.
func (p PowModNBit) Expand(mint *Mint) []Item {
	var (
		k       = mint.Next("PowModNBit")
		base2   = "PowMod_NBit_Base_DoubleSize_" + Z(k)
		exp2    = "PowMod_NBit_Exp_DoubleSize_" + Z(k)
		mod2    = "PowMod_NBit_Mod_DoubleSize_" + Z(k)
		partial = "PowMod_NBit_PartialResult_" + Z(k)
		curPow  = "PowMod_NBit_CurrentPow_" + Z(k)
		bitFac  = "PowMod_NBit_BitFactor_" + Z(k)
		mul     = "PowMod_NBit_Multipled_" + Z(k)
		mulOvf  = "PowMod_NBit_MultipledOverflow_" + Z(k)
		sq      = "PowMod_NBit_SquareBase_" + Z(k)
		sqOvf   = "PowMod_NBit_SquareBaseOverflow_" + Z(k)
		div1    = "PowMod_NBit_Div1_" + Z(k)
		div2    = "PowMod_NBit_Div2_" + Z(k)
		n       = p.Width
		items   []Item
	)
	// Widen the operands onto the doubled lane.
	items = append(items,
		Sub(ZeroExtend{A: p.Base, Result: base2, Width: n}),
		Sub(ZeroExtend{A: p.Exp, Result: exp2, Width: n}),
		Sub(ZeroExtend{A: p.Mod, Result: mod2, Width: n}))
	// partial_0 = 1; curPow_0 = base
	items = append(items,
		Sub(InputEqualsNumber{Input: Bit(partial, 0), Value: 1, Width: n * 2}),
		Sub(EqualsNBit{A: Bit(curPow, 0), B: base2, Width: n * 2}))
	//
	for i := 0; i < n; i++ {
		// bitFac_i = exp_i ? curPow_i : 1
		items = append(items, Sub(MuxNBit{
			A:      Bit(curPow, i),
			B:      OneNBit(n * 2),
			Cond:   Bit(exp2, i),
			Result: Bit(bitFac, i),
			Width:  n * 2,
		}))
		// partial_{i+1} = (partial_i * bitFac_i) mod m
		items = append(items, Sub(MulNBit{
			A:        Bit(partial, i),
			B:        Bit(bitFac, i),
			Result:   Bit(mul, i),
			Overflow: Bit(mulOvf, i),
			Width:    n * 2,
		}))
		items = append(items, Raw(Clause(Neg(Bit(mulOvf, i)))))
		items = append(items, Sub(DivModNBit{
			A:     Bit(mul, i),
			B:     mod2,
			Div:   Bit(div1, i),
			Mod:   Bit(partial, i+1),
			Width: n * 2,
		}))
		// curPow_{i+1} = (curPow_i * curPow_i) mod m
		items = append(items, Sub(MulNBit{
			A:        Bit(curPow, i),
			B:        Bit(curPow, i),
			Result:   Bit(sq, i),
			Overflow: Bit(sqOvf, i),
			Width:    n * 2,
		}))
		items = append(items, Raw(Clause(Neg(Bit(sqOvf, i)))))
		items = append(items, Sub(DivModNBit{
			A:     Bit(sq, i),
			B:     mod2,
			Div:   Bit(div2, i),
			Mod:   Bit(curPow, i+1),
			Width: n * 2,
		}))
	}
	// Result is the low half of the final residue; the high half is already
	// forced to zero by the final reduction against the widened modulus.
	items = append(items, Sub(EqualsNBit{A: p.Result, B: Bit(partial, n), Width: n}))

	return items
}
