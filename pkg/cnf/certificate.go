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

// FermatTest asserts Generator not in {0, 1} and (Generator ** Exp) mod
// Mod == 1.
type FermatTest struct {
	Generator string
	Exp       string
	Mod       string
	Width     int
}

// Expand implementation for the Constraint interface.
func (p FermatTest) Expand(mint *Mint) []Item {
	residue := "FermatTest_" + Z(mint.Next("FermatTest"))
	//
	return []Item{
		Sub(InputNotEqualsNumber{Input: p.Generator, Value: 0, Width: p.Width}),
		Sub(InputNotEqualsNumber{Input: p.Generator, Value: 1, Width: p.Width}),
		Sub(PowModNBit{Base: p.Generator, Exp: p.Exp, Mod: p.Mod, Result: residue, Width: p.Width}),
		Sub(InputEqualsNumber{Input: residue, Value: 1, Width: p.Width}),
	}
}

// FermatTestPrime asserts (Generator ** (Prime - 1)) mod Prime == 1, the
// Fermat obligation of a Pratt certificate. The decrement is encoded as an
// addition solved backwards.
type FermatTestPrime struct {
	Generator string
	Prime     string
	Width     int
}

// Expand implementation for the Constraint interface.
func (p FermatTestPrime) Expand(mint *Mint) []Item {
	var (
		k      = mint.Next("FermatTestPrime")
		minus1 = "FermatTest2_Prime_Minus1_" + Z(k)
		ovf    = "FermatTest2_Prime_Minus1_Overflow_" + Z(k)
	)
	//
	return []Item{
		Sub(AddNBit{A: minus1, B: OneNBit(p.Width), Result: p.Prime, Overflow: ovf, Width: p.Width}),
		Raw(Clause(Neg(ovf))),
		Sub(FermatTest{Generator: p.Generator, Exp: minus1, Mod: p.Prime, Width: p.Width}),
	}
}

// FermatTestNot asserts Generator not in {0, 1} and (Generator ** Exp) mod
// Mod != 1, the primitive-root obligation of a Pratt certificate.
type FermatTestNot struct {
	Generator string
	Exp       string
	Mod       string
	Width     int
}

// Expand implementation for the Constraint interface.
func (p FermatTestNot) Expand(mint *Mint) []Item {
	residue := "FermatTest3_" + Z(mint.Next("FermatTestNot"))
	//
	return []Item{
		Sub(InputNotEqualsNumber{Input: p.Generator, Value: 0, Width: p.Width}),
		Sub(InputNotEqualsNumber{Input: p.Generator, Value: 1, Width: p.Width}),
		Sub(PowModNBit{Base: p.Generator, Exp: p.Exp, Mod: p.Mod, Result: residue, Width: p.Width}),
		Sub(InputNotEqualsNumber{Input: residue, Value: 1, Width: p.Width}),
	}
}

// IsComposite asserts that Target is the overflow-free product of two
// factors, both different from 0 and 1.
type IsComposite struct {
	Target string
	Width  int
}

// Expand implementation for the Constraint interface.
func (p IsComposite) Expand(mint *Mint) []Item {
	var (
		k     = mint.Next("IsComposite")
		fact1 = "IsComposite_fact1_" + Z(k)
		fact2 = "IsComposite_fact2_" + Z(k)
		ovf   = "IsComposite_Overflow_" + Z(k)
	)
	//
	return []Item{
		Sub(MulNBit{A: fact1, B: fact2, Result: p.Target, Overflow: ovf, Width: p.Width}),
		Sub(InputNotEqualsNumber{Input: fact1, Value: 0, Width: p.Width}),
		Sub(InputNotEqualsNumber{Input: fact2, Value: 0, Width: p.Width}),
		Sub(InputNotEqualsNumber{Input: fact1, Value: 1, Width: p.Width}),
		Sub(InputNotEqualsNumber{Input: fact2, Value: 1, Width: p.Width}),
		Raw(Clause(Neg(ovf))),
	}
}

// IsPrime asserts the existence of a Pratt-style certificate proving Target
// prime at the given width. The certificate comprises Primes candidate
// primes (the target itself first), a claimed factorisation of each
// candidate minus one over the candidates, and a generator per candidate
// passing the Fermat obligations. Candidates 2 and 3 are accepted as base
// cases without a factorisation.
//
// If Primes is zero, it defaults to the width: a prime below 2^n has at
// most n prime factors in p-1, multiplicity counted.
type IsPrime struct {
	Target string
	Width  int
	Primes int
}

// Expand implementation for the Constraint interface.
func (p IsPrime) Expand(mint *Mint) []Item {
	var (
		k     = mint.Next("IsPrime")
		n     = p.Width
		count = p.Primes
	)

	if count == 0 {
		count = n
	}

	prime := func(i int) string { return "IsPrime_Prime_" + Z(k) + "_" + Z(i) }
	powRow := func(i int) string { return "IsPrime_Pow_" + Z(k) + "_" + Z(i) }
	powTempRow := func(i int) string { return "IsPrime_PowTemp_" + Z(k) + "_" + Z(i) }
	powTempOvfRow := func(i int) string { return "IsPrime_PowTemp_Overflow_" + Z(k) + "_" + Z(i) }
	product := func(i int) string { return "IsPrime_Product_" + Z(k) + "_" + Z(i) }
	productOvf := func(i int) string { return "IsPrime_Product_Overflow_" + Z(k) + "_" + Z(i) }
	productPlus1 := func(i int) string { return "IsPrime_Product_Plus1_" + Z(k) + "_" + Z(i) }
	productPlus1Ovf := func(i int) string { return "IsPrime_Product_Plus1_Overflow_" + Z(k) + "_" + Z(i) }
	sumPow := func(i int) string { return "IsPrime_SumPow_" + Z(k) + "_" + Z(i) }
	sumPowOvf := func(i int) string { return "IsPrime_SumPow_Overflow_" + Z(k) + "_" + Z(i) }
	minus1 := func(i int) string { return "IsPrime_Prime_Minus1_" + Z(k) + "_" + Z(i) }
	minus1Ovf := func(i int) string { return "IsPrime_Prime_Minus1_Overflow_" + Z(k) + "_" + Z(i) }
	div := func(i, j int) string { return "IsPrime_Div_" + Z(k) + "_" + Z(i) + "_" + Z(j) }
	mod := func(i, j int) string { return "IsPrime_Mod_" + Z(k) + "_" + Z(i) + "_" + Z(j) }
	generator := func(i int) string { return "IsPrime_Generator_" + Z(k) + "_" + Z(i) }

	baseCase := func(i int) Constraint {
		return Or(
			InputEqualsNumber{Input: prime(i), Value: 2, Width: n},
			InputEqualsNumber{Input: prime(i), Value: 3, Width: n})
	}

	var items []Item
	// Candidate primes are neither 0 nor 1.
	for i := 0; i < count; i++ {
		items = append(items, Sub(InputNotEqualsNumber{Input: prime(i), Value: 0, Width: n}))
	}

	for i := 0; i < count; i++ {
		items = append(items, Sub(InputNotEqualsNumber{Input: prime(i), Value: 1, Width: n}))
	}
	// powTemp[i][j] = prime[j] ** pow[i][j], overflow-free.
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			items = append(items, Sub(PowNBit{
				Base:     prime(j),
				Exp:      Bit(powRow(i), j),
				Result:   Bit(powTempRow(i), j),
				Overflow: Bit(powTempOvfRow(i), j),
				Width:    n,
			}))
		}
	}

	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			items = append(items, Raw(Clause(Neg(Bit(powTempOvfRow(i), j)))))
		}
	}
	// product[i] = prod_j powTemp[i][j], overflow-free.
	for i := 0; i < count; i++ {
		items = append(items, Sub(ProductNBit{
			Input:    powTempRow(i),
			Output:   product(i),
			Overflow: productOvf(i),
			Count:    count,
			Width:    n,
		}))
	}

	for i := 0; i < count; i++ {
		items = append(items, Raw(Clause(Neg(productOvf(i)))))
	}
	// productPlus1[i] = product[i] + 1, overflow-free.
	for i := 0; i < count; i++ {
		items = append(items, Sub(AddNBit{
			A:        product(i),
			B:        OneNBit(n),
			Result:   productPlus1(i),
			Overflow: productPlus1Ovf(i),
			Width:    n,
		}))
	}

	for i := 0; i < count; i++ {
		items = append(items, Raw(Clause(Neg(productPlus1Ovf(i)))))
	}
	// sumPow[i] = sum_j pow[i][j], overflow-free.
	for i := 0; i < count; i++ {
		items = append(items, Sub(SumNBit{
			Input:    powRow(i),
			Output:   sumPow(i),
			Overflow: sumPowOvf(i),
			Count:    count,
			Width:    n,
		}))
	}

	for i := 0; i < count; i++ {
		items = append(items, Raw(Clause(Neg(sumPowOvf(i)))))
	}
	// Either a base case, or the claimed factorisation of prime[i]-1 is
	// non-trivial and exact.
	for i := 0; i < count; i++ {
		items = append(items, Sub(OrCondition{
			Left: Subs(baseCase(i)),
			Right: Subs(And(
				LessThanNBit{A: OneNBit(n), B: sumPow(i), Width: n},
				EqualsNBit{A: productPlus1(i), B: prime(i), Width: n})),
		}))
	}
	// minus1[i] + 1 = prime[i], overflow-free (the decrement, solved
	// backwards).
	for i := 0; i < count; i++ {
		items = append(items, Sub(AddNBit{
			A:        minus1(i),
			B:        OneNBit(n),
			Result:   prime(i),
			Overflow: minus1Ovf(i),
			Width:    n,
		}))
	}

	for i := 0; i < count; i++ {
		items = append(items, Raw(Clause(Neg(minus1Ovf(i)))))
	}
	// div[i][j], mod[i][j] = (prime[i]-1) divmod prime[j].
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			items = append(items, Sub(DivModNBit{
				A:     minus1(i),
				B:     prime(j),
				Div:   div(i, j),
				Mod:   mod(i, j),
				Width: n,
			}))
		}
	}
	// The generator must not collapse on (prime[i]-1)/prime[j], unless
	// prime[j] does not occur in the factorisation, or prime[i] is a base
	// case.
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			items = append(items, Sub(OrCondition{
				Left: Subs(Or(
					FermatTestNot{Generator: generator(i), Exp: div(i, j), Mod: prime(i), Width: n},
					InputEqualsNumber{Input: Bit(powRow(i), j), Value: 0, Width: n})),
				Right: Subs(baseCase(i)),
			}))
		}
	}
	// The generator passes the Fermat test on prime[i] itself, unless a
	// base case.
	for i := 0; i < count; i++ {
		items = append(items, Sub(OrCondition{
			Left:  Subs(FermatTestPrime{Generator: generator(i), Prime: prime(i), Width: n}),
			Right: Subs(baseCase(i)),
		}))
	}
	// The certificate proves the target: prime[0] is the target.
	items = append(items, Sub(EqualsNBit{A: p.Target, B: prime(0), Width: n}))

	return items
}
