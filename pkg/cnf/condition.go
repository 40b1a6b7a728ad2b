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

// WithLiteral prepends the given literal occurrence to every clause of a
// condition. This is the primitive behind the Tseitin encoding of
// disjunction: a clause weakened by a selector literal only binds when the
// selector is false.
func WithLiteral(lit string, condition []string) []string {
	clauses := make([]string, len(condition))
	for i, clause := range condition {
		clauses[i] = lit + " " + clause
	}

	return clauses
}

// OrCondition encodes the disjunction of two sub-formulas. A fresh
// selector is minted; the left operand's clauses are weakened by the
// positive selector and the right operand's by the negative one, so any
// satisfying assignment must satisfy at least one operand in full. No
// equivalence clause for the selector is emitted (half-Tseitin). Operands
// may contain nested constraints; they are expanded before weakening.
type OrCondition struct {
	Left  []Item
	Right []Item
}

// Expand implementation for the Constraint interface.
func (p OrCondition) Expand(mint *Mint) []Item {
	selector := "Or_Condition_" + Z(mint.Next("OrCondition"))
	//
	var items []Item
	for _, clause := range WithLiteral(Pos(selector), Flatten(mint, p.Left)) {
		items = append(items, Raw(clause))
	}

	for _, clause := range WithLiteral(Neg(selector), Flatten(mint, p.Right)) {
		items = append(items, Raw(clause))
	}

	return items
}

// AndCondition encodes the conjunction of two sub-formulas, which at the
// CNF level is just concatenation.
type AndCondition struct {
	Left  []Item
	Right []Item
}

// Expand implementation for the Constraint interface.
func (p AndCondition) Expand(mint *Mint) []Item {
	items := make([]Item, 0, len(p.Left)+len(p.Right))
	items = append(items, p.Left...)
	items = append(items, p.Right...)

	return items
}

// Or is a convenience constructor for the disjunction of two constraints.
func Or(left Constraint, right Constraint) OrCondition {
	return OrCondition{Left: Subs(left), Right: Subs(right)}
}

// And is a convenience constructor for the conjunction of two constraints.
func And(left Constraint, right Constraint) AndCondition {
	return AndCondition{Left: Subs(left), Right: Subs(right)}
}
