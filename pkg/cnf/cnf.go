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

// Package cnf compiles arithmetic and number-theoretic constraints over
// fixed-width binary integers into Conjunctive Normal Form. A constraint is
// a value which expands into clause strings over named Boolean variables;
// the compiler drives expansion to a fixed point, numbers the variables and
// emits DIMACS.
package cnf

// Constraint is a node in a constraint tree. Expanding a node yields a list
// of items, each of which is either a finished clause or a further node.
// Nodes are value-like: expanding the same node twice yields clause sets
// with the same logical meaning, though auxiliary variable names will
// differ according to the mint.
type Constraint interface {
	Expand(mint *Mint) []Item
}

// Item is one element of an expansion. Exactly one of Clause or Node is
// set: a non-nil Node marks a nested constraint awaiting expansion,
// otherwise Clause holds a single complete zero-terminated clause.
type Item struct {
	Clause string
	Node   Constraint
}

// Raw wraps an already-formed clause string as an item.
func Raw(clause string) Item {
	return Item{Clause: clause}
}

// Sub wraps a nested constraint as an item.
func Sub(node Constraint) Item {
	return Item{Node: node}
}

// Subs wraps a sequence of constraints as items.
func Subs(nodes ...Constraint) []Item {
	items := make([]Item, len(nodes))
	for i, n := range nodes {
		items[i] = Item{Node: n}
	}

	return items
}

// Mint issues per-kind monotonic instance numbers, guaranteeing that
// auxiliary variable names from distinct expansions of the same constructor
// never collide. A single mint is threaded through one whole compilation.
type Mint struct {
	counters map[string]int
}

// NewMint creates a fresh mint with all counters at zero.
func NewMint() *Mint {
	return &Mint{counters: make(map[string]int)}
}

// Next increments and returns the counter for the given constructor kind.
// The first number issued is 1, matching the suffix of the first instance.
func (m *Mint) Next(kind string) int {
	m.counters[kind]++
	return m.counters[kind]
}

// Flatten fully expands the given items, returning clause strings only.
// Nested constraints are expanded depth-first. This is used both by the
// compiler and by combinators which must see the clauses of their operands
// (e.g. to prefix a Tseitin literal).
func Flatten(mint *Mint, items []Item) []string {
	var clauses []string
	// Depth-first worklist, preserving item order.
	var visit func(items []Item)

	visit = func(items []Item) {
		for _, item := range items {
			if item.Node != nil {
				visit(item.Node.Expand(mint))
			} else {
				clauses = append(clauses, item.Clause)
			}
		}
	}
	visit(items)

	return clauses
}
