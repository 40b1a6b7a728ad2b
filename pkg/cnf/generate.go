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
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/consensys/go-primecnf/pkg/util"
	log "github.com/sirupsen/logrus"
)

// literalRegex locates literal name tokens (brackets included) inside
// clause strings. The bracketed form is the key throughout collection and
// sorting; brackets are stripped only on emission.
var literalRegex = regexp.MustCompile(`<[A-Za-z0-9_]+>`)

// Generate compiles the given constraint items into a DIMACS CNF file at
// the given path. The output file is created (truncated) once and written
// through; progress for the large passes is reported on the log.
func Generate(items []Item, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	//
	defer file.Close()
	//
	return Write(items, file)
}

// Write compiles the given constraint items and writes DIMACS CNF to the
// given writer: three comment lines, the name-map block (one "cv <name>
// <id>" line per variable, in id order), the problem line, then the
// clauses.
func Write(items []Item, w io.Writer) error {
	stats := util.NewPerfStats()
	defer stats.Log("generating cnf")
	//
	clauses := expandFixedPoint(NewMint(), items)
	tokens := collectLiterals(clauses)
	sortLiterals(tokens)
	//
	log.Info("mapping symbols to integers...")

	ids := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		ids[tok] = i + 1
	}

	substitute(clauses, ids)

	log.Info("writing cnf...")

	out := bufio.NewWriter(w)

	for i := 0; i < 3; i++ {
		fmt.Fprintln(out, "c")
	}
	// The cv block maps solver ids back to symbolic names; the merge tool
	// and the tests rely on it.
	for i, tok := range tokens {
		fmt.Fprintf(out, "cv %s %d\n", strings.Trim(tok, "<>"), i+1)
	}

	fmt.Fprintf(out, "p cnf %d %d\n", len(tokens), len(clauses))

	beat := newHeartbeat(len(clauses))

	for i, clause := range clauses {
		beat.tick(i)
		fmt.Fprintln(out, clause)
	}

	return out.Flush()
}

// expandFixedPoint repeatedly rewrites the item list, replacing every
// constraint node by its one-step expansion, until only clause strings
// remain. Auxiliary names are drawn from the given mint throughout, so the
// result is collision-free regardless of nesting depth.
func expandFixedPoint(mint *Mint, items []Item) []string {
	for pass := 1; ; pass++ {
		log.Infof("expansion pass %d (%d items)", pass, len(items))
		//
		var (
			next    []Item
			settled = true
		)

		for _, item := range items {
			if item.Node != nil {
				settled = false

				next = append(next, item.Node.Expand(mint)...)
			} else {
				next = append(next, item)
			}
		}

		items = next

		if settled {
			break
		}
	}
	//
	clauses := make([]string, len(items))
	for i, item := range items {
		clauses[i] = item.Clause
	}

	return clauses
}

// collectLiterals scans every clause for literal name tokens and returns
// the distinct set (order unspecified).
func collectLiterals(clauses []string) []string {
	log.Info("gathering literals...")
	//
	var (
		seen = make(map[string]bool)
		beat = newHeartbeat(len(clauses))
	)

	for i, clause := range clauses {
		beat.tick(i)

		for _, tok := range literalRegex.FindAllString(clause, -1) {
			seen[tok] = true
		}
	}
	//
	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}

	return tokens
}

// sortLiterals orders tokens into two classes: names starting with a
// lowercase letter (or digit) first, names starting with an uppercase
// letter after, lexicographic within each class. User-facing variables are
// conventionally lowercase, so they end up with small, stable ids.
func sortLiterals(tokens []string) {
	log.Info("sorting literals...")
	//
	upper := func(tok string) bool {
		return tok[1] >= 'A' && tok[1] <= 'Z'
	}

	sort.Slice(tokens, func(i, j int) bool {
		ui, uj := upper(tokens[i]), upper(tokens[j])
		if ui != uj {
			return !ui
		}

		return tokens[i] < tokens[j]
	})
}

// substitute textually replaces every literal token in every clause by its
// assigned integer. A negative occurrence "-<name>" becomes "-<id>" by
// virtue of the leading minus sitting outside the token.
func substitute(clauses []string, ids map[string]int) {
	log.Info("replacing symbols with integers...")
	//
	beat := newHeartbeat(len(clauses))

	for i, clause := range clauses {
		beat.tick(i)

		for _, tok := range literalRegex.FindAllString(clause, -1) {
			clause = strings.ReplaceAll(clause, tok, strconv.Itoa(ids[tok]))
		}

		clauses[i] = clause
	}
}

// heartbeat reports at most twenty evenly spaced progress points over a
// pass of known size, mirroring five-percent steps on large inputs.
type heartbeat struct {
	step int
}

func newHeartbeat(total int) heartbeat {
	return heartbeat{step: total / 20}
}

func (h heartbeat) tick(i int) {
	if h.step > 0 && i%h.step == 0 && i/h.step < 20 {
		log.Infof("%d%%...", 5*(i/h.step))
	}
}
