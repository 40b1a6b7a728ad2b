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
package cmd

import (
	"fmt"

	"github.com/consensys/go-primecnf/pkg/cnf"
	"github.com/spf13/cobra"
)

var tautologyCmd = &cobra.Command{
	Use:   "tautology [flags] width",
	Short: "generate the prime-and-composite tautology at a bit width.",
	Long: `Generate a CNF asserting that some number at the given bit width is at once
	 prime and composite. The formula is unsatisfiable by construction; its
	 refutations witness proof-system lower bounds.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		width := decimalArgs(args, 1, "usage: tautology width.")[0]

		items := []cnf.Item{
			cnf.Sub(cnf.IsPrime{Target: "target", Width: width, Primes: GetInt(cmd, "primes")}),
			cnf.Sub(cnf.IsComposite{Target: "target", Width: width}),
		}
		items = append(items, prelude(width, true)...)

		output := GetString(cmd, "output")
		if output == "" {
			output = fmt.Sprintf("prime_and_composite_tautology_%d.cnf", width)
		}

		generate(items, output)
	},
}

func init() {
	rootCmd.AddCommand(tautologyCmd)
	tautologyCmd.Flags().StringP("output", "o", "", "specify output file.")
	tautologyCmd.Flags().IntP("primes", "p", 0, "certificate size (number of candidate primes); defaults to the bit width.")
}
