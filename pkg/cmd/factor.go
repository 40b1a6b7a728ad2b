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

var factorCmd = &cobra.Command{
	Use:   "factor [flags] number",
	Short: "generate CNF searching for a non-trivial factorisation.",
	Long: `Generate a CNF which is satisfiable exactly when the given number has two
	 factors other than 1 and itself; a model carries them on "factor1" and
	 "factor2".`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		target := decimalArgs(args, 1, "usage: factor number.")[0]
		width := bitLen(target)

		fmt.Printf("Target: %d (bit width: %d)\n", target, width)

		items := []cnf.Item{
			cnf.Sub(cnf.MulNBit{A: "factor1", B: "factor2", Result: "target", Overflow: "overflow", Width: width}),
			// Excluding the target itself excludes the 1 * N factorisations.
			cnf.Sub(cnf.InputNotEqualsNumber{Input: "factor1", Value: target, Width: width}),
			cnf.Sub(cnf.InputNotEqualsNumber{Input: "factor2", Value: target, Width: width}),
			cnf.Sub(cnf.InputEqualsNumber{Input: "target", Value: target, Width: width}),
			cnf.Raw(cnf.Clause(cnf.Neg("overflow"))),
		}
		items = append(items, prelude(width, true)...)

		output := GetString(cmd, "output")
		if output == "" {
			output = fmt.Sprintf("prime_factoring_%d.cnf", target)
		}

		generate(items, output)
		fmt.Printf("This CNF will be satisfiable if %d has non-trivial factors.\n", target)
	},
}

func init() {
	rootCmd.AddCommand(factorCmd)
	factorCmd.Flags().StringP("output", "o", "", "specify output file.")
}
