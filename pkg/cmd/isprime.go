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

var isPrimeCmd = &cobra.Command{
	Use:   "isprime [flags] number",
	Short: "generate CNF encoding a primality certificate for a number.",
	Long: `Generate a CNF which is satisfiable exactly when the given number admits a
	 Pratt-style primality certificate, i.e. when it is prime.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		target := decimalArgs(args, 1, "usage: isprime number.")[0]
		width := max(2, bitLen(target))

		fmt.Printf("Target: %d (bit width: %d)\n", target, width)

		items := []cnf.Item{
			cnf.Sub(cnf.IsPrime{Target: "target", Width: width, Primes: GetInt(cmd, "primes")}),
			cnf.Sub(cnf.InputEqualsNumber{Input: "target", Value: target, Width: width}),
		}
		items = append(items, prelude(width, true)...)

		output := GetString(cmd, "output")
		if output == "" {
			output = fmt.Sprintf("is_prime_%d.cnf", target)
		}

		generate(items, output)
		fmt.Printf("This CNF will be satisfiable if %d is prime.\n", target)
		fmt.Printf("If the CNF is unsatisfiable, %d is composite.\n", target)
	},
}

func init() {
	rootCmd.AddCommand(isPrimeCmd)
	isPrimeCmd.Flags().StringP("output", "o", "", "specify output file.")
	isPrimeCmd.Flags().IntP("primes", "p", 0, "certificate size (number of candidate primes); defaults to the bit width.")
}
