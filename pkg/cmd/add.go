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

var addCmd = &cobra.Command{
	Use:   "add [flags] number1 number2",
	Short: "generate CNF witnessing the sum of two numbers.",
	Long: `Generate a CNF whose unique satisfying assignment carries the sum of the two
	 given numbers on the "result" variable, with "overflow" pinned false.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		nums := decimalArgs(args, 2, "usage: add number1 number2.")
		num1, num2 := nums[0], nums[1]
		// Wide enough for both inputs and the full sum.
		width := max(bitLen(max(num1, num2))+1, bitLen(num1+num2))

		fmt.Printf("Input 1: %d (bit width: %d)\n", num1, bitLen(num1))
		fmt.Printf("Input 2: %d (bit width: %d)\n", num2, bitLen(num2))
		fmt.Printf("Using bit width: %d\n", width)

		items := []cnf.Item{
			cnf.Sub(cnf.AddNBit{A: "input1", B: "input2", Result: "result", Overflow: "overflow", Width: width}),
			cnf.Sub(cnf.InputEqualsNumber{Input: "input1", Value: num1, Width: width}),
			cnf.Sub(cnf.InputEqualsNumber{Input: "input2", Value: num2, Width: width}),
			cnf.Raw(cnf.Clause(cnf.Neg("overflow"))),
		}
		items = append(items, prelude(width, false)...)

		output := GetString(cmd, "output")
		if output == "" {
			output = fmt.Sprintf("add_%d_%d.cnf", num1, num2)
		}

		generate(items, output)
		fmt.Printf("Expected result: %d\n", num1+num2)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("output", "o", "", "specify output file.")
}
