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
	"os"

	"github.com/consensys/go-primecnf/pkg/dimacs"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge cnf_file result_file",
	Short: "attach a solver's assignment back to symbolic variable names.",
	Long: `Join the name-map comment block of a generated CNF file with the value lines
	 of a SAT solver's output, printing each variable's solved bit.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		if len(args) != 2 {
			fmt.Println("usage: merge cnf_file result_file.")
			os.Exit(1)
		}

		cnfFile, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		//
		defer cnfFile.Close()

		resultFile, err := os.Open(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		//
		defer resultFile.Close()

		if err := dimacs.Merge(cnfFile, resultFile, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
