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
	"regexp"
	"strconv"

	"github.com/consensys/go-primecnf/pkg/cnf"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits with status 2 if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits with status 2 if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int flag, or exits with status 2 if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbosity flag.
func initLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

var decimalRegex = regexp.MustCompile(`^\d+$`)

// decimalArgs parses the expected number of non-negative decimal arguments,
// printing the given usage line on stdout and exiting 1 on any mismatch
// (wrong arity, non-decimal input, out-of-range value).
func decimalArgs(args []string, count int, usage string) []int {
	fail := func() {
		fmt.Println(usage)
		os.Exit(1)
	}

	if len(args) != count {
		fail()
	}

	values := make([]int, count)

	for i, arg := range args {
		if !decimalRegex.MatchString(arg) {
			fail()
		}

		value, err := strconv.Atoi(arg)
		if err != nil {
			fail()
		}

		values[i] = value
	}

	return values
}

// bitLen determines the number of bits required to represent the given
// value, with bitLen(0) == 0.
func bitLen(value int) int {
	length := 0
	for t := value; t > 0; t >>= 1 {
		length++
	}

	return length
}

// prelude pins the pre-defined constant variables every generated file
// depends upon: One_NBit at the working width (and at the doubled width
// when modular arithmetic is in play) and the Zero_1Bit bit.
func prelude(width int, doubled bool) []cnf.Item {
	items := []cnf.Item{
		cnf.Sub(cnf.InputEqualsNumber{Input: cnf.OneNBit(width), Value: 1, Width: width}),
	}

	if doubled {
		items = append(items,
			cnf.Sub(cnf.InputEqualsNumber{Input: cnf.OneNBit(width * 2), Value: 1, Width: width * 2}))
	}

	return append(items, cnf.Raw(cnf.Clause(cnf.Neg(cnf.ZeroBit()))))
}

// generate runs the compiler and reports the outcome the way every
// subcommand does.
func generate(items []cnf.Item, path string) {
	if err := cnf.Generate(items, path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("CNF file generated: %s\n", path)
}
