// SPDX-License-Identifier: MIT

// Command lvlinalg answers type-level questions about matrix arithmetic:
// which element type, engine and object type an operation produces under a
// given policy, without running it.
//
//	lvlinalg resolve + 'fixed<float32,2,3>' 'fixed<float64,2,3>'
//	lvlinalg resolve '*' 'dynamic<float32>' 'fixed<float32,4,5>' -o yaml
//	lvlinalg resolve neg 'transpose<fixed<int16,2,3>>'
//	lvlinalg batch queries.yaml
//	lvlinalg elements
//
// Defaults come from LVLINALG_OUTPUT, LVLINALG_HETEROGENEOUS_COMPLEX and
// LVLINALG_LOG_LEVEL, optionally set in a .env file.
package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvlinalg:", err)
		os.Exit(2)
	}
	if err = newRootCmd(cfg, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlinalg:", err)
		os.Exit(1)
	}
}
