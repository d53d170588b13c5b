// Command pedigree queries the built-in sample pedigrees: ancestor sets,
// lineage paths, coefficients of relationship, and degrees of separation.
//
// Usage:
//
//	pedigree samples
//	pedigree show second-cousins
//	pedigree ancestors second-cousins M --depth 2
//	pedigree paths second-cousins A M
//	pedigree relate second-cousins D M --explain
//	pedigree separation first-cousins G H --output json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
