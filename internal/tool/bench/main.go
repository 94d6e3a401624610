// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Benchmark tool to compare funycode against general-purpose compressors
// over a synthetic symbol-name corpus.
//
// Example usage:
//
//	$ go run main.go --names 4096
//	funycode     41.50KiB   1.402x  12.20MiB/s
//	flate         5.94KiB   9.793x  35.75MiB/s
//	xz            5.02KiB  11.588x   8.11MiB/s
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/irdc/funycode/internal/testutil"
	"github.com/irdc/funycode/internal/tool/bench"
)

func main() {
	numNames := pflag.Int("names", 4096, "number of synthetic symbol names in the corpus")
	seed := pflag.Int("seed", 0, "corpus generator seed")
	pflag.Parse()

	names := testutil.SymbolNames(testutil.NewRand(*seed), *numNames)
	results, err := bench.Run(names)
	if err != nil {
		log.Fatal("benchmark failed", "err", err)
	}
	for _, r := range results {
		fmt.Println(r.Format())
	}
}
