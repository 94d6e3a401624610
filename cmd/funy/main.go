// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command funy is a line filter that mangles symbol names into C
// identifiers and back.
//
// Example usage:
//
//	$ echo 'std::__1::to_string(int)' | funy -e
//	std1tostringint_I2KqO010zt205
//	$ echo 'std1tostringint_I2KqO010zt205' | funy
//	std::__1::to_string(int)
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/irdc/funycode"
)

// Decoded output is capped at what a 16-bit address space could hold.
// Blowing past the cap almost always means the input was plain text that
// wanted encoding instead.
const maxDecode = 1 << 16

func main() {
	encode := pflag.BoolP("encode", "e", false, "encode lines instead of decoding them")
	pflag.Parse()
	if pflag.NArg() > 0 {
		log.Fatalf("unexpected argument: %s", pflag.Arg(0))
	}

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	out := bufio.NewWriter(os.Stdout)

	for in.Scan() {
		line := in.Text()
		var res string
		if *encode {
			s, err := funycode.EncodeString(line)
			if err != nil {
				log.Fatal("cannot encode line", "line", line, "err", err)
			}
			res = s
		} else {
			cs, err := funycode.Decode(line)
			if err != nil {
				log.Fatal("cannot decode line", "line", line, "err", err)
			}
			if len(cs) > maxDecode {
				log.Fatal("decoded output too large; did you mean -e?", "line", line)
			}
			res = string(cs)
		}
		if _, err := fmt.Fprintln(out, res); err != nil {
			log.Fatal("cannot write output", "err", err)
		}
	}
	if err := in.Err(); err != nil {
		log.Fatal("cannot read input", "err", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal("cannot write output", "err", err)
	}
}
