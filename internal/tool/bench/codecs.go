// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/irdc/funycode"
)

func init() {
	Register(Codec{"funycode",
		func(names []string) (int64, error) {
			var n int64
			for _, name := range names {
				s, err := funycode.EncodeString(name)
				if err != nil {
					return 0, err
				}
				n += int64(len(s)) + 1
			}
			return n, nil
		}})

	Register(Codec{"flate",
		func(names []string) (int64, error) {
			var buf bytes.Buffer
			zw, err := flate.NewWriter(&buf, flate.BestCompression)
			if err != nil {
				return 0, err
			}
			for _, name := range names {
				if _, err := zw.Write([]byte(name + "\n")); err != nil {
					return 0, err
				}
			}
			if err := zw.Close(); err != nil {
				return 0, err
			}
			return int64(buf.Len()), nil
		}})

	Register(Codec{"xz",
		func(names []string) (int64, error) {
			var buf bytes.Buffer
			zw, err := xz.NewWriter(&buf)
			if err != nil {
				return 0, err
			}
			for _, name := range names {
				if _, err := zw.Write([]byte(name + "\n")); err != nil {
					return 0, err
				}
			}
			if err := zw.Close(); err != nil {
				return 0, err
			}
			return int64(buf.Len()), nil
		}})
}
