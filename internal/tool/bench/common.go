// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares funycode against general-purpose stream
// compressors on symbol-name corpora, with respect to encoded size and
// throughput.
//
// The comparison is deliberately unfair in both directions: funycode
// encodes each name independently into an identifier, while the stream
// compressors see the whole corpus as one newline-joined block and do not
// produce identifiers at all. The point is to locate funycode's overhead
// relative to general-purpose entropy coding, not to beat it.
package bench

import (
	"fmt"
	"time"

	"github.com/dsnet/golib/strconv"
)

// A Codec compresses a corpus of symbol names and reports the total
// compressed size in bytes.
type Codec struct {
	Name     string
	Compress func(names []string) (int64, error)
}

var codecs []Codec

// Register adds a codec to the set measured by Run.
func Register(c Codec) { codecs = append(codecs, c) }

// Codecs returns the registered codecs in registration order.
func Codecs() []Codec { return codecs }

// A Result reports one codec's performance on a corpus.
type Result struct {
	Name     string
	RawSize  int64
	CompSize int64
	Dur      time.Duration
}

// Ratio returns the compression ratio achieved on the corpus.
func (r Result) Ratio() float64 { return float64(r.RawSize) / float64(r.CompSize) }

// Rate returns the compression throughput in bytes per second.
func (r Result) Rate() float64 { return float64(r.RawSize) / r.Dur.Seconds() }

// Format renders the result as a table row.
func (r Result) Format() string {
	return fmt.Sprintf("%-10s %9sB %7.3fx %9sB/s", r.Name,
		strconv.FormatPrefix(float64(r.CompSize), strconv.Base1024, 2),
		r.Ratio(),
		strconv.FormatPrefix(r.Rate(), strconv.Base1024, 2))
}

// Run measures every registered codec on the given corpus.
func Run(names []string) ([]Result, error) {
	var raw int64
	for _, n := range names {
		raw += int64(len(n)) + 1
	}

	results := make([]Result, 0, len(codecs))
	for _, c := range codecs {
		start := time.Now()
		size, err := c.Compress(names)
		if err != nil {
			return nil, fmt.Errorf("codec %s: %v", c.Name, err)
		}
		results = append(results, Result{
			Name:     c.Name,
			RawSize:  raw,
			CompSize: size,
			Dur:      time.Since(start),
		})
	}
	return results, nil
}
