// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"strings"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from math/rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Rune returns a random code point outside the surrogate range and at or
// above U+0020. The distribution is weighted toward ASCII so that generated
// inputs exercise both the prefix and suffix paths of the codec.
func (r *Rand) Rune() rune {
	var c rune
	switch p := r.Intn(100); {
	case p < 55:
		c = rune(0x20 + r.Intn(0x7f-0x20)) // printable ASCII
	case p < 75:
		c = rune(0xa0 + r.Intn(0x800-0xa0)) // Latin supplements and friends
	case p < 95:
		c = rune(0x800 + r.Intn(0xd800-0x800)) // rest of the lower BMP
	default:
		c = rune(0x10000 + r.Intn(0x10000)) // astral
	}
	return c
}

// Runes returns n random code points from Rune.
func (r *Rand) Runes(n int) []rune {
	s := make([]rune, n)
	for i := range s {
		s[i] = r.Rune()
	}
	return s
}

var nameSpaces = []string{
	"std", "__1", "__cxx11", "detail", "internal", "impl", "core", "runtime",
}

var nameStems = []string{
	"basic_string", "allocator", "char_traits", "vector", "unordered_map",
	"shared_ptr", "error_code", "iterator", "function", "tuple", "optional",
	"make_error_condition", "hash", "less", "pair",
}

// SymbolName returns a synthetic namespace-laden symbol name of the kind
// funycode is meant to mangle.
func SymbolName(r *Rand) string {
	var sb strings.Builder
	for i, n := 0, 1+r.Intn(3); i < n; i++ {
		sb.WriteString(nameSpaces[r.Intn(len(nameSpaces))])
		sb.WriteString("::")
	}
	sb.WriteString(nameStems[r.Intn(len(nameStems))])
	if r.Intn(2) == 0 {
		sb.WriteByte('<')
		for i, n := 0, 1+r.Intn(3); i < n; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(nameSpaces[r.Intn(len(nameSpaces))])
			sb.WriteString("::")
			sb.WriteString(nameStems[r.Intn(len(nameStems))])
		}
		sb.WriteByte('>')
	}
	if r.Intn(3) == 0 {
		sb.WriteByte('*')
	}
	return sb.String()
}

// SymbolNames returns n synthetic symbol names.
func SymbolNames(r *Rand, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = SymbolName(r)
	}
	return names
}
