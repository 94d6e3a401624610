// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package funycode

import "golang.org/x/text/encoding"

// EncodeBytes encodes a byte sequence in the named text encoding.
// The bytes are transcoded to code points before encoding.
func EncodeBytes(src []byte, enc encoding.Encoding) (string, error) {
	u, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return "", err
	}
	return EncodeString(string(u))
}

// DecodeBytes decodes an identifier and transcodes the result into the
// named text encoding. Decoded code points that the target encoding cannot
// represent yield the encoder's error.
func DecodeBytes(s string, enc encoding.Encoding) ([]byte, error) {
	u, err := DecodeString(s)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder().Bytes([]byte(u))
}
