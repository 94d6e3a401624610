// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package funycode

import (
	"testing"
	"unicode/utf8"
)

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"", "foo", "foo_bar", "hörbücher", "自転車", "_", " ", "abababab"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		enc, err := EncodeString(s)
		if err != nil {
			// Control characters may be unencodable; nothing else is for
			// valid UTF-8 input.
			if err != ErrUnencodable {
				t.Fatalf("EncodeString(%q) error: got %v", s, err)
			}
			t.Skip()
		}
		for _, c := range []byte(enc) {
			if digitValue(c) < 0 && c != '_' {
				t.Fatalf("EncodeString(%q) has non-alphabet byte %q in %q", s, c, enc)
			}
		}
		dec, err := DecodeString(enc)
		if err != nil {
			t.Fatalf("DecodeString(%q) error: got %v", enc, err)
		}
		if dec != s {
			t.Fatalf("round trip mismatch: got %q, want %q", dec, s)
		}
	})
}

func FuzzDecode(f *testing.F) {
	for _, s := range []string{"foobar_H7", "C1_", "A0_", "zzzz_", "a_b_c", "9", "_"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		dec, err := DecodeString(s)
		if err != nil {
			return
		}
		// Whatever decodes must re-encode without error, except for
		// control characters that have no encoding.
		if _, err := EncodeString(dec); err != nil && err != ErrUnencodable {
			t.Fatalf("EncodeString(%q) error: got %v", dec, err)
		}
	})
}
