// Copyright 2026 The Ammswap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package address derives program-controlled addresses: 32-byte values with
// no associated private key, found by hashing a seed list plus a bump byte
// until the digest falls off the Ed25519 curve.
package address

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/ampswap/ammswap-go/ammerr"
)

const pdaMarker = "ProgramDerivedAddress"

// isOffCurve reports whether digest, interpreted as a compressed Ed25519
// point, does not correspond to a valid curve point. It decompresses the
// candidate exactly rather than relying on a probabilistic shortcut: a
// false positive here would produce addresses the chain's own derivation
// would never select.
func isOffCurve(digest [32]byte) bool {
	_, err := new(edwards25519.Point).SetBytes(digest[:])
	return err != nil
}

func hashSeeds(seeds [][]byte, bump byte, programID [32]byte) [32]byte {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// FindProgramAddress searches bumps 255 down to 0 for the first seed
// combination whose SHA-256 digest is off the Ed25519 curve, returning the
// digest and the bump that produced it.
func FindProgramAddress(seeds [][]byte, programID [32]byte) ([32]byte, uint8, error) {
	for b := 255; b >= 0; b-- {
		digest := hashSeeds(seeds, byte(b), programID)
		if isOffCurve(digest) {
			return digest, uint8(b), nil
		}
	}
	return [32]byte{}, 0, ammerr.New(ammerr.NoValidBump, "no off-curve bump found for %d seeds", len(seeds))
}

// CreateProgramAddress hashes seeds with a caller-supplied bump once,
// without searching, and fails OnCurve if the digest lands on the curve.
func CreateProgramAddress(seeds [][]byte, bump uint8, programID [32]byte) ([32]byte, error) {
	digest := hashSeeds(seeds, bump, programID)
	if !isOffCurve(digest) {
		return [32]byte{}, ammerr.New(ammerr.OnCurve, "digest for bump %d is a valid curve point", bump)
	}
	return digest, nil
}
