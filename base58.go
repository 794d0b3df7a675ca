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

package ammswap

import (
	"github.com/mr-tron/base58"

	"github.com/ampswap/ammswap-go/ammerr"
)

// EncodePubkey encodes a 32-byte public key using the Bitcoin base-58
// alphabet.
func EncodePubkey(key [32]byte) string {
	return base58.Encode(key[:])
}

// DecodePubkey decodes base-58 text into a 32-byte public key, failing
// InvalidLength if the decoded value is not exactly 32 bytes.
func DecodePubkey(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := base58.Decode(s)
	if err != nil {
		return out, ammerr.New(ammerr.InvalidFormat, "base58 decode: %v", err)
	}
	if len(raw) != 32 {
		return out, ammerr.New(ammerr.InvalidLength, "decoded pubkey length %d, want 32", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
