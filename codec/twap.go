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

package codec

// TWAP is a decoded time-weighted-average-price result. Price is scaled by
// 10^6; Confidence is a percentage times 100.
type TWAP struct {
	Price      uint32
	Samples    uint16
	Confidence uint16
}

// DecodeTWAP unpacks a single u64 into its three bitfields: price in bits
// [0,32), samples in bits [32,48), confidence in bits [48,64).
func DecodeTWAP(packed uint64) TWAP {
	return TWAP{
		Price:      uint32(packed),
		Samples:    uint16(packed >> 32),
		Confidence: uint16(packed >> 48),
	}
}

// EncodeTWAP packs a TWAP back into its single-u64 wire form.
func EncodeTWAP(t TWAP) uint64 {
	return uint64(t.Price) | uint64(t.Samples)<<32 | uint64(t.Confidence)<<48
}
