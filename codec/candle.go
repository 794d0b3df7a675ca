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

// Package codec parses the fixed-offset binary account blobs the program
// emits and builds the binary instruction payloads it expects. Every offset,
// width, and endianness choice here is a wire contract: parsing never
// allocates beyond the declared extent of a blob, and emission never leaves
// a reserved byte unzeroed.
package codec

import "encoding/binary"

// CandleSize is the encoded width of a single OHLCV candle in bytes.
const CandleSize = 12

// Candle is a delta-encoded OHLCV record. Prices are integer-scaled by
// 10^6; volume is scaled by 10^9. High, low, and close are stored as signed
// deltas off Open so that small intra-window moves pack into 16 bits.
type Candle struct {
	Open   uint32
	HighD  uint16
	LowD   uint16
	CloseD int16
	Volume uint16
}

// High returns the absolute high price.
func (c Candle) High() uint32 { return c.Open + uint32(c.HighD) }

// Low returns the absolute low price.
func (c Candle) Low() uint32 { return c.Open - uint32(c.LowD) }

// Close returns the absolute close price.
func (c Candle) Close() int64 { return int64(c.Open) + int64(c.CloseD) }

func decodeCandle(b []byte) Candle {
	_ = b[CandleSize-1]
	return Candle{
		Open:   binary.LittleEndian.Uint32(b[0:4]),
		HighD:  binary.LittleEndian.Uint16(b[4:6]),
		LowD:   binary.LittleEndian.Uint16(b[6:8]),
		CloseD: int16(binary.LittleEndian.Uint16(b[8:10])),
		Volume: binary.LittleEndian.Uint16(b[10:12]),
	}
}

func encodeCandle(dst []byte, c Candle) {
	_ = dst[CandleSize-1]
	binary.LittleEndian.PutUint32(dst[0:4], c.Open)
	binary.LittleEndian.PutUint16(dst[4:6], c.HighD)
	binary.LittleEndian.PutUint16(dst[6:8], c.LowD)
	binary.LittleEndian.PutUint16(dst[8:10], uint16(c.CloseD))
	binary.LittleEndian.PutUint16(dst[10:12], c.Volume)
}
