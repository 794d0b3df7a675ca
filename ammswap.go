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

// Package ammswap is a flat facade over the constants, codec, stableswap,
// and address packages: the handful of entry points a caller reaches for
// most often, re-exported so simple integrations need only this import.
// Deeper functionality — N-token simulation, the full account codec, the
// labelled PDA helpers — lives in the underlying packages directly.
package ammswap

import (
	"github.com/ampswap/ammswap-go/address"
	"github.com/ampswap/ammswap-go/codec"
	"github.com/ampswap/ammswap-go/constants"
	"github.com/ampswap/ammswap-go/stableswap"
)

// Re-exported protocol constants.
const (
	ProgramIDBase58 = constants.ProgramIDBase58
	MinAmp          = constants.MinAmp
	MaxAmp          = constants.MaxAmp
	DefaultFeeBps   = constants.DefaultFeeBps
)

// Re-exported account and result types.
type (
	Pool   = codec.Pool
	NPool  = codec.NPool
	Candle = codec.Candle
	TWAP   = codec.TWAP

	SwapResult = stableswap.SwapResult
)

// ParsePool decodes a raw pool account blob. See codec.ParsePool.
func ParsePool(data []byte) (*Pool, error) { return codec.ParsePool(data) }

// ParseNPool decodes a raw N-token pool account blob. See codec.ParseNPool.
func ParseNPool(data []byte) (*NPool, error) { return codec.ParseNPool(data) }

// SimulateSwap quotes a two-token StableSwap trade. See stableswap.SimulateSwap.
func SimulateSwap(balIn, balOut, amountIn, amp, feeBps uint64) (uint64, error) {
	return stableswap.SimulateSwap(balIn, balOut, amountIn, amp, feeBps)
}

// SimulateSwapDetailed quotes a two-token trade with fee and price-impact
// breakdown. See stableswap.SimulateSwapDetailed.
func SimulateSwapDetailed(balIn, balOut, amountIn, amp, feeBps uint64) (SwapResult, error) {
	return stableswap.SimulateSwapDetailed(balIn, balOut, amountIn, amp, feeBps)
}

// DerivePool finds the PDA for a pool account. See address.DerivePool.
func DerivePool(mint0, mint1, programID [32]byte) ([32]byte, uint8, error) {
	return address.DerivePool(mint0, mint1, programID)
}

// DefaultProgramID decodes the canonical program identifier's base-58 text
// into its raw 32-byte form.
func DefaultProgramID() ([32]byte, error) {
	return DecodePubkey(ProgramIDBase58)
}
