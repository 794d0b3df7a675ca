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

package stableswap

import (
	"github.com/ampswap/ammswap-go/constants"
	"github.com/holiman/uint256"
)

// SwapResult is the detailed outcome of a simulated swap, used when the
// caller wants the fee and the naive-spot price impact alongside the
// output amount.
type SwapResult struct {
	AmountOut   uint64
	Fee         uint64
	PriceImpact float64
}

// SimulateSwap computes the amount of the output token a swap would
// produce, net of the pool fee, by recomputing the invariant and solving
// for the new output balance. feeBps is out of FeeDenominatorBps (10,000).
func SimulateSwap(balIn, balOut, amountIn, amp, feeBps uint64) (uint64, error) {
	out, _, err := simulateSwapCore(balIn, balOut, amountIn, amp, feeBps)
	return out, err
}

// SimulateSwapDetailed is SimulateSwap plus the fee actually charged and
// the price impact relative to the naive spot quote amountIn*balOut/balIn.
// PriceImpact is a display-only floating-point ratio and must not be used
// on any path that needs to agree with the on-chain program bit-for-bit.
func SimulateSwapDetailed(balIn, balOut, amountIn, amp, feeBps uint64) (SwapResult, error) {
	out, fee, err := simulateSwapCore(balIn, balOut, amountIn, amp, feeBps)
	if err != nil {
		return SwapResult{}, err
	}
	return SwapResult{
		AmountOut:   out,
		Fee:         fee,
		PriceImpact: CalcPriceImpact(amountIn, out, balIn, balOut),
	}, nil
}

func simulateSwapCore(balIn, balOut, amountIn, amp, feeBps uint64) (amountOut, fee uint64, err error) {
	d, err := CalcD(balIn, balOut, amp)
	if err != nil {
		return 0, 0, err
	}
	y, err := CalcY(balIn+amountIn, d, amp)
	if err != nil {
		return 0, 0, err
	}
	if y > balOut {
		// The invariant solver found a new output balance above the old
		// one; nothing to pay out.
		y = balOut
	}
	gross := balOut - y

	feeW := new(uint256.Int).Mul(uint256.NewInt(gross), uint256.NewInt(feeBps))
	feeW.Div(feeW, uint256.NewInt(constants.FeeDenominatorBps))
	fee = feeW.Uint64()

	return gross - fee, fee, nil
}

// CalcSpotPrice returns the naive instantaneous price of the input token in
// units of the output token (balOut/balIn). Display-only: it ignores the
// StableSwap curvature and must never be used to compute an actual swap
// output or a slippage bound.
func CalcSpotPrice(balIn, balOut uint64) float64 {
	if balIn == 0 {
		return 0
	}
	return float64(balOut) / float64(balIn)
}

// CalcPriceImpact returns (expectedOut - amountOut) / expectedOut, where
// expectedOut is the naive spot quote amountIn*balOut/balIn. Returns 0 if
// expectedOut is 0. Display-only, per the same rule as CalcSpotPrice.
func CalcPriceImpact(amountIn, amountOut, balIn, balOut uint64) float64 {
	if balIn == 0 {
		return 0
	}
	expectedW := new(uint256.Int).Mul(uint256.NewInt(amountIn), uint256.NewInt(balOut))
	expectedW.Div(expectedW, uint256.NewInt(balIn))
	expected := expectedW.Uint64()
	if expected == 0 {
		return 0
	}
	return (float64(expected) - float64(amountOut)) / float64(expected)
}
