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

// Package stableswap implements, in exact integers, the same StableSwap
// invariant solver the on-chain hybrid AMM program runs. Every entry point
// here is a pure function: no I/O, no shared state, safe to call
// concurrently from any number of goroutines without synchronization. All
// arithmetic that can exceed 64 bits — every D*D, Y*Y, and D*precision term
// the algorithm touches — is carried out in 256-bit words so intermediate
// products never silently wrap.
package stableswap

import (
	"github.com/ampswap/ammswap-go/ammerr"
	"github.com/ampswap/ammswap-go/constants"
	"github.com/holiman/uint256"
)

// CalcD computes the StableSwap invariant D for a two-token pool with
// balances x, y and amplification coefficient amp. Returns D = 0,
// successfully, if either balance is zero (an empty pool has no invariant
// to speak of). Fails with ZeroAmp if amp resolves to a zero ann term, with
// ZeroDenom if an iteration step produces a zero denominator, and with
// FailedToConverge if the Newton loop exhausts its iteration cap.
func CalcD(x, y, amp uint64) (uint64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}

	xw := uint256.NewInt(x)
	yw := uint256.NewInt(y)
	s := new(uint256.Int).Add(xw, yw)

	ann := new(uint256.Int).Mul(uint256.NewInt(amp), uint256.NewInt(4))
	if ann.IsZero() {
		return 0, ammerr.New(ammerr.ZeroAmp, "amp=%d", amp)
	}

	x2 := new(uint256.Int).Mul(xw, uint256.NewInt(2))
	y2 := new(uint256.Int).Mul(yw, uint256.NewInt(2))
	one := uint256.NewInt(1)
	two := uint256.NewInt(2)
	three := uint256.NewInt(3)
	annMinus1 := new(uint256.Int).Sub(ann, one)

	d := new(uint256.Int).Set(s)
	for i := 0; i < constants.NewtonIterationCap; i++ {
		// d_p = ((D*D)/(x*2)) * D / (y*2); the parenthesization is load
		// bearing — it is not algebraically equivalent to D^3/(4xy) once
		// every division truncates.
		dp := new(uint256.Int).Mul(d, d)
		dp.Div(dp, x2)
		dp.Mul(dp, d)
		dp.Div(dp, y2)

		num := new(uint256.Int).Mul(s, ann)
		num.Add(num, new(uint256.Int).Mul(dp, two))
		num.Mul(num, d)

		denom := new(uint256.Int).Mul(annMinus1, d)
		denom.Add(denom, new(uint256.Int).Mul(dp, three))

		if denom.IsZero() {
			return 0, ammerr.New(ammerr.ZeroDenom, "iteration=%d", i)
		}

		dNew := new(uint256.Int).Div(num, denom)
		if absDiffU256(dNew, d).Cmp(one) <= 0 {
			return dNew.Uint64(), nil
		}
		d = dNew
	}
	return 0, ammerr.New(ammerr.FailedToConverge, "calc_d amp=%d x=%d y=%d", amp, x, y)
}

// CalcY solves for the new balance of the output token given the new
// balance of the input token, the invariant D, and amp, holding D fixed.
// Fails with ZeroAmp, ZeroDenom, or FailedToConverge on the same conditions
// as CalcD.
func CalcY(xNew, d, amp uint64) (uint64, error) {
	ann := new(uint256.Int).Mul(uint256.NewInt(amp), uint256.NewInt(4))
	if ann.IsZero() {
		return 0, ammerr.New(ammerr.ZeroAmp, "amp=%d", amp)
	}

	dw := uint256.NewInt(d)
	xw := uint256.NewInt(xNew)
	two := uint256.NewInt(2)
	one := uint256.NewInt(1)

	c := new(uint256.Int).Mul(dw, dw)
	c.Div(c, new(uint256.Int).Mul(xw, two))
	c.Mul(c, dw)
	c.Div(c, new(uint256.Int).Mul(ann, two))

	b := new(uint256.Int).Add(xw, new(uint256.Int).Div(dw, ann))

	y := new(uint256.Int).Set(dw)
	for i := 0; i < constants.NewtonIterationCap; i++ {
		denom := new(uint256.Int).Mul(y, two)
		denom.Add(denom, b)
		denom.Sub(denom, dw)
		if denom.IsZero() {
			return 0, ammerr.New(ammerr.ZeroDenom, "iteration=%d", i)
		}

		num := new(uint256.Int).Mul(y, y)
		num.Add(num, c)
		yNew := new(uint256.Int).Div(num, denom)

		if absDiffU256(yNew, y).Cmp(one) <= 0 {
			return yNew.Uint64(), nil
		}
		y = yNew
	}
	return 0, ammerr.New(ammerr.FailedToConverge, "calc_y amp=%d d=%d xNew=%d", amp, d, xNew)
}
