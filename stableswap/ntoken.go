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
	"github.com/ampswap/ammswap-go/ammerr"
	"github.com/ampswap/ammswap-go/constants"
	"github.com/holiman/uint256"
)

// CalcDN is the N-token generalization of CalcD. len(balances) must be in
// [2, constants.MaxTokens]. As in the two-token case, if any balance is
// zero the invariant is defined to be zero.
func CalcDN(balances []uint64, amp uint64) (uint64, error) {
	n := len(balances)
	if n < 2 || n > constants.MaxTokens {
		return 0, ammerr.New(ammerr.ZeroInput, "token count %d out of [2,%d]", n, constants.MaxTokens)
	}
	for _, b := range balances {
		if b == 0 {
			return 0, nil
		}
	}

	sum := new(uint256.Int)
	for _, b := range balances {
		sum.Add(sum, uint256.NewInt(b))
	}

	nBig := uint256.NewInt(uint64(n))
	ann := new(uint256.Int).Mul(uint256.NewInt(amp), nPowN(n))
	if ann.IsZero() {
		return 0, ammerr.New(ammerr.ZeroAmp, "amp=%d", amp)
	}

	one := uint256.NewInt(1)
	nPlus1 := new(uint256.Int).Add(nBig, one)
	annMinus1 := new(uint256.Int).Sub(ann, one)

	d := new(uint256.Int).Set(sum)
	for i := 0; i < constants.NewtonIterationCap; i++ {
		dP := new(uint256.Int).Set(d)
		for _, b := range balances {
			dP.Mul(dP, d)
			dP.Div(dP, new(uint256.Int).Mul(uint256.NewInt(b), nBig))
		}

		num := new(uint256.Int).Mul(ann, sum)
		num.Add(num, new(uint256.Int).Mul(dP, nBig))
		num.Mul(num, d)

		denom := new(uint256.Int).Mul(annMinus1, d)
		denom.Add(denom, new(uint256.Int).Mul(nPlus1, dP))

		if denom.IsZero() {
			return 0, ammerr.New(ammerr.ZeroDenom, "iteration=%d", i)
		}

		dNew := new(uint256.Int).Div(num, denom)
		if absDiffU256(dNew, d).Cmp(one) <= 0 {
			return dNew.Uint64(), nil
		}
		d = dNew
	}
	return 0, ammerr.New(ammerr.FailedToConverge, "calc_d_n amp=%d n=%d", amp, n)
}

// calcYN solves for the new balance of balances[outIndex], holding D and
// every other balance fixed. It is the N-token generalization of CalcY,
// reducing to it exactly when n=2.
func calcYN(balances []uint64, outIndex int, d, amp uint64) (uint64, error) {
	n := len(balances)
	nBig := uint256.NewInt(uint64(n))
	ann := new(uint256.Int).Mul(uint256.NewInt(amp), nPowN(n))
	if ann.IsZero() {
		return 0, ammerr.New(ammerr.ZeroAmp, "amp=%d", amp)
	}

	dw := uint256.NewInt(d)
	s := new(uint256.Int)
	c := new(uint256.Int).Set(dw)
	for i, b := range balances {
		if i == outIndex {
			continue
		}
		bw := uint256.NewInt(b)
		s.Add(s, bw)
		c.Mul(c, dw)
		c.Div(c, new(uint256.Int).Mul(bw, nBig))
	}
	c.Mul(c, dw)
	c.Div(c, new(uint256.Int).Mul(ann, nBig))

	b := new(uint256.Int).Add(s, new(uint256.Int).Div(dw, ann))

	two := uint256.NewInt(2)
	one := uint256.NewInt(1)
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
	return 0, ammerr.New(ammerr.FailedToConverge, "calc_y_n amp=%d n=%d", amp, n)
}

// SimulateSwapN is the N-token generalization of SimulateSwap: it updates
// the input slot, recomputes the output slot by the Newton loop on the
// N-token polynomial, then applies the same post-fee rule as the two-token
// case.
func SimulateSwapN(balances []uint64, from, to int, amountIn, amp, feeBps uint64) (uint64, error) {
	n := len(balances)
	if from < 0 || to < 0 || from >= n || to >= n || from == to {
		return 0, ammerr.New(ammerr.ZeroInput, "invalid token indices from=%d to=%d n=%d", from, to, n)
	}

	d, err := CalcDN(balances, amp)
	if err != nil {
		return 0, err
	}

	updated := make([]uint64, n)
	copy(updated, balances)
	updated[from] += amountIn

	newOutBal, err := calcYN(updated, to, d, amp)
	if err != nil {
		return 0, err
	}
	if newOutBal > balances[to] {
		newOutBal = balances[to]
	}
	gross := balances[to] - newOutBal

	feeW := new(uint256.Int).Mul(uint256.NewInt(gross), uint256.NewInt(feeBps))
	feeW.Div(feeW, uint256.NewInt(constants.FeeDenominatorBps))
	return gross - feeW.Uint64(), nil
}
