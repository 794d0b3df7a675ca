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
	"github.com/holiman/uint256"
)

// FirstDepositLP returns the LP token amount minted for the very first
// deposit into an empty pool: isqrt(amt0 * amt1).
func FirstDepositLP(amt0, amt1 uint64) uint64 {
	prod := new(uint256.Int).Mul(uint256.NewInt(amt0), uint256.NewInt(amt1))
	return isqrtU256(prod).Uint64()
}

// DepositLP returns the LP tokens minted for a deposit into a pool that
// already holds liquidity. It recomputes the invariant before and after
// the deposit and mints proportionally to the invariant's growth:
// lp = lpSupply * (D1 - D0) / D0. Fails with ZeroInvariant if D0 is zero.
func DepositLP(bal0, bal1, amt0, amt1, amp, lpSupply uint64) (uint64, error) {
	d0, err := CalcD(bal0, bal1, amp)
	if err != nil {
		return 0, err
	}
	d1, err := CalcD(bal0+amt0, bal1+amt1, amp)
	if err != nil {
		return 0, err
	}
	if d0 == 0 {
		return 0, ammerr.New(ammerr.ZeroInvariant, "d0=0")
	}

	// D is monotonically non-decreasing in the pool balances for a fixed
	// amp, so a genuine deposit (amt0, amt1 >= 0) always has D1 >= D0.
	diff := new(uint256.Int).Sub(uint256.NewInt(d1), uint256.NewInt(d0))
	lp := new(uint256.Int).Mul(uint256.NewInt(lpSupply), diff)
	lp.Div(lp, uint256.NewInt(d0))
	return lp.Uint64(), nil
}

// WithdrawAmounts returns the proportional share of each balance an LP
// token amount redeems: amount_i = bal_i * lpAmount / lpSupply. Fails with
// ZeroSupply when lpSupply is zero.
func WithdrawAmounts(bal0, bal1, lpAmount, lpSupply uint64) (amt0, amt1 uint64, err error) {
	if lpSupply == 0 {
		return 0, 0, ammerr.New(ammerr.ZeroSupply, "lp_supply=0")
	}
	a0 := new(uint256.Int).Mul(uint256.NewInt(bal0), uint256.NewInt(lpAmount))
	a0.Div(a0, uint256.NewInt(lpSupply))
	a1 := new(uint256.Int).Mul(uint256.NewInt(bal1), uint256.NewInt(lpAmount))
	a1.Div(a1, uint256.NewInt(lpSupply))
	return a0.Uint64(), a1.Uint64(), nil
}

// WithdrawAmountsN is the N-token generalization of WithdrawAmounts.
func WithdrawAmountsN(balances []uint64, lpAmount, lpSupply uint64) ([]uint64, error) {
	if lpSupply == 0 {
		return nil, ammerr.New(ammerr.ZeroSupply, "lp_supply=0")
	}
	out := make([]uint64, len(balances))
	for i, bal := range balances {
		a := new(uint256.Int).Mul(uint256.NewInt(bal), uint256.NewInt(lpAmount))
		a.Div(a, uint256.NewInt(lpSupply))
		out[i] = a.Uint64()
	}
	return out, nil
}

// virtualPricePrecision is the 10^18 scaling factor applied to virtual
// price; it fits in a uint64 (max ~1.8e19) so no widening is needed to
// construct it, but the multiplication by D still requires 256-bit
// intermediates for large pools.
const virtualPricePrecision = 1_000_000_000_000_000_000

// VirtualPrice returns D * 10^18 / lpSupply as a 256-bit value: at typical
// pool sizes this exceeds 64 bits, so it is not truncated to a uint64.
// Fails with ZeroSupply when lpSupply is zero.
func VirtualPrice(d, lpSupply uint64) (*uint256.Int, error) {
	if lpSupply == 0 {
		return nil, ammerr.New(ammerr.ZeroSupply, "lp_supply=0")
	}
	vp := new(uint256.Int).Mul(uint256.NewInt(d), uint256.NewInt(virtualPricePrecision))
	vp.Div(vp, uint256.NewInt(lpSupply))
	return vp, nil
}
