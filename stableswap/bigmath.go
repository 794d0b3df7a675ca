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

import "github.com/holiman/uint256"

// absDiffU256 returns |a - b| without relying on signed arithmetic; uint256
// subtraction wraps on underflow, so the ordering must be checked first.
func absDiffU256(a, b *uint256.Int) *uint256.Int {
	if a.Cmp(b) >= 0 {
		return new(uint256.Int).Sub(a, b)
	}
	return new(uint256.Int).Sub(b, a)
}

// isqrtU256 returns floor(sqrt(n)) using the same Newton iteration the
// on-chain program uses: start from x = n, y = (x+1)/2, and repeatedly set
// x = y, y = (y + n/y)/2 while y < x. The loop terminates in O(log n) steps
// because y is monotonically non-increasing and bounded below by floor(sqrt(n)).
func isqrtU256(n *uint256.Int) *uint256.Int {
	if n.IsZero() {
		return new(uint256.Int)
	}
	two := uint256.NewInt(2)
	x := new(uint256.Int).Set(n)
	y := new(uint256.Int).Add(x, uint256.NewInt(1))
	y.Div(y, two)
	for y.Lt(x) {
		x.Set(y)
		t := new(uint256.Int).Div(n, x)
		y.Add(t, x)
		y.Div(y, two)
	}
	return x
}

// nPowN returns n^n as a uint256, used to generalize the ann = A*n^n term
// from the two-token case (n^n = 4) to the N-token case.
func nPowN(n int) *uint256.Int {
	r := uint256.NewInt(1)
	base := uint256.NewInt(uint64(n))
	for i := 0; i < n; i++ {
		r.Mul(r, base)
	}
	return r
}
