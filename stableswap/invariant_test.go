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

package stableswap_test

import (
	"testing"

	"github.com/ampswap/ammswap-go/ammerr"
	"github.com/ampswap/ammswap-go/stableswap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcDBalancedPoolCollapsesToSum(t *testing.T) {
	d, err := stableswap.CalcD(1_000_000_000, 1_000_000_000, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_000_000_000), d)
}

func TestCalcDZeroBalanceReturnsZero(t *testing.T) {
	d, err := stableswap.CalcD(0, 1_000_000, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), d)

	d, err = stableswap.CalcD(1_000_000, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), d)
}

func TestCalcDZeroAmp(t *testing.T) {
	_, err := stableswap.CalcD(1_000_000, 1_000_000, 0)
	require.Error(t, err)
	assert.True(t, ammerr.Is(err, ammerr.ZeroAmp))
}

func TestCalcDDeterministic(t *testing.T) {
	d1, err := stableswap.CalcD(123_456_789, 987_654_321, 5_000)
	require.NoError(t, err)
	d2, err := stableswap.CalcD(123_456_789, 987_654_321, 5_000)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestCalcDConvergesAcrossAmpRange(t *testing.T) {
	balances := []uint64{1_000_000, 10_000_000, 5_000_000_000}
	amps := []uint64{1, 100, 5_000, 100_000}
	for _, x := range balances {
		for _, y := range balances {
			for _, amp := range amps {
				_, err := stableswap.CalcD(x, y, amp)
				require.NoErrorf(t, err, "calc_d(%d, %d, %d)", x, y, amp)
			}
		}
	}
}

func TestCalcYInversesCalcD(t *testing.T) {
	const x, y, amp = 1_000_000_000, 1_000_000_000, 100
	d, err := stableswap.CalcD(x, y, amp)
	require.NoError(t, err)

	// Feeding x back in should reproduce y (within the 1-unit convergence
	// tolerance the spec allows).
	got, err := stableswap.CalcY(x, d, amp)
	require.NoError(t, err)
	assert.InDelta(t, float64(y), float64(got), 1)
}

func TestCalcYZeroAmp(t *testing.T) {
	_, err := stableswap.CalcY(1_000_000, 2_000_000, 0)
	require.Error(t, err)
	assert.True(t, ammerr.Is(err, ammerr.ZeroAmp))
}

func TestInvariantPreservedAcrossZeroFeeSwap(t *testing.T) {
	const amp = 200
	const balIn, balOut = uint64(5_000_000_000), uint64(5_000_000_000)
	d0, err := stableswap.CalcD(balIn, balOut, amp)
	require.NoError(t, err)

	const amountIn = 50_000_000
	newOut, err := stableswap.CalcY(balIn+amountIn, d0, amp)
	require.NoError(t, err)

	d1, err := stableswap.CalcD(balIn+amountIn, newOut, amp)
	require.NoError(t, err)
	assert.InDelta(t, float64(d0), float64(d1), 1)
}
