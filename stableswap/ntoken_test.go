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

func TestCalcDNMatchesCalcDForTwoTokens(t *testing.T) {
	dn, err := stableswap.CalcDN([]uint64{123_456_789, 987_654_321}, 5_000)
	require.NoError(t, err)
	d2, err := stableswap.CalcD(123_456_789, 987_654_321, 5_000)
	require.NoError(t, err)
	assert.Equal(t, d2, dn)
}

func TestCalcDNBalancedPoolCollapsesToSum(t *testing.T) {
	dn, err := stableswap.CalcDN([]uint64{1_000_000, 1_000_000, 1_000_000}, 200)
	require.NoError(t, err)
	assert.Equal(t, uint64(3_000_000), dn)
}

func TestCalcDNZeroBalance(t *testing.T) {
	dn, err := stableswap.CalcDN([]uint64{0, 1_000_000, 1_000_000}, 200)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), dn)
}

func TestCalcDNZeroAmp(t *testing.T) {
	_, err := stableswap.CalcDN([]uint64{1_000, 1_000, 1_000}, 0)
	require.Error(t, err)
	assert.True(t, ammerr.Is(err, ammerr.ZeroAmp))
}

func TestCalcDNRejectsTooFewTokens(t *testing.T) {
	_, err := stableswap.CalcDN([]uint64{1_000}, 100)
	require.Error(t, err)
	assert.True(t, ammerr.Is(err, ammerr.ZeroInput))
}

func TestSimulateSwapNMatchesSimulateSwapForTwoTokens(t *testing.T) {
	balances := []uint64{1_000_000_000, 1_000_000_000}
	outN, err := stableswap.SimulateSwapN(balances, 0, 1, 10_000_000, 100, 30)
	require.NoError(t, err)
	out2, err := stableswap.SimulateSwap(balances[0], balances[1], 10_000_000, 100, 30)
	require.NoError(t, err)
	assert.Equal(t, out2, outN)
}

func TestSimulateSwapNThreeTokenConservesInvariant(t *testing.T) {
	balances := []uint64{1_000_000_000, 1_000_000_000, 1_000_000_000}
	const amp = 200
	d0, err := stableswap.CalcDN(balances, amp)
	require.NoError(t, err)

	out, err := stableswap.SimulateSwapN(balances, 0, 2, 50_000_000, amp, 0)
	require.NoError(t, err)
	assert.Greater(t, out, uint64(0))

	updated := []uint64{balances[0] + 50_000_000, balances[1], balances[2] - out}
	d1, err := stableswap.CalcDN(updated, amp)
	require.NoError(t, err)
	assert.InDelta(t, float64(d0), float64(d1), 1)
}

func TestSimulateSwapNRejectsInvalidIndices(t *testing.T) {
	balances := []uint64{1_000, 1_000}
	_, err := stableswap.SimulateSwapN(balances, 0, 0, 10, 100, 30)
	require.Error(t, err)
	assert.True(t, ammerr.Is(err, ammerr.ZeroInput))

	_, err = stableswap.SimulateSwapN(balances, 0, 5, 10, 100, 30)
	require.Error(t, err)
	assert.True(t, ammerr.Is(err, ammerr.ZeroInput))
}
