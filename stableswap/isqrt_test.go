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

	"github.com/ampswap/ammswap-go/stableswap"
	"github.com/stretchr/testify/assert"
)

func TestIsqrtKnownValues(t *testing.T) {
	cases := []struct {
		n, want uint64
	}{
		{0, 0},
		{1, 1},
		{15, 3},
		{16, 4},
		{1_000_000_000_000_000_000, 1_000_000_000},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, stableswap.Isqrt(c.n), "isqrt(%d)", c.n)
	}
}

func TestIsqrtMonotonic(t *testing.T) {
	prev := uint64(0)
	for n := uint64(0); n <= 10_000; n++ {
		got := stableswap.Isqrt(n)
		assert.GreaterOrEqualf(t, got, prev, "n=%d", n)
		assert.LessOrEqualf(t, got*got, n, "n=%d", n)
		prev = got
	}
}
