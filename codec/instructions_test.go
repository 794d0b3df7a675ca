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

package codec

import (
	"bytes"
	"testing"

	"github.com/ampswap/ammswap-go/constants"
)

func discBytes(t *testing.T, name string) []byte {
	t.Helper()
	d, ok := constants.InstructionDiscriminator(name)
	if !ok {
		t.Fatalf("no discriminator for %q", name)
	}
	return d[:]
}

// TestBuildSwapT0T1Golden pins scenario 5 from the codec contract: a simple
// swap's payload is exactly discriminator || amount_in(u64 LE) || min_out(u64 LE).
func TestBuildSwapT0T1Golden(t *testing.T) {
	got := BuildSwapT0T1(SwapArgs{AmountIn: 1000, MinOut: 990})
	want := append(discBytes(t, "swap_t0_t1"), []byte{
		0xE8, 0x03, 0, 0, 0, 0, 0, 0, // 1000 LE
		0xDE, 0x03, 0, 0, 0, 0, 0, 0, // 990 LE
	}...)
	if !bytes.Equal(got, want) {
		t.Fatalf("payload mismatch:\ngot  % x\nwant % x", got, want)
	}
	if len(got) != 24 {
		t.Fatalf("len(got) = %d, want 24", len(got))
	}
}

func TestInstructionPayloadLengths(t *testing.T) {
	cases := []struct {
		name string
		got  []byte
		want int
	}{
		{"create_pool", BuildCreatePool(CreatePoolArgs{}), 17},
		{"swap_t0_t1", BuildSwapT0T1(SwapArgs{}), 24},
		{"swap_t1_t0", BuildSwapT1T0(SwapArgs{}), 24},
		{"swap_indexed", BuildSwapIndexed(SwapIndexedArgs{}), 34},
		{"add_liquidity_balanced", BuildAddLiquidityBalanced(AddLiquidityBalancedArgs{}), 32},
		{"add_liquidity_single", BuildAddLiquiditySingle(AddLiquiditySingleArgs{}), 25},
		{"remove_liquidity_balanced", BuildRemoveLiquidityBalanced(RemoveLiquidityBalancedArgs{}), 32},
		{"set_pause", BuildSetPause(SetPauseArgs{}), 9},
		{"create_farm", BuildCreateFarm(CreateFarmArgs{}), 25},
		{"stake", BuildStake(StakeArgs{}), 16},
		{"lock", BuildLock(LockArgs{}), 24},
		{"create_lottery", BuildCreateLottery(CreateLotteryArgs{}), 25},
		{"enter_lottery", BuildEnterLottery(EnterLotteryArgs{}), 12},
		{"draw_lottery", BuildDrawLottery(DrawLotteryArgs{}), 40},
		{"update_fee", BuildUpdateFee(UpdateFeeArgs{}), 10},
		{"commit_amp", BuildCommitAmp(CommitAmpArgs{}), 24},
		{"ramp_amp", BuildRampAmp(RampAmpArgs{}), 24},
		{"governance_propose", BuildGovernancePropose(GovernanceProposeArgs{}), 8 + 8 + GovernanceDescriptionSize + 1},
		{"governance_vote", BuildGovernanceVote(GovernanceVoteArgs{}), 17},
	}
	for _, c := range cases {
		if len(c.got) != c.want {
			t.Errorf("%s: len = %d, want %d", c.name, len(c.got), c.want)
		}
		if !bytes.Equal(c.got[:8], discBytes(t, c.name)) {
			t.Errorf("%s: missing discriminator prefix", c.name)
		}
	}
}

func TestBuildGovernanceProposeTruncatesOverlongDescription(t *testing.T) {
	long := bytes.Repeat([]byte("x"), GovernanceDescriptionSize+50)
	got := BuildGovernancePropose(GovernanceProposeArgs{Description: string(long)})
	desc := got[16 : 16+GovernanceDescriptionSize]
	if !bytes.Equal(desc, long[:GovernanceDescriptionSize]) {
		t.Fatalf("description not truncated correctly")
	}
}

func TestBuildGovernanceProposePadsShortDescription(t *testing.T) {
	got := BuildGovernancePropose(GovernanceProposeArgs{Description: "hi"})
	desc := got[16 : 16+GovernanceDescriptionSize]
	if desc[0] != 'h' || desc[1] != 'i' {
		t.Fatalf("description prefix not preserved: % x", desc[:4])
	}
	for i := 2; i < GovernanceDescriptionSize; i++ {
		if desc[i] != 0 {
			t.Fatalf("byte %d = %#x, want NUL padding", i, desc[i])
		}
	}
}

func TestBuildSwapIndexedFieldOrder(t *testing.T) {
	got := BuildSwapIndexed(SwapIndexedArgs{FromIndex: 2, ToIndex: 5, AmountIn: 7, MinOut: 3, Deadline: -1})
	if got[8] != 2 || got[9] != 5 {
		t.Fatalf("index bytes = %d,%d, want 2,5", got[8], got[9])
	}
}
