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
	"encoding/binary"

	"github.com/ampswap/ammswap-go/constants"
)

// GovernanceDescriptionSize is the fixed width of a governance proposal's
// description field: right-padded with NUL, truncated on overlong input.
const GovernanceDescriptionSize = 64

func discriminatorOrPanic(name string) [8]byte {
	d, ok := constants.InstructionDiscriminator(name)
	if !ok {
		panic("codec: unknown instruction discriminator " + name)
	}
	return d
}

// CreatePoolArgs builds the 17-byte create_pool payload.
type CreatePoolArgs struct {
	Amp  uint64
	Bump uint8
}

// BuildCreatePool serializes CreatePoolArgs: discriminator, amp, bump.
func BuildCreatePool(a CreatePoolArgs) []byte {
	d := discriminatorOrPanic("create_pool")
	out := make([]byte, 17)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.Amp)
	out[16] = a.Bump
	return out
}

// SwapArgs builds the 24-byte simple two-token swap payload, used for both
// swap_t0_t1 and swap_t1_t0 (direction is selected by which instruction
// name's discriminator is used, not by a payload field).
type SwapArgs struct {
	AmountIn uint64
	MinOut   uint64
}

// BuildSwapT0T1 serializes SwapArgs under the swap_t0_t1 discriminator.
func BuildSwapT0T1(a SwapArgs) []byte {
	return buildSwap("swap_t0_t1", a)
}

// BuildSwapT1T0 serializes SwapArgs under the swap_t1_t0 discriminator.
func BuildSwapT1T0(a SwapArgs) []byte {
	return buildSwap("swap_t1_t0", a)
}

func buildSwap(name string, a SwapArgs) []byte {
	d := discriminatorOrPanic(name)
	out := make([]byte, 24)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.AmountIn)
	binary.LittleEndian.PutUint64(out[16:24], a.MinOut)
	return out
}

// SwapIndexedArgs builds the 34-byte N-token indexed swap payload.
type SwapIndexedArgs struct {
	FromIndex uint8
	ToIndex   uint8
	AmountIn  uint64
	MinOut    uint64
	Deadline  int64
}

// BuildSwapIndexed serializes SwapIndexedArgs.
func BuildSwapIndexed(a SwapIndexedArgs) []byte {
	d := discriminatorOrPanic("swap_indexed")
	out := make([]byte, 34)
	copy(out[0:8], d[:])
	out[8] = a.FromIndex
	out[9] = a.ToIndex
	binary.LittleEndian.PutUint64(out[10:18], a.AmountIn)
	binary.LittleEndian.PutUint64(out[18:26], a.MinOut)
	binary.LittleEndian.PutUint64(out[26:34], uint64(a.Deadline))
	return out
}

// AddLiquidityBalancedArgs builds the 32-byte balanced two-token deposit
// payload.
type AddLiquidityBalancedArgs struct {
	Amount0 uint64
	Amount1 uint64
	MinLP   uint64
}

// BuildAddLiquidityBalanced serializes AddLiquidityBalancedArgs.
func BuildAddLiquidityBalanced(a AddLiquidityBalancedArgs) []byte {
	d := discriminatorOrPanic("add_liquidity_balanced")
	out := make([]byte, 32)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.Amount0)
	binary.LittleEndian.PutUint64(out[16:24], a.Amount1)
	binary.LittleEndian.PutUint64(out[24:32], a.MinLP)
	return out
}

// AddLiquiditySingleArgs builds the 25-byte single-sided deposit payload.
type AddLiquiditySingleArgs struct {
	TokenIndex uint8
	Amount     uint64
	MinLP      uint64
}

// BuildAddLiquiditySingle serializes AddLiquiditySingleArgs.
func BuildAddLiquiditySingle(a AddLiquiditySingleArgs) []byte {
	d := discriminatorOrPanic("add_liquidity_single")
	out := make([]byte, 25)
	copy(out[0:8], d[:])
	out[8] = a.TokenIndex
	binary.LittleEndian.PutUint64(out[9:17], a.Amount)
	binary.LittleEndian.PutUint64(out[17:25], a.MinLP)
	return out
}

// RemoveLiquidityBalancedArgs builds the 32-byte balanced withdrawal
// payload.
type RemoveLiquidityBalancedArgs struct {
	LPAmount    uint64
	MinAmount0  uint64
	MinAmount1  uint64
}

// BuildRemoveLiquidityBalanced serializes RemoveLiquidityBalancedArgs.
func BuildRemoveLiquidityBalanced(a RemoveLiquidityBalancedArgs) []byte {
	d := discriminatorOrPanic("remove_liquidity_balanced")
	out := make([]byte, 32)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.LPAmount)
	binary.LittleEndian.PutUint64(out[16:24], a.MinAmount0)
	binary.LittleEndian.PutUint64(out[24:32], a.MinAmount1)
	return out
}

// SetPauseArgs builds the 9-byte pause-toggle payload.
type SetPauseArgs struct {
	Paused bool
}

// BuildSetPause serializes SetPauseArgs.
func BuildSetPause(a SetPauseArgs) []byte {
	d := discriminatorOrPanic("set_pause")
	out := make([]byte, 9)
	copy(out[0:8], d[:])
	if a.Paused {
		out[8] = 1
	}
	return out
}

// CreateFarmArgs builds the 25-byte create_farm payload.
type CreateFarmArgs struct {
	RewardRate uint64
	Duration   uint64
	Bump       uint8
}

// BuildCreateFarm serializes CreateFarmArgs.
func BuildCreateFarm(a CreateFarmArgs) []byte {
	d := discriminatorOrPanic("create_farm")
	out := make([]byte, 25)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.RewardRate)
	binary.LittleEndian.PutUint64(out[16:24], a.Duration)
	out[24] = a.Bump
	return out
}

// StakeArgs builds the 16-byte stake payload.
type StakeArgs struct {
	Amount uint64
}

// BuildStake serializes StakeArgs.
func BuildStake(a StakeArgs) []byte {
	d := discriminatorOrPanic("stake")
	out := make([]byte, 16)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.Amount)
	return out
}

// LockArgs builds the 24-byte lock payload.
type LockArgs struct {
	Amount       uint64
	LockDuration uint64
}

// BuildLock serializes LockArgs.
func BuildLock(a LockArgs) []byte {
	d := discriminatorOrPanic("lock")
	out := make([]byte, 24)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.Amount)
	binary.LittleEndian.PutUint64(out[16:24], a.LockDuration)
	return out
}

// CreateLotteryArgs builds the 25-byte create_lottery payload.
type CreateLotteryArgs struct {
	TicketPrice uint64
	DrawSlot    uint64
	Bump        uint8
}

// BuildCreateLottery serializes CreateLotteryArgs.
func BuildCreateLottery(a CreateLotteryArgs) []byte {
	d := discriminatorOrPanic("create_lottery")
	out := make([]byte, 25)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.TicketPrice)
	binary.LittleEndian.PutUint64(out[16:24], a.DrawSlot)
	out[24] = a.Bump
	return out
}

// EnterLotteryArgs builds the 12-byte enter_lottery payload.
type EnterLotteryArgs struct {
	NumTickets uint32
}

// BuildEnterLottery serializes EnterLotteryArgs.
func BuildEnterLottery(a EnterLotteryArgs) []byte {
	d := discriminatorOrPanic("enter_lottery")
	out := make([]byte, 12)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint32(out[8:12], a.NumTickets)
	return out
}

// DrawLotteryArgs builds the 40-byte draw_lottery payload.
type DrawLotteryArgs struct {
	Randomness [32]byte
}

// BuildDrawLottery serializes DrawLotteryArgs.
func BuildDrawLottery(a DrawLotteryArgs) []byte {
	d := discriminatorOrPanic("draw_lottery")
	out := make([]byte, 40)
	copy(out[0:8], d[:])
	copy(out[8:40], a.Randomness[:])
	return out
}

// UpdateFeeArgs builds the 10-byte update_fee payload.
type UpdateFeeArgs struct {
	NewFeeBps uint16
}

// BuildUpdateFee serializes UpdateFeeArgs.
func BuildUpdateFee(a UpdateFeeArgs) []byte {
	d := discriminatorOrPanic("update_fee")
	out := make([]byte, 10)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint16(out[8:10], a.NewFeeBps)
	return out
}

// CommitAmpArgs builds the 24-byte commit_amp payload.
type CommitAmpArgs struct {
	TargetAmp uint64
	RampStop  int64
}

// BuildCommitAmp serializes CommitAmpArgs.
func BuildCommitAmp(a CommitAmpArgs) []byte {
	d := discriminatorOrPanic("commit_amp")
	out := make([]byte, 24)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.TargetAmp)
	binary.LittleEndian.PutUint64(out[16:24], uint64(a.RampStop))
	return out
}

// RampAmpArgs builds the 24-byte ramp_amp payload.
type RampAmpArgs struct {
	TargetAmp uint64
	Duration  uint64
}

// BuildRampAmp serializes RampAmpArgs.
func BuildRampAmp(a RampAmpArgs) []byte {
	d := discriminatorOrPanic("ramp_amp")
	out := make([]byte, 24)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.TargetAmp)
	binary.LittleEndian.PutUint64(out[16:24], a.Duration)
	return out
}

// GovernanceProposeArgs builds the governance_propose payload. Description
// longer than GovernanceDescriptionSize is truncated; shorter is
// right-padded with NUL.
type GovernanceProposeArgs struct {
	ProposalID  uint64
	Description string
	ActionTag   uint8
}

// BuildGovernancePropose serializes GovernanceProposeArgs.
func BuildGovernancePropose(a GovernanceProposeArgs) []byte {
	d := discriminatorOrPanic("governance_propose")
	out := make([]byte, 8+8+GovernanceDescriptionSize+1)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.ProposalID)
	desc := []byte(a.Description)
	if len(desc) > GovernanceDescriptionSize {
		desc = desc[:GovernanceDescriptionSize]
	}
	copy(out[16:16+GovernanceDescriptionSize], desc)
	out[16+GovernanceDescriptionSize] = a.ActionTag
	return out
}

// GovernanceVoteArgs builds the 17-byte governance_vote payload.
type GovernanceVoteArgs struct {
	ProposalID uint64
	Support    bool
}

// BuildGovernanceVote serializes GovernanceVoteArgs.
func BuildGovernanceVote(a GovernanceVoteArgs) []byte {
	d := discriminatorOrPanic("governance_vote")
	out := make([]byte, 17)
	copy(out[0:8], d[:])
	binary.LittleEndian.PutUint64(out[8:16], a.ProposalID)
	if a.Support {
		out[16] = 1
	}
	return out
}
