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

package address

import "encoding/binary"

func u64LE(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// DerivePool finds the PDA for a pool account from its two token mints.
func DerivePool(mint0, mint1, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("pool"), mint0[:], mint1[:]}, programID)
}

// DeriveVault finds the PDA for one of a pool's token vaults.
func DeriveVault(pool, mint, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("vault"), pool[:], mint[:]}, programID)
}

// DeriveLPMint finds the PDA for a pool's LP token mint.
func DeriveLPMint(pool, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("lp_mint"), pool[:]}, programID)
}

// DeriveFarm finds the PDA for a pool's yield-farm account.
func DeriveFarm(pool, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("farm"), pool[:]}, programID)
}

// DeriveUserFarm finds the PDA for a single staker's position in a farm.
func DeriveUserFarm(farm, user, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("user_farm"), farm[:], user[:]}, programID)
}

// DeriveLottery finds the PDA for a pool's lottery round.
func DeriveLottery(pool, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("lottery"), pool[:]}, programID)
}

// DeriveLotteryEntry finds the PDA for a single user's ticket entry.
func DeriveLotteryEntry(lottery, user, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("lottery_entry"), lottery[:], user[:]}, programID)
}

// DeriveRegistry finds the PDA for the global pool registry. It takes no
// pool-specific seeds: there is exactly one registry per program.
func DeriveRegistry(programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("registry")}, programID)
}

// DeriveMLBrain finds the PDA for a pool's ML-driven parameter controller.
func DeriveMLBrain(pool, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("ml_brain"), pool[:]}, programID)
}

// DeriveGovProposal finds the PDA for a governance proposal, keyed by a
// caller-chosen little-endian u64 id.
func DeriveGovProposal(pool [32]byte, id uint64, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("gov_proposal"), pool[:], u64LE(id)}, programID)
}

// DeriveGovVote finds the PDA for a single voter's ballot on a proposal.
func DeriveGovVote(proposal, voter, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("gov_vote"), proposal[:], voter[:]}, programID)
}

// DeriveCLPool finds the PDA for a pool's concentrated-liquidity companion
// pool.
func DeriveCLPool(pool, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("cl_pool"), pool[:]}, programID)
}

// DeriveCLPosition finds the PDA for a single concentrated-liquidity
// position, keyed by a caller-chosen little-endian u64 id.
func DeriveCLPosition(clPool [32]byte, id uint64, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("cl_position"), clPool[:], u64LE(id)}, programID)
}

// DeriveOrderbook finds the PDA for a pool's limit-order book.
func DeriveOrderbook(pool, programID [32]byte) ([32]byte, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("orderbook"), pool[:]}, programID)
}
