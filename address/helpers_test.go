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

import "testing"

var (
	testMint0 = [32]byte{0xA0}
	testMint1 = [32]byte{0xB0}
	testUser  = [32]byte{0xC0}
)

func TestDerivePoolDeterministic(t *testing.T) {
	a, ba, err := DerivePool(testMint0, testMint1, testProgramID)
	if err != nil {
		t.Fatalf("DerivePool: %v", err)
	}
	b, bb, err := DerivePool(testMint0, testMint1, testProgramID)
	if err != nil {
		t.Fatalf("DerivePool: %v", err)
	}
	if a != b || ba != bb {
		t.Fatalf("DerivePool not deterministic")
	}
}

func TestLabelledHelpersProduceDistinctAddresses(t *testing.T) {
	pool, _, err := DerivePool(testMint0, testMint1, testProgramID)
	if err != nil {
		t.Fatalf("DerivePool: %v", err)
	}

	vault, _, err := DeriveVault(pool, testMint0, testProgramID)
	if err != nil {
		t.Fatalf("DeriveVault: %v", err)
	}
	lpMint, _, err := DeriveLPMint(pool, testProgramID)
	if err != nil {
		t.Fatalf("DeriveLPMint: %v", err)
	}
	farm, _, err := DeriveFarm(pool, testProgramID)
	if err != nil {
		t.Fatalf("DeriveFarm: %v", err)
	}

	seen := map[[32]byte]string{
		pool:   "pool",
		vault:  "vault",
		lpMint: "lp_mint",
	}
	if label, dup := seen[farm]; dup {
		t.Fatalf("farm address collides with %s", label)
	}
}

func TestDeriveGovProposalVariesByID(t *testing.T) {
	pool, _, err := DerivePool(testMint0, testMint1, testProgramID)
	if err != nil {
		t.Fatalf("DerivePool: %v", err)
	}
	a, _, err := DeriveGovProposal(pool, 1, testProgramID)
	if err != nil {
		t.Fatalf("DeriveGovProposal: %v", err)
	}
	b, _, err := DeriveGovProposal(pool, 2, testProgramID)
	if err != nil {
		t.Fatalf("DeriveGovProposal: %v", err)
	}
	if a == b {
		t.Fatalf("DeriveGovProposal(1) == DeriveGovProposal(2)")
	}
}

func TestDeriveRegistryIsProgramScoped(t *testing.T) {
	a, _, err := DeriveRegistry(testProgramID)
	if err != nil {
		t.Fatalf("DeriveRegistry: %v", err)
	}
	b, _, err := DeriveRegistry(testProgramID)
	if err != nil {
		t.Fatalf("DeriveRegistry: %v", err)
	}
	if a != b {
		t.Fatalf("DeriveRegistry not deterministic")
	}
}

func TestDeriveUserFarmAndLotteryEntry(t *testing.T) {
	pool, _, err := DerivePool(testMint0, testMint1, testProgramID)
	if err != nil {
		t.Fatalf("DerivePool: %v", err)
	}
	farm, _, err := DeriveFarm(pool, testProgramID)
	if err != nil {
		t.Fatalf("DeriveFarm: %v", err)
	}
	if _, _, err := DeriveUserFarm(farm, testUser, testProgramID); err != nil {
		t.Fatalf("DeriveUserFarm: %v", err)
	}

	lottery, _, err := DeriveLottery(pool, testProgramID)
	if err != nil {
		t.Fatalf("DeriveLottery: %v", err)
	}
	if _, _, err := DeriveLotteryEntry(lottery, testUser, testProgramID); err != nil {
		t.Fatalf("DeriveLotteryEntry: %v", err)
	}
}
