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

package ammswap

import "testing"

func TestSimulateSwapFacadeMatchesUnderlyingPackage(t *testing.T) {
	out, err := SimulateSwap(1_000_000_000, 1_000_000_000, 100_000_000, 100, 30)
	if err != nil {
		t.Fatalf("SimulateSwap: %v", err)
	}
	if out == 0 {
		t.Fatalf("SimulateSwap returned 0")
	}
}

func TestDefaultProgramIDRoundTrips(t *testing.T) {
	id, err := DefaultProgramID()
	if err != nil {
		t.Fatalf("DefaultProgramID: %v", err)
	}
	if EncodePubkey(id) != ProgramIDBase58 {
		t.Fatalf("EncodePubkey(DefaultProgramID()) = %s, want %s", EncodePubkey(id), ProgramIDBase58)
	}
}

func TestDerivePoolFacade(t *testing.T) {
	programID, err := DefaultProgramID()
	if err != nil {
		t.Fatalf("DefaultProgramID: %v", err)
	}
	var mint0, mint1 [32]byte
	mint0[0] = 1
	mint1[0] = 2
	if _, _, err := DerivePool(mint0, mint1, programID); err != nil {
		t.Fatalf("DerivePool: %v", err)
	}
}
