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

package constants_test

import (
	"testing"

	"github.com/ampswap/ammswap-go/constants"
)

func TestLookupAccountDiscriminatorKnown(t *testing.T) {
	d, ok := constants.LookupAccountDiscriminator("pool")
	if !ok {
		t.Fatal("expected pool discriminator to be found")
	}
	if d != constants.PoolDiscriminator || len(d) != 8 {
		t.Fatalf("unexpected pool discriminator: %q", d)
	}
}

func TestLookupAccountDiscriminatorUnknown(t *testing.T) {
	_, ok := constants.LookupAccountDiscriminator("does_not_exist")
	if ok {
		t.Fatal("expected unknown account kind to fail the lookup, not panic")
	}
}

func TestInstructionDiscriminatorRoundTripsLittleEndian(t *testing.T) {
	d, ok := constants.InstructionDiscriminator("swap_t0_t1")
	if !ok {
		t.Fatal("expected swap_t0_t1 discriminator to be found")
	}
	// Tag 6, little-endian.
	want := [8]byte{6, 0, 0, 0, 0, 0, 0, 0}
	if d != want {
		t.Fatalf("expected %v, got %v", want, d)
	}
}

func TestInstructionDiscriminatorUnknown(t *testing.T) {
	_, ok := constants.InstructionDiscriminator("not_a_real_instruction")
	if ok {
		t.Fatal("expected unknown instruction name to fail the lookup, not panic")
	}
}

func TestErrorCodeTableCoversDocumentedRange(t *testing.T) {
	for code := constants.ErrorCode(6000); code <= 6030; code++ {
		if _, ok := constants.LookupErrorCode(code); !ok {
			t.Fatalf("missing error code text for %d", code)
		}
	}
	if _, ok := constants.LookupErrorCode(7000); ok {
		t.Fatal("expected out-of-range error code to fail the lookup")
	}
}

func TestProgramIdentifierConstant(t *testing.T) {
	if constants.ProgramIDBase58 != "3AMM53MsJZy2Jvf7PeHHga3bsGjWV4TSaYz29WUtcdje" {
		t.Fatalf("unexpected default program id: %s", constants.ProgramIDBase58)
	}
}
