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

	"github.com/ampswap/ammswap-go/ammerr"
	"github.com/ampswap/ammswap-go/constants"
)

const (
	npoolOffAuthority = 8
	npoolOffNTokens   = 40
	npoolOffPaused    = 41
	npoolOffBump      = 42
	// 5-byte padding at 43..48
	npoolOffAmp        = 48
	npoolOffFeeBps     = 56
	npoolOffAdminFee   = 64
	npoolOffLPSupply   = 72
	npoolOffMints      = 80
	npoolOffVaults     = npoolOffMints + constants.MaxTokens*32
	npoolOffLPMint     = npoolOffVaults + constants.MaxTokens*32
	npoolOffBalances   = npoolOffLPMint + 32
	npoolOffAdminFees  = npoolOffBalances + constants.MaxTokens*8
	npoolOffVolume     = npoolOffAdminFees + constants.MaxTokens*8
	npoolOffTradeCount = npoolOffVolume + 8
	npoolOffLastSlot   = npoolOffTradeCount + 8
	npoolUsedExtent    = npoolOffLastSlot + 8
)

// Compile-time check that the declared fields fit inside the account's
// reserved wire size; a negative array length fails the build if they don't.
var _ [constants.NPoolAccountSize - npoolUsedExtent]struct{}

// NPool is the decoded form of the 2048-byte N-token pool account, for
// n_tokens in [2, constants.MaxTokens]. Slots past NTokens are zero.
type NPool struct {
	Authority Pubkey
	NTokens   uint8
	Paused    bool
	Bump      uint8

	Amp         uint64
	FeeBps      uint64
	AdminFeeBps uint64
	LPSupply    uint64

	Mints  [constants.MaxTokens]Pubkey
	Vaults [constants.MaxTokens]Pubkey
	LPMint Pubkey

	Balances   [constants.MaxTokens]uint64
	AdminFees  [constants.MaxTokens]uint64
	Volume     uint64
	TradeCount uint64
	LastTrade  uint64
}

// ParseNPool decodes a raw 2048-byte N-token pool account blob.
func ParseNPool(data []byte) (*NPool, error) {
	if len(data) < 8 {
		return nil, ammerr.New(ammerr.InsufficientData, "npool blob too short for discriminator: %d bytes", len(data))
	}
	if string(data[:8]) != constants.NPoolDiscriminator {
		return nil, ammerr.New(ammerr.InvalidDiscriminator, "npool discriminator mismatch: %q", data[:8])
	}
	if len(data) < constants.NPoolAccountSize {
		return nil, ammerr.New(ammerr.InvalidFormat, "npool blob too short: %d < %d", len(data), constants.NPoolAccountSize)
	}

	p := &NPool{}
	copy(p.Authority[:], data[npoolOffAuthority:npoolOffAuthority+32])
	p.NTokens = data[npoolOffNTokens]
	p.Paused = data[npoolOffPaused] != 0
	p.Bump = data[npoolOffBump]

	p.Amp = binary.LittleEndian.Uint64(data[npoolOffAmp:])
	p.FeeBps = binary.LittleEndian.Uint64(data[npoolOffFeeBps:])
	p.AdminFeeBps = binary.LittleEndian.Uint64(data[npoolOffAdminFee:])
	p.LPSupply = binary.LittleEndian.Uint64(data[npoolOffLPSupply:])

	for i := 0; i < constants.MaxTokens; i++ {
		off := npoolOffMints + i*32
		copy(p.Mints[i][:], data[off:off+32])
	}
	for i := 0; i < constants.MaxTokens; i++ {
		off := npoolOffVaults + i*32
		copy(p.Vaults[i][:], data[off:off+32])
	}
	copy(p.LPMint[:], data[npoolOffLPMint:npoolOffLPMint+32])

	for i := 0; i < constants.MaxTokens; i++ {
		p.Balances[i] = binary.LittleEndian.Uint64(data[npoolOffBalances+i*8:])
	}
	for i := 0; i < constants.MaxTokens; i++ {
		p.AdminFees[i] = binary.LittleEndian.Uint64(data[npoolOffAdminFees+i*8:])
	}
	p.Volume = binary.LittleEndian.Uint64(data[npoolOffVolume:])
	p.TradeCount = binary.LittleEndian.Uint64(data[npoolOffTradeCount:])
	p.LastTrade = binary.LittleEndian.Uint64(data[npoolOffLastSlot:])

	return p, nil
}

// SerializeNPool encodes an NPool back to its 2048-byte wire form.
func SerializeNPool(p *NPool) []byte {
	out := make([]byte, constants.NPoolAccountSize)
	copy(out[0:8], constants.NPoolDiscriminator)

	copy(out[npoolOffAuthority:], p.Authority[:])
	out[npoolOffNTokens] = p.NTokens
	if p.Paused {
		out[npoolOffPaused] = 1
	}
	out[npoolOffBump] = p.Bump

	binary.LittleEndian.PutUint64(out[npoolOffAmp:], p.Amp)
	binary.LittleEndian.PutUint64(out[npoolOffFeeBps:], p.FeeBps)
	binary.LittleEndian.PutUint64(out[npoolOffAdminFee:], p.AdminFeeBps)
	binary.LittleEndian.PutUint64(out[npoolOffLPSupply:], p.LPSupply)

	for i := 0; i < constants.MaxTokens; i++ {
		copy(out[npoolOffMints+i*32:], p.Mints[i][:])
	}
	for i := 0; i < constants.MaxTokens; i++ {
		copy(out[npoolOffVaults+i*32:], p.Vaults[i][:])
	}
	copy(out[npoolOffLPMint:], p.LPMint[:])

	for i := 0; i < constants.MaxTokens; i++ {
		binary.LittleEndian.PutUint64(out[npoolOffBalances+i*8:], p.Balances[i])
	}
	for i := 0; i < constants.MaxTokens; i++ {
		binary.LittleEndian.PutUint64(out[npoolOffAdminFees+i*8:], p.AdminFees[i])
	}
	binary.LittleEndian.PutUint64(out[npoolOffVolume:], p.Volume)
	binary.LittleEndian.PutUint64(out[npoolOffTradeCount:], p.TradeCount)
	binary.LittleEndian.PutUint64(out[npoolOffLastSlot:], p.LastTrade)

	return out
}
