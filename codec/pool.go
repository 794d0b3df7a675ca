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
	hourlyCandleCount = 24
	dailyCandleCount  = 7

	poolOffAuthority      = 8
	poolOffMint0          = 40
	poolOffMint1          = 72
	poolOffVault0         = 104
	poolOffVault1         = 136
	poolOffLPMint         = 168
	poolOffAmp            = 200
	poolOffInitAmp        = 208
	poolOffTargetAmp      = 216
	poolOffRampStart      = 224
	poolOffRampStop       = 232
	poolOffFeeBps         = 240
	poolOffAdminFeePct    = 242
	poolOffBal0           = 248
	poolOffBal1           = 256
	poolOffLPSupply       = 264
	poolOffAdminFee0      = 272
	poolOffAdminFee1      = 280
	poolOffVolume0        = 288
	poolOffVolume1        = 296
	poolOffPaused         = 304
	poolOffBumpAuthority  = 305
	poolOffBumpVault0     = 306
	poolOffBumpVault1     = 307
	poolOffBumpLPMint     = 308
	poolOffBumpPool       = 309
	poolOffPendingAuth    = 312
	poolOffPendingAuthAt  = 344
	poolOffPendingAmp     = 352
	poolOffPendingAmpAt   = 360
	poolOffTradeCount     = 368
	poolOffTradeSum       = 376
	poolOffMaxPrice       = 384
	poolOffMinPrice       = 388
	poolOffHourSlotAnchor = 392
	poolOffDaySlotAnchor  = 396
	poolOffHourIdx        = 400
	poolOffDayIdx         = 401
	poolOffBloom          = 408
	poolOffHourlyCandles  = poolOffBloom + constants.BloomSize
	poolOffDailyCandles   = poolOffHourlyCandles + hourlyCandleCount*CandleSize
	poolUsedExtent        = poolOffDailyCandles + dailyCandleCount*CandleSize
)

// Compile-time check that the declared fields fit inside the account's
// reserved wire size; a negative array length fails the build if they don't.
var _ [constants.PoolAccountSize - poolUsedExtent]struct{}

// Pool is the decoded form of the 1024-byte two-token pool account.
type Pool struct {
	Authority Pubkey
	Mint0     Pubkey
	Mint1     Pubkey
	Vault0    Pubkey
	Vault1    Pubkey
	LPMint    Pubkey

	Amp       uint64
	InitAmp   uint64
	TargetAmp uint64
	RampStart uint64
	RampStop  uint64

	FeeBps      uint16
	AdminFeePct uint16

	Bal0      uint64
	Bal1      uint64
	LPSupply  uint64
	AdminFee0 uint64
	AdminFee1 uint64
	Volume0   uint64
	Volume1   uint64

	Paused        bool
	BumpAuthority uint8
	BumpVault0    uint8
	BumpVault1    uint8
	BumpLPMint    uint8
	BumpPool      uint8

	PendingAuthority       Pubkey
	PendingAuthorityAt     int64
	PendingAmp             uint64
	PendingAmpEffectiveAt  int64

	TradeCount       uint64
	TradeSum         uint64
	MaxObservedPrice uint32
	MinObservedPrice uint32
	HourSlotAnchor   uint32
	DaySlotAnchor    uint32
	HourIdx          uint8
	DayIdx           uint8

	Bloom [constants.BloomSize]byte

	HourlyCandles [hourlyCandleCount]Candle
	DailyCandles  [dailyCandleCount]Candle
}

// ParsePool decodes a raw 1024-byte pool account blob.
func ParsePool(data []byte) (*Pool, error) {
	if len(data) < 8 {
		return nil, ammerr.New(ammerr.InsufficientData, "pool blob too short for discriminator: %d bytes", len(data))
	}
	if string(data[:8]) != constants.PoolDiscriminator {
		return nil, ammerr.New(ammerr.InvalidDiscriminator, "pool discriminator mismatch: %q", data[:8])
	}
	if len(data) < constants.PoolAccountSize {
		return nil, ammerr.New(ammerr.InvalidFormat, "pool blob too short: %d < %d", len(data), constants.PoolAccountSize)
	}

	p := &Pool{}
	copy(p.Authority[:], data[poolOffAuthority:poolOffAuthority+32])
	copy(p.Mint0[:], data[poolOffMint0:poolOffMint0+32])
	copy(p.Mint1[:], data[poolOffMint1:poolOffMint1+32])
	copy(p.Vault0[:], data[poolOffVault0:poolOffVault0+32])
	copy(p.Vault1[:], data[poolOffVault1:poolOffVault1+32])
	copy(p.LPMint[:], data[poolOffLPMint:poolOffLPMint+32])

	p.Amp = binary.LittleEndian.Uint64(data[poolOffAmp:])
	p.InitAmp = binary.LittleEndian.Uint64(data[poolOffInitAmp:])
	p.TargetAmp = binary.LittleEndian.Uint64(data[poolOffTargetAmp:])
	p.RampStart = binary.LittleEndian.Uint64(data[poolOffRampStart:])
	p.RampStop = binary.LittleEndian.Uint64(data[poolOffRampStop:])

	p.FeeBps = binary.LittleEndian.Uint16(data[poolOffFeeBps:])
	p.AdminFeePct = binary.LittleEndian.Uint16(data[poolOffAdminFeePct:])

	p.Bal0 = binary.LittleEndian.Uint64(data[poolOffBal0:])
	p.Bal1 = binary.LittleEndian.Uint64(data[poolOffBal1:])
	p.LPSupply = binary.LittleEndian.Uint64(data[poolOffLPSupply:])
	p.AdminFee0 = binary.LittleEndian.Uint64(data[poolOffAdminFee0:])
	p.AdminFee1 = binary.LittleEndian.Uint64(data[poolOffAdminFee1:])
	p.Volume0 = binary.LittleEndian.Uint64(data[poolOffVolume0:])
	p.Volume1 = binary.LittleEndian.Uint64(data[poolOffVolume1:])

	p.Paused = data[poolOffPaused] != 0
	p.BumpAuthority = data[poolOffBumpAuthority]
	p.BumpVault0 = data[poolOffBumpVault0]
	p.BumpVault1 = data[poolOffBumpVault1]
	p.BumpLPMint = data[poolOffBumpLPMint]
	p.BumpPool = data[poolOffBumpPool]

	copy(p.PendingAuthority[:], data[poolOffPendingAuth:poolOffPendingAuth+32])
	p.PendingAuthorityAt = int64(binary.LittleEndian.Uint64(data[poolOffPendingAuthAt:]))
	p.PendingAmp = binary.LittleEndian.Uint64(data[poolOffPendingAmp:])
	p.PendingAmpEffectiveAt = int64(binary.LittleEndian.Uint64(data[poolOffPendingAmpAt:]))

	p.TradeCount = binary.LittleEndian.Uint64(data[poolOffTradeCount:])
	p.TradeSum = binary.LittleEndian.Uint64(data[poolOffTradeSum:])
	p.MaxObservedPrice = binary.LittleEndian.Uint32(data[poolOffMaxPrice:])
	p.MinObservedPrice = binary.LittleEndian.Uint32(data[poolOffMinPrice:])
	p.HourSlotAnchor = binary.LittleEndian.Uint32(data[poolOffHourSlotAnchor:])
	p.DaySlotAnchor = binary.LittleEndian.Uint32(data[poolOffDaySlotAnchor:])
	p.HourIdx = data[poolOffHourIdx]
	p.DayIdx = data[poolOffDayIdx]

	copy(p.Bloom[:], data[poolOffBloom:poolOffBloom+constants.BloomSize])

	for i := 0; i < hourlyCandleCount; i++ {
		off := poolOffHourlyCandles + i*CandleSize
		p.HourlyCandles[i] = decodeCandle(data[off : off+CandleSize])
	}
	for i := 0; i < dailyCandleCount; i++ {
		off := poolOffDailyCandles + i*CandleSize
		p.DailyCandles[i] = decodeCandle(data[off : off+CandleSize])
	}

	return p, nil
}

// SerializePool encodes a Pool back to its 1024-byte wire form. Bytes past
// the declared field extent (the trailing reserved region) are zeroed.
func SerializePool(p *Pool) []byte {
	out := make([]byte, constants.PoolAccountSize)
	copy(out[0:8], constants.PoolDiscriminator)

	copy(out[poolOffAuthority:], p.Authority[:])
	copy(out[poolOffMint0:], p.Mint0[:])
	copy(out[poolOffMint1:], p.Mint1[:])
	copy(out[poolOffVault0:], p.Vault0[:])
	copy(out[poolOffVault1:], p.Vault1[:])
	copy(out[poolOffLPMint:], p.LPMint[:])

	binary.LittleEndian.PutUint64(out[poolOffAmp:], p.Amp)
	binary.LittleEndian.PutUint64(out[poolOffInitAmp:], p.InitAmp)
	binary.LittleEndian.PutUint64(out[poolOffTargetAmp:], p.TargetAmp)
	binary.LittleEndian.PutUint64(out[poolOffRampStart:], p.RampStart)
	binary.LittleEndian.PutUint64(out[poolOffRampStop:], p.RampStop)

	binary.LittleEndian.PutUint16(out[poolOffFeeBps:], p.FeeBps)
	binary.LittleEndian.PutUint16(out[poolOffAdminFeePct:], p.AdminFeePct)

	binary.LittleEndian.PutUint64(out[poolOffBal0:], p.Bal0)
	binary.LittleEndian.PutUint64(out[poolOffBal1:], p.Bal1)
	binary.LittleEndian.PutUint64(out[poolOffLPSupply:], p.LPSupply)
	binary.LittleEndian.PutUint64(out[poolOffAdminFee0:], p.AdminFee0)
	binary.LittleEndian.PutUint64(out[poolOffAdminFee1:], p.AdminFee1)
	binary.LittleEndian.PutUint64(out[poolOffVolume0:], p.Volume0)
	binary.LittleEndian.PutUint64(out[poolOffVolume1:], p.Volume1)

	if p.Paused {
		out[poolOffPaused] = 1
	}
	out[poolOffBumpAuthority] = p.BumpAuthority
	out[poolOffBumpVault0] = p.BumpVault0
	out[poolOffBumpVault1] = p.BumpVault1
	out[poolOffBumpLPMint] = p.BumpLPMint
	out[poolOffBumpPool] = p.BumpPool

	copy(out[poolOffPendingAuth:], p.PendingAuthority[:])
	binary.LittleEndian.PutUint64(out[poolOffPendingAuthAt:], uint64(p.PendingAuthorityAt))
	binary.LittleEndian.PutUint64(out[poolOffPendingAmp:], p.PendingAmp)
	binary.LittleEndian.PutUint64(out[poolOffPendingAmpAt:], uint64(p.PendingAmpEffectiveAt))

	binary.LittleEndian.PutUint64(out[poolOffTradeCount:], p.TradeCount)
	binary.LittleEndian.PutUint64(out[poolOffTradeSum:], p.TradeSum)
	binary.LittleEndian.PutUint32(out[poolOffMaxPrice:], p.MaxObservedPrice)
	binary.LittleEndian.PutUint32(out[poolOffMinPrice:], p.MinObservedPrice)
	binary.LittleEndian.PutUint32(out[poolOffHourSlotAnchor:], p.HourSlotAnchor)
	binary.LittleEndian.PutUint32(out[poolOffDaySlotAnchor:], p.DaySlotAnchor)
	out[poolOffHourIdx] = p.HourIdx
	out[poolOffDayIdx] = p.DayIdx

	copy(out[poolOffBloom:], p.Bloom[:])

	for i := 0; i < hourlyCandleCount; i++ {
		off := poolOffHourlyCandles + i*CandleSize
		encodeCandle(out[off:off+CandleSize], p.HourlyCandles[i])
	}
	for i := 0; i < dailyCandleCount; i++ {
		off := poolOffDailyCandles + i*CandleSize
		encodeCandle(out[off:off+CandleSize], p.DailyCandles[i])
	}

	return out
}
