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

// Farm, UserFarm, Lottery, LotteryEntry, and Registry are header-prefixed
// accounts: the SDK decodes the fixed-width prefix every instance carries
// and leaves any protocol-specific trailing payload (a pool registry's
// index table, for example) to the caller, since its shape is not part of
// the wire contract these five discriminators pin.

const (
	FarmHeaderSize         = 144
	UserFarmHeaderSize     = 104
	LotteryHeaderSize      = 76
	LotteryEntryHeaderSize = 80
	RegistryHeaderSize     = 48
)

// Farm is a yield-farm account's fixed header.
type Farm struct {
	Pool         Pubkey
	RewardMint   Pubkey
	RewardVault  Pubkey
	RewardRate   uint64
	StartSlot    uint64
	EndSlot      uint64
	TotalStaked  uint64
	Bump         uint8
	Paused       bool
}

// ParseFarm decodes a farm account's fixed header.
func ParseFarm(data []byte) (*Farm, error) {
	if len(data) < 8 {
		return nil, ammerr.New(ammerr.InsufficientData, "farm blob too short for discriminator: %d bytes", len(data))
	}
	if string(data[:8]) != constants.FarmDiscriminator {
		return nil, ammerr.New(ammerr.InvalidDiscriminator, "farm discriminator mismatch: %q", data[:8])
	}
	if len(data) < FarmHeaderSize {
		return nil, ammerr.New(ammerr.InvalidFormat, "farm blob too short: %d < %d", len(data), FarmHeaderSize)
	}

	f := &Farm{}
	off := 8
	copy(f.Pool[:], data[off:off+32])
	off += 32
	copy(f.RewardMint[:], data[off:off+32])
	off += 32
	copy(f.RewardVault[:], data[off:off+32])
	off += 32
	f.RewardRate = binary.LittleEndian.Uint64(data[off:])
	off += 8
	f.StartSlot = binary.LittleEndian.Uint64(data[off:])
	off += 8
	f.EndSlot = binary.LittleEndian.Uint64(data[off:])
	off += 8
	f.TotalStaked = binary.LittleEndian.Uint64(data[off:])
	off += 8
	f.Bump = data[off]
	off++
	f.Paused = data[off] != 0
	return f, nil
}

// SerializeFarm encodes a Farm's fixed header. The returned slice is padded
// with zeroed reserved bytes up to FarmHeaderSize.
func SerializeFarm(f *Farm) []byte {
	out := make([]byte, FarmHeaderSize)
	copy(out[0:8], constants.FarmDiscriminator)
	off := 8
	copy(out[off:], f.Pool[:])
	off += 32
	copy(out[off:], f.RewardMint[:])
	off += 32
	copy(out[off:], f.RewardVault[:])
	off += 32
	binary.LittleEndian.PutUint64(out[off:], f.RewardRate)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], f.StartSlot)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], f.EndSlot)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], f.TotalStaked)
	off += 8
	out[off] = f.Bump
	off++
	if f.Paused {
		out[off] = 1
	}
	return out
}

// UserFarm is a single staker's position within a Farm.
type UserFarm struct {
	Farm          Pubkey
	Owner         Pubkey
	StakedAmount  uint64
	RewardDebt    uint64
	LockUntil     int64
	Bump          uint8
}

// ParseUserFarm decodes a user-farm account's fixed header.
func ParseUserFarm(data []byte) (*UserFarm, error) {
	if len(data) < 8 {
		return nil, ammerr.New(ammerr.InsufficientData, "user_farm blob too short for discriminator: %d bytes", len(data))
	}
	if string(data[:8]) != constants.UserFarmDiscriminator {
		return nil, ammerr.New(ammerr.InvalidDiscriminator, "user_farm discriminator mismatch: %q", data[:8])
	}
	if len(data) < UserFarmHeaderSize {
		return nil, ammerr.New(ammerr.InvalidFormat, "user_farm blob too short: %d < %d", len(data), UserFarmHeaderSize)
	}

	u := &UserFarm{}
	off := 8
	copy(u.Farm[:], data[off:off+32])
	off += 32
	copy(u.Owner[:], data[off:off+32])
	off += 32
	u.StakedAmount = binary.LittleEndian.Uint64(data[off:])
	off += 8
	u.RewardDebt = binary.LittleEndian.Uint64(data[off:])
	off += 8
	u.LockUntil = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	u.Bump = data[off]
	return u, nil
}

// SerializeUserFarm encodes a UserFarm's fixed header.
func SerializeUserFarm(u *UserFarm) []byte {
	out := make([]byte, UserFarmHeaderSize)
	copy(out[0:8], constants.UserFarmDiscriminator)
	off := 8
	copy(out[off:], u.Farm[:])
	off += 32
	copy(out[off:], u.Owner[:])
	off += 32
	binary.LittleEndian.PutUint64(out[off:], u.StakedAmount)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], u.RewardDebt)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], uint64(u.LockUntil))
	off += 8
	out[off] = u.Bump
	return out
}

// Lottery is a pool-attached lottery round's fixed header.
type Lottery struct {
	Pool         Pubkey
	TicketPrice  uint64
	DrawSlot     uint64
	PrizePool    uint64
	TotalTickets uint32
	Drawn        bool
	Bump         uint8
}

// ParseLottery decodes a lottery account's fixed header.
func ParseLottery(data []byte) (*Lottery, error) {
	if len(data) < 8 {
		return nil, ammerr.New(ammerr.InsufficientData, "lottery blob too short for discriminator: %d bytes", len(data))
	}
	if string(data[:8]) != constants.LotteryDiscriminator {
		return nil, ammerr.New(ammerr.InvalidDiscriminator, "lottery discriminator mismatch: %q", data[:8])
	}
	if len(data) < LotteryHeaderSize {
		return nil, ammerr.New(ammerr.InvalidFormat, "lottery blob too short: %d < %d", len(data), LotteryHeaderSize)
	}

	l := &Lottery{}
	off := 8
	copy(l.Pool[:], data[off:off+32])
	off += 32
	l.TicketPrice = binary.LittleEndian.Uint64(data[off:])
	off += 8
	l.DrawSlot = binary.LittleEndian.Uint64(data[off:])
	off += 8
	l.PrizePool = binary.LittleEndian.Uint64(data[off:])
	off += 8
	l.TotalTickets = binary.LittleEndian.Uint32(data[off:])
	off += 4
	l.Drawn = data[off] != 0
	off++
	l.Bump = data[off]
	return l, nil
}

// SerializeLottery encodes a Lottery's fixed header.
func SerializeLottery(l *Lottery) []byte {
	out := make([]byte, LotteryHeaderSize)
	copy(out[0:8], constants.LotteryDiscriminator)
	off := 8
	copy(out[off:], l.Pool[:])
	off += 32
	binary.LittleEndian.PutUint64(out[off:], l.TicketPrice)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], l.DrawSlot)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], l.PrizePool)
	off += 8
	binary.LittleEndian.PutUint32(out[off:], l.TotalTickets)
	off += 4
	if l.Drawn {
		out[off] = 1
	}
	off++
	out[off] = l.Bump
	return out
}

// LotteryEntry is a single user's ticket purchase within a Lottery.
type LotteryEntry struct {
	Lottery    Pubkey
	User       Pubkey
	NumTickets uint32
}

// ParseLotteryEntry decodes a lottery-entry account's fixed header.
func ParseLotteryEntry(data []byte) (*LotteryEntry, error) {
	if len(data) < 8 {
		return nil, ammerr.New(ammerr.InsufficientData, "lottery_entry blob too short for discriminator: %d bytes", len(data))
	}
	if string(data[:8]) != constants.LotteryEntryDiscriminator {
		return nil, ammerr.New(ammerr.InvalidDiscriminator, "lottery_entry discriminator mismatch: %q", data[:8])
	}
	if len(data) < LotteryEntryHeaderSize {
		return nil, ammerr.New(ammerr.InvalidFormat, "lottery_entry blob too short: %d < %d", len(data), LotteryEntryHeaderSize)
	}

	e := &LotteryEntry{}
	off := 8
	copy(e.Lottery[:], data[off:off+32])
	off += 32
	copy(e.User[:], data[off:off+32])
	off += 32
	e.NumTickets = binary.LittleEndian.Uint32(data[off:])
	return e, nil
}

// SerializeLotteryEntry encodes a LotteryEntry's fixed header.
func SerializeLotteryEntry(e *LotteryEntry) []byte {
	out := make([]byte, LotteryEntryHeaderSize)
	copy(out[0:8], constants.LotteryEntryDiscriminator)
	off := 8
	copy(out[off:], e.Lottery[:])
	off += 32
	copy(out[off:], e.User[:])
	off += 32
	binary.LittleEndian.PutUint32(out[off:], e.NumTickets)
	return out
}

// Registry is the global pool registry's fixed header.
type Registry struct {
	Authority Pubkey
	PoolCount uint32
	Bump      uint8
}

// ParseRegistry decodes a registry account's fixed header.
func ParseRegistry(data []byte) (*Registry, error) {
	if len(data) < 8 {
		return nil, ammerr.New(ammerr.InsufficientData, "registry blob too short for discriminator: %d bytes", len(data))
	}
	if string(data[:8]) != constants.RegistryDiscriminator {
		return nil, ammerr.New(ammerr.InvalidDiscriminator, "registry discriminator mismatch: %q", data[:8])
	}
	if len(data) < RegistryHeaderSize {
		return nil, ammerr.New(ammerr.InvalidFormat, "registry blob too short: %d < %d", len(data), RegistryHeaderSize)
	}

	r := &Registry{}
	off := 8
	copy(r.Authority[:], data[off:off+32])
	off += 32
	r.PoolCount = binary.LittleEndian.Uint32(data[off:])
	off += 4
	r.Bump = data[off]
	return r, nil
}

// SerializeRegistry encodes a Registry's fixed header.
func SerializeRegistry(r *Registry) []byte {
	out := make([]byte, RegistryHeaderSize)
	copy(out[0:8], constants.RegistryDiscriminator)
	off := 8
	copy(out[off:], r.Authority[:])
	off += 32
	binary.LittleEndian.PutUint32(out[off:], r.PoolCount)
	off += 4
	out[off] = r.Bump
	return out
}
