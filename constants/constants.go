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

// Package constants holds the read-only taxonomy shared by every other
// package in this module: the program identifier, protocol-wide numeric
// limits, and the discriminator and error-code lookup tables. Nothing here
// is mutable; there is no dynamic registration.
package constants

// ProgramIDBase58 is the canonical base-58 text of the default hybrid AMM
// program identifier. Derivation entry points accept an override; this is
// only the default anchor.
const ProgramIDBase58 = "3AMM53MsJZy2Jvf7PeHHga3bsGjWV4TSaYz29WUtcdje"

// SPL token program identifiers referenced by vault accounts.
const (
	TokenProgramBase58     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	Token2022ProgramBase58 = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
)

// Numeric protocol limits. These mirror the on-chain program's own
// constants exactly; a mismatch here produces a silently wrong quote, not a
// compile error, so they are pinned by golden tests.
const (
	MinAmp = 1
	MaxAmp = 100_000

	DefaultFeeBps   = 30
	AdminFeeSharePc = 50

	MinSwapAmount   = 100_000
	MinDepositLamports = 100_000_000

	NewtonIterationCap = 255

	RampFloorSeconds  = 86_400
	CommitDelaySeconds = 3_600

	MigrationFeeBps = 1337

	MaxTokens = 8
	BloomSize = 128

	HourlyCandleCount = 24
	DailyCandleCount  = 7

	SlotsPerHour = 9_000
	SlotsPerDay  = 216_000

	PoolAccountSize  = 1024
	NPoolAccountSize = 2048

	FeeDenominatorBps = 10_000
)

// Account discriminators: the leading 8 ASCII bytes every account blob of
// that kind carries at offset 0.
const (
	PoolDiscriminator         = "POOLSWAP"
	NPoolDiscriminator        = "NPOOLSWA"
	FarmDiscriminator         = "FARMSWAP"
	UserFarmDiscriminator     = "UFARMSWA"
	LotteryDiscriminator      = "LOTTERY!"
	LotteryEntryDiscriminator = "LOTENTRY"
	RegistryDiscriminator     = "REGISTRY"
)

// AccountDiscriminators maps a symbolic account-kind name to its 8-byte
// ASCII discriminator. A lookup on an unknown key returns ("", false)
// rather than panicking.
var AccountDiscriminators = map[string]string{
	"pool":          PoolDiscriminator,
	"npool":         NPoolDiscriminator,
	"farm":          FarmDiscriminator,
	"user_farm":     UserFarmDiscriminator,
	"lottery":       LotteryDiscriminator,
	"lottery_entry": LotteryEntryDiscriminator,
	"registry":      RegistryDiscriminator,
}

// LookupAccountDiscriminator returns the 8-byte ASCII discriminator for a
// symbolic account-kind name and whether it was found.
func LookupAccountDiscriminator(name string) (string, bool) {
	d, ok := AccountDiscriminators[name]
	return d, ok
}

// instructionTags assigns every instruction kind a stable, sequential
// 64-bit tag. The tag is compile-time data: no dynamic registration is
// required or permitted. Values start at 1 so a zeroed/unset tag (0) is
// never mistaken for instruction index 0.
var instructionTags = map[string]uint64{
	"initialize_pool":        1,
	"create_pool":            2,
	"swap":                   3,
	"swap_exact_in":          4,
	"swap_exact_out":         5,
	"swap_t0_t1":             6,
	"swap_t1_t0":             7,
	"swap_indexed":           8,
	"add_liquidity":          9,
	"add_liquidity_balanced": 10,
	"add_liquidity_single":   11,
	"remove_liquidity":           12,
	"remove_liquidity_balanced":  13,
	"remove_liquidity_single":    14,
	"remove_liquidity_imbalance": 15,
	"initialize_n_pool":    16,
	"swap_n":               17,
	"add_liquidity_n":      18,
	"remove_liquidity_n":   19,
	"set_pause":            20,
	"unpause":              21,
	"update_fee":           22,
	"commit_new_fee":       23,
	"commit_amp":           24,
	"ramp_amp":             25,
	"stop_ramp_amp":        26,
	"apply_new_admin":      27,
	"commit_new_admin":     28,
	"withdraw_admin_fee":   29,
	"collect_protocol_fee": 30,
	"create_farm":          31,
	"close_farm":           32,
	"stake":                33,
	"unstake":              34,
	"lock":                 35,
	"unlock":               36,
	"extend_lock":          37,
	"claim_rewards":        38,
	"harvest":              39,
	"create_lottery":        40,
	"enter_lottery":         41,
	"draw_lottery":          42,
	"claim_lottery_prize":   43,
	"cancel_lottery":        44,
	"initialize_registry":   45,
	"register_pool":         46,
	"deregister_pool":       47,
	"governance_propose":    48,
	"governance_vote":       49,
	"governance_execute":    50,
	"governance_cancel":     51,
	"create_cl_pool":        52,
	"create_cl_position":    53,
	"close_cl_position":     54,
	"collect_cl_fees":       55,
	"create_orderbook":      56,
	"place_order":           57,
	"cancel_order":          58,
	"update_oracle":         59,
	"set_circuit_breaker":   60,
	"initialize_ml_brain":   61,
	"update_twap":           62,
}

// InstructionDiscriminator returns the 8-byte little-endian discriminator
// for a symbolic instruction name and whether it was found. A lookup on an
// unknown name fails by returning (zero value, false), never by panic.
func InstructionDiscriminator(name string) (d [8]byte, ok bool) {
	tag, found := instructionTags[name]
	if !found {
		return d, false
	}
	putUint64LE(d[:], tag)
	return d, true
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// ErrorCode is a program error code in the 6000-6030 range surfaced by the
// chain. The SDK only translates these; it never raises them itself.
type ErrorCode uint32

// ErrorCodeText maps every program error code to its short human-readable
// name.
var ErrorCodeText = map[ErrorCode]string{
	6000: "paused",
	6001: "invalid_amp",
	6002: "math_overflow",
	6003: "zero_amount",
	6004: "slippage_exceeded",
	6005: "invalid_invariant",
	6006: "insufficient_liquidity",
	6007: "vault_mismatch",
	6008: "expired",
	6009: "already_initialized",
	6010: "unauthorized",
	6011: "ramp_constraint",
	6012: "locked",
	6013: "farming_error",
	6014: "invalid_owner",
	6015: "invalid_discriminator",
	6016: "cpi_failed",
	6017: "full",
	6018: "circuit_breaker",
	6019: "oracle_error",
	6020: "rate_limit",
	6021: "governance_error",
	6022: "order_error",
	6023: "tick_error",
	6024: "range_error",
	6025: "flash_error",
	6026: "cooldown",
	6027: "mev_protection",
	6028: "stale_data",
	6029: "bias_error",
	6030: "duration_error",
}

// LookupErrorCode translates a program error code into its short text and
// reports whether the code is recognized.
func LookupErrorCode(code ErrorCode) (string, bool) {
	text, ok := ErrorCodeText[code]
	return text, ok
}
