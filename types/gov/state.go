// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package gov

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Params configures the SPEC mint schedule. A zero MintEndHeight mints
// indefinitely.
type Params struct {
	MintPerBlock    math.Int `json:"mint_per_block"`
	MintStartHeight int64    `json:"mint_start_height"`
	MintEndHeight   int64    `json:"mint_end_height"`
}

func DefaultParams() Params {
	return Params{MintPerBlock: math.ZeroInt()}
}

func (p Params) Validate() error {
	if p.MintPerBlock.IsNil() || p.MintPerBlock.IsNegative() {
		return errors.Wrap(ErrInvalidParams, "mint per block must be non-negative")
	}
	if p.MintStartHeight < 0 {
		return errors.Wrap(ErrInvalidParams, "mint start height must be non-negative")
	}
	if p.MintEndHeight != 0 && p.MintEndHeight < p.MintStartHeight {
		return errors.Wrapf(ErrInvalidParams, "mint end height %d before start height %d", p.MintEndHeight, p.MintStartHeight)
	}
	return nil
}

// MintAmount returns the SPEC owed for the blocks in (lastMint, height],
// clipped to the configured schedule.
func (p Params) MintAmount(lastMint, height int64) math.Int {
	if p.MintPerBlock.IsNil() || !p.MintPerBlock.IsPositive() {
		return math.ZeroInt()
	}

	from := max(lastMint, p.MintStartHeight)
	to := height
	if p.MintEndHeight != 0 {
		to = min(to, p.MintEndHeight)
	}
	if to <= from {
		return math.ZeroInt()
	}

	return p.MintPerBlock.MulRaw(to - from)
}

// State is the staking pool ledger. TotalBalance is the SPEC backing
// TotalShare.
type State struct {
	TotalShare     math.Int `json:"total_share"`
	TotalBalance   math.Int `json:"total_balance"`
	LastMintHeight int64    `json:"last_mint_height"`
}

func NewState() State {
	return State{
		TotalShare:   math.ZeroInt(),
		TotalBalance: math.ZeroInt(),
	}
}

type Account struct {
	Share math.Int `json:"share"`
}

// Vault is a farm receiving a weighted slice of every mint.
type Vault struct {
	Weight uint32 `json:"weight"`
}
