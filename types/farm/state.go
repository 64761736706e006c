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

package farm

import (
	"time"

	"cosmossdk.io/math"
)

// GlobalState is the farm-wide reward index, expressed in reward units per
// unit of pool weight.
type GlobalState struct {
	TotalWeight           uint32         `json:"total_weight"`
	RewardIndex           math.LegacyDec `json:"reward_index"`
	PreviousRewardBalance math.Int       `json:"previous_reward_balance"`
}

func NewGlobalState() GlobalState {
	return GlobalState{
		RewardIndex:           math.LegacyZeroDec(),
		PreviousRewardBalance: math.ZeroInt(),
	}
}

// PoolInfo tracks a single staking asset. TotalBondShare and TotalBondAmount
// form the share ledger, PoolRewardIndex is the reward per bond share.
type PoolInfo struct {
	Asset           string         `json:"asset"`
	StakingToken    string         `json:"staking_token"`
	Weight          uint32         `json:"weight"`
	TotalBondShare  math.Int       `json:"total_bond_share"`
	TotalBondAmount math.Int       `json:"total_bond_amount"`
	CheckpointIndex math.LegacyDec `json:"checkpoint_index"`
	PoolRewardIndex math.LegacyDec `json:"pool_reward_index"`

	RemoteDomain   uint32    `json:"remote_domain,omitempty"`
	RemoteReporter string    `json:"remote_reporter,omitempty"`
	LastReportTime time.Time `json:"last_report_time"`
}

// NewPoolInfo creates an empty pool checkpointed at the current global index,
// so rewards accrued before registration are never attributed to it.
func NewPoolInfo(asset, stakingToken string, weight uint32, globalIndex math.LegacyDec) PoolInfo {
	return PoolInfo{
		Asset:           asset,
		StakingToken:    stakingToken,
		Weight:          weight,
		TotalBondShare:  math.ZeroInt(),
		TotalBondAmount: math.ZeroInt(),
		CheckpointIndex: globalIndex,
		PoolRewardIndex: math.LegacyZeroDec(),
	}
}

// RewardInfo is a staker's position in one pool.
type RewardInfo struct {
	BondShare          math.Int       `json:"bond_share"`
	CheckpointIndex    math.LegacyDec `json:"checkpoint_index"`
	PendingRewardShare math.Int       `json:"pending_reward_share"`
}

// NewRewardInfo seeds a position from the pool's current index.
func NewRewardInfo(pool PoolInfo) RewardInfo {
	return RewardInfo{
		BondShare:          math.ZeroInt(),
		CheckpointIndex:    pool.PoolRewardIndex,
		PendingRewardShare: math.ZeroInt(),
	}
}

// IsEmpty reports whether the position holds neither bond nor reward shares.
func (r RewardInfo) IsEmpty() bool {
	return r.BondShare.IsZero() && r.PendingRewardShare.IsZero()
}

type Config struct {
	Owner         string         `json:"owner"`
	Controller    string         `json:"controller"`
	PlatformAddr  string         `json:"platform_addr"`
	CommunityFee  math.LegacyDec `json:"community_fee"`
	PlatformFee   math.LegacyDec `json:"platform_fee"`
	ControllerFee math.LegacyDec `json:"controller_fee"`
}

func DefaultConfig() Config {
	return Config{
		CommunityFee:  math.LegacyZeroDec(),
		PlatformFee:   math.LegacyZeroDec(),
		ControllerFee: math.LegacyZeroDec(),
	}
}

// TotalFee is the combined commission rate taken from compounded rewards.
func (c Config) TotalFee() math.LegacyDec {
	return c.CommunityFee.Add(c.PlatformFee).Add(c.ControllerFee)
}
