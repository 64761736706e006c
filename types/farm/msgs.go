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
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type MsgServer interface {
	Bond(context.Context, *MsgBond) (*MsgBondResponse, error)
	Unbond(context.Context, *MsgUnbond) (*MsgUnbondResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	RegisterAsset(context.Context, *MsgRegisterAsset) (*MsgRegisterAssetResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	Compound(context.Context, *MsgCompound) (*MsgCompoundResponse, error)
	SetRemoteReporter(context.Context, *MsgSetRemoteReporter) (*MsgSetRemoteReporterResponse, error)
}

type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	State(context.Context, *QueryStateRequest) (*QueryStateResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	RewardInfo(context.Context, *QueryRewardInfoRequest) (*QueryRewardInfoResponse, error)
}

// MsgBond deposits Amount of the pool's staking token on behalf of Staker.
type MsgBond struct {
	Staker string   `json:"staker"`
	Asset  string   `json:"asset"`
	Amount sdk.Coin `json:"amount"`
}

type MsgBondResponse struct {
	Share math.Int `json:"share"`
}

type MsgUnbond struct {
	Staker string   `json:"staker"`
	Asset  string   `json:"asset"`
	Amount math.Int `json:"amount"`
}

type MsgUnbondResponse struct {
	Share  math.Int `json:"share"`
	Amount sdk.Coin `json:"amount"`
}

// MsgWithdraw claims accumulated reward. An empty Asset withdraws from every
// pool, a nil Amount withdraws everything pending.
type MsgWithdraw struct {
	Staker string   `json:"staker"`
	Asset  string   `json:"asset,omitempty"`
	Amount math.Int `json:"amount,omitempty"`
}

type MsgWithdrawResponse struct {
	Share  math.Int `json:"share"`
	Amount math.Int `json:"amount"`
}

type MsgRegisterAsset struct {
	Owner        string `json:"owner"`
	Asset        string `json:"asset"`
	StakingToken string `json:"staking_token"`
	Weight       uint32 `json:"weight"`
}

type MsgRegisterAssetResponse struct{}

// MsgUpdateConfig replaces the fields that are set; empty strings and nil
// rates leave the stored value untouched.
type MsgUpdateConfig struct {
	Owner         string          `json:"owner"`
	NewOwner      string          `json:"new_owner,omitempty"`
	Controller    string          `json:"controller,omitempty"`
	PlatformAddr  string          `json:"platform_addr,omitempty"`
	CommunityFee  *math.LegacyDec `json:"community_fee,omitempty"`
	PlatformFee   *math.LegacyDec `json:"platform_fee,omitempty"`
	ControllerFee *math.LegacyDec `json:"controller_fee,omitempty"`
}

type MsgUpdateConfigResponse struct{}

// MsgCompound harvests and reinvests external rewards. An empty Asset
// compounds every pool.
type MsgCompound struct {
	Controller string `json:"controller"`
	Asset      string `json:"asset,omitempty"`
}

type CompoundResult struct {
	Asset      string   `json:"asset"`
	Reward     math.Int `json:"reward"`
	Fees       FeeSplit `json:"fees"`
	Reinvested math.Int `json:"reinvested"`
}

type MsgCompoundResponse struct {
	Results []CompoundResult `json:"results"`
}

// MsgSetRemoteReporter enrols the Hyperlane sender allowed to report
// compounding performed on a remote chain for Asset.
type MsgSetRemoteReporter struct {
	Owner    string `json:"owner"`
	Asset    string `json:"asset"`
	Domain   uint32 `json:"domain"`
	Reporter string `json:"reporter"`
}

type MsgSetRemoteReporterResponse struct{}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

type QueryStateRequest struct{}

type QueryStateResponse struct {
	State           GlobalState `json:"state"`
	ObservedBalance math.Int    `json:"observed_balance"`
}

type QueryPoolsRequest struct{}

type QueryPoolsResponse struct {
	Pools []PoolInfo `json:"pools"`
}

type QueryRewardInfoRequest struct {
	Staker string `json:"staker"`
	Asset  string `json:"asset,omitempty"`
}

type RewardInfoView struct {
	Asset              string   `json:"asset"`
	BondShare          math.Int `json:"bond_share"`
	BondAmount         math.Int `json:"bond_amount"`
	PendingRewardShare math.Int `json:"pending_reward_share"`
	PendingReward      math.Int `json:"pending_reward"`
}

type QueryRewardInfoResponse struct {
	Staker      string           `json:"staker"`
	RewardInfos []RewardInfoView `json:"reward_infos"`
}
