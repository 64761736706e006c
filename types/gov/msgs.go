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
	"context"

	"cosmossdk.io/math"
)

type MsgServer interface {
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	Unstake(context.Context, *MsgUnstake) (*MsgUnstakeResponse, error)
	Mint(context.Context, *MsgMint) (*MsgMintResponse, error)
	UpsertVault(context.Context, *MsgUpsertVault) (*MsgUpsertVaultResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	State(context.Context, *QueryStateRequest) (*QueryStateResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Vaults(context.Context, *QueryVaultsRequest) (*QueryVaultsResponse, error)
}

type MsgStake struct {
	Staker string   `json:"staker"`
	Amount math.Int `json:"amount"`
}

type MsgStakeResponse struct {
	Share math.Int `json:"share"`
}

// MsgUnstake withdraws Amount of SPEC, or the whole balance when Amount is nil.
type MsgUnstake struct {
	Staker string   `json:"staker"`
	Amount math.Int `json:"amount,omitempty"`
}

type MsgUnstakeResponse struct {
	Share  math.Int `json:"share"`
	Amount math.Int `json:"amount"`
}

type MsgMint struct {
	Sender string `json:"sender"`
}

type MsgMintResponse struct {
	Minted math.Int `json:"minted"`
}

type MsgUpsertVault struct {
	Authority string `json:"authority"`
	Address   string `json:"address"`
	Weight    uint32 `json:"weight"`
}

type MsgUpsertVaultResponse struct{}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryStateRequest struct{}

type QueryStateResponse struct {
	State State `json:"state"`
}

type QueryBalanceRequest struct {
	Address string `json:"address"`
}

type QueryBalanceResponse struct {
	Share  math.Int `json:"share"`
	Amount math.Int `json:"amount"`
}

type QueryVaultsRequest struct{}

type VaultEntry struct {
	Address string `json:"address"`
	Weight  uint32 `json:"weight"`
}

type QueryVaultsResponse struct {
	Vaults      []VaultEntry `json:"vaults"`
	TotalWeight uint32       `json:"total_weight"`
}
