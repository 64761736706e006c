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

package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

var _ farm.MsgServer = &farmMsgServer{}

type farmMsgServer struct {
	*Keeper
}

func NewFarmMsgServer(keeper *Keeper) farm.MsgServer {
	return &farmMsgServer{Keeper: keeper}
}

func (m farmMsgServer) Bond(ctx context.Context, msg *farm.MsgBond) (*farm.MsgBondResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	staker, err := m.accAddress(msg.Staker)
	if err != nil {
		return nil, err
	}

	share, err := m.Keeper.Bond(ctx, staker, msg.Asset, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &farm.MsgBondResponse{Share: share}, nil
}

func (m farmMsgServer) Unbond(ctx context.Context, msg *farm.MsgUnbond) (*farm.MsgUnbondResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	staker, err := m.accAddress(msg.Staker)
	if err != nil {
		return nil, err
	}

	share, err := m.Keeper.Unbond(ctx, staker, msg.Asset, msg.Amount)
	if err != nil {
		return nil, err
	}

	pool, _, err := m.GetFarmPool(ctx, msg.Asset)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch pool")
	}

	return &farm.MsgUnbondResponse{
		Share:  share,
		Amount: sdk.NewCoin(pool.StakingToken, msg.Amount),
	}, nil
}

func (m farmMsgServer) Withdraw(ctx context.Context, msg *farm.MsgWithdraw) (*farm.MsgWithdrawResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	staker, err := m.accAddress(msg.Staker)
	if err != nil {
		return nil, err
	}

	share, amount, err := m.Keeper.Withdraw(ctx, staker, msg.Asset, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &farm.MsgWithdrawResponse{Share: share, Amount: amount}, nil
}

func (m farmMsgServer) RegisterAsset(ctx context.Context, msg *farm.MsgRegisterAsset) (*farm.MsgRegisterAssetResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if err := m.Keeper.RegisterAsset(ctx, msg.Owner, msg.Asset, msg.StakingToken, msg.Weight); err != nil {
		return nil, err
	}

	return &farm.MsgRegisterAssetResponse{}, nil
}

func (m farmMsgServer) UpdateConfig(ctx context.Context, msg *farm.MsgUpdateConfig) (*farm.MsgUpdateConfigResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if err := m.Keeper.UpdateConfig(ctx, msg); err != nil {
		return nil, err
	}

	return &farm.MsgUpdateConfigResponse{}, nil
}

func (m farmMsgServer) Compound(ctx context.Context, msg *farm.MsgCompound) (*farm.MsgCompoundResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	results, err := m.Keeper.Compound(ctx, msg.Controller, msg.Asset)
	if err != nil {
		return nil, err
	}

	return &farm.MsgCompoundResponse{Results: results}, nil
}

func (m farmMsgServer) SetRemoteReporter(ctx context.Context, msg *farm.MsgSetRemoteReporter) (*farm.MsgSetRemoteReporterResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if err := m.Keeper.SetRemoteReporter(ctx, msg.Owner, msg.Asset, msg.Domain, msg.Reporter); err != nil {
		return nil, err
	}

	return &farm.MsgSetRemoteReporterResponse{}, nil
}

// accAddress decodes a bech32 account address with the keeper's codec.
func (k *Keeper) accAddress(address string) (sdk.AccAddress, error) {
	bz, err := k.address.StringToBytes(address)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "unable to decode %s", address)
	}

	return bz, nil
}
