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
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"

	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/gov"
)

var _ gov.MsgServer = &govMsgServer{}

type govMsgServer struct {
	*Keeper
}

func NewGovMsgServer(keeper *Keeper) gov.MsgServer {
	return &govMsgServer{Keeper: keeper}
}

func (m govMsgServer) Stake(ctx context.Context, msg *gov.MsgStake) (*gov.MsgStakeResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	staker, err := m.accAddress(msg.Staker)
	if err != nil {
		return nil, err
	}

	share, err := m.Keeper.Stake(ctx, staker, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &gov.MsgStakeResponse{Share: share}, nil
}

func (m govMsgServer) Unstake(ctx context.Context, msg *gov.MsgUnstake) (*gov.MsgUnstakeResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	staker, err := m.accAddress(msg.Staker)
	if err != nil {
		return nil, err
	}

	share, amount, err := m.Keeper.Unstake(ctx, staker, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &gov.MsgUnstakeResponse{Share: share, Amount: amount}, nil
}

func (m govMsgServer) Mint(ctx context.Context, msg *gov.MsgMint) (*gov.MsgMintResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.accAddress(msg.Sender); err != nil {
		return nil, err
	}

	minted, err := m.Keeper.Mint(ctx)
	if err != nil {
		return nil, err
	}

	return &gov.MsgMintResponse{Minted: minted}, nil
}

func (m govMsgServer) UpsertVault(ctx context.Context, msg *gov.MsgUpsertVault) (*gov.MsgUpsertVaultResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if msg.Authority != m.authority {
		return nil, errors.Wrapf(gov.ErrInvalidAuthority, "expected %s, got %s", m.authority, msg.Authority)
	}

	vault, err := m.accAddress(msg.Address)
	if err != nil {
		return nil, err
	}

	// Settle the schedule under the old weights before re-weighting.
	if _, err := m.Keeper.Mint(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to mint before updating vault")
	}

	if err := m.SetGovVault(ctx, vault, msg.Weight); err != nil {
		return nil, errors.Wrap(err, "unable to store vault")
	}

	return &gov.MsgUpsertVaultResponse{}, m.event.EventManager(ctx).EmitKV(ctx, gov.EventTypeUpsertVault,
		event.NewAttribute(gov.AttributeKeyVault, msg.Address),
		event.NewAttribute(gov.AttributeKeyWeight, strconv.FormatUint(uint64(msg.Weight), 10)),
	)
}

func (m govMsgServer) UpdateParams(ctx context.Context, msg *gov.MsgUpdateParams) (*gov.MsgUpdateParamsResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if msg.Authority != m.authority {
		return nil, errors.Wrapf(gov.ErrInvalidAuthority, "expected %s, got %s", m.authority, msg.Authority)
	}

	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	if _, err := m.Keeper.Mint(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to mint before updating params")
	}

	if err := m.SetGovParams(ctx, msg.Params); err != nil {
		return nil, errors.Wrap(err, "unable to store params")
	}

	return &gov.MsgUpdateParamsResponse{}, m.event.EventManager(ctx).EmitKV(ctx, gov.EventTypeUpdateParams,
		event.NewAttribute(gov.AttributeKeyMinted, msg.Params.MintPerBlock.String()),
	)
}
