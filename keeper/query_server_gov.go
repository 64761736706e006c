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
	"github.com/spectrumprotocol/contracts-sub002/types/gov"
)

var _ gov.QueryServer = &govQueryServer{}

type govQueryServer struct {
	*Keeper
}

func NewGovQueryServer(keeper *Keeper) gov.QueryServer {
	return &govQueryServer{Keeper: keeper}
}

func (q govQueryServer) Params(ctx context.Context, req *gov.QueryParamsRequest) (*gov.QueryParamsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	params, err := q.GetGovParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch params")
	}

	return &gov.QueryParamsResponse{Params: params}, nil
}

func (q govQueryServer) State(ctx context.Context, req *gov.QueryStateRequest) (*gov.QueryStateResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	state, err := q.GetGovState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch state")
	}

	return &gov.QueryStateResponse{State: state}, nil
}

func (q govQueryServer) Balance(ctx context.Context, req *gov.QueryBalanceRequest) (*gov.QueryBalanceResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	address, err := q.accAddress(req.Address)
	if err != nil {
		return nil, err
	}

	share, err := q.GetGovShare(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch share")
	}
	amount, err := q.GovShareToAmount(ctx, share)
	if err != nil {
		return nil, err
	}

	return &gov.QueryBalanceResponse{Share: share, Amount: amount}, nil
}

func (q govQueryServer) Vaults(ctx context.Context, req *gov.QueryVaultsRequest) (*gov.QueryVaultsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	res := &gov.QueryVaultsResponse{Vaults: []gov.VaultEntry{}}
	if err := q.IterateGovVaults(ctx, func(address sdk.AccAddress, vault gov.Vault) (bool, error) {
		encoded, err := q.address.BytesToString(address)
		if err != nil {
			return true, err
		}

		res.Vaults = append(res.Vaults, gov.VaultEntry{Address: encoded, Weight: vault.Weight})
		res.TotalWeight += vault.Weight
		return false, nil
	}); err != nil {
		return nil, errors.Wrap(err, "unable to iterate vaults")
	}

	return res, nil
}
