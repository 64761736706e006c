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
	"cosmossdk.io/math"

	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

var _ farm.QueryServer = &farmQueryServer{}

type farmQueryServer struct {
	*Keeper
}

func NewFarmQueryServer(keeper *Keeper) farm.QueryServer {
	return &farmQueryServer{Keeper: keeper}
}

func (q farmQueryServer) Config(ctx context.Context, req *farm.QueryConfigRequest) (*farm.QueryConfigResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	config, err := q.GetFarmConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch config")
	}

	return &farm.QueryConfigResponse{Config: config}, nil
}

func (q farmQueryServer) State(ctx context.Context, req *farm.QueryStateRequest) (*farm.QueryStateResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	state, observed, err := q.previewFarmState(ctx)
	if err != nil {
		return nil, err
	}

	return &farm.QueryStateResponse{State: state, ObservedBalance: observed}, nil
}

func (q farmQueryServer) Pools(ctx context.Context, req *farm.QueryPoolsRequest) (*farm.QueryPoolsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	state, _, err := q.previewFarmState(ctx)
	if err != nil {
		return nil, err
	}

	pools := []farm.PoolInfo{}
	if err := q.IterateFarmPools(ctx, func(pool farm.PoolInfo) (bool, error) {
		if err := farm.SettlePool(state.RewardIndex, &pool); err != nil {
			return true, err
		}
		pools = append(pools, pool)
		return false, nil
	}); err != nil {
		return nil, errors.Wrap(err, "unable to iterate pools")
	}

	return &farm.QueryPoolsResponse{Pools: pools}, nil
}

func (q farmQueryServer) RewardInfo(ctx context.Context, req *farm.QueryRewardInfoRequest) (*farm.QueryRewardInfoResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	staker, err := q.accAddress(req.Staker)
	if err != nil {
		return nil, err
	}

	state, _, err := q.previewFarmState(ctx)
	if err != nil {
		return nil, err
	}
	govState, err := q.GetGovState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch gov state")
	}

	views := []farm.RewardInfoView{}
	if err := q.IterateFarmRewardInfos(ctx, staker, func(asset string, info farm.RewardInfo) (bool, error) {
		if req.Asset != "" && asset != req.Asset {
			return false, nil
		}

		pool, found, err := q.GetFarmPool(ctx, asset)
		if err != nil {
			return true, err
		}
		if !found {
			return true, errors.Wrapf(farm.ErrPoolNotFound, "asset %s", asset)
		}
		if err := farm.SettlePool(state.RewardIndex, &pool); err != nil {
			return true, err
		}
		if err := farm.SettleUser(pool, &info); err != nil {
			return true, err
		}

		bondAmount, err := farm.ShareToAmount(info.BondShare, pool.TotalBondShare, pool.TotalBondAmount)
		if err != nil {
			return true, err
		}
		pendingReward, err := farm.ShareToAmount(info.PendingRewardShare, govState.TotalShare, govState.TotalBalance)
		if err != nil {
			return true, err
		}

		views = append(views, farm.RewardInfoView{
			Asset:              asset,
			BondShare:          info.BondShare,
			BondAmount:         bondAmount,
			PendingRewardShare: info.PendingRewardShare,
			PendingReward:      pendingReward,
		})
		return false, nil
	}); err != nil {
		return nil, errors.Wrap(err, "unable to iterate reward infos")
	}

	return &farm.QueryRewardInfoResponse{Staker: req.Staker, RewardInfos: views}, nil
}

// previewFarmState accrues the global state without persisting it. A
// decreased balance is treated as no new reward.
func (k *Keeper) previewFarmState(ctx context.Context) (farm.GlobalState, math.Int, error) {
	state, err := k.GetFarmState(ctx)
	if err != nil {
		return farm.GlobalState{}, math.Int{}, errors.Wrap(err, "unable to fetch farm state")
	}
	observed, err := k.ObservedRewardBalance(ctx)
	if err != nil {
		return farm.GlobalState{}, math.Int{}, errors.Wrap(err, "unable to fetch observed balance")
	}

	if err := farm.AccrueGlobalLossy(&state, observed); err != nil {
		return farm.GlobalState{}, math.Int{}, err
	}

	return state, observed, nil
}
