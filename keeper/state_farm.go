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
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

// GetFarmConfig returns the stored farm configuration. Until one is written
// the module authority acts as both owner and controller.
func (k *Keeper) GetFarmConfig(ctx context.Context) (farm.Config, error) {
	config, err := k.FarmConfig.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			config = farm.DefaultConfig()
			config.Owner = k.authority
			config.Controller = k.authority
			return config, nil
		}
		return farm.Config{}, err
	}

	return config, nil
}

// SetFarmConfig persists the provided farm configuration.
func (k *Keeper) SetFarmConfig(ctx context.Context, config farm.Config) error {
	return k.FarmConfig.Set(ctx, config)
}

// GetFarmState returns the global reward state, or a zeroed state when the
// farm has not been touched yet.
func (k *Keeper) GetFarmState(ctx context.Context) (farm.GlobalState, error) {
	state, err := k.FarmState.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return farm.NewGlobalState(), nil
		}
		return farm.GlobalState{}, err
	}

	return state, nil
}

func (k *Keeper) SetFarmState(ctx context.Context, state farm.GlobalState) error {
	return k.FarmState.Set(ctx, state)
}

// GetFarmPool returns the pool registered for asset. The boolean reports
// whether the pool exists.
func (k *Keeper) GetFarmPool(ctx context.Context, asset string) (farm.PoolInfo, bool, error) {
	pool, err := k.FarmPools.Get(ctx, asset)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return farm.PoolInfo{}, false, nil
		}
		return farm.PoolInfo{}, false, err
	}

	return pool, true, nil
}

func (k *Keeper) SetFarmPool(ctx context.Context, pool farm.PoolInfo) error {
	return k.FarmPools.Set(ctx, pool.Asset, pool)
}

// IterateFarmPools walks every registered pool in asset order.
func (k *Keeper) IterateFarmPools(ctx context.Context, fn func(pool farm.PoolInfo) (bool, error)) error {
	return k.FarmPools.Walk(ctx, nil, func(_ string, pool farm.PoolInfo) (bool, error) {
		return fn(pool)
	})
}

// GetFarmRewardInfo returns the position of owner in the pool for asset.
func (k *Keeper) GetFarmRewardInfo(ctx context.Context, owner sdk.AccAddress, asset string) (farm.RewardInfo, bool, error) {
	info, err := k.FarmRewards.Get(ctx, collections.Join([]byte(owner), asset))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return farm.RewardInfo{}, false, nil
		}
		return farm.RewardInfo{}, false, err
	}

	return info, true, nil
}

// SetFarmRewardInfo stores the position, removing it instead when it no
// longer holds any share.
func (k *Keeper) SetFarmRewardInfo(ctx context.Context, owner sdk.AccAddress, asset string, info farm.RewardInfo) error {
	if info.IsEmpty() {
		return k.DeleteFarmRewardInfo(ctx, owner, asset)
	}

	return k.FarmRewards.Set(ctx, collections.Join([]byte(owner), asset), info)
}

func (k *Keeper) DeleteFarmRewardInfo(ctx context.Context, owner sdk.AccAddress, asset string) error {
	err := k.FarmRewards.Remove(ctx, collections.Join([]byte(owner), asset))
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return err
	}

	return nil
}

// IterateFarmRewardInfos walks the positions held by owner in asset order.
func (k *Keeper) IterateFarmRewardInfos(ctx context.Context, owner sdk.AccAddress, fn func(asset string, info farm.RewardInfo) (bool, error)) error {
	rng := collections.NewPrefixedPairRange[[]byte, string](owner)

	return k.FarmRewards.Walk(ctx, rng, func(key collections.Pair[[]byte, string], info farm.RewardInfo) (bool, error) {
		return fn(key.K2(), info)
	})
}
