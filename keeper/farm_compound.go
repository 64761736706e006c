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

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

// Compound harvests the external reward of the selected pools, pays out the
// configured commission and reinvests the remainder into staking token owned
// by the pool. An empty asset selects every pool with bonded share.
func (k *Keeper) Compound(ctx context.Context, controller string, asset string) ([]farm.CompoundResult, error) {
	config, err := k.GetFarmConfig(ctx)
	if err != nil {
		return nil, err
	}
	if controller != config.Controller {
		return nil, errors.Wrapf(farm.ErrUnauthorized, "expected %s, got %s", config.Controller, controller)
	}
	controllerAddr, err := k.address.StringToBytes(controller)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "unable to decode controller address %s", controller)
	}
	if k.source == nil {
		return nil, errors.Wrap(farm.ErrRewardSource, "no reward source configured")
	}

	state, err := k.accruedFarmState(ctx)
	if err != nil {
		return nil, err
	}

	var assets []string
	if asset != "" {
		assets = append(assets, asset)
	} else if err := k.IterateFarmPools(ctx, func(pool farm.PoolInfo) (bool, error) {
		if pool.TotalBondShare.IsPositive() {
			assets = append(assets, pool.Asset)
		}
		return false, nil
	}); err != nil {
		return nil, err
	}

	var results []farm.CompoundResult
	for _, asset := range assets {
		pool, err := k.settledPool(ctx, state.RewardIndex, asset)
		if err != nil {
			return nil, err
		}

		result, err := k.compoundPool(ctx, config, sdk.AccAddress(controllerAddr), &pool)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to compound %s", asset)
		}
		if err := k.SetFarmPool(ctx, pool); err != nil {
			return nil, err
		}
		if result != nil {
			results = append(results, *result)
		}
	}

	if err := k.SetFarmState(ctx, state); err != nil {
		return nil, err
	}

	return results, nil
}

// compoundPool runs a single harvest for an already settled pool. It returns
// nil when there was nothing to claim.
func (k *Keeper) compoundPool(ctx context.Context, config farm.Config, controller sdk.AccAddress, pool *farm.PoolInfo) (*farm.CompoundResult, error) {
	// An unbonded pool would hand the reinvested amount to its first bonder.
	if pool.TotalBondShare.IsZero() {
		return nil, nil
	}

	pending, err := k.source.PendingReward(ctx, types.FarmAddress, pool.Asset)
	if err != nil {
		return nil, errors.Wrap(farm.ErrRewardSource, err.Error())
	}
	if pending.IsNil() || !pending.IsPositive() {
		return nil, nil
	}

	reward, err := k.source.ClaimReward(ctx, types.FarmAddress, pool.Asset)
	if err != nil {
		return nil, errors.Wrap(farm.ErrRewardSource, err.Error())
	}

	split, err := farm.SplitFees(reward.Amount, config)
	if err != nil {
		return nil, err
	}

	if err := k.payCommunityFee(ctx, reward.Denom, split.Community); err != nil {
		return nil, err
	}
	if split.Platform.IsPositive() {
		platform, err := k.address.StringToBytes(config.PlatformAddr)
		if err != nil {
			return nil, errors.Wrapf(types.ErrInvalidAddress, "unable to decode platform address %s", config.PlatformAddr)
		}
		if err := k.payFee(ctx, platform, reward.Denom, split.Platform); err != nil {
			return nil, err
		}
	}
	if err := k.payFee(ctx, controller, reward.Denom, split.Controller); err != nil {
		return nil, err
	}

	reinvested := math.ZeroInt()
	if split.Reinvest.IsPositive() {
		reinvested, err = k.source.Reinvest(ctx, types.FarmAddress, pool.Asset, sdk.NewCoin(reward.Denom, split.Reinvest))
		if err != nil {
			return nil, errors.Wrap(farm.ErrRewardSource, err.Error())
		}
		if pool.TotalBondAmount, err = pool.TotalBondAmount.SafeAdd(reinvested); err != nil {
			return nil, errors.Wrap(farm.ErrArithmetic, err.Error())
		}
	}

	k.indicators.ObserveCompound(pool.Asset, reward.Denom, split, reinvested)

	if err := k.event.EventManager(ctx).EmitKV(ctx, farm.EventTypeCompound,
		event.NewAttribute(farm.AttributeKeyAsset, pool.Asset),
		event.NewAttribute(farm.AttributeKeyReward, reward.String()),
		event.NewAttribute(farm.AttributeKeyCommission, split.Commission.String()),
		event.NewAttribute(farm.AttributeKeyReinvested, reinvested.String()),
	); err != nil {
		return nil, err
	}

	return &farm.CompoundResult{
		Asset:      pool.Asset,
		Reward:     reward.Amount,
		Fees:       split,
		Reinvested: reinvested,
	}, nil
}

func (k *Keeper) payFee(ctx context.Context, recipient sdk.AccAddress, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	if err := k.bank.SendCoins(ctx, types.FarmAddress, recipient, sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return errors.Wrapf(err, "unable to pay fee to %s", recipient)
	}

	return nil
}

// payCommunityFee converts the community bucket into SPEC and deposits it
// into the gov vault on behalf of every gov staker.
func (k *Keeper) payCommunityFee(ctx context.Context, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	if denom != k.denom {
		swapped, err := k.source.Swap(ctx, types.FarmAddress, sdk.NewCoin(denom, amount), k.denom)
		if err != nil {
			return errors.Wrap(farm.ErrRewardSource, err.Error())
		}
		amount = swapped
	}

	if err := k.DepositGovReward(ctx, types.FarmAddress, amount); err != nil {
		return errors.Wrap(err, "unable to pay community fee")
	}

	return nil
}
