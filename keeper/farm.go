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
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

// ObservedRewardBalance is the farm's current holding of reward, expressed
// as its share in the gov vault.
func (k *Keeper) ObservedRewardBalance(ctx context.Context) (math.Int, error) {
	return k.GetGovShare(ctx, types.FarmAddress)
}

// accruedFarmState loads the global state and folds in every reward that
// arrived since the last observation. A decreased balance aborts.
func (k *Keeper) accruedFarmState(ctx context.Context) (farm.GlobalState, error) {
	state, err := k.GetFarmState(ctx)
	if err != nil {
		return farm.GlobalState{}, err
	}
	observed, err := k.ObservedRewardBalance(ctx)
	if err != nil {
		return farm.GlobalState{}, err
	}

	if err := farm.AccrueGlobalStrict(&state, observed); err != nil {
		return farm.GlobalState{}, err
	}

	return state, nil
}

// settledPool loads the pool for asset and settles it against globalIndex.
func (k *Keeper) settledPool(ctx context.Context, globalIndex math.LegacyDec, asset string) (farm.PoolInfo, error) {
	pool, found, err := k.GetFarmPool(ctx, asset)
	if err != nil {
		return farm.PoolInfo{}, err
	}
	if !found {
		return farm.PoolInfo{}, errors.Wrapf(farm.ErrPoolNotFound, "asset %s", asset)
	}

	if err := farm.SettlePool(globalIndex, &pool); err != nil {
		return farm.PoolInfo{}, err
	}

	return pool, nil
}

// settledRewardInfo loads the position of owner in pool, seeding a fresh one
// when absent, and settles it.
func (k *Keeper) settledRewardInfo(ctx context.Context, owner sdk.AccAddress, pool farm.PoolInfo) (farm.RewardInfo, bool, error) {
	info, found, err := k.GetFarmRewardInfo(ctx, owner, pool.Asset)
	if err != nil {
		return farm.RewardInfo{}, false, err
	}
	if !found {
		info = farm.NewRewardInfo(pool)
	}

	if err := farm.SettleUser(pool, &info); err != nil {
		return farm.RewardInfo{}, false, err
	}

	return info, found, nil
}

// Bond deposits amount of the pool's staking token for staker and mints the
// corresponding bond share.
func (k *Keeper) Bond(ctx context.Context, staker sdk.AccAddress, asset string, amount sdk.Coin) (math.Int, error) {
	pool, found, err := k.GetFarmPool(ctx, asset)
	if err != nil {
		return math.Int{}, err
	}
	if !found {
		return math.Int{}, errors.Wrapf(farm.ErrPoolNotFound, "asset %s", asset)
	}
	if amount.Denom != pool.StakingToken {
		return math.Int{}, errors.Wrapf(farm.ErrUnauthorized, "pool %s accepts %s, got %s", asset, pool.StakingToken, amount.Denom)
	}
	if amount.Amount.IsNil() || !amount.Amount.IsPositive() {
		return math.Int{}, errors.Wrap(farm.ErrInvalidAmount, "bond amount must be positive")
	}

	state, err := k.accruedFarmState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if pool, err = k.settledPool(ctx, state.RewardIndex, asset); err != nil {
		return math.Int{}, err
	}
	info, _, err := k.settledRewardInfo(ctx, staker, pool)
	if err != nil {
		return math.Int{}, err
	}

	share, err := farm.AmountToShare(amount.Amount, pool.TotalBondShare, pool.TotalBondAmount)
	if err != nil {
		return math.Int{}, err
	}
	if share.IsZero() {
		return math.Int{}, errors.Wrapf(farm.ErrInvalidAmount, "bond of %s is too small to mint a share", amount)
	}

	if pool.TotalBondShare, err = pool.TotalBondShare.SafeAdd(share); err != nil {
		return math.Int{}, errors.Wrap(farm.ErrArithmetic, err.Error())
	}
	if pool.TotalBondAmount, err = pool.TotalBondAmount.SafeAdd(amount.Amount); err != nil {
		return math.Int{}, errors.Wrap(farm.ErrArithmetic, err.Error())
	}
	if info.BondShare, err = info.BondShare.SafeAdd(share); err != nil {
		return math.Int{}, errors.Wrap(farm.ErrArithmetic, err.Error())
	}

	if err := k.bank.SendCoins(ctx, staker, types.FarmAddress, sdk.NewCoins(amount)); err != nil {
		return math.Int{}, errors.Wrap(err, "unable to transfer bond to farm")
	}

	if err := k.SetFarmState(ctx, state); err != nil {
		return math.Int{}, err
	}
	if err := k.SetFarmPool(ctx, pool); err != nil {
		return math.Int{}, err
	}
	if err := k.SetFarmRewardInfo(ctx, staker, asset, info); err != nil {
		return math.Int{}, err
	}

	return share, k.event.EventManager(ctx).EmitKV(ctx, farm.EventTypeBond,
		event.NewAttribute(farm.AttributeKeyStaker, staker.String()),
		event.NewAttribute(farm.AttributeKeyAsset, asset),
		event.NewAttribute(farm.AttributeKeyAmount, amount.Amount.String()),
		event.NewAttribute(farm.AttributeKeyShare, share.String()),
	)
}

// Unbond returns amount of staking token to staker, burning the rounded-up
// share. Positions left empty are removed.
func (k *Keeper) Unbond(ctx context.Context, staker sdk.AccAddress, asset string, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, errors.Wrap(farm.ErrInvalidAmount, "unbond amount must be positive")
	}

	state, err := k.accruedFarmState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	pool, err := k.settledPool(ctx, state.RewardIndex, asset)
	if err != nil {
		return math.Int{}, err
	}
	info, found, err := k.settledRewardInfo(ctx, staker, pool)
	if err != nil {
		return math.Int{}, err
	}
	if !found {
		return math.Int{}, errors.Wrapf(farm.ErrInsufficientBalance, "%s has no position in %s", staker, asset)
	}

	bonded, err := farm.ShareToAmount(info.BondShare, pool.TotalBondShare, pool.TotalBondAmount)
	if err != nil {
		return math.Int{}, err
	}
	if amount.GT(bonded) {
		return math.Int{}, errors.Wrapf(farm.ErrInsufficientBalance, "requested %s, bonded %s", amount, bonded)
	}

	share, err := farm.AmountToShareRoundUp(amount, pool.TotalBondShare, pool.TotalBondAmount)
	if err != nil {
		return math.Int{}, err
	}
	if share.GT(info.BondShare) {
		return math.Int{}, errors.Wrapf(farm.ErrInsufficientBalance, "requires %s share, holds %s", share, info.BondShare)
	}

	pool.TotalBondShare = pool.TotalBondShare.Sub(share)
	info.BondShare = info.BondShare.Sub(share)
	if pool.TotalBondAmount, err = pool.TotalBondAmount.SafeSub(amount); err != nil || pool.TotalBondAmount.IsNegative() {
		return math.Int{}, errors.Wrapf(farm.ErrArithmetic, "pool %s bond amount underflow", asset)
	}

	if err := k.SetFarmState(ctx, state); err != nil {
		return math.Int{}, err
	}
	if err := k.SetFarmPool(ctx, pool); err != nil {
		return math.Int{}, err
	}
	if err := k.SetFarmRewardInfo(ctx, staker, asset, info); err != nil {
		return math.Int{}, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.StakingToken, amount))
	if err := k.bank.SendCoins(ctx, types.FarmAddress, staker, coins); err != nil {
		return math.Int{}, errors.Wrap(err, "unable to return bond to staker")
	}

	return share, k.event.EventManager(ctx).EmitKV(ctx, farm.EventTypeUnbond,
		event.NewAttribute(farm.AttributeKeyStaker, staker.String()),
		event.NewAttribute(farm.AttributeKeyAsset, asset),
		event.NewAttribute(farm.AttributeKeyAmount, amount.String()),
		event.NewAttribute(farm.AttributeKeyShare, share.String()),
	)
}

// Withdraw pays out accumulated reward to staker. An empty asset selects
// every position of staker; a nil amount redeems everything pending. Partial
// amounts are deducted from the selected positions in asset order.
func (k *Keeper) Withdraw(ctx context.Context, staker sdk.AccAddress, asset string, amount math.Int) (share math.Int, paid math.Int, err error) {
	if !amount.IsNil() && !amount.IsPositive() {
		return math.Int{}, math.Int{}, errors.Wrap(farm.ErrInvalidAmount, "withdraw amount must be positive")
	}

	state, err := k.accruedFarmState(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	var assets []string
	if asset != "" {
		assets = append(assets, asset)
	} else if err := k.IterateFarmRewardInfos(ctx, staker, func(asset string, _ farm.RewardInfo) (bool, error) {
		assets = append(assets, asset)
		return false, nil
	}); err != nil {
		return math.Int{}, math.Int{}, err
	}

	pools := make([]farm.PoolInfo, 0, len(assets))
	infos := make([]farm.RewardInfo, 0, len(assets))
	pending := math.ZeroInt()
	for _, asset := range assets {
		pool, err := k.settledPool(ctx, state.RewardIndex, asset)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		info, _, err := k.settledRewardInfo(ctx, staker, pool)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}

		pools = append(pools, pool)
		infos = append(infos, info)
		pending = pending.Add(info.PendingRewardShare)
	}

	govState, err := k.GetGovState(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if amount.IsNil() {
		share = pending
		if paid, err = farm.ShareToAmount(share, govState.TotalShare, govState.TotalBalance); err != nil {
			return math.Int{}, math.Int{}, err
		}
	} else {
		if share, err = farm.AmountToShareRoundUp(amount, govState.TotalShare, govState.TotalBalance); err != nil {
			return math.Int{}, math.Int{}, err
		}
		if share.GT(pending) {
			return math.Int{}, math.Int{}, errors.Wrapf(farm.ErrInsufficientBalance, "requires %s reward share, pending %s", share, pending)
		}
		paid = amount
	}

	remaining := share
	for i := range infos {
		deduct := math.MinInt(remaining, infos[i].PendingRewardShare)
		infos[i].PendingRewardShare = infos[i].PendingRewardShare.Sub(deduct)
		remaining = remaining.Sub(deduct)
	}

	if state.PreviousRewardBalance, err = state.PreviousRewardBalance.SafeSub(share); err != nil || state.PreviousRewardBalance.IsNegative() {
		return math.Int{}, math.Int{}, errors.Wrap(farm.ErrArithmetic, "previous reward balance underflow")
	}

	if err := k.SetFarmState(ctx, state); err != nil {
		return math.Int{}, math.Int{}, err
	}
	for i := range pools {
		if err := k.SetFarmPool(ctx, pools[i]); err != nil {
			return math.Int{}, math.Int{}, err
		}
		if err := k.SetFarmRewardInfo(ctx, staker, pools[i].Asset, infos[i]); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	if share.IsPositive() {
		if err := k.debitGovShares(ctx, types.FarmAddress, share, paid); err != nil {
			return math.Int{}, math.Int{}, err
		}
		if err := k.payoutGov(ctx, staker, paid); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	return share, paid, k.event.EventManager(ctx).EmitKV(ctx, farm.EventTypeWithdraw,
		event.NewAttribute(farm.AttributeKeyStaker, staker.String()),
		event.NewAttribute(farm.AttributeKeyAsset, asset),
		event.NewAttribute(farm.AttributeKeyAmount, paid.String()),
		event.NewAttribute(farm.AttributeKeyShare, share.String()),
	)
}

// RegisterAsset creates the pool for asset, or re-weights an existing one.
// Rewards accrued under the previous weights are settled first.
func (k *Keeper) RegisterAsset(ctx context.Context, owner string, asset string, stakingToken string, weight uint32) error {
	config, err := k.GetFarmConfig(ctx)
	if err != nil {
		return err
	}
	if owner != config.Owner {
		return errors.Wrapf(farm.ErrUnauthorized, "expected %s, got %s", config.Owner, owner)
	}
	if asset == "" {
		return errors.Wrap(types.ErrInvalidRequest, "asset cannot be empty")
	}
	if err := sdk.ValidateDenom(stakingToken); err != nil {
		return errors.Wrapf(types.ErrInvalidRequest, "invalid staking token: %s", err)
	}

	state, err := k.accruedFarmState(ctx)
	if err != nil {
		return err
	}

	pool, found, err := k.GetFarmPool(ctx, asset)
	if err != nil {
		return err
	}

	totalWeight := uint64(state.TotalWeight) + uint64(weight)
	if found {
		if pool.StakingToken != stakingToken {
			return errors.Wrapf(types.ErrInvalidRequest, "pool %s already staking %s", asset, pool.StakingToken)
		}
		if err := farm.SettlePool(state.RewardIndex, &pool); err != nil {
			return err
		}
		totalWeight -= uint64(pool.Weight)
		pool.Weight = weight
	} else {
		// Pools are told apart by the staking token they hold.
		if err := k.IterateFarmPools(ctx, func(existing farm.PoolInfo) (bool, error) {
			if existing.StakingToken == stakingToken {
				return true, errors.Wrapf(types.ErrInvalidRequest, "staking token %s already used by pool %s", stakingToken, existing.Asset)
			}
			return false, nil
		}); err != nil {
			return err
		}
		pool = farm.NewPoolInfo(asset, stakingToken, weight, state.RewardIndex)
	}
	if totalWeight > uint64(^uint32(0)) {
		return errors.Wrap(farm.ErrArithmetic, "total weight overflow")
	}
	state.TotalWeight = uint32(totalWeight)

	if err := k.SetFarmState(ctx, state); err != nil {
		return err
	}
	if err := k.SetFarmPool(ctx, pool); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(ctx, farm.EventTypeRegisterAsset,
		event.NewAttribute(farm.AttributeKeyAsset, asset),
		event.NewAttribute(farm.AttributeKeyWeight, strconv.FormatUint(uint64(weight), 10)),
	)
}

// UpdateConfig applies msg to the stored configuration. Only the current
// owner may call it.
func (k *Keeper) UpdateConfig(ctx context.Context, msg *farm.MsgUpdateConfig) error {
	config, err := k.GetFarmConfig(ctx)
	if err != nil {
		return err
	}
	if msg.Owner != config.Owner {
		return errors.Wrapf(farm.ErrUnauthorized, "expected %s, got %s", config.Owner, msg.Owner)
	}

	for _, address := range []string{msg.NewOwner, msg.Controller, msg.PlatformAddr} {
		if address == "" {
			continue
		}
		if _, err := k.address.StringToBytes(address); err != nil {
			return errors.Wrapf(types.ErrInvalidAddress, "unable to decode %s", address)
		}
	}

	if msg.NewOwner != "" {
		config.Owner = msg.NewOwner
	}
	if msg.Controller != "" {
		config.Controller = msg.Controller
	}
	if msg.PlatformAddr != "" {
		config.PlatformAddr = msg.PlatformAddr
	}
	if msg.CommunityFee != nil {
		config.CommunityFee = *msg.CommunityFee
	}
	if msg.PlatformFee != nil {
		config.PlatformFee = *msg.PlatformFee
	}
	if msg.ControllerFee != nil {
		config.ControllerFee = *msg.ControllerFee
	}

	if err := config.ValidateFees(); err != nil {
		return err
	}
	if config.PlatformFee.IsPositive() && config.PlatformAddr == "" {
		return errors.Wrap(farm.ErrInvalidFee, "platform fee requires a platform address")
	}

	if err := k.SetFarmConfig(ctx, config); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(ctx, farm.EventTypeUpdateConfig,
		event.NewAttribute(farm.AttributeKeyOwner, config.Owner),
	)
}
