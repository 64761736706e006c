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
	"github.com/spectrumprotocol/contracts-sub002/types/gov"
)

// Stake transfers amount of SPEC from staker into the gov vault and credits
// the corresponding share.
func (k *Keeper) Stake(ctx context.Context, staker sdk.AccAddress, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, errors.Wrap(gov.ErrInvalidAmount, "stake amount must be positive")
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bank.SendCoins(ctx, staker, types.GovAddress, coins); err != nil {
		return math.Int{}, errors.Wrap(err, "unable to transfer stake to gov vault")
	}

	share, err := k.creditGovShares(ctx, staker, amount)
	if err != nil {
		return math.Int{}, err
	}
	if share.IsZero() {
		return math.Int{}, errors.Wrapf(gov.ErrInvalidAmount, "stake of %s is too small to mint a share", amount)
	}

	return share, k.event.EventManager(ctx).EmitKV(ctx, gov.EventTypeStake,
		event.NewAttribute(gov.AttributeKeyStaker, staker.String()),
		event.NewAttribute(gov.AttributeKeyAmount, amount.String()),
		event.NewAttribute(gov.AttributeKeyShare, share.String()),
	)
}

// Unstake releases amount of SPEC back to staker. A nil amount releases the
// whole balance. Partial amounts burn the rounded-up share so a staker never
// receives more than it owns.
func (k *Keeper) Unstake(ctx context.Context, staker sdk.AccAddress, amount math.Int) (share math.Int, paid math.Int, err error) {
	state, err := k.GetGovState(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	current, err := k.GetGovShare(ctx, staker)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if amount.IsNil() {
		if current.IsZero() {
			return math.Int{}, math.Int{}, errors.Wrap(gov.ErrInsufficientShare, "nothing staked")
		}
		share = current
		amount, err = farm.ShareToAmount(share, state.TotalShare, state.TotalBalance)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	} else {
		if !amount.IsPositive() {
			return math.Int{}, math.Int{}, errors.Wrap(gov.ErrInvalidAmount, "unstake amount must be positive")
		}
		share, err = farm.AmountToShareRoundUp(amount, state.TotalShare, state.TotalBalance)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	if err := k.debitGovShares(ctx, staker, share, amount); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.payoutGov(ctx, staker, amount); err != nil {
		return math.Int{}, math.Int{}, err
	}

	return share, amount, k.event.EventManager(ctx).EmitKV(ctx, gov.EventTypeUnstake,
		event.NewAttribute(gov.AttributeKeyStaker, staker.String()),
		event.NewAttribute(gov.AttributeKeyAmount, amount.String()),
		event.NewAttribute(gov.AttributeKeyShare, share.String()),
	)
}

// Mint issues the SPEC scheduled since the last mint and distributes it to
// the registered vaults by weight, as gov share. Integer remainders of the
// weighted split are not minted.
func (k *Keeper) Mint(ctx context.Context) (math.Int, error) {
	params, err := k.GetGovParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	state, err := k.GetGovState(ctx)
	if err != nil {
		return math.Int{}, err
	}

	height := k.header.GetHeaderInfo(ctx).Height
	if height <= state.LastMintHeight {
		return math.ZeroInt(), nil
	}

	total := params.MintAmount(state.LastMintHeight, height)
	state.LastMintHeight = height
	if err := k.SetGovState(ctx, state); err != nil {
		return math.Int{}, err
	}
	if total.IsZero() {
		return math.ZeroInt(), nil
	}

	type allocation struct {
		address sdk.AccAddress
		weight  uint32
	}
	var allocations []allocation
	var totalWeight int64
	if err := k.IterateGovVaults(ctx, func(address sdk.AccAddress, vault gov.Vault) (bool, error) {
		allocations = append(allocations, allocation{address, vault.Weight})
		totalWeight += int64(vault.Weight)
		return false, nil
	}); err != nil {
		return math.Int{}, err
	}
	if totalWeight == 0 {
		return math.ZeroInt(), nil
	}

	minted := math.ZeroInt()
	for _, a := range allocations {
		amount := total.MulRaw(int64(a.weight)).QuoRaw(totalWeight)
		if amount.IsZero() {
			continue
		}
		if _, err := k.creditGovShares(ctx, a.address, amount); err != nil {
			return math.Int{}, errors.Wrapf(err, "unable to credit vault %s", a.address)
		}
		minted = minted.Add(amount)
	}

	if minted.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, minted))
		if err := k.bank.MintCoins(ctx, types.ModuleName, coins); err != nil {
			return math.Int{}, errors.Wrap(err, "unable to mint coins")
		}
		if err := k.bank.SendCoins(ctx, types.ModuleAddress, types.GovAddress, coins); err != nil {
			return math.Int{}, errors.Wrap(err, "unable to transfer minted coins to gov vault")
		}
	}

	k.logger.Debug("minted SPEC", "amount", minted, "height", height)

	return minted, k.event.EventManager(ctx).EmitKV(ctx, gov.EventTypeMint,
		event.NewAttribute(gov.AttributeKeyHeight, math.NewInt(height).String()),
		event.NewAttribute(gov.AttributeKeyMinted, minted.String()),
	)
}

// GovShareToAmount values share at the current gov vault ratio.
func (k *Keeper) GovShareToAmount(ctx context.Context, share math.Int) (math.Int, error) {
	state, err := k.GetGovState(ctx)
	if err != nil {
		return math.Int{}, err
	}

	return farm.ShareToAmount(share, state.TotalShare, state.TotalBalance)
}

// DepositGovReward moves amount of SPEC from depositor into the gov vault
// without issuing share, raising the value of every existing share.
func (k *Keeper) DepositGovReward(ctx context.Context, depositor sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return nil
	}

	state, err := k.GetGovState(ctx)
	if err != nil {
		return err
	}
	if state.TotalBalance, err = state.TotalBalance.SafeAdd(amount); err != nil {
		return errors.Wrap(gov.ErrArithmetic, err.Error())
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bank.SendCoins(ctx, depositor, types.GovAddress, coins); err != nil {
		return errors.Wrap(err, "unable to transfer reward to gov vault")
	}
	if err := k.SetGovState(ctx, state); err != nil {
		return err
	}

	return k.event.EventManager(ctx).EmitKV(ctx, gov.EventTypeDeposit,
		event.NewAttribute(gov.AttributeKeyDepositor, depositor.String()),
		event.NewAttribute(gov.AttributeKeyAmount, amount.String()),
	)
}

// creditGovShares issues share to address for amount of SPEC that is, or is
// about to be, held by the gov module account.
func (k *Keeper) creditGovShares(ctx context.Context, address sdk.AccAddress, amount math.Int) (math.Int, error) {
	state, err := k.GetGovState(ctx)
	if err != nil {
		return math.Int{}, err
	}

	share, err := farm.AmountToShare(amount, state.TotalShare, state.TotalBalance)
	if err != nil {
		return math.Int{}, err
	}

	current, err := k.GetGovShare(ctx, address)
	if err != nil {
		return math.Int{}, err
	}

	if state.TotalShare, err = state.TotalShare.SafeAdd(share); err != nil {
		return math.Int{}, errors.Wrap(gov.ErrArithmetic, err.Error())
	}
	if state.TotalBalance, err = state.TotalBalance.SafeAdd(amount); err != nil {
		return math.Int{}, errors.Wrap(gov.ErrArithmetic, err.Error())
	}
	if current, err = current.SafeAdd(share); err != nil {
		return math.Int{}, errors.Wrap(gov.ErrArithmetic, err.Error())
	}

	if err := k.SetGovShare(ctx, address, current); err != nil {
		return math.Int{}, err
	}
	if err := k.SetGovState(ctx, state); err != nil {
		return math.Int{}, err
	}

	return share, nil
}

// debitGovShares burns share from address and removes amount of SPEC from
// the ledger. The caller is responsible for paying amount out.
func (k *Keeper) debitGovShares(ctx context.Context, address sdk.AccAddress, share, amount math.Int) error {
	current, err := k.GetGovShare(ctx, address)
	if err != nil {
		return err
	}
	if current.LT(share) {
		return errors.Wrapf(gov.ErrInsufficientShare, "%s holds %s share, requires %s", address, current, share)
	}

	state, err := k.GetGovState(ctx)
	if err != nil {
		return err
	}

	if state.TotalShare, err = state.TotalShare.SafeSub(share); err != nil {
		return errors.Wrap(gov.ErrArithmetic, err.Error())
	}
	if state.TotalBalance, err = state.TotalBalance.SafeSub(amount); err != nil {
		return errors.Wrap(gov.ErrArithmetic, err.Error())
	}
	if state.TotalShare.IsNegative() || state.TotalBalance.IsNegative() {
		return errors.Wrap(gov.ErrArithmetic, "gov ledger underflow")
	}

	if err := k.SetGovShare(ctx, address, current.Sub(share)); err != nil {
		return err
	}

	return k.SetGovState(ctx, state)
}

func (k *Keeper) payoutGov(ctx context.Context, recipient sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bank.SendCoins(ctx, types.GovAddress, recipient, coins); err != nil {
		return errors.Wrap(err, "unable to pay out from gov vault")
	}

	return nil
}
