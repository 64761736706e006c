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
	hyperlaneutil "github.com/bcp-innovations/hyperlane-cosmos/util"

	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

// SetRemoteReporter enrols the Hyperlane sender allowed to report compounding
// done on a remote chain for asset. An empty reporter removes the enrolment.
func (k *Keeper) SetRemoteReporter(ctx context.Context, owner string, asset string, domain uint32, reporter string) error {
	config, err := k.GetFarmConfig(ctx)
	if err != nil {
		return err
	}
	if owner != config.Owner {
		return errors.Wrapf(farm.ErrUnauthorized, "expected %s, got %s", config.Owner, owner)
	}

	pool, found, err := k.GetFarmPool(ctx, asset)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(farm.ErrPoolNotFound, "asset %s", asset)
	}

	if reporter == "" {
		pool.RemoteDomain = 0
		pool.RemoteReporter = ""
		return k.SetFarmPool(ctx, pool)
	}

	address, err := hyperlaneutil.DecodeHexAddress(reporter)
	if err != nil {
		return errors.Wrapf(types.ErrInvalidAddress, "unable to decode reporter %s", reporter)
	}
	if address.IsZeroAddress() {
		return errors.Wrap(types.ErrInvalidAddress, "reporter cannot be the zero address")
	}

	pool.RemoteDomain = domain
	pool.RemoteReporter = address.String()

	return k.SetFarmPool(ctx, pool)
}

// HandleHyperlaneCompoundReport processes a Hyperlane message reporting
// staking token compounded on a remote chain and delivered to the farm. The
// origin and sender must match the pool's enrolled reporter, and reports must
// arrive in timestamp order.
func (k *Keeper) HandleHyperlaneCompoundReport(ctx context.Context, mailboxID hyperlaneutil.HexAddress, message hyperlaneutil.HyperlaneMessage) (math.Int, error) {
	if mailboxID.IsZeroAddress() {
		return math.Int{}, errors.Wrap(farm.ErrUnauthorized, "mailbox identifier must be provided")
	}

	payload, err := farm.ParseCompoundReportPayload(message.Body)
	if err != nil {
		return math.Int{}, errors.Wrap(farm.ErrInvalidReport, err.Error())
	}

	var pool farm.PoolInfo
	var found bool
	if err := k.IterateFarmPools(ctx, func(candidate farm.PoolInfo) (bool, error) {
		if farm.AssetHash(candidate.Asset) == payload.AssetHash {
			pool, found = candidate, true
			return true, nil
		}
		return false, nil
	}); err != nil {
		return math.Int{}, errors.Wrap(err, "unable to look up reported pool")
	}
	if !found {
		return math.Int{}, errors.Wrapf(farm.ErrPoolNotFound, "asset hash %x", payload.AssetHash)
	}

	if pool.RemoteReporter == "" {
		return math.Int{}, errors.Wrapf(farm.ErrUnauthorized, "pool %s has no remote reporter", pool.Asset)
	}
	reporter, err := hyperlaneutil.DecodeHexAddress(pool.RemoteReporter)
	if err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInvalidAddress, "stored reporter %s", pool.RemoteReporter)
	}
	if message.Origin != pool.RemoteDomain {
		return math.Int{}, errors.Wrapf(farm.ErrUnauthorized, "unexpected message origin %d (expected %d)", message.Origin, pool.RemoteDomain)
	}
	if !message.Sender.Equal(reporter) {
		return math.Int{}, errors.Wrapf(farm.ErrUnauthorized, "unexpected reporter %s (expected %s)", message.Sender.String(), reporter.String())
	}
	if !pool.LastReportTime.IsZero() && !payload.Timestamp.After(pool.LastReportTime) {
		return math.Int{}, errors.Wrapf(farm.ErrInvalidReport, "stale report for %s", pool.Asset)
	}
	if !payload.Amount.IsPositive() {
		return math.Int{}, errors.Wrap(farm.ErrInvalidReport, "reported amount must be positive")
	}

	state, err := k.accruedFarmState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if err := farm.SettlePool(state.RewardIndex, &pool); err != nil {
		return math.Int{}, err
	}
	if pool.TotalBondShare.IsZero() {
		return math.Int{}, errors.Wrapf(farm.ErrInvalidReport, "pool %s has no bonded share", pool.Asset)
	}

	bondAmount, err := pool.TotalBondAmount.SafeAdd(payload.Amount)
	if err != nil {
		return math.Int{}, errors.Wrap(farm.ErrArithmetic, err.Error())
	}
	held := k.bank.GetBalance(ctx, types.FarmAddress, pool.StakingToken)
	if held.Amount.LT(bondAmount) {
		return math.Int{}, errors.Wrapf(farm.ErrInvalidReport, "farm holds %s, report requires %s%s", held, bondAmount, pool.StakingToken)
	}

	pool.TotalBondAmount = bondAmount
	pool.LastReportTime = payload.Timestamp

	if err := k.SetFarmState(ctx, state); err != nil {
		return math.Int{}, err
	}
	if err := k.SetFarmPool(ctx, pool); err != nil {
		return math.Int{}, errors.Wrap(err, "unable to persist pool")
	}

	k.indicators.ObserveRemoteCompound(pool.Asset, payload.Amount)

	return payload.Amount, k.event.EventManager(ctx).EmitKV(ctx, farm.EventTypeRemoteCompound,
		event.NewAttribute(farm.AttributeKeyAsset, pool.Asset),
		event.NewAttribute(farm.AttributeKeyOrigin, strconv.FormatUint(uint64(message.Origin), 10)),
		event.NewAttribute(farm.AttributeKeyReinvested, payload.Amount.String()),
	)
}
