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

package farm

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// AccrueGlobalStrict folds the reward that arrived since the last observation
// into the global index. A balance lower than the previous observation is an
// error.
func AccrueGlobalStrict(state *GlobalState, observed math.Int) error {
	if state.TotalWeight == 0 {
		return nil
	}

	delta, err := observed.SafeSub(state.PreviousRewardBalance)
	if err != nil {
		return errors.Wrapf(ErrArithmetic, "reward delta: %s", err)
	}
	if delta.IsNegative() {
		return errors.Wrapf(
			ErrRewardBalanceDecreased,
			"observed %s, previously %s", observed, state.PreviousRewardBalance,
		)
	}

	return accrue(state, delta, observed)
}

// AccrueGlobalLossy behaves like AccrueGlobalStrict but treats a decreased
// balance as zero new reward. It is meant for read-only paths only.
func AccrueGlobalLossy(state *GlobalState, observed math.Int) error {
	if state.TotalWeight == 0 {
		return nil
	}

	delta := observed.Sub(state.PreviousRewardBalance)
	if delta.IsNegative() {
		delta = math.ZeroInt()
	}

	return accrue(state, delta, observed)
}

func accrue(state *GlobalState, delta, observed math.Int) error {
	index, err := checkedDec(func() math.LegacyDec {
		perWeight := math.LegacyNewDecFromInt(delta).QuoInt64(int64(state.TotalWeight))
		return state.RewardIndex.Add(perWeight)
	})
	if err != nil {
		return err
	}

	state.RewardIndex = index
	state.PreviousRewardBalance = observed
	return nil
}

// SettlePool moves the pool's slice of newly accrued global reward into its
// per-share index. Must run before any change to the pool's share ledger.
func SettlePool(globalIndex math.LegacyDec, pool *PoolInfo) error {
	if pool.TotalBondShare.IsZero() {
		pool.CheckpointIndex = globalIndex
		return nil
	}

	delta := globalIndex.Sub(pool.CheckpointIndex)
	if delta.IsNegative() {
		return errors.Wrapf(
			ErrArithmetic,
			"global index %s behind pool %s checkpoint %s", globalIndex, pool.Asset, pool.CheckpointIndex,
		)
	}

	index, err := checkedDec(func() math.LegacyDec {
		accrued := delta.MulInt64(int64(pool.Weight))
		return pool.PoolRewardIndex.Add(accrued.QuoInt(pool.TotalBondShare))
	})
	if err != nil {
		return err
	}

	pool.PoolRewardIndex = index
	pool.CheckpointIndex = globalIndex
	return nil
}

// SettleUser realises the reward owed to a position since its checkpoint.
// Must run before any change to the position's bond share.
func SettleUser(pool PoolInfo, info *RewardInfo) error {
	delta := pool.PoolRewardIndex.Sub(info.CheckpointIndex)
	if delta.IsNegative() {
		return errors.Wrapf(
			ErrArithmetic,
			"pool %s index %s behind position checkpoint %s", pool.Asset, pool.PoolRewardIndex, info.CheckpointIndex,
		)
	}

	owed, err := checkedDec(func() math.LegacyDec {
		return delta.MulInt(info.BondShare)
	})
	if err != nil {
		return err
	}

	pending, err := info.PendingRewardShare.SafeAdd(owed.TruncateInt())
	if err != nil {
		return errors.Wrapf(ErrArithmetic, "pending reward: %s", err)
	}

	info.PendingRewardShare = pending
	info.CheckpointIndex = pool.PoolRewardIndex
	return nil
}

// checkedDec converts the overflow panics raised by math.LegacyDec into
// ErrArithmetic.
func checkedDec(op func() math.LegacyDec) (res math.LegacyDec, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrArithmetic, "%v", r)
		}
	}()

	return op(), nil
}
