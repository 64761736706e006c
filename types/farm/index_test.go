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

package farm_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

func bond(t *testing.T, pool *farm.PoolInfo, info *farm.RewardInfo, amount int64) {
	t.Helper()

	share, err := farm.AmountToShare(math.NewInt(amount), pool.TotalBondShare, pool.TotalBondAmount)
	require.NoError(t, err)

	pool.TotalBondShare = pool.TotalBondShare.Add(share)
	pool.TotalBondAmount = pool.TotalBondAmount.Add(math.NewInt(amount))
	info.BondShare = info.BondShare.Add(share)
}

func TestSettlementScenario(t *testing.T) {
	// ARRANGE: a single pool holding the whole weight.
	state := farm.NewGlobalState()
	state.TotalWeight = 1
	pool := farm.NewPoolInfo("mir", "ulp", 1, state.RewardIndex)

	// ACT: A bonds 100 into the empty pool.
	require.NoError(t, farm.AccrueGlobalStrict(&state, math.ZeroInt()))
	require.NoError(t, farm.SettlePool(state.RewardIndex, &pool))
	a := farm.NewRewardInfo(pool)
	require.NoError(t, farm.SettleUser(pool, &a))
	bond(t, &pool, &a, 100)

	// ASSERT
	require.Equal(t, math.NewInt(100), pool.TotalBondShare)
	require.Equal(t, math.NewInt(100), pool.TotalBondAmount)
	require.Equal(t, math.NewInt(100), a.BondShare)

	// ACT: 500 reward arrives, then B bonds 100.
	require.NoError(t, farm.AccrueGlobalStrict(&state, math.NewInt(500)))
	require.NoError(t, farm.SettlePool(state.RewardIndex, &pool))
	require.NoError(t, farm.SettleUser(pool, &a))
	b := farm.NewRewardInfo(pool)
	require.NoError(t, farm.SettleUser(pool, &b))
	bond(t, &pool, &b, 100)

	// ASSERT
	require.Equal(t, math.LegacyNewDec(500), state.RewardIndex)
	require.Equal(t, math.LegacyNewDec(5), pool.PoolRewardIndex)
	require.Equal(t, math.NewInt(500), a.PendingRewardShare)
	require.Equal(t, math.NewInt(100), b.BondShare)
	require.Equal(t, math.NewInt(200), pool.TotalBondShare)
	require.Equal(t, math.NewInt(200), pool.TotalBondAmount)
	require.Equal(t, math.LegacyNewDec(5), b.CheckpointIndex)
	require.True(t, b.PendingRewardShare.IsZero())

	// ACT: a further 400 arrives.
	require.NoError(t, farm.AccrueGlobalStrict(&state, math.NewInt(900)))
	require.NoError(t, farm.SettlePool(state.RewardIndex, &pool))
	require.NoError(t, farm.SettleUser(pool, &a))
	require.NoError(t, farm.SettleUser(pool, &b))

	// ASSERT
	require.Equal(t, math.LegacyNewDec(900), state.RewardIndex)
	require.Equal(t, math.LegacyNewDec(7), pool.PoolRewardIndex)
	require.Equal(t, math.NewInt(700), a.PendingRewardShare)
	require.Equal(t, math.NewInt(200), b.PendingRewardShare)
}

func TestAccrueGlobalWithoutWeight(t *testing.T) {
	state := farm.NewGlobalState()

	require.NoError(t, farm.AccrueGlobalStrict(&state, math.NewInt(1000)))
	require.True(t, state.RewardIndex.IsZero())
	require.True(t, state.PreviousRewardBalance.IsZero())

	require.NoError(t, farm.AccrueGlobalLossy(&state, math.NewInt(1000)))
	require.True(t, state.RewardIndex.IsZero())
}

func TestAccrueGlobalApportionsByWeight(t *testing.T) {
	state := farm.NewGlobalState()
	state.TotalWeight = 4

	require.NoError(t, farm.AccrueGlobalStrict(&state, math.NewInt(1000)))
	require.Equal(t, math.LegacyNewDec(250), state.RewardIndex)
	require.Equal(t, math.NewInt(1000), state.PreviousRewardBalance)
}

func TestAccrueGlobalDecreasedBalance(t *testing.T) {
	state := farm.NewGlobalState()
	state.TotalWeight = 1
	require.NoError(t, farm.AccrueGlobalStrict(&state, math.NewInt(1000)))

	// ACT: mutating paths refuse a decrease and leave the state untouched.
	strict := state
	err := farm.AccrueGlobalStrict(&strict, math.NewInt(900))

	// ASSERT
	require.ErrorIs(t, err, farm.ErrRewardBalanceDecreased)
	require.Equal(t, state, strict)

	// ACT: read paths treat it as no new reward.
	lossy := state
	err = farm.AccrueGlobalLossy(&lossy, math.NewInt(900))

	// ASSERT
	require.NoError(t, err)
	require.Equal(t, state.RewardIndex, lossy.RewardIndex)
	require.Equal(t, math.NewInt(900), lossy.PreviousRewardBalance)
}

func TestSettlePoolWithoutShareOnlyCheckpoints(t *testing.T) {
	pool := farm.NewPoolInfo("mir", "ulp", 3, math.LegacyZeroDec())

	require.NoError(t, farm.SettlePool(math.LegacyNewDec(42), &pool))
	require.Equal(t, math.LegacyNewDec(42), pool.CheckpointIndex)
	require.True(t, pool.PoolRewardIndex.IsZero())
}

func TestSettlePoolAppliesWeight(t *testing.T) {
	pool := farm.NewPoolInfo("mir", "ulp", 3, math.LegacyNewDec(10))
	pool.TotalBondShare = math.NewInt(60)
	pool.TotalBondAmount = math.NewInt(60)

	require.NoError(t, farm.SettlePool(math.LegacyNewDec(30), &pool))

	// (30 - 10) * 3 / 60
	require.Equal(t, math.LegacyNewDec(1), pool.PoolRewardIndex)
	require.Equal(t, math.LegacyNewDec(30), pool.CheckpointIndex)
}

func TestSettlePoolRejectsIndexBehindCheckpoint(t *testing.T) {
	pool := farm.NewPoolInfo("mir", "ulp", 1, math.LegacyNewDec(10))
	pool.TotalBondShare = math.NewInt(1)

	err := farm.SettlePool(math.LegacyNewDec(5), &pool)
	require.ErrorIs(t, err, farm.ErrArithmetic)
}

func TestSettleUserIsIdempotent(t *testing.T) {
	pool := farm.NewPoolInfo("mir", "ulp", 1, math.LegacyZeroDec())
	info := farm.NewRewardInfo(pool)
	info.BondShare = math.NewInt(10)
	pool.PoolRewardIndex = math.LegacyMustNewDecFromStr("2.55")

	require.NoError(t, farm.SettleUser(pool, &info))
	require.Equal(t, math.NewInt(25), info.PendingRewardShare)

	settled := info
	require.NoError(t, farm.SettleUser(pool, &info))
	require.Equal(t, settled, info)
}

func TestNewRewardInfoIsNotRetroactive(t *testing.T) {
	pool := farm.NewPoolInfo("mir", "ulp", 1, math.LegacyZeroDec())
	pool.PoolRewardIndex = math.LegacyNewDec(9)

	info := farm.NewRewardInfo(pool)
	info.BondShare = math.NewInt(1000)
	require.NoError(t, farm.SettleUser(pool, &info))

	require.Equal(t, pool.PoolRewardIndex, info.CheckpointIndex)
	require.True(t, info.PendingRewardShare.IsZero())
}

func TestIndexesAreMonotonic(t *testing.T) {
	state := farm.NewGlobalState()
	state.TotalWeight = 3
	pool := farm.NewPoolInfo("mir", "ulp", 2, state.RewardIndex)
	pool.TotalBondShare = math.NewInt(7)
	pool.TotalBondAmount = math.NewInt(7)

	observed := []int64{0, 10, 10, 13, 9, 40, 41, 41, 100}
	for _, balance := range observed {
		previousGlobal, previousPool := state.RewardIndex, pool.PoolRewardIndex

		require.NoError(t, farm.AccrueGlobalLossy(&state, math.NewInt(balance)))
		require.NoError(t, farm.SettlePool(state.RewardIndex, &pool))

		require.True(t, state.RewardIndex.GTE(previousGlobal))
		require.True(t, pool.PoolRewardIndex.GTE(previousPool))
	}
}
