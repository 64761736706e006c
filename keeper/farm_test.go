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

package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrumprotocol/contracts-sub002/keeper"
	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
	"github.com/spectrumprotocol/contracts-sub002/utils"
	"github.com/spectrumprotocol/contracts-sub002/utils/mocks"
)

const (
	Asset   = "mir"
	LPDenom = "ulp/mir"
)

// setupFarmTest creates a keeper with a single registered pool holding the
// whole farm weight.
func setupFarmTest(t *testing.T) (*keeper.Keeper, farm.MsgServer, mocks.BankKeeper, *mocks.RewardSource, sdk.Context) {
	k, bank, source, ctx := mocks.SpectrumKeeper(t)
	ctx = ctx.WithHeaderInfo(header.Info{Height: 1, Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	server := keeper.NewFarmMsgServer(k)

	_, err := server.RegisterAsset(ctx, &farm.MsgRegisterAsset{
		Owner:        mocks.Authority.Address,
		Asset:        Asset,
		StakingToken: LPDenom,
		Weight:       1,
	})
	require.NoError(t, err)
	source.Staking[Asset] = LPDenom

	return k, server, bank, source, ctx
}

func fund(bank mocks.BankKeeper, address []byte, coins ...sdk.Coin) {
	key := sdk.AccAddress(address).String()
	bank.Balances[key] = bank.Balances[key].Add(coins...)
}

func balance(bank mocks.BankKeeper, address []byte, denom string) math.Int {
	return bank.Balances[sdk.AccAddress(address).String()].AmountOf(denom)
}

// distribute delivers amount of SPEC to the farm by staking it into the gov
// vault on the farm's behalf, growing the farm's observed reward balance.
func distribute(t *testing.T, k *keeper.Keeper, bank mocks.BankKeeper, ctx sdk.Context, amount int64) {
	t.Helper()

	fund(bank, types.FarmAddress, sdk.NewInt64Coin(mocks.Denom, amount))
	_, err := k.Stake(ctx, types.FarmAddress, math.NewInt(amount))
	require.NoError(t, err)
}

func bondLP(t *testing.T, server farm.MsgServer, bank mocks.BankKeeper, ctx sdk.Context, account utils.Account, amount int64) math.Int {
	t.Helper()

	fund(bank, account.Bytes, sdk.NewInt64Coin(LPDenom, amount))
	res, err := server.Bond(ctx, &farm.MsgBond{
		Staker: account.Address,
		Asset:  Asset,
		Amount: sdk.NewInt64Coin(LPDenom, amount),
	})
	require.NoError(t, err)

	return res.Share
}

func TestBond(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	alice := utils.TestAccount()

	// ACT
	share := bondLP(t, server, bank, ctx, alice, 100)

	// ASSERT
	assert.Equal(t, math.NewInt(100), share)
	assert.True(t, balance(bank, alice.Bytes, LPDenom).IsZero())
	assert.Equal(t, math.NewInt(100), balance(bank, types.FarmAddress, LPDenom))

	pool, found, err := k.GetFarmPool(ctx, Asset)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, math.NewInt(100), pool.TotalBondShare)
	assert.Equal(t, math.NewInt(100), pool.TotalBondAmount)

	info, found, err := k.GetFarmRewardInfo(ctx, alice.Bytes, Asset)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, math.NewInt(100), info.BondShare)
}

func TestBondValidation(t *testing.T) {
	_, server, bank, _, ctx := setupFarmTest(t)
	alice := utils.TestAccount()
	fund(bank, alice.Bytes, sdk.NewInt64Coin(LPDenom, 100), sdk.NewInt64Coin("uother", 100))

	_, err := server.Bond(ctx, nil)
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = server.Bond(ctx, &farm.MsgBond{Staker: "cosmos1invalid", Asset: Asset, Amount: sdk.NewInt64Coin(LPDenom, 1)})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = server.Bond(ctx, &farm.MsgBond{Staker: alice.Address, Asset: "anc", Amount: sdk.NewInt64Coin(LPDenom, 1)})
	require.ErrorIs(t, err, farm.ErrPoolNotFound)

	_, err = server.Bond(ctx, &farm.MsgBond{Staker: alice.Address, Asset: Asset, Amount: sdk.NewInt64Coin("uother", 1)})
	require.ErrorIs(t, err, farm.ErrUnauthorized)

	_, err = server.Bond(ctx, &farm.MsgBond{Staker: alice.Address, Asset: Asset, Amount: sdk.NewInt64Coin(LPDenom, 0)})
	require.ErrorIs(t, err, farm.ErrInvalidAmount)

	_, err = server.Bond(ctx, &farm.MsgBond{Staker: alice.Address, Asset: Asset, Amount: sdk.NewInt64Coin(LPDenom, 1_000)})
	require.Error(t, err)
}

func TestSettlementScenario(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	// ARRANGE: alice bonds alone, 500 arrives, then bob bonds the same amount.
	bondLP(t, server, bank, ctx, alice, 100)
	distribute(t, k, bank, ctx, 500)
	bondLP(t, server, bank, ctx, bob, 100)

	info, _, err := k.GetFarmRewardInfo(ctx, bob.Bytes, Asset)
	require.NoError(t, err)
	assert.True(t, info.PendingRewardShare.IsZero())
	assert.Equal(t, math.LegacyNewDec(5), info.CheckpointIndex)

	// ACT: a further 400 arrives and both positions are settled by a query.
	distribute(t, k, bank, ctx, 400)
	query := keeper.NewFarmQueryServer(k)
	aliceRes, err := query.RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: alice.Address})
	require.NoError(t, err)
	bobRes, err := query.RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: bob.Address, Asset: Asset})
	require.NoError(t, err)

	// ASSERT
	require.Len(t, aliceRes.RewardInfos, 1)
	require.Len(t, bobRes.RewardInfos, 1)
	assert.Equal(t, math.NewInt(700), aliceRes.RewardInfos[0].PendingRewardShare)
	assert.Equal(t, math.NewInt(700), aliceRes.RewardInfos[0].PendingReward)
	assert.Equal(t, math.NewInt(200), bobRes.RewardInfos[0].PendingRewardShare)
	assert.Equal(t, math.NewInt(100), bobRes.RewardInfos[0].BondAmount)

	pool, _, err := k.GetFarmPool(ctx, Asset)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyNewDec(5), pool.PoolRewardIndex, "queries must not persist settlement")
}

func TestNoRetroactiveRewards(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	// ARRANGE: reward arrives while the pool is empty, then again once alice holds.
	distribute(t, k, bank, ctx, 300)
	bondLP(t, server, bank, ctx, alice, 50)
	distribute(t, k, bank, ctx, 100)

	// ACT
	bondLP(t, server, bank, ctx, bob, 50)

	// ASSERT: bob starts at the pool index with nothing owed.
	pool, _, err := k.GetFarmPool(ctx, Asset)
	require.NoError(t, err)
	info, _, err := k.GetFarmRewardInfo(ctx, bob.Bytes, Asset)
	require.NoError(t, err)
	assert.Equal(t, pool.PoolRewardIndex, info.CheckpointIndex)
	assert.True(t, info.PendingRewardShare.IsZero())

	// alice only earns what arrived after she bonded.
	res, err := keeper.NewFarmQueryServer(k).RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: alice.Address})
	require.NoError(t, err)
	require.Len(t, res.RewardInfos, 1)
	assert.Equal(t, math.NewInt(100), res.RewardInfos[0].PendingRewardShare)
}

func TestUnbond(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	alice := utils.TestAccount()
	bondLP(t, server, bank, ctx, alice, 100)

	// ACT
	res, err := server.Unbond(ctx, &farm.MsgUnbond{Staker: alice.Address, Asset: Asset, Amount: math.NewInt(40)})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(40), res.Share)
	assert.Equal(t, sdk.NewInt64Coin(LPDenom, 40), res.Amount)
	assert.Equal(t, math.NewInt(40), balance(bank, alice.Bytes, LPDenom))

	pool, _, err := k.GetFarmPool(ctx, Asset)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(60), pool.TotalBondShare)
	assert.Equal(t, math.NewInt(60), pool.TotalBondAmount)

	_, err = server.Unbond(ctx, &farm.MsgUnbond{Staker: alice.Address, Asset: Asset, Amount: math.NewInt(61)})
	require.ErrorIs(t, err, farm.ErrInsufficientBalance)

	_, err = server.Unbond(ctx, &farm.MsgUnbond{Staker: utils.TestAccount().Address, Asset: Asset, Amount: math.NewInt(1)})
	require.ErrorIs(t, err, farm.ErrInsufficientBalance)

	_, err = server.Unbond(ctx, &farm.MsgUnbond{Staker: alice.Address, Asset: Asset, Amount: math.ZeroInt()})
	require.ErrorIs(t, err, farm.ErrInvalidAmount)
}

func TestUnbondGarbageCollection(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	// ARRANGE: bob earns reward, alice bonds afterwards and earns nothing.
	bondLP(t, server, bank, ctx, bob, 100)
	distribute(t, k, bank, ctx, 50)
	bondLP(t, server, bank, ctx, alice, 100)

	// ACT
	_, err := server.Unbond(ctx, &farm.MsgUnbond{Staker: alice.Address, Asset: Asset, Amount: math.NewInt(100)})
	require.NoError(t, err)
	_, err = server.Unbond(ctx, &farm.MsgUnbond{Staker: bob.Address, Asset: Asset, Amount: math.NewInt(100)})
	require.NoError(t, err)

	// ASSERT: the empty position is removed, the one still owed reward is kept.
	_, found, err := k.GetFarmRewardInfo(ctx, alice.Bytes, Asset)
	require.NoError(t, err)
	assert.False(t, found)

	info, found, err := k.GetFarmRewardInfo(ctx, bob.Bytes, Asset)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, info.BondShare.IsZero())
	assert.Equal(t, math.NewInt(50), info.PendingRewardShare)
}

func TestShareConservation(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	accounts := []utils.Account{utils.TestAccount(), utils.TestAccount(), utils.TestAccount()}

	steps := []struct {
		account int
		bond    int64
		unbond  int64
		reward  int64
	}{
		{account: 0, bond: 1_000},
		{account: 1, bond: 333, reward: 17},
		{account: 0, unbond: 123},
		{account: 2, bond: 77, reward: 1_001},
		{account: 1, unbond: 333},
		{account: 2, bond: 5, reward: 3},
		{account: 0, unbond: 877},
		{account: 1, bond: 10_000},
	}

	for i, step := range steps {
		account := accounts[step.account]
		if step.bond > 0 {
			bondLP(t, server, bank, ctx, account, step.bond)
		}
		if step.unbond > 0 {
			_, err := server.Unbond(ctx, &farm.MsgUnbond{Staker: account.Address, Asset: Asset, Amount: math.NewInt(step.unbond)})
			require.NoError(t, err)
		}
		if step.reward > 0 {
			distribute(t, k, bank, ctx, step.reward)
		}

		total := math.ZeroInt()
		for _, account := range accounts {
			info, _, err := k.GetFarmRewardInfo(ctx, account.Bytes, Asset)
			require.NoError(t, err)
			if !info.BondShare.IsNil() {
				total = total.Add(info.BondShare)
			}
		}

		pool, _, err := k.GetFarmPool(ctx, Asset)
		require.NoError(t, err)
		require.True(t, pool.TotalBondShare.Equal(total), "step %d: pool %s, positions %s", i, pool.TotalBondShare, total)
	}
}

func TestStrictAccrualOnMutation(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	alice := utils.TestAccount()
	bondLP(t, server, bank, ctx, alice, 100)
	distribute(t, k, bank, ctx, 100)
	bondLP(t, server, bank, ctx, alice, 1)

	// ARRANGE: pretend more reward was observed than the farm holds.
	state, err := k.GetFarmState(ctx)
	require.NoError(t, err)
	state.PreviousRewardBalance = math.NewInt(1_000)
	require.NoError(t, k.SetFarmState(ctx, state))

	// ACT
	fund(bank, alice.Bytes, sdk.NewInt64Coin(LPDenom, 1))
	_, err = server.Bond(ctx, &farm.MsgBond{Staker: alice.Address, Asset: Asset, Amount: sdk.NewInt64Coin(LPDenom, 1)})

	// ASSERT: mutations fail loudly, queries stay available.
	require.ErrorIs(t, err, farm.ErrRewardBalanceDecreased)

	res, err := keeper.NewFarmQueryServer(k).RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: alice.Address})
	require.NoError(t, err)
	require.Len(t, res.RewardInfos, 1)
	assert.Equal(t, math.NewInt(100), res.RewardInfos[0].PendingRewardShare)
}

func TestRegisterAsset(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	_, err := server.RegisterAsset(ctx, &farm.MsgRegisterAsset{Owner: alice.Address, Asset: "anc", StakingToken: "ulp/anc", Weight: 3})
	require.ErrorIs(t, err, farm.ErrUnauthorized)

	_, err = server.RegisterAsset(ctx, &farm.MsgRegisterAsset{Owner: mocks.Authority.Address, Asset: "anc", StakingToken: "!", Weight: 3})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = server.RegisterAsset(ctx, &farm.MsgRegisterAsset{Owner: mocks.Authority.Address, Asset: Asset, StakingToken: "ulp/anc", Weight: 3})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// A staking token backs at most one pool.
	_, err = server.RegisterAsset(ctx, &farm.MsgRegisterAsset{Owner: mocks.Authority.Address, Asset: "anc", StakingToken: LPDenom, Weight: 3})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
	require.ErrorContains(t, err, "already used by pool mir")
	_, found, err := k.GetFarmPool(ctx, "anc")
	require.NoError(t, err)
	require.False(t, found)

	// ARRANGE: a second pool with three times the weight.
	_, err = server.RegisterAsset(ctx, &farm.MsgRegisterAsset{Owner: mocks.Authority.Address, Asset: "anc", StakingToken: "ulp/anc", Weight: 3})
	require.NoError(t, err)

	bondLP(t, server, bank, ctx, alice, 10)
	fund(bank, bob.Bytes, sdk.NewInt64Coin("ulp/anc", 10))
	_, err = server.Bond(ctx, &farm.MsgBond{Staker: bob.Address, Asset: "anc", Amount: sdk.NewInt64Coin("ulp/anc", 10)})
	require.NoError(t, err)

	// ACT: 400 arrives, then the weights are flipped, then another 400 arrives.
	distribute(t, k, bank, ctx, 400)
	_, err = server.RegisterAsset(ctx, &farm.MsgRegisterAsset{Owner: mocks.Authority.Address, Asset: Asset, StakingToken: LPDenom, Weight: 3})
	require.NoError(t, err)
	_, err = server.RegisterAsset(ctx, &farm.MsgRegisterAsset{Owner: mocks.Authority.Address, Asset: "anc", StakingToken: "ulp/anc", Weight: 1})
	require.NoError(t, err)
	distribute(t, k, bank, ctx, 400)

	// ASSERT
	state, err := k.GetFarmState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), state.TotalWeight)

	res, err := keeper.NewFarmQueryServer(k).RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: alice.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100+300), res.RewardInfos[0].PendingRewardShare)

	res, err = keeper.NewFarmQueryServer(k).RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: bob.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(300+100), res.RewardInfos[0].PendingRewardShare)
}

func TestUpdateConfig(t *testing.T) {
	k, server, _, _, ctx := setupFarmTest(t)
	alice, platform := utils.TestAccount(), utils.TestAccount()
	rate := func(value string) *math.LegacyDec {
		dec := math.LegacyMustNewDecFromStr(value)
		return &dec
	}

	_, err := server.UpdateConfig(ctx, &farm.MsgUpdateConfig{Owner: alice.Address, Controller: alice.Address})
	require.ErrorIs(t, err, farm.ErrUnauthorized)

	_, err = server.UpdateConfig(ctx, &farm.MsgUpdateConfig{Owner: mocks.Authority.Address, Controller: "cosmos1invalid"})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = server.UpdateConfig(ctx, &farm.MsgUpdateConfig{Owner: mocks.Authority.Address, CommunityFee: rate("1.1")})
	require.ErrorIs(t, err, farm.ErrInvalidFee)

	_, err = server.UpdateConfig(ctx, &farm.MsgUpdateConfig{Owner: mocks.Authority.Address, CommunityFee: rate("0.6"), ControllerFee: rate("0.6")})
	require.ErrorIs(t, err, farm.ErrInvalidFee)

	_, err = server.UpdateConfig(ctx, &farm.MsgUpdateConfig{Owner: mocks.Authority.Address, PlatformFee: rate("0.01")})
	require.ErrorIs(t, err, farm.ErrInvalidFee)

	// ACT
	_, err = server.UpdateConfig(ctx, &farm.MsgUpdateConfig{
		Owner:         mocks.Authority.Address,
		NewOwner:      alice.Address,
		PlatformAddr:  platform.Address,
		CommunityFee:  rate("0.01"),
		PlatformFee:   rate("0.02"),
		ControllerFee: rate("0.03"),
	})
	require.NoError(t, err)

	// ASSERT
	res, err := keeper.NewFarmQueryServer(k).Config(ctx, &farm.QueryConfigRequest{})
	require.NoError(t, err)
	assert.Equal(t, alice.Address, res.Config.Owner)
	assert.Equal(t, mocks.Authority.Address, res.Config.Controller)
	assert.Equal(t, platform.Address, res.Config.PlatformAddr)
	assert.True(t, math.LegacyMustNewDecFromStr("0.06").Equal(res.Config.TotalFee()))

	_, err = server.UpdateConfig(ctx, &farm.MsgUpdateConfig{Owner: mocks.Authority.Address})
	require.ErrorIs(t, err, farm.ErrUnauthorized)
}
