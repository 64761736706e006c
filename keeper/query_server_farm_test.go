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

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrumprotocol/contracts-sub002/keeper"
	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
	"github.com/spectrumprotocol/contracts-sub002/utils"
	"github.com/spectrumprotocol/contracts-sub002/utils/mocks"
)

func TestFarmQueries(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	query := keeper.NewFarmQueryServer(k)
	alice := utils.TestAccount()

	bondLP(t, server, bank, ctx, alice, 100)
	distribute(t, k, bank, ctx, 300)

	// ACT
	config, err := query.Config(ctx, &farm.QueryConfigRequest{})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, mocks.Authority.Address, config.Config.Owner)
	assert.Equal(t, mocks.Authority.Address, config.Config.Controller)

	// ACT
	state, err := query.State(ctx, &farm.QueryStateRequest{})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(300), state.ObservedBalance)
	assert.True(t, math.LegacyNewDec(300).Equal(state.State.RewardIndex))
	assert.Equal(t, math.NewInt(300), state.State.PreviousRewardBalance)

	// ACT
	pools, err := query.Pools(ctx, &farm.QueryPoolsRequest{})

	// ASSERT
	require.NoError(t, err)
	require.Len(t, pools.Pools, 1)
	assert.Equal(t, Asset, pools.Pools[0].Asset)
	assert.True(t, math.LegacyNewDec(3).Equal(pools.Pools[0].PoolRewardIndex))

	// The previews are not persisted.
	stored, err := k.GetFarmState(ctx)
	require.NoError(t, err)
	assert.True(t, stored.PreviousRewardBalance.IsZero())
}

func TestFarmQueriesToleratesDecreasedBalance(t *testing.T) {
	k, server, bank, _, ctx := setupFarmTest(t)
	query := keeper.NewFarmQueryServer(k)
	alice := utils.TestAccount()

	bondLP(t, server, bank, ctx, alice, 100)
	distribute(t, k, bank, ctx, 300)
	bondLP(t, server, bank, ctx, alice, 1)

	// ARRANGE: the farm's holding shrinks below the last observation.
	require.NoError(t, k.SetGovShare(ctx, types.FarmAddress, math.NewInt(100)))

	// ACT
	state, err := query.State(ctx, &farm.QueryStateRequest{})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), state.ObservedBalance)
	assert.True(t, math.LegacyNewDec(300).Equal(state.State.RewardIndex))
}

func TestFarmQueriesValidation(t *testing.T) {
	k, _, _, _, ctx := setupFarmTest(t)
	query := keeper.NewFarmQueryServer(k)

	_, err := query.Config(ctx, nil)
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = query.State(ctx, nil)
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = query.Pools(ctx, nil)
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = query.RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: "cosmos1invalid"})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	res, err := query.RewardInfo(ctx, &farm.QueryRewardInfoRequest{Staker: utils.TestAccount().Address})
	require.NoError(t, err)
	assert.Empty(t, res.RewardInfos)
}
