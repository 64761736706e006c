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

package mocks

import (
	"testing"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spectrumprotocol/contracts-sub002/keeper"
	"github.com/spectrumprotocol/contracts-sub002/metrics"
	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/utils"
)

const Denom = "uspec"

// Authority is the module authority, and therefore the initial farm owner
// and controller, of every keeper built here.
var Authority = utils.TestAccount()

func SpectrumKeeper(t testing.TB) (*keeper.Keeper, BankKeeper, *RewardSource, sdk.Context) {
	bank := NewBankKeeper()
	source := NewRewardSource(bank)

	k, ctx := SpectrumKeeperWithKeepers(t, bank, source, nil)
	return k, bank, source, ctx
}

func SpectrumKeeperWithKeepers(t testing.TB, bank BankKeeper, source *RewardSource, indicators *metrics.FarmIndicators) (*keeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_spectrum")
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	k := keeper.NewKeeper(
		Denom,
		Authority.Address,
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		runtime.ProvideHeaderInfoService(&runtime.AppBuilder{}),
		runtime.ProvideEventService(),
		addresscodec.NewBech32Codec(utils.Bech32Prefix),
		bank,
		source,
		indicators,
	)

	return k, wrapper.Ctx
}
