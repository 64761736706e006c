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
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/spectrumprotocol/contracts-sub002/metrics"
	"github.com/spectrumprotocol/contracts-sub002/types"
	"github.com/spectrumprotocol/contracts-sub002/types/farm"
	"github.com/spectrumprotocol/contracts-sub002/types/gov"
)

type Keeper struct {
	denom     string
	authority string

	store store.KVStoreService

	logger     log.Logger
	header     header.Service
	event      event.Service
	address    address.Codec
	bank       types.BankKeeper
	source     farm.RewardSource
	indicators *metrics.FarmIndicators

	FarmConfig  collections.Item[farm.Config]
	FarmState   collections.Item[farm.GlobalState]
	FarmPools   collections.Map[string, farm.PoolInfo]
	FarmRewards collections.Map[collections.Pair[[]byte, string], farm.RewardInfo]

	GovParams   collections.Item[gov.Params]
	GovState    collections.Item[gov.State]
	GovAccounts collections.Map[[]byte, gov.Account]
	GovVaults   collections.Map[[]byte, gov.Vault]
}

func NewKeeper(
	denom string,
	authority string,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	bank types.BankKeeper,
	source farm.RewardSource,
	indicators *metrics.FarmIndicators,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom:     denom,
		authority: authority,

		store: store,

		logger:     logger.With("module", types.ModuleName),
		header:     header,
		event:      event,
		address:    address,
		bank:       bank,
		source:     source,
		indicators: indicators,

		FarmConfig:  collections.NewItem(builder, farm.ConfigKey, "farm_config", types.JSONValue[farm.Config]()),
		FarmState:   collections.NewItem(builder, farm.StateKey, "farm_state", types.JSONValue[farm.GlobalState]()),
		FarmPools:   collections.NewMap(builder, farm.PoolPrefix, "farm_pools", collections.StringKey, types.JSONValue[farm.PoolInfo]()),
		FarmRewards: collections.NewMap(builder, farm.RewardPrefix, "farm_rewards", collections.PairKeyCodec(collections.BytesKey, collections.StringKey), types.JSONValue[farm.RewardInfo]()),

		GovParams:   collections.NewItem(builder, gov.ParamsKey, "gov_params", types.JSONValue[gov.Params]()),
		GovState:    collections.NewItem(builder, gov.StateKey, "gov_state", types.JSONValue[gov.State]()),
		GovAccounts: collections.NewMap(builder, gov.AccountPrefix, "gov_accounts", collections.BytesKey, types.JSONValue[gov.Account]()),
		GovVaults:   collections.NewMap(builder, gov.VaultPrefix, "gov_vaults", collections.BytesKey, types.JSONValue[gov.Vault]()),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bankKeeper types.BankKeeper) {
	k.bank = bankKeeper
}

// SetRewardSource overrides the external protocol adapter that compounding
// harvests from.
func (k *Keeper) SetRewardSource(source farm.RewardSource) {
	k.source = source
}

// GetDenom is a utility that returns the configured denomination of SPEC.
func (k *Keeper) GetDenom() string {
	return k.denom
}

// GetAuthority returns the address allowed to govern the module.
func (k *Keeper) GetAuthority() string {
	return k.authority
}
