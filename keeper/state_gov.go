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
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spectrumprotocol/contracts-sub002/types/gov"
)

func (k *Keeper) GetGovParams(ctx context.Context) (gov.Params, error) {
	params, err := k.GovParams.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return gov.DefaultParams(), nil
		}
		return gov.Params{}, err
	}

	return params, nil
}

func (k *Keeper) SetGovParams(ctx context.Context, params gov.Params) error {
	return k.GovParams.Set(ctx, params)
}

// GetGovState returns the staking ledger, zeroed when nothing has been staked.
func (k *Keeper) GetGovState(ctx context.Context) (gov.State, error) {
	state, err := k.GovState.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return gov.NewState(), nil
		}
		return gov.State{}, err
	}

	return state, nil
}

func (k *Keeper) SetGovState(ctx context.Context, state gov.State) error {
	return k.GovState.Set(ctx, state)
}

// GetGovShare returns the staking share held by address, zero if it holds none.
func (k *Keeper) GetGovShare(ctx context.Context, address sdk.AccAddress) (math.Int, error) {
	account, err := k.GovAccounts.Get(ctx, address)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}

	return account.Share, nil
}

// SetGovShare stores the share of address. Zero shares remove the account.
func (k *Keeper) SetGovShare(ctx context.Context, address sdk.AccAddress, share math.Int) error {
	if share.IsZero() {
		err := k.GovAccounts.Remove(ctx, address)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.GovAccounts.Set(ctx, address, gov.Account{Share: share})
}

// SetGovVault stores the mint weight of a vault. A zero weight unregisters it.
func (k *Keeper) SetGovVault(ctx context.Context, address sdk.AccAddress, weight uint32) error {
	if weight == 0 {
		err := k.GovVaults.Remove(ctx, address)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.GovVaults.Set(ctx, address, gov.Vault{Weight: weight})
}

// IterateGovVaults walks every registered vault in address order.
func (k *Keeper) IterateGovVaults(ctx context.Context, fn func(address sdk.AccAddress, vault gov.Vault) (bool, error)) error {
	return k.GovVaults.Walk(ctx, nil, func(key []byte, vault gov.Vault) (bool, error) {
		return fn(sdk.AccAddress(key), vault)
	})
}
