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
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

var _ farm.RewardSource = &RewardSource{}

// RewardSource emulates an external farm. Pending rewards are paid into the
// farm from thin air; reinvesting swaps reward for staking token at Rate and
// swapping into any other denom happens at SwapRate.
type RewardSource struct {
	Bank     BankKeeper
	Pending  map[string]sdk.Coin
	Staking  map[string]string
	Rate     math.LegacyDec
	SwapRate math.LegacyDec
	Err      error
}

func NewRewardSource(bank BankKeeper) *RewardSource {
	return &RewardSource{
		Bank:     bank,
		Pending:  make(map[string]sdk.Coin),
		Staking:  make(map[string]string),
		Rate:     math.LegacyOneDec(),
		SwapRate: math.LegacyOneDec(),
	}
}

func (s *RewardSource) PendingReward(_ context.Context, _ sdk.AccAddress, asset string) (math.Int, error) {
	if s.Err != nil {
		return math.Int{}, s.Err
	}

	pending, found := s.Pending[asset]
	if !found {
		return math.ZeroInt(), nil
	}

	return pending.Amount, nil
}

func (s *RewardSource) ClaimReward(_ context.Context, farmAddr sdk.AccAddress, asset string) (sdk.Coin, error) {
	if s.Err != nil {
		return sdk.Coin{}, s.Err
	}

	pending, found := s.Pending[asset]
	if !found {
		return sdk.Coin{}, fmt.Errorf("no reward pending for %s", asset)
	}
	delete(s.Pending, asset)

	s.Bank.Balances[farmAddr.String()] = s.Bank.Balances[farmAddr.String()].Add(pending)

	return pending, nil
}

func (s *RewardSource) Reinvest(ctx context.Context, farmAddr sdk.AccAddress, asset string, reward sdk.Coin) (math.Int, error) {
	if s.Err != nil {
		return math.Int{}, s.Err
	}

	denom, found := s.Staking[asset]
	if !found {
		return math.Int{}, fmt.Errorf("no staking token for %s", asset)
	}

	balance := s.Bank.Balances[farmAddr.String()]
	remaining, negative := balance.SafeSub(reward)
	if negative {
		return math.Int{}, fmt.Errorf("farm holds %s, cannot reinvest %s", balance, reward)
	}

	lp := s.Rate.MulInt(reward.Amount).TruncateInt()
	s.Bank.Balances[farmAddr.String()] = remaining.Add(sdk.NewCoin(denom, lp))

	return lp, nil
}

func (s *RewardSource) Swap(_ context.Context, farmAddr sdk.AccAddress, reward sdk.Coin, denom string) (math.Int, error) {
	if s.Err != nil {
		return math.Int{}, s.Err
	}

	balance := s.Bank.Balances[farmAddr.String()]
	remaining, negative := balance.SafeSub(reward)
	if negative {
		return math.Int{}, fmt.Errorf("farm holds %s, cannot swap %s", balance, reward)
	}

	out := s.SwapRate.MulInt(reward.Amount).TruncateInt()
	s.Bank.Balances[farmAddr.String()] = remaining.Add(sdk.NewCoin(denom, out))

	return out, nil
}
