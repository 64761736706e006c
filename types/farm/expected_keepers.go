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
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RewardSource is the adapter onto an external farm (Mirror staking,
// Astroport generator, ...) whose rewards are compounded into a pool.
type RewardSource interface {
	// PendingReward returns the reward currently claimable by farm for asset.
	PendingReward(ctx context.Context, farm sdk.AccAddress, asset string) (math.Int, error)
	// ClaimReward transfers the pending reward to farm and returns it.
	ClaimReward(ctx context.Context, farm sdk.AccAddress, asset string) (sdk.Coin, error)
	// Reinvest converts reward held by farm into more of the pool's staking
	// token and returns the amount of staking token added.
	Reinvest(ctx context.Context, farm sdk.AccAddress, asset string, reward sdk.Coin) (math.Int, error)
	// Swap converts reward held by farm into denom and returns the amount of
	// denom received by farm.
	Swap(ctx context.Context, farm sdk.AccAddress, reward sdk.Coin, denom string) (math.Int, error)
}
