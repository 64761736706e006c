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

// AmountToShare converts an absolute amount into pool shares. An empty
// ledger mints shares 1:1. Division truncates, favouring existing holders.
func AmountToShare(amount, totalShare, totalAmount math.Int) (math.Int, error) {
	if totalShare.IsZero() || totalAmount.IsZero() {
		return amount, nil
	}

	product, err := amount.SafeMul(totalShare)
	if err != nil {
		return math.ZeroInt(), errors.Wrapf(ErrArithmetic, "amount to share: %s", err)
	}
	share, err := product.SafeQuo(totalAmount)
	if err != nil {
		return math.ZeroInt(), errors.Wrapf(ErrArithmetic, "amount to share: %s", err)
	}

	return share, nil
}

// ShareToAmount converts pool shares back into an absolute amount, truncating.
func ShareToAmount(share, totalShare, totalAmount math.Int) (math.Int, error) {
	if totalShare.IsZero() {
		return math.ZeroInt(), nil
	}

	product, err := share.SafeMul(totalAmount)
	if err != nil {
		return math.ZeroInt(), errors.Wrapf(ErrArithmetic, "share to amount: %s", err)
	}
	amount, err := product.SafeQuo(totalShare)
	if err != nil {
		return math.ZeroInt(), errors.Wrapf(ErrArithmetic, "share to amount: %s", err)
	}

	return amount, nil
}

// AmountToShareRoundUp returns the number of shares that must be burned to
// release amount. It adds one share whenever the truncated share would redeem
// for less than amount, so repeated partial redemptions cannot extract more
// than the holder owns.
func AmountToShareRoundUp(amount, totalShare, totalAmount math.Int) (math.Int, error) {
	share, err := AmountToShare(amount, totalShare, totalAmount)
	if err != nil {
		return math.ZeroInt(), err
	}
	if totalShare.IsZero() || totalAmount.IsZero() {
		return share, nil
	}

	redeemed, err := ShareToAmount(share, totalShare, totalAmount)
	if err != nil {
		return math.ZeroInt(), err
	}
	if redeemed.LT(amount) {
		return share.Add(math.OneInt()), nil
	}

	return share, nil
}
