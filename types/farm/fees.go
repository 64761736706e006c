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

// thousand scales the fee rates to integer permille before splitting the
// commission, so the three buckets share one denominator.
var thousand = math.LegacyNewDec(1000)

// FeeSplit is the breakdown of one compounded reward.
type FeeSplit struct {
	Commission math.Int
	Community  math.Int
	Platform   math.Int
	Controller math.Int
	Reinvest   math.Int
}

// ValidateFees checks every fee rate is within [0, 1] and that together they
// do not exceed the whole reward.
func (c Config) ValidateFees() error {
	rates := []struct {
		name string
		rate math.LegacyDec
	}{
		{"community", c.CommunityFee},
		{"platform", c.PlatformFee},
		{"controller", c.ControllerFee},
	}
	for _, fee := range rates {
		if fee.rate.IsNil() || fee.rate.IsNegative() || fee.rate.GT(math.LegacyOneDec()) {
			return errors.Wrapf(ErrInvalidFee, "%s fee must be within [0, 1]", fee.name)
		}
	}

	if c.TotalFee().GT(math.LegacyOneDec()) {
		return errors.Wrapf(ErrInvalidFee, "total fee %s exceeds 1", c.TotalFee())
	}

	return nil
}

// SplitFees takes the configured commission out of reward. The community and
// platform buckets are pro-rata shares of the commission; the controller
// bucket receives whatever remains so that no rounding dust is lost.
func SplitFees(reward math.Int, config Config) (FeeSplit, error) {
	totalFee := config.TotalFee()
	commission := totalFee.MulInt(reward).TruncateInt()

	reinvest, err := reward.SafeSub(commission)
	if err != nil || reinvest.IsNegative() {
		return FeeSplit{}, errors.Wrapf(ErrArithmetic, "commission %s exceeds reward %s", commission, reward)
	}

	split := FeeSplit{
		Commission: commission,
		Community:  math.ZeroInt(),
		Platform:   math.ZeroInt(),
		Controller: commission,
		Reinvest:   reinvest,
	}

	totalPermille := totalFee.Mul(thousand).TruncateInt()
	if commission.IsZero() || totalPermille.IsZero() {
		return split, nil
	}

	communityPermille := config.CommunityFee.Mul(thousand).TruncateInt()
	platformPermille := config.PlatformFee.Mul(thousand).TruncateInt()

	split.Community = commission.Mul(communityPermille).Quo(totalPermille)
	split.Platform = commission.Mul(platformPermille).Quo(totalPermille)
	split.Controller, err = commission.SafeSub(split.Community.Add(split.Platform))
	if err != nil || split.Controller.IsNegative() {
		return FeeSplit{}, errors.Wrap(ErrArithmetic, "fee buckets exceed commission")
	}

	return split, nil
}
