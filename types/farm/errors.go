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

import "cosmossdk.io/errors"

var (
	ErrUnauthorized           = errors.Register(SubmoduleName, 1, "unauthorized")
	ErrInvalidAmount          = errors.Register(SubmoduleName, 2, "invalid amount")
	ErrInvalidFee             = errors.Register(SubmoduleName, 3, "invalid fee rate")
	ErrPoolNotFound           = errors.Register(SubmoduleName, 4, "pool not found")
	ErrInsufficientBalance    = errors.Register(SubmoduleName, 5, "insufficient balance")
	ErrRewardBalanceDecreased = errors.Register(SubmoduleName, 6, "observed reward balance decreased")
	ErrArithmetic             = errors.Register(SubmoduleName, 7, "arithmetic error")
	ErrRewardSource           = errors.Register(SubmoduleName, 8, "reward source error")
	ErrInvalidReport          = errors.Register(SubmoduleName, 9, "invalid compound report")
)
