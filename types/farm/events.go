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

const (
	EventTypeBond           = "spectrum_farm_bond"
	EventTypeUnbond         = "spectrum_farm_unbond"
	EventTypeWithdraw       = "spectrum_farm_withdraw"
	EventTypeRegisterAsset  = "spectrum_farm_register_asset"
	EventTypeUpdateConfig   = "spectrum_farm_update_config"
	EventTypeCompound       = "spectrum_farm_compound"
	EventTypeRemoteCompound = "spectrum_farm_remote_compound"

	AttributeKeyStaker     = "staker"
	AttributeKeyAsset      = "asset"
	AttributeKeyAmount     = "amount"
	AttributeKeyShare      = "share"
	AttributeKeyWeight     = "weight"
	AttributeKeyOwner      = "owner"
	AttributeKeyReward     = "reward"
	AttributeKeyCommission = "commission"
	AttributeKeyReinvested = "reinvested"
	AttributeKeyOrigin     = "origin"
)
