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
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"

	"cosmossdk.io/math"
)

const (
	CompoundReportPayloadSize = 73
	CompoundReportMessageType = 0x02
)

// CompoundReportPayload is the decoded body of a Hyperlane message reporting
// staking token compounded on a remote chain.
type CompoundReportPayload struct {
	MessageType uint8
	AssetHash   [32]byte
	Amount      math.Int
	Timestamp   time.Time
}

// AssetHash identifies an asset inside fixed-length payloads.
func AssetHash(asset string) [32]byte {
	return sha256.Sum256([]byte(asset))
}

// ParseCompoundReportPayload decodes the fixed-length report. Layout, all
// big-endian: type (1) | sha256(asset) (32) | amount (32) | unix seconds (8).
func ParseCompoundReportPayload(body []byte) (CompoundReportPayload, error) {
	if len(body) != CompoundReportPayloadSize {
		return CompoundReportPayload{}, fmt.Errorf("invalid compound report size: expected %d, got %d", CompoundReportPayloadSize, len(body))
	}

	if body[0] != CompoundReportMessageType {
		return CompoundReportPayload{}, fmt.Errorf("invalid compound report message type 0x%02x", body[0])
	}

	var assetHash [32]byte
	copy(assetHash[:], body[1:33])

	amountBig := new(big.Int).SetBytes(body[33:65])
	timestamp := int64(binary.BigEndian.Uint64(body[65:73]))

	return CompoundReportPayload{
		MessageType: body[0],
		AssetHash:   assetHash,
		Amount:      math.NewIntFromBigInt(amountBig),
		Timestamp:   time.Unix(timestamp, 0).UTC(),
	}, nil
}

// EncodeCompoundReportPayload is the inverse of ParseCompoundReportPayload.
func EncodeCompoundReportPayload(asset string, amount math.Int, timestamp time.Time) []byte {
	body := make([]byte, CompoundReportPayloadSize)
	body[0] = CompoundReportMessageType

	hash := AssetHash(asset)
	copy(body[1:33], hash[:])
	amount.BigInt().FillBytes(body[33:65])
	binary.BigEndian.PutUint64(body[65:73], uint64(timestamp.Unix()))

	return body
}
