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

package metrics

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/spectrumprotocol/contracts-sub002/types/farm"
)

const Namespace = "spectrum_farm"

// FarmIndicators reports compounding activity. A nil *FarmIndicators is valid
// and records nothing.
type FarmIndicators struct {
	compoundsTotal       *prometheus.CounterVec
	feesTotal            *prometheus.CounterVec
	reinvestedTotal      *prometheus.CounterVec
	remoteCompoundsTotal *prometheus.CounterVec
}

func NewFarmIndicators(reg prometheus.Registerer) *FarmIndicators {
	return &FarmIndicators{
		compoundsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "compounds_total",
				Help:      "number of successful harvests by asset",
			},
			[]string{"asset"},
		),
		feesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "fees_total",
				Help:      "commission paid out of compounded reward by bucket (community, platform, controller)",
			},
			[]string{"bucket", "denom"},
		),
		reinvestedTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "reinvested_total",
				Help:      "staking token added to pools by compounding",
			},
			[]string{"asset"},
		),
		remoteCompoundsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "remote_compounds_total",
				Help:      "number of accepted remote compound reports by asset",
			},
			[]string{"asset"},
		),
	}
}

func (i *FarmIndicators) ObserveCompound(asset string, denom string, split farm.FeeSplit, reinvested math.Int) {
	if i == nil {
		return
	}

	i.compoundsTotal.WithLabelValues(asset).Inc()
	i.feesTotal.WithLabelValues("community", denom).Add(toFloat(split.Community))
	i.feesTotal.WithLabelValues("platform", denom).Add(toFloat(split.Platform))
	i.feesTotal.WithLabelValues("controller", denom).Add(toFloat(split.Controller))
	i.reinvestedTotal.WithLabelValues(asset).Add(toFloat(reinvested))
}

func (i *FarmIndicators) ObserveRemoteCompound(asset string, amount math.Int) {
	if i == nil {
		return
	}

	i.remoteCompoundsTotal.WithLabelValues(asset).Inc()
	i.reinvestedTotal.WithLabelValues(asset).Add(toFloat(amount))
}

// toFloat converts amounts for reporting only; precision loss is acceptable.
func toFloat(amount math.Int) float64 {
	if amount.IsNil() || !amount.IsPositive() {
		return 0
	}

	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
