// Barter trading — scarcity×utility valuation against the live ledger.
package engine

import (
	"log/slog"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

// utilityTable holds the fixed intrinsic worth of each resource. Keys absent
// from the table trade at utility 1.
var utilityTable = map[cosmos.Key]float64{
	cosmos.HydrogenFuel:        1.5,
	cosmos.HeavyElements:       2.0,
	cosmos.DarkMatter:          3.0,
	cosmos.QuantumVacuumEnergy: 4.0,
	cosmos.CosmicInformation:   2.5,
	cosmos.Antimatter:          5.0,
	cosmos.SpacetimeCurvature:  3.5,
	cosmos.QuantumEntanglement: 3.0,
	cosmos.StellarNeutrinos:    0.5,
	cosmos.InterstellarDust:    0.3,
}

// TradeResources validates and executes a barter trade. The trade is
// accepted iff the ledger currently holds every offered amount and
// value(demand)/value(offer) does not exceed the configured ratio. Accepted
// trades subtract the offer and add the demand as one atomic step; rejected
// trades leave the ledger untouched. Returns whether the trade executed.
func (e *Engine) TradeResources(offer, demand cosmos.Delta) bool {
	if len(offer) == 0 {
		return false
	}
	if !e.ledger.Holds(offer) {
		return false
	}

	offerValue := e.valueOf(offer)
	demandValue := e.valueOf(demand)
	if offerValue <= 0 {
		return false
	}
	if demandValue/offerValue > e.cfg.Trade.MaxValueRatio {
		return false
	}

	for k, amount := range offer {
		e.ledger.Add(k, -amount)
	}
	for k, amount := range demand {
		e.ledger.Add(k, amount)
	}

	slog.Debug("trade executed",
		"offer_value", offerValue,
		"demand_value", demandValue,
	)
	return true
}

// valueOf prices a resource set: Σ amount × scarcity × utility. Scarcity is
// recomputed from the live ledger at call time, so the same bundle gets more
// expensive as the underlying resource drains.
func (e *Engine) valueOf(resources cosmos.Delta) float64 {
	total := 0.0
	for k, amount := range resources {
		total += amount * e.scarcity(k) * utility(k)
	}
	return total
}

func (e *Engine) scarcity(k cosmos.Key) float64 {
	t := e.cfg.Trade
	s := t.ScarcityNumerator / (e.ledger.Get(k) + t.ScarcityOffset)
	if s < t.ScarcityFloor {
		s = t.ScarcityFloor
	}
	return s
}

func utility(k cosmos.Key) float64 {
	if u, ok := utilityTable[k]; ok {
		return u
	}
	return 1
}
