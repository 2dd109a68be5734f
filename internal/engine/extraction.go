// Resource extraction — deterministic conversion of effort into ledger deltas.
package engine

import (
	"log/slog"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

// ExtractionType selects which conversion process an extraction runs.
type ExtractionType string

const (
	StellarNucleosynthesis ExtractionType = "stellar_nucleosynthesis"
	DarkMatterHarvesting   ExtractionType = "dark_matter_harvesting"
	VacuumEnergyTap        ExtractionType = "vacuum_energy_tap"
	SpacetimeMining        ExtractionType = "spacetime_mining"
	InformationProcessing  ExtractionType = "information_processing"
)

// ExtractResources converts an extraction type, an efficiency and elapsed
// time into a fixed ledger delta and applies it unconditionally — no floor
// check and no rollback; hydrogen can go negative if the host over-burns.
// Unknown types are a no-op, not an error: the UI speculatively offers
// extraction modes the session may not have the ability for yet.
// The applied delta is returned for inspection.
func (e *Engine) ExtractResources(kind ExtractionType, efficiency, timeSpent float64) cosmos.Delta {
	efficiency *= e.extractionBoost(kind)

	delta := cosmos.Delta{}
	switch kind {
	case StellarNucleosynthesis:
		rate := efficiency * timeSpent * 0.1
		delta[cosmos.HydrogenFuel] = -4 * rate
		delta[cosmos.HeliumAsh] = rate
		delta[cosmos.StellarNeutrinos] = 2 * rate
		delta[cosmos.HeavyElements] = 0.01 * rate
	case DarkMatterHarvesting:
		rate := efficiency * timeSpent * 0.05
		delta[cosmos.DarkMatter] = rate
		delta[cosmos.GravitationalForce] = 0.1 * rate
	case VacuumEnergyTap:
		rate := efficiency * timeSpent * 0.02
		delta[cosmos.QuantumVacuumEnergy] = rate
		delta[cosmos.QuantumEntanglement] = 0.5 * rate
	case SpacetimeMining:
		rate := efficiency * timeSpent * 0.01
		delta[cosmos.SpacetimeCurvature] = rate
		delta[cosmos.GravitationalWaves] = 0.3 * rate
	case InformationProcessing:
		rate := efficiency * timeSpent * 0.08
		delta[cosmos.CosmicInformation] = rate
		delta[cosmos.EmergentComplexity] = 0.2 * rate
	default:
		slog.Debug("unknown extraction type", "type", kind)
		return delta
	}

	e.ledger.Apply(delta)
	return delta
}

// extractionBoost folds active efficiency_boost effects targeting the given
// extraction type into a multiplier.
func (e *Engine) extractionBoost(kind ExtractionType) float64 {
	boost := 0.0
	for _, ef := range e.effects {
		if ef.Kind == EffectEfficiencyBoost && ef.Target == string(kind) {
			boost += ef.Magnitude
		}
	}
	return 1 + boost
}
