// Research tree — theories gated by resource thresholds, paid per attempt.
package engine

import (
	"log/slog"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

// EffectKind classifies what an unlocked effect does to the economy.
type EffectKind string

const (
	EffectResourceGeneration   EffectKind = "resource_generation"
	EffectEfficiencyBoost      EffectKind = "efficiency_boost"
	EffectNewAbility           EffectKind = "new_ability"
	EffectUniverseModification EffectKind = "universe_modification"
)

// PermanentDuration marks an effect that never expires.
const PermanentDuration = -1

// Effect is a modifier applied to the economy after a theory unlocks.
// Duration counts down in frame-milliseconds; PermanentDuration never
// expires. Target is a ledger key, an extraction type or an ability name
// depending on Kind.
type Effect struct {
	Source    string     `json:"source"` // id of the theory that granted it
	Kind      EffectKind `json:"kind"`
	Magnitude float64    `json:"magnitude"`
	Duration  float64    `json:"duration"`
	Target    string     `json:"target"`
}

// Theory is one node of the research tree. Unlocked is one-way terminal.
type Theory struct {
	ID               string       `json:"id"`
	Description      string       `json:"description"`
	Requirements     cosmos.Delta `json:"requirements"` // key → threshold, all must hold
	Effects          []Effect     `json:"effects"`
	ResearchProgress float64      `json:"research_progress"`
	Unlocked         bool         `json:"unlocked"`
}

func (t *Theory) clone() Theory {
	out := *t
	out.Requirements = t.Requirements.Clone()
	out.Effects = append([]Effect(nil), t.Effects...)
	return out
}

// BreakthroughThreshold returns the research progress at which the theory
// unlocks: a base plus a step per requirement key.
func (e *Engine) BreakthroughThreshold(t *Theory) float64 {
	r := e.cfg.Research
	return r.ThresholdBase + r.ThresholdPerRequirement*float64(len(t.Requirements))
}

// ConductResearch spends the theory's full requirement amounts and adds
// effort to its progress. This is a pay-per-attempt model: resources are
// consumed on every qualifying call, not only the one that crosses the
// breakthrough threshold. Returns true exactly on the crossing call.
// Unknown ids, already-unlocked theories and unmet requirements all return
// false with no side effect.
func (e *Engine) ConductResearch(theoryID string, effort float64) bool {
	t, ok := e.theoryIndex[theoryID]
	if !ok || t.Unlocked {
		return false
	}
	if !e.ledger.Holds(t.Requirements) {
		return false
	}

	for k, amount := range t.Requirements {
		e.ledger.Add(k, -amount)
	}
	t.ResearchProgress += effort

	if t.ResearchProgress < e.BreakthroughThreshold(t) {
		return false
	}

	t.Unlocked = true
	e.applyTheoryEffects(t)
	slog.Info("theory unlocked",
		"theory", t.ID,
		"progress", t.ResearchProgress,
		"effects", len(t.Effects),
	)
	return true
}

// applyTheoryEffects instantiates a theory's effects into the active set.
// universe_modification effects additionally apply their one-shot ledger
// change here; new_ability effects register the ability immediately.
func (e *Engine) applyTheoryEffects(t *Theory) {
	for _, granted := range t.Effects {
		ef := granted
		ef.Source = t.ID
		switch ef.Kind {
		case EffectUniverseModification:
			e.ledger.Add(cosmos.Key(ef.Target), ef.Magnitude)
		case EffectNewAbility:
			e.abilities[ef.Target] = struct{}{}
		}
		e.effects = append(e.effects, &ef)
	}
}

// defaultTheories builds the research catalog for a fresh universe.
func defaultTheories() []*Theory {
	return []*Theory{
		{
			ID:          "Big Bang Nucleosynthesis",
			Description: "Reconstruct the first three minutes to fuse primordial nuclei on demand.",
			Requirements: cosmos.Delta{
				cosmos.StrongNuclearForce: 200,
				cosmos.CosmicInformation:  100,
			},
			Effects: []Effect{
				{Kind: EffectResourceGeneration, Magnitude: 2, Duration: PermanentDuration, Target: string(cosmos.HeavyElements)},
				{Kind: EffectEfficiencyBoost, Magnitude: 0.25, Duration: PermanentDuration, Target: string(StellarNucleosynthesis)},
			},
		},
		{
			ID:          "Stellar Evolution",
			Description: "Model main-sequence lifecycles well enough to steer them.",
			Requirements: cosmos.Delta{
				cosmos.HydrogenFuel:     1000,
				cosmos.HeliumAsh:        300,
				cosmos.StellarNeutrinos: 150,
			},
			Effects: []Effect{
				{Kind: EffectEfficiencyBoost, Magnitude: 0.5, Duration: PermanentDuration, Target: string(StellarNucleosynthesis)},
				{Kind: EffectNewAbility, Magnitude: 0, Duration: PermanentDuration, Target: "supernova_seeding"},
			},
		},
		{
			ID:          "Dark Matter Interactions",
			Description: "Map the weakly-interacting sector and learn to pull on it.",
			Requirements: cosmos.Delta{
				cosmos.DarkMatter:         500,
				cosmos.GravitationalForce: 80,
			},
			Effects: []Effect{
				{Kind: EffectEfficiencyBoost, Magnitude: 0.4, Duration: PermanentDuration, Target: string(DarkMatterHarvesting)},
				{Kind: EffectResourceGeneration, Magnitude: 1, Duration: PermanentDuration, Target: string(cosmos.GravitationalForce)},
			},
		},
		{
			ID:          "Quantum Gravity",
			Description: "Unify the very large and the very small; spacetime becomes a material.",
			Requirements: cosmos.Delta{
				cosmos.SpacetimeCurvature:  60,
				cosmos.QuantumEntanglement: 60,
				cosmos.GravitationalWaves:  20,
			},
			Effects: []Effect{
				{Kind: EffectEfficiencyBoost, Magnitude: 0.6, Duration: PermanentDuration, Target: string(SpacetimeMining)},
				{Kind: EffectNewAbility, Magnitude: 0, Duration: PermanentDuration, Target: "wormhole_anchoring"},
			},
		},
		{
			ID:          "Cosmic Inflation",
			Description: "Recreate the inflaton field in a bottle and tap its pressure.",
			Requirements: cosmos.Delta{
				cosmos.QuantumVacuumEnergy: 400,
				cosmos.DarkEnergy:          2000,
			},
			Effects: []Effect{
				{Kind: EffectUniverseModification, Magnitude: 0.5, Duration: PermanentDuration, Target: string(cosmos.DarkEnergyAcceleration)},
			},
		},
		{
			ID:          "Vacuum Engineering",
			Description: "Bias zero-point fluctuations toward useful work, briefly.",
			Requirements: cosmos.Delta{
				cosmos.QuantumVacuumEnergy: 250,
				cosmos.QuantumEntanglement: 50,
			},
			Effects: []Effect{
				{Kind: EffectResourceGeneration, Magnitude: 5, Duration: 60000, Target: string(cosmos.QuantumVacuumEnergy)},
			},
		},
		{
			ID:          "Information Theory of Reality",
			Description: "It from bit: treat physical law as a compressible code.",
			Requirements: cosmos.Delta{
				cosmos.CosmicInformation:  300,
				cosmos.EmergentComplexity: 100,
			},
			Effects: []Effect{
				{Kind: EffectEfficiencyBoost, Magnitude: 0.5, Duration: PermanentDuration, Target: string(InformationProcessing)},
				{Kind: EffectResourceGeneration, Magnitude: 1.5, Duration: PermanentDuration, Target: string(cosmos.EmergentComplexity)},
			},
		},
		{
			ID:          "Entropy Gradient Farming",
			Description: "Harvest work from engineered disequilibria before they close.",
			Requirements: cosmos.Delta{
				cosmos.CosmicBackgroundRadiation: 200,
				cosmos.HeavyElements:             40,
			},
			Effects: []Effect{
				{Kind: EffectResourceGeneration, Magnitude: 3, Duration: 120000, Target: string(cosmos.CosmicInformation)},
				{Kind: EffectNewAbility, Magnitude: 0, Duration: PermanentDuration, Target: "maxwell_gatekeeping"},
			},
		},
	}
}
