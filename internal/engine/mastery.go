// Mastery tracking and the tier ladder. AddMastery is the single entry point
// for the whole progression side: it fans out to the tier ladder, the
// achievement evaluator and the evolution graph and aggregates the results.
package engine

import "log/slog"

// seedSkills is the fixed initial skill set. Unknown skills are still
// accepted by AddMastery and created at zero on first touch.
var seedSkills = []string{
	"quantum_manipulation",
	"stellar_engineering",
	"gravitational_control",
	"dark_matter_weaving",
	"information_synthesis",
	"spacetime_navigation",
	"energy_transmutation",
	"cosmic_awareness",
	"entropy_mastery",
}

// Tier is one rung of the mastery ladder, gated on the sum of all skill
// levels. Abilities are granted exactly once, on first crossing.
type Tier struct {
	Index           int      `json:"index"`
	Name            string   `json:"name"`
	RequiredMastery float64  `json:"required_mastery"`
	Abilities       []string `json:"abilities"`
}

func (t Tier) clone() Tier {
	t.Abilities = append([]string(nil), t.Abilities...)
	return t
}

// TierAdvancement reports a single-step tier promotion.
type TierAdvancement struct {
	From              int      `json:"from"`
	To                int      `json:"to"`
	Name              string   `json:"name"`
	RequiredMastery   float64  `json:"required_mastery"`
	AbilitiesUnlocked []string `json:"abilities_unlocked"`
}

// ProgressionResult aggregates everything one AddMastery call changed.
type ProgressionResult struct {
	Skill                string              `json:"skill"`
	MasteryGained        float64             `json:"mastery_gained"`
	NewMasteryLevel      float64             `json:"new_mastery_level"`
	TierAdvancement      *TierAdvancement    `json:"tier_advancement,omitempty"`
	AchievementsUnlocked []AchievementUnlock `json:"achievements_unlocked,omitempty"`
	EvolutionProgress    []EvolutionUpdate   `json:"evolution_progress,omitempty"`
	CosmicUnderstanding  float64             `json:"cosmic_understanding"`
}

// AddMastery adds progress to one skill and fans the gain out to every
// progression system. Negative amounts are ignored: skill levels are
// monotonic by contract, so a negative gain degrades to a no-op rather than
// corrupting the ladder.
func (e *Engine) AddMastery(skill string, amount float64, context string) ProgressionResult {
	if amount < 0 {
		slog.Debug("negative mastery ignored", "skill", skill, "amount", amount)
		amount = 0
	}

	e.skills[skill] += amount
	total := e.totalMastery()

	result := ProgressionResult{
		Skill:               skill,
		MasteryGained:       amount,
		NewMasteryLevel:     e.skills[skill],
		CosmicUnderstanding: cosmicUnderstanding(total),
	}

	result.TierAdvancement = e.advanceTier(total)
	result.AchievementsUnlocked = e.evaluateAchievements(skill, e.skills[skill], total, context)
	result.EvolutionProgress = e.updateEvolutionProgress(skill, amount)

	return result
}

// advanceTier promotes at most one tier per call: the first tier past the
// current one whose threshold the total now meets. A gain large enough to
// qualify for several tiers advances on later calls instead.
func (e *Engine) advanceTier(totalMastery float64) *TierAdvancement {
	next := e.currentTier + 1
	if next >= len(e.tiers) || totalMastery < e.tiers[next].RequiredMastery {
		return nil
	}

	from := e.currentTier
	e.currentTier = next
	tier := e.tiers[next]

	unlocked := make([]string, 0, len(tier.Abilities))
	for _, ability := range tier.Abilities {
		if _, dup := e.abilities[ability]; dup {
			// Tier abilities are granted exactly once; a duplicate here means
			// the ladder state is inconsistent. Degrade to a skip.
			slog.Warn("tier ability already granted", "tier", tier.Name, "ability", ability)
			continue
		}
		e.abilities[ability] = struct{}{}
		unlocked = append(unlocked, ability)
	}

	slog.Info("tier advanced",
		"from", from,
		"to", next,
		"tier", tier.Name,
		"total_mastery", totalMastery,
	)

	return &TierAdvancement{
		From:              from,
		To:                next,
		Name:              tier.Name,
		RequiredMastery:   tier.RequiredMastery,
		AbilitiesUnlocked: unlocked,
	}
}

// defaultTiers builds the mastery ladder.
func defaultTiers() []Tier {
	return []Tier{
		{Index: 0, Name: "Dust Gatherer", RequiredMastery: 0,
			Abilities: nil},
		{Index: 1, Name: "Stellar Apprentice", RequiredMastery: 1000,
			Abilities: []string{"solar_wind_sailing", "nebula_reading"}},
		{Index: 2, Name: "Nebula Shaper", RequiredMastery: 5000,
			Abilities: []string{"protostar_ignition", "dust_lane_carving"}},
		{Index: 3, Name: "Star Forger", RequiredMastery: 15000,
			Abilities: []string{"fusion_chaining", "neutron_star_tempering"}},
		{Index: 4, Name: "Galactic Architect", RequiredMastery: 50000,
			Abilities: []string{"spiral_arm_drafting", "halo_binding"}},
		{Index: 5, Name: "Void Walker", RequiredMastery: 150000,
			Abilities: []string{"vacuum_translation", "horizon_stepping"}},
		{Index: 6, Name: "Universal Mind", RequiredMastery: 500000,
			Abilities: []string{"law_rewriting", "omniscient_observation"}},
	}
}
