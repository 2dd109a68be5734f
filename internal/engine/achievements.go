// Achievements — deterministic predicates over each mastery gain. The
// unlocked set is monotonic; a predicate is never re-evaluated after its
// achievement unlocks.
package engine

import (
	"log/slog"
	"strings"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

// ProgressContext is what an achievement predicate sees: the gain that just
// landed plus the aggregate state around it.
type ProgressContext struct {
	Skill        string
	Level        float64 // new cumulative level of that skill
	TotalMastery float64
	Tier         int
	Context      string // free-form hint from the caller ("black_hole", ...)
}

// Achievement is a one-way milestone with a ledger reward.
type Achievement struct {
	ID          string       `json:"id"`
	Requirement string       `json:"requirement"`
	Rewards     cosmos.Delta `json:"rewards"`
	Unlocked    bool         `json:"unlocked"`

	predicate func(ProgressContext) bool
}

func (a *Achievement) clone() Achievement {
	out := *a
	out.Rewards = a.Rewards.Clone()
	out.predicate = nil
	return out
}

// AchievementUnlock reports one unlock and the rewards that were applied.
type AchievementUnlock struct {
	ID      string       `json:"id"`
	Rewards cosmos.Delta `json:"rewards"`
}

// evaluateAchievements runs every still-locked predicate against the gain.
// Rewards are applied to the ledger immediately and reported to the caller.
func (e *Engine) evaluateAchievements(skill string, level, totalMastery float64, context string) []AchievementUnlock {
	ctx := ProgressContext{
		Skill:        skill,
		Level:        level,
		TotalMastery: totalMastery,
		Tier:         e.currentTier,
		Context:      context,
	}

	var unlocks []AchievementUnlock
	for _, a := range e.achievements {
		if a.Unlocked || a.predicate == nil || !a.predicate(ctx) {
			continue
		}
		a.Unlocked = true
		e.ledger.Apply(a.Rewards)
		unlocks = append(unlocks, AchievementUnlock{ID: a.ID, Rewards: a.Rewards.Clone()})
		slog.Info("achievement unlocked", "achievement", a.ID, "skill", skill)
	}
	return unlocks
}

// allSkillsAtLeast reports whether every seed skill has reached the level.
func (e *Engine) allSkillsAtLeast(level float64) bool {
	for _, skill := range seedSkills {
		if e.skills[skill] < level {
			return false
		}
	}
	return true
}

// defaultAchievements builds the milestone catalog. Every predicate is a
// deterministic measurable outcome — no dice rolls.
func defaultAchievements() []*Achievement {
	return []*Achievement{
		{
			ID:          "first_light",
			Requirement: "Reach level 10 in any skill",
			Rewards:     cosmos.Delta{cosmos.CosmicInformation: 25},
			predicate: func(ctx ProgressContext) bool {
				return ctx.Level >= 10
			},
		},
		{
			ID:          "quantum_adept",
			Requirement: "Reach quantum_manipulation level 100",
			Rewards:     cosmos.Delta{cosmos.QuantumEntanglement: 50},
			predicate: func(ctx ProgressContext) bool {
				return ctx.Skill == "quantum_manipulation" && ctx.Level >= 100
			},
		},
		{
			ID:          "stellar_smith",
			Requirement: "Reach stellar_engineering level 100",
			Rewards:     cosmos.Delta{cosmos.HeavyElements: 20},
			predicate: func(ctx ProgressContext) bool {
				return ctx.Skill == "stellar_engineering" && ctx.Level >= 100
			},
		},
		{
			ID:          "event_horizon_scholar",
			Requirement: "Train gravitational_control past 50 while studying a black hole",
			Rewards:     cosmos.Delta{cosmos.SpacetimeCurvature: 30},
			predicate: func(ctx ProgressContext) bool {
				return ctx.Skill == "gravitational_control" && ctx.Level >= 50 &&
					strings.Contains(ctx.Context, "black_hole")
			},
		},
		{
			ID:          "apprentice_no_more",
			Requirement: "Leave the starting tier behind",
			Rewards:     cosmos.Delta{cosmos.StellarNeutrinos: 100},
			predicate: func(ctx ProgressContext) bool {
				return ctx.Tier >= 1
			},
		},
		{
			ID:          "ten_thousand_suns",
			Requirement: "Accumulate 10000 total mastery",
			Rewards:     cosmos.Delta{cosmos.HydrogenFuel: 500},
			predicate: func(ctx ProgressContext) bool {
				return ctx.TotalMastery >= 10000
			},
		},
		{
			ID:          "renaissance_being",
			Requirement: "Raise every skill to at least 50",
			Rewards:     cosmos.Delta{cosmos.EmergentComplexity: 100},
			// predicate needs the full skill map; attached by the engine.
		},
	}
}

// renaissanceBeing is evaluated lazily because it needs the whole skill map,
// not just the gain that landed. Wired in during construction.
func (e *Engine) attachEngineAchievements() {
	for _, a := range e.achievements {
		if a.ID != "renaissance_being" {
			continue
		}
		a.predicate = func(ProgressContext) bool {
			return e.allSkillsAtLeast(50)
		}
	}
}
