// Package engine implements the cosmogenesis core simulation: the resource
// economy (extraction, barter trade, research, per-frame physics) and the
// mastery progression (skills, tiers, achievements, evolution paths). The
// rendering host only ever sees snapshots produced here.
package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/talgya/cosmogenesis/internal/config"
	"github.com/talgya/cosmogenesis/internal/cosmos"
	"github.com/talgya/cosmogenesis/internal/entropy"
)

// Engine owns the complete session state. It is built once per session and
// must be driven from a single logical thread: operations read-then-write
// shared state with no internal locking.
type Engine struct {
	cfg *config.Config
	rng entropy.Source

	// SessionID identifies one universe across saves and log lines.
	SessionID uuid.UUID

	ledger *cosmos.Ledger

	cosmicTime   float64 // seconds of simulated cosmic time
	entropyLevel float64 // monotonic thermodynamic pressure
	fluctuation  float64 // quantum fluctuation accumulator

	theories    []*Theory
	theoryIndex map[string]*Theory
	effects     []*Effect

	skills      map[string]float64
	tiers       []Tier
	currentTier int
	abilities   map[string]struct{}

	achievements []*Achievement

	paths     []*EvolutionPath
	pathIndex map[string]*EvolutionPath
}

// New creates a fresh universe from the fixed seed composition and content
// catalogs. The randomness source is injected so tests can replay runs.
func New(cfg *config.Config, rng entropy.Source) *Engine {
	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		SessionID: uuid.New(),
		ledger:    cosmos.NewLedger(),
		skills:    make(map[string]float64, len(seedSkills)),
		abilities: make(map[string]struct{}),
	}

	for _, skill := range seedSkills {
		e.skills[skill] = 0
	}

	e.theories = defaultTheories()
	e.theoryIndex = make(map[string]*Theory, len(e.theories))
	for _, th := range e.theories {
		e.theoryIndex[th.ID] = th
	}

	e.tiers = defaultTiers()
	e.achievements = defaultAchievements()
	e.attachEngineAchievements()

	e.paths = defaultEvolutionPaths()
	e.pathIndex = make(map[string]*EvolutionPath, len(e.paths))
	for _, p := range e.paths {
		e.pathIndex[p.ID] = p
	}

	return e
}

// GetResources returns a copy of every ledger entry.
func (e *Engine) GetResources() cosmos.Delta {
	return e.ledger.Snapshot()
}

// GetCosmicTime returns elapsed simulated time in seconds.
func (e *Engine) GetCosmicTime() float64 {
	return e.cosmicTime
}

// GetEntropyLevel returns the monotonic entropy scalar.
func (e *Engine) GetEntropyLevel() float64 {
	return e.entropyLevel
}

// GetTheories returns copies of all theories, catalog order.
func (e *Engine) GetTheories() []Theory {
	out := make([]Theory, len(e.theories))
	for i, th := range e.theories {
		out[i] = th.clone()
	}
	return out
}

// GetActiveEffects returns copies of the currently active effects.
func (e *Engine) GetActiveEffects() []Effect {
	out := make([]Effect, len(e.effects))
	for i, ef := range e.effects {
		out[i] = *ef
	}
	return out
}

// GetMasteryLevel returns the cumulative level for one skill, 0 if the skill
// has never been trained.
func (e *Engine) GetMasteryLevel(skill string) float64 {
	return e.skills[skill]
}

// GetCurrentTier returns a copy of the tier the session currently occupies.
func (e *Engine) GetCurrentTier() Tier {
	return e.tiers[e.currentTier].clone()
}

// ProgressionStatus summarizes the mastery side for the host's HUD.
type ProgressionStatus struct {
	TotalMastery        float64  `json:"total_mastery"`
	CurrentTier         Tier     `json:"current_tier"`
	NextTierAt          float64  `json:"next_tier_at"` // 0 when at the top tier
	CosmicUnderstanding float64  `json:"cosmic_understanding"`
	Abilities           []string `json:"abilities"`
}

// GetProgressionStatus returns an aggregate progression snapshot.
func (e *Engine) GetProgressionStatus() ProgressionStatus {
	total := e.totalMastery()
	status := ProgressionStatus{
		TotalMastery:        total,
		CurrentTier:         e.tiers[e.currentTier].clone(),
		CosmicUnderstanding: cosmicUnderstanding(total),
		Abilities:           e.abilityList(),
	}
	if e.currentTier+1 < len(e.tiers) {
		status.NextTierAt = e.tiers[e.currentTier+1].RequiredMastery
	}
	return status
}

// GetAchievements returns copies of all achievements, catalog order.
func (e *Engine) GetAchievements() []Achievement {
	out := make([]Achievement, len(e.achievements))
	for i, a := range e.achievements {
		out[i] = a.clone()
	}
	return out
}

// GetCompletedAchievements returns the ids of unlocked achievements,
// catalog order.
func (e *Engine) GetCompletedAchievements() []string {
	var out []string
	for _, a := range e.achievements {
		if a.Unlocked {
			out = append(out, a.ID)
		}
	}
	return out
}

// GetEvolutionPaths returns copies of every evolution path.
func (e *Engine) GetEvolutionPaths() []EvolutionPath {
	out := make([]EvolutionPath, len(e.paths))
	for i, p := range e.paths {
		out[i] = p.clone()
	}
	return out
}

func (e *Engine) totalMastery() float64 {
	total := 0.0
	for _, lvl := range e.skills {
		total += lvl
	}
	return total
}

func (e *Engine) abilityList() []string {
	out := make([]string, 0, len(e.abilities))
	for ab := range e.abilities {
		out = append(out, ab)
	}
	sort.Strings(out)
	return out
}

// cosmicUnderstanding maps total mastery onto a 0→1 saturation curve.
func cosmicUnderstanding(totalMastery float64) float64 {
	return totalMastery / (totalMastery + 100000)
}
