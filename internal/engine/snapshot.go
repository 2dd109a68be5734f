// Snapshot and restore — the serialization boundary for persistence. The
// catalogs (theories, tiers, achievements, paths) are code; only mutable
// progress crosses this boundary.
package engine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

// TheoryState is the mutable slice of one theory.
type TheoryState struct {
	ID       string
	Progress float64
	Unlocked bool
}

// PathState is the mutable slice of one evolution path.
type PathState struct {
	ID       string
	Progress float64
	Stage    int
}

// State is everything needed to reconstruct a session bit-for-bit.
type State struct {
	SessionID    string
	CosmicTime   float64
	EntropyLevel float64
	Fluctuation  float64
	CurrentTier  int

	Resources    cosmos.Delta
	Theories     []TheoryState
	Effects      []Effect
	Skills       map[string]float64
	Abilities    []string
	Achievements []string // unlocked ids
	Paths        []PathState
}

// Snapshot captures the full mutable state. The returned value shares
// nothing with the engine.
func (e *Engine) Snapshot() State {
	st := State{
		SessionID:    e.SessionID.String(),
		CosmicTime:   e.cosmicTime,
		EntropyLevel: e.entropyLevel,
		Fluctuation:  e.fluctuation,
		CurrentTier:  e.currentTier,
		Resources:    e.ledger.Snapshot(),
		Skills:       make(map[string]float64, len(e.skills)),
		Abilities:    e.abilityList(),
		Achievements: e.GetCompletedAchievements(),
	}
	for skill, lvl := range e.skills {
		st.Skills[skill] = lvl
	}
	for _, th := range e.theories {
		st.Theories = append(st.Theories, TheoryState{ID: th.ID, Progress: th.ResearchProgress, Unlocked: th.Unlocked})
	}
	for _, ef := range e.effects {
		st.Effects = append(st.Effects, *ef)
	}
	for _, p := range e.paths {
		st.Paths = append(st.Paths, PathState{ID: p.ID, Progress: p.Progress, Stage: p.CurrentStage})
	}
	return st
}

// RestoreState overlays a saved state onto a freshly constructed engine.
// Entries referring to catalog items that no longer exist are skipped with a
// warning rather than failing the load.
func (e *Engine) RestoreState(st State) {
	if id, err := uuid.Parse(st.SessionID); err == nil {
		e.SessionID = id
	}
	e.cosmicTime = st.CosmicTime
	e.entropyLevel = st.EntropyLevel
	e.fluctuation = st.Fluctuation

	if st.CurrentTier >= 0 && st.CurrentTier < len(e.tiers) {
		e.currentTier = st.CurrentTier
	}

	e.ledger.Restore(st.Resources)

	for skill, lvl := range st.Skills {
		e.skills[skill] = lvl
	}

	for _, ts := range st.Theories {
		th, ok := e.theoryIndex[ts.ID]
		if !ok {
			slog.Warn("saved theory missing from catalog", "theory", ts.ID)
			continue
		}
		th.ResearchProgress = ts.Progress
		th.Unlocked = ts.Unlocked
	}

	e.effects = e.effects[:0]
	for _, ef := range st.Effects {
		restored := ef
		e.effects = append(e.effects, &restored)
	}

	e.abilities = make(map[string]struct{}, len(st.Abilities))
	for _, ab := range st.Abilities {
		e.abilities[ab] = struct{}{}
	}

	unlocked := make(map[string]bool, len(st.Achievements))
	for _, id := range st.Achievements {
		unlocked[id] = true
	}
	for _, a := range e.achievements {
		a.Unlocked = unlocked[a.ID]
	}

	for _, ps := range st.Paths {
		p, ok := e.pathIndex[ps.ID]
		if !ok {
			slog.Warn("saved evolution path missing from catalog", "path", ps.ID)
			continue
		}
		p.Progress = ps.Progress
		p.CurrentStage = ps.Stage
	}
}
