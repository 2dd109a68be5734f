package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

func TestResearchPaysPerAttempt(t *testing.T) {
	e := newTestEngine()

	// Requirements (strongNuclearForce 200, cosmicInformation 100) are met on
	// the fresh ledger. Effort 1000 is below threshold 1000 + 500×2 = 2000,
	// so the attempt spends the resources and still returns false.
	ok := e.ConductResearch("Big Bang Nucleosynthesis", 1000)

	assert.False(t, ok)
	assert.InDelta(t, 50.0, e.GetResources()[cosmos.StrongNuclearForce], 1e-12)
	assert.InDelta(t, 50.0, e.GetResources()[cosmos.CosmicInformation], 1e-12)

	th := findTheory(t, e, "Big Bang Nucleosynthesis")
	assert.Equal(t, 1000.0, th.ResearchProgress)
	assert.False(t, th.Unlocked)
}

func TestResearchRequiresAllThresholds(t *testing.T) {
	e := newTestEngine()

	// Drain one requirement below its threshold; the call must not consume
	// anything else either.
	e.ledger.Set(cosmos.StrongNuclearForce, 100)
	before := e.GetResources()

	assert.False(t, e.ConductResearch("Big Bang Nucleosynthesis", 1000))
	assert.Equal(t, before, e.GetResources())
	assert.Equal(t, 0.0, findTheory(t, e, "Big Bang Nucleosynthesis").ResearchProgress)
}

func TestResearchUnknownTheory(t *testing.T) {
	e := newTestEngine()
	before := e.GetResources()

	assert.False(t, e.ConductResearch("Luminiferous Aether", 1000))
	assert.Equal(t, before, e.GetResources())
}

func TestResearchBreakthroughIsTerminal(t *testing.T) {
	e := newTestEngine()

	require.False(t, e.ConductResearch("Big Bang Nucleosynthesis", 1000))

	// Refill and cross the threshold on the second attempt.
	e.ledger.Set(cosmos.StrongNuclearForce, 500)
	e.ledger.Set(cosmos.CosmicInformation, 500)
	assert.True(t, e.ConductResearch("Big Bang Nucleosynthesis", 1000))

	th := findTheory(t, e, "Big Bang Nucleosynthesis")
	assert.True(t, th.Unlocked)
	assert.NotEmpty(t, e.GetActiveEffects())

	// Unlocked is one-way: later calls never succeed and never consume.
	before := e.GetResources()
	assert.False(t, e.ConductResearch("Big Bang Nucleosynthesis", 99999))
	assert.Equal(t, before, e.GetResources())
}

func TestBreakthroughThresholdScalesWithRequirements(t *testing.T) {
	e := newTestEngine()

	two := findTheory(t, e, "Big Bang Nucleosynthesis")
	three := findTheory(t, e, "Stellar Evolution")

	assert.Equal(t, 2000.0, e.BreakthroughThreshold(two))
	assert.Equal(t, 2500.0, e.BreakthroughThreshold(three))
}

func TestUniverseModificationAppliesOnUnlock(t *testing.T) {
	e := newTestEngine()

	// Cosmic Inflation's effect raises darkEnergyAcceleration at unlock.
	e.ledger.Set(cosmos.QuantumVacuumEnergy, 10000)
	e.ledger.Set(cosmos.DarkEnergy, 100000)

	require.False(t, e.ConductResearch("Cosmic Inflation", 900))
	require.True(t, e.ConductResearch("Cosmic Inflation", 1100))

	assert.InDelta(t, 0.5, e.GetResources()[cosmos.DarkEnergyAcceleration], 1e-12)
}

func TestNewAbilityEffectRegistersAbility(t *testing.T) {
	e := newTestEngine()

	e.ledger.Set(cosmos.HydrogenFuel, 1e6)
	e.ledger.Set(cosmos.HeliumAsh, 1e6)
	e.ledger.Set(cosmos.StellarNeutrinos, 1e6)
	require.True(t, e.ConductResearch("Stellar Evolution", 3000))

	assert.Contains(t, e.GetProgressionStatus().Abilities, "supernova_seeding")
}

func findTheory(t *testing.T, e *Engine, id string) *Theory {
	t.Helper()
	th, ok := e.theoryIndex[id]
	require.True(t, ok, "theory %s not in catalog", id)
	return th
}
