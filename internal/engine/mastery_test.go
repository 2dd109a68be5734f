package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMasteryAccumulates(t *testing.T) {
	e := newTestEngine()

	r := e.AddMastery("quantum_manipulation", 5, "")
	assert.Equal(t, 5.0, r.NewMasteryLevel)
	assert.Equal(t, 5.0, e.GetMasteryLevel("quantum_manipulation"))

	r = e.AddMastery("quantum_manipulation", 2.5, "")
	assert.Equal(t, 7.5, r.NewMasteryLevel)
}

func TestAddMasteryUnknownSkillCreatedAtZero(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, 0.0, e.GetMasteryLevel("chronomancy"))

	r := e.AddMastery("chronomancy", 3, "")
	assert.Equal(t, 3.0, r.NewMasteryLevel)
}

func TestAddMasteryNegativeIsNoOp(t *testing.T) {
	e := newTestEngine()
	e.AddMastery("cosmic_awareness", 10, "")

	r := e.AddMastery("cosmic_awareness", -5, "")
	assert.Equal(t, 0.0, r.MasteryGained)
	assert.Equal(t, 10.0, e.GetMasteryLevel("cosmic_awareness"))
}

func TestTierAdvancementAtThreshold(t *testing.T) {
	e := newTestEngine()

	r := e.AddMastery("quantum_manipulation", 1000, "")

	require.NotNil(t, r.TierAdvancement)
	assert.Equal(t, 0, r.TierAdvancement.From)
	assert.Equal(t, 1, r.TierAdvancement.To)
	assert.Equal(t, 1000.0, r.TierAdvancement.RequiredMastery)
	assert.Equal(t, "Stellar Apprentice", r.TierAdvancement.Name)
	assert.ElementsMatch(t, []string{"solar_wind_sailing", "nebula_reading"}, r.TierAdvancement.AbilitiesUnlocked)
	assert.Equal(t, 1, e.GetCurrentTier().Index)
}

func TestTierAdvancesOneStepPerCall(t *testing.T) {
	e := newTestEngine()

	// A gain qualifying for tiers 1–4 still only lands on tier 1.
	r := e.AddMastery("stellar_engineering", 60000, "")
	require.NotNil(t, r.TierAdvancement)
	assert.Equal(t, 1, r.TierAdvancement.To)

	// Later calls pick up the remaining advancement one rung at a time.
	r = e.AddMastery("stellar_engineering", 0, "")
	require.NotNil(t, r.TierAdvancement)
	assert.Equal(t, 2, r.TierAdvancement.To)

	r = e.AddMastery("stellar_engineering", 0, "")
	require.NotNil(t, r.TierAdvancement)
	assert.Equal(t, 3, r.TierAdvancement.To)

	r = e.AddMastery("stellar_engineering", 0, "")
	require.NotNil(t, r.TierAdvancement)
	assert.Equal(t, 4, r.TierAdvancement.To)

	// 60000 does not reach tier 5 (150000).
	r = e.AddMastery("stellar_engineering", 0, "")
	assert.Nil(t, r.TierAdvancement)
}

func TestTierNeverDecreasesAndTotalIsMonotonic(t *testing.T) {
	e := newTestEngine()

	gains := []struct {
		skill  string
		amount float64
	}{
		{"quantum_manipulation", 400},
		{"stellar_engineering", 0},
		{"cosmic_awareness", 700},
		{"entropy_mastery", 12},
		{"quantum_manipulation", 0},
	}

	prevTier := e.GetCurrentTier().Index
	prevTotal := 0.0
	for _, g := range gains {
		e.AddMastery(g.skill, g.amount, "")
		status := e.GetProgressionStatus()
		assert.GreaterOrEqual(t, status.TotalMastery, prevTotal)
		assert.GreaterOrEqual(t, status.CurrentTier.Index, prevTier)
		prevTotal = status.TotalMastery
		prevTier = status.CurrentTier.Index
	}
}

func TestTotalMasterySumsAllSkills(t *testing.T) {
	e := newTestEngine()
	e.AddMastery("quantum_manipulation", 600, "")
	r := e.AddMastery("gravitational_control", 400, "")

	// The 1000 threshold is met by the cross-skill sum.
	require.NotNil(t, r.TierAdvancement)
	assert.Equal(t, 1, r.TierAdvancement.To)
}

func TestCosmicUnderstandingSaturates(t *testing.T) {
	e := newTestEngine()

	r1 := e.AddMastery("cosmic_awareness", 1000, "")
	r2 := e.AddMastery("cosmic_awareness", 100000, "")

	assert.Greater(t, r2.CosmicUnderstanding, r1.CosmicUnderstanding)
	assert.Less(t, r2.CosmicUnderstanding, 1.0)
}
