package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

func unlockIDs(unlocks []AchievementUnlock) []string {
	var out []string
	for _, u := range unlocks {
		out = append(out, u.ID)
	}
	return out
}

func TestAchievementUnlocksAndRewards(t *testing.T) {
	e := newTestEngine()
	infoBefore := e.GetResources()[cosmos.CosmicInformation]

	r := e.AddMastery("dark_matter_weaving", 10, "")

	require.Contains(t, unlockIDs(r.AchievementsUnlocked), "first_light")
	assert.Contains(t, e.GetCompletedAchievements(), "first_light")
	// Reward applied and reported.
	assert.InDelta(t, infoBefore+25, e.GetResources()[cosmos.CosmicInformation], 1e-12)
}

func TestAchievementUnlockIsTerminal(t *testing.T) {
	e := newTestEngine()
	e.AddMastery("dark_matter_weaving", 10, "")
	infoAfter := e.GetResources()[cosmos.CosmicInformation]

	// Meeting the predicate again must not re-unlock or re-reward.
	r := e.AddMastery("dark_matter_weaving", 10, "")
	assert.NotContains(t, unlockIDs(r.AchievementsUnlocked), "first_light")
	assert.InDelta(t, infoAfter, e.GetResources()[cosmos.CosmicInformation], 1e-12)
}

func TestAchievementsAreDeterministic(t *testing.T) {
	run := func() []string {
		e := newTestEngine()
		e.AddMastery("quantum_manipulation", 150, "")
		e.AddMastery("gravitational_control", 60, "black_hole_survey")
		return e.GetCompletedAchievements()
	}
	assert.Equal(t, run(), run())
}

func TestSkillSpecificAchievements(t *testing.T) {
	e := newTestEngine()

	r := e.AddMastery("quantum_manipulation", 100, "")
	assert.Contains(t, unlockIDs(r.AchievementsUnlocked), "quantum_adept")

	// The same level in a different skill does not qualify.
	r = e.AddMastery("spacetime_navigation", 100, "")
	assert.NotContains(t, unlockIDs(r.AchievementsUnlocked), "stellar_smith")
}

func TestContextGatedAchievement(t *testing.T) {
	e := newTestEngine()

	// Level alone is not enough without the context hint.
	r := e.AddMastery("gravitational_control", 60, "")
	assert.NotContains(t, unlockIDs(r.AchievementsUnlocked), "event_horizon_scholar")

	r = e.AddMastery("gravitational_control", 1, "black_hole_survey")
	assert.Contains(t, unlockIDs(r.AchievementsUnlocked), "event_horizon_scholar")
}

func TestRenaissanceBeingNeedsEverySkill(t *testing.T) {
	e := newTestEngine()

	for _, skill := range seedSkills[:len(seedSkills)-1] {
		r := e.AddMastery(skill, 50, "")
		assert.NotContains(t, unlockIDs(r.AchievementsUnlocked), "renaissance_being")
	}

	r := e.AddMastery(seedSkills[len(seedSkills)-1], 50, "")
	assert.Contains(t, unlockIDs(r.AchievementsUnlocked), "renaissance_being")
}

func TestUnlockedSetOnlyGrows(t *testing.T) {
	e := newTestEngine()

	prev := 0
	for i := 0; i < 20; i++ {
		e.AddMastery("energy_transmutation", 25, "")
		got := len(e.GetCompletedAchievements())
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
