// Per-frame physics — expansion, fluctuation, decay, regeneration, effects.
package engine

import (
	"math"

	"github.com/talgya/cosmogenesis/internal/cosmos"
)

// matterLike lists the quantities diluted by metric expansion. Dark energy
// behaves as a cosmological constant and is untouched.
var matterLike = []cosmos.Key{cosmos.DarkMatter, cosmos.HydrogenFuel}

// regenTargets receive fixed dt-proportional passive regeneration.
func (e *Engine) regenTargets() map[cosmos.Key]float64 {
	p := e.cfg.Physics
	return map[cosmos.Key]float64{
		cosmos.StellarNeutrinos:   p.RegenNeutrinos,
		cosmos.GravitationalWaves: p.RegenGravitationalWaves,
		cosmos.CosmicInformation:  p.RegenInformation,
	}
}

// UpdatePhysics advances the universe by one frame of dt milliseconds. The
// pipeline is order-sensitive: time, expansion, fluctuation, entropy decay,
// dark-energy feedback, regeneration, generation effects, effect expiry.
// A dt of zero is a complete no-op.
func (e *Engine) UpdatePhysics(dt float64) {
	p := e.cfg.Physics

	// 1. Cosmic time.
	e.cosmicTime += dt * p.TimeScale

	// 2. Metric expansion dilutes matter-like quantities by volume.
	acceleration := e.ledger.Get(cosmos.DarkEnergyAcceleration)
	scaleFactor := 1 + p.HubbleConstant*(1+acceleration)*dt*p.TimeScale
	volume := math.Pow(scaleFactor, 3)
	for _, k := range matterLike {
		e.ledger.Set(k, e.ledger.Get(k)/volume)
	}

	// 3. Quantum fluctuations accumulate until a grant fires.
	e.fluctuation += e.rng.Float() * dt * 0.1
	if e.fluctuation > p.FluctuationThreshold {
		e.ledger.Add(cosmos.QuantumVacuumEnergy, p.FluctuationVacuumBonus)
		e.ledger.Add(cosmos.QuantumEntanglement, p.FluctuationEntanglementBonus)
		e.fluctuation = 0
	}

	// 4. Entropy rises; a slow flat decay drains every positive entry.
	// The drain is not scaled by the entropy level itself.
	e.entropyLevel += dt * p.EntropyRate
	decay := 1 - p.DecayRate*dt
	for _, k := range cosmos.Keys {
		if v := e.ledger.Get(k); v > 0 {
			e.ledger.Set(k, v*decay)
		}
	}

	// 5. Accelerating expansion feeds spacetime curvature. Re-read after
	// decay: feedback sees the current value, not the frame-start one.
	if a := e.ledger.Get(cosmos.DarkEnergyAcceleration); a > 0 {
		e.ledger.Add(cosmos.SpacetimeCurvature, a*dt*p.CurvatureFeedRate)
	}

	// 6. Passive regeneration.
	for k, rate := range e.regenTargets() {
		e.ledger.Add(k, rate*dt)
	}

	// Unlocked generation effects contribute to their targets.
	for _, ef := range e.effects {
		if ef.Kind == EffectResourceGeneration {
			e.ledger.Add(cosmos.Key(ef.Target), ef.Magnitude*dt*p.TimeScale)
		}
	}

	// 7. Effect expiry. Permanent effects never count down.
	e.expireEffects(dt)
}

// expireEffects decrements finite durations and drops spent effects.
func (e *Engine) expireEffects(dt float64) {
	if dt == 0 {
		return
	}
	kept := e.effects[:0]
	for _, ef := range e.effects {
		if ef.Duration == PermanentDuration {
			kept = append(kept, ef)
			continue
		}
		ef.Duration -= dt
		if ef.Duration > 0 {
			kept = append(kept, ef)
		}
	}
	e.effects = kept
}
