// Evolution graph — weighted branching progression independent of tiers.
// Unlike the tier ladder, a path jumps straight to the highest stage its
// accumulated progress qualifies for on each call.
package engine

import "log/slog"

// Stage is one step of an evolution path.
type Stage struct {
	Name               string   `json:"name"`
	Threshold          float64  `json:"threshold"`
	Capabilities       []string `json:"capabilities"`
	ConsciousnessLevel float64  `json:"consciousness_level"`
}

// EvolutionPath is an ordered stage ladder driven by weighted mastery.
type EvolutionPath struct {
	ID           string  `json:"id"`
	Stages       []Stage `json:"stages"`
	Progress     float64 `json:"progress"`
	CurrentStage int     `json:"current_stage"`
}

func (p *EvolutionPath) clone() EvolutionPath {
	out := *p
	out.Stages = make([]Stage, len(p.Stages))
	for i, s := range p.Stages {
		s.Capabilities = append([]string(nil), s.Capabilities...)
		out.Stages[i] = s
	}
	return out
}

// EvolutionUpdate reports a path reaching a new (possibly skipped-ahead) stage.
type EvolutionUpdate struct {
	Path               string   `json:"path"`
	Stage              int      `json:"stage"`
	StageName          string   `json:"stage_name"`
	Capabilities       []string `json:"capabilities"`
	ConsciousnessLevel float64  `json:"consciousness_level"`
}

// affinityOverrides weights specific (path, skill) pairs; everything else
// contributes at 1.0.
var affinityOverrides = map[string]map[string]float64{
	"consciousness_expansion": {
		"cosmic_awareness":      2.5,
		"information_synthesis": 1.8,
		"quantum_manipulation":  1.3,
	},
	"technological_ascension": {
		"stellar_engineering":  2.2,
		"energy_transmutation": 1.8,
		"dark_matter_weaving":  1.4,
	},
	"cosmic_integration": {
		"gravitational_control": 2.0,
		"spacetime_navigation":  2.0,
		"stellar_engineering":   0.8,
	},
	"transcendent_unity": {
		"entropy_mastery":      2.4,
		"cosmic_awareness":     1.6,
		"quantum_manipulation": 1.6,
	},
}

func affinity(path, skill string) float64 {
	if overrides, ok := affinityOverrides[path]; ok {
		if w, ok := overrides[skill]; ok {
			return w
		}
	}
	return 1.0
}

// updateEvolutionProgress feeds a mastery gain into every path and reports
// the paths whose stage rose.
func (e *Engine) updateEvolutionProgress(skill string, masteryGained float64) []EvolutionUpdate {
	var updates []EvolutionUpdate
	for _, p := range e.paths {
		p.Progress += masteryGained * affinity(p.ID, skill)

		stage := stageFor(p)
		if stage <= p.CurrentStage {
			continue
		}
		p.CurrentStage = stage
		s := p.Stages[stage]
		updates = append(updates, EvolutionUpdate{
			Path:               p.ID,
			Stage:              stage,
			StageName:          s.Name,
			Capabilities:       append([]string(nil), s.Capabilities...),
			ConsciousnessLevel: s.ConsciousnessLevel,
		})
		slog.Info("evolution stage reached",
			"path", p.ID,
			"stage", s.Name,
			"progress", p.Progress,
		)
	}
	return updates
}

// stageFor scans thresholds from the top down and returns the highest stage
// index the path's progress meets, or 0.
func stageFor(p *EvolutionPath) int {
	for i := len(p.Stages) - 1; i >= 0; i-- {
		if p.Progress >= p.Stages[i].Threshold {
			return i
		}
	}
	return 0
}

// defaultEvolutionPaths builds the branching catalog.
func defaultEvolutionPaths() []*EvolutionPath {
	return []*EvolutionPath{
		{
			ID: "consciousness_expansion",
			Stages: []Stage{
				{Name: "Embodied Mind", Threshold: 0, ConsciousnessLevel: 1,
					Capabilities: []string{"introspection"}},
				{Name: "Shared Awareness", Threshold: 2000, ConsciousnessLevel: 2,
					Capabilities: []string{"empathic_link", "dream_weaving"}},
				{Name: "Planetary Overmind", Threshold: 12000, ConsciousnessLevel: 4,
					Capabilities: []string{"biosphere_attunement"}},
				{Name: "Stellar Consciousness", Threshold: 60000, ConsciousnessLevel: 7,
					Capabilities: []string{"photospheric_cognition", "coronal_memory"}},
				{Name: "Noospheric Singularity", Threshold: 250000, ConsciousnessLevel: 10,
					Capabilities: []string{"pan-galactic_thought"}},
			},
		},
		{
			ID: "technological_ascension",
			Stages: []Stage{
				{Name: "Toolmaker", Threshold: 0, ConsciousnessLevel: 1,
					Capabilities: []string{"fabrication"}},
				{Name: "Planetary Industry", Threshold: 3000, ConsciousnessLevel: 2,
					Capabilities: []string{"orbital_assembly"}},
				{Name: "Dyson Engineer", Threshold: 18000, ConsciousnessLevel: 3,
					Capabilities: []string{"stellar_enclosure", "matter_compilers"}},
				{Name: "Matrioshka Architect", Threshold: 80000, ConsciousnessLevel: 5,
					Capabilities: []string{"computronium_casting"}},
				{Name: "Kardashev III", Threshold: 300000, ConsciousnessLevel: 8,
					Capabilities: []string{"galactic_gridworks"}},
			},
		},
		{
			ID: "cosmic_integration",
			Stages: []Stage{
				{Name: "Drifter", Threshold: 0, ConsciousnessLevel: 1,
					Capabilities: []string{"orbit_riding"}},
				{Name: "Current Swimmer", Threshold: 2500, ConsciousnessLevel: 2,
					Capabilities: []string{"gravity_surfing"}},
				{Name: "Filament Weaver", Threshold: 15000, ConsciousnessLevel: 4,
					Capabilities: []string{"dark_flow_navigation", "web_threading"}},
				{Name: "Void Gardener", Threshold: 70000, ConsciousnessLevel: 6,
					Capabilities: []string{"supercluster_husbandry"}},
				{Name: "Metric Native", Threshold: 280000, ConsciousnessLevel: 9,
					Capabilities: []string{"curvature_dwelling"}},
			},
		},
		{
			ID: "transcendent_unity",
			Stages: []Stage{
				{Name: "Seeker", Threshold: 0, ConsciousnessLevel: 1,
					Capabilities: []string{"stillness"}},
				{Name: "Boundary Dissolver", Threshold: 4000, ConsciousnessLevel: 3,
					Capabilities: []string{"ego_shedding"}},
				{Name: "Entropy Dancer", Threshold: 25000, ConsciousnessLevel: 5,
					Capabilities: []string{"decay_acceptance", "arrow_reading"}},
				{Name: "Timeless Witness", Threshold: 100000, ConsciousnessLevel: 8,
					Capabilities: []string{"block_universe_sight"}},
				{Name: "Unity", Threshold: 400000, ConsciousnessLevel: 10,
					Capabilities: []string{"omega_convergence"}},
			},
		},
	}
}
