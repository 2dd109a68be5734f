// Package cosmos defines the closed resource key set and the numeric ledger
// that the rest of the engine mutates.
package cosmos

// Key identifies one resource in the ledger. The set is closed: every key the
// engine ever touches is declared here, so there is no stringly-typed
// indexing against arbitrary property names.
type Key string

// Fundamental forces.
const (
	GravitationalForce   Key = "gravitationalForce"
	ElectromagneticForce Key = "electromagneticForce"
	StrongNuclearForce   Key = "strongNuclearForce"
	WeakNuclearForce     Key = "weakNuclearForce"
)

// Exotic matter and energy.
const (
	DarkMatter          Key = "darkMatter"
	DarkEnergy          Key = "darkEnergy"
	QuantumVacuumEnergy Key = "quantumVacuumEnergy"
	Antimatter          Key = "antimatter"
)

// Stellar byproducts.
const (
	HydrogenFuel     Key = "hydrogenFuel"
	HeliumAsh        Key = "heliumAsh"
	HeavyElements    Key = "heavyElements"
	StellarNeutrinos Key = "stellarNeutrinos"
	InterstellarDust Key = "interstellarDust"
)

// Spacetime quantities.
const (
	SpacetimeCurvature     Key = "spacetimeCurvature"
	GravitationalWaves     Key = "gravitationalWaves"
	DarkEnergyAcceleration Key = "darkEnergyAcceleration"
)

// Information quantities.
const (
	CosmicInformation         Key = "cosmicInformation"
	QuantumEntanglement       Key = "quantumEntanglement"
	EmergentComplexity        Key = "emergentComplexity"
	CosmicBackgroundRadiation Key = "cosmicBackgroundRadiation"
)

// Keys lists every ledger key in a fixed order. Iteration that must be
// deterministic (saves, reports) walks this slice instead of ranging a map.
var Keys = []Key{
	GravitationalForce, ElectromagneticForce, StrongNuclearForce, WeakNuclearForce,
	DarkMatter, DarkEnergy, QuantumVacuumEnergy, Antimatter,
	HydrogenFuel, HeliumAsh, HeavyElements, StellarNeutrinos, InterstellarDust,
	SpacetimeCurvature, GravitationalWaves, DarkEnergyAcceleration,
	CosmicInformation, QuantumEntanglement, EmergentComplexity, CosmicBackgroundRadiation,
}

// seedValues are the amounts a fresh universe starts with. Proportions are
// modeled loosely on measured cosmic composition: dark energy ~69% and dark
// matter ~27% of the exotic sector, hydrogen dominating baryonic matter.
var seedValues = map[Key]float64{
	GravitationalForce:        100,
	ElectromagneticForce:      100,
	StrongNuclearForce:        250,
	WeakNuclearForce:          100,
	DarkMatter:                2700,
	DarkEnergy:                6900,
	QuantumVacuumEnergy:       500,
	Antimatter:                10,
	HydrogenFuel:              5000,
	HeliumAsh:                 1200,
	HeavyElements:             50,
	StellarNeutrinos:          300,
	InterstellarDust:          400,
	SpacetimeCurvature:        75,
	GravitationalWaves:        25,
	DarkEnergyAcceleration:    0,
	CosmicInformation:         150,
	QuantumEntanglement:       80,
	EmergentComplexity:        40,
	CosmicBackgroundRadiation: 270,
}

// Valid reports whether k is one of the declared ledger keys.
func Valid(k Key) bool {
	_, ok := seedValues[k]
	return ok
}
