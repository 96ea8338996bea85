package game

// Tunables collects the rule parameters that are balance knobs rather than
// structure: income curve, spend soft caps, and event probabilities. The
// yaml tags let the config package overlay them from a file.
type Tunables struct {
	BaseIncome int `yaml:"base_income"`
	MinIncome  int `yaml:"min_income"`

	CohesionLowWater    int     `yaml:"cohesion_low_water"`
	CohesionHighWater   int     `yaml:"cohesion_high_water"`
	CohesionPenaltyMult float64 `yaml:"cohesion_penalty_mult"`
	CohesionBonusMult   float64 `yaml:"cohesion_bonus_mult"`

	InfraBonusPerTier float64 `yaml:"infra_bonus_per_tier"`
	InfraBonusCap     float64 `yaml:"infra_bonus_cap"`

	// Spend above the soft cap still contributes, divided down rather than
	// wasted. InfraDevStep tokens of infrastructure spend buy one permanent
	// development tier.
	SpendSoftCap   int `yaml:"spend_soft_cap"`
	OverCapDivisor int `yaml:"over_cap_divisor"`
	InfraDevStep   int `yaml:"infra_dev_step"`

	RegionalEventChance float64 `yaml:"regional_event_chance"`
	GlobalEventChance   float64 `yaml:"global_event_chance"`
}

// StandardTunables returns the standard rule parameters.
func StandardTunables() Tunables {
	return Tunables{
		BaseIncome:          3,
		MinIncome:           1,
		CohesionLowWater:    2,
		CohesionHighWater:   7,
		CohesionPenaltyMult: 0.75,
		CohesionBonusMult:   1.25,
		InfraBonusPerTier:   0.1,
		InfraBonusCap:       0.5,
		SpendSoftCap:        2,
		OverCapDivisor:      2,
		InfraDevStep:        3,
		RegionalEventChance: 0.6,
		GlobalEventChance:   0.2,
	}
}
