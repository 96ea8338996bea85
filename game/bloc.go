package game

import "sort"

// Bloc is one of the three competing major powers. Budget category levels are
// non-negative and soft-capped by the spend formula rather than hard-clamped.
// Diplomacy doubles as the trust score that nets out regulatory drag.
type Bloc struct {
	Name string

	GDP int // token balance, never negative

	Military       int
	Technology     int
	Culture        int
	Infrastructure int
	Diplomacy      int

	Cohesion       int // 0..MaxCohesion, internal stability
	Development    int // permanent income multiplier tier, starts at 1
	RegulatoryDrag int // 0..MaxDrag

	Alliances map[string]bool // symmetric, keyed by ally name

	// VictoryPoints is derived. Recomputed after every phase that can change
	// attributes; never an input to anything but the terminal check.
	VictoryPoints int
}

func NewBloc(name string, gdp int) *Bloc {
	return &Bloc{
		Name:        name,
		GDP:         gdp,
		Cohesion:    5,
		Development: 1,
		Alliances:   make(map[string]bool),
	}
}

// EffectiveDrag is regulatory drag after diplomacy is netted out.
func (b *Bloc) EffectiveDrag() int {
	return max(b.RegulatoryDrag-b.Diplomacy, 0)
}

// TechBonus converts the technology level into victory points. Level three is
// the nexus payoff.
func (b *Bloc) TechBonus() int {
	switch b.Technology {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 5
	}
}

// AllianceNames returns the bloc's allies in a stable order.
func (b *Bloc) AllianceNames() []string {
	names := make([]string, 0, len(b.Alliances))
	for name := range b.Alliances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *Bloc) copy() *Bloc {
	alliances := make(map[string]bool, len(b.Alliances))
	for name := range b.Alliances {
		alliances[name] = true
	}
	c := *b
	c.Alliances = alliances
	return &c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
