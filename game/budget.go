package game

import (
	"fmt"
	"math"
)

// ComputeIncome returns a bloc's GDP income for this turn: base income plus
// the GDP contribution of controlled regions, scaled by cohesion and by
// infrastructure, minus effective regulatory drag. The infrastructure
// multiplier counts the attribute level plus the permanent development tiers,
// capped as one. Income never falls below the configured floor.
func ComputeIncome(b *Bloc, regions []*Region, t Tunables) int {
	base := t.BaseIncome
	for _, r := range regions {
		if r.Owner == b.Name {
			base += r.GDP
		}
	}

	mult := 1.0
	if b.Cohesion <= t.CohesionLowWater {
		mult = t.CohesionPenaltyMult
	} else if b.Cohesion >= t.CohesionHighWater {
		mult = t.CohesionBonusMult
	}

	infra := 1.0 + t.InfraBonusPerTier*float64(b.Infrastructure+b.Development)
	if cap := 1.0 + t.InfraBonusCap; infra > cap {
		infra = cap
	}

	income := int(math.Round(float64(base)*mult*infra)) - b.EffectiveDrag()
	if income < t.MinIncome {
		income = t.MinIncome
	}
	return income
}

// ApplySpend deducts an allocation from the bloc's GDP balance and raises the
// matching attributes. Spend up to the soft cap converts one-for-one;
// anything above contributes at the reduced rate. Infrastructure spend
// additionally buys permanent development tiers, the only cross-turn
// carry-over beyond the attribute itself.
//
// A violating allocation fails with ErrInvalidOrder and leaves the bloc
// unmodified.
func ApplySpend(b *Bloc, a Allocation, t Tunables) error {
	if a.hasNegative() {
		return fmt.Errorf("bloc %s: negative category spend: %w", b.Name, ErrInvalidOrder)
	}
	total := a.Total()
	if total > b.GDP {
		return fmt.Errorf("bloc %s: allocation %d exceeds GDP %d: %w", b.Name, total, b.GDP, ErrInvalidOrder)
	}

	b.GDP -= total
	b.Military += spendGain(a.Military, t)
	b.Technology += spendGain(a.Technology, t)
	b.Culture += spendGain(a.Culture, t)
	b.Infrastructure += spendGain(a.Infrastructure, t)
	b.Diplomacy += spendGain(a.Diplomacy, t)

	if t.InfraDevStep > 0 {
		b.Development += a.Infrastructure / t.InfraDevStep
	}
	return nil
}

// spendGain applies the diminishing-returns curve: full rate up to the soft
// cap, divided down above it.
func spendGain(spend int, t Tunables) int {
	if spend <= t.SpendSoftCap {
		return spend
	}
	over := spend - t.SpendSoftCap
	divisor := t.OverCapDivisor
	if divisor < 1 {
		divisor = 1
	}
	return t.SpendSoftCap + over/divisor
}

// CreditIncome computes and credits this turn's income for every bloc, in
// bloc list order, appending a log line per bloc.
func CreditIncome(w *WorldState) {
	for _, b := range w.Blocs {
		income := ComputeIncome(b, w.Regions, w.Tunables)
		b.GDP += income
		w.Logf("%s: income +%d GDP (balance %d)", b.Name, income, b.GDP)
	}
}
