package game

import "fmt"

// Allocation maps the five budget categories to GDP token spend.
type Allocation struct {
	Military       int
	Technology     int
	Culture        int
	Infrastructure int
	Diplomacy      int
}

// Total is the number of GDP tokens the allocation consumes.
func (a Allocation) Total() int {
	return a.Military + a.Technology + a.Culture + a.Infrastructure + a.Diplomacy
}

func (a Allocation) hasNegative() bool {
	return a.Military < 0 || a.Technology < 0 || a.Culture < 0 ||
		a.Infrastructure < 0 || a.Diplomacy < 0
}

// Order is a bloc's per-turn submission: a budget allocation plus exactly one
// selected card. Orders are immutable once the turn closes; resubmission
// before then replaces the prior order.
type Order struct {
	Bloc  string
	Spend Allocation
	Card  CardType
	Pass  bool
}

// PassOrder is the implicit default substituted for a bloc that never
// submitted before the policy draft timed out: zero spend, no card.
func PassOrder(bloc string) Order {
	return Order{Bloc: bloc, Pass: true}
}

// ValidateOrder performs the input-range checks for a submission against the
// current world: the bloc must exist, no category may be negative, the total
// may not exceed the bloc's GDP balance, and the card must be in the catalog.
func (w *WorldState) ValidateOrder(o Order) error {
	bloc := w.Bloc(o.Bloc)
	if bloc == nil {
		return fmt.Errorf("unknown bloc %q: %w", o.Bloc, ErrInvalidOrder)
	}
	if o.Spend.hasNegative() {
		return fmt.Errorf("bloc %s: negative category spend: %w", o.Bloc, ErrInvalidOrder)
	}
	if total := o.Spend.Total(); total > bloc.GDP {
		return fmt.Errorf("bloc %s: allocation %d exceeds GDP %d: %w", o.Bloc, total, bloc.GDP, ErrInvalidOrder)
	}
	if o.Pass {
		if o.Card != NoCard || o.Spend.Total() != 0 {
			return fmt.Errorf("bloc %s: pass order must be empty: %w", o.Bloc, ErrInvalidOrder)
		}
		return nil
	}
	if !CardInCatalog(o.Card) {
		return fmt.Errorf("bloc %s: card %d not in catalog: %w", o.Bloc, o.Card, ErrInvalidOrder)
	}
	return nil
}
