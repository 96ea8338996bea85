package agent

import (
	"golang.org/x/exp/rand"

	"conviction/game"
)

// Agent builds one bloc's order from a world snapshot. This is the injection
// hook for bot-submitted orders; strategy beyond simple heuristics is out of
// scope for the engine.
type Agent interface {
	FindOrder(snapshot *game.WorldState, bloc string) game.Order
}

// priorityAgent spends where the bloc is weakest and plays a random card.
// It owns its own seeded generator so batch runs stay reproducible.
type priorityAgent struct {
	rng *rand.Rand
}

func NewPriorityAgent(seed uint64) Agent {
	return &priorityAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *priorityAgent) FindOrder(snapshot *game.WorldState, bloc string) game.Order {
	b := snapshot.Bloc(bloc)
	if b == nil || b.GDP <= 0 {
		return game.PassOrder(bloc)
	}

	remaining := b.GDP
	var spend game.Allocation

	take := func(want int) int {
		got := min(want, remaining)
		remaining -= got
		return got
	}

	// Shore up weaknesses in a fixed priority order.
	if b.Technology < 2 {
		spend.Technology = take(3)
	}
	if b.Military < 3 {
		spend.Military = take(2)
	}
	if b.EffectiveDrag() > 2 {
		spend.Infrastructure = take(3)
	}
	if b.Culture < 3 {
		spend.Culture = take(2)
	}
	if b.Diplomacy < 4 {
		spend.Diplomacy = take(2)
	}
	// Anything left goes to the military by default.
	spend.Military += take(remaining)

	card := game.Catalog[a.rng.Intn(len(game.Catalog))].Type

	return game.Order{Bloc: bloc, Spend: spend, Card: card}
}
