package game

import "fmt"

// CardType identifies a policy card in the fixed catalog.
type CardType int

const (
	NoCard CardType = iota // pass orders carry no card
	CyberEspionage
	TariffHike
	ProxyArms
	StandardsPush
	Disinformation
	CounterIntel
	TradeDeal
	AidReconstruction
	LobbyingBlitz
	ContentModeration
)

// Card is an immutable catalog entry. CounteredBy is the one card that
// nullifies this card's effect when both are played against each other. The
// relation is directed: A countered by B does not make B countered by A.
type Card struct {
	Type        CardType
	Name        string
	Aggressive  bool
	Description string
	CounteredBy CardType
}

// Catalog is the full policy card registry. Aggressive cards are each
// countered by their defensive partner; defensive cards are in turn
// vulnerable to a different aggressive card, so the counter graph is a
// directed cycle rather than a set of mutual pairs.
var Catalog = []Card{
	{CyberEspionage, "CYBER_ESPIONAGE", true, "Steal tech progress from opponent", CounterIntel},
	{TariffHike, "TARIFF_HIKE", true, "Reduce opponent GDP generation", TradeDeal},
	{ProxyArms, "PROXY_ARMS", true, "Boost military posture and contest opponent regions", AidReconstruction},
	{StandardsPush, "STANDARDS_PUSH", true, "Increase regulatory drag on opponents", LobbyingBlitz},
	{Disinformation, "DISINFORMATION", true, "Reduce opponent cohesion and trust", ContentModeration},
	{CounterIntel, "COUNTER_INTEL", false, "Boost diplomacy and reduce drag", Disinformation},
	{TradeDeal, "TRADE_DEAL", false, "Boost GDP generation and cultural influence", StandardsPush},
	{AidReconstruction, "AID_RECONSTRUCTION", false, "Build influence in neutral regions and cohesion", TariffHike},
	{LobbyingBlitz, "LOBBYING_BLITZ", false, "Reduce regulatory drag and boost cultural influence", CyberEspionage},
	{ContentModeration, "CONTENT_MODERATION", false, "Boost cohesion and cultural influence", ProxyArms},
}

var cardIndex = func() map[CardType]Card {
	index := make(map[CardType]Card, len(Catalog))
	for _, card := range Catalog {
		index[card.Type] = card
	}
	return index
}()

// CardInCatalog reports whether the id refers to a playable card.
func CardInCatalog(t CardType) bool {
	_, ok := cardIndex[t]
	return ok
}

// LookupCard returns the catalog entry for a card id.
func LookupCard(t CardType) (Card, error) {
	card, ok := cardIndex[t]
	if !ok {
		return Card{}, fmt.Errorf("card %d: %w", t, ErrUnknownCatalogReference)
	}
	return card, nil
}

// ParseCard resolves a catalog card by its wire name.
func ParseCard(name string) (CardType, error) {
	for _, card := range Catalog {
		if card.Name == name {
			return card.Type, nil
		}
	}
	return NoCard, fmt.Errorf("card %q: %w", name, ErrUnknownCatalogReference)
}

func (t CardType) String() string {
	if card, ok := cardIndex[t]; ok {
		return card.Name
	}
	return "NONE"
}

// ValidateCatalogs checks the card and event registries once at startup.
// Every counter reference must resolve, and both event decks must be
// non-empty so draws can never dereference a missing entry.
func ValidateCatalogs() error {
	for _, card := range Catalog {
		if card.CounteredBy == NoCard || !CardInCatalog(card.CounteredBy) {
			return fmt.Errorf("card %s counter %d: %w", card.Name, card.CounteredBy, ErrUnknownCatalogReference)
		}
		if card.Name == "" {
			return fmt.Errorf("card %d has no name: %w", card.Type, ErrUnknownCatalogReference)
		}
	}
	if len(RegionalDeck) == 0 || len(GlobalDeck) == 0 {
		return fmt.Errorf("empty event deck: %w", ErrUnknownCatalogReference)
	}
	for _, ev := range append(append([]Event{}, RegionalDeck...), GlobalDeck...) {
		if ev.Apply == nil {
			return fmt.Errorf("event %q has no effect: %w", ev.Name, ErrUnknownCatalogReference)
		}
	}
	return nil
}
