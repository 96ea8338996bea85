package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyIsIsolated(t *testing.T) {
	w := NewWorldState(StandardTunables(), 1)
	w.Orders["USA"] = &Order{Bloc: "USA", Card: TradeDeal}
	w.Logf("turn opens")

	c := w.Copy()
	c.Bloc("USA").GDP = 99
	c.Regions[0].Owner = "China"
	c.Orders["USA"].Card = TariffHike
	c.Log[0] = "tampered"
	c.Bloc("EU").Alliances["China"] = true

	require.Equal(t, 10, w.Bloc("USA").GDP)
	require.Equal(t, "", w.Regions[0].Owner)
	require.Equal(t, TradeDeal, w.Orders["USA"].Card)
	require.Equal(t, "turn opens", w.Log[0])
	require.Empty(t, w.Bloc("EU").Alliances)
	require.Nil(t, c.RNG(), "snapshots carry no generator")
}

func TestHashIsStableAndSensitive(t *testing.T) {
	a := NewWorldState(StandardTunables(), 1)
	b := NewWorldState(StandardTunables(), 1)
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, a.Hash(), a.Copy().Hash(), "copies hash like the original")

	b.Bloc("China").Military++
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestSetAlliance(t *testing.T) {
	w := NewWorldState(StandardTunables(), 1)

	require.NoError(t, w.SetAlliance("USA", "EU"))
	require.True(t, w.Bloc("USA").Alliances["EU"])
	require.True(t, w.Bloc("EU").Alliances["USA"])
	require.Equal(t, 1, w.Bloc("USA").Culture)
	require.Equal(t, 1, w.Bloc("EU").Culture)

	// Re-forming the same edge changes nothing.
	require.NoError(t, w.SetAlliance("EU", "USA"))
	require.Equal(t, 1, w.Bloc("USA").Culture)

	require.ErrorIs(t, w.SetAlliance("USA", "USA"), ErrInvalidOrder)
	require.ErrorIs(t, w.SetAlliance("USA", "Mars"), ErrInvalidOrder)
}

func TestBreakAlliance(t *testing.T) {
	w := NewWorldState(StandardTunables(), 1)
	require.NoError(t, w.SetAlliance("USA", "EU"))

	require.NoError(t, w.BreakAlliance("USA", "EU"))
	require.Empty(t, w.Bloc("USA").Alliances)
	require.Empty(t, w.Bloc("EU").Alliances)
	require.Equal(t, 3, w.Bloc("USA").Cohesion, "breaker pays two")
	require.Equal(t, 4, w.Bloc("EU").Cohesion)

	require.ErrorIs(t, w.BreakAlliance("USA", "EU"), ErrInvalidOrder)
}

func TestValidateOrder(t *testing.T) {
	w := NewWorldState(StandardTunables(), 1)

	cases := []struct {
		name  string
		order Order
		ok    bool
	}{
		{"valid", Order{Bloc: "USA", Spend: Allocation{Technology: 3}, Card: TradeDeal}, true},
		{"valid pass", PassOrder("EU"), true},
		{"unknown bloc", Order{Bloc: "Mars", Card: TradeDeal}, false},
		{"negative spend", Order{Bloc: "USA", Spend: Allocation{Military: -1}, Card: TradeDeal}, false},
		{"over budget", Order{Bloc: "EU", Spend: Allocation{Culture: 9}, Card: TradeDeal}, false},
		{"card not in catalog", Order{Bloc: "USA", Card: CardType(99)}, false},
		{"no card", Order{Bloc: "USA"}, false},
		{"pass with card", Order{Bloc: "USA", Card: TradeDeal, Pass: true}, false},
		{"pass with spend", Order{Bloc: "USA", Spend: Allocation{Military: 1}, Pass: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := w.ValidateOrder(tc.order)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidOrder)
			}
		})
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	for _, card := range Catalog {
		got, err := ParseCard(card.Name)
		require.NoError(t, err)
		require.Equal(t, card.Type, got)
	}
	_, err := ParseCard("MOON_LANDING")
	require.ErrorIs(t, err, ErrUnknownCatalogReference)
}
