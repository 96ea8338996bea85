package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreWeights(t *testing.T) {
	regions := CreateRegions()

	b := NewBloc("USA", 10) // cohesion 5, owns 2 regions
	require.Equal(t, 21, Score(b, regions), "10 GDP + 5 cohesion + 2 regions * 3")

	b.Military = 2
	b.Culture = 3
	require.Equal(t, 28, Score(b, regions), "+4 military, +3 culture")

	b.Technology = 3
	require.Equal(t, 33, Score(b, regions), "tech tier 3 is worth 5")

	b.Alliances["EU"] = true
	require.Equal(t, 35, Score(b, regions))

	b.RegulatoryDrag = 4
	b.Diplomacy = 1
	require.Equal(t, 32, Score(b, regions), "only the uncovered drag counts")
}

func TestScoreFloorsAtZero(t *testing.T) {
	b := NewBloc("EU", 0)
	b.Cohesion = 0
	b.RegulatoryDrag = MaxDrag
	require.Equal(t, 0, Score(b, nil))
}

func TestTechBonusLadder(t *testing.T) {
	b := NewBloc("China", 0)
	for tier, want := range map[int]int{0: 0, 1: 1, 2: 2, 3: 5, 4: 5} {
		b.Technology = tier
		require.Equal(t, want, b.TechBonus(), "tier %d", tier)
	}
}

func TestRecomputeScores(t *testing.T) {
	w := NewWorldState(StandardTunables(), 1)

	RecomputeScores(w)

	require.Equal(t, 21, w.Bloc("USA").VictoryPoints)
	require.Equal(t, 19, w.Bloc("EU").VictoryPoints)
	require.Equal(t, 23, w.Bloc("China").VictoryPoints)
}
