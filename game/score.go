package game

// Score tallies a bloc's victory points from its current attributes: GDP
// balance, tech ladder bonus, military and cultural standing, cohesion,
// controlled regions, and the alliance network, minus effective regulatory
// drag. Pure function of the inputs; it never reads turn history.
func Score(b *Bloc, regions []*Region) int {
	vp := b.GDP
	vp += b.TechBonus()
	vp += b.Military * 2
	vp += b.Culture
	vp += b.Cohesion
	vp += RegionsOwnedBy(regions, b.Name) * 3
	vp += len(b.Alliances) * 2
	vp -= b.EffectiveDrag()
	return max(vp, 0)
}

// RecomputeScores refreshes every bloc's derived victory points. Called
// after every phase that can change attributes.
func RecomputeScores(w *WorldState) {
	for _, b := range w.Blocs {
		b.VictoryPoints = Score(b, w.Regions)
	}
}
