package game

// Pairwise card resolution. Every effect reads the pre-resolution snapshot
// and writes into a delta buffer; the buffer is applied once, so resolution
// order among pairs cannot change the outcome.

type blocDelta struct {
	gdp        int
	military   int
	technology int
	culture    int
	diplomacy  int
	cohesion   int
	drag       int
}

type deltas struct {
	blocs   map[string]*blocDelta
	regions map[string]map[string]int // region -> bloc -> support shift
	log     []string
}

func newDeltas() *deltas {
	return &deltas{
		blocs:   make(map[string]*blocDelta),
		regions: make(map[string]map[string]int),
	}
}

func (d *deltas) bloc(name string) *blocDelta {
	bd, ok := d.blocs[name]
	if !ok {
		bd = &blocDelta{}
		d.blocs[name] = bd
	}
	return bd
}

func (d *deltas) support(region, bloc string, step int) {
	sup, ok := d.regions[region]
	if !ok {
		sup = make(map[string]int)
		d.regions[region] = sup
	}
	sup[bloc] += step
}

// ResolveCards evaluates every unordered pair of blocs in both directions.
// A card whose designated counter was played by the opponent is attenuated
// to zero for that pairing only; otherwise it applies at full strength.
// Pairs where either side passed are skipped, as are self-pairs.
func ResolveCards(w *WorldState) {
	snap := w.Copy()
	d := newDeltas()

	for i := 0; i < len(snap.Blocs); i++ {
		for j := i + 1; j < len(snap.Blocs); j++ {
			x, y := snap.Blocs[i], snap.Blocs[j]
			ox, oy := snap.Orders[x.Name], snap.Orders[y.Name]
			if ox == nil || oy == nil || ox.Pass || oy.Pass {
				continue
			}
			cx, cy := cardIndex[ox.Card], cardIndex[oy.Card]

			if cx.CounteredBy == cy.Type {
				d.log = append(d.log, w.sprintCounter(y.Name, cy, x.Name, cx))
			} else {
				applyCardEffect(d, snap, x, y, cx)
			}
			if cy.CounteredBy == cx.Type {
				d.log = append(d.log, w.sprintCounter(x.Name, cx, y.Name, cy))
			} else {
				applyCardEffect(d, snap, y, x, cy)
			}
		}
	}

	d.commit(w)
}

func (w *WorldState) sprintCounter(winner string, winning Card, loser string, losing Card) string {
	return winner + "'s " + winning.Name + " counters " + loser + "'s " + losing.Name
}

// applyCardEffect records the card's full-strength effect of actor against
// target. All reads come from the snapshot, never from accumulated deltas.
func applyCardEffect(d *deltas, snap *WorldState, actor, target *Bloc, card Card) {
	switch card.Type {
	case CyberEspionage:
		if target.Technology > actor.Technology {
			d.bloc(actor.Name).technology++
			d.bloc(target.Name).technology--
			d.log = append(d.log, actor.Name+": cyber espionage steals a tech level from "+target.Name)
		}
	case TariffHike:
		reduction := min(3, target.GDP)
		if reduction > 0 {
			d.bloc(target.Name).gdp -= reduction
			d.log = append(d.log, target.Name+": tariff damage from "+actor.Name)
		}
	case ProxyArms:
		d.bloc(actor.Name).military++
		if r := firstRegionOwnedBy(snap.Regions, target.Name); r != nil {
			d.support(r.Name, actor.Name, 1)
			d.log = append(d.log, actor.Name+": proxy arms contest "+r.Name)
		}
	case StandardsPush:
		d.bloc(target.Name).drag += 2
		d.log = append(d.log, target.Name+": standards pressure raises regulatory drag")
	case Disinformation:
		d.bloc(target.Name).cohesion--
		d.bloc(target.Name).diplomacy--
		d.log = append(d.log, target.Name+": disinformation campaign lands")
	case CounterIntel:
		d.bloc(actor.Name).diplomacy++
		d.bloc(actor.Name).drag--
		d.log = append(d.log, actor.Name+": counter-intel sweep succeeds")
	case TradeDeal:
		d.bloc(actor.Name).gdp += 2
		d.bloc(actor.Name).culture++
		d.log = append(d.log, actor.Name+": trade deal pays off")
	case AidReconstruction:
		d.bloc(actor.Name).cohesion++
		if r := firstNeutralRegion(snap.Regions); r != nil {
			d.support(r.Name, actor.Name, 1)
			d.log = append(d.log, actor.Name+": aid programs build influence in "+r.Name)
		}
	case LobbyingBlitz:
		d.bloc(actor.Name).drag--
		d.bloc(actor.Name).culture++
		d.log = append(d.log, actor.Name+": lobbying blitz succeeds")
	case ContentModeration:
		d.bloc(actor.Name).cohesion++
		d.bloc(actor.Name).culture++
		d.log = append(d.log, actor.Name+": content moderation strengthens the home front")
	}
}

// Region targeting is deterministic by board order so replays never drift.
func firstRegionOwnedBy(regions []*Region, bloc string) *Region {
	for _, r := range regions {
		if r.Owner == bloc {
			return r
		}
	}
	return nil
}

func firstNeutralRegion(regions []*Region) *Region {
	for _, r := range regions {
		if r.Neutral() {
			return r
		}
	}
	return nil
}

// commit applies the accumulated deltas to the live world as one unit,
// clamping at the end so partial sums are never observable.
func (d *deltas) commit(w *WorldState) {
	for _, b := range w.Blocs {
		bd, ok := d.blocs[b.Name]
		if !ok {
			continue
		}
		b.GDP = max(b.GDP+bd.gdp, 0)
		b.Military = max(b.Military+bd.military, 0)
		b.Technology = max(b.Technology+bd.technology, 0)
		b.Culture = max(b.Culture+bd.culture, 0)
		b.Diplomacy = max(b.Diplomacy+bd.diplomacy, 0)
		b.Cohesion = clamp(b.Cohesion+bd.cohesion, 0, MaxCohesion)
		b.RegulatoryDrag = clamp(b.RegulatoryDrag+bd.drag, 0, MaxDrag)
	}

	for _, r := range w.Regions {
		sup, ok := d.regions[r.Name]
		if !ok {
			continue
		}
		d.shiftRegion(w, r, sup)
	}

	w.Log = append(w.Log, d.log...)
}

// shiftRegion folds the net support into the region's control level. An
// owned region whose grip is pushed to zero slips to neutral; a neutral
// region falls to the bloc with the strongest net support, ties broken by
// bloc priority order.
func (d *deltas) shiftRegion(w *WorldState, r *Region, sup map[string]int) {
	if !r.Neutral() {
		opposition := 0
		for name, v := range sup {
			if name != r.Owner {
				opposition += v
			}
		}
		net := r.Influence + sup[r.Owner] - opposition
		if net > 0 {
			r.Influence = min(net, MaxInfluence)
			return
		}
		r.Owner = ""
		r.Influence = 0
		w.Logf("%s slips out of bloc control", r.Name)
		return
	}

	total := 0
	for _, v := range sup {
		total += v
	}
	best, bestV := "", 0
	for _, b := range w.Blocs {
		if v := sup[b.Name]; v > bestV {
			best, bestV = b.Name, v
		}
	}
	if best == "" {
		return
	}
	net := bestV - (total - bestV)
	if net <= 0 {
		return
	}
	r.Owner = best
	r.Influence = min(net, MaxInfluence)
	w.Logf("%s falls under %s influence", r.Name, best)
}
