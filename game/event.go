package game

type EventScope int

const (
	RegionalEvent EventScope = iota // targets one bloc
	GlobalEvent                     // targets all blocs
)

// Event is an immutable catalog entry: a named effect function over a target
// bloc and the world. Events carry no state of their own; anything random
// inside an effect draws from the world generator.
type Event struct {
	Name        string
	Description string
	Scope       EventScope
	Apply       func(b *Bloc, w *WorldState)
}

// ApplyEvents runs the headline news draws. Each bloc independently rolls
// for a regional event; a separate independent roll decides whether a global
// event hits every bloc. All draws come from the world generator in bloc
// list order, so a fixed seed replays identically.
func ApplyEvents(w *WorldState) {
	t := w.Tunables
	for _, b := range w.Blocs {
		if w.rng.Float64() < t.RegionalEventChance {
			ev := RegionalDeck[w.rng.Intn(len(RegionalDeck))]
			w.Logf("%s: event - %s", b.Name, ev.Name)
			ev.Apply(b, w)
		} else {
			w.Logf("%s: quiet turn, no major events", b.Name)
		}
	}

	if w.rng.Float64() < t.GlobalEventChance {
		ev := GlobalDeck[w.rng.Intn(len(GlobalDeck))]
		w.Logf("GLOBAL EVENT: %s", ev.Name)
		// Global effects touch only their target bloc, so applying in list
		// order preserves the pre-event snapshot semantics.
		for _, b := range w.Blocs {
			ev.Apply(b, w)
		}
	}
}

// RegionalDeck is drawn per bloc with replacement; there is no deck
// exhaustion to track.
var RegionalDeck = []Event{
	{
		Name:        "Pandemic Resurgence",
		Description: "Health crisis disrupts technology and social cohesion",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			if b.Technology > 0 {
				b.Technology--
				b.Cohesion = clamp(b.Cohesion-1, 0, MaxCohesion)
				w.Logf("%s: pandemic resurgence - tech -1, cohesion -1", b.Name)
			} else {
				b.GDP = max(b.GDP-2, 0)
				w.Logf("%s: pandemic economic impact - GDP -2", b.Name)
			}
		},
	},
	{
		Name:        "Cyber Security Breakthrough",
		Description: "Major advancement in cybersecurity capabilities",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Technology++
			b.Diplomacy++
			w.Logf("%s: cyber breakthrough - tech +1, diplomacy +1", b.Name)
		},
	},
	{
		Name:        "Trade War Escalation",
		Description: "International trade tensions increase regulatory burden",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.RegulatoryDrag = clamp(b.RegulatoryDrag+2, 0, MaxDrag)
			b.GDP = max(b.GDP-1, 0)
			w.Logf("%s: trade war impact - drag +2, GDP -1", b.Name)
		},
	},
	{
		Name:        "Cultural Renaissance",
		Description: "Cultural movement enhances soft power and unity",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Culture += 2
			b.Cohesion = clamp(b.Cohesion+1, 0, MaxCohesion)
			w.Logf("%s: cultural renaissance - culture +2, cohesion +1", b.Name)
		},
	},
	{
		Name:        "Economic Summit Success",
		Description: "International cooperation reduces friction and boosts economy",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.RegulatoryDrag = max(b.RegulatoryDrag-1, 0)
			b.Diplomacy++
			b.GDP += 3
			w.Logf("%s: economic summit success - drag -1, diplomacy +1, GDP +3", b.Name)
		},
	},
	{
		Name:        "Infrastructure Crisis",
		Description: "Critical infrastructure failure impacts development",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Development = max(b.Development-1, 1)
			b.Military = max(b.Military-1, 0)
			w.Logf("%s: infrastructure crisis - development -1, military -1", b.Name)
		},
	},
	{
		Name:        "Diplomatic Scandal",
		Description: "Major diplomatic incident damages international trust",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Diplomacy = max(b.Diplomacy-2, 0)
			b.Culture = max(b.Culture-1, 0)
			if allies := b.AllianceNames(); len(allies) > 0 {
				ally := allies[w.rng.Intn(len(allies))]
				w.BreakAlliance(b.Name, ally)
			}
			w.Logf("%s: diplomatic scandal - diplomacy -2, culture -1", b.Name)
		},
	},
	{
		Name:        "Technological Espionage",
		Description: "Espionage activities discovered, mixed consequences",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Diplomacy = max(b.Diplomacy-1, 0)
			b.RegulatoryDrag = clamp(b.RegulatoryDrag+1, 0, MaxDrag)
			b.Technology++
			w.Logf("%s: tech espionage exposed - diplomacy -1, drag +1, tech +1", b.Name)
		},
	},
	{
		Name:        "Climate Cooperation",
		Description: "Climate accords boost international standing",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Culture++
			b.Diplomacy++
			b.Development++
			w.Logf("%s: climate cooperation - culture +1, diplomacy +1, development +1", b.Name)
		},
	},
	{
		Name:        "Financial Market Volatility",
		Description: "Market turbulence with unpredictable effects",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			if b.GDP > 5 {
				b.GDP = max(b.GDP-3, 0)
				w.Logf("%s: market volatility - GDP -3", b.Name)
			} else {
				b.GDP += 2
				w.Logf("%s: market correction - GDP +2", b.Name)
			}
		},
	},
	{
		Name:        "Social Media Influence",
		Description: "Social media campaign with uncertain outcomes",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			if w.rng.Float64() < 0.5 {
				b.Culture++
				b.Cohesion = clamp(b.Cohesion+1, 0, MaxCohesion)
				w.Logf("%s: viral social campaign - culture +1, cohesion +1", b.Name)
			} else {
				b.Cohesion = clamp(b.Cohesion-1, 0, MaxCohesion)
				b.Diplomacy = max(b.Diplomacy-1, 0)
				w.Logf("%s: social media backlash - cohesion -1, diplomacy -1", b.Name)
			}
		},
	},
	{
		Name:        "Military Modernization",
		Description: "Military technology advancement program",
		Scope:       RegionalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Military++
			b.Technology++
			b.GDP = max(b.GDP-2, 0)
			w.Logf("%s: military modernization - military +1, tech +1, GDP -2", b.Name)
		},
	},
}

// GlobalDeck events hit every bloc in the same turn.
var GlobalDeck = []Event{
	{
		Name:        "Global Economic Boom",
		Description: "Worldwide economic growth benefits all blocs",
		Scope:       GlobalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.GDP += 2
			b.Diplomacy++
			w.Logf("%s: global boom - GDP +2, diplomacy +1", b.Name)
		},
	},
	{
		Name:        "Global Recession",
		Description: "Economic downturn affects all blocs negatively",
		Scope:       GlobalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.GDP = max(b.GDP-2, 0)
			b.RegulatoryDrag = clamp(b.RegulatoryDrag+1, 0, MaxDrag)
			w.Logf("%s: global recession - GDP -2, drag +1", b.Name)
		},
	},
	{
		Name:        "Global AI Breakthrough",
		Description: "Major AI advancement disrupts all blocs",
		Scope:       GlobalEvent,
		Apply: func(b *Bloc, w *WorldState) {
			b.Technology++
			b.RegulatoryDrag = clamp(b.RegulatoryDrag+1, 0, MaxDrag)
			w.Logf("%s: AI breakthrough - tech +1, drag +1", b.Name)
		},
	},
}
