package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/rand"
)

type Phase int

const (
	BackChannelPhase Phase = iota
	PolicyDraftPhase
	ResolutionPhase
	HeadlineNewsPhase
	TerminalPhase
)

func (p Phase) String() string {
	switch p {
	case BackChannelPhase:
		return "BACK_CHANNEL"
	case PolicyDraftPhase:
		return "POLICY_DRAFT"
	case ResolutionPhase:
		return "RESOLUTION"
	case HeadlineNewsPhase:
		return "HEADLINE_NEWS"
	case TerminalPhase:
		return "TERMINAL"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// WorldState is the single aggregate passed between phases: blocs, regions,
// pending orders, the turn log, and the one seedable generator that every
// random draw goes through. Bloc list order is also the fixed tie-break
// priority order.
type WorldState struct {
	Turn     int
	Phase    Phase
	Blocs    []*Bloc
	Regions  []*Region
	Orders   map[string]*Order
	Log      []string
	Tunables Tunables

	rng *rand.Rand
}

// NewWorldState sets up the three-bloc board for turn one. A fixed seed
// reproduces an identical sequence of event outcomes across an entire game.
func NewWorldState(tunables Tunables, seed uint64) *WorldState {
	return &WorldState{
		Turn:  1,
		Phase: BackChannelPhase,
		Blocs: []*Bloc{
			NewBloc("USA", 10),
			NewBloc("EU", 8),
			NewBloc("China", 12),
		},
		Regions:  CreateRegions(),
		Orders:   make(map[string]*Order),
		Tunables: tunables,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Bloc returns the named bloc, or nil.
func (w *WorldState) Bloc(name string) *Bloc {
	for _, b := range w.Blocs {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// RNG exposes the world generator to effect functions. Copies do not carry
// the generator; only the live world may draw.
func (w *WorldState) RNG() *rand.Rand {
	return w.rng
}

// Logf appends a human-readable resolution message to the turn log.
func (w *WorldState) Logf(format string, args ...any) {
	w.Log = append(w.Log, fmt.Sprintf(format, args...))
}

// ClearLog drops the turn log at the turn boundary.
func (w *WorldState) ClearLog() {
	w.Log = nil
}

// Copy deep-copies everything a reader can reach. The copy shares nothing
// with the live world except the immutable tunables, and carries no
// generator: snapshots are read-only.
func (w *WorldState) Copy() *WorldState {
	blocs := make([]*Bloc, len(w.Blocs))
	for i, b := range w.Blocs {
		blocs[i] = b.copy()
	}
	regions := make([]*Region, len(w.Regions))
	for i, r := range w.Regions {
		c := *r
		regions[i] = &c
	}
	orders := make(map[string]*Order, len(w.Orders))
	for name, o := range w.Orders {
		c := *o
		orders[name] = &c
	}
	logCopy := make([]string, len(w.Log))
	copy(logCopy, w.Log)

	return &WorldState{
		Turn:     w.Turn,
		Phase:    w.Phase,
		Blocs:    blocs,
		Regions:  regions,
		Orders:   orders,
		Log:      logCopy,
		Tunables: w.Tunables,
	}
}

// Hash folds the replay-relevant state into an FNV-64a digest. Two runs with
// the same seed and the same orders must produce identical hashes at every
// phase boundary.
func (w *WorldState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(w.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(w.Phase))

	for _, b := range w.Blocs {
		hasher.Write([]byte(b.Name))
		for _, v := range []int{
			b.GDP, b.Military, b.Technology, b.Culture, b.Infrastructure,
			b.Diplomacy, b.Cohesion, b.Development, b.RegulatoryDrag,
			b.VictoryPoints,
		} {
			binary.Write(hasher, binary.LittleEndian, int64(v))
		}
		for _, ally := range b.AllianceNames() {
			hasher.Write([]byte(ally))
		}
	}

	for _, r := range w.Regions {
		hasher.Write([]byte(r.Name))
		hasher.Write([]byte(r.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(r.Influence))
	}

	for _, line := range w.Log {
		hasher.Write([]byte(line))
	}

	return StateHash(hasher.Sum64())
}

// SetAlliance creates a mutual alliance edge and gives both sides a soft
// power bump. Forming an edge that already exists is a no-op.
func (w *WorldState) SetAlliance(a, b string) error {
	if a == b {
		return fmt.Errorf("bloc %s cannot ally itself: %w", a, ErrInvalidOrder)
	}
	ba, bb := w.Bloc(a), w.Bloc(b)
	if ba == nil || bb == nil {
		return fmt.Errorf("alliance %s-%s: %w", a, b, ErrInvalidOrder)
	}
	if ba.Alliances[b] {
		return nil
	}
	ba.Alliances[b] = true
	bb.Alliances[a] = true
	ba.Culture++
	bb.Culture++
	w.Logf("Alliance formed: %s and %s (+1 Culture each)", a, b)
	return nil
}

// BreakAlliance removes a mutual edge. The breaker pays the larger cohesion
// penalty for the betrayal.
func (w *WorldState) BreakAlliance(breaker, other string) error {
	ba, bb := w.Bloc(breaker), w.Bloc(other)
	if ba == nil || bb == nil || !ba.Alliances[other] {
		return fmt.Errorf("no alliance %s-%s: %w", breaker, other, ErrInvalidOrder)
	}
	delete(ba.Alliances, other)
	delete(bb.Alliances, breaker)
	ba.Cohesion = clamp(ba.Cohesion-2, 0, MaxCohesion)
	bb.Cohesion = clamp(bb.Cohesion-1, 0, MaxCohesion)
	w.Logf("Alliance broken: %s drops %s (%s -2 Cohesion, %s -1 Cohesion)", breaker, other, breaker, other)
	return nil
}
