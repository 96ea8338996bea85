package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"conviction/config"
	"conviction/game"
)

// LocalEngine is the in-process turn state machine. A single mutex
// serializes every world mutation: order intake is atomic with respect to
// other submissions, and each phase is applied as one unit, so snapshot
// readers only ever see whole phases.
type LocalEngine struct {
	cfg config.Config

	mu    sync.Mutex
	world *game.WorldState
	allIn chan struct{} // signalled when the last pending order lands

	onPhaseChange func(turn int, phase game.Phase)
	onTurnEnd     func(turn int, snapshot *game.WorldState)
	onGameEnd     func(Result)
}

// NewLocalEngine validates the catalogs once and sets up turn one.
func NewLocalEngine(cfg config.Config) (*LocalEngine, error) {
	if err := game.ValidateCatalogs(); err != nil {
		return nil, err
	}
	return &LocalEngine{
		cfg:   cfg,
		world: game.NewWorldState(cfg.Tunables, cfg.Seed),
	}, nil
}

// OnPhaseChange registers a hook fired synchronously after every phase
// transition. Register hooks before calling Run.
func (e *LocalEngine) OnPhaseChange(fn func(turn int, phase game.Phase)) {
	e.onPhaseChange = fn
}

// OnTurnEnd registers a hook fired with a snapshot of the completed turn.
func (e *LocalEngine) OnTurnEnd(fn func(turn int, snapshot *game.WorldState)) {
	e.onTurnEnd = fn
}

// OnGameEnd registers a hook fired once with the final result.
func (e *LocalEngine) OnGameEnd(fn func(Result)) {
	e.onGameEnd = fn
}

// Run drives the phase loop until a terminal condition. Cancellation is
// honored between phases only; a half-applied phase is never observable.
func (e *LocalEngine) Run(ctx context.Context) (Result, error) {
	log.Info().Uint64("seed", e.cfg.Seed).Int("turnLimit", e.cfg.TurnLimit).
		Int("threshold", e.cfg.VictoryThreshold).Msg("game starting")

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		e.setPhase(game.BackChannelPhase)

		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		e.openPolicyDraft()
		if err := e.awaitOrders(ctx); err != nil {
			return Result{}, err
		}

		e.setPhase(game.ResolutionPhase)
		e.resolve()

		e.setPhase(game.HeadlineNewsPhase)
		e.applyHeadlines()

		e.fireTurnEnd()

		if result, over := e.checkTerminal(); over {
			e.setPhase(game.TerminalPhase)
			log.Info().Str("winner", result.Winner).Int("turns", result.Turns).Msg("game over")
			if e.onGameEnd != nil {
				e.onGameEnd(result)
			}
			return result, nil
		}

		e.advanceTurn()
	}
}

// SubmitOrder validates and records one bloc's order. Last write wins until
// the draft closes.
func (e *LocalEngine) SubmitOrder(o game.Order) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.world.Phase != game.PolicyDraftPhase {
		return fmt.Errorf("order during %s: %w", e.world.Phase, game.ErrPhaseViolation)
	}
	if err := e.world.ValidateOrder(o); err != nil {
		log.Warn().Str("bloc", o.Bloc).Err(err).Msg("order rejected")
		return err
	}

	order := o
	e.world.Orders[o.Bloc] = &order
	log.Info().Str("bloc", o.Bloc).Str("card", o.Card.String()).
		Int("spend", o.Spend.Total()).Msg("order accepted")

	if e.allOrdersIn() {
		select {
		case e.allIn <- struct{}{}:
		default:
		}
	}
	return nil
}

// Snapshot returns a deep copy of the world. Callable at any time.
func (e *LocalEngine) Snapshot() *game.WorldState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world.Copy()
}

// SetAlliance forms a mutual alliance. Diplomacy is only open during the
// back channel and the policy draft.
func (e *LocalEngine) SetAlliance(a, b string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.diplomacyOpen(); err != nil {
		return err
	}
	return e.world.SetAlliance(a, b)
}

// BreakAlliance drops a mutual alliance, charging the breaker the larger
// cohesion penalty.
func (e *LocalEngine) BreakAlliance(breaker, other string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.diplomacyOpen(); err != nil {
		return err
	}
	return e.world.BreakAlliance(breaker, other)
}

func (e *LocalEngine) diplomacyOpen() error {
	switch e.world.Phase {
	case game.BackChannelPhase, game.PolicyDraftPhase:
		return nil
	default:
		return fmt.Errorf("diplomacy during %s: %w", e.world.Phase, game.ErrPhaseViolation)
	}
}

func (e *LocalEngine) setPhase(p game.Phase) {
	e.mu.Lock()
	e.world.Phase = p
	turn := e.world.Turn
	e.mu.Unlock()

	log.Info().Int("turn", turn).Stringer("phase", p).Msg("phase change")
	if e.onPhaseChange != nil {
		e.onPhaseChange(turn, p)
	}
}

// openPolicyDraft credits income before any order is accepted, then opens
// the draft window.
func (e *LocalEngine) openPolicyDraft() {
	e.mu.Lock()
	e.world.Phase = game.PolicyDraftPhase
	game.CreditIncome(e.world)
	e.allIn = make(chan struct{}, 1)
	turn := e.world.Turn
	e.mu.Unlock()

	log.Info().Int("turn", turn).Stringer("phase", game.PolicyDraftPhase).Msg("phase change")
	if e.onPhaseChange != nil {
		e.onPhaseChange(turn, game.PolicyDraftPhase)
	}
}

// awaitOrders suspends until every bloc has submitted or the timeout
// elapses, then substitutes pass orders for anyone missing.
func (e *LocalEngine) awaitOrders(ctx context.Context) error {
	e.mu.Lock()
	done := e.allOrdersIn()
	signal := e.allIn
	e.mu.Unlock()

	if !done {
		timer := time.NewTimer(e.cfg.OrderTimeout())
		defer timer.Stop()
		select {
		case <-signal:
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, b := range e.world.Blocs {
		if _, ok := e.world.Orders[b.Name]; !ok {
			o := game.PassOrder(b.Name)
			e.world.Orders[b.Name] = &o
			e.world.Logf("%s: no order received, passing", b.Name)
			log.Warn().Str("bloc", b.Name).Msg("order timeout, substituting pass")
		}
	}
	return nil
}

func (e *LocalEngine) allOrdersIn() bool {
	return len(e.world.Orders) == len(e.world.Blocs)
}

// resolve applies the whole resolution phase as one unit: budget spend for
// every bloc in list order, then the pairwise card resolution, then a score
// recompute so card outcomes saw post-spend attributes.
func (e *LocalEngine) resolve() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, b := range e.world.Blocs {
		o := e.world.Orders[b.Name]
		if o == nil || o.Pass {
			continue
		}
		if err := game.ApplySpend(b, o.Spend, e.world.Tunables); err != nil {
			// Orders are validated against GDP at submission and income is
			// credited before the draft opens, so this cannot trigger.
			e.world.Logf("%s: spend rejected: %v", b.Name, err)
		}
	}

	game.ResolveCards(e.world)
	game.RecomputeScores(e.world)
}

func (e *LocalEngine) applyHeadlines() {
	e.mu.Lock()
	defer e.mu.Unlock()
	game.ApplyEvents(e.world)
	game.RecomputeScores(e.world)
}

func (e *LocalEngine) fireTurnEnd() {
	e.mu.Lock()
	turn := e.world.Turn
	snapshot := e.world.Copy()
	e.mu.Unlock()

	if e.onTurnEnd != nil {
		e.onTurnEnd(turn, snapshot)
	}
}

// checkTerminal runs only at the end of HEADLINE_NEWS: threshold crossing or
// turn limit. Winner is the highest score, ties broken by bloc list order.
func (e *LocalEngine) checkTerminal() (Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	over := e.world.Turn >= e.cfg.TurnLimit
	points := make(map[string]int, len(e.world.Blocs))
	for _, b := range e.world.Blocs {
		points[b.Name] = b.VictoryPoints
		if b.VictoryPoints >= e.cfg.VictoryThreshold {
			over = true
		}
	}
	if !over {
		return Result{}, false
	}

	winner := e.world.Blocs[0].Name
	for _, b := range e.world.Blocs[1:] {
		if b.VictoryPoints > points[winner] {
			winner = b.Name
		}
	}
	return Result{Winner: winner, Turns: e.world.Turn, VictoryPoints: points}, true
}

func (e *LocalEngine) advanceTurn() {
	e.mu.Lock()
	e.world.Turn++
	e.world.Orders = make(map[string]*game.Order)
	e.world.ClearLog()
	e.mu.Unlock()
}
