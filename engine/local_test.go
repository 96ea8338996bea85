package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"conviction/config"
	"conviction/game"
)

func newTestEngine(t *testing.T, cfg config.Config) *LocalEngine {
	t.Helper()
	e, err := NewLocalEngine(cfg)
	if err != nil {
		t.Fatalf("NewLocalEngine: %v", err)
	}
	return e
}

func TestSubmitOrderOutsideDraft(t *testing.T) {
	e := newTestEngine(t, config.Default())

	// The engine opens in BACK_CHANNEL; the draft is not accepting yet.
	err := e.SubmitOrder(game.Order{Bloc: "USA", Card: game.TradeDeal})
	if !errors.Is(err, game.ErrPhaseViolation) {
		t.Errorf("expected phase violation, got %v", err)
	}
}

func TestSubmitOrderValidation(t *testing.T) {
	e := newTestEngine(t, config.Default())
	e.world.Phase = game.PolicyDraftPhase
	e.allIn = make(chan struct{}, 1)
	before := e.world.Hash()

	err := e.SubmitOrder(game.Order{Bloc: "USA", Spend: game.Allocation{Military: 999}, Card: game.TradeDeal})
	if !errors.Is(err, game.ErrInvalidOrder) {
		t.Fatalf("expected invalid order, got %v", err)
	}
	if e.world.Hash() != before {
		t.Error("rejected order must not change the world")
	}

	if err := e.SubmitOrder(game.Order{Bloc: "USA", Card: game.TradeDeal}); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}
	// Resubmission before the draft closes replaces the prior order.
	if err := e.SubmitOrder(game.Order{Bloc: "USA", Card: game.TariffHike}); err != nil {
		t.Fatalf("resubmission rejected: %v", err)
	}
	if got := e.world.Orders["USA"].Card; got != game.TariffHike {
		t.Errorf("expected last write to win, got %v", got)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	e := newTestEngine(t, config.Default())

	snap := e.Snapshot()
	snap.Bloc("USA").GDP = 999

	if got := e.Snapshot().Bloc("USA").GDP; got == 999 {
		t.Error("snapshot mutation leaked into the engine")
	}
}

func TestTimeoutSubstitutesPassAndTurnLimitEnds(t *testing.T) {
	cfg := config.Default()
	cfg.TurnLimit = 2
	cfg.VictoryThreshold = 100000
	cfg.OrderTimeoutMs = 1
	e := newTestEngine(t, cfg)

	var phases []game.Phase
	var lastLog []string
	e.OnPhaseChange(func(turn int, p game.Phase) { phases = append(phases, p) })
	e.OnTurnEnd(func(turn int, snap *game.WorldState) { lastLog = snap.Log })

	result, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Turns != cfg.TurnLimit {
		t.Errorf("expected the turn limit to end the game, got %d turns", result.Turns)
	}
	if result.Winner == "" {
		t.Error("turn limit game still has a winner")
	}
	if len(result.VictoryPoints) != game.NumBlocs {
		t.Errorf("expected %d score entries, got %d", game.NumBlocs, len(result.VictoryPoints))
	}

	want := []game.Phase{
		game.BackChannelPhase, game.PolicyDraftPhase, game.ResolutionPhase, game.HeadlineNewsPhase,
		game.BackChannelPhase, game.PolicyDraftPhase, game.ResolutionPhase, game.HeadlineNewsPhase,
		game.TerminalPhase,
	}
	if len(phases) != len(want) {
		t.Fatalf("expected %d phase transitions, got %d: %v", len(want), len(phases), phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("transition %d: expected %s, got %s", i, want[i], phases[i])
		}
	}

	joined := strings.Join(lastLog, "\n")
	if !strings.Contains(joined, "no order received, passing") {
		t.Error("expected pass substitution in the turn log after a timeout")
	}
}

func TestVictoryThresholdEndsAfterHeadlines(t *testing.T) {
	cfg := config.Default()
	cfg.VictoryThreshold = 1
	cfg.OrderTimeoutMs = 1
	e := newTestEngine(t, cfg)

	sawResolution := false
	e.OnPhaseChange(func(turn int, p game.Phase) {
		if p == game.ResolutionPhase {
			sawResolution = true
		}
	})

	result, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Turns != 1 {
		t.Errorf("threshold of 1 should end on turn one, got %d", result.Turns)
	}
	if !sawResolution {
		t.Error("the terminal check must not preempt the turn's phases")
	}
	if result.VictoryPoints[result.Winner] < cfg.VictoryThreshold {
		t.Errorf("winner %s below threshold: %v", result.Winner, result.VictoryPoints)
	}
}

func TestTieBreakPrefersBlocOrder(t *testing.T) {
	cfg := config.Default()
	cfg.VictoryThreshold = 10
	e := newTestEngine(t, cfg)
	for _, b := range e.world.Blocs {
		b.VictoryPoints = 10
	}

	result, over := e.checkTerminal()
	if !over {
		t.Fatal("threshold reached, expected terminal")
	}
	if result.Winner != e.world.Blocs[0].Name {
		t.Errorf("three-way tie should fall to %s, got %s", e.world.Blocs[0].Name, result.Winner)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	e := newTestEngine(t, config.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAllianceWindow(t *testing.T) {
	e := newTestEngine(t, config.Default())

	if err := e.SetAlliance("USA", "EU"); err != nil {
		t.Fatalf("back channel alliance rejected: %v", err)
	}

	e.world.Phase = game.ResolutionPhase
	if err := e.BreakAlliance("USA", "EU"); !errors.Is(err, game.ErrPhaseViolation) {
		t.Errorf("expected phase violation during resolution, got %v", err)
	}

	e.world.Phase = game.PolicyDraftPhase
	if err := e.BreakAlliance("USA", "EU"); err != nil {
		t.Errorf("draft-phase break rejected: %v", err)
	}
}

// Two runs with the same config and the same scripted orders must walk
// through identical world hashes at every phase boundary.
func TestScriptedReplayIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.TurnLimit = 3
	cfg.VictoryThreshold = 100000
	cfg.OrderTimeoutMs = 5000

	run := func() []game.StateHash {
		e := newTestEngine(t, cfg)
		var hashes []game.StateHash
		e.OnPhaseChange(func(turn int, p game.Phase) {
			hashes = append(hashes, e.Snapshot().Hash())
			if p != game.PolicyDraftPhase {
				return
			}
			script := []game.Order{
				{Bloc: "USA", Spend: game.Allocation{Technology: 2}, Card: game.CyberEspionage},
				{Bloc: "EU", Spend: game.Allocation{Technology: 2}, Card: game.CounterIntel},
				{Bloc: "China", Spend: game.Allocation{Technology: 2}, Card: game.TradeDeal},
			}
			for _, o := range script {
				if err := e.SubmitOrder(o); err != nil {
					t.Fatalf("scripted order for %s: %v", o.Bloc, err)
				}
			}
		})
		e.OnTurnEnd(func(turn int, snap *game.WorldState) {
			hashes = append(hashes, snap.Hash())
		})
		if _, err := e.Run(context.Background()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return hashes
	}

	first, second := run(), run()
	// Four phase boundaries plus a turn end per turn, then TERMINAL.
	want := cfg.TurnLimit*5 + 1
	if len(first) != want || len(second) != want {
		t.Fatalf("expected %d hashes, got %d and %d", want, len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("boundary %d diverged: %x vs %x", i, first[i], second[i])
		}
	}
}
