package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"conviction/agent"
	"conviction/config"
	"conviction/engine"
	"conviction/game"
)

// GameRecord captures one self-play game for balance analysis.
type GameRecord struct {
	Game   int
	Seed   uint64
	Winner string
	Turns  int
	Points map[string]int
}

// Play runs one fully bot-driven game to completion. Bot generators are
// derived from the game seed so a record is reproducible from its seed
// alone.
func Play(cfg config.Config) (GameRecord, error) {
	eng, err := engine.NewLocalEngine(cfg)
	if err != nil {
		return GameRecord{}, err
	}

	agents := make(map[string]agent.Agent)
	for i, b := range eng.Snapshot().Blocs {
		agents[b.Name] = agent.NewPriorityAgent(cfg.Seed + uint64(i) + 1)
	}

	eng.OnPhaseChange(func(turn int, phase game.Phase) {
		if phase != game.PolicyDraftPhase {
			return
		}
		snapshot := eng.Snapshot()
		for _, b := range snapshot.Blocs {
			order := agents[b.Name].FindOrder(snapshot, b.Name)
			if err := eng.SubmitOrder(order); err != nil {
				log.Warn().Str("bloc", b.Name).Err(err).Msg("bot order rejected")
			}
		}
	})

	result, err := eng.Run(context.Background())
	if err != nil {
		return GameRecord{}, fmt.Errorf("seed %d: %w", cfg.Seed, err)
	}
	return GameRecord{
		Seed:   cfg.Seed,
		Winner: result.Winner,
		Turns:  result.Turns,
		Points: result.VictoryPoints,
	}, nil
}

// RunBatch plays games under consecutive seeds starting at the configured
// one.
func RunBatch(base config.Config, games int) ([]GameRecord, error) {
	records := make([]GameRecord, 0, games)
	for i := 0; i < games; i++ {
		cfg := base
		cfg.Seed = base.Seed + uint64(i)
		record, err := Play(cfg)
		if err != nil {
			return records, err
		}
		record.Game = i + 1
		records = append(records, record)
		log.Info().Int("game", record.Game).Uint64("seed", record.Seed).
			Str("winner", record.Winner).Int("turns", record.Turns).Msg("game recorded")
	}
	return records, nil
}
