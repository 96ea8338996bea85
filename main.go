package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"conviction/config"
	"conviction/experiments"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML game config")
	seed := flag.Uint64("seed", 0, "override the random seed")
	games := flag.Int("games", 1, "number of bot self-play games to run")
	outDir := flag.String("out", "runs", "output directory for batch metrics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *games > 1 {
		runBatch(cfg, *games, *outDir)
		return
	}

	record, err := experiments.Play(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	log.Info().Str("winner", record.Winner).Int("turns", record.Turns).
		Interface("points", record.Points).Msg("game over")
}

func runBatch(cfg config.Config, games int, outDir string) {
	records, err := experiments.RunBatch(cfg, games)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	writer, err := experiments.NewWriter(outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteGameRecords(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write metrics")
	}

	wins := make(map[string]int)
	for _, r := range records {
		wins[r.Winner]++
	}
	log.Info().Int("games", len(records)).Interface("wins", wins).Msg("batch complete")
}
