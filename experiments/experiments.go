package experiments

import (
	"fmt"
	"time"

	"kingsiege/engine"
	"kingsiege/experiments/metrics"
	"kingsiege/game"
	"kingsiege/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per match up

// RunGreedyBaseline pits the greedy Knight AI against the heuristic King
// across rule variants, with a random Knight agent as the baseline.
func RunGreedyBaseline() {
	kingConfig := metrics.AgentConfig{ID: 0, Kind: "king-greedy", Seed: 1}
	knightConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: "random", Seed: 11},
		{ID: 2, Kind: "greedy", Seed: 12},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range knightConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{kingConfig, config})
	}

	runExperiment("greedy_baseline", append(knightConfigs, kingConfig), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		kingConfig := matchup[0]
		knightConfig := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between king=%+v and knights=%+v...",
			mi+1, len(matchUps), kingConfig, knightConfig)

		for i := 0; i < NumGames; i++ {
			winner, record, moveMetrics := runGame(kingConfig, knightConfig)
			count++
			record.ID = count
			record.Agent1 = kingConfig.ID
			record.Agent2 = knightConfig.ID
			gameRecords = append(gameRecords, record)
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d",
				mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		panic(fmt.Sprintf("failed to write agent configs: %v", err))
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
}

// runGame executes a single game between two agents and returns the winner.
func runGame(kingConfig, knightConfig metrics.AgentConfig) (int, metrics.GameRecord, []engine.MoveMetric) {
	rules := game.NewStandardRules().WithSafeZones(
		game.Position{Row: 0, Col: 2},
		game.Position{Row: game.GridSize - 1, Col: 2},
	)
	e := engine.NewLocalEngine(rules, newAgent(kingConfig), newAgent(knightConfig))

	start := time.Now()
	winner, moveMetrics := e.Run()
	end := time.Now()

	record := metrics.GameRecord{
		Winner:    winner,
		Turns:     e.State.TurnCount,
		KingKills: e.State.KingKills,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	return winner, record, moveMetrics
}

func newAgent(config metrics.AgentConfig) searcher.Agent {
	switch config.Kind {
	case "greedy":
		return searcher.NewGreedy(searcher.WithSeed(config.Seed), searcher.WithMetrics())
	case "random":
		return searcher.NewRandom(config.Seed)
	case "king-greedy":
		return searcher.NewKingGreedy(config.Seed)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
