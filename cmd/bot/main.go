// Package main is the entry point for the VibeCore bot.
package main

import (
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vibecore-bot/internal/bot"
	"vibecore-bot/internal/config"
	"vibecore-bot/internal/dashboard"
	"vibecore-bot/internal/game/prompts"
	"vibecore-bot/internal/game/solo"
	"vibecore-bot/internal/game/tictactoe"
	"vibecore-bot/internal/game/trivia"
	"vibecore-bot/internal/handler"
	"vibecore-bot/internal/poll"
	"vibecore-bot/internal/service"
	"vibecore-bot/internal/split"
	"vibecore-bot/internal/store"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// A .env is optional; real config comes from config.yaml / env vars
	_ = godotenv.Load()

	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log.Info().Msg("Configuration loaded successfully")

	// Open the shared document store
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open document store")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Initialize engines and services
	triviaEngine := trivia.New(st, rng, &trivia.Config{
		Expiry: cfg.Trivia.Expiry(),
		Reward: cfg.Trivia.RewardPoints,
	})
	duelEngine := tictactoe.New(st, cfg.Games.WinDetection)
	soloEngine := solo.New(st, rng, cfg.Games.WinDetection)
	promptDispenser := prompts.New(rng)
	pollEngine := poll.New(st)
	splitEngine := split.New(st)
	leaderboardService := service.NewLeaderboardService(st)

	// Initialize handlers
	deps := &bot.Dependencies{
		Config:           cfg,
		GamesHandler:     handler.NewGamesHandler(triviaEngine, promptDispenser, leaderboardService),
		TicTacToeHandler: handler.NewTicTacToeHandler(duelEngine, soloEngine),
		LinkupHandler:    handler.NewLinkupHandler(pollEngine, splitEngine),
		InfoHandler:      handler.NewInfoHandler(),
	}

	telegramBot, err := bot.New(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Dashboard read surface
	var dash *dashboard.Server
	if cfg.Dashboard.Enabled {
		dash = dashboard.New(st, cfg.Dashboard.Addr)
		dash.Start()
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	telegramBot.Stop()
	if dash != nil {
		dash.Stop()
	}
	log.Info().Msg("Bot stopped gracefully")
}
