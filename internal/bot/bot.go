// Package bot provides the Telegram bot initialization, command
// registration and the dot-command router.
package bot

import (
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"vibecore-bot/internal/config"
	"vibecore-bot/internal/handler"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot *tele.Bot
	cfg *config.Config

	gamesHandler     *handler.GamesHandler
	tictactoeHandler *handler.TicTacToeHandler
	linkupHandler    *handler.LinkupHandler
	infoHandler      *handler.InfoHandler
}

// Dependencies holds everything the bot handlers need.
type Dependencies struct {
	Config           *config.Config
	GamesHandler     *handler.GamesHandler
	TicTacToeHandler *handler.TicTacToeHandler
	LinkupHandler    *handler.LinkupHandler
	InfoHandler      *handler.InfoHandler
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:              teleBot,
		cfg:              deps.Config,
		gamesHandler:     deps.GamesHandler,
		tictactoeHandler: deps.TicTacToeHandler,
		linkupHandler:    deps.LinkupHandler,
		infoHandler:      deps.InfoHandler,
	}

	b.registerMiddleware()
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(WhitelistMiddleware(b.cfg))
	b.bot.Use(LoggingMiddleware())
	b.bot.Use(RecoveryMiddleware())
}

// registerHandlers registers slash commands plus the text router for
// dot-prefixed commands.
func (b *Bot) registerHandlers() {
	// Game handlers
	b.bot.Handle("/trivia", b.gamesHandler.HandleTrivia)
	b.bot.Handle("/answer", b.gamesHandler.HandleAnswer)
	b.bot.Handle("/wyr", b.gamesHandler.HandleWYR)
	b.bot.Handle("/tod", b.gamesHandler.HandleTruthOrDare)
	b.bot.Handle("/score", b.gamesHandler.HandleScore)

	// Poll and split handlers
	b.bot.Handle("/poll", b.linkupHandler.HandlePoll)
	b.bot.Handle("/vote", b.linkupHandler.HandleVote)
	b.bot.Handle("/split", b.linkupHandler.HandleSplit)

	// Dot commands arrive as plain text
	b.bot.Handle(tele.OnText, b.handleText)
}

// handleText routes dot-prefixed commands; other text is ignored.
func (b *Bot) handleText(c tele.Context) error {
	fields := strings.Fields(c.Text())
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ".") {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case ".tic":
		return b.tictactoeHandler.HandleStart(c, args)
	case ".move":
		return b.tictactoeHandler.HandleMove(c, args)
	case ".ttt":
		return b.tictactoeHandler.HandleSolo(c, args)
	case ".menu":
		return b.infoHandler.HandleMenu(c)
	case ".ping":
		return b.infoHandler.HandlePing(c)
	case ".alive":
		return b.infoHandler.HandleAlive(c)
	default:
		return nil
	}
}

// Start starts the bot polling.
func (b *Bot) Start() {
	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	b.bot.Stop()
}
