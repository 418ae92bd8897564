package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/clynboozle/internal/answer"
	"github.com/KirkDiggler/clynboozle/internal/models"
	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	"github.com/KirkDiggler/clynboozle/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	gameService  game.Service
	questionRepo questionRepo.Repository
	config       *Config

	// The question currently awaiting an answer. Discord components only
	// carry a custom ID, so the bot keeps the presented question here until
	// a button click resolves it.
	mu              sync.Mutex
	pendingQuestion *models.Question
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Question repository, used for group listings
	QuestionRepo questionRepo.Repository
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.QuestionRepo == nil {
		return nil, errors.New("question repository cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		gameService:  cfg.GameService,
		questionRepo: cfg.QuestionRepo,
		config:       cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	triviaCmd := NewTriviaCommand(b)
	if err := b.RegisterCommand(triviaCmd); err != nil {
		return fmt.Errorf("failed to register trivia command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild.
	// Otherwise register it globally.
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// Button IDs
const (
	ButtonNextQuestion   = "next_question"
	ButtonJudgeCorrect   = "judge_correct"
	ButtonJudgeIncorrect = "judge_incorrect"

	// Option buttons carry the option ID after the prefix
	answerOptionPrefix = "answer_option:"
)

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	if optionID, ok := strings.CutPrefix(customID, answerOptionPrefix); ok {
		return b.handleOptionButton(s, i, optionID)
	}

	switch customID {
	case ButtonJudgeCorrect:
		return b.handleJudgeButton(s, i, true)
	case ButtonJudgeIncorrect:
		return b.handleJudgeButton(s, i, false)
	case ButtonNextQuestion:
		return b.presentNextQuestion(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleOptionButton resolves a multiple choice question from an option click
func (b *Bot) handleOptionButton(s *discordgo.Session, i *discordgo.InteractionCreate, optionID string) error {
	question := b.currentQuestion()
	if question == nil {
		return RespondWithEphemeralMessage(s, i, "No question is waiting for an answer. Use `/trivia question` to draw one.")
	}

	wasCorrect, err := answer.CheckOption(question, optionID)
	if err != nil {
		log.Printf("Error checking option: %v", err)
		return RespondWithError(s, i, "That option does not belong to the current question.")
	}

	return b.resolvePendingQuestion(s, i, question, wasCorrect)
}

// handleJudgeButton resolves the pending question with the facilitator's
// verdict. Used for fill in the blank and open ended questions, where the
// answer is given out loud.
func (b *Bot) handleJudgeButton(s *discordgo.Session, i *discordgo.InteractionCreate, wasCorrect bool) error {
	question := b.currentQuestion()
	if question == nil {
		return RespondWithEphemeralMessage(s, i, "No question is waiting for a verdict. Use `/trivia question` to draw one.")
	}

	return b.resolvePendingQuestion(s, i, question, wasCorrect)
}

// resolvePendingQuestion records the outcome, applies scoring and rotation,
// then replaces the question message with the result
func (b *Bot) resolvePendingQuestion(s *discordgo.Session, i *discordgo.InteractionCreate, question *models.Question, wasCorrect bool) error {
	ctx := context.Background()

	output, err := b.gameService.ResolveAnswer(ctx, &game.ResolveAnswerInput{
		QuestionID: question.ID,
		WasCorrect: wasCorrect,
		Points:     question.Points,
	})
	if err != nil {
		log.Printf("Error resolving answer: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to resolve answer: %v", err))
	}

	b.clearPendingQuestion()

	teamNames, err := b.teamNames(ctx)
	if err != nil {
		log.Printf("Error listing teams: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list teams: %v", err))
	}

	return renderAnswerResult(s, i, question, wasCorrect, output, teamNames)
}

// presentNextQuestion draws a random unanswered question and posts it with
// its answer components. Shared by the question subcommand and the next
// question button.
func (b *Bot) presentNextQuestion(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := b.gameService.NextQuestion(ctx, &game.NextQuestionInput{})
	if err != nil {
		log.Printf("Error drawing question: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to draw a question: %v", err))
	}

	if output.Question == nil {
		b.clearPendingQuestion()
		return b.renderPoolExhausted(s, i)
	}

	turnOutput, err := b.gameService.GetCurrentTurn(ctx, &game.GetCurrentTurnInput{})
	if err != nil {
		log.Printf("Error getting current turn: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get the current turn: %v", err))
	}

	teamNames, err := b.teamNames(ctx)
	if err != nil {
		log.Printf("Error listing teams: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list teams: %v", err))
	}

	b.setPendingQuestion(output.Question)

	return renderQuestion(s, i, output.Question, teamNames[turnOutput.TeamID], output.TimePerQuestion)
}

// renderPoolExhausted tells the channel the pool is empty and shows the
// standings so far
func (b *Bot) renderPoolExhausted(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	scoresOutput, err := b.gameService.GetScores(ctx, &game.GetScoresInput{})
	if err != nil {
		if errors.Is(err, game.ErrNoOpenSession) {
			return RespondWithEphemeralMessage(s, i, "No game is open. Use `/trivia start` to begin one.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Failed to get scores: %v", err))
	}

	teamsOutput, err := b.gameService.ListTeams(ctx, &game.ListTeamsInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to list teams: %v", err))
	}

	fields := scoreboardFields(teamsOutput.Teams, scoresOutput.Scores)
	return RespondWithEmbed(s, i, "No Questions Left",
		"Every question has been answered. Use `/trivia end` to finish the game and crown the winners.", fields)
}

// teamNames returns a team ID to name lookup for the open session
func (b *Bot) teamNames(ctx context.Context) (map[string]string, error) {
	teamsOutput, err := b.gameService.ListTeams(ctx, &game.ListTeamsInput{})
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(teamsOutput.Teams))
	for _, team := range teamsOutput.Teams {
		names[team.ID] = team.Name
	}

	return names, nil
}

func (b *Bot) setPendingQuestion(q *models.Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingQuestion = q
}

func (b *Bot) currentQuestion() *models.Question {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingQuestion
}

func (b *Bot) clearPendingQuestion() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingQuestion = nil
}
