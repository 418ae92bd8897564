package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	"github.com/KirkDiggler/clynboozle/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

const defaultTimePerQuestion = 30

// TriviaCommand handles the /trivia command
type TriviaCommand struct {
	BaseCommand
	bot *Bot
}

// NewTriviaCommand creates a new trivia command handler
func NewTriviaCommand(bot *Bot) *TriviaCommand {
	return &TriviaCommand{
		BaseCommand: BaseCommand{
			Name:        "trivia",
			Description: "Team trivia game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "groups",
					Description: "List the available question groups",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Open a new game on a question group",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "group",
							Description: "Question group ID (see /trivia groups)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seconds",
							Description: "Seconds per question (default 30)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "teams",
					Description: "Register teams, in turn order",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "names",
							Description: "Comma separated team names",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "addplayer",
					Description: "Add a player to a team",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "team",
							Description: "Team name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player",
							Description: "Player name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "question",
					Description: "Draw the next question",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scores",
					Description: "Show the scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the game and show the winners",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the trivia command
func (c *TriviaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	sub := data.Options[0]

	var err error
	switch sub.Name {
	case "groups":
		err = c.handleGroups(s, i)
	case "start":
		err = c.handleStart(s, i, sub.Options)
	case "teams":
		err = c.handleTeams(s, i, sub.Options)
	case "addplayer":
		err = c.handleAddPlayer(s, i, sub.Options)
	case "question":
		err = c.bot.presentNextQuestion(s, i)
	case "scores":
		err = c.handleScores(s, i)
	case "end":
		err = c.handleEnd(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleGroups lists the question groups available to play
func (c *TriviaCommand) handleGroups(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.bot.questionRepo.ListGroups(ctx, &questionRepo.ListGroupsInput{})
	if err != nil {
		log.Printf("Error listing groups: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list question groups: %v", err))
	}

	if len(output.Groups) == 0 {
		return RespondWithEphemeralMessage(s, i, "No question groups yet. Import some questions first.")
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(output.Groups))
	for _, group := range output.Groups {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  group.Name,
			Value: fmt.Sprintf("`%s`", group.ID),
		})
	}

	return RespondWithEmbed(s, i, "Question Groups", "Pass a group ID to `/trivia start`.", fields)
}

// handleStart handles the start subcommand
func (c *TriviaCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	groupID := stringOption(opts, "group")
	seconds := intOption(opts, "seconds")
	if seconds <= 0 {
		seconds = defaultTimePerQuestion
	}

	output, err := c.bot.gameService.StartSession(ctx, &game.StartSessionInput{
		GroupID:         groupID,
		TimePerQuestion: seconds,
	})
	if err != nil {
		if errors.Is(err, game.ErrGroupNotFound) {
			return RespondWithError(s, i, "That question group does not exist. Use `/trivia groups` to see the list.")
		}
		log.Printf("Error starting session: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to start the game: %v", err))
	}

	log.Printf("Started session %s on group %s", output.SessionID, groupID)

	return RespondWithEmbed(s, i, "Game On!",
		"A new game is open. Register teams with `/trivia teams`, then draw the first question with `/trivia question`.", nil)
}

// handleTeams handles the teams subcommand
func (c *TriviaCommand) handleTeams(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	var names []string
	for _, name := range strings.Split(stringOption(opts, "names"), ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return RespondWithError(s, i, "Give me at least one team name.")
	}

	output, err := c.bot.gameService.RegisterTeams(ctx, &game.RegisterTeamsInput{
		TeamNames: names,
	})
	if err != nil {
		if errors.Is(err, game.ErrNoOpenSession) {
			return RespondWithError(s, i, "No game is open. Use `/trivia start` first.")
		}
		log.Printf("Error registering teams: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to register teams: %v", err))
	}

	turnOutput, err := c.bot.gameService.GetCurrentTurn(ctx, &game.GetCurrentTurnInput{})
	if err != nil {
		log.Printf("Error getting current turn: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get the current turn: %v", err))
	}

	var openingTeam string
	fields := make([]*discordgo.MessageEmbedField, 0, len(output.Teams))
	for idx, team := range output.Teams {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", idx+1, team.Name),
			Value: "0 points",
		})
		if team.ID == turnOutput.TeamID {
			openingTeam = team.Name
		}
	}

	description := "Teams play in the order shown."
	if openingTeam != "" {
		description = fmt.Sprintf("Teams play in the order shown. **%s** goes first.", openingTeam)
	}

	return RespondWithEmbed(s, i, "Teams Registered", description, fields)
}

// handleAddPlayer handles the addplayer subcommand. Teams are looked up by
// name, since nobody wants to type a UUID into Discord.
func (c *TriviaCommand) handleAddPlayer(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	teamName := stringOption(opts, "team")
	playerName := stringOption(opts, "player")

	teamsOutput, err := c.bot.gameService.ListTeams(ctx, &game.ListTeamsInput{})
	if err != nil {
		if errors.Is(err, game.ErrNoOpenSession) {
			return RespondWithError(s, i, "No game is open. Use `/trivia start` first.")
		}
		log.Printf("Error listing teams: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list teams: %v", err))
	}

	var teamID string
	for _, team := range teamsOutput.Teams {
		if strings.EqualFold(team.Name, teamName) {
			teamID = team.ID
			break
		}
	}

	if teamID == "" {
		return RespondWithError(s, i, fmt.Sprintf("No team named **%s** in this game.", teamName))
	}

	_, err = c.bot.gameService.AddPlayer(ctx, &game.AddPlayerInput{
		TeamID:     teamID,
		PlayerName: playerName,
	})
	if err != nil {
		log.Printf("Error adding player: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to add player: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Added %s to %s.", playerName, teamName))
}

// handleScores handles the scores subcommand
func (c *TriviaCommand) handleScores(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	scoresOutput, err := c.bot.gameService.GetScores(ctx, &game.GetScoresInput{})
	if err != nil {
		if errors.Is(err, game.ErrNoOpenSession) {
			return RespondWithError(s, i, "No game is open. Use `/trivia start` first.")
		}
		log.Printf("Error getting scores: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get scores: %v", err))
	}

	teamsOutput, err := c.bot.gameService.ListTeams(ctx, &game.ListTeamsInput{})
	if err != nil {
		log.Printf("Error listing teams: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list teams: %v", err))
	}

	fields := scoreboardFields(teamsOutput.Teams, scoresOutput.Scores)
	return RespondWithEmbed(s, i, "Scoreboard", "", fields)
}

// handleEnd handles the end subcommand
func (c *TriviaCommand) handleEnd(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.bot.gameService.EndSession(ctx, &game.EndSessionInput{})
	if err != nil {
		log.Printf("Error ending session: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to end the game: %v", err))
	}

	c.bot.clearPendingQuestion()

	embed := winnersEmbed(output)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// stringOption returns the named string option, or empty when absent
func stringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// intOption returns the named integer option, or zero when absent
func intOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	for _, opt := range opts {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return 0
}
