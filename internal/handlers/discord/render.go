package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/clynboozle/internal/models"
	"github.com/KirkDiggler/clynboozle/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// renderQuestion posts a question with its answer components. When the
// interaction came from a button, the existing message is updated in place
// instead of posting a new one.
func renderQuestion(s *discordgo.Session, i *discordgo.InteractionCreate, q *models.Question, teamName string, timePerQuestion int) error {
	embed := questionEmbed(q, teamName, timePerQuestion)

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: questionComponents(q),
		},
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// questionEmbed builds the embed for a presented question
func questionEmbed(q *models.Question, teamName string, timePerQuestion int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       q.Prompt,
		Color:       colorDefault,
		Description: fmt.Sprintf("**%s**, it's your turn!", teamName),
	}

	if q.Category != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Category",
			Value:  q.Category,
			Inline: true,
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Points",
		Value:  fmt.Sprintf("%d", q.Points),
		Inline: true,
	})

	if timePerQuestion > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("You have %d seconds. No pressure.", timePerQuestion),
		}
	}

	switch q.Kind {
	case models.QuestionKindFillInBlank:
		embed.Description += "\nSay your answer out loud, then the host judges it."
	case models.QuestionKindOpenEnded:
		embed.Description += "\nThe host decides whether your answer counts."
	}

	return embed
}

// questionComponents builds the answer buttons for a question. Multiple
// choice questions get one button per option; the other kinds get the host's
// judge buttons.
func questionComponents(q *models.Question) []discordgo.MessageComponent {
	if q.Kind == models.QuestionKindMultipleChoice {
		components := make([]discordgo.MessageComponent, 0, len(q.Options))
		for _, option := range q.Options {
			components = append(components, discordgo.Button{
				Label:    option.Text,
				Style:    discordgo.SecondaryButton,
				CustomID: answerOptionPrefix + option.ID,
			})
		}
		return components
	}

	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Correct",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonJudgeCorrect,
			Emoji: &discordgo.ComponentEmoji{
				Name: "✅",
			},
		},
		discordgo.Button{
			Label:    "Incorrect",
			Style:    discordgo.DangerButton,
			CustomID: ButtonJudgeIncorrect,
			Emoji: &discordgo.ComponentEmoji{
				Name: "❌",
			},
		},
	}
}

// renderAnswerResult replaces the question message with the outcome and a
// next question button
func renderAnswerResult(s *discordgo.Session, i *discordgo.InteractionCreate, q *models.Question, wasCorrect bool, output *game.ResolveAnswerOutput, teamNames map[string]string) error {
	title := "Correct!"
	color := colorSuccess
	if !wasCorrect {
		title = "Incorrect"
		color = colorFailure
	}

	var lines []string

	if correct := q.CorrectOption(); correct != nil {
		lines = append(lines, fmt.Sprintf("The answer was **%s**.", correct.Text))
	} else if q.Kind == models.QuestionKindFillInBlank {
		lines = append(lines, fmt.Sprintf("The answer was **%s**.", q.BlankAnswer))
	}

	if output.TeamID != "" {
		lines = append(lines, fmt.Sprintf("**%s** now has **%d** points.", teamNames[output.TeamID], output.NewScore))
		if output.NextTeamID != "" && output.NextTeamID != output.TeamID {
			lines = append(lines, fmt.Sprintf("Next up: **%s**.", teamNames[output.NextTeamID]))
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       color,
	}

	nextButton := discordgo.Button{
		Label:    "Next Question",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonNextQuestion,
		Emoji: &discordgo.ComponentEmoji{
			Name: "➡️",
		},
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{nextButton},
				},
			},
		},
	})
}

// scoreboardFields builds one embed field per team, in registration order
func scoreboardFields(teams []*models.Team, scores map[string]int) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(teams))
	for _, team := range teams {
		value := fmt.Sprintf("%d points", scores[team.ID])
		if len(team.Players) > 0 {
			names := make([]string, 0, len(team.Players))
			for _, player := range team.Players {
				names = append(names, player.Name)
			}
			value = fmt.Sprintf("%s (%s)", value, strings.Join(names, ", "))
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  team.Name,
			Value: value,
		})
	}

	return fields
}

// winnersEmbed builds the final standings embed
func winnersEmbed(output *game.EndSessionOutput) *discordgo.MessageEmbed {
	if len(output.Winners) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Game Over",
			Description: "The game ended with no teams on the board.",
			Color:       colorDefault,
		}
	}

	names := make([]string, 0, len(output.Winners))
	for _, winner := range output.Winners {
		names = append(names, fmt.Sprintf("**%s**", winner.Name))
	}

	title := "We Have a Winner!"
	if len(output.Winners) > 1 {
		title = "It's a Tie!"
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("%s with **%d** points!", strings.Join(names, " and "), output.HighScore),
		Color:       colorSuccess,
	}
}
