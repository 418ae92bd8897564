package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/clynboozle/internal/answer"
	"github.com/KirkDiggler/clynboozle/internal/models"
	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	gameService "github.com/KirkDiggler/clynboozle/internal/services/game"
	"github.com/spf13/cobra"
)

func newPlayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run a game at the terminal, with a human host",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), cfg)
		},
	}
}

// runPlay drives one full game from the terminal: pick a group, register
// teams, then loop questions until the pool runs dry or the host quits.
func runPlay(ctx context.Context, cfg *Config) error {
	questions, db, err := openQuestionRepo(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, redisClient, err := openSessionRepo(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	gameSvc, err := buildGameService(questions, sessions)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(os.Stdin)

	groupID, err := chooseGroup(ctx, questions, in)
	if err != nil {
		return err
	}

	seconds := promptInt(in, "Seconds per question", 30)

	if _, err := gameSvc.StartSession(ctx, &gameService.StartSessionInput{
		GroupID:         groupID,
		TimePerQuestion: seconds,
	}); err != nil {
		return fmt.Errorf("failed to start the game: %w", err)
	}

	if err := registerTeams(ctx, gameSvc, in); err != nil {
		return err
	}

	if err := questionLoop(ctx, gameSvc, in); err != nil {
		return err
	}

	output, err := gameSvc.EndSession(ctx, &gameService.EndSessionInput{})
	if err != nil {
		return fmt.Errorf("failed to end the game: %w", err)
	}

	printWinners(output)
	return nil
}

// chooseGroup lists the question groups and asks the host to pick one
func chooseGroup(ctx context.Context, questions questionRepo.Repository, in *bufio.Scanner) (string, error) {
	output, err := questions.ListGroups(ctx, &questionRepo.ListGroupsInput{})
	if err != nil {
		return "", fmt.Errorf("failed to list question groups: %w", err)
	}

	if len(output.Groups) == 0 {
		return "", errors.New("no question groups found, run the import command first")
	}

	fmt.Println("Question groups:")
	for idx, group := range output.Groups {
		fmt.Printf("  %d. %s\n", idx+1, group.Name)
	}

	for {
		choice := promptInt(in, "Pick a group", 1)
		if choice >= 1 && choice <= len(output.Groups) {
			return output.Groups[choice-1].ID, nil
		}
		fmt.Printf("Pick a number between 1 and %d.\n", len(output.Groups))
	}
}

// registerTeams asks for team names, then optional players per team
func registerTeams(ctx context.Context, gameSvc gameService.Service, in *bufio.Scanner) error {
	var names []string
	for len(names) == 0 {
		line := prompt(in, "Team names (comma separated)")
		for _, name := range strings.Split(line, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				names = append(names, name)
			}
		}
	}

	output, err := gameSvc.RegisterTeams(ctx, &gameService.RegisterTeamsInput{
		TeamNames: names,
	})
	if err != nil {
		return fmt.Errorf("failed to register teams: %w", err)
	}

	for _, team := range output.Teams {
		line := prompt(in, fmt.Sprintf("Players on %s (comma separated, blank for none)", team.Name))
		for _, playerName := range strings.Split(line, ",") {
			playerName = strings.TrimSpace(playerName)
			if playerName == "" {
				continue
			}
			if _, err := gameSvc.AddPlayer(ctx, &gameService.AddPlayerInput{
				TeamID:     team.ID,
				PlayerName: playerName,
			}); err != nil {
				return fmt.Errorf("failed to add player %s: %w", playerName, err)
			}
		}
	}

	return nil
}

// questionLoop draws and resolves questions until the pool is exhausted or
// the host quits
func questionLoop(ctx context.Context, gameSvc gameService.Service, in *bufio.Scanner) error {
	teamNames, err := teamNameLookup(ctx, gameSvc)
	if err != nil {
		return err
	}

	for {
		next, err := gameSvc.NextQuestion(ctx, &gameService.NextQuestionInput{})
		if err != nil {
			return fmt.Errorf("failed to draw a question: %w", err)
		}

		if next.Question == nil {
			fmt.Println("\nNo questions left!")
			return nil
		}

		turn, err := gameSvc.GetCurrentTurn(ctx, &gameService.GetCurrentTurnInput{})
		if err != nil {
			return fmt.Errorf("failed to get the current turn: %w", err)
		}

		q := next.Question

		fmt.Printf("\n%s, you're up! (%d points", teamNames[turn.TeamID], q.Points)
		if q.Category != "" {
			fmt.Printf(", %s", q.Category)
		}
		if next.TimePerQuestion > 0 {
			fmt.Printf(", %d seconds", next.TimePerQuestion)
		}
		fmt.Println(")")
		fmt.Printf("  %s\n", q.Prompt)

		wasCorrect, err := collectVerdict(q, in)
		if err != nil {
			return err
		}

		result, err := gameSvc.ResolveAnswer(ctx, &gameService.ResolveAnswerInput{
			QuestionID: q.ID,
			WasCorrect: wasCorrect,
			Points:     q.Points,
		})
		if err != nil {
			return fmt.Errorf("failed to resolve the answer: %w", err)
		}

		if wasCorrect {
			fmt.Printf("Correct! %s now has %d points.\n", teamNames[result.TeamID], result.NewScore)
		} else {
			fmt.Printf("Wrong! %s stays at %d points.\n", teamNames[result.TeamID], result.NewScore)
		}

		if !promptYes(in, "Keep playing?") {
			return nil
		}
	}
}

// collectVerdict reads the team's answer and decides whether it was correct.
// Multiple choice and fill in the blank are checked automatically; open
// ended questions go to the host.
func collectVerdict(q *models.Question, in *bufio.Scanner) (bool, error) {
	switch q.Kind {
	case models.QuestionKindMultipleChoice:
		for idx, option := range q.Options {
			fmt.Printf("    %d. %s\n", idx+1, option.Text)
		}
		for {
			choice := promptInt(in, "Answer", 0)
			if choice >= 1 && choice <= len(q.Options) {
				return answer.CheckOption(q, q.Options[choice-1].ID)
			}
			fmt.Printf("Pick a number between 1 and %d.\n", len(q.Options))
		}

	case models.QuestionKindFillInBlank:
		submitted := prompt(in, "Answer")
		correct, err := answer.CheckBlank(q, submitted)
		if err != nil {
			return false, err
		}
		if !correct {
			fmt.Printf("The answer was: %s\n", q.BlankAnswer)
		}
		return correct, nil

	case models.QuestionKindOpenEnded:
		return promptYes(in, "Host, was the answer correct?"), nil

	default:
		return false, fmt.Errorf("unknown question kind: %s", q.Kind)
	}
}

func teamNameLookup(ctx context.Context, gameSvc gameService.Service) (map[string]string, error) {
	output, err := gameSvc.ListTeams(ctx, &gameService.ListTeamsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	names := make(map[string]string, len(output.Teams))
	for _, team := range output.Teams {
		names[team.ID] = team.Name
	}
	return names, nil
}

func printWinners(output *gameService.EndSessionOutput) {
	if len(output.Winners) == 0 {
		fmt.Println("Game over. Nobody played, nobody won.")
		return
	}

	names := make([]string, 0, len(output.Winners))
	for _, winner := range output.Winners {
		names = append(names, winner.Name)
	}

	if len(names) == 1 {
		fmt.Printf("\n%s wins with %d points!\n", names[0], output.HighScore)
	} else {
		fmt.Printf("\nIt's a tie between %s at %d points!\n", strings.Join(names, " and "), output.HighScore)
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptInt(in *bufio.Scanner, label string, fallback int) int {
	line := prompt(in, fmt.Sprintf("%s [%d]", label, fallback))
	if line == "" {
		return fallback
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return fallback
	}
	return value
}

func promptYes(in *bufio.Scanner, label string) bool {
	line := strings.ToLower(prompt(in, label+" (y/n)"))
	return line == "y" || line == "yes"
}
