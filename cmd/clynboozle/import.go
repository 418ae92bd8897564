package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/clynboozle/internal/models"
	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	"github.com/spf13/cobra"
)

// questionBankFile is the JSON layout accepted by the import command:
//
//	{
//	  "group": "General Knowledge",
//	  "questions": [
//	    {
//	      "prompt": "Which planet is closest to the sun?",
//	      "kind": "multiple_choice",
//	      "points": 10,
//	      "category": "Space",
//	      "options": [
//	        {"text": "Mercury", "correct": true},
//	        {"text": "Venus"}
//	      ]
//	    },
//	    {"prompt": "The capital of France is ____.", "kind": "fill_in_blank", "blank_answer": "Paris"},
//	    {"prompt": "Tell us your best dad joke.", "kind": "open_ended"}
//	  ]
//	}
type questionBankFile struct {
	Group     string             `json:"group"`
	Questions []questionBankItem `json:"questions"`
}

type questionBankItem struct {
	Prompt      string           `json:"prompt"`
	Kind        string           `json:"kind"`
	Points      int              `json:"points"`
	Category    string           `json:"category"`
	BlankAnswer string           `json:"blank_answer"`
	Options     []questionOption `json:"options"`
}

type questionOption struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

func newImportCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a question bank into a new group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cfg, args[0])
		},
	}
}

func runImport(ctx context.Context, cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var bank questionBankFile
	if err := json.Unmarshal(data, &bank); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if bank.Group == "" {
		return errors.New("the question bank needs a group name")
	}

	if len(bank.Questions) == 0 {
		return errors.New("the question bank has no questions")
	}

	questions, db, err := openQuestionRepo(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	groupOutput, err := questions.CreateGroup(ctx, &questionRepo.CreateGroupInput{
		Name: bank.Group,
	})
	if err != nil {
		return fmt.Errorf("failed to create group %s: %w", bank.Group, err)
	}

	group := groupOutput.Group

	for idx, item := range bank.Questions {
		question := &models.Question{
			GroupID:     group.ID,
			Prompt:      item.Prompt,
			Points:      item.Points,
			Category:    item.Category,
			Kind:        models.QuestionKind(item.Kind),
			BlankAnswer: item.BlankAnswer,
		}

		for _, option := range item.Options {
			question.Options = append(question.Options, &models.Option{
				Text:      option.Text,
				IsCorrect: option.Correct,
			})
		}

		if _, err := questions.CreateQuestion(ctx, &questionRepo.CreateQuestionInput{
			Question: question,
		}); err != nil {
			return fmt.Errorf("question %d is invalid: %w", idx+1, err)
		}
	}

	log.Printf("Imported %d questions into group %q (%s)", len(bank.Questions), group.Name, group.ID)
	return nil
}
