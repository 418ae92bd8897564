package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/clynboozle/internal/handlers/discord"
	"github.com/spf13/cobra"
)

func newBotCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cfg)
		},
	}
}

func runBot(cfg *Config) error {
	if cfg.discordToken == "" {
		return errors.New("a discord token is required (set --discord-token or CLYNBOOZLE_DISCORD_TOKEN)")
	}

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

	bot, err := discord.New(&discord.Config{
		Token:         cfg.discordToken,
		ApplicationID: cfg.applicationID,
		GuildID:       cfg.guildID,
		GameService:   gameSvc,
		QuestionRepo:  questions,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
	return nil
}
