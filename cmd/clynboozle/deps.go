package main

import (
	"database/sql"
	"fmt"

	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	sessionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/session"
	gameService "github.com/KirkDiggler/clynboozle/internal/services/game"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

// openQuestionRepo opens the sqlite question bank. The caller owns the
// returned *sql.DB and must close it.
func openQuestionRepo(cfg *Config) (questionRepo.Repository, *sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open question bank %s: %w", cfg.dbPath, err)
	}

	repo, err := questionRepo.NewSQLite(&questionRepo.Config{DB: db})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create question repository: %w", err)
	}

	return repo, db, nil
}

// openSessionRepo connects to redis for session state. The caller owns the
// returned client and must close it.
func openSessionRepo(cfg *Config) (sessionRepo.Repository, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       0,
	})

	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: client,
	})
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.redisAddr, err)
	}

	return repo, client, nil
}

// buildGameService wires the stores into a session engine
func buildGameService(questions questionRepo.Repository, sessions sessionRepo.Repository) (gameService.Service, error) {
	svc, err := gameService.New(&gameService.Config{
		QuestionRepo: questions,
		SessionRepo:  sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	return svc, nil
}
