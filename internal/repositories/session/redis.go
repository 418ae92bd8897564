package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/clynboozle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "session:"
	teamKeyPrefix     = "team:"
	teamIndexPrefix   = "session:teams:"   // Sorted set of team IDs per session
	scoresKeyPrefix   = "session:scores:"  // Hash of team ID -> score
	answersKeyPrefix  = "session:answers:" // Hash of question ID -> answer record
	activeSessionsKey = "active_sessions"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateSession persists a new session and seeds one pending answer record
// per question in its group, so "answered" vs "never served" is unambiguous
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	if input.Session.Active {
		pipe.SAdd(ctx, activeSessionsKey, input.Session.ID)
	}

	answersKey := fmt.Sprintf("%s%s", answersKeyPrefix, input.Session.ID)
	for _, questionID := range input.QuestionIDs {
		record := &models.AnswerRecord{
			SessionID:  input.Session.ID,
			QuestionID: questionID,
			Outcome:    models.AnswerOutcomePending,
		}

		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal answer record: %w", err)
		}

		pipe.HSetNX(ctx, answersKey, questionID, recordJSON)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// saveSession rewrites the session record and keeps the active set in sync
func (r *redisRepository) saveSession(ctx context.Context, session *models.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, session.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	if session.Active {
		pipe.SAdd(ctx, activeSessionsKey, session.ID)
	} else {
		pipe.SRem(ctx, activeSessionsKey, session.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// SetActive flips the session's active flag. Ending a session keeps its
// teams, scores and answer records as history.
func (r *redisRepository) SetActive(ctx context.Context, input *SetActiveInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return err
	}

	session.Active = input.Active
	return r.saveSession(ctx, session)
}

// AddTeam registers a team on a session. Registration order is kept in a
// sorted set and drives turn rotation.
func (r *redisRepository) AddTeam(ctx context.Context, input *AddTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}

	if input.Team.SessionID == "" {
		return errors.New("team session ID cannot be empty")
	}

	// The session must exist before teams can join it
	if _, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.Team.SessionID}); err != nil {
		return err
	}

	teamJSON, err := json.Marshal(input.Team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	// Score is the insertion rank; wall-clock scores would collide for
	// teams registered in the same instant
	teamIndexKey := fmt.Sprintf("%s%s", teamIndexPrefix, input.Team.SessionID)
	rank, err := r.client.ZCard(ctx, teamIndexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get team count: %w", err)
	}

	pipe := r.client.Pipeline()

	teamKey := fmt.Sprintf("%s%s", teamKeyPrefix, input.Team.ID)
	pipe.Set(ctx, teamKey, teamJSON, 0)

	pipe.ZAdd(ctx, teamIndexKey, redis.Z{
		Score:  float64(rank),
		Member: input.Team.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add team: %w", err)
	}

	return nil
}

// AddPlayer appends a player to a team's roster
func (r *redisRepository) AddPlayer(ctx context.Context, input *AddPlayerInput) error {
	if input == nil || input.TeamID == "" || input.Player == nil {
		return errors.New("input, team ID and player cannot be empty")
	}

	team, err := r.getTeam(ctx, input.TeamID)
	if err != nil {
		return err
	}

	input.Player.TeamID = team.ID
	team.Players = append(team.Players, input.Player)

	teamJSON, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	teamKey := fmt.Sprintf("%s%s", teamKeyPrefix, team.ID)
	if err := r.client.Set(ctx, teamKey, teamJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

func (r *redisRepository) getTeam(ctx context.Context, teamID string) (*models.Team, error) {
	teamKey := fmt.Sprintf("%s%s", teamKeyPrefix, teamID)
	teamJSON, err := r.client.Get(ctx, teamKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var team models.Team
	if err := json.Unmarshal([]byte(teamJSON), &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &team, nil
}

// ListTeams retrieves a session's teams with players, in registration order
func (r *redisRepository) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	teamIndexKey := fmt.Sprintf("%s%s", teamIndexPrefix, input.SessionID)
	teamIDs, err := r.client.ZRange(ctx, teamIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get team IDs: %w", err)
	}

	teams := make([]*models.Team, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		team, err := r.getTeam(ctx, teamID)
		if err != nil {
			// Skip teams that can't be found
			if errors.Is(err, ErrTeamNotFound) {
				continue
			}
			return nil, err
		}
		teams = append(teams, team)
	}

	return &ListTeamsOutput{Teams: teams}, nil
}

// InitScores creates a zero score row per team. Teams that already have a
// score keep it, so re-running after adding more teams is safe.
func (r *redisRepository) InitScores(ctx context.Context, input *InitScoresInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	scoresKey := fmt.Sprintf("%s%s", scoresKeyPrefix, input.SessionID)

	pipe := r.client.Pipeline()
	for _, teamID := range input.TeamIDs {
		pipe.HSetNX(ctx, scoresKey, teamID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to init scores: %w", err)
	}

	return nil
}

// GetState retrieves the current turn team, team order and scores
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	teamIndexKey := fmt.Sprintf("%s%s", teamIndexPrefix, input.SessionID)
	teamOrder, err := r.client.ZRange(ctx, teamIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get team order: %w", err)
	}

	scoresKey := fmt.Sprintf("%s%s", scoresKeyPrefix, input.SessionID)
	rawScores, err := r.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	scores := make(map[string]int, len(rawScores))
	for teamID, raw := range rawScores {
		score, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse score for team %s: %w", teamID, err)
		}
		scores[teamID] = score
	}

	return &GetStateOutput{
		CurrentTurnTeamID: session.CurrentTurnTeamID,
		TeamOrder:         teamOrder,
		Scores:            scores,
	}, nil
}

// SetScore overwrites a team's score with a new absolute total
func (r *redisRepository) SetScore(ctx context.Context, input *SetScoreInput) error {
	if input == nil || input.SessionID == "" || input.TeamID == "" {
		return errors.New("input, session ID and team ID cannot be empty")
	}

	scoresKey := fmt.Sprintf("%s%s", scoresKeyPrefix, input.SessionID)
	if err := r.client.HSet(ctx, scoresKey, input.TeamID, input.Score).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

// SetCurrentTurn sets which team answers next
func (r *redisRepository) SetCurrentTurn(ctx context.Context, input *SetCurrentTurnInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return err
	}

	session.CurrentTurnTeamID = input.TeamID
	return r.saveSession(ctx, session)
}

// RecordAnswer upserts the outcome for a (session, question) pair. The hash
// field is the uniqueness constraint, so a retried answer overwrites its
// record instead of duplicating it.
func (r *redisRepository) RecordAnswer(ctx context.Context, input *RecordAnswerInput) error {
	if input == nil || input.SessionID == "" || input.QuestionID == "" {
		return errors.New("input, session ID and question ID cannot be empty")
	}

	outcome := models.AnswerOutcomeIncorrect
	if input.WasCorrect {
		outcome = models.AnswerOutcomeCorrect
	}

	record := &models.AnswerRecord{
		SessionID:  input.SessionID,
		QuestionID: input.QuestionID,
		Outcome:    outcome,
		AnsweredAt: input.AnsweredAt,
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal answer record: %w", err)
	}

	answersKey := fmt.Sprintf("%s%s", answersKeyPrefix, input.SessionID)
	if err := r.client.HSet(ctx, answersKey, input.QuestionID, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}

	return nil
}

// GetAnswerRecords retrieves all answer records for a session
func (r *redisRepository) GetAnswerRecords(ctx context.Context, input *GetAnswerRecordsInput) (*GetAnswerRecordsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	answersKey := fmt.Sprintf("%s%s", answersKeyPrefix, input.SessionID)
	rawRecords, err := r.client.HGetAll(ctx, answersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get answer records: %w", err)
	}

	records := make([]*models.AnswerRecord, 0, len(rawRecords))
	for questionID, raw := range rawRecords {
		var record models.AnswerRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answer record %s: %w", questionID, err)
		}
		records = append(records, &record)
	}

	return &GetAnswerRecordsOutput{Records: records}, nil
}
