package question

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/clynboozle/internal/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrGroupNotFound is returned when a group is not found
var ErrGroupNotFound = errors.New("question group not found")

// ErrQuestionNotFound is returned when a question is not found
var ErrQuestionNotFound = errors.New("question not found")

const schema = `
CREATE TABLE IF NOT EXISTS groups (
	id TEXT PRIMARY KEY,
	group_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS questions (
	id TEXT PRIMARY KEY,
	group_id TEXT NOT NULL,
	prompt TEXT NOT NULL,
	points INTEGER NOT NULL DEFAULT 10,
	category TEXT NOT NULL DEFAULT '',
	kind TEXT NOT NULL,
	blank_answer TEXT NOT NULL DEFAULT '',
	FOREIGN KEY(group_id) REFERENCES groups(id)
);
CREATE TABLE IF NOT EXISTS options (
	id TEXT PRIMARY KEY,
	question_id TEXT NOT NULL,
	option_text TEXT NOT NULL,
	is_correct INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY(question_id) REFERENCES questions(id)
);
`

// Config holds configuration for the SQLite question repository
type Config struct {
	// Database handle, already opened with the sqlite3 driver
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed question repository and ensures the
// schema exists
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if _, err := cfg.DB.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// CreateGroup inserts a new group with a generated UUID
func (r *sqliteRepository) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and group name cannot be empty")
	}

	group := &models.QuestionGroup{
		ID:   uuid.New().String(),
		Name: input.Name,
	}

	_, err := r.db.ExecContext(ctx, "INSERT INTO groups (id, group_name) VALUES (?, ?)", group.ID, group.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert group: %w", err)
	}

	return &CreateGroupOutput{Group: group}, nil
}

// GetGroup retrieves a group by ID
func (r *sqliteRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.QuestionGroup, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	var group models.QuestionGroup
	err := r.db.QueryRowContext(ctx, "SELECT id, group_name FROM groups WHERE id = ?", input.GroupID).
		Scan(&group.ID, &group.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return &group, nil
}

// ListGroups retrieves all groups in insertion order
func (r *sqliteRepository) ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, group_name FROM groups ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	output := &ListGroupsOutput{Groups: []*models.QuestionGroup{}}
	for rows.Next() {
		var group models.QuestionGroup
		if err := rows.Scan(&group.ID, &group.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		output.Groups = append(output.Groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return output, nil
}

// DeleteGroup removes a group, cascading to its questions and their options
func (r *sqliteRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if input == nil || input.GroupID == "" {
		return errors.New("input and group ID cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM options WHERE question_id IN (SELECT id FROM questions WHERE group_id = ?)",
		input.GroupID)
	if err != nil {
		return fmt.Errorf("failed to delete group options: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE group_id = ?", input.GroupID); err != nil {
		return fmt.Errorf("failed to delete group questions: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", input.GroupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit group deletion: %w", err)
	}

	return nil
}

// CreateQuestion inserts a question and its options with generated UUIDs.
// The question must be well formed for its kind; multiple choice questions
// carry exactly one correct option.
func (r *sqliteRepository) CreateQuestion(ctx context.Context, input *CreateQuestionInput) (*CreateQuestionOutput, error) {
	if input == nil || input.Question == nil {
		return nil, errors.New("input and question cannot be nil")
	}

	q := input.Question
	if q.Points == 0 {
		q.Points = models.DefaultQuestionPoints
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	if q.GroupID == "" {
		return nil, errors.New("question group ID cannot be empty")
	}

	q.ID = uuid.New().String()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO questions (id, group_id, prompt, points, category, kind, blank_answer) VALUES (?, ?, ?, ?, ?, ?, ?)",
		q.ID, q.GroupID, q.Prompt, q.Points, q.Category, string(q.Kind), q.BlankAnswer)
	if err != nil {
		return nil, fmt.Errorf("failed to insert question: %w", err)
	}

	for _, opt := range q.Options {
		opt.ID = uuid.New().String()
		opt.QuestionID = q.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO options (id, question_id, option_text, is_correct) VALUES (?, ?, ?, ?)",
			opt.ID, opt.QuestionID, opt.Text, opt.IsCorrect)
		if err != nil {
			return nil, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit question: %w", err)
	}

	return &CreateQuestionOutput{Question: q}, nil
}

// GetQuestion retrieves a question with its options
func (r *sqliteRepository) GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, errors.New("input and question ID cannot be empty")
	}

	return r.getQuestion(ctx, input.QuestionID)
}

func (r *sqliteRepository) getQuestion(ctx context.Context, questionID string) (*models.Question, error) {
	var q models.Question
	var kind string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, group_id, prompt, points, category, kind, blank_answer FROM questions WHERE id = ?",
		questionID).
		Scan(&q.ID, &q.GroupID, &q.Prompt, &q.Points, &q.Category, &kind, &q.BlankAnswer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	q.Kind = models.QuestionKind(kind)

	if q.Kind == models.QuestionKindMultipleChoice {
		options, err := r.getOptions(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		q.Options = options
	}

	return &q, nil
}

func (r *sqliteRepository) getOptions(ctx context.Context, questionID string) ([]*models.Option, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, question_id, option_text, is_correct FROM options WHERE question_id = ? ORDER BY rowid",
		questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get options: %w", err)
	}
	defer rows.Close()

	var options []*models.Option
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.QuestionID, &opt.Text, &opt.IsCorrect); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, &opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get options: %w", err)
	}

	return options, nil
}

// UpdateQuestion replaces the question's fields and rewrites its options.
// Options are never merged, so a kind change cannot leave stale option rows
// or blank text behind.
func (r *sqliteRepository) UpdateQuestion(ctx context.Context, input *UpdateQuestionInput) error {
	if input == nil || input.Question == nil {
		return errors.New("input and question cannot be nil")
	}

	q := input.Question
	if q.ID == "" {
		return errors.New("question ID cannot be empty")
	}

	if err := q.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE questions SET prompt = ?, points = ?, category = ?, kind = ?, blank_answer = ? WHERE id = ?",
		q.Prompt, q.Points, q.Category, string(q.Kind), q.BlankAnswer, q.ID)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM options WHERE question_id = ?", q.ID); err != nil {
		return fmt.Errorf("failed to clear options: %w", err)
	}

	for _, opt := range q.Options {
		opt.ID = uuid.New().String()
		opt.QuestionID = q.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO options (id, question_id, option_text, is_correct) VALUES (?, ?, ?, ?)",
			opt.ID, opt.QuestionID, opt.Text, opt.IsCorrect)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit question update: %w", err)
	}

	return nil
}

// DeleteQuestion removes a question and its options
func (r *sqliteRepository) DeleteQuestion(ctx context.Context, input *DeleteQuestionInput) error {
	if input == nil || input.QuestionID == "" {
		return errors.New("input and question ID cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM options WHERE question_id = ?", input.QuestionID); err != nil {
		return fmt.Errorf("failed to delete options: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", input.QuestionID)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit question deletion: %w", err)
	}

	return nil
}

// ListQuestions retrieves id/prompt summaries for a group
func (r *sqliteRepository) ListQuestions(ctx context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, prompt FROM questions WHERE group_id = ? ORDER BY rowid", input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	output := &ListQuestionsOutput{Questions: []QuestionSummary{}}
	for rows.Next() {
		var summary QuestionSummary
		if err := rows.Scan(&summary.ID, &summary.Prompt); err != nil {
			return nil, fmt.Errorf("failed to scan question summary: %w", err)
		}
		output.Questions = append(output.Questions, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return output, nil
}

// PickRandomQuestion selects uniformly at random among the group's questions
// whose IDs are not in the exclude set. Returns nil when the pool is empty.
func (r *sqliteRepository) PickRandomQuestion(ctx context.Context, input *PickRandomQuestionInput) (*models.Question, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	query, args := remainingQuery("SELECT id FROM questions", input.GroupID, input.ExcludeIDs)
	query += " ORDER BY RANDOM() LIMIT 1"

	var questionID string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pick random question: %w", err)
	}

	return r.getQuestion(ctx, questionID)
}

// CountRemaining returns how many of the group's questions are not excluded
func (r *sqliteRepository) CountRemaining(ctx context.Context, input *CountRemainingInput) (int, error) {
	if input == nil || input.GroupID == "" {
		return 0, errors.New("input and group ID cannot be empty")
	}

	query, args := remainingQuery("SELECT COUNT(*) FROM questions", input.GroupID, input.ExcludeIDs)

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count remaining questions: %w", err)
	}

	return count, nil
}

// remainingQuery builds the WHERE clause shared by PickRandomQuestion and
// CountRemaining
func remainingQuery(selectClause, groupID string, excludeIDs []string) (string, []any) {
	query := selectClause + " WHERE group_id = ?"
	args := []any{groupID}

	if len(excludeIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(excludeIDs)), ", ")
		query += " AND id NOT IN (" + placeholders + ")"
		for _, id := range excludeIDs {
			args = append(args, id)
		}
	}

	return query, args
}
