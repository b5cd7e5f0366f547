// Package snapshot persists the current input snapshot. Only the most
// recently saved inputs are kept; there is no history and no usage tracking.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chatcost-ai/chatcost/pkg/models"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Store saves and restores the current input snapshot.
type Store interface {
	// Save replaces the stored snapshot with s.
	Save(ctx context.Context, s models.InputSnapshot) error
	// Load returns the stored snapshot, or ErrNoSnapshot.
	Load(ctx context.Context) (models.InputSnapshot, error)
	// Clear removes the stored snapshot.
	Clear(ctx context.Context) error
	// Close releases resources.
	Close() error
}

// SQLiteStore implements Store with a single-row SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

const createTable = `
CREATE TABLE IF NOT EXISTS input_snapshot (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	population INTEGER NOT NULL,
	conversion_rate REAL NOT NULL,
	engagement_rate REAL NOT NULL,
	conversations_per_user REAL NOT NULL,
	questions_per_conversation INTEGER NOT NULL,
	question_tokens INTEGER NOT NULL,
	retrieval_tokens INTEGER NOT NULL,
	answer_tokens INTEGER NOT NULL,
	input_cost_per_token REAL NOT NULL,
	output_cost_per_token REAL NOT NULL,
	saved_at DATETIME NOT NULL
);
`

// New creates a SQLiteStore and runs auto-migration.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save replaces the stored snapshot. The id=1 constraint keeps the table a
// single row, so saving is always an upsert of the current inputs.
func (s *SQLiteStore) Save(ctx context.Context, snap models.InputSnapshot) error {
	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO input_snapshot (
			id, population, conversion_rate,
			engagement_rate, conversations_per_user, questions_per_conversation,
			question_tokens, retrieval_tokens, answer_tokens,
			input_cost_per_token, output_cost_per_token, saved_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			population = excluded.population,
			conversion_rate = excluded.conversion_rate,
			engagement_rate = excluded.engagement_rate,
			conversations_per_user = excluded.conversations_per_user,
			questions_per_conversation = excluded.questions_per_conversation,
			question_tokens = excluded.question_tokens,
			retrieval_tokens = excluded.retrieval_tokens,
			answer_tokens = excluded.answer_tokens,
			input_cost_per_token = excluded.input_cost_per_token,
			output_cost_per_token = excluded.output_cost_per_token,
			saved_at = excluded.saved_at`,
		snap.Traffic.Population, snap.Traffic.ConversionRate,
		snap.Params.EngagementRate, snap.Params.ConversationsPerUser, snap.Params.QuestionsPerConversation,
		snap.Profile.QuestionTokens, snap.Profile.RetrievalTokens, snap.Profile.AnswerTokens,
		snap.Pricing.InputCostPerToken, snap.Pricing.OutputCostPerToken, savedAt,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or ErrNoSnapshot if none exists.
func (s *SQLiteStore) Load(ctx context.Context) (models.InputSnapshot, error) {
	var snap models.InputSnapshot
	err := s.db.QueryRowContext(ctx,
		`SELECT population, conversion_rate,
			engagement_rate, conversations_per_user, questions_per_conversation,
			question_tokens, retrieval_tokens, answer_tokens,
			input_cost_per_token, output_cost_per_token, saved_at
		 FROM input_snapshot WHERE id = 1`,
	).Scan(
		&snap.Traffic.Population, &snap.Traffic.ConversionRate,
		&snap.Params.EngagementRate, &snap.Params.ConversationsPerUser, &snap.Params.QuestionsPerConversation,
		&snap.Profile.QuestionTokens, &snap.Profile.RetrievalTokens, &snap.Profile.AnswerTokens,
		&snap.Pricing.InputCostPerToken, &snap.Pricing.OutputCostPerToken, &snap.SavedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InputSnapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return models.InputSnapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

// Clear removes the stored snapshot. Clearing an empty store is not an error.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM input_snapshot WHERE id = 1`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
