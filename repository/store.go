package repository

import (
	"context"
	"database/sql"

	"github.com/adkotun/tg-memory/memory-backend/models"
)

// Store owns the two tables the game touches: users and their per-deck-size
// statistics.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            telegram_id BIGINT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            image TEXT
        );
        CREATE TABLE IF NOT EXISTS statistics (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users (id),
            deck_size INTEGER NOT NULL,
            steps INTEGER NOT NULL,
            time INTEGER NOT NULL,
            trys INTEGER NOT NULL DEFAULT 1,
            date TIMESTAMPTZ NOT NULL DEFAULT now(),
            UNIQUE (user_id, deck_size)
        );`)
	return err
}

// UpsertUser creates the user on first login and refreshes the display name
// and avatar Telegram reported on later ones.
func (s *Store) UpsertUser(ctx context.Context, telegramID int64, name, image string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO users (telegram_id, name, image) VALUES ($1, $2, $3)
        ON CONFLICT (telegram_id) DO UPDATE SET name = EXCLUDED.name, image = EXCLUDED.image
        RETURNING id, telegram_id, name, image`,
		telegramID, name, image)

	var user models.User
	var img sql.NullString
	if err := row.Scan(&user.ID, &user.TelegramID, &user.Name, &img); err != nil {
		return nil, err
	}
	user.Image = img.String
	return &user, nil
}

// RecordCompletion stores a finished board. One statement, so two racing
// completions cannot lose a personal best: steps and time keep their minimum
// and every attempt counts toward trys.
func (s *Store) RecordCompletion(ctx context.Context, userID int64, deckSize, steps, seconds int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO statistics (user_id, deck_size, steps, time, trys, date)
        VALUES ($1, $2, $3, $4, 1, now())
        ON CONFLICT (user_id, deck_size) DO UPDATE SET
            steps = LEAST(statistics.steps, EXCLUDED.steps),
            time = LEAST(statistics.time, EXCLUDED.time),
            trys = statistics.trys + 1,
            date = now()`,
		userID, deckSize, steps, seconds)
	return err
}

// TopScores returns the leaderboard for one deck size, fastest first.
func (s *Store) TopScores(ctx context.Context, deckSize, limit int) ([]models.Score, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT s.id, s.time, s.steps, s.date, s.trys, u.image, u.name
        FROM statistics s
        JOIN users u ON u.id = s.user_id
        WHERE s.deck_size = $1
        ORDER BY s.time ASC
        LIMIT $2`,
		deckSize, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		var score models.Score
		var img sql.NullString
		if err := rows.Scan(&score.ID, &score.Time, &score.Steps, &score.Date, &score.Trys, &img, &score.User.Name); err != nil {
			return nil, err
		}
		score.User.Image = img.String
		scores = append(scores, score)
	}
	return scores, rows.Err()
}
