package store

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lox/pokercoach/internal/classify"
	"github.com/lox/pokercoach/internal/lessons"
	"github.com/lox/pokercoach/internal/position"
	"github.com/lox/pokercoach/internal/strategy"
)

//go:embed schema.sql
var schema embed.FS

// PostgresStore persists lessons in Postgres via a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the given DSN and applies the schema.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, string(sqlBytes)); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) List(ctx context.Context) ([]lessons.Lesson, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, created_at, summary, source, video_url,
		       position, hand_category, situation,
		       fold_delta, call_delta, raise_delta, active
		  FROM lessons
		 ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []lessons.Lesson
	for rows.Next() {
		var l lessons.Lesson
		var pos, cat, sit string
		err := rows.Scan(&l.ID, &l.CreatedAt, &l.Summary, &l.Source, &l.VideoURL,
			&pos, &cat, &sit,
			&l.FoldDelta, &l.CallDelta, &l.RaiseDelta, &l.Active)
		if err != nil {
			return nil, err
		}
		l.Position = position.Position(pos)
		l.HandCategory = classify.HandCategory(cat)
		l.Situation = strategy.Situation(sit)
		items = append(items, l)
	}
	return items, rows.Err()
}

func (s *PostgresStore) Put(ctx context.Context, items ...lessons.Lesson) error {
	for _, l := range items {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO lessons(id, created_at, summary, source, video_url,
			                    position, hand_category, situation,
			                    fold_delta, call_delta, raise_delta, active)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			ON CONFLICT (id) DO NOTHING
		`, l.ID, l.CreatedAt, l.Summary, l.Source, l.VideoURL,
			string(l.Position), string(l.HandCategory), string(l.Situation),
			l.FoldDelta, l.CallDelta, l.RaiseDelta, l.Active)
		if err != nil {
			return fmt.Errorf("inserting lesson %s: %w", l.ID, err)
		}
	}
	return nil
}

func (s *PostgresStore) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := s.pool.Exec(ctx, `UPDATE lessons SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
