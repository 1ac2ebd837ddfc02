package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"scidrill/internal/modules/bank/domain"
	bankout "scidrill/internal/modules/bank/port/out"
	"scidrill/internal/platform/slug"

	_ "modernc.org/sqlite"
)

// SQLiteCatalogProjector keeps a derived event/topic index over the question
// pool. The CSV stays authoritative; the index only serves catalog queries.
type SQLiteCatalogProjector struct {
	db *sql.DB
}

func NewSQLiteCatalogProjector(dbPath string) (bankout.CatalogProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteCatalogProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteCatalogProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS catalog (
  event_key TEXT NOT NULL,
  event TEXT NOT NULL,
  topic_key TEXT NOT NULL,
  topic TEXT NOT NULL,
  question_count INTEGER NOT NULL,
  PRIMARY KEY (event_key, topic_key)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create catalog table: %w", err)
	}
	return nil
}

func (s *SQLiteCatalogProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM catalog`); err != nil {
		return fmt.Errorf("reset catalog: %w", err)
	}
	return nil
}

func (s *SQLiteCatalogProjector) Upsert(ctx context.Context, entry domain.CatalogEntry) error {
	const stmt = `
INSERT INTO catalog (event_key, event, topic_key, topic, question_count)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(event_key, topic_key) DO UPDATE SET
  event=excluded.event,
  topic=excluded.topic,
  question_count=excluded.question_count;
`
	_, err := s.db.ExecContext(ctx, stmt,
		slug.Make(entry.Event),
		entry.Event,
		slug.Make(entry.Topic),
		entry.Topic,
		entry.Questions,
	)
	if err != nil {
		return fmt.Errorf("upsert catalog entry: %w", err)
	}
	return nil
}

func (s *SQLiteCatalogProjector) ListEvents(ctx context.Context) ([]domain.EventSummary, error) {
	const query = `
SELECT event, COUNT(topic_key), SUM(question_count)
FROM catalog
GROUP BY event_key
ORDER BY event;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.EventSummary{}
	for rows.Next() {
		summary := domain.EventSummary{}
		if err := rows.Scan(&summary.Event, &summary.Topics, &summary.Questions); err != nil {
			return nil, fmt.Errorf("scan event summary: %w", err)
		}
		out = append(out, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event summaries: %w", err)
	}
	return out, nil
}

func (s *SQLiteCatalogProjector) ListTopics(ctx context.Context, event string) ([]domain.TopicSummary, error) {
	const query = `
SELECT topic, question_count
FROM catalog
WHERE event_key = ?
ORDER BY topic;
`
	rows, err := s.db.QueryContext(ctx, query, slug.Make(event))
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.TopicSummary{}
	for rows.Next() {
		summary := domain.TopicSummary{}
		if err := rows.Scan(&summary.Topic, &summary.Questions); err != nil {
			return nil, fmt.Errorf("scan topic summary: %w", err)
		}
		out = append(out, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic summaries: %w", err)
	}
	return out, nil
}
